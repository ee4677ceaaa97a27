// pkg/geom/curve.go
package geom

import (
	"math"
	"sort"
)

// Curve maps normalized segment progress to a curve value. Hop motion uses
// one curve for horizontal travel and one for height.
type Curve interface {
	Evaluate(t float64) float64
}

// CurveFunc adapts a plain function to Curve.
type CurveFunc func(t float64) float64

func (f CurveFunc) Evaluate(t float64) float64 { return f(t) }

// Keyframe is a single point on a Keyframes curve.
type Keyframe struct {
	T     float64 `json:"t"`
	Value float64 `json:"value"`
}

// Keyframes is a piecewise linear curve. Keys are sorted by T on
// construction; values before the first and after the last key are held.
type Keyframes struct {
	keys []Keyframe
}

// NewKeyframes copies and sorts keys. An empty key set evaluates to zero.
func NewKeyframes(keys ...Keyframe) *Keyframes {
	sorted := make([]Keyframe, len(keys))
	copy(sorted, keys)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].T < sorted[j].T })
	return &Keyframes{keys: sorted}
}

func (k *Keyframes) Evaluate(t float64) float64 {
	n := len(k.keys)
	if n == 0 {
		return 0
	}
	if t <= k.keys[0].T {
		return k.keys[0].Value
	}
	if t >= k.keys[n-1].T {
		return k.keys[n-1].Value
	}
	i := sort.Search(n, func(i int) bool { return k.keys[i].T > t })
	a, b := k.keys[i-1], k.keys[i]
	span := b.T - a.T
	if span <= 0 {
		return b.Value
	}
	return LerpUnclamped(a.Value, b.Value, (t-a.T)/span)
}

// EaseInOut is a smoothstep ramp from 0 to 1.
var EaseInOut = CurveFunc(func(t float64) float64 {
	t = Clamp01(t)
	return t * t * (3 - 2*t)
})

// HopArc rises from 0 to 1 at the middle of the segment and falls back to 0.
var HopArc = CurveFunc(func(t float64) float64 {
	return math.Sin(math.Pi * Clamp01(t))
})
