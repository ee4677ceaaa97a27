// internal/component/hop.go
package component

import (
	"github.com/Addison-Dalton/towder-defense-practice/internal/utils"
	"github.com/Addison-Dalton/towder-defense-practice/pkg/geom"
)

// HopConfig turns straight-line travel into a series of hops with rests in
// between. Height and delay are rolled once per enemy, landing jitter once
// per segment.
type HopConfig struct {
	HeightCurve   geom.Curve
	MovementCurve geom.Curve

	HeightRange     utils.FloatRange
	// DelayRange is the rest between hops in plain seconds of simulation
	// time. It does not scale with the segment's progress factor, so fast
	// enemies and turn segments rest exactly as long as slow straight ones.
	DelayRange      utils.FloatRange
	LandingAccuracy utils.FloatRange // jitter added to X and Z of each target

	// FloorPercent of the hop height is subtracted from every height sample,
	// letting the height curve dip below the ground.
	FloorPercent float64
}

type hopMotion struct {
	heightCurve   geom.Curve
	movementCurve geom.Curve
	accuracy      utils.FloatRange
	rng           utils.RandomSource

	height      float64
	delay       float64
	floorOffset float64

	restTimer float64
	hopping   bool
}

func newHopMotion(cfg HopConfig, rng utils.RandomSource) *hopMotion {
	if cfg.HeightCurve == nil {
		cfg.HeightCurve = geom.HopArc
	}
	if cfg.MovementCurve == nil {
		cfg.MovementCurve = geom.EaseInOut
	}
	h := &hopMotion{
		heightCurve:   cfg.HeightCurve,
		movementCurve: cfg.MovementCurve,
		accuracy:      cfg.LandingAccuracy,
		rng:           rng,
		height:        cfg.HeightRange.Random(rng),
		delay:         cfg.DelayRange.Random(rng),
	}
	h.floorOffset = cfg.FloorPercent * h.height
	return h
}

// rest advances the rest timer and reports whether this tick is spent
// resting. The hop starts on the tick the timer reaches the delay.
func (h *hopMotion) rest(deltaTime float64) bool {
	if h.hopping {
		return false
	}
	h.restTimer += deltaTime
	if h.restTimer >= h.delay {
		h.hopping = true
		h.restTimer = 0
		return false
	}
	return true
}

func (h *hopMotion) land() {
	h.hopping = false
}

func (h *hopMotion) heightAt(progress float64) float64 {
	return geom.Lerp(0, h.height, h.heightCurve.Evaluate(progress)) - h.floorOffset
}

func (h *hopMotion) positionAt(from, to geom.Vec3, progress float64) geom.Vec3 {
	c := h.movementCurve.Evaluate(progress)
	return geom.Vec3{
		X: geom.Lerp(from.X, to.X, c),
		Y: h.heightAt(progress),
		Z: geom.Lerp(from.Z, to.Z, c),
	}
}

func (h *hopMotion) landingZone(p geom.Vec3) geom.Vec3 {
	p.X += h.accuracy.Random(h.rng)
	p.Z += h.accuracy.Random(h.rng)
	return p
}
