// pkg/geom/math.go
package geom

import "math"

// Lerp выполняет линейную интерполяцию с ограничением t в [0, 1]
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*Clamp01(t)
}

// LerpUnclamped is Lerp without clamping, so t outside [0, 1] extrapolates.
func LerpUnclamped(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp01 clamps v into [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// NormalizeDegrees нормализует угол в диапазон [0, 360)
func NormalizeDegrees(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	// -1e-15 + 360 rounds to 360
	if angle >= 360 {
		angle = 0
	}
	return angle
}

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
