// pkg/geom/vec3.go
package geom

import "math"

// Vec3 is a world-space vector. Y is up; the board lies on the X/Z plane.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(f float64) Vec3 {
	return Vec3{v.X * f, v.Y * f, v.Z * f}
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Distance returns the euclidean distance between v and o.
func (v Vec3) Distance(o Vec3) float64 {
	return v.Sub(o).Length()
}

// LerpVec3 interpolates component-wise with t clamped to [0, 1].
func LerpVec3(from, to Vec3, t float64) Vec3 {
	return LerpVec3Unclamped(from, to, Clamp01(t))
}

// LerpVec3Unclamped interpolates component-wise and extrapolates for t outside [0, 1].
func LerpVec3Unclamped(from, to Vec3, t float64) Vec3 {
	return Vec3{
		LerpUnclamped(from.X, to.X, t),
		LerpUnclamped(from.Y, to.Y, t),
		LerpUnclamped(from.Z, to.Z, t),
	}
}

// RotateY rotates v around the up axis. Angles grow clockwise when seen from
// above, so +Z rotated by 90 degrees becomes +X.
func (v Vec3) RotateY(degrees float64) Vec3 {
	return QuatFromYaw(degrees).Rotate(v)
}
