// pkg/geom/quat.go
package geom

import "math"

// Quat is a unit rotation quaternion.
type Quat struct {
	X, Y, Z, W float64
}

// QuatFromYaw returns the rotation of the given number of degrees around the up axis.
func QuatFromYaw(degrees float64) Quat {
	half := degrees * math.Pi / 360
	return Quat{Y: math.Sin(half), W: math.Cos(half)}
}

// Yaw returns the rotation around the up axis in degrees, normalized to [0, 360).
// Only meaningful for yaw-only quaternions.
func (q Quat) Yaw() float64 {
	return NormalizeDegrees(2 * math.Atan2(q.Y, q.W) * 180 / math.Pi)
}

// Rotate applies q to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}
