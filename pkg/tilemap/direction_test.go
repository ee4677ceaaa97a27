package tilemap

import (
	"math"
	"testing"
)

func TestDirectionChange(t *testing.T) {
	cases := []struct {
		from, to Direction
		want     DirectionChange
	}{
		{North, North, None},
		{North, East, TurnRight},
		{North, West, TurnLeft},
		{North, South, TurnAround},
		{East, South, TurnRight},
		{East, North, TurnLeft},
		{South, West, TurnRight},
		{South, East, TurnLeft},
		{West, North, TurnRight},
		{West, South, TurnLeft},
		{West, East, TurnAround},
	}
	for _, tc := range cases {
		if got := tc.from.ChangeTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: got %s, want %s", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestDirectionGeometry(t *testing.T) {
	wantAngles := map[Direction]float64{North: 0, East: 90, South: 180, West: 270}
	for _, d := range Directions {
		if d.Angle() != wantAngles[d] {
			t.Errorf("%s angle = %v, want %v", d, d.Angle(), wantAngles[d])
		}
		half := d.HalfVector()
		if math.Abs(half.Length()-0.5) > 1e-9 {
			t.Errorf("%s half vector length = %v", d, half.Length())
		}
		// Rotating "forward" by the direction rotation must point along the half vector.
		forward := North.HalfVector()
		rotated := d.Rotation().Rotate(forward)
		if rotated.Distance(half) > 1e-9 {
			t.Errorf("%s rotation maps forward to %+v, want %+v", d, rotated, half)
		}
		if yaw := d.Rotation().Yaw(); math.Abs(yaw-d.Angle()) > 1e-9 {
			t.Errorf("%s rotation yaw = %v, want %v", d, yaw, d.Angle())
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("%s opposite is not symmetric", d)
		}
	}
}
