// pkg/tilemap/direction.go
package tilemap

import "github.com/Addison-Dalton/towder-defense-practice/pkg/geom"

// Direction is one of the four cardinal directions, in clockwise order.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists all directions starting from North, going clockwise.
var Directions = [4]Direction{North, East, South, West}

// DirectionChange classifies how an agent turns between two segments.
type DirectionChange int

const (
	None DirectionChange = iota
	TurnRight
	TurnLeft
	TurnAround
)

var halfVectors = [4]geom.Vec3{
	{Z: 0.5},
	{X: 0.5},
	{Z: -0.5},
	{X: -0.5},
}

// Angle returns the facing angle in degrees: North 0, East 90, South 180, West 270.
func (d Direction) Angle() float64 {
	return float64(d) * 90
}

// Rotation returns the yaw rotation matching Angle.
func (d Direction) Rotation() geom.Quat {
	return geom.QuatFromYaw(d.Angle())
}

// HalfVector returns the offset from a tile center to the middle of the tile
// edge in this direction.
func (d Direction) HalfVector() geom.Vec3 {
	return halfVectors[d&3]
}

// ChangeTo classifies the turn from d to next. Anything that is not straight
// or a quarter turn is a turn around.
func (d Direction) ChangeTo(next Direction) DirectionChange {
	switch next {
	case d:
		return None
	case d.RotateCW():
		return TurnRight
	case d.RotateCCW():
		return TurnLeft
	}
	return TurnAround
}

func (d Direction) RotateCW() Direction {
	return (d + 1) & 3
}

func (d Direction) RotateCCW() Direction {
	return (d + 3) & 3
}

func (d Direction) Opposite() Direction {
	return (d + 2) & 3
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return "unknown"
}

func (c DirectionChange) String() string {
	switch c {
	case None:
		return "forward"
	case TurnRight:
		return "turn_right"
	case TurnLeft:
		return "turn_left"
	case TurnAround:
		return "turn_around"
	}
	return "unknown"
}
