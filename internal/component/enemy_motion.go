package component

import (
	"math"

	"github.com/Addison-Dalton/towder-defense-practice/pkg/geom"
	"github.com/Addison-Dalton/towder-defense-practice/pkg/tilemap"
)

// TurnAroundMinRadius keeps the turn-around arc from collapsing to a point
// for enemies walking close to the lane center.
const TurnAroundMinRadius = 0.2

// IntroOutroSpeedFactor is how much faster the half-tile intro and outro
// segments are covered.
const IntroOutroSpeedFactor = 2.0

func (e *Enemy) prepareNextState() {
	e.tileFrom = e.tileTo
	e.tileTo = e.tileTo.NextTileOnPath()
	e.transitions++
	e.positionFrom = e.positionTo

	if e.tileTo == nil {
		e.prepareOutro()
		return
	}

	e.positionTo = e.landingZone(e.tileFrom.ExitPoint())
	e.directionChange = e.direction.ChangeTo(e.tileFrom.PathDirection())
	e.direction = e.tileFrom.PathDirection()
	e.directionAngleFrom = e.directionAngleTo
	e.state = StateTraveling

	switch e.directionChange {
	case tilemap.None:
		e.prepareForward()
	case tilemap.TurnRight:
		e.prepareTurnRight()
	case tilemap.TurnLeft:
		e.prepareTurnLeft()
	default:
		e.prepareTurnAround()
	}
}

func (e *Enemy) prepareForward() {
	e.pose.Yaw = e.direction.Angle()
	e.directionAngleTo = e.direction.Angle()
	e.pose.ModelOffset = geom.Vec3{X: e.pathOffset}
	e.progressFactor = e.speed
}

// Turns pivot around the tile corner on the inside of the turn.
func (e *Enemy) prepareTurnRight() {
	e.directionAngleTo = e.directionAngleFrom + 90
	e.pose.ModelOffset = geom.Vec3{X: e.pathOffset - 0.5}
	e.pose.Position = e.positionFrom.Add(e.direction.HalfVector())
	e.progressFactor = e.speed / (math.Pi * 0.5 * (0.5 - e.pathOffset))
}

func (e *Enemy) prepareTurnLeft() {
	e.directionAngleTo = e.directionAngleFrom - 90
	e.pose.ModelOffset = geom.Vec3{X: e.pathOffset + 0.5}
	e.pose.Position = e.positionFrom.Add(e.direction.HalfVector())
	e.progressFactor = e.speed / (math.Pi * 0.5 * (0.5 + e.pathOffset))
}

func (e *Enemy) prepareTurnAround() {
	if e.pathOffset < 0 {
		e.directionAngleTo = e.directionAngleFrom + 180
	} else {
		e.directionAngleTo = e.directionAngleFrom - 180
	}
	e.pose.ModelOffset = geom.Vec3{X: e.pathOffset}
	e.pose.Position = e.positionFrom
	e.progressFactor = e.speed / (math.Pi * math.Max(math.Abs(e.pathOffset), TurnAroundMinRadius))
}

func (e *Enemy) prepareIntro() {
	e.positionFrom = e.tileFrom.Center()
	e.positionTo = e.tileFrom.ExitPoint()
	e.direction = e.tileFrom.PathDirection()
	e.directionChange = tilemap.None
	e.directionAngleFrom = e.direction.Angle()
	e.directionAngleTo = e.directionAngleFrom
	e.pose.ModelOffset = geom.Vec3{X: e.pathOffset}
	e.pose.Yaw = e.direction.Angle()
	e.progressFactor = IntroOutroSpeedFactor * e.speed
	e.state = StateIntro
}

func (e *Enemy) prepareOutro() {
	e.positionTo = e.tileFrom.Center()
	e.directionChange = tilemap.None
	e.directionAngleTo = e.direction.Angle()
	e.pose.ModelOffset = geom.Vec3{X: e.pathOffset}
	e.pose.Yaw = e.direction.Angle()
	e.progressFactor = IntroOutroSpeedFactor * e.speed
	e.state = StateOutro
}

func (e *Enemy) landingZone(p geom.Vec3) geom.Vec3 {
	if e.hop == nil {
		return p
	}
	return e.hop.landingZone(p)
}
