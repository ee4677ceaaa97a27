package component

import (
	"github.com/Addison-Dalton/towder-defense-practice/internal/utils"
	"github.com/Addison-Dalton/towder-defense-practice/pkg/geom"
	"github.com/Addison-Dalton/towder-defense-practice/pkg/tilemap"
)

// EnemyState is the phase of an enemy's traversal.
type EnemyState int

const (
	StateIntro     EnemyState = iota // spawn tile center to its exit point
	StateTraveling                   // tile to tile
	StateOutro                       // last exit point to the destination center
	StateDone                        // reclaimed, never ticked again
)

func (s EnemyState) String() string {
	switch s {
	case StateIntro:
		return "intro"
	case StateTraveling:
		return "traveling"
	case StateOutro:
		return "outro"
	case StateDone:
		return "done"
	}
	return "unknown"
}

// EnemyReclaimer takes an enemy back once it finished its path.
type EnemyReclaimer interface {
	Reclaim(e *Enemy)
}

// Pose is what a renderer needs to place an enemy. Position is the root of
// the enemy (the pivot while turning); ModelOffset is the lane offset in the
// enemy's local frame, rotated by Yaw.
type Pose struct {
	Position    geom.Vec3
	Yaw         float64
	ModelOffset geom.Vec3
	Scale       float64
}

// ModelPosition is the world position of the visible model.
func (p Pose) ModelPosition() geom.Vec3 {
	return p.Position.Add(p.ModelOffset.RotateY(p.Yaw))
}

// Enemy follows the flow field one segment at a time.
type Enemy struct {
	id     string
	origin EnemyReclaimer

	tileFrom, tileTo         *tilemap.Tile
	positionFrom, positionTo geom.Vec3
	progress, progressFactor float64

	direction                            tilemap.Direction
	directionChange                      tilemap.DirectionChange
	directionAngleFrom, directionAngleTo float64

	scale, speed, pathOffset float64

	hop *hopMotion

	state       EnemyState
	transitions int
	pose        Pose
}

// NewEnemy binds a new enemy to the factory that will reclaim it.
func NewEnemy(origin EnemyReclaimer, id string) *Enemy {
	if origin == nil {
		panic("component: enemy without origin factory")
	}
	return &Enemy{id: id, origin: origin, state: StateDone}
}

// Initialize configures the enemy before it is spawned. A nil hop config
// disables hopping; rng is only used when hopping is enabled.
func (e *Enemy) Initialize(scale, speed, pathOffset float64, hop *HopConfig, rng utils.RandomSource) {
	if pathOffset <= -0.5 || pathOffset >= 0.5 {
		panic("component: path offset must stay inside the tile")
	}
	if speed < 0 {
		panic("component: negative speed")
	}
	e.scale = scale
	e.speed = speed
	e.pathOffset = pathOffset
	e.hop = nil
	if hop != nil {
		if rng == nil {
			panic("component: hopping enemy needs a random source")
		}
		e.hop = newHopMotion(*hop, rng)
	}
	e.pose = Pose{Scale: scale}
}

// SpawnOn places the enemy at the center of tile. The tile must have a next
// tile on its path.
func (e *Enemy) SpawnOn(tile *tilemap.Tile) {
	if tile == nil || tile.NextTileOnPath() == nil {
		panic("component: nowhere to go")
	}
	e.tileFrom = tile
	e.tileTo = tile.NextTileOnPath()
	e.progress = 0
	e.transitions = 0
	e.prepareIntro()
	e.updatePose()
}

// Update advances the enemy by deltaTime seconds. It returns false once the
// enemy finished its path; by then it has already been reclaimed.
func (e *Enemy) Update(deltaTime float64) bool {
	if e.state == StateDone {
		return false
	}
	if e.hop != nil && e.hop.rest(deltaTime) {
		return true
	}

	e.progress += deltaTime * e.progressFactor
	for e.progress >= 1 {
		if e.hop != nil {
			e.hop.land()
		}
		if e.tileTo == nil {
			e.state = StateDone
			e.origin.Reclaim(e)
			return false
		}
		e.progress = (e.progress - 1) / e.progressFactor
		e.prepareNextState()
		e.progress *= e.progressFactor
	}

	e.updatePose()
	return true
}

func (e *Enemy) updatePose() {
	if e.directionChange == tilemap.None {
		if e.hop != nil {
			e.pose.Position = e.hop.positionAt(e.positionFrom, e.positionTo, e.progress)
		} else {
			e.pose.Position = geom.LerpVec3Unclamped(e.positionFrom, e.positionTo, e.progress)
		}
		return
	}
	e.pose.Yaw = geom.LerpUnclamped(e.directionAngleFrom, e.directionAngleTo, e.progress)
	if e.hop != nil {
		e.pose.Position.Y = e.hop.heightAt(e.progress)
	}
}

func (e *Enemy) ID() string                               { return e.id }
func (e *Enemy) SetID(id string)                          { e.id = id }
func (e *Enemy) Origin() EnemyReclaimer                   { return e.origin }
func (e *Enemy) State() EnemyState                        { return e.state }
func (e *Enemy) Pose() Pose                               { return e.pose }
func (e *Enemy) Progress() float64                        { return e.progress }
func (e *Enemy) ProgressFactor() float64                  { return e.progressFactor }
func (e *Enemy) Direction() tilemap.Direction             { return e.direction }
func (e *Enemy) DirectionChange() tilemap.DirectionChange { return e.directionChange }
func (e *Enemy) PositionFrom() geom.Vec3                  { return e.positionFrom }
func (e *Enemy) PositionTo() geom.Vec3                    { return e.positionTo }
func (e *Enemy) TileFrom() *tilemap.Tile                  { return e.tileFrom }
func (e *Enemy) TileTo() *tilemap.Tile                    { return e.tileTo }
func (e *Enemy) Speed() float64                           { return e.speed }
func (e *Enemy) PathOffset() float64                      { return e.pathOffset }
func (e *Enemy) Scale() float64                           { return e.scale }

// Transitions counts the tiles the enemy moved on to since spawning.
func (e *Enemy) Transitions() int { return e.transitions }

// IsResting reports whether a hopping enemy is waiting between hops.
func (e *Enemy) IsResting() bool {
	return e.hop != nil && !e.hop.hopping
}

// Recycle ends the enemy immediately and hands it back to its factory.
func (e *Enemy) Recycle() {
	if e.state == StateDone {
		return
	}
	e.state = StateDone
	e.origin.Reclaim(e)
}
