// internal/system/movement.go
package system

import (
	"github.com/Addison-Dalton/towder-defense-practice/internal/component"
	"github.com/Addison-Dalton/towder-defense-practice/internal/event"
)

// EnemyView is a read-only snapshot of one enemy for pose sinks.
type EnemyView struct {
	ID      string
	Kind    string
	Pose    component.Pose
	Resting bool
}

type trackedEnemy struct {
	enemy *component.Enemy
	kind  string
}

// MovementSystem ticks every live enemy once per frame and drops the ones
// that finished their path.
type MovementSystem struct {
	enemies         []trackedEnemy
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{eventDispatcher: eventDispatcher}
}

// Add starts ticking a spawned enemy. kind is reported in events.
func (s *MovementSystem) Add(e *component.Enemy, kind string) {
	s.enemies = append(s.enemies, trackedEnemy{enemy: e, kind: kind})
}

func (s *MovementSystem) Update(deltaTime float64) {
	live := s.enemies[:0]
	for _, t := range s.enemies {
		id, tile := t.enemy.ID(), t.enemy.TileFrom()
		if t.enemy.Update(deltaTime) {
			live = append(live, t)
			continue
		}
		payload := event.EnemyPayload{ID: id, Kind: t.kind}
		if tile != nil {
			payload.Tile = tile.Coord()
		}
		if s.eventDispatcher != nil {
			s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyReachedDestination, Data: payload})
		}
	}
	clear(s.enemies[len(live):])
	s.enemies = live
}

// Clear recycles every live enemy without waiting for it to arrive.
func (s *MovementSystem) Clear() {
	for _, t := range s.enemies {
		t.enemy.Recycle()
	}
	clear(s.enemies)
	s.enemies = s.enemies[:0]
}

func (s *MovementSystem) Count() int { return len(s.enemies) }

// Poses returns a snapshot of every live enemy, in spawn order.
func (s *MovementSystem) Poses() []EnemyView {
	out := make([]EnemyView, len(s.enemies))
	for i, t := range s.enemies {
		out[i] = EnemyView{
			ID:      t.enemy.ID(),
			Kind:    t.kind,
			Pose:    t.enemy.Pose(),
			Resting: t.enemy.IsResting(),
		}
	}
	return out
}
