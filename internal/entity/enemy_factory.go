// internal/entity/enemy_factory.go
package entity

import (
	"github.com/google/uuid"

	"github.com/Addison-Dalton/towder-defense-practice/internal/component"
	"github.com/Addison-Dalton/towder-defense-practice/internal/defs"
	"github.com/Addison-Dalton/towder-defense-practice/internal/utils"
	"github.com/Addison-Dalton/towder-defense-practice/pkg/geom"
)

// EnemyFactory hands out initialized enemies and pools finished ones.
type EnemyFactory struct {
	rng    utils.RandomSource
	pool   []*component.Enemy
	active int
	kinds  map[*component.Enemy]string
}

func NewEnemyFactory(rng utils.RandomSource) *EnemyFactory {
	if rng == nil {
		panic("entity: enemy factory without random source")
	}
	return &EnemyFactory{rng: rng, kinds: make(map[*component.Enemy]string)}
}

// Get returns an enemy with scale, speed and path offset rolled from def.
// The enemy still has to be spawned on a tile.
func (f *EnemyFactory) Get(def defs.EnemyDefinition) *component.Enemy {
	var e *component.Enemy
	if n := len(f.pool); n > 0 {
		e = f.pool[n-1]
		f.pool = f.pool[:n-1]
		e.SetID(uuid.NewString())
	} else {
		e = component.NewEnemy(f, uuid.NewString())
	}

	e.Initialize(
		def.Scale.Random(f.rng),
		def.Speed.Random(f.rng),
		def.PathOffset.Random(f.rng),
		hopConfig(def.Hop),
		f.rng,
	)
	f.kinds[e] = def.ID
	f.active++
	return e
}

// Reclaim returns a finished enemy to the pool.
func (f *EnemyFactory) Reclaim(e *component.Enemy) {
	if e.Origin() != component.EnemyReclaimer(f) {
		panic("entity: wrong factory reclaimed")
	}
	delete(f.kinds, e)
	f.active--
	f.pool = append(f.pool, e)
}

// Active is the number of enemies handed out and not yet reclaimed.
func (f *EnemyFactory) Active() int { return f.active }

// Kind returns the definition ID an active enemy was created from.
func (f *EnemyFactory) Kind(e *component.Enemy) string { return f.kinds[e] }

func hopConfig(def *defs.HopDefinition) *component.HopConfig {
	if def == nil {
		return nil
	}
	cfg := &component.HopConfig{
		HeightRange:     def.Height,
		DelayRange:      def.Delay,
		LandingAccuracy: def.LandingAccuracy,
		FloorPercent:    def.FloorPercent,
	}
	if len(def.HeightCurve) > 0 {
		cfg.HeightCurve = geom.NewKeyframes(def.HeightCurve...)
	}
	if len(def.MovementCurve) > 0 {
		cfg.MovementCurve = geom.NewKeyframes(def.MovementCurve...)
	}
	return cfg
}
