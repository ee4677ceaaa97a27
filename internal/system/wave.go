// internal/system/wave.go
package system

import (
	"log"

	"github.com/Addison-Dalton/towder-defense-practice/internal/component"
	"github.com/Addison-Dalton/towder-defense-practice/internal/defs"
	"github.com/Addison-Dalton/towder-defense-practice/internal/entity"
	"github.com/Addison-Dalton/towder-defense-practice/internal/event"
	"github.com/Addison-Dalton/towder-defense-practice/pkg/tilemap"
)

// Picker chooses an index in [0, n).
type Picker interface {
	Intn(n int) int
}

// WaveSystem spawns the enemies of the current wave onto spawn points.
type WaveSystem struct {
	board           *tilemap.Board
	factory         *entity.EnemyFactory
	movement        *MovementSystem
	library         defs.EnemyLibrary
	rng             Picker
	eventDispatcher *event.Dispatcher
	activeEnemies   int
}

func NewWaveSystem(board *tilemap.Board, factory *entity.EnemyFactory, movement *MovementSystem,
	library defs.EnemyLibrary, rng Picker, eventDispatcher *event.Dispatcher) *WaveSystem {
	ws := &WaveSystem{
		board:           board,
		factory:         factory,
		movement:        movement,
		library:         library,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.EnemyReachedDestination, ws)
	return ws
}

func (s *WaveSystem) Update(deltaTime float64, wave *component.Wave) {
	if wave == nil || wave.Ended {
		return
	}
	if wave.EnemiesToSpawn > 0 {
		wave.SpawnTimer += deltaTime
		if wave.SpawnTimer >= wave.SpawnInterval {
			wave.SpawnTimer = 0
			if s.spawnEnemy(wave) {
				wave.EnemiesToSpawn--
				wave.Spawned++
			}
		}
	} else if s.activeEnemies == 0 {
		wave.Ended = true
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.WaveEnded,
			Data: event.WavePayload{Number: wave.Number, EnemyID: wave.EnemyID, Count: wave.Spawned},
		})
	}
}

// ActiveEnemies is the number of spawned enemies still walking.
func (s *WaveSystem) ActiveEnemies() int { return s.activeEnemies }

func (s *WaveSystem) ResetActiveEnemies() {
	s.activeEnemies = 0
}

// spawnEnemy returns false when nothing could be spawned; the wave retries
// after the next interval.
func (s *WaveSystem) spawnEnemy(wave *component.Wave) bool {
	def, ok := s.library[wave.EnemyID]
	if !ok {
		log.Printf("Error: Enemy definition not found for ID: %s", wave.EnemyID)
		return false
	}

	var candidates []*tilemap.Tile
	for _, tile := range s.board.SpawnPoints() {
		if tile.NextTileOnPath() != nil {
			candidates = append(candidates, tile)
		}
	}
	if len(candidates) == 0 {
		log.Printf("Wave %d: no spawn point with a path to the destination", wave.Number)
		return false
	}
	tile := candidates[s.rng.Intn(len(candidates))]

	e := s.factory.Get(def)
	e.SpawnOn(tile)
	s.movement.Add(e, def.ID)
	s.activeEnemies++
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.EnemyPayload{ID: e.ID(), Kind: def.ID, Tile: tile.Coord()},
	})
	return true
}

func (s *WaveSystem) StartWave(waveNumber int) *component.Wave {
	waveDef := defs.WaveFor(waveNumber)
	if _, ok := s.library[waveDef.EnemyID]; !ok {
		log.Printf("Wave %d: unknown enemy %q", waveNumber, waveDef.EnemyID)
		return nil
	}
	wave := &component.Wave{
		Number:         waveNumber,
		EnemyID:        waveDef.EnemyID,
		EnemiesToSpawn: waveDef.Count,
		SpawnInterval:  waveDef.SpawnInterval.Seconds(),
	}
	// Первый враг появляется сразу.
	wave.SpawnTimer = wave.SpawnInterval
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WavePayload{Number: waveNumber, EnemyID: waveDef.EnemyID, Count: waveDef.Count},
	})
	return wave
}

func (s *WaveSystem) OnEvent(e event.Event) {
	if e.Type == event.EnemyReachedDestination {
		s.activeEnemies--
	}
}
