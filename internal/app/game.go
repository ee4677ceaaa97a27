// internal/app/game.go
package app

import (
	"context"
	"log"

	"github.com/paulmach/orb"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Addison-Dalton/towder-defense-practice/internal/component"
	"github.com/Addison-Dalton/towder-defense-practice/internal/config"
	"github.com/Addison-Dalton/towder-defense-practice/internal/defs"
	"github.com/Addison-Dalton/towder-defense-practice/internal/entity"
	"github.com/Addison-Dalton/towder-defense-practice/internal/event"
	"github.com/Addison-Dalton/towder-defense-practice/internal/stream"
	"github.com/Addison-Dalton/towder-defense-practice/pkg/geom"
	"github.com/Addison-Dalton/towder-defense-practice/internal/system"
	"github.com/Addison-Dalton/towder-defense-practice/internal/utils"
	"github.com/Addison-Dalton/towder-defense-practice/pkg/tilemap"
)

// Game holds the main game state and logic.
type Game struct {
	Board           *tilemap.Board
	Contents        *entity.ContentFactory
	Enemies         *entity.EnemyFactory
	Library         defs.EnemyLibrary
	MovementSystem  *system.MovementSystem
	WaveSystem      *system.WaveSystem
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	SpeedMultiplier float64

	// Wave is the number of the next wave to start.
	Wave int
	// Leaked counts enemies that reached the destination.
	Leaked int

	tracer      trace.Tracer
	currentWave *component.Wave
	gameTime    float64
	tick        uint64
}

// NewGame builds the board and every system from settings.
func NewGame(settings config.Settings, library defs.EnemyLibrary, tracer trace.Tracer) *Game {
	if len(library) == 0 {
		panic("enemy library cannot be empty")
	}
	if tracer == nil {
		panic("tracer cannot be nil")
	}

	_, span := tracer.Start(context.Background(), "game.init")
	defer span.End()

	rng := utils.NewPRNGService(settings.Seed)
	contents := entity.NewContentFactory()
	eventDispatcher := event.NewDispatcher()
	board := tilemap.NewBoard(settings.BoardWidth, settings.BoardHeight, contents)

	g := &Game{
		Board:           board,
		Contents:        contents,
		Enemies:         entity.NewEnemyFactory(rng),
		Library:         library,
		MovementSystem:  system.NewMovementSystem(eventDispatcher),
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		SpeedMultiplier: 1.0,
		Wave:            1,
		tracer:          tracer,
	}
	g.WaveSystem = system.NewWaveSystem(board, g.Enemies, g.MovementSystem, library, rng, eventDispatcher)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.WaveEnded, listener)
	eventDispatcher.Subscribe(event.EnemyReachedDestination, listener)

	stats := board.LastStats()
	span.SetAttributes(
		attribute.Int("board.width", settings.BoardWidth),
		attribute.Int("board.height", settings.BoardHeight),
		attribute.Int64("rng.seed", rng.Seed()),
		attribute.Int("enemy.definitions", len(library)),
		attribute.Int("paths.reachable", stats.Reachable),
		attribute.Int("paths.max_distance", stats.MaxDistance),
	)
	log.Printf("Board %dx%d ready, seed %d", settings.BoardWidth, settings.BoardHeight, rng.Seed())
	return g
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveEnded:
		if p, ok := e.Data.(event.WavePayload); ok {
			log.Printf("Wave %d ended, %d enemies", p.Number, p.Count)
		}
		l.game.currentWave = nil
	case event.EnemyReachedDestination:
		l.game.Leaked++
	}
}

// Update advances the simulation: tile contents, then spawning, then
// movement. Board edits happen between updates, so enemies always move on
// an up to date flow field.
func (g *Game) Update(deltaTime float64) {
	dt := deltaTime * g.SpeedMultiplier
	g.gameTime += dt
	g.tick++

	g.Board.Update(dt)
	g.WaveSystem.Update(dt, g.currentWave)
	g.MovementSystem.Update(dt)
}

// StartWave begins the next enemy wave. It does nothing while a wave runs.
func (g *Game) StartWave() bool {
	if g.currentWave != nil {
		return false
	}
	g.WaveSystem.ResetActiveEnemies()
	g.currentWave = g.WaveSystem.StartWave(g.Wave)
	if g.currentWave == nil {
		return false
	}
	g.Wave++
	return true
}

// CurrentWave is the running wave, nil between waves.
func (g *Game) CurrentWave() *component.Wave { return g.currentWave }

// WaveInProgress reports whether a wave is spawning or walking.
func (g *Game) WaveInProgress() bool { return g.currentWave != nil }

// ClearEnemies removes every enemy and aborts the current wave.
func (g *Game) ClearEnemies() {
	g.MovementSystem.Clear()
	g.WaveSystem.ResetActiveEnemies()
	g.currentWave = nil
}

func (g *Game) SetSpeed(multiplier float64) {
	if multiplier < 0 {
		multiplier = 0
	}
	g.SpeedMultiplier = multiplier
}

func (g *Game) GetGameTime() float64 { return g.gameTime }

// ToggleWall switches the tile under ground point p between empty and wall.
func (g *Game) ToggleWall(p orb.Point) bool {
	return g.edit(p, g.Board.ToggleWall)
}

func (g *Game) ToggleTower(p orb.Point) bool {
	return g.edit(p, g.Board.ToggleTower)
}

func (g *Game) ToggleSpawnPoint(p orb.Point) bool {
	return g.edit(p, g.Board.ToggleSpawnPoint)
}

func (g *Game) edit(p orb.Point, toggle func(*tilemap.Tile) bool) bool {
	tile := g.Board.TileAt(p)
	if tile == nil {
		return false
	}
	_, span := g.tracer.Start(context.Background(), "board.edit")
	defer span.End()

	from := tile.Content().Type()
	wasBlocking := tile.BlocksPath()
	if !toggle(tile) {
		span.SetAttributes(attribute.Bool("changed", false))
		return false
	}

	to := tile.Content().Type()
	span.SetAttributes(
		attribute.Bool("changed", true),
		attribute.Int("tile.x", tile.Coord().X),
		attribute.Int("tile.y", tile.Coord().Y),
		attribute.String("content.from", from.String()),
		attribute.String("content.to", to.String()),
	)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.ContentChanged,
		Data: event.ContentPayload{Tile: tile.Coord(), From: from, To: to},
	})

	if wasBlocking != tile.BlocksPath() {
		stats := g.Board.LastStats()
		span.SetAttributes(
			attribute.Int("paths.reachable", stats.Reachable),
			attribute.Int("paths.unreachable", stats.Unreachable),
			attribute.Int("paths.max_distance", stats.MaxDistance),
		)
		g.EventDispatcher.Dispatch(event.Event{Type: event.PathsRecomputed, Data: stats})
	}
	return true
}

// Frame snapshots the current tick for pose sinks.
func (g *Game) Frame() stream.Frame {
	views := g.MovementSystem.Poses()
	f := stream.Frame{
		Tick:    g.tick,
		Time:    g.gameTime,
		Wave:    g.Wave - 1,
		Enemies: make([]stream.EnemyFrame, len(views)),
	}
	for i, v := range views {
		pos := v.Pose.ModelPosition()
		f.Enemies[i] = stream.EnemyFrame{
			ID:      v.ID,
			Kind:    v.Kind,
			X:       pos.X,
			Y:       pos.Y,
			Z:       pos.Z,
			Yaw:     geom.NormalizeDegrees(v.Pose.Yaw),
			Scale:   v.Pose.Scale,
			Resting: v.Resting,
		}
	}
	return f
}
