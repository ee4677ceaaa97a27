package app

import (
	"testing"

	"github.com/paulmach/orb"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Addison-Dalton/towder-defense-practice/internal/config"
	"github.com/Addison-Dalton/towder-defense-practice/internal/defs"
	"github.com/Addison-Dalton/towder-defense-practice/internal/event"
	"github.com/Addison-Dalton/towder-defense-practice/internal/telemetry"
	"github.com/Addison-Dalton/towder-defense-practice/pkg/tilemap"
)

func newTestGame(t *testing.T, w, h int) (*Game, *tracetest.SpanRecorder) {
	t.Helper()
	lib, err := defs.DefaultEnemyDefinitions()
	if err != nil {
		t.Fatal(err)
	}
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	settings := config.Settings{BoardWidth: w, BoardHeight: h, Seed: 1234}
	return NewGame(settings, lib, tp.Tracer("test")), sr
}

func spanNames(sr *tracetest.SpanRecorder) map[string]int {
	names := map[string]int{}
	for _, s := range sr.Ended() {
		names[s.Name()]++
	}
	return names
}

// groundPoint is the world ground-plane center of tile (x, y).
func groundPoint(g *Game, x, y int) orb.Point {
	c := g.Board.Tile(x, y).Center()
	return orb.Point{c.X, c.Z}
}

func TestNewGameTracesInit(t *testing.T) {
	g, sr := newTestGame(t, 5, 5)
	if spanNames(sr)["game.init"] != 1 {
		t.Errorf("spans = %v", spanNames(sr))
	}
	if g.Board.LastStats().Reachable != 25 {
		t.Errorf("stats = %+v", g.Board.LastStats())
	}
}

func TestNewGamePanicsWithoutDefinitions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewGame(config.Defaults(), defs.EnemyLibrary{}, telemetry.NoopTracer())
}

func TestToggleWallRecomputesPaths(t *testing.T) {
	g, sr := newTestGame(t, 5, 5)
	var recomputed []tilemap.PathStats
	g.EventDispatcher.SubscribeFunc(event.PathsRecomputed, func(e event.Event) {
		recomputed = append(recomputed, e.Data.(tilemap.PathStats))
	})
	changed := 0
	g.EventDispatcher.SubscribeFunc(event.ContentChanged, func(event.Event) { changed++ })

	if !g.ToggleWall(groundPoint(g, 1, 2)) {
		t.Fatal("wall not placed")
	}
	if g.Board.Tile(1, 2).Content().Type() != tilemap.ContentWall {
		t.Fatal("tile is not a wall")
	}
	if g.Board.Tile(0, 2).Distance() != 4 {
		t.Errorf("detour distance = %d, want 4", g.Board.Tile(0, 2).Distance())
	}
	if len(recomputed) != 1 || recomputed[0].Reachable != 24 || changed != 1 {
		t.Errorf("recomputed %v, changed %d", recomputed, changed)
	}

	// Spawn points do not block, so no recomputation.
	if !g.ToggleSpawnPoint(groundPoint(g, 0, 0)) || len(recomputed) != 1 || changed != 2 {
		t.Errorf("spawn point toggle: recomputed %d changed %d", len(recomputed), changed)
	}
	// Destination and off-board points are rejected.
	if g.ToggleWall(groundPoint(g, 2, 2)) || g.ToggleTower(orb.Point{10, 10}) {
		t.Error("invalid edits accepted")
	}
	if spanNames(sr)["board.edit"] != 3 {
		t.Errorf("spans = %v", spanNames(sr))
	}
}

func TestWaveRunsThroughGame(t *testing.T) {
	g, _ := newTestGame(t, 7, 7)
	g.ToggleSpawnPoint(groundPoint(g, 0, 0))
	g.ToggleSpawnPoint(groundPoint(g, 6, 6))
	g.ToggleTower(groundPoint(g, 3, 1))

	ended := 0
	g.EventDispatcher.SubscribeFunc(event.WaveEnded, func(event.Event) { ended++ })

	if !g.StartWave() {
		t.Fatal("wave did not start")
	}
	if g.StartWave() {
		t.Error("second wave started while the first runs")
	}

	sawEnemies := false
	for i := 0; g.WaveInProgress(); i++ {
		if i > 100000 {
			t.Fatal("wave never ended")
		}
		g.Update(1.0 / 60)
		if f := g.Frame(); len(f.Enemies) > 0 {
			sawEnemies = true
			if f.Tick != uint64(i+1) || f.Wave != 1 {
				t.Fatalf("frame header %+v", f)
			}
			for _, e := range f.Enemies {
				if e.Yaw < 0 || e.Yaw >= 360 {
					t.Fatalf("enemy %s yaw %v outside [0, 360)", e.ID, e.Yaw)
				}
			}
		}
	}

	if !sawEnemies || ended != 1 {
		t.Errorf("saw enemies %v, waves ended %d", sawEnemies, ended)
	}
	if g.Leaked != defs.WaveFor(1).Count {
		t.Errorf("leaked = %d, want %d", g.Leaked, defs.WaveFor(1).Count)
	}
	if g.Enemies.Active() != 0 {
		t.Errorf("active enemies = %d", g.Enemies.Active())
	}
	if g.Board.Tile(3, 1).Content().Type() != tilemap.ContentTower {
		t.Error("tower lost")
	}
}

func TestClearEnemiesAbortsWave(t *testing.T) {
	g, _ := newTestGame(t, 5, 5)
	g.ToggleSpawnPoint(groundPoint(g, 0, 0))
	g.StartWave()
	for i := 0; i < 120; i++ {
		g.Update(1.0 / 60)
	}
	if g.MovementSystem.Count() == 0 {
		t.Fatal("no enemies spawned")
	}
	g.ClearEnemies()
	if g.WaveInProgress() || g.Enemies.Active() != 0 || len(g.Frame().Enemies) != 0 {
		t.Error("clear left enemies behind")
	}
	if !g.StartWave() {
		t.Error("next wave should start after clearing")
	}
}

func TestSpeedMultiplier(t *testing.T) {
	g, _ := newTestGame(t, 5, 5)
	g.SetSpeed(4)
	g.Update(0.5)
	if g.GetGameTime() != 2 {
		t.Errorf("game time = %v, want 2", g.GetGameTime())
	}
	g.SetSpeed(-1)
	g.Update(0.5)
	if g.GetGameTime() != 2 {
		t.Error("negative speed must stop time")
	}
}
