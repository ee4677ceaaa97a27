package component

import (
	"math"
	"testing"

	"github.com/Addison-Dalton/towder-defense-practice/internal/utils"
	"github.com/Addison-Dalton/towder-defense-practice/pkg/geom"
	"github.com/Addison-Dalton/towder-defense-practice/pkg/tilemap"
)

type stubContentFactory struct{}

func (f *stubContentFactory) Get(t tilemap.ContentType) tilemap.Content {
	if t == tilemap.ContentTower {
		return NewTower(f)
	}
	return NewTileContent(t, f)
}

func (f *stubContentFactory) Reclaim(tilemap.Content) {}

type stubEnemyPool struct {
	reclaimed []*Enemy
}

func (p *stubEnemyPool) Reclaim(e *Enemy) {
	p.reclaimed = append(p.reclaimed, e)
}

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func nearVec(a, b geom.Vec3) bool {
	return a.Distance(b) < 1e-6
}

func newTestBoard(w, h int) *tilemap.Board {
	return tilemap.NewBoard(w, h, &stubContentFactory{})
}

func TestForwardSegmentIsLinear(t *testing.T) {
	// Single column: every tile walks north into the center.
	board := newTestBoard(1, 5)
	pool := &stubEnemyPool{}
	e := NewEnemy(pool, "e1")
	e.Initialize(1, 1, 0, nil, nil)
	e.SpawnOn(board.Tile(0, 0))

	if e.State() != StateIntro || !near(e.ProgressFactor(), 2) {
		t.Fatalf("intro: state %s factor %v", e.State(), e.ProgressFactor())
	}
	e.Update(0.25)
	if want := (geom.Vec3{Z: -1.75}); !nearVec(e.Pose().Position, want) {
		t.Errorf("intro midpoint = %+v, want %+v", e.Pose().Position, want)
	}

	e.Update(0.25)
	if e.State() != StateTraveling || e.DirectionChange() != tilemap.None {
		t.Fatalf("expected forward segment, got %s / %s", e.State(), e.DirectionChange())
	}
	if !near(e.ProgressFactor(), 1) {
		t.Errorf("forward factor = %v, want speed", e.ProgressFactor())
	}

	e.Update(0.5)
	mid := geom.LerpVec3(e.PositionFrom(), e.PositionTo(), 0.5)
	if !near(e.Progress(), 0.5) || !nearVec(e.Pose().Position, mid) {
		t.Errorf("forward at progress %v: position %+v, want midpoint %+v", e.Progress(), e.Pose().Position, mid)
	}
	if e.Pose().Yaw != tilemap.North.Angle() {
		t.Errorf("yaw = %v", e.Pose().Yaw)
	}
}

func TestProgressFactors(t *testing.T) {
	cases := []struct {
		name    string
		offset  float64
		prepare func(e *Enemy)
		want    float64
	}{
		{"right center lane", 0, (*Enemy).prepareTurnRight, 4 / math.Pi},
		{"right outer lane", 0.25, (*Enemy).prepareTurnRight, 1 / (math.Pi / 2 * 0.25)},
		{"left center lane", 0, (*Enemy).prepareTurnLeft, 4 / math.Pi},
		{"left offset lane", 0.25, (*Enemy).prepareTurnLeft, 1 / (math.Pi / 2 * 0.75)},
		{"around center lane uses floor", 0, (*Enemy).prepareTurnAround, 1 / (math.Pi * TurnAroundMinRadius)},
		{"around small offset uses floor", -0.1, (*Enemy).prepareTurnAround, 1 / (math.Pi * TurnAroundMinRadius)},
		{"around wide offset", 0.3, (*Enemy).prepareTurnAround, 1 / (math.Pi * 0.3)},
		{"forward", 0.3, (*Enemy).prepareForward, 1},
	}
	for _, tc := range cases {
		e := NewEnemy(&stubEnemyPool{}, tc.name)
		e.Initialize(1, 1, tc.offset, nil, nil)
		tc.prepare(e)
		if math.IsInf(e.ProgressFactor(), 0) || math.IsNaN(e.ProgressFactor()) {
			t.Fatalf("%s: factor is not finite", tc.name)
		}
		if !near(e.ProgressFactor(), tc.want) {
			t.Errorf("%s: factor = %v, want %v", tc.name, e.ProgressFactor(), tc.want)
		}
	}
}

func TestTurnAroundDirectionFollowsOffsetSign(t *testing.T) {
	e := NewEnemy(&stubEnemyPool{}, "left")
	e.Initialize(1, 1, -0.2, nil, nil)
	e.directionAngleFrom = 90
	e.prepareTurnAround()
	if e.directionAngleTo != 270 {
		t.Errorf("negative offset: angle to = %v, want 270", e.directionAngleTo)
	}

	e = NewEnemy(&stubEnemyPool{}, "right")
	e.Initialize(1, 1, 0.2, nil, nil)
	e.directionAngleFrom = 90
	e.prepareTurnAround()
	if e.directionAngleTo != -90 {
		t.Errorf("positive offset: angle to = %v, want -90", e.directionAngleTo)
	}
}

func TestTurnRightGeometry(t *testing.T) {
	e := NewEnemy(&stubEnemyPool{}, "turn")
	e.Initialize(1, 1, 0, nil, nil)
	// Entering the tile at the origin through its south edge, leaving east.
	e.positionFrom = geom.Vec3{Z: -0.5}
	e.directionAngleFrom = tilemap.North.Angle()
	e.direction = tilemap.East
	e.directionChange = tilemap.TurnRight
	e.prepareTurnRight()

	e.progress = 0
	e.updatePose()
	if got := e.Pose().ModelPosition(); !nearVec(got, geom.Vec3{Z: -0.5}) {
		t.Errorf("turn start = %+v, want south edge", got)
	}
	e.progress = 1
	e.updatePose()
	if got := e.Pose().ModelPosition(); !nearVec(got, geom.Vec3{X: 0.5}) {
		t.Errorf("turn end = %+v, want east edge", got)
	}
	e.progress = 0.5
	e.updatePose()
	// Halfway along a quarter circle of radius 0.5 around the south-east corner.
	corner := geom.Vec3{X: 0.5, Z: -0.5}
	if r := e.Pose().ModelPosition().Distance(corner); !near(r, 0.5) {
		t.Errorf("turn radius = %v, want 0.5", r)
	}
}

func TestTurnLeftGeometry(t *testing.T) {
	e := NewEnemy(&stubEnemyPool{}, "turn")
	e.Initialize(1, 1, 0, nil, nil)
	e.positionFrom = geom.Vec3{Z: -0.5}
	e.directionAngleFrom = tilemap.North.Angle()
	e.direction = tilemap.West
	e.directionChange = tilemap.TurnLeft
	e.prepareTurnLeft()

	e.progress = 0
	e.updatePose()
	if got := e.Pose().ModelPosition(); !nearVec(got, geom.Vec3{Z: -0.5}) {
		t.Errorf("turn start = %+v, want south edge", got)
	}
	e.progress = 1
	e.updatePose()
	if got := e.Pose().ModelPosition(); !nearVec(got, geom.Vec3{X: -0.5}) {
		t.Errorf("turn end = %+v, want west edge", got)
	}
}

func TestCornerToDestination(t *testing.T) {
	for _, offset := range []float64{0, 0.25, -0.25} {
		board := newTestBoard(5, 5)
		pool := &stubEnemyPool{}
		e := NewEnemy(pool, "walker")
		e.Initialize(1, 1, offset, nil, nil)
		start := board.Tile(0, 0)
		e.SpawnOn(start)

		const dt = 0.01
		prev := e.Pose().ModelPosition()
		var last Pose
		ticks := 0
		for e.Update(dt) {
			ticks++
			if ticks > 10000 {
				t.Fatalf("offset %v: enemy never arrived", offset)
			}
			pos := e.Pose().ModelPosition()
			// Constant real speed up to the lane offset stretching arcs.
			if step := pos.Distance(prev); step > 2.5*dt+eps {
				t.Fatalf("offset %v: jump of %v at tick %d (%s)", offset, step, ticks, e.DirectionChange())
			}
			prev = pos
			last = e.Pose()
		}

		if e.Transitions() != start.Distance() {
			t.Errorf("offset %v: transitions = %d, want %d", offset, e.Transitions(), start.Distance())
		}
		if e.State() != StateDone || len(pool.reclaimed) != 1 || pool.reclaimed[0] != e {
			t.Fatalf("offset %v: enemy not reclaimed exactly once", offset)
		}
		if d := last.Position.Distance(board.Destination().Center()); d > 0.05 {
			t.Errorf("offset %v: last position %v away from destination", offset, d)
		}
		if e.Update(dt) || len(pool.reclaimed) != 1 {
			t.Error("done enemy must stay done")
		}
	}
}

func TestSpawnOnPathlessTilePanics(t *testing.T) {
	board := newTestBoard(5, 5)
	board.ToggleWall(board.Tile(1, 0))
	board.ToggleWall(board.Tile(0, 1))

	for name, tile := range map[string]*tilemap.Tile{
		"enclosed":    board.Tile(0, 0),
		"destination": board.Destination(),
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			e := NewEnemy(&stubEnemyPool{}, name)
			e.Initialize(1, 1, 0, nil, nil)
			e.SpawnOn(tile)
		}()
	}
}

func TestPathOffsetMustStayInsideTile(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for offset 0.5")
		}
	}()
	NewEnemy(&stubEnemyPool{}, "x").Initialize(1, 1, 0.5, nil, nil)
}

func hopConfig(delay float64) *HopConfig {
	return &HopConfig{
		HeightCurve:     geom.HopArc,
		MovementCurve:   geom.EaseInOut,
		HeightRange:     utils.FloatRange{Min: 0.5, Max: 0.5},
		DelayRange:      utils.FloatRange{Min: delay, Max: delay},
		LandingAccuracy: utils.FloatRange{Min: -0.2, Max: 0.2},
		FloorPercent:    0.1,
	}
}

type tickSnapshot struct {
	progress    float64
	transitions int
	pose        Pose
}

func snapshot(e *Enemy) tickSnapshot {
	return tickSnapshot{e.Progress(), e.Transitions(), e.Pose()}
}

func TestHopWithoutDelayNeverRests(t *testing.T) {
	board := newTestBoard(5, 5)
	e := NewEnemy(&stubEnemyPool{}, "hopper")
	e.Initialize(1, 1, 0, hopConfig(0), utils.NewPRNGService(7))
	e.SpawnOn(board.Tile(0, 0))

	before := snapshot(e)
	for ticks := 0; e.Update(0.02); ticks++ {
		if ticks > 10000 {
			t.Fatal("hopper never arrived")
		}
		after := snapshot(e)
		if after == before {
			t.Fatalf("tick %d was a resting tick", ticks)
		}
		before = after
	}
}

// Rests are measured in seconds, so a faster hopper rests just as long.
func TestHopRestsOncePerSegment(t *testing.T) {
	for _, speed := range []float64{1, 3} {
		board := newTestBoard(5, 5)
		e := NewEnemy(&stubEnemyPool{}, "hopper")
		e.Initialize(1, speed, 0, hopConfig(0.09), utils.NewPRNGService(7))
		start := board.Tile(0, 0)
		e.SpawnOn(start)

		var restRuns, runLength int
		var runLengths []int
		before := snapshot(e)
		for ticks := 0; e.Update(0.02); ticks++ {
			if ticks > 10000 {
				t.Fatalf("speed %v: hopper never arrived", speed)
			}
			after := snapshot(e)
			if after == before {
				runLength++
			} else if runLength > 0 {
				restRuns++
				runLengths = append(runLengths, runLength)
				runLength = 0
			}
			before = after
		}

		// Intro, distance-1 tile segments and the outro: one rest before each.
		if want := start.Distance() + 1; restRuns != want {
			t.Errorf("speed %v: rest periods = %d, want %d", speed, restRuns, want)
		}
		for i, n := range runLengths {
			if n != 4 {
				t.Errorf("speed %v: rest period %d lasted %d ticks, want 4", speed, i, n)
			}
		}
	}
}

func TestHopLandingJitter(t *testing.T) {
	board := newTestBoard(5, 5)
	e := NewEnemy(&stubEnemyPool{}, "hopper")
	e.Initialize(1, 1, 0, hopConfig(0), utils.NewPRNGService(11))
	e.SpawnOn(board.Tile(0, 0))

	for e.Transitions() == 0 {
		e.Update(0.01)
	}
	target := e.PositionTo()
	exit := e.TileFrom().ExitPoint()
	if math.Abs(target.X-exit.X) > 0.2+eps || math.Abs(target.Z-exit.Z) > 0.2+eps || target.Y != exit.Y {
		t.Errorf("landing zone %+v too far from exit %+v", target, exit)
	}
	if target == exit {
		t.Error("expected jitter on the landing zone")
	}
	for e.Transitions() == 1 {
		if e.PositionTo() != target {
			t.Fatal("landing zone changed mid-segment")
		}
		e.Update(0.01)
	}
}

func TestHopHeight(t *testing.T) {
	h := newHopMotion(*hopConfig(0), utils.NewPRNGService(1))
	if !near(h.heightAt(0.5), 0.45) {
		t.Errorf("apex = %v, want 0.45", h.heightAt(0.5))
	}
	if !near(h.heightAt(0), -0.05) {
		t.Errorf("floor = %v, want -0.05", h.heightAt(0))
	}
	p := h.positionAt(geom.Vec3{}, geom.Vec3{X: 1, Z: 1}, 0.5)
	if !near(p.X, 0.5) || !near(p.Z, 0.5) || !near(p.Y, 0.45) {
		t.Errorf("hop midpoint = %+v", p)
	}
}

func TestPoseModelPosition(t *testing.T) {
	p := Pose{Position: geom.Vec3{X: 1}, Yaw: 90, ModelOffset: geom.Vec3{X: 0.25}}
	if got := p.ModelPosition(); !nearVec(got, geom.Vec3{X: 1, Z: -0.25}) {
		t.Errorf("model position = %+v", got)
	}
}
