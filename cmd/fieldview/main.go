// cmd/fieldview/main.go
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/paulmach/orb"

	game "github.com/Addison-Dalton/towder-defense-practice/internal/app"
	"github.com/Addison-Dalton/towder-defense-practice/internal/config"
	"github.com/Addison-Dalton/towder-defense-practice/internal/telemetry"
	"github.com/Addison-Dalton/towder-defense-practice/internal/terminal"
)

const frameTime = time.Second / 30

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}
	library, err := game.LoadLibrary(settings)
	if err != nil {
		log.Fatalf("Failed to load enemy definitions: %v", err)
	}
	g := game.NewGame(settings, library, telemetry.NoopTracer())

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)

	renderer := terminal.NewRenderer(screen, library)
	v := &viewer{game: g}
	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !v.handle(ev) {
				close(quit)
				return
			}
		case <-ticker.C:
			g.Update(frameTime.Seconds())
			renderer.Render(g.Board, g.MovementSystem.Poses(), status(g))
		}
	}
}

type viewer struct {
	game   *game.Game
	clicks terminal.MouseClicks
}

// handle applies one terminal event and reports whether to keep running.
func (v *viewer) handle(ev tcell.Event) bool {
	g := v.game
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
			return false
		case ev.Rune() == ' ':
			g.StartWave()
		case ev.Rune() == 'c':
			g.ClearEnemies()
		case ev.Rune() == '+':
			g.SetSpeed(g.SpeedMultiplier * 2)
		case ev.Rune() == '-':
			g.SetSpeed(g.SpeedMultiplier / 2)
		}
	case *tcell.EventMouse:
		pressed := v.clicks.Press(ev)
		x, y := ev.Position()
		tile := terminal.TileAtCell(g.Board, x, y)
		if pressed == tcell.ButtonNone || tile == nil {
			return true
		}
		c := tile.Center()
		p := orb.Point{c.X, c.Z}
		switch {
		case pressed&tcell.Button1 != 0:
			g.ToggleWall(p)
		case pressed&tcell.Button2 != 0:
			g.ToggleSpawnPoint(p)
		case pressed&tcell.Button3 != 0:
			g.ToggleTower(p)
		}
	}
	return true
}

func status(g *game.Game) []string {
	stats := g.Board.LastStats()
	return []string{
		fmt.Sprintf("wave %d  enemies %d  leaked %d  speed x%g", g.Wave-1, g.MovementSystem.Count(), g.Leaked, g.SpeedMultiplier),
		fmt.Sprintf("reachable %d  unreachable %d  longest %d", stats.Reachable, stats.Unreachable, stats.MaxDistance),
		"left: wall  right: spawn  middle: tower  space: wave  c: clear  q: quit",
	}
}
