// internal/state/game_state.go
package state

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	game "github.com/Addison-Dalton/towder-defense-practice/internal/app"
	"github.com/Addison-Dalton/towder-defense-practice/internal/config"
	"github.com/Addison-Dalton/towder-defense-practice/internal/stream"
	"github.com/Addison-Dalton/towder-defense-practice/internal/ui"
	"github.com/Addison-Dalton/towder-defense-practice/pkg/render"
)

// FramePublisher receives pose frames, e.g. the websocket hub.
type FramePublisher interface {
	Publish(frame stream.Frame)
}

// GameState — состояние игры
type GameState struct {
	sm          *StateMachine
	game        *game.Game
	renderer    *ui.BoardRenderer
	projection  render.Projection
	speedButton *ui.SpeedButton
	waveLabel   *ui.WaveIndicator
	publisher   FramePublisher
	face        font.Face
	ticks       int
}

// NewGameState wraps g for the window. publisher may be nil.
func NewGameState(sm *StateMachine, g *game.Game, publisher FramePublisher) *GameState {
	projection := render.NewProjection(config.ScreenWidth, config.ScreenHeight, config.TileSize)
	return &GameState{
		sm:          sm,
		game:        g,
		renderer:    ui.NewBoardRenderer(g.Board, g.Library, projection, g.EventDispatcher),
		projection:  projection,
		speedButton: ui.NewSpeedButton(float32(config.ScreenWidth-config.SpeedButtonOffsetX), config.SpeedButtonY, config.SpeedButtonSize),
		waveLabel:   ui.NewWaveIndicator(config.ScreenWidth/2, config.WaveIndicatorY),
		publisher:   publisher,
		face:        basicfont.Face7x13,
	}
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sm.TogglePause()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.game.StartWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.game.ClearEnemies()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.renderer.ShowPaths = !g.renderer.ShowPaths
		g.renderer.Invalidate()
	}

	// Клики обрабатываем до шага симуляции: пути пересчитываются сразу.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.speedButton.IsClicked(x, y) {
			g.game.SetSpeed(g.speedButton.ToggleState())
		} else {
			p := g.projection.ToGround(x, y)
			if ebiten.IsKeyPressed(ebiten.KeyShift) {
				g.game.ToggleSpawnPoint(p)
			} else {
				g.game.ToggleWall(p)
			}
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		g.game.ToggleTower(g.projection.ToGround(x, y))
	}

	g.game.Update(deltaTime)

	g.ticks++
	if g.publisher != nil && g.ticks%config.StreamEveryNthTick == 0 {
		g.publisher.Publish(g.game.Frame())
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game.MovementSystem.Poses())
	g.speedButton.Draw(screen)
	g.waveLabel.Draw(screen, g.game.CurrentWave())
	g.drawHUD(screen)
}

func (g *GameState) drawHUD(screen *ebiten.Image) {
	stats := g.game.Board.LastStats()
	status := "SPACE: start wave"
	if g.game.WaveInProgress() {
		status = fmt.Sprintf("wave %d: %d enemies", g.game.Wave-1, g.game.MovementSystem.Count())
	}
	lines := []string{
		status,
		fmt.Sprintf("leaked: %d   speed: x%.0f", g.game.Leaked, g.game.SpeedMultiplier),
		fmt.Sprintf("reachable: %d  unreachable: %d  longest path: %d", stats.Reachable, stats.Unreachable, stats.MaxDistance),
		"LMB wall  SHIFT+LMB spawn  RMB tower  V arrows  C clear  P pause",
	}
	for i, line := range lines {
		drawText(screen, g.face, line, 10, 20+i*16, config.TextLightColor)
	}
}

func drawText(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color) {
	text.Draw(screen, s, face, x, y+config.TextOffsetY, clr)
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
