// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Addison-Dalton/towder-defense-practice/internal/config"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState freezes the simulation and draws the previous state dimmed.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.stateMachine.TogglePause()
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)

	const pauseText = "PAUSED"
	x := (config.ScreenWidth - len(pauseText)*config.TextCharWidth) / 2
	drawText(screen, basicfont.Face7x13, pauseText, x, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
