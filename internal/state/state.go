// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State is one screen of the window: the running board or the pause overlay.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine owns the active state. Switching calls Exit on the old state
// before Enter on the new one; switching to the active state does nothing.
type StateMachine struct {
	current State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState switches states and returns the one that was active.
func (sm *StateMachine) SetState(next State) State {
	prev := sm.current
	if next == prev {
		return prev
	}
	if prev != nil {
		prev.Exit()
	}
	sm.current = next
	if next != nil {
		next.Enter()
	}
	return prev
}

// Current returns the active state, nil before the first SetState.
func (sm *StateMachine) Current() State {
	return sm.current
}

// TogglePause overlays a pause state on the active one, or returns to the
// paused state when the overlay is active.
func (sm *StateMachine) TogglePause() {
	if p, ok := sm.Current().(*PauseState); ok {
		sm.SetState(p.previousState)
		return
	}
	if sm.current != nil {
		sm.SetState(NewPauseState(sm, sm.Current()))
	}
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
