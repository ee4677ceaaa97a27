package terminal

import "github.com/gdamore/tcell/v2"

const clickButtons = tcell.Button1 | tcell.Button2 | tcell.Button3

// MouseClicks turns tcell mouse reports into presses. tcell repeats the
// held buttons on every motion report, so a button counts only on the
// report where it goes down.
type MouseClicks struct {
	held tcell.ButtonMask
}

// Press returns the buttons that went down with ev.
func (m *MouseClicks) Press(ev *tcell.EventMouse) tcell.ButtonMask {
	buttons := ev.Buttons() & clickButtons
	pressed := buttons &^ m.held
	m.held = buttons
	return pressed
}
