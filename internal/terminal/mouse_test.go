package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestMouseClicksCountPressOnce(t *testing.T) {
	var clicks MouseClicks
	steps := []struct {
		buttons tcell.ButtonMask
		want    tcell.ButtonMask
	}{
		{tcell.Button1, tcell.Button1},
		{tcell.Button1, tcell.ButtonNone}, // drag
		{tcell.Button1, tcell.ButtonNone},
		{tcell.Button1 | tcell.Button2, tcell.Button2},
		{tcell.ButtonNone, tcell.ButtonNone},
		{tcell.ButtonNone, tcell.ButtonNone}, // plain motion
		{tcell.Button1 | tcell.WheelUp, tcell.Button1},
	}
	for i, s := range steps {
		got := clicks.Press(tcell.NewEventMouse(i, 0, s.buttons, tcell.ModNone))
		if got != s.want {
			t.Errorf("step %d: pressed %v, want %v", i, got, s.want)
		}
	}
}
