package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jigsaw/internal/core"
)

func TestGestureFromMouse(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.MouseMsg
		kind   core.GestureKind
		wantOK bool
	}{
		{"left press", tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, core.GestureStart, true},
		{"right press", tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, core.GestureNone, false},
		{"wheel", tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, core.GestureNone, false},
		{"drag motion", tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, core.GestureMove, true},
		{"release without button", tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}, core.GestureEnd, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs, ok := GestureFromMouse(tt.msg)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, expected %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if gs.Kind != tt.kind || gs.X != 3 || gs.Y != 4 || gs.Source != core.SourceMouse {
				t.Errorf("gesture = %s", gs)
			}
		})
	}
}
