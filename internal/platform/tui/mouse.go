package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jigsaw/internal/core"
)

// GestureFromMouse converts a terminal mouse report into a pointer gesture.
// Only the left button starts a drag. Motion and release are passed through
// whatever button the terminal reports, since many terminals report
// releases without one; the drag controller ignores them when idle.
func GestureFromMouse(msg tea.MouseMsg) (core.Gesture, bool) {
	var kind core.GestureKind

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return core.Gesture{}, false
		}
		kind = core.GestureStart
	case tea.MouseActionMotion:
		kind = core.GestureMove
	case tea.MouseActionRelease:
		kind = core.GestureEnd
	default:
		return core.Gesture{}, false
	}

	return core.NewGesture(kind, msg.X, msg.Y), true
}
