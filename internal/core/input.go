package core

import "fmt"

// GestureKind is the phase of a pointer gesture.
type GestureKind int

const (
	GestureNone  GestureKind = iota
	GestureStart             // pointer-down / touch-start
	GestureMove              // pointer-move / touch-move
	GestureEnd               // pointer-up / touch-end
)

// String returns a human-readable name for the gesture kind.
func (k GestureKind) String() string {
	switch k {
	case GestureNone:
		return "None"
	case GestureStart:
		return "Start"
	case GestureMove:
		return "Move"
	case GestureEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// PointerSource identifies the input modality a gesture came from.
// Mouse and touch feed the same drag lifecycle.
type PointerSource int

const (
	SourceMouse PointerSource = iota
	SourceTouch
)

// String returns a human-readable name for the pointer source.
func (s PointerSource) String() string {
	switch s {
	case SourceMouse:
		return "mouse"
	case SourceTouch:
		return "touch"
	default:
		return "unknown"
	}
}

// Gesture is a single low-level pointer event in screen cell coordinates.
type Gesture struct {
	Kind   GestureKind
	X, Y   int
	Source PointerSource
}

// NewGesture creates a mouse gesture of the given kind at (x, y).
func NewGesture(kind GestureKind, x, y int) Gesture {
	return Gesture{Kind: kind, X: x, Y: y, Source: SourceMouse}
}

// String implements fmt.Stringer.
func (g Gesture) String() string {
	return fmt.Sprintf("%s(%d,%d %s)", g.Kind, g.X, g.Y, g.Source)
}

// Action represents a semantic non-gesture action, abstracted from key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow - menu navigation
	ActionDown              // S, Down arrow - menu navigation
	ActionConfirm           // Enter - confirm selection in menu
	ActionBack              // B, Escape - go back to menu
	ActionRestart           // R key - restart after a solve
	ActionQuit              // Q, Ctrl+C - exit
	ActionScoreboard        // Tab - open the solve history
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionScoreboard:
		return "Scoreboard"
	default:
		return "Unknown"
	}
}
