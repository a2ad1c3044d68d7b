// Package tui runs the jigsaw in a terminal: the Bubble Tea models for
// local play, the picture menu, the solve history and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance game time by one frame. ID names the tick
// loop it belongs to, so a loop left over from a previous game dies out
// instead of speeding up the next one.
type TickMsg struct {
	ID uint64
	At time.Time
}

var tickIDs atomic.Uint64

func nextTickID() uint64 {
	return tickIDs.Add(1)
}

// tickCmd returns a command that sends a TickMsg after one frame at the
// given rate. Non-positive rates fall back to 60 fps.
func tickCmd(tickRate int, id uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, At: t}
	})
}
