package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jigsaw/internal/config"
	"github.com/vovakirdan/tui-jigsaw/internal/core"
)

func newTestSession(t *testing.T) (SessionModel, *fakeFeed) {
	t.Helper()
	pub := &fakeFeed{}
	return NewSessionModel(SessionOptions{
		Config:   config.DefaultConfig(),
		Runtime:  core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3},
		Recorder: NewRecorder("carol", nil, pub, nil),
		Solves:   &fakeSource{},
		Renderer: plainRenderer(),
	}), pub
}

func send(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m, pub := newTestSession(t)

	// Down to the first registered picture, then play it.
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.gameModel == nil {
		t.Fatal("enter should start a game")
	}
	if cmd == nil {
		t.Error("starting a game should start its tick loop")
	}
	if m.gameModel.Game().Picture().ID() != "stripes-a" {
		t.Errorf("picture = %q", m.gameModel.Game().Picture().ID())
	}
	if ev, ok := pub.last("round_started"); !ok || ev.Session != "carol" {
		t.Errorf("round_started = %+v, %v", ev, ok)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.gameModel != nil {
		t.Fatal("esc should return to the menu")
	}
	if m.lastPick != "stripes-a" {
		t.Errorf("lastPick = %q", m.lastPick)
	}
	if !strings.Contains(m.View(), "Pick a picture") {
		t.Error("menu view expected")
	}
}

func TestSessionRandomPicture(t *testing.T) {
	m, _ := newTestSession(t)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.gameModel == nil {
		t.Fatal("random entry should start a game")
	}
	id := m.gameModel.Game().Picture().ID()
	if id != "stripes-a" && id != "stripes-b" {
		t.Errorf("picture = %q, expected a registered one", id)
	}
}

func TestSessionScoreboard(t *testing.T) {
	m, _ := newTestSession(t)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scores == nil {
		t.Fatal("tab should open the scoreboard")
	}
	if !strings.Contains(m.View(), "BEST SOLVES") {
		t.Error("scoreboard view expected")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scores != nil {
		t.Fatal("esc should close the scoreboard")
	}
}

func TestSessionQuit(t *testing.T) {
	m, _ := newTestSession(t)
	m, cmd := send(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q should quit the session")
	}
	if m.View() != "" {
		t.Error("quitting session renders nothing")
	}
}

func TestSessionResize(t *testing.T) {
	m, _ := newTestSession(t)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if w, h := m.gameModel.Game().Layout().Size(); w != 120 || h != 40 {
		t.Errorf("game layout = %dx%d, expected the resized terminal", w, h)
	}
}
