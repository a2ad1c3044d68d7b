package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jigsaw/internal/config"
	"github.com/vovakirdan/tui-jigsaw/internal/core"
	"github.com/vovakirdan/tui-jigsaw/internal/registry"
)

// SessionOptions configure a SessionModel.
type SessionOptions struct {
	Config   config.JigsawConfig
	Runtime  core.RuntimeConfig
	Recorder *Recorder
	Solves   SolveSource
	Renderer *ScreenRenderer
}

// SessionModel manages the full flow: menu -> game or scoreboard -> menu.
// It is the top-level model for SSH sessions and `jigsaw menu`.
type SessionModel struct {
	opts      SessionOptions
	menu      MenuModel
	gameModel *GameModel
	scores    *ScoreboardModel
	lastPick  string
	notice    string
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions) SessionModel {
	if opts.Renderer == nil {
		opts.Renderer = NewScreenRenderer(nil)
	}
	if opts.Recorder == nil {
		opts.Recorder = NewRecorder("", nil, nil, nil)
	}
	return SessionModel{
		opts: opts,
		menu: NewMenuModel(opts.Runtime, opts.Renderer),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	switch {
	case m.gameModel != nil:
		return m.updateGame(msg)
	case m.scores != nil:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode. Child models return
// tea.Quit when they finish, so their commands are dropped on transitions.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		scores := NewScoreboardModel(m.opts.Solves, m.lastPick, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		m.scores = &scores
		return m, scores.Init()

	case m.menu.Selected() != nil:
		return m.startGame(m.menu.Selected().PictureID)
	}

	return m, cmd
}

func (m SessionModel) startGame(pictureID string) (tea.Model, tea.Cmd) {
	var pic registry.Picture
	if pictureID != "" {
		p, err := registry.Create(pictureID)
		if err != nil {
			return m.backToMenu(err.Error()), nil
		}
		pic = p
	}

	gm, err := NewGameModel(GameOptions{
		Config:   m.opts.Config,
		Runtime:  m.opts.Runtime,
		Picture:  pic,
		Recorder: m.opts.Recorder,
		Renderer: m.opts.Renderer,
		Embedded: true,
	})
	if err != nil {
		return m.backToMenu(err.Error()), nil
	}

	m.lastPick = pictureID
	m.notice = ""
	m.gameModel = &gm
	return m, gm.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.gameModel.BackToMenu() {
		if m.lastPick == "" {
			m.lastPick = m.gameModel.Game().Picture().ID()
		}
		return m.backToMenu(""), nil
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if scores, ok := newModel.(ScoreboardModel); ok {
		m.scores = &scores
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		return m.backToMenu(""), nil
	}

	return m, cmd
}

func (m SessionModel) backToMenu(notice string) SessionModel {
	m.gameModel = nil
	m.scores = nil
	m.notice = notice
	m.menu = NewMenuModel(m.opts.Runtime, m.opts.Renderer)
	return m
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch {
	case m.gameModel != nil:
		return m.gameModel.View()
	case m.scores != nil:
		return m.scores.View()
	}

	view := m.menu.View()
	if m.notice != "" {
		view += "\n" + centerText("Error: "+m.notice, m.opts.Runtime.ScreenW)
	}
	return view
}

// RunSession runs the menu-driven session locally.
func RunSession(opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
