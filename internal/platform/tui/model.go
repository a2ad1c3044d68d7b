package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jigsaw/internal/config"
	"github.com/vovakirdan/tui-jigsaw/internal/core"
	"github.com/vovakirdan/tui-jigsaw/internal/game"
	"github.com/vovakirdan/tui-jigsaw/internal/registry"
)

// GameOptions configure a GameModel.
type GameOptions struct {
	Config  config.JigsawConfig
	Runtime core.RuntimeConfig

	// Picture is used for every round when set; otherwise each round picks
	// a registered picture at random.
	Picture registry.Picture

	Recorder *Recorder
	Renderer *ScreenRenderer

	// Embedded models report Back through BackToMenu instead of quitting.
	Embedded bool
}

// GameModel is the Bubble Tea model for one puzzle.
type GameModel struct {
	game      *game.Game
	screen    *core.Screen
	renderer  *ScreenRenderer
	recorder  *Recorder
	keyMapper *KeyMapper
	tickRate  int
	tickID    uint64
	embedded  bool

	roundID   string
	lastCheck int

	quitting   bool
	backToMenu bool
}

// NewGameModel deals the first round.
func NewGameModel(opts GameOptions) (GameModel, error) {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Recorder == nil {
		opts.Recorder = NewRecorder("", nil, nil, nil)
	}
	if opts.Renderer == nil {
		opts.Renderer = NewScreenRenderer(nil)
	}

	g, err := game.New(game.Options{
		Config:  opts.Config,
		Runtime: opts.Runtime,
		Picture: opts.Picture,
		Pick:    registry.Pick,
		OnSolve: opts.Recorder.Solved,
	})
	if err != nil {
		return GameModel{}, err
	}

	m := GameModel{
		game:      g,
		screen:    core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		renderer:  opts.Renderer,
		recorder:  opts.Recorder,
		keyMapper: NewKeyMapper(),
		tickRate:  opts.Runtime.TickRate,
		tickID:    nextTickID(),
		embedded:  opts.Embedded,
	}
	m.observe()
	return m, nil
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.tickRate, m.tickID)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if gs, ok := GestureFromMouse(msg); ok {
			m.game.HandleGesture(gs)
			m.observe()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		m.game.Tick()
		m.observe()
		return m, tickCmd(m.tickRate, m.tickID)
	}

	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		if !m.embedded {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
	case core.ActionRestart:
		if m.game.HandleAction(action) {
			m.observe()
		}
	}

	return m, nil
}

// observe reports round changes and every completed win check to the
// recorder. A repeated "not solved" after more moves is reported again.
func (m *GameModel) observe() {
	pic := m.game.Picture().ID()
	if id := m.game.RoundID(); id != m.roundID {
		m.roundID = id
		m.recorder.RoundStarted(id, pic)
	}
	if n := m.game.Checks(); n != m.lastCheck {
		m.lastCheck = n
		m.recorder.Verdict(m.roundID, pic, m.game.Verdict(), m.game.State().Moves)
	}
}

// saveScreenshot writes the current frame as plain text.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".jigsaw", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("%s_%s.txt", m.game.Picture().ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current frame.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return m.renderer.Render(m.screen)
}

// Game exposes the running puzzle.
func (m GameModel) Game() *game.Game { return m.game }

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool { return m.quitting }

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool { return m.backToMenu }

// Run plays locally until the user quits.
func Run(opts GameOptions) error {
	model, err := NewGameModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
