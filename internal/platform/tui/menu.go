package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-jigsaw/internal/core"
	"github.com/vovakirdan/tui-jigsaw/internal/registry"
)

// Preview thumbnail size in cells.
const (
	previewW = 24
	previewH = 8
)

// MenuItem represents a selectable picture. An empty PictureID means a
// random picture per round.
type MenuItem struct {
	PictureID string
	Title     string
}

// MenuModel is the Bubble Tea model for the picture picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	renderer       *ScreenRenderer
	preview        *core.Screen
	quitting       bool
	selected       *MenuItem // Set when user selects a picture
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model over the registered pictures.
func NewMenuModel(cfg core.RuntimeConfig, renderer *ScreenRenderer) MenuModel {
	pictures := registry.List()
	items := make([]MenuItem, 0, len(pictures)+1)
	items = append(items, MenuItem{Title: "Random picture"})
	for _, p := range pictures {
		items = append(items, MenuItem{PictureID: p.ID, Title: p.Title})
	}

	if renderer == nil {
		renderer = NewScreenRenderer(nil)
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		renderer:  renderer,
		preview:   core.NewScreen(previewW, previewH),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		selected := m.items[m.cursor]
		m.selected = &selected
		return m, tea.Quit

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  J I G S A W  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick a picture", m.width))
	b.WriteString("\n\n")

	var list strings.Builder
	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		list.WriteString(cursor + item.Title + "\n")
	}

	body := list.String()
	if thumb := m.renderPreview(); thumb != "" {
		frame := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "   ", frame.Render(thumb))
	}
	for _, line := range strings.Split(body, "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Solves  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// renderPreview draws the highlighted picture as a thumbnail, or returns ""
// for the random entry.
func (m MenuModel) renderPreview() string {
	id := m.items[m.cursor].PictureID
	if id == "" {
		return ""
	}
	pic, err := registry.Create(id)
	if err != nil {
		return ""
	}

	m.preview.Clear()
	for y := range previewH {
		for x := range previewW {
			u := (float64(x) + 0.5) / previewW
			v := (float64(y) + 0.5) / previewH
			m.preview.SetCell(x, y, pic.Cell(u, v))
		}
	}
	return m.renderer.Render(m.preview)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
