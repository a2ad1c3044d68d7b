package game

import (
	"github.com/vovakirdan/tui-jigsaw/internal/config"
	"github.com/vovakirdan/tui-jigsaw/internal/core"
	"github.com/vovakirdan/tui-jigsaw/internal/drag"
	"github.com/vovakirdan/tui-jigsaw/internal/puzzle"
)

// Screen rows above the grid.
const (
	HUDRow    = 0
	StatusRow = 1
	GridTop   = 3
)

// Layout places board slots, tray pockets and the restart button on
// screen. The board is on the left, the tray on the right, both 4x4.
type Layout struct {
	slots   drag.SlotRects
	pockets []core.Rect
	restart core.Rect
	width   int
	height  int
}

// NewLayout computes a layout centred on a screen of the given size.
// Grids that do not fit are anchored at the top left and clipped.
func NewLayout(cfg config.BoardConfig, restartLabel string, width, height int) *Layout {
	gridW := puzzle.Cols*cfg.CellWidth + (puzzle.Cols-1)*cfg.GapX
	gridH := puzzle.Rows*cfg.CellHeight + (puzzle.Rows-1)*cfg.GapY
	total := 2*gridW + cfg.TrayGap

	left := max(0, (width-total)/2)
	trayLeft := left + gridW + cfg.TrayGap

	l := &Layout{
		slots:   make(drag.SlotRects, puzzle.Size),
		pockets: make([]core.Rect, puzzle.Size),
		width:   width,
		height:  height,
	}
	for i := 0; i < puzzle.Size; i++ {
		dx := (i % puzzle.Cols) * (cfg.CellWidth + cfg.GapX)
		dy := (i / puzzle.Cols) * (cfg.CellHeight + cfg.GapY)
		l.slots[i] = core.NewRect(left+dx, GridTop+dy, cfg.CellWidth, cfg.CellHeight)
		l.pockets[i] = core.NewRect(trayLeft+dx, GridTop+dy, cfg.CellWidth, cfg.CellHeight)
	}

	// The boxed button sits under the grids. On short screens it shrinks
	// to a single row between the status line and the grids.
	btnW := len([]rune(restartLabel)) + 4
	btnX := max(0, (width-btnW)/2)
	if btnY := GridTop + gridH + 1; btnY+3 <= height {
		l.restart = core.NewRect(btnX, btnY, btnW, 3)
	} else {
		l.restart = core.NewRect(btnX, GridTop-1, btnW, 1)
	}
	return l
}

// Slots returns the slot outlines as a SlotLocator.
func (l *Layout) Slots() drag.SlotRects {
	return l.slots
}

// Slot returns the outline of board slot i.
func (l *Layout) Slot(i int) core.Rect {
	return l.slots[i]
}

// Pocket returns the outline of tray pocket i.
func (l *Layout) Pocket(i int) core.Rect {
	return l.pockets[i]
}

// RectOf returns the on-screen rectangle of a container.
func (l *Layout) RectOf(c puzzle.Container) (core.Rect, bool) {
	if !c.Valid() {
		return core.Rect{}, false
	}
	if c.IsSlot() {
		return l.slots[c.Index], true
	}
	return l.pockets[c.Index], true
}

// Restart returns the restart button rectangle.
func (l *Layout) Restart() core.Rect {
	return l.restart
}

// Size returns the screen size the layout was computed for.
func (l *Layout) Size() (int, int) {
	return l.width, l.height
}

// tileLocator hit-tests the tiles drawn at their containers.
type tileLocator struct {
	board  *puzzle.Board
	layout *Layout
}

// TileAt implements drag.TileLocator. Any cell of a tile's rectangle,
// border included, grabs it.
func (t tileLocator) TileAt(x, y int) (int, core.Rect, bool) {
	for i := 0; i < puzzle.Size; i++ {
		for _, c := range []puzzle.Container{puzzle.SlotRef(i), puzzle.TrayRef(i)} {
			id, ok := t.board.TileAt(c)
			if !ok {
				continue
			}
			r, _ := t.layout.RectOf(c)
			if r.Contains(x, y) {
				return id, r, true
			}
		}
	}
	return puzzle.Empty, core.Rect{}, false
}
