package game

import (
	"fmt"

	"github.com/vovakirdan/tui-jigsaw/internal/core"
	"github.com/vovakirdan/tui-jigsaw/internal/puzzle"
	"github.com/vovakirdan/tui-jigsaw/internal/win"
)

// Render draws the current round into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.drawHUD(dst)

	// Slots first so tiles cover their outlines.
	for i := 0; i < puzzle.Size; i++ {
		g.drawContainer(dst, puzzle.SlotRef(i))
		g.drawContainer(dst, puzzle.TrayRef(i))
	}

	if slot, ok := g.drag.Highlight(); ok {
		dst.DrawBoxColor(g.layout.Slot(slot), core.ColorBrightBlue)
	}

	if p, ok := g.drag.Proxy(); ok {
		r := g.layout.Slot(0)
		g.drawTile(dst, p.Tile, core.NewRect(p.X, p.Y, r.W, r.H))
	}

	if g.showRestart {
		btn := g.layout.Restart()
		if btn.H >= 3 {
			dst.DrawBoxColor(btn, core.ColorBrightGreen)
			dst.DrawTextColor(btn.X+2, btn.Y+1, g.cfg.Messages.Restart, core.ColorBrightGreen)
		} else {
			dst.DrawTextColor(btn.X, btn.Y, "[ "+g.cfg.Messages.Restart+" ]", core.ColorBrightGreen)
		}
	}

	g.fireworks.Render(dst)
}

func (g *Game) drawHUD(dst *core.Screen) {
	st := g.State()
	secs := int(st.Elapsed.Seconds())
	hud := fmt.Sprintf(" %s  Moves: %d  Placed: %d/%d  Time: %02d:%02d ",
		g.picture.Title(), st.Moves, st.Placed, puzzle.Size, secs/60, secs%60)
	dst.DrawTextCentered(HUDRow, hud)
	dst.DrawTextCenteredColor(StatusRow, g.status.Text, severityColor(g.status.Severity))
}

// drawContainer draws the tile held by c, or the empty outline of a slot.
func (g *Game) drawContainer(dst *core.Screen, c puzzle.Container) {
	r, _ := g.layout.RectOf(c)
	id, ok := g.board.TileAt(c)
	if ok && !g.drag.Hidden(id) {
		g.drawTile(dst, id, r)
		return
	}
	if c.IsSlot() {
		dst.DrawDashedBox(r, core.ColorGray)
		label := fmt.Sprintf("%d", c.Index+1)
		dst.DrawTextColor(r.X+(r.W-len(label))/2, r.Y+r.H/2, label, core.ColorGray)
	}
}

// drawTile samples the tile's share of the picture into r.
func (g *Game) drawTile(dst *core.Screen, id int, r core.Rect) {
	tile, ok := g.board.Tile(id)
	if !ok || r.W <= 0 || r.H <= 0 {
		return
	}
	for dy := 0; dy < r.H; dy++ {
		v := (float64(tile.Sprite.Row) + (float64(dy)+0.5)/float64(r.H)) / puzzle.Rows
		for dx := 0; dx < r.W; dx++ {
			u := (float64(tile.Sprite.Col) + (float64(dx)+0.5)/float64(r.W)) / puzzle.Cols
			cell := g.picture.Cell(u, v)
			if cell.Rune == ' ' || cell.Rune == 0 {
				// Keep empty sky visible as part of the tile.
				cell = core.Cell{Rune: '·', Color: core.ColorGray}
			}
			dst.SetCell(r.X+dx, r.Y+dy, cell)
		}
	}
}

func severityColor(sev win.Severity) core.Color {
	switch sev {
	case win.SeveritySuccess:
		return core.ColorBrightGreen
	case win.SeverityFailure:
		return core.ColorBrightRed
	default:
		return core.ColorDefault
	}
}
