package drag

import "github.com/vovakirdan/tui-jigsaw/internal/core"

// TileLocator resolves a pointer position to the tile drawn under it.
// bounds is the tile's on-screen rectangle, used to capture the grab offset.
type TileLocator interface {
	TileAt(x, y int) (tile int, bounds core.Rect, ok bool)
}

// SlotLocator resolves a pointer position to the board slot under it.
type SlotLocator interface {
	SlotAt(x, y int) (slot int, ok bool)
}

// SlotRects is a SlotLocator over slot outlines indexed by slot number.
// A slot is targeted when the pointer is strictly inside its outline; when
// outlines overlap the lowest index wins.
type SlotRects []core.Rect

// SlotAt implements SlotLocator.
func (s SlotRects) SlotAt(x, y int) (int, bool) {
	for i, r := range s {
		if r.Inside(x, y) {
			return i, true
		}
	}
	return 0, false
}
