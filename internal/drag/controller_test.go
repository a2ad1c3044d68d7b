package drag

import (
	"testing"

	"github.com/vovakirdan/tui-jigsaw/internal/core"
	"github.com/vovakirdan/tui-jigsaw/internal/puzzle"
)

const (
	cellW   = 10
	cellH   = 5
	trayOff = 100
)

func slotRect(i int) core.Rect {
	return core.NewRect((i%puzzle.Cols)*cellW, (i/puzzle.Cols)*cellH, cellW, cellH)
}

func pocketRect(i int) core.Rect {
	return slotRect(i).Translate(trayOff, 0)
}

// testLayout hit-tests tiles against a fixed grid of slots and pockets.
type testLayout struct {
	board *puzzle.Board
}

func (l testLayout) TileAt(x, y int) (int, core.Rect, bool) {
	for _, tile := range l.board.Tiles() {
		r := l.rectOf(l.board.Locate(tile.ID))
		if r.Contains(x, y) {
			return tile.ID, r, true
		}
	}
	return 0, core.Rect{}, false
}

func (l testLayout) rectOf(c puzzle.Container) core.Rect {
	if c.IsSlot() {
		return slotRect(c.Index)
	}
	return pocketRect(c.Index)
}

func newTestController() (*Controller, *puzzle.Board) {
	board := puzzle.NewBoard()
	slots := make(SlotRects, puzzle.Size)
	for i := range slots {
		slots[i] = slotRect(i)
	}
	return NewController(board, testLayout{board: board}, slots), board
}

// centerOf returns a point strictly inside r.
func centerOf(r core.Rect) (int, int) {
	return r.Center()
}

func gesture(kind core.GestureKind, x, y int) core.Gesture {
	return core.NewGesture(kind, x, y)
}

// drag performs a full start/move/end gesture from one rect to another.
func drag(c *Controller, from, to core.Rect) Result {
	fx, fy := centerOf(from)
	tx, ty := centerOf(to)
	c.Dispatch(gesture(core.GestureStart, fx, fy))
	c.Dispatch(gesture(core.GestureMove, tx, ty))
	return c.Dispatch(gesture(core.GestureEnd, tx, ty))
}

func TestStartOnTileBeginsDrag(t *testing.T) {
	c, _ := newTestController()

	r := pocketRect(2)
	res := c.Dispatch(gesture(core.GestureStart, r.X+3, r.Y+1))
	if res.Outcome != OutcomeStarted {
		t.Fatalf("Outcome = %s, expected Started", res.Outcome)
	}
	if c.State() != StateDragging {
		t.Fatalf("State() = %s, expected Dragging", c.State())
	}

	s, ok := c.Session()
	if !ok {
		t.Fatal("expected an active session")
	}
	if s.Tile != 2 || s.Origin != puzzle.TrayRef(2) {
		t.Errorf("session = %+v, expected tile 2 from tray 2", s)
	}
	if s.OffsetX != 3 || s.OffsetY != 1 {
		t.Errorf("offset = (%d, %d), expected (3, 1)", s.OffsetX, s.OffsetY)
	}
	if !c.Hidden(2) {
		t.Error("dragged tile should be hidden in its origin")
	}
	if c.Hidden(3) {
		t.Error("other tiles should stay visible")
	}

	p, ok := c.Proxy()
	if !ok || p.X != r.X || p.Y != r.Y {
		t.Errorf("proxy = %+v, expected at tile corner (%d, %d)", p, r.X, r.Y)
	}
}

func TestStartOnNonTileStaysIdle(t *testing.T) {
	c, _ := newTestController()

	// Empty slot: no tile drawn there.
	x, y := centerOf(slotRect(0))
	res := c.Dispatch(gesture(core.GestureStart, x, y))
	if res.Outcome != OutcomeIgnored {
		t.Errorf("Outcome = %s, expected Ignored", res.Outcome)
	}
	if c.State() != StateIdle {
		t.Errorf("State() = %s, expected Idle", c.State())
	}
}

func TestSecondStartIsIgnored(t *testing.T) {
	c, _ := newTestController()

	x1, y1 := centerOf(pocketRect(0))
	x2, y2 := centerOf(pocketRect(1))
	c.Dispatch(gesture(core.GestureStart, x1, y1))

	res := c.Dispatch(gesture(core.GestureStart, x2, y2))
	if res.Outcome != OutcomeIgnored {
		t.Errorf("second start Outcome = %s, expected Ignored", res.Outcome)
	}
	if s, _ := c.Session(); s.Tile != 0 {
		t.Errorf("session tile = %d, expected the first tile to stay grabbed", s.Tile)
	}
}

func TestMoveAndEndWhileIdleAreNoOps(t *testing.T) {
	c, board := newTestController()
	before := board.Configuration()

	x, y := centerOf(slotRect(4))
	if res := c.Dispatch(gesture(core.GestureMove, x, y)); res.Outcome != OutcomeIgnored {
		t.Errorf("move while idle Outcome = %s", res.Outcome)
	}
	if res := c.Dispatch(gesture(core.GestureEnd, x, y)); res.Outcome != OutcomeIgnored {
		t.Errorf("end while idle Outcome = %s", res.Outcome)
	}
	if res := c.Dispatch(gesture(core.GestureNone, x, y)); res.Outcome != OutcomeIgnored {
		t.Errorf("unknown gesture Outcome = %s", res.Outcome)
	}
	if board.Configuration() != before {
		t.Error("idle gestures must not mutate the board")
	}
	if _, ok := c.Highlight(); ok {
		t.Error("idle gestures must not highlight a slot")
	}
}

func TestMoveTracksProxyAndHighlight(t *testing.T) {
	c, _ := newTestController()

	r := pocketRect(5)
	c.Dispatch(gesture(core.GestureStart, r.X+2, r.Y+2))

	x, y := centerOf(slotRect(6))
	res := c.Dispatch(gesture(core.GestureMove, x, y))
	if res.Outcome != OutcomeMoved {
		t.Fatalf("Outcome = %s, expected Moved", res.Outcome)
	}

	p, _ := c.Proxy()
	if p.X != x-2 || p.Y != y-2 {
		t.Errorf("proxy = (%d, %d), expected (%d, %d)", p.X, p.Y, x-2, y-2)
	}
	if slot, ok := c.Highlight(); !ok || slot != 6 {
		t.Errorf("Highlight() = (%d, %v), expected slot 6", slot, ok)
	}

	// Moving to a different slot moves the single highlight.
	x, y = centerOf(slotRect(9))
	c.Dispatch(gesture(core.GestureMove, x, y))
	if slot, ok := c.Highlight(); !ok || slot != 9 {
		t.Errorf("Highlight() = (%d, %v), expected slot 9", slot, ok)
	}

	// Moving onto a slot border clears it: only strict interiors count.
	b := slotRect(9)
	c.Dispatch(gesture(core.GestureMove, b.X, b.Y+1))
	if _, ok := c.Highlight(); ok {
		t.Error("pointer on a slot border should not highlight")
	}
}

func TestDropIntoEmptySlot(t *testing.T) {
	c, board := newTestController()

	res := drag(c, pocketRect(3), slotRect(7))
	if res.Outcome != OutcomePlaced {
		t.Fatalf("Outcome = %s, expected Placed", res.Outcome)
	}
	if res.From != puzzle.TrayRef(3) || res.To != puzzle.SlotRef(7) {
		t.Errorf("result moved %s -> %s", res.From, res.To)
	}
	if id, _ := board.TileAt(puzzle.SlotRef(7)); id != 3 {
		t.Errorf("slot 7 holds %d, expected 3", id)
	}
	if _, ok := board.TileAt(puzzle.TrayRef(3)); ok {
		t.Error("origin pocket should be vacated")
	}
	assertCleared(t, c)
}

func TestDropOntoOccupiedSlotSwaps(t *testing.T) {
	c, board := newTestController()

	// Tile 0 in slot 3, then drag tile 1 from the tray onto slot 3.
	drag(c, pocketRect(0), slotRect(3))
	res := drag(c, pocketRect(1), slotRect(3))

	if res.Outcome != OutcomeSwapped {
		t.Fatalf("Outcome = %s, expected Swapped", res.Outcome)
	}
	if res.Evicted != 0 {
		t.Errorf("Evicted = %d, expected 0", res.Evicted)
	}
	if id, _ := board.TileAt(puzzle.SlotRef(3)); id != 1 {
		t.Errorf("slot 3 holds %d, expected 1", id)
	}
	if board.Locate(0) != puzzle.TrayRef(1) {
		t.Errorf("evicted tile is in %s, expected tray 1", board.Locate(0))
	}
	assertCleared(t, c)
}

func TestDropOutsideReturnsToOrigin(t *testing.T) {
	c, board := newTestController()
	before := board.Configuration()

	x, y := centerOf(pocketRect(4))
	c.Dispatch(gesture(core.GestureStart, x, y))
	c.Dispatch(gesture(core.GestureMove, 500, 500))
	res := c.Dispatch(gesture(core.GestureEnd, 500, 500))

	if res.Outcome != OutcomeReturned {
		t.Fatalf("Outcome = %s, expected Returned", res.Outcome)
	}
	if board.Locate(4) != puzzle.TrayRef(4) {
		t.Errorf("tile 4 is in %s, expected tray 4", board.Locate(4))
	}
	if board.Configuration() != before {
		t.Error("returning to origin must not change the board")
	}
	if board.Moves() != 0 {
		t.Errorf("Moves() = %d, expected 0", board.Moves())
	}
	assertCleared(t, c)
}

func TestDropOntoOwnSlotReturns(t *testing.T) {
	c, board := newTestController()
	drag(c, pocketRect(8), slotRect(8))
	moves := board.Moves()

	res := drag(c, slotRect(8), slotRect(8))
	if res.Outcome != OutcomeReturned {
		t.Fatalf("Outcome = %s, expected Returned", res.Outcome)
	}
	if board.Locate(8) != puzzle.SlotRef(8) {
		t.Errorf("tile 8 is in %s, expected slot 8", board.Locate(8))
	}
	if board.Moves() != moves {
		t.Error("dropping onto the own slot must not count as a move")
	}
}

func TestDragBetweenSlotsSwaps(t *testing.T) {
	c, board := newTestController()
	drag(c, pocketRect(0), slotRect(0))
	drag(c, pocketRect(1), slotRect(1))

	res := drag(c, slotRect(0), slotRect(1))
	if res.Outcome != OutcomeSwapped {
		t.Fatalf("Outcome = %s, expected Swapped", res.Outcome)
	}
	if id, _ := board.TileAt(puzzle.SlotRef(0)); id != 1 {
		t.Errorf("slot 0 holds %d, expected 1", id)
	}
	if id, _ := board.TileAt(puzzle.SlotRef(1)); id != 0 {
		t.Errorf("slot 1 holds %d, expected 0", id)
	}
}

func TestEachCommitMutatesOnce(t *testing.T) {
	c, board := newTestController()

	for i := 0; i < puzzle.Size; i++ {
		res := drag(c, pocketRect(i), slotRect(i))
		if !res.Outcome.Committed() {
			t.Fatalf("drag %d Outcome = %s, expected a commit", i, res.Outcome)
		}
		if board.Moves() != i+1 {
			t.Fatalf("after drag %d Moves() = %d, expected %d", i, board.Moves(), i+1)
		}
		wantFilled := i == puzzle.Size-1
		if res.Filled != wantFilled {
			t.Errorf("drag %d Filled = %v, expected %v", i, res.Filled, wantFilled)
		}
	}
}

func TestReset(t *testing.T) {
	c, _ := newTestController()
	x, y := centerOf(pocketRect(0))
	c.Dispatch(gesture(core.GestureStart, x, y))
	mx, my := centerOf(slotRect(0))
	c.Dispatch(gesture(core.GestureMove, mx, my))

	c.Reset()
	assertCleared(t, c)
}

func TestSlotRectsFirstMatchWins(t *testing.T) {
	overlapping := SlotRects{
		core.NewRect(0, 0, 10, 10),
		core.NewRect(0, 0, 10, 10),
	}
	slot, ok := overlapping.SlotAt(5, 5)
	if !ok || slot != 0 {
		t.Errorf("SlotAt() = (%d, %v), expected first slot", slot, ok)
	}
	if _, ok := overlapping.SlotAt(50, 50); ok {
		t.Error("SlotAt outside all rects should miss")
	}
}

func TestTouchGesturesShareLifecycle(t *testing.T) {
	c, board := newTestController()

	fx, fy := centerOf(pocketRect(2))
	tx, ty := centerOf(slotRect(2))
	for _, g := range []core.Gesture{
		{Kind: core.GestureStart, X: fx, Y: fy, Source: core.SourceTouch},
		{Kind: core.GestureMove, X: tx, Y: ty, Source: core.SourceTouch},
		{Kind: core.GestureEnd, X: tx, Y: ty, Source: core.SourceTouch},
	} {
		c.Dispatch(g)
	}
	if board.Locate(2) != puzzle.SlotRef(2) {
		t.Errorf("touch drag left tile in %s, expected slot 2", board.Locate(2))
	}
}

func assertCleared(t *testing.T, c *Controller) {
	t.Helper()
	if c.State() != StateIdle {
		t.Errorf("State() = %s, expected Idle", c.State())
	}
	if _, ok := c.Session(); ok {
		t.Error("session should be cleared")
	}
	if _, ok := c.Proxy(); ok {
		t.Error("proxy should be removed")
	}
	if _, ok := c.Highlight(); ok {
		t.Error("highlight should be cleared")
	}
	for i := 0; i < puzzle.Size; i++ {
		if c.Hidden(i) {
			t.Errorf("tile %d should be visible again", i)
		}
	}
}
