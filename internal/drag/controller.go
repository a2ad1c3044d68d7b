// Package drag turns low-level pointer gestures into board placements.
//
// The Controller is a two-state machine (Idle, Dragging). A gesture start
// on a tile opens a drag session, moves track a floating proxy and the
// highlighted slot, and the gesture end commits exactly one board
// mutation: place, swap, or return to origin.
package drag

import (
	"github.com/vovakirdan/tui-jigsaw/internal/core"
	"github.com/vovakirdan/tui-jigsaw/internal/puzzle"
)

// State is the controller's position in the drag lifecycle.
type State int

const (
	StateIdle State = iota
	StateDragging
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateDragging:
		return "Dragging"
	default:
		return "Unknown"
	}
}

// Outcome is what a dispatched gesture did.
type Outcome int

const (
	OutcomeIgnored  Outcome = iota // Gesture had no effect
	OutcomeStarted                 // A drag session began
	OutcomeMoved                   // Proxy and highlight were updated
	OutcomePlaced                  // Tile moved into an empty slot
	OutcomeSwapped                 // Tile moved into an occupied slot, occupant went to origin
	OutcomeReturned                // Tile went back to its origin
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "Ignored"
	case OutcomeStarted:
		return "Started"
	case OutcomeMoved:
		return "Moved"
	case OutcomePlaced:
		return "Placed"
	case OutcomeSwapped:
		return "Swapped"
	case OutcomeReturned:
		return "Returned"
	default:
		return "Unknown"
	}
}

// Committed reports whether the outcome ended a drag session.
func (o Outcome) Committed() bool {
	return o == OutcomePlaced || o == OutcomeSwapped || o == OutcomeReturned
}

// Board is the subset of the board model the controller mutates.
type Board interface {
	Locate(tile int) puzzle.Container
	Place(tile, slot int) (puzzle.Move, error)
	ReturnToOrigin(tile int, origin puzzle.Container) error
	AllSlotsFilled() bool
}

// Session is the state of an in-progress drag.
type Session struct {
	Tile    int              // Tile being dragged
	Origin  puzzle.Container // Container the tile was grabbed from
	OffsetX int              // Pointer X minus tile left edge at grab time
	OffsetY int              // Pointer Y minus tile top edge at grab time
}

// Proxy is the free-floating copy of the dragged tile.
type Proxy struct {
	Tile int
	X, Y int // Top-left corner in screen cells
}

// Result reports the effect of one dispatched gesture.
type Result struct {
	Gesture core.Gesture
	Outcome Outcome
	Tile    int              // Dragged tile, or puzzle.Empty
	From    puzzle.Container // Origin container on commit
	To      puzzle.Container // Final container of the dragged tile on commit
	Evicted int              // Tile sent to the origin by a swap, or puzzle.Empty
	Filled  bool             // All slots were occupied after the commit
}

// Controller is the drag state machine for one puzzle instance.
// It is not safe for concurrent use.
type Controller struct {
	board Board
	tiles TileLocator
	slots SlotLocator

	state     State
	session   Session
	proxy     Proxy
	highlight int
}

// NewController creates an idle controller.
func NewController(board Board, tiles TileLocator, slots SlotLocator) *Controller {
	c := &Controller{
		board: board,
		tiles: tiles,
		slots: slots,
	}
	c.Reset()
	return c
}

// Reset drops any drag session and highlight without touching the board.
// Used by restart.
func (c *Controller) Reset() {
	c.state = StateIdle
	c.session = Session{Tile: puzzle.Empty, Origin: puzzle.Nowhere}
	c.proxy = Proxy{Tile: puzzle.Empty}
	c.highlight = puzzle.Empty
}

// State returns the current controller state.
func (c *Controller) State() State {
	return c.state
}

// Session returns the active drag session.
func (c *Controller) Session() (Session, bool) {
	return c.session, c.state == StateDragging
}

// Proxy returns the floating proxy of the dragged tile.
func (c *Controller) Proxy() (Proxy, bool) {
	return c.proxy, c.state == StateDragging
}

// Highlight returns the currently highlighted slot.
func (c *Controller) Highlight() (int, bool) {
	return c.highlight, c.highlight != puzzle.Empty
}

// Hidden reports whether the tile is hidden in its container because it
// is being dragged.
func (c *Controller) Hidden(tile int) bool {
	return c.state == StateDragging && c.session.Tile == tile
}

// Dispatch feeds one gesture through the state machine. Gestures outside a
// recognised transition are ignored.
func (c *Controller) Dispatch(g core.Gesture) Result {
	switch g.Kind {
	case core.GestureStart:
		return c.start(g)
	case core.GestureMove:
		return c.move(g)
	case core.GestureEnd:
		return c.end(g)
	default:
		return c.ignored(g)
	}
}

func (c *Controller) ignored(g core.Gesture) Result {
	return Result{
		Gesture: g,
		Outcome: OutcomeIgnored,
		Tile:    puzzle.Empty,
		From:    puzzle.Nowhere,
		To:      puzzle.Nowhere,
		Evicted: puzzle.Empty,
	}
}

// start handles Idle -> Dragging.
func (c *Controller) start(g core.Gesture) Result {
	// One drag session at a time; a second start is a no-op.
	if c.state != StateIdle {
		return c.ignored(g)
	}

	tile, bounds, ok := c.tiles.TileAt(g.X, g.Y)
	if !ok {
		return c.ignored(g)
	}
	origin := c.board.Locate(tile)
	if !origin.Valid() {
		return c.ignored(g)
	}

	c.state = StateDragging
	c.session = Session{
		Tile:    tile,
		Origin:  origin,
		OffsetX: g.X - bounds.X,
		OffsetY: g.Y - bounds.Y,
	}
	c.proxy = Proxy{Tile: tile}
	c.track(g.X, g.Y)

	res := c.ignored(g)
	res.Outcome = OutcomeStarted
	res.Tile = tile
	res.From = origin
	return res
}

// move repositions the proxy and refreshes the highlighted slot.
func (c *Controller) move(g core.Gesture) Result {
	if c.state != StateDragging {
		return c.ignored(g)
	}

	c.track(g.X, g.Y)

	res := c.ignored(g)
	res.Outcome = OutcomeMoved
	res.Tile = c.session.Tile
	res.From = c.session.Origin
	return res
}

// track moves the proxy under the pointer and re-targets the highlight.
func (c *Controller) track(x, y int) {
	c.proxy.X = x - c.session.OffsetX
	c.proxy.Y = y - c.session.OffsetY

	c.highlight = puzzle.Empty
	if slot, ok := c.slots.SlotAt(x, y); ok {
		c.highlight = slot
	}
}

// end handles Dragging -> Idle and commits exactly one board mutation.
func (c *Controller) end(g core.Gesture) Result {
	if c.state != StateDragging {
		return c.ignored(g)
	}

	s := c.session
	res := c.ignored(g)
	res.Tile = s.Tile
	res.From = s.Origin
	res.To = s.Origin

	slot, hit := c.slots.SlotAt(g.X, g.Y)
	if hit && puzzle.SlotRef(slot) != s.Origin {
		move, err := c.board.Place(s.Tile, slot)
		if err == nil {
			res.To = move.To
			res.Evicted = move.Evicted
			res.Outcome = OutcomePlaced
			if move.Swapped() {
				res.Outcome = OutcomeSwapped
			}
		}
	}

	if res.Outcome == OutcomeIgnored {
		//nolint:errcheck // The tile never left its origin, so this cannot fail.
		c.board.ReturnToOrigin(s.Tile, s.Origin)
		res.Outcome = OutcomeReturned
	}

	c.Reset()
	res.Filled = c.board.AllSlotsFilled()
	return res
}
