// Package puzzle holds the authoritative jigsaw board: which tile sits in
// which board slot or tray pocket, and what the solved arrangement is.
package puzzle

import (
	"errors"
	"fmt"
	"math/rand"
)

// Grid dimensions. The puzzle is always 4x4.
const (
	Rows = 4
	Cols = 4
	Size = Rows * Cols
)

// Empty marks a container that holds no tile.
const Empty = -1

var (
	ErrUnknownTile  = errors.New("puzzle: unknown tile")
	ErrInvalidSlot  = errors.New("puzzle: invalid slot")
	ErrInvalidPlace = errors.New("puzzle: invalid container")
	ErrOccupied     = errors.New("puzzle: container occupied")
)

// Sprite is the offset of a tile's image inside the full picture.
type Sprite struct {
	Row, Col int
}

// Tile is a single puzzle piece. Home never changes after shuffling.
type Tile struct {
	ID     int    // Identity, fixed at shuffle time
	Home   int    // Slot index where the tile belongs
	Sprite Sprite // Visual handle into the picture
}

// ContainerKind distinguishes board slots from tray pockets.
type ContainerKind int

const (
	KindNone ContainerKind = iota
	KindSlot
	KindTray
)

// Container names a place that can own one tile.
type Container struct {
	Kind  ContainerKind
	Index int
}

// Nowhere is the zero container; no tile is ever stored there.
var Nowhere = Container{Kind: KindNone, Index: Empty}

// SlotRef returns the container for board slot i.
func SlotRef(i int) Container {
	return Container{Kind: KindSlot, Index: i}
}

// TrayRef returns the container for tray pocket i.
func TrayRef(i int) Container {
	return Container{Kind: KindTray, Index: i}
}

// IsSlot reports whether c is a board slot.
func (c Container) IsSlot() bool {
	return c.Kind == KindSlot
}

// IsTray reports whether c is a tray pocket.
func (c Container) IsTray() bool {
	return c.Kind == KindTray
}

// Valid reports whether c addresses a real slot or pocket.
func (c Container) Valid() bool {
	return (c.Kind == KindSlot || c.Kind == KindTray) && c.Index >= 0 && c.Index < Size
}

// String implements fmt.Stringer.
func (c Container) String() string {
	switch c.Kind {
	case KindSlot:
		return fmt.Sprintf("slot %d", c.Index)
	case KindTray:
		return fmt.Sprintf("tray %d", c.Index)
	default:
		return "nowhere"
	}
}

// Move describes one committed board mutation.
type Move struct {
	Tile    int       // Tile that was placed
	From    Container // Where it was before
	To      Container // Where it is now
	Evicted int       // Tile displaced into From, or Empty
}

// Swapped reports whether the move displaced another tile.
func (m Move) Swapped() bool {
	return m.Evicted != Empty
}

// NoOp reports whether the move left the board unchanged.
func (m Move) NoOp() bool {
	return m.From == m.To
}

// Board owns the mapping from containers to tiles.
// Every tile is held by exactly one container at all times.
type Board struct {
	tiles [Size]Tile
	slots [Size]int
	tray  [Size]int
	where [Size]Container
	moves int
}

// NewBoard creates a board with every tile in its own tray pocket in home
// order and all slots empty.
func NewBoard() *Board {
	b := &Board{}
	var order [Size]int
	for i := range order {
		order[i] = i
	}
	b.deal(order)
	return b
}

// Shuffle clears the board and deals a fresh random permutation of tiles
// into the tray. Tile identities follow tray order.
func (b *Board) Shuffle(rng *rand.Rand) {
	var order [Size]int
	for i := range order {
		order[i] = i
	}
	for i := Size - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}
	b.deal(order)
}

// Reset returns every tile to its own tray pocket without reshuffling.
func (b *Board) Reset() {
	var homes [Size]int
	for i, t := range b.tiles {
		homes[i] = t.Home
	}
	b.deal(homes)
}

// deal puts tile i, whose home is homes[i], into tray pocket i.
func (b *Board) deal(homes [Size]int) {
	b.moves = 0
	for i := 0; i < Size; i++ {
		home := homes[i]
		b.tiles[i] = Tile{
			ID:     i,
			Home:   home,
			Sprite: Sprite{Row: home / Cols, Col: home % Cols},
		}
		b.slots[i] = Empty
		b.tray[i] = i
		b.where[i] = TrayRef(i)
	}
}

// Tile returns the tile with the given identity.
func (b *Board) Tile(id int) (Tile, bool) {
	if id < 0 || id >= Size {
		return Tile{}, false
	}
	return b.tiles[id], true
}

// Tiles returns all tiles ordered by identity.
func (b *Board) Tiles() []Tile {
	out := make([]Tile, Size)
	copy(out, b.tiles[:])
	return out
}

// Locate returns the container currently owning the tile.
func (b *Board) Locate(id int) Container {
	if id < 0 || id >= Size {
		return Nowhere
	}
	return b.where[id]
}

// TileAt returns the tile held by a container.
func (b *Board) TileAt(c Container) (int, bool) {
	if !c.Valid() {
		return Empty, false
	}
	id := b.cell(c)
	return id, id != Empty
}

// cell returns the tile held by a valid container.
func (b *Board) cell(c Container) int {
	if c.IsSlot() {
		return b.slots[c.Index]
	}
	return b.tray[c.Index]
}

// put stores id (or Empty) into a valid container.
func (b *Board) put(c Container, id int) {
	if c.IsSlot() {
		b.slots[c.Index] = id
	} else {
		b.tray[c.Index] = id
	}
	if id != Empty {
		b.where[id] = c
	}
}

// Place moves a tile into a board slot. If the slot holds another tile,
// that tile is evicted into the placed tile's previous container, so the
// two swap. Placing a tile onto the slot it already occupies changes
// nothing.
func (b *Board) Place(id, slot int) (Move, error) {
	if id < 0 || id >= Size {
		return Move{}, fmt.Errorf("%w: %d", ErrUnknownTile, id)
	}
	if slot < 0 || slot >= Size {
		return Move{}, fmt.Errorf("%w: %d", ErrInvalidSlot, slot)
	}

	from := b.where[id]
	to := SlotRef(slot)
	move := Move{Tile: id, From: from, To: to, Evicted: Empty}
	if from == to {
		return move, nil
	}

	occupant := b.slots[slot]
	// Evict before inserting so no container ever holds two tiles.
	b.put(from, occupant)
	b.put(to, id)

	move.Evicted = occupant
	b.moves++
	return move, nil
}

// ReturnToOrigin puts a tile back into the container it was dragged from.
// When the tile still lives there (the usual case, since a drag never
// removes it structurally) nothing changes.
func (b *Board) ReturnToOrigin(id int, origin Container) error {
	if id < 0 || id >= Size {
		return fmt.Errorf("%w: %d", ErrUnknownTile, id)
	}
	if !origin.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidPlace, origin)
	}

	current := b.where[id]
	if current == origin {
		return nil
	}
	if occupant := b.cell(origin); occupant != Empty {
		return fmt.Errorf("%w: %s holds tile %d", ErrOccupied, origin, occupant)
	}

	b.put(current, Empty)
	b.put(origin, id)
	return nil
}

// AllSlotsFilled reports whether every board slot holds some tile.
func (b *Board) AllSlotsFilled() bool {
	for _, id := range b.slots {
		if id == Empty {
			return false
		}
	}
	return true
}

// IsComplete reports whether every slot holds the tile whose home is that
// slot. A board with any empty slot is never complete.
func (b *Board) IsComplete() bool {
	for i, id := range b.slots {
		if id == Empty || b.tiles[id].Home != i {
			return false
		}
	}
	return true
}

// Configuration returns, per slot, the home index of its occupant, or
// Empty for a vacant slot.
func (b *Board) Configuration() [Size]int {
	var cfg [Size]int
	for i, id := range b.slots {
		if id == Empty {
			cfg[i] = Empty
			continue
		}
		cfg[i] = b.tiles[id].Home
	}
	return cfg
}

// Count returns how many tiles sit on the board and in the tray.
func (b *Board) Count() (onBoard, inTray int) {
	for i := 0; i < Size; i++ {
		if b.slots[i] != Empty {
			onBoard++
		}
		if b.tray[i] != Empty {
			inTray++
		}
	}
	return onBoard, inTray
}

// Moves returns the number of committed placements since the last shuffle.
func (b *Board) Moves() int {
	return b.moves
}
