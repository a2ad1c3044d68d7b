package core

import "time"

// RuntimeConfig contains configuration passed to the puzzle at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic shuffles
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickDuration returns the wall-clock length of one tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState summarises a running puzzle for the platform layer.
type GameState struct {
	Moves    int           // Committed placements and swaps
	Placed   int           // Tiles currently on the board
	Solved   bool          // Whether the last win check found the board solved
	Dragging bool          // Whether a drag session is active
	Elapsed  time.Duration // Game time since the last shuffle
}
