// Package config provides YAML-based configuration for the jigsaw: board
// layout, timing of the win check and celebration, effect tuning and the
// player-facing messages.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned by Validate for settings that cannot be
// normalised.
var ErrInvalidConfig = errors.New("config: invalid")

// JigsawConfig contains all configuration for a puzzle session.
type JigsawConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Timing   TimingConfig   `yaml:"timing"`
	Effects  EffectsConfig  `yaml:"effects"`
	Messages MessagesConfig `yaml:"messages"`
}

// BoardConfig defines the on-screen geometry of slots and tray pockets.
type BoardConfig struct {
	CellWidth  int `yaml:"cell_width"`  // Outline width of a slot, including border
	CellHeight int `yaml:"cell_height"` // Outline height of a slot, including border
	GapX       int `yaml:"gap_x"`       // Columns between neighbouring outlines
	GapY       int `yaml:"gap_y"`       // Rows between neighbouring outlines
	TrayGap    int `yaml:"tray_gap"`    // Columns between the board and the tray
}

// TimingConfig defines the deferred callbacks, in milliseconds.
type TimingConfig struct {
	WinCheckDelayMs    int `yaml:"win_check_delay_ms"`
	FireworkCount      int `yaml:"firework_count"`
	FireworkIntervalMs int `yaml:"firework_interval_ms"`
	FireworkJitterMs   int `yaml:"firework_jitter_ms"`
	LaunchMs           int `yaml:"launch_ms"`
	ParticleLifeMs     int `yaml:"particle_life_ms"`
	TeardownPadMs      int `yaml:"teardown_pad_ms"`
}

// EffectsConfig tunes the firework bursts.
type EffectsConfig struct {
	Particles int     `yaml:"particles"` // Particles per burst
	MinSpeed  float64 `yaml:"min_speed"` // Cells per second
	MaxSpeed  float64 `yaml:"max_speed"` // Cells per second
	Gravity   float64 `yaml:"gravity"`   // Cells per second squared
}

// MessagesConfig holds the status line texts.
type MessagesConfig struct {
	Prompt    string `yaml:"prompt"`
	Solved    string `yaml:"solved"`
	NotSolved string `yaml:"not_solved"`
	Restart   string `yaml:"restart"`
}

// WinCheckDelay returns the delay between filling the board and judging it.
func (t TimingConfig) WinCheckDelay() time.Duration {
	return ms(t.WinCheckDelayMs)
}

// FireworkInterval returns the spacing between rocket launches.
func (t TimingConfig) FireworkInterval() time.Duration {
	return ms(t.FireworkIntervalMs)
}

// FireworkJitter returns the random extra delay bound for each launch.
func (t TimingConfig) FireworkJitter() time.Duration {
	return ms(t.FireworkJitterMs)
}

// Launch returns how long a rocket rises.
func (t TimingConfig) Launch() time.Duration {
	return ms(t.LaunchMs)
}

// ParticleLife returns how long a burst particle lives.
func (t TimingConfig) ParticleLife() time.Duration {
	return ms(t.ParticleLifeMs)
}

// TeardownPad returns the extra time before the celebration is cleared.
func (t TimingConfig) TeardownPad() time.Duration {
	return ms(t.TeardownPadMs)
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// Validate fills zero or negative values with defaults and rejects
// settings that contradict each other. A zero win check delay is allowed.
func (c *JigsawConfig) Validate() error {
	def := DefaultConfig()

	positive(&c.Board.CellWidth, def.Board.CellWidth)
	positive(&c.Board.CellHeight, def.Board.CellHeight)
	nonNegative(&c.Board.GapX, def.Board.GapX)
	nonNegative(&c.Board.GapY, def.Board.GapY)
	nonNegative(&c.Board.TrayGap, def.Board.TrayGap)

	nonNegative(&c.Timing.WinCheckDelayMs, def.Timing.WinCheckDelayMs)
	positive(&c.Timing.FireworkCount, def.Timing.FireworkCount)
	positive(&c.Timing.FireworkIntervalMs, def.Timing.FireworkIntervalMs)
	nonNegative(&c.Timing.FireworkJitterMs, def.Timing.FireworkJitterMs)
	positive(&c.Timing.LaunchMs, def.Timing.LaunchMs)
	positive(&c.Timing.ParticleLifeMs, def.Timing.ParticleLifeMs)
	nonNegative(&c.Timing.TeardownPadMs, def.Timing.TeardownPadMs)

	positive(&c.Effects.Particles, def.Effects.Particles)
	if c.Effects.MinSpeed <= 0 {
		c.Effects.MinSpeed = def.Effects.MinSpeed
	}
	if c.Effects.MaxSpeed <= 0 {
		c.Effects.MaxSpeed = def.Effects.MaxSpeed
	}
	if c.Effects.Gravity < 0 {
		c.Effects.Gravity = def.Effects.Gravity
	}

	if c.Messages.Prompt == "" {
		c.Messages.Prompt = def.Messages.Prompt
	}
	if c.Messages.Solved == "" {
		c.Messages.Solved = def.Messages.Solved
	}
	if c.Messages.NotSolved == "" {
		c.Messages.NotSolved = def.Messages.NotSolved
	}
	if c.Messages.Restart == "" {
		c.Messages.Restart = def.Messages.Restart
	}

	// Slot interiors must hold at least one cell for strict hit testing.
	if c.Board.CellWidth < 3 || c.Board.CellHeight < 3 {
		return fmt.Errorf("%w: cell %dx%d is smaller than 3x3", ErrInvalidConfig, c.Board.CellWidth, c.Board.CellHeight)
	}
	if c.Effects.MinSpeed > c.Effects.MaxSpeed {
		return fmt.Errorf("%w: min_speed %.1f exceeds max_speed %.1f", ErrInvalidConfig, c.Effects.MinSpeed, c.Effects.MaxSpeed)
	}
	return nil
}

func positive(v *int, def int) {
	if *v <= 0 {
		*v = def
	}
}

func nonNegative(v *int, def int) {
	if *v < 0 {
		*v = def
	}
}
