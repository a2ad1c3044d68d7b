package config

import (
	_ "embed"
)

//go:embed defaults/jigsaw.yaml
var defaultJigsawYAML []byte

// DefaultConfig returns the default jigsaw configuration.
func DefaultConfig() JigsawConfig {
	return JigsawConfig{
		Board: BoardConfig{
			CellWidth:  8,
			CellHeight: 4,
			GapX:       1,
			GapY:       0,
			TrayGap:    6,
		},
		Timing: TimingConfig{
			WinCheckDelayMs:    300,
			FireworkCount:      3,
			FireworkIntervalMs: 1500,
			FireworkJitterMs:   500,
			LaunchMs:           1000,
			ParticleLifeMs:     1000,
			TeardownPadMs:      3000,
		},
		Effects: EffectsConfig{
			Particles: 20,
			MinSpeed:  12,
			MaxSpeed:  50,
			Gravity:   6,
		},
		Messages: MessagesConfig{
			Prompt:    "Drag the tiles onto the board",
			Solved:    "Congratulations, puzzle complete!",
			NotSolved: "Not quite right, keep trying!",
			Restart:   "Restart",
		},
	}
}
