package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate points HOME and the working directory at empty temp dirs so the
// search path only finds what the test writes.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded defaults differ from DefaultConfig():\n got %+v\nwant %+v", cfg, DefaultConfig())
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(work, "configs", "jigsaw.yaml"), "timing:\n  win_check_delay_ms: 100\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Timing.WinCheckDelayMs != 100 {
		t.Errorf("local config: delay = %d, expected 100", cfg.Timing.WinCheckDelayMs)
	}

	writeFile(t, filepath.Join(home, ".jigsaw", "configs", "jigsaw.yaml"), "timing:\n  win_check_delay_ms: 200\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Timing.WinCheckDelayMs != 200 {
		t.Errorf("user config: delay = %d, expected 200", cfg.Timing.WinCheckDelayMs)
	}

	custom := filepath.Join(work, "custom.yaml")
	writeFile(t, custom, "timing:\n  win_check_delay_ms: 0\n")
	cfg, err = Load(custom)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Timing.WinCheckDelay() != 0 {
		t.Errorf("custom config: delay = %v, expected 0", cfg.Timing.WinCheckDelay())
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	_, work := isolate(t)
	path := filepath.Join(work, "partial.yaml")
	writeFile(t, path, "messages:\n  solved: \"Nice!\"\neffects:\n  particles: 40\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	def := DefaultConfig()
	if cfg.Messages.Solved != "Nice!" {
		t.Errorf("Solved = %q", cfg.Messages.Solved)
	}
	if cfg.Messages.NotSolved != def.Messages.NotSolved {
		t.Errorf("NotSolved = %q, expected default", cfg.Messages.NotSolved)
	}
	if cfg.Effects.Particles != 40 {
		t.Errorf("Particles = %d, expected 40", cfg.Effects.Particles)
	}
	if cfg.Board != def.Board {
		t.Errorf("Board = %+v, expected defaults", cfg.Board)
	}
}

func TestLoadErrors(t *testing.T) {
	_, work := isolate(t)

	if _, err := Load(filepath.Join(work, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(work, "bad.yaml")
	writeFile(t, bad, "board: [not, a, map\n")
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	tiny := filepath.Join(work, "tiny.yaml")
	writeFile(t, tiny, "board:\n  cell_width: 2\n")
	if _, err := Load(tiny); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load(tiny) error = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*JigsawConfig)
		check   func(JigsawConfig) bool
		wantErr bool
	}{
		{
			name:   "negative delay restored",
			mutate: func(c *JigsawConfig) { c.Timing.WinCheckDelayMs = -5 },
			check:  func(c JigsawConfig) bool { return c.Timing.WinCheckDelayMs == 300 },
		},
		{
			name:   "zero delay kept",
			mutate: func(c *JigsawConfig) { c.Timing.WinCheckDelayMs = 0 },
			check:  func(c JigsawConfig) bool { return c.Timing.WinCheckDelayMs == 0 },
		},
		{
			name:   "zero count restored",
			mutate: func(c *JigsawConfig) { c.Timing.FireworkCount = 0 },
			check:  func(c JigsawConfig) bool { return c.Timing.FireworkCount == 3 },
		},
		{
			name:   "empty message restored",
			mutate: func(c *JigsawConfig) { c.Messages.Restart = "" },
			check:  func(c JigsawConfig) bool { return c.Messages.Restart == "Restart" },
		},
		{
			name:    "speeds inverted",
			mutate:  func(c *JigsawConfig) { c.Effects.MinSpeed, c.Effects.MaxSpeed = 60, 10 },
			wantErr: true,
		},
		{
			name:    "cell too small",
			mutate:  func(c *JigsawConfig) { c.Board.CellHeight = 2 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil && !tt.check(cfg) {
				t.Errorf("unexpected config after Validate: %+v", cfg)
			}
		})
	}
}

func TestTimingDurations(t *testing.T) {
	tm := DefaultConfig().Timing
	if tm.WinCheckDelay() != 300*time.Millisecond {
		t.Errorf("WinCheckDelay() = %v", tm.WinCheckDelay())
	}
	if tm.FireworkInterval() != 1500*time.Millisecond {
		t.Errorf("FireworkInterval() = %v", tm.FireworkInterval())
	}
	if tm.TeardownPad() != 3*time.Second {
		t.Errorf("TeardownPad() = %v", tm.TeardownPad())
	}
}
