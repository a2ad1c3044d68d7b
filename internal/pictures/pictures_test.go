package pictures

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-jigsaw/internal/core"
	"github.com/vovakirdan/tui-jigsaw/internal/registry"
)

func TestBuiltinsRegistered(t *testing.T) {
	for _, id := range []string{"space0", "space1", "space2", "space3", "comet"} {
		if !registry.Exists(id) {
			t.Errorf("picture %q not registered", id)
		}
	}
}

func TestBuiltinsSampleWholeRange(t *testing.T) {
	for _, info := range registry.List() {
		t.Run(info.ID, func(t *testing.T) {
			p, err := registry.Create(info.ID)
			if err != nil {
				t.Fatal(err)
			}
			if p.Title() == "" {
				t.Error("empty title")
			}
			distinct := make(map[core.Cell]bool)
			for _, uv := range []float64{-0.5, 0, 0.25, 0.5, 0.75, 0.999, 1, 1.5} {
				for _, vv := range []float64{0, 0.3, 0.6, 1} {
					distinct[p.Cell(uv, vv)] = true
				}
			}
			if len(distinct) < 2 {
				t.Error("picture looks blank")
			}
		})
	}
}

func TestProceduralDeterministic(t *testing.T) {
	p, err := registry.Create("space2")
	if err != nil {
		t.Fatal(err)
	}
	q, _ := registry.Create("space2")
	for i := 0; i < 50; i++ {
		u, v := float64(i)/50, float64(49-i)/50
		if p.Cell(u, v) != q.Cell(u, v) {
			t.Fatalf("Cell(%.2f, %.2f) differs between instances", u, v)
		}
	}
}

const heartYAML = `
id: test-heart
title: Heart
palette:
  "#": { color: red }
  "o": { glyph: "●", color: bright_red }
rows:
  - ".##.##"
  - "#o###"
  - ".###"
`

func TestParse(t *testing.T) {
	art, err := Parse([]byte(heartYAML))
	if err != nil {
		t.Fatal(err)
	}
	if art.ID() != "test-heart" || art.Title() != "Heart" {
		t.Errorf("ID/Title = %q/%q", art.ID(), art.Title())
	}
	if w, h := art.Size(); w != 6 || h != 3 {
		t.Errorf("Size() = %dx%d, expected 6x3", w, h)
	}

	tests := []struct {
		u, v float64
		want core.Cell
	}{
		{0, 0, core.Cell{Rune: '.'}},
		{0.2, 0, core.Cell{Rune: '█', Color: core.ColorRed}},
		{0.2, 0.4, core.Cell{Rune: '●', Color: core.ColorBrightRed}},
		{0.95, 0.4, core.Cell{Rune: ' '}}, // padded short row
		{0.95, 0.99, core.Cell{Rune: ' '}},
	}
	for _, tt := range tests {
		if got := art.Cell(tt.u, tt.v); got != tt.want {
			t.Errorf("Cell(%.2f, %.2f) = %+v, expected %+v", tt.u, tt.v, got, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no id", "rows: [\"##\"]"},
		{"no rows", "id: x"},
		{"empty rows", "id: x\nrows: [\"\"]"},
		{"long palette key", "id: x\npalette:\n  \"ab\": { color: red }\nrows: [\"a\"]"},
		{"unknown color", "id: x\npalette:\n  \"a\": { color: chartreuse }\nrows: [\"a\"]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); !errors.Is(err, ErrInvalidArt) {
				t.Errorf("Parse() error = %v, expected ErrInvalidArt", err)
			}
		})
	}

	if _, err := Parse([]byte("id: [broken")); err == nil {
		t.Error("expected YAML syntax error")
	}
}

func TestRegisterFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heart.yaml")
	if err := os.WriteFile(path, []byte(heartYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	id, err := RegisterFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if id != "test-heart" || !registry.Exists(id) {
		t.Errorf("RegisterFile() = %q, not registered", id)
	}
	if _, err := RegisterFile(path); err == nil {
		t.Error("expected error registering the same picture twice")
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
