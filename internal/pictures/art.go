package pictures

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-jigsaw/internal/core"
	"github.com/vovakirdan/tui-jigsaw/internal/registry"
)

// ErrInvalidArt is returned for art files without an id or rows.
var ErrInvalidArt = errors.New("pictures: invalid art")

//go:embed art/*.yaml
var builtinArt embed.FS

func init() {
	entries, err := builtinArt.ReadDir("art")
	if err != nil {
		panic(fmt.Sprintf("pictures: read embedded art: %v", err))
	}
	for _, e := range entries {
		data, err := builtinArt.ReadFile(path.Join("art", e.Name()))
		if err != nil {
			panic(fmt.Sprintf("pictures: read %s: %v", e.Name(), err))
		}
		art, err := Parse(data)
		if err != nil {
			panic(fmt.Sprintf("pictures: parse %s: %v", e.Name(), err))
		}
		registry.Register(art.ID(), func() registry.Picture { return art })
	}
}

// artFile is the YAML layout of a picture.
//
//	id: comet
//	title: Comet
//	palette:
//	  "#": { glyph: "█", color: bright_cyan }
//	  "o": { color: yellow }
//	rows:
//	  - "   ##o  "
type artFile struct {
	ID      string                  `yaml:"id"`
	Title   string                  `yaml:"title"`
	Palette map[string]paletteEntry `yaml:"palette"`
	Rows    []string                `yaml:"rows"`
}

type paletteEntry struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// Art is a picture defined by a character grid.
type Art struct {
	id, title string
	grid      [][]core.Cell
	width     int
}

// ID returns the picture identifier.
func (a *Art) ID() string { return a.id }

// Title returns the display name.
func (a *Art) Title() string { return a.title }

// Size returns the grid dimensions in characters.
func (a *Art) Size() (width, height int) { return a.width, len(a.grid) }

// Cell samples the grid with nearest-neighbour lookup.
func (a *Art) Cell(u, v float64) core.Cell {
	y := int(clamp01(v) * float64(len(a.grid)))
	x := int(clamp01(u) * float64(a.width))
	row := a.grid[y]
	if x >= len(row) {
		return space
	}
	return row[x]
}

// Parse decodes a YAML art file. Rows shorter than the widest row are
// padded with blanks. Characters missing from the palette are drawn as
// themselves in the default color.
func Parse(data []byte) (*Art, error) {
	var f artFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("pictures: parse art: %w", err)
	}
	f.ID = strings.TrimSpace(f.ID)
	if f.ID == "" {
		return nil, fmt.Errorf("%w: missing id", ErrInvalidArt)
	}
	if len(f.Rows) == 0 {
		return nil, fmt.Errorf("%w: %s has no rows", ErrInvalidArt, f.ID)
	}
	if f.Title == "" {
		f.Title = f.ID
	}

	palette := make(map[rune]core.Cell, len(f.Palette))
	for key, entry := range f.Palette {
		r, size := utf8.DecodeRuneInString(key)
		if size == 0 || size != len(key) {
			return nil, fmt.Errorf("%w: palette key %q must be one character", ErrInvalidArt, key)
		}
		cell := core.Cell{Rune: '█'}
		if entry.Glyph != "" {
			cell.Rune, _ = utf8.DecodeRuneInString(entry.Glyph)
		}
		if entry.Color != "" {
			c, ok := core.ParseColor(entry.Color)
			if !ok {
				return nil, fmt.Errorf("%w: unknown color %q", ErrInvalidArt, entry.Color)
			}
			cell.Color = c
		}
		palette[r] = cell
	}

	a := &Art{id: f.ID, title: f.Title}
	for _, line := range f.Rows {
		row := make([]core.Cell, 0, len(line))
		for _, r := range line {
			cell, ok := palette[r]
			if !ok {
				cell = core.Cell{Rune: r}
			}
			row = append(row, cell)
		}
		a.width = max(a.width, len(row))
		a.grid = append(a.grid, row)
	}
	if a.width == 0 {
		return nil, fmt.Errorf("%w: %s has only empty rows", ErrInvalidArt, f.ID)
	}
	return a, nil
}

// LoadFile reads and parses an art file from disk.
func LoadFile(name string) (*Art, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("pictures: read %s: %w", name, err)
	}
	return Parse(data)
}

// RegisterFile loads an art file and adds it to the registry.
// Returns the picture ID.
func RegisterFile(name string) (string, error) {
	art, err := LoadFile(name)
	if err != nil {
		return "", err
	}
	if registry.Exists(art.ID()) {
		return "", fmt.Errorf("%w: %s: picture %q already registered", ErrInvalidArt, name, art.ID())
	}
	registry.Register(art.ID(), func() registry.Picture { return art })
	return art.ID(), nil
}
