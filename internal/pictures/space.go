// Package pictures provides the puzzle images: four built-in procedural
// space scenes and pictures loaded from YAML art files.
package pictures

import (
	"math"

	"github.com/vovakirdan/tui-jigsaw/internal/core"
	"github.com/vovakirdan/tui-jigsaw/internal/registry"
)

func init() {
	registry.Register("space0", func() registry.Picture {
		return procedural{id: "space0", title: "Starfield", fn: starfield}
	})
	registry.Register("space1", func() registry.Picture {
		return procedural{id: "space1", title: "Ringed Planet", fn: ringedPlanet}
	})
	registry.Register("space2", func() registry.Picture {
		return procedural{id: "space2", title: "Nebula", fn: nebula}
	})
	registry.Register("space3", func() registry.Picture {
		return procedural{id: "space3", title: "Lift Off", fn: liftOff}
	})
}

// procedural is a picture computed from a shading function.
type procedural struct {
	id, title string
	fn        func(u, v float64) core.Cell
}

func (p procedural) ID() string    { return p.id }
func (p procedural) Title() string { return p.title }

func (p procedural) Cell(u, v float64) core.Cell {
	return p.fn(clamp01(u), clamp01(v))
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 0.999999)
}

// star returns a deterministic sparse star at the given position.
func star(u, v float64, density float64) (core.Cell, bool) {
	h := hash(u, v)
	if h > density {
		return core.Cell{}, false
	}
	switch {
	case h < density/4:
		return core.Cell{Rune: '*', Color: core.ColorBrightWhite}, true
	case h < density/2:
		return core.Cell{Rune: '+', Color: core.ColorBrightYellow}, true
	default:
		return core.Cell{Rune: '.', Color: core.ColorWhite}, true
	}
}

// hash maps a coordinate to [0, 1) without state.
func hash(u, v float64) float64 {
	x := math.Sin(u*12.9898*97+v*78.233*53) * 43758.5453
	return x - math.Floor(x)
}

var space = core.Cell{Rune: ' '}

func starfield(u, v float64) core.Cell {
	// Moon in the upper right.
	if dist(u, v, 0.72, 0.28) < 0.16 {
		if dist(u, v, 0.68, 0.24) < 0.03 || dist(u, v, 0.78, 0.33) < 0.04 {
			return core.Cell{Rune: '▒', Color: core.ColorGray}
		}
		return core.Cell{Rune: '█', Color: core.ColorBrightWhite}
	}
	// Milky way band across the diagonal.
	if d := math.Abs(v - (0.9 - 0.8*u)); d < 0.08 {
		if c, ok := star(u, v, 0.5); ok {
			return c
		}
		return core.Cell{Rune: '░', Color: core.ColorBlue}
	}
	if c, ok := star(u, v, 0.06); ok {
		return c
	}
	return space
}

func ringedPlanet(u, v float64) core.Cell {
	cx, cy := 0.5, 0.5
	// Ring as a flattened ellipse, drawn in front of the lower half.
	rx, ry := (u-cx)/0.45, (v-cy)/0.12
	ring := rx*rx + ry*ry
	inRing := ring > 0.55 && ring < 1
	if inRing && v >= cy {
		return core.Cell{Rune: '═', Color: core.ColorYellow}
	}
	if d := dist(u, v, cx, cy); d < 0.25 {
		switch {
		case math.Mod(v*20, 3) < 1:
			return core.Cell{Rune: '█', Color: core.ColorOrange}
		case d > 0.2:
			return core.Cell{Rune: '▓', Color: core.ColorRed}
		default:
			return core.Cell{Rune: '█', Color: core.ColorBrightRed}
		}
	}
	if inRing {
		return core.Cell{Rune: '─', Color: core.ColorYellow}
	}
	if c, ok := star(u, v, 0.05); ok {
		return c
	}
	return space
}

func nebula(u, v float64) core.Cell {
	swirl := math.Sin(u*7+math.Sin(v*5)*2) + math.Cos(v*6-u*3)
	switch {
	case swirl > 1.3:
		return core.Cell{Rune: '█', Color: core.ColorBrightMagenta}
	case swirl > 0.8:
		return core.Cell{Rune: '▓', Color: core.ColorMagenta}
	case swirl > 0.3:
		return core.Cell{Rune: '▒', Color: core.ColorCyan}
	case swirl > -0.2:
		return core.Cell{Rune: '░', Color: core.ColorBlue}
	}
	if c, ok := star(u, v, 0.08); ok {
		return c
	}
	return space
}

func liftOff(u, v float64) core.Cell {
	du := math.Abs(u - 0.5)
	switch {
	// Nose cone narrows towards the top.
	case v >= 0.1 && v < 0.3 && du < (v-0.1)*0.5:
		return core.Cell{Rune: '█', Color: core.ColorBrightRed}
	// Body with a porthole.
	case v >= 0.3 && v < 0.7 && du < 0.1:
		if dist(u, v, 0.5, 0.42) < 0.04 {
			return core.Cell{Rune: '●', Color: core.ColorBrightCyan}
		}
		return core.Cell{Rune: '█', Color: core.ColorBrightWhite}
	// Fins.
	case v >= 0.55 && v < 0.75 && du >= 0.1 && du < 0.1+(v-0.55):
		return core.Cell{Rune: '▓', Color: core.ColorRed}
	// Exhaust plume.
	case v >= 0.7 && du < 0.06+(v-0.7)*0.6:
		if hash(u, v) < 0.5 {
			return core.Cell{Rune: '▒', Color: core.ColorOrange}
		}
		return core.Cell{Rune: '░', Color: core.ColorBrightYellow}
	// Ground.
	case v > 0.94:
		return core.Cell{Rune: '▀', Color: core.ColorGreen}
	}
	if c, ok := star(u, v, 0.05); ok {
		return c
	}
	return space
}

func dist(u, v, x, y float64) float64 {
	return math.Hypot(u-x, v-y)
}
