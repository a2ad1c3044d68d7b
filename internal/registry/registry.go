// Package registry provides a global registry for puzzle pictures.
// Pictures register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-jigsaw/internal/core"
)

// ErrUnknownPicture is returned by Create for an unregistered ID.
var ErrUnknownPicture = errors.New("registry: unknown picture")

// Picture is the image cut into tiles.
// Pictures are resolution independent: the renderer samples them at
// whatever size the tiles are drawn.
type Picture interface {
	// ID returns a unique identifier (e.g., "space0").
	// Used for CLI arguments and solve history.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Cell returns the picture at normalised coordinates u, v in [0, 1).
	Cell(u, v float64) core.Cell
}

// PictureInfo contains metadata about a registered picture.
type PictureInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a picture.
type Factory func() Picture

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a picture factory to the registry.
// Typically called from an init() function.
// Panics if a picture with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: picture %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f().Title()
}

// List returns information about all registered pictures, sorted by ID.
func List() []PictureInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PictureInfo, 0, len(factories))
	for id := range factories {
		result = append(result, PictureInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a picture by its ID.
func Create(id string) (Picture, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownPicture, id)
	}

	return f(), nil
}

// Exists checks if a picture with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Random returns the ID of a registered picture chosen with rng, or ""
// when nothing is registered. The choice is stable for a given seed.
func Random(rng *rand.Rand) string {
	list := List()
	if len(list) == 0 {
		return ""
	}
	return list[rng.Intn(len(list))].ID
}

// Pick creates a registered picture chosen with rng. It has the
// game.Options Pick signature.
func Pick(rng *rand.Rand) (Picture, error) {
	return Create(Random(rng))
}
