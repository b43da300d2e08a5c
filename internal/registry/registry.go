// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-engines/internal/core"
	"github.com/vovakirdan/arcade-engines/internal/engine"
	"github.com/vovakirdan/arcade-engines/internal/progression"
	"github.com/vovakirdan/arcade-engines/internal/storage"
)

// Game is what every registered game exposes to the platform.
// Game logic has no terminal dependencies; the platform handles input
// mapping, timing and turning the cell buffer into output.
type Game interface {
	// ID returns a unique identifier (e.g. "snake"), used by CLI commands
	// and the score history.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Path returns the persistence path, e.g. "/snake". High scores live
	// at Path()+"-highscore".
	Path() string

	// Render draws the current state into the provided screen buffer.
	Render(dst *core.Screen)
}

// Timed is implemented by real-time games driven by an engine.Session.
// Turn-based games implement only Game and are handled by their own
// front-end model.
type Timed interface {
	Game
	engine.Rules
	Curve() progression.Curve
}

// Bound is implemented by turn-based games that persist their own
// results. The platform binds the gateway before the first move.
type Bound interface {
	Game
	Bind(gw storage.Gateway, logger *log.Logger)
}

// Options are handed to a factory when a game is created.
type Options struct {
	ConfigPath string // custom YAML path, empty for the search order
	Preset     string // difficulty preset name
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
	Path  string
	Timed bool
}

// Factory creates a new instance of a game.
type Factory func(opts Options) (Game, error)

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered or the factory
// cannot build a default instance.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	// Read metadata from a default instance.
	g, err := f(Options{})
	if err != nil {
		panic(fmt.Sprintf("registry: game %q: %v", id, err))
	}
	_, timed := g.(Timed)

	factories[id] = f
	infos[id] = GameInfo{ID: id, Title: g.Title(), Path: g.Path(), Timed: timed}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Info returns metadata for a registered game.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := infos[id]
	return info, ok
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered or its config fails to load.
func Create(id string, opts Options) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	g, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", id, err)
	}
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
