// Package registry maps game IDs to factories.
// Games register in init(), so the CLI and the SSH server can start a game
// by name without importing it directly.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// ErrUnknownGame is returned for IDs nothing registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the interface every registered game implements.
// Implementations stay free of Bubble Tea; the platform owns timing, input
// mapping and terminal output.
type Game interface {
	// ID is the stable identifier used on the command line and in the run ledger.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a fresh run for the given screen.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick. A non-nil StepResult.Err is fatal.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a cleared screen buffer.
	Render(dst *core.Screen)

	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a factory under id. It panics on an empty or duplicate id.
func Register(id string, f Factory) {
	if id == "" {
		panic("registry: empty game id")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{
		info:    GameInfo{ID: id, Title: f().Title()},
		factory: f,
	}
}

// Lookup returns the metadata for id, or an error wrapping ErrUnknownGame.
func Lookup(id string) (GameInfo, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return GameInfo{}, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.info, nil
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}
