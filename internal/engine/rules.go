// Package engine runs timed game sessions. A Session owns one rule
// plug-in together with its input buffer, tick scheduler and progression
// tracker, and is the only code that mutates simulation state.
package engine

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/arcade-engines/internal/core"
	"github.com/vovakirdan/arcade-engines/internal/input"
)

// Frame is the input and timing context for one tick.
type Frame struct {
	Intent input.Intent
	DT     time.Duration // simulated time covered by this tick
	Level  int           // level in effect before the tick
	Tick   uint64
}

// Events reports what a tick or command produced.
type Events struct {
	Points int  // score delta; negative values are ignored
	Over   bool // terminal transition requested
	Won    bool // terminal because the player cleared the game
}

// Merge combines two event sets.
func (e Events) Merge(o Events) Events {
	return Events{
		Points: e.Points + o.Points,
		Over:   e.Over || o.Over,
		Won:    e.Won || o.Won,
	}
}

// Rules is the per-game plug-in: advance entities, resolve collisions,
// score and detect the terminal state for one tick.
type Rules interface {
	// Reset rebuilds the initial state from rng.
	Reset(rng *rand.Rand)
	// Step advances the simulation by one tick.
	Step(f Frame) Events
	// Progress returns the metric the progression curve reads.
	Progress() int
}

// Reactor is implemented by rules that apply some commands immediately
// rather than on the next tick. handled is false for commands the rules
// leave to the input buffer.
type Reactor interface {
	React(a core.Action, level int) (ev Events, handled bool)
}

// Filtered is implemented by rules that need a non-default input buffer.
type Filtered interface {
	InputMode() input.Mode
	InputOptions() []input.Option
}

// Headed is implemented by rules whose entity has a direction of travel.
// The session feeds it to the input buffer after every tick.
type Headed interface {
	Heading() core.Direction
}

// Launcher is implemented by rules that begin on the player's first Jump
// or Up.
type Launcher interface {
	StartsOnJump() bool
}

// Renderer draws the simulation into a cell buffer.
type Renderer interface {
	Render(screen *core.Screen)
}
