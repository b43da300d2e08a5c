// Package input latches asynchronous player commands between simulation
// ticks. Submissions may arrive from any goroutine; the tick reads one
// consistent Intent per call to Consume.
package input

import (
	"sync"

	"github.com/vovakirdan/arcade-engines/internal/core"
)

// Mode selects how the latched direction behaves across ticks.
type Mode int

const (
	// Latched clears the direction on Consume; each tick sees only fresh input.
	Latched Mode = iota
	// Continuous keeps returning the last heading until a new one arrives.
	Continuous
)

// DefaultPointerCap bounds queued pointer samples between two ticks.
const DefaultPointerCap = 64

// Intent is everything the player asked for since the previous tick.
type Intent struct {
	Dir     core.Direction
	Actions core.InputFrame
	Pointer []core.PointF
}

// Option configures a Buffer.
type Option func(*Buffer)

// WithReversalFilter rejects a direction that exactly reverses the heading.
func WithReversalFilter() Option {
	return func(b *Buffer) { b.rejectReversal = true }
}

// WithPointerCap sets how many pointer samples are kept between ticks.
func WithPointerCap(n int) Option {
	return func(b *Buffer) {
		if n > 0 {
			b.pointerCap = n
		}
	}
}

// Buffer holds input between ticks.
type Buffer struct {
	mode           Mode
	rejectReversal bool
	pointerCap     int

	mu      sync.Mutex
	heading core.Direction // direction the last tick applied
	dir     core.Direction // pending direction, DirNone if nothing new
	actions core.InputFrame
	pointer []core.PointF
}

// NewBuffer creates an empty buffer.
func NewBuffer(mode Mode, opts ...Option) *Buffer {
	b := &Buffer{
		mode:       mode,
		pointerCap: DefaultPointerCap,
		actions:    core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SetHeading records the direction the simulation is actually travelling.
// The reversal filter compares against it, not against pending input.
func (b *Buffer) SetHeading(d core.Direction) {
	b.mu.Lock()
	b.heading = d
	b.mu.Unlock()
}

// Heading returns the direction last recorded with SetHeading.
func (b *Buffer) Heading() core.Direction {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.heading
}

// Submit latches an action. It returns false when the action was filtered.
func (b *Buffer) Submit(a core.Action) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if d := a.Direction(); d != core.DirNone {
		if b.rejectReversal && b.heading != core.DirNone && d == b.heading.Opposite() {
			return false
		}
		b.dir = d
		return true
	}
	if a == core.ActionNone {
		return false
	}
	b.actions.Set(a)
	return true
}

// SubmitPointer queues a pointer sample, dropping the oldest when full.
func (b *Buffer) SubmitPointer(p core.PointF) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.pointer) >= b.pointerCap {
		copy(b.pointer, b.pointer[1:])
		b.pointer = b.pointer[:len(b.pointer)-1]
	}
	b.pointer = append(b.pointer, p)
}

// Consume returns the latched intent and clears it.
func (b *Buffer) Consume() Intent {
	b.mu.Lock()
	defer b.mu.Unlock()

	in := Intent{
		Dir:     b.dir,
		Actions: b.actions,
		Pointer: b.pointer,
	}
	if in.Dir == core.DirNone && b.mode == Continuous {
		in.Dir = b.heading
	}

	b.dir = core.DirNone
	b.actions = core.NewInputFrame()
	b.pointer = nil
	return in
}

// Reset drops all pending input and the recorded heading.
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.heading = core.DirNone
	b.dir = core.DirNone
	b.actions = core.NewInputFrame()
	b.pointer = nil
}
