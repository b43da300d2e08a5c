package clock

import (
	"sync"
	"time"
)

// Scheduler fires a callback once per period while running.
//
// Deadlines advance by whole periods from the previous deadline, so the
// time spent inside the callback does not accumulate as drift. When the
// scheduler falls more than two periods behind it re-anchors on the
// current time instead of bursting to catch up.
type Scheduler struct {
	clock Clock

	mu       sync.Mutex
	fn       func()
	running  bool
	period   time.Duration
	deadline time.Time
	timer    Timer
	gen      uint64 // invalidates timers armed before the last Start/Stop
	ticks    uint64
}

// New creates a stopped scheduler on the given clock.
// A nil clock selects the real one.
func New(c Clock) *Scheduler {
	if c == nil {
		c = Real()
	}
	return &Scheduler{clock: c}
}

// OnTick registers the tick callback, replacing any previous one.
// The callback runs without scheduler locks held and may call Stop or SetPeriod.
func (s *Scheduler) OnTick(fn func()) {
	s.mu.Lock()
	s.fn = fn
	s.mu.Unlock()
}

// Start begins ticking with the given period. Calling Start while running,
// or with a non-positive period, does nothing.
func (s *Scheduler) Start(period time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running || period <= 0 {
		return
	}
	s.running = true
	s.period = period
	s.gen++
	s.deadline = s.clock.Now().Add(period)
	s.arm()
}

// Stop halts ticking. It is safe to call any number of times.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// SetPeriod changes the period. The tick already scheduled keeps its
// deadline; the new period applies from the one after it.
func (s *Scheduler) SetPeriod(period time.Duration) {
	if period <= 0 {
		return
	}
	s.mu.Lock()
	s.period = period
	s.mu.Unlock()
}

// Running reports whether the scheduler is ticking.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Period returns the current tick period.
func (s *Scheduler) Period() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.period
}

// Ticks returns the number of callbacks fired since creation.
func (s *Scheduler) Ticks() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticks
}

// arm schedules the next fire at s.deadline. Caller holds s.mu.
func (s *Scheduler) arm() {
	gen := s.gen
	delay := s.deadline.Sub(s.clock.Now())
	if delay < 0 {
		delay = 0
	}
	s.timer = s.clock.AfterFunc(delay, func() { s.fire(gen) })
}

func (s *Scheduler) fire(gen uint64) {
	s.mu.Lock()
	if !s.running || gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.ticks++
	fn := s.fn
	s.mu.Unlock()

	if fn != nil {
		fn()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running || gen != s.gen {
		return
	}

	now := s.clock.Now()
	s.deadline = s.deadline.Add(s.period)
	if now.Sub(s.deadline) > 2*s.period {
		s.deadline = now.Add(s.period)
	}
	s.arm()
}
