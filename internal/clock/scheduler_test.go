package clock

import (
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestSchedulerFiresOncePerPeriod(t *testing.T) {
	fc := NewFake(epoch)
	s := New(fc)

	count := 0
	s.OnTick(func() { count++ })
	s.Start(100 * time.Millisecond)

	fc.Advance(99 * time.Millisecond)
	if count != 0 {
		t.Fatalf("ticks before first period = %d, want 0", count)
	}

	fc.Advance(251 * time.Millisecond)
	if count != 3 {
		t.Errorf("ticks after 350ms = %d, want 3", count)
	}
	if s.Ticks() != 3 {
		t.Errorf("Ticks() = %d, want 3", s.Ticks())
	}
}

func TestSchedulerStartWhileRunningIsNoop(t *testing.T) {
	fc := NewFake(epoch)
	s := New(fc)

	count := 0
	s.OnTick(func() { count++ })
	s.Start(50 * time.Millisecond)
	s.Start(50 * time.Millisecond)
	s.Start(10 * time.Millisecond)

	if fc.Pending() != 1 {
		t.Fatalf("pending timers = %d, want 1", fc.Pending())
	}
	if s.Period() != 50*time.Millisecond {
		t.Errorf("Period() = %v, want 50ms", s.Period())
	}

	fc.Advance(200 * time.Millisecond)
	if count != 4 {
		t.Errorf("ticks = %d, want 4", count)
	}
}

func TestSchedulerStopIdempotent(t *testing.T) {
	fc := NewFake(epoch)
	s := New(fc)

	count := 0
	s.OnTick(func() { count++ })
	s.Start(10 * time.Millisecond)
	fc.Advance(25 * time.Millisecond)

	s.Stop()
	s.Stop()
	if s.Running() {
		t.Fatal("scheduler should be stopped")
	}

	fc.Advance(time.Second)
	if count != 2 {
		t.Errorf("ticks after stop = %d, want 2", count)
	}
	if fc.Pending() != 0 {
		t.Errorf("pending timers after stop = %d, want 0", fc.Pending())
	}
}

func TestSchedulerRestart(t *testing.T) {
	fc := NewFake(epoch)
	s := New(fc)

	count := 0
	s.OnTick(func() { count++ })
	s.Start(10 * time.Millisecond)
	fc.Advance(15 * time.Millisecond)
	s.Stop()
	fc.Advance(100 * time.Millisecond)
	s.Start(10 * time.Millisecond)
	fc.Advance(10 * time.Millisecond)

	if count != 2 {
		t.Errorf("ticks = %d, want 2", count)
	}
}

func TestSchedulerSetPeriodAppliesFromNextTick(t *testing.T) {
	fc := NewFake(epoch)
	s := New(fc)

	var at []time.Duration
	s.OnTick(func() { at = append(at, fc.Now().Sub(epoch)) })
	s.Start(100 * time.Millisecond)

	fc.Advance(50 * time.Millisecond)
	s.SetPeriod(20 * time.Millisecond)
	fc.Advance(90 * time.Millisecond)

	want := []time.Duration{100 * time.Millisecond, 120 * time.Millisecond, 140 * time.Millisecond}
	if len(at) != len(want) {
		t.Fatalf("tick times = %v, want %v", at, want)
	}
	for i := range want {
		if at[i] != want[i] {
			t.Errorf("tick %d at %v, want %v", i, at[i], want[i])
		}
	}
}

func TestSchedulerStopFromCallback(t *testing.T) {
	fc := NewFake(epoch)
	s := New(fc)

	count := 0
	s.OnTick(func() {
		count++
		if count == 2 {
			s.Stop()
		}
	})
	s.Start(10 * time.Millisecond)
	fc.Advance(time.Second)

	if count != 2 {
		t.Errorf("ticks = %d, want 2", count)
	}
}

// manualClock hands armed callbacks back to the test so lag can be simulated.
type manualClock struct {
	now     time.Time
	delays  []time.Duration
	pending func()
}

type noopTimer struct{}

func (noopTimer) Stop() bool { return true }

func (m *manualClock) Now() time.Time { return m.now }

func (m *manualClock) AfterFunc(d time.Duration, f func()) Timer {
	m.delays = append(m.delays, d)
	m.pending = f
	return noopTimer{}
}

func TestSchedulerReanchorsWhenFarBehind(t *testing.T) {
	mc := &manualClock{now: epoch}
	s := New(mc)
	s.OnTick(func() {})
	s.Start(10 * time.Millisecond)

	// Slightly late: the next deadline stays on the grid.
	mc.now = epoch.Add(15 * time.Millisecond)
	mc.pending()
	if got := mc.delays[len(mc.delays)-1]; got != 5*time.Millisecond {
		t.Errorf("delay after small lag = %v, want 5ms", got)
	}

	// Far behind: re-anchor on now instead of firing a burst.
	mc.now = epoch.Add(200 * time.Millisecond)
	mc.pending()
	if got := mc.delays[len(mc.delays)-1]; got != 10*time.Millisecond {
		t.Errorf("delay after large lag = %v, want 10ms", got)
	}
	if s.Ticks() != 2 {
		t.Errorf("Ticks() = %d, want 2", s.Ticks())
	}
}

func TestFakeClockOrdersTimers(t *testing.T) {
	fc := NewFake(epoch)

	var order []int
	fc.AfterFunc(30*time.Millisecond, func() { order = append(order, 3) })
	fc.AfterFunc(10*time.Millisecond, func() { order = append(order, 1) })
	stopped := fc.AfterFunc(20*time.Millisecond, func() { order = append(order, 2) })

	if !stopped.Stop() {
		t.Fatal("Stop on pending timer should return true")
	}
	fc.Advance(time.Second)

	if len(order) != 2 || order[0] != 1 || order[1] != 3 {
		t.Errorf("fire order = %v, want [1 3]", order)
	}
	if !fc.Now().Equal(epoch.Add(time.Second)) {
		t.Errorf("Now() = %v, want epoch+1s", fc.Now())
	}
	if stopped.Stop() {
		t.Error("second Stop should return false")
	}
}
