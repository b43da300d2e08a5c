package progression

import "time"

// Tracker follows one session's progress along a Curve. The level it
// reports never decreases, so the period never increases.
type Tracker struct {
	curve  Curve
	level  int
	period time.Duration
}

// NewTracker starts a tracker at the curve's initial level.
func NewTracker(c Curve) *Tracker {
	t := &Tracker{curve: c}
	t.Reset()
	return t
}

// Reset returns the tracker to the starting level.
func (t *Tracker) Reset() {
	t.level = t.curve.Level(0)
	t.period = t.curve.Period(t.level)
}

// Observe feeds the latest metric. changed is true when the level went up.
func (t *Tracker) Observe(metric int) (level int, period time.Duration, changed bool) {
	if l := t.curve.Level(metric); l > t.level {
		t.level = l
		t.period = t.curve.Period(l)
		changed = true
	}
	return t.level, t.period, changed
}

// Level returns the current level.
func (t *Tracker) Level() int {
	return t.level
}

// Period returns the current tick period.
func (t *Tracker) Period() time.Duration {
	return t.period
}

// Curve returns the curve being tracked.
func (t *Tracker) Curve() Curve {
	return t.curve
}
