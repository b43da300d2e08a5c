package slicer

import (
	"time"

	"github.com/vovakirdan/arcade-engines/internal/core"
)

// Sample is one pointer position stamped with simulated time.
type Sample struct {
	Pos core.PointF
	At  time.Duration
}

// Trail keeps the most recent pointer samples within an age limit.
type Trail struct {
	max    int
	maxAge time.Duration
	pts    []Sample
}

// NewTrail creates a trail holding at most n samples no older than maxAge.
func NewTrail(n int, maxAge time.Duration) *Trail {
	return &Trail{max: max(n, 1), maxAge: maxAge}
}

// Add appends a sample, evicting the oldest beyond capacity.
func (t *Trail) Add(p core.PointF, at time.Duration) {
	t.pts = append(t.pts, Sample{Pos: p, At: at})
	if over := len(t.pts) - t.max; over > 0 {
		t.pts = append(t.pts[:0], t.pts[over:]...)
	}
}

// Expire drops samples older than the age limit at now.
func (t *Trail) Expire(now time.Duration) {
	i := 0
	for i < len(t.pts) && now-t.pts[i].At > t.maxAge {
		i++
	}
	if i > 0 {
		t.pts = append(t.pts[:0], t.pts[i:]...)
	}
}

// Near reports whether any sample lies closer than r to p.
func (t *Trail) Near(p core.PointF, r float64) bool {
	for _, s := range t.pts {
		if s.Pos.Dist(p) < r {
			return true
		}
	}
	return false
}

// Samples returns the live samples, oldest first.
func (t *Trail) Samples() []Sample {
	return t.pts
}

// Clear drops every sample.
func (t *Trail) Clear() {
	t.pts = t.pts[:0]
}
