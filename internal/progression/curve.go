// Package progression maps a game's cumulative progress metric (score,
// cleared lines, cleared mazes) to a level and a tick period.
package progression

import "time"

// Curve describes how difficulty ramps with progress.
//
//	Level(m)  = StartLevel + m/Every      (StartLevel when Every is 0)
//	Period(l) = max(Floor, Initial - (l-1)*Step)
type Curve struct {
	Initial    time.Duration `yaml:"initial"`
	Step       time.Duration `yaml:"step"`
	Floor      time.Duration `yaml:"floor"`
	Every      int           `yaml:"every"`
	StartLevel int           `yaml:"start_level"`
}

// Fixed returns a curve that never leaves level 1 and ticks at period.
func Fixed(period time.Duration) Curve {
	return Curve{Initial: period, Floor: period, StartLevel: 1}
}

// Level returns the level reached at the given metric. It never drops below 1.
func (c Curve) Level(metric int) int {
	start := max(c.StartLevel, 1)
	if c.Every <= 0 || metric <= 0 {
		return start
	}
	return start + metric/c.Every
}

// Period returns the tick period for a level, clamped at Floor.
func (c Curve) Period(level int) time.Duration {
	level = max(level, 1)
	p := c.Initial - time.Duration(level-1)*c.Step
	if p < c.Floor {
		p = c.Floor
	}
	if p <= 0 {
		p = time.Millisecond
	}
	return p
}

// Progressive reports whether the curve changes level at all.
func (c Curve) Progressive() bool {
	return c.Every > 0
}
