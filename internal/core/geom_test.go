package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"adjacent horizontal (no overlap)", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"adjacent vertical (no overlap)", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"single pixel overlap", NewRect(0, 0, 10, 10), NewRect(9, 9, 10, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{"overlap", RectF{0, 0, 40, 40}, RectF{30, 30, 60, 100}, true},
		{"touching edge", RectF{0, 0, 40, 40}, RectF{40, 0, 60, 100}, false},
		{"disjoint", RectF{0, 0, 40, 40}, RectF{100, 100, 10, 10}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestGridPositionAdd(t *testing.T) {
	p := Pos(5, 5)
	tests := []struct {
		dir  Direction
		want GridPosition
	}{
		{DirUp, Pos(5, 4)},
		{DirDown, Pos(5, 6)},
		{DirLeft, Pos(4, 5)},
		{DirRight, Pos(6, 5)},
		{DirNone, Pos(5, 5)},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := p.Add(tc.dir); got != tc.want {
				t.Errorf("Add(%v) = %v, want %v", tc.dir, got, tc.want)
			}
		})
	}
}

func TestGridPositionIn(t *testing.T) {
	if !Pos(0, 0).In(20, 20) || !Pos(19, 19).In(20, 20) {
		t.Error("corner cells should be inside")
	}
	if Pos(-1, 0).In(20, 20) || Pos(20, 5).In(20, 20) || Pos(5, 20).In(20, 20) {
		t.Error("cells past the edge should be outside")
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v opposite twice should be itself", d)
		}
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("%v and its opposite should cancel out", d)
		}
	}
	if DirNone.Opposite() != DirNone {
		t.Error("DirNone should have no opposite")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tc.val, tc.lo, tc.hi, got, tc.want)
		}
	}
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF = %v, want 1", got)
	}
}

func TestPointDist(t *testing.T) {
	got := PointF{0, 0}.Dist(PointF{3, 4})
	if math.Abs(got-5) > 1e-9 {
		t.Errorf("Dist = %v, want 5", got)
	}
}
