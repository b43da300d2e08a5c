package spawn

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/arcade-engines/internal/core"
)

func TestFreeCellAvoidsOccupied(t *testing.T) {
	g := New(rand.New(rand.NewSource(42)))

	occupied := func(p core.GridPosition) bool { return p.X < 19 }
	for i := 0; i < 100; i++ {
		p, ok := g.FreeCell(20, 20, occupied)
		if !ok {
			t.Fatal("FreeCell should succeed while the last column is free")
		}
		if p.X != 19 {
			t.Fatalf("FreeCell returned occupied cell %v", p)
		}
	}
}

func TestFreeCellSingleFreeCell(t *testing.T) {
	g := New(rand.New(rand.NewSource(7)))

	target := core.Pos(3, 17)
	p, ok := g.FreeCell(20, 20, func(p core.GridPosition) bool { return p != target })
	if !ok || p != target {
		t.Errorf("FreeCell = %v, %v; want %v, true", p, ok, target)
	}
}

func TestFreeCellFullGrid(t *testing.T) {
	g := New(rand.New(rand.NewSource(1)))

	_, ok := g.FreeCell(5, 5, func(core.GridPosition) bool { return true })
	if ok {
		t.Error("FreeCell on a full grid should report failure")
	}
	_, ok = g.FreeCell(0, 5, func(core.GridPosition) bool { return false })
	if ok {
		t.Error("FreeCell on an empty grid should report failure")
	}
}

func TestGapOffsetRange(t *testing.T) {
	g := New(rand.New(rand.NewSource(3)))

	for i := 0; i < 1000; i++ {
		v := g.GapOffset(600, 150, 50)
		if v < 50 || v > 400 {
			t.Fatalf("GapOffset = %v, want in [50, 400]", v)
		}
	}
	if v := g.GapOffset(100, 150, 10); v != 10 {
		t.Errorf("GapOffset with no room = %v, want margin", v)
	}
}

func TestHazardRate(t *testing.T) {
	g := New(rand.New(rand.NewSource(99)))

	hits := 0
	const n = 10000
	for i := 0; i < n; i++ {
		if g.Hazard(0.2) {
			hits++
		}
	}
	if hits < 1700 || hits > 2300 {
		t.Errorf("hazard hits = %d of %d, want about 20%%", hits, n)
	}
}

func TestPickUniformSupport(t *testing.T) {
	g := New(rand.New(rand.NewSource(5)))

	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		v := g.Pick(7)
		if v < 0 || v >= 7 {
			t.Fatalf("Pick(7) = %d out of range", v)
		}
		seen[v] = true
	}
	if len(seen) != 7 {
		t.Errorf("Pick(7) produced %d distinct values, want 7", len(seen))
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	a := New(rand.New(rand.NewSource(11)))
	b := New(rand.New(rand.NewSource(11)))

	for i := 0; i < 20; i++ {
		if a.Between(0, 1) != b.Between(0, 1) {
			t.Fatal("same seed should give same draws")
		}
	}
}
