package flappy

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/arcade-engines/internal/clock"
	"github.com/vovakirdan/arcade-engines/internal/config"
	"github.com/vovakirdan/arcade-engines/internal/core"
	"github.com/vovakirdan/arcade-engines/internal/engine"
	"github.com/vovakirdan/arcade-engines/internal/input"
	"github.com/vovakirdan/arcade-engines/internal/spawn"
)

const dt = 20 * time.Millisecond

func idle() engine.Frame {
	return engine.Frame{DT: dt, Level: 1}
}

func flap() engine.Frame {
	in := input.Intent{Actions: core.NewInputFrame()}
	in.Actions.Set(core.ActionJump)
	return engine.Frame{Intent: in, DT: dt, Level: 1}
}

func TestGameReset(t *testing.T) {
	g := New(config.DefaultFlappyConfig())
	g.Step(flap())
	g.Pipes().Add(Pipe{X: 300, GapTop: 100})

	g.Reset(rand.New(rand.NewSource(1)))

	s := g.Snapshot()
	if s.BirdY != 300 || s.BirdVel != 0 || s.Pipes != 0 || s.Score != 0 || s.Over {
		t.Errorf("after reset: %+v", s)
	}
}

func TestGameJumpPhysics(t *testing.T) {
	g := New(config.DefaultFlappyConfig())

	g.Step(flap())

	if s := g.Snapshot(); s.BirdY != 292 || s.BirdVel != -7.5 {
		t.Errorf("after flap y=%v vel=%v, want 292 -7.5", s.BirdY, s.BirdVel)
	}
}

func TestGameGravity(t *testing.T) {
	g := New(config.DefaultFlappyConfig())
	want := []float64{300, 300.5, 301.5, 303}
	for i, y := range want {
		g.Step(idle())
		if got := g.Snapshot().BirdY; got != y {
			t.Errorf("tick %d: y = %v, want %v", i+1, got, y)
		}
	}
}

func TestGameOverOnBounds(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		vel  float64
	}{
		{"ceiling", 5, -8},
		{"floor", 555, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(config.DefaultFlappyConfig())
			g.birdY, g.birdVel = tt.y, tt.vel

			ev := g.Step(idle())
			if !ev.Over {
				t.Fatal("expected game over")
			}
			if g.Snapshot().BirdY != tt.y {
				t.Error("bird should stay at its last legal position")
			}
			if ev := g.Step(flap()); ev != (engine.Events{}) {
				t.Errorf("step after game over = %+v", ev)
			}
		})
	}
}

func TestPipeScoring(t *testing.T) {
	g := New(config.DefaultFlappyConfig())
	// Moves to x=135; right edge 195 is behind the bird centre.
	g.Pipes().Add(Pipe{X: 138, GapTop: 250})

	ev := g.Step(idle())
	if ev.Points != 1 || ev.Over {
		t.Fatalf("events = %+v, want one point", ev)
	}
	if ev := g.Step(idle()); ev.Points != 0 {
		t.Errorf("pipe scored twice")
	}
}

func TestPipeCollision(t *testing.T) {
	tests := []struct {
		name   string
		gapTop float64
		hit    bool
	}{
		{"below gap", 50, true},
		{"above gap", 400, true},
		{"inside gap", 250, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(config.DefaultFlappyConfig())
			g.Pipes().Add(Pipe{X: 200, GapTop: tt.gapTop})

			ev := g.Step(idle())
			if ev.Over != tt.hit {
				t.Errorf("over = %v, want %v", ev.Over, tt.hit)
			}
		})
	}
}

func TestPipeSpawnInterval(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	pm := NewPipeManager(cfg.Pipes, cfg.Field, spawn.New(rand.New(rand.NewSource(3))))

	for i := 0; i < 99; i++ {
		pm.Update(dt, cfg.Player.CenterX)
	}
	if n := len(pm.Pipes()); n != 0 {
		t.Fatalf("pipes before 2s = %d", n)
	}
	pm.Update(dt, cfg.Player.CenterX)
	if n := len(pm.Pipes()); n != 1 {
		t.Fatalf("pipes at 2s = %d, want 1", n)
	}
	if x := pm.Pipes()[0].X; x != 397 {
		t.Errorf("new pipe x = %v, want 397", x)
	}
}

func TestGapRange(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	pm := NewPipeManager(cfg.Pipes, cfg.Field, spawn.New(rand.New(rand.NewSource(4))))
	for i := 0; i < 500; i++ {
		pm.spawn()
	}
	for _, p := range pm.Pipes() {
		if p.GapTop < 50 || p.GapTop > 400 {
			t.Fatalf("gap top %v outside [50, 400]", p.GapTop)
		}
	}
}

func TestPipesRetire(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	pm := NewPipeManager(cfg.Pipes, cfg.Field, spawn.New(rand.New(rand.NewSource(5))))
	pm.Add(Pipe{X: -58, GapTop: 100})

	pm.Update(0, cfg.Player.CenterX)
	if n := len(pm.Pipes()); n != 0 {
		t.Errorf("pipe past the left edge kept: %d", n)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() []Snapshot {
		g := New(config.DefaultFlappyConfig())
		g.Reset(rand.New(rand.NewSource(12345)))
		var out []Snapshot
		for i := 0; i < 400; i++ {
			f := idle()
			if i%15 == 0 {
				f = flap()
			}
			g.Step(f)
			out = append(out, g.Snapshot())
		}
		return out
	}
	if a, b := run(), run(); !reflect.DeepEqual(a, b) {
		t.Fatal("same seed and inputs produced different games")
	}
}

func TestSessionStartsOnFlap(t *testing.T) {
	fc := clock.NewFake(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	g := New(config.DefaultFlappyConfig())
	s := engine.NewSession(g, engine.Config{
		GameID: g.ID(),
		Path:   g.Path(),
		Curve:  g.Curve(),
		Seed:   1,
		Clock:  fc,
	})

	fc.Advance(time.Second)
	if s.Status() != engine.NotStarted {
		t.Fatalf("status = %v before the first flap", s.Status())
	}

	s.Submit(core.ActionJump)
	if s.Status() != engine.Running {
		t.Fatalf("status = %v, want running", s.Status())
	}
	fc.Advance(dt)
	if v := g.Velocity(); v != -7.5 {
		t.Errorf("velocity after first tick = %v, want -7.5", v)
	}
	s.Stop()
}
