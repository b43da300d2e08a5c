package engine

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/arcade-engines/internal/clock"
	"github.com/vovakirdan/arcade-engines/internal/core"
	"github.com/vovakirdan/arcade-engines/internal/input"
	"github.com/vovakirdan/arcade-engines/internal/progression"
	"github.com/vovakirdan/arcade-engines/internal/storage"
)

// Recorder stores finished sessions for the leaderboard.
type Recorder interface {
	SaveScore(e storage.ScoreEntry) (int64, error)
}

// Config wires a Session to its collaborators. Zero values are usable:
// the real clock, no persistence and a discard logger.
type Config struct {
	GameID string // registry id, used in score history
	Path   string // persistence path, e.g. "/snake"

	Curve progression.Curve
	Seed  int64

	// StartOnJump starts the session on the first Jump or Up instead of
	// Start. Both are the same flap for the games that set it.
	StartOnJump bool

	Clock    clock.Clock
	Gateway  storage.Gateway
	Recorder Recorder
	Logger   *log.Logger
}

// State is a consistent copy of the session counters.
type State struct {
	ID     string
	Status Status
	Score  int
	Level  int
	Period time.Duration
	Best   int
	Ticks  uint64
	Won    bool
}

// Session drives one game. All methods are safe for concurrent use; ticks
// never overlap because Tick holds the session lock for its whole step.
type Session struct {
	cfg   Config
	rules Rules
	buf   *input.Buffer
	sched *clock.Scheduler
	log   *log.Logger

	mu       sync.Mutex
	id       string
	seed     int64
	status   Status
	score    int
	best     int
	ticks    uint64
	won      bool
	progress *progression.Tracker
}

// NewSession creates a session in the NotStarted state with rules reset
// from cfg.Seed.
func NewSession(rules Rules, cfg Config) *Session {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if l, ok := rules.(Launcher); ok && l.StartsOnJump() {
		cfg.StartOnJump = true
	}

	mode := input.Latched
	var opts []input.Option
	if f, ok := rules.(Filtered); ok {
		mode = f.InputMode()
		opts = f.InputOptions()
	}

	s := &Session{
		cfg:      cfg,
		rules:    rules,
		buf:      input.NewBuffer(mode, opts...),
		sched:    clock.New(cfg.Clock),
		log:      logger.With("game", cfg.GameID),
		seed:     cfg.Seed,
		progress: progression.NewTracker(cfg.Curve),
	}
	s.sched.OnTick(s.Tick)

	s.mu.Lock()
	s.resetLocked()
	s.mu.Unlock()
	return s
}

// Rules returns the plug-in driven by this session.
func (s *Session) Rules() Rules {
	return s.rules
}

// Start moves a fresh session to Running. It is a no-op in any other state.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.startLocked()
}

func (s *Session) startLocked() {
	if s.status != NotStarted {
		return
	}
	s.status = Running
	s.sched.Start(s.progress.Period())
	s.log.Info("session started", "session", s.id, "level", s.progress.Level(), "period", s.progress.Period())
}

// Pause suspends ticking. Entity state is kept.
func (s *Session) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != Running {
		return
	}
	s.status = Paused
	s.sched.Stop()
	s.log.Debug("session paused", "session", s.id, "ticks", s.ticks)
}

// Resume restarts ticking after Pause with the same entities.
func (s *Session) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != Paused {
		return
	}
	s.status = Running
	s.sched.Start(s.progress.Period())
	s.log.Debug("session resumed", "session", s.id)
}

// TogglePause flips between Running and Paused.
func (s *Session) TogglePause() {
	switch s.Status() {
	case Running:
		s.Pause()
	case Paused:
		s.Resume()
	}
}

// Stop halts the scheduler without a terminal transition. Front-ends
// call it when the player leaves mid-game.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sched.Stop()
	if s.status == Running {
		s.status = Paused
	}
}

// Reset discards the game and rebuilds it from the session seed, so two
// resets in a row produce the same initial state.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

// Reseed resets the game from a new seed.
func (s *Session) Reseed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seed = seed
	s.resetLocked()
}

func (s *Session) resetLocked() {
	s.sched.Stop()
	s.rules.Reset(rand.New(rand.NewSource(s.seed)))
	s.buf.Reset()
	if h, ok := s.rules.(Headed); ok {
		s.buf.SetHeading(h.Heading())
	}
	s.progress.Reset()

	s.id = uuid.NewString()
	s.status = NotStarted
	s.score = 0
	s.ticks = 0
	s.won = false
	s.best = s.loadBest()
}

// Submit routes an action from the input source. Pause toggles the
// session, immediate commands go to a Reactor, everything else is latched
// for the next tick. It reports whether the action was accepted.
func (s *Session) Submit(a core.Action) bool {
	if a == core.ActionPause {
		s.TogglePause()
		return true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == NotStarted && s.cfg.StartOnJump && (a == core.ActionJump || a == core.ActionUp) {
		s.startLocked()
	}
	if s.status != Running && s.status != NotStarted {
		return false
	}

	if r, ok := s.rules.(Reactor); ok && s.status == Running {
		if ev, handled := r.React(a, s.progress.Level()); handled {
			s.applyLocked(ev)
			return true
		}
	}
	return s.buf.Submit(a)
}

// SubmitPointer queues a pointer sample for the next tick.
func (s *Session) SubmitPointer(p core.PointF) {
	s.buf.SubmitPointer(p)
}

// Tick advances the simulation by one step. The scheduler calls it; tests
// may call it directly. It does nothing unless the session is Running.
func (s *Session) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != Running {
		return
	}

	f := Frame{
		Intent: s.buf.Consume(),
		DT:     s.progress.Period(),
		Level:  s.progress.Level(),
		Tick:   s.ticks,
	}
	ev := s.rules.Step(f)
	s.ticks++

	if h, ok := s.rules.(Headed); ok {
		s.buf.SetHeading(h.Heading())
	}
	s.applyLocked(ev)
}

func (s *Session) applyLocked(ev Events) {
	if s.status == Over {
		return
	}
	if ev.Points > 0 {
		s.score += ev.Points
	}

	if level, period, changed := s.progress.Observe(s.rules.Progress()); changed {
		s.sched.SetPeriod(period)
		s.log.Info("level up", "session", s.id, "level", level, "period", period)
	}

	if ev.Over {
		s.finishLocked(ev.Won)
	}
}

// finishLocked applies the single terminal transition.
func (s *Session) finishLocked(won bool) {
	s.status = Over
	s.won = won
	s.sched.Stop()

	s.log.Info("game over",
		"session", s.id,
		"score", s.score,
		"level", s.progress.Level(),
		"ticks", s.ticks,
		"won", won,
	)

	if g := s.cfg.Gateway; g != nil {
		if _, err := storage.IncrementGamesPlayed(g); err != nil {
			s.log.Warn("could not update games played", "error", err)
		}
		if s.cfg.Path != "" {
			best, improved, err := storage.RecordHighScore(g, s.cfg.Path, s.score)
			switch {
			case err != nil:
				s.log.Warn("could not record high score", "error", err)
			case improved:
				s.best = best
				s.log.Info("new high score", "score", best)
			}
		}
	}

	if r := s.cfg.Recorder; r != nil {
		_, err := r.SaveScore(storage.ScoreEntry{
			SessionID: s.id,
			GameID:    s.cfg.GameID,
			Score:     s.score,
			Level:     s.progress.Level(),
		})
		if err != nil {
			s.log.Warn("could not save score", "error", err)
		}
	}
}

func (s *Session) loadBest() int {
	if s.cfg.Gateway == nil || s.cfg.Path == "" {
		return 0
	}
	best, err := storage.ReadInt(s.cfg.Gateway, storage.HighScoreKey(s.cfg.Path))
	if err != nil {
		s.log.Warn("could not read high score", "error", err)
	}
	return best
}

// Status returns the lifecycle state.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// State returns a consistent copy of the session counters.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Session) stateLocked() State {
	return State{
		ID:     s.id,
		Status: s.status,
		Score:  s.score,
		Level:  s.progress.Level(),
		Period: s.progress.Period(),
		Best:   max(s.best, s.score),
		Ticks:  s.ticks,
		Won:    s.won,
	}
}

// View runs fn with the session locked so a renderer reads rules and
// counters from the same instant. fn must not call back into the session.
func (s *Session) View(fn func(r Rules, st State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.rules, s.stateLocked())
}
