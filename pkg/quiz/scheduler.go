package quiz

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Timer is a pending delayed call.
type Timer interface {
	Stop() bool
}

// AfterFunc runs fn after d, like time.AfterFunc.
type AfterFunc func(d time.Duration, fn func()) Timer

func wallClock(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithAfterFunc replaces the wall-clock timer, e.g. with a manual one in tests.
func WithAfterFunc(fn AfterFunc) SchedulerOption {
	return func(s *Scheduler) {
		if fn != nil {
			s.afterFunc = fn
		}
	}
}

// Scheduler drives an Engine for surfaces without their own event loop: it
// schedules the auto-advance of each answered question on a timer and cancels
// it on reset. All engine access goes through the scheduler's lock, including
// the engine's finish hook, which must not call back into the scheduler.
type Scheduler struct {
	mu        sync.Mutex
	logger    *zap.Logger
	engine    *Engine
	afterFunc AfterFunc
	pending   Timer
}

// NewScheduler wraps engine.
func NewScheduler(logger *zap.Logger, engine *Engine, opts ...SchedulerOption) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Scheduler{logger: logger, engine: engine, afterFunc: wallClock}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns the current engine view.
func (s *Scheduler) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Snapshot()
}

// Questions returns the questions of the selected difficulty.
func (s *Scheduler) Questions() []Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Questions()
}

// SelectDifficulty changes the filter before a session starts.
func (s *Scheduler) SelectDifficulty(d Difficulty) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.SelectDifficulty(d)
}

// Start begins a session.
func (s *Scheduler) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.engine.Start() {
		return false
	}
	s.logger.Debug("quiz session started",
		zap.String("op", "quiz.Scheduler.Start"),
		zap.String("session", s.engine.Session().String()),
		zap.String("difficulty", string(s.engine.Difficulty())),
	)
	return true
}

// Answer records an answer and schedules the advance past it.
func (s *Scheduler) Answer(option int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ev, ok := s.engine.Answer(option)
	if !ok {
		return false
	}
	s.pending = s.afterFunc(ev.Delay, func() { s.fire(ev) })
	return true
}

func (s *Scheduler) fire(ev AdvanceEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.engine.Advance(ev) {
		s.logger.Debug("ignoring stale advance event",
			zap.String("op", "quiz.Scheduler.fire"),
			zap.String("session", ev.Session.String()),
			zap.Int("index", ev.Index),
		)
		return
	}
	s.pending = nil
	if s.engine.State() == StateFinished {
		s.logger.Info("quiz session finished",
			zap.String("op", "quiz.Scheduler.fire"),
			zap.String("session", ev.Session.String()),
			zap.Int("score", s.engine.Score()),
		)
	}
}

// Reset cancels any pending advance and clears the session.
func (s *Scheduler) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
	s.engine.Reset()
}
