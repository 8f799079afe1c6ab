package progress

import (
	"context"
	"sync"

	"github.com/iwvelando/finance-literacy/pkg/constants"
	"go.uber.org/zap"
)

// Tracker holds the loaded progress and writes it back after every finished quiz.
type Tracker struct {
	mu      sync.Mutex
	store   Store
	logger  *zap.Logger
	current UserProgress
}

// NewTracker creates a tracker over store. Call Load before use.
func NewTracker(store Store, logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{store: store, logger: logger}
}

// Load reads the stored record. A missing, unreadable or malformed record
// leaves the tracker at zero progress.
func (t *Tracker) Load(ctx context.Context) UserProgress {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.current = UserProgress{}
	raw, ok, err := t.store.Get(ctx, constants.ProgressKey)
	if err != nil {
		t.logger.Warn("failed to read progress, starting from zero",
			zap.String("op", "progress.Tracker.Load"),
			zap.Error(err),
		)
		return t.current
	}
	if !ok {
		t.logger.Debug("no stored progress",
			zap.String("op", "progress.Tracker.Load"),
		)
		return t.current
	}

	p, err := Decode(raw)
	if err != nil {
		t.logger.Warn("stored progress is malformed, starting from zero",
			zap.String("op", "progress.Tracker.Load"),
			zap.Error(err),
		)
		return t.current
	}
	t.current = p
	return t.current
}

// Current returns the progress as last loaded or committed.
func (t *Tracker) Current() UserProgress {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Commit records a finished quiz with the given score and persists the result.
// The in-memory progress advances even when the write fails.
func (t *Tracker) Commit(ctx context.Context, score int, budgetPlanned bool) (UserProgress, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.current = Next(t.current, score, budgetPlanned)

	raw, err := Encode(t.current)
	if err != nil {
		return t.current, err
	}
	if err := t.store.Set(ctx, constants.ProgressKey, raw); err != nil {
		t.logger.Error("failed to persist progress",
			zap.String("op", "progress.Tracker.Commit"),
			zap.Error(err),
		)
		return t.current, err
	}

	t.logger.Debug("progress committed",
		zap.String("op", "progress.Tracker.Commit"),
		zap.Int("quizScore", t.current.BestQuizScore),
		zap.Int("completedTests", t.current.CompletedTestCount),
		zap.Int("budgetPlans", t.current.BudgetPlanCount),
	)
	return t.current, nil
}
