package quiz

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/finance-literacy/pkg/constants"
)

// State is the phase of a quiz session.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateFinished
)

var stateNames = map[State]string{
	StateNotStarted: "not-started",
	StateInProgress: "in-progress",
	StateFinished:   "finished",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a state name.
func (s *State) UnmarshalText(text []byte) error {
	for state, name := range stateNames {
		if name == string(text) {
			*s = state
			return nil
		}
	}
	return fmt.Errorf("unknown quiz state %q", text)
}

const noSelection = -1

// AdvanceEvent is the scheduled move past an answered question. It is owned by
// the session that produced it and is ignored once that session is replaced.
type AdvanceEvent struct {
	Session uuid.UUID     `json:"session"`
	Index   int           `json:"index"`
	Delay   time.Duration `json:"delay"`
}

// Option configures an Engine.
type Option func(*Engine)

// WithAdvanceDelay sets how long an answered question stays revealed.
func WithAdvanceDelay(d time.Duration) Option {
	return func(e *Engine) {
		if d >= 0 {
			e.delay = d
		}
	}
}

// WithDifficulty preselects the difficulty filter. Unknown levels are ignored.
func WithDifficulty(d Difficulty) Option {
	return func(e *Engine) {
		if d.Valid() {
			e.difficulty = d
		}
	}
}

// WithFinishHook registers fn to run once each time a session finishes.
func WithFinishHook(fn func(Result)) Option {
	return func(e *Engine) {
		e.onFinish = fn
	}
}

// Engine runs quiz sessions: NotStarted -> InProgress -> Finished, with Reset
// returning to NotStarted from any state. Misuse is refused by the guards on
// each transition rather than reported as an error.
//
// An Engine is not safe for concurrent use; see Scheduler.
type Engine struct {
	bank       []Question
	difficulty Difficulty
	questions  []Question

	state    State
	index    int
	selected int
	score    int
	session  uuid.UUID

	delay    time.Duration
	onFinish func(Result)
}

// New creates an engine over bank with the beginner filter selected.
func New(bank []Question, opts ...Option) *Engine {
	e := &Engine{
		bank:       append([]Question(nil), bank...),
		difficulty: Difficulty(constants.DefaultDifficulty),
		delay:      constants.DefaultAdvanceDelay,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.Reset()
	return e
}

// State returns the current phase.
func (e *Engine) State() State {
	return e.state
}

// Difficulty returns the selected filter.
func (e *Engine) Difficulty() Difficulty {
	return e.difficulty
}

// Session returns the id of the live session.
func (e *Engine) Session() uuid.UUID {
	return e.session
}

// Questions returns the questions of the selected difficulty in bank order.
func (e *Engine) Questions() []Question {
	return append([]Question(nil), e.questions...)
}

// Current returns the active question while a session is in progress.
func (e *Engine) Current() (Question, bool) {
	if e.state != StateInProgress {
		return Question{}, false
	}
	return e.questions[e.index], true
}

// Selected returns the answer chosen for the active question, if any.
func (e *Engine) Selected() (int, bool) {
	if e.state != StateInProgress || e.selected == noSelection {
		return 0, false
	}
	return e.selected, true
}

// Score returns the number of correct answers so far.
func (e *Engine) Score() int {
	return e.score
}

// SelectDifficulty changes the filter. Only allowed before a session starts.
func (e *Engine) SelectDifficulty(d Difficulty) bool {
	if e.state != StateNotStarted || !d.Valid() {
		return false
	}
	e.difficulty = d
	e.questions = Filter(e.bank, d)
	return true
}

// CanStart reports whether Start would begin a session.
func (e *Engine) CanStart() bool {
	return e.state == StateNotStarted && len(e.questions) > 0
}

// Start begins a session at the first question with a zero score.
func (e *Engine) Start() bool {
	if !e.CanStart() {
		return false
	}
	e.session = uuid.New()
	e.index = 0
	e.score = 0
	e.selected = noSelection
	e.state = StateInProgress
	return true
}

// CanAnswer reports whether the active question is waiting for an answer.
func (e *Engine) CanAnswer() bool {
	return e.state == StateInProgress && e.selected == noSelection
}

// Answer records option for the active question and scores it. The returned
// event must be delivered to Advance after its delay to move the session on.
func (e *Engine) Answer(option int) (AdvanceEvent, bool) {
	if !e.CanAnswer() {
		return AdvanceEvent{}, false
	}
	q := e.questions[e.index]
	if !q.ValidOption(option) {
		return AdvanceEvent{}, false
	}

	e.selected = option
	if q.IsCorrect(option) {
		e.score++
	}
	return AdvanceEvent{Session: e.session, Index: e.index, Delay: e.delay}, true
}

// Advance applies a scheduled event: the next question is shown, or the session
// finishes after the last one. Events from a replaced session, or for a
// question that is not the active answered one, are ignored.
func (e *Engine) Advance(ev AdvanceEvent) bool {
	if e.state != StateInProgress || ev.Session != e.session || ev.Index != e.index || e.selected == noSelection {
		return false
	}

	if e.index+1 < len(e.questions) {
		e.index++
		e.selected = noSelection
		return true
	}

	e.state = StateFinished
	if e.onFinish != nil {
		e.onFinish(newResult(e.difficulty, e.score, len(e.questions)))
	}
	return true
}

// Result returns the outcome once the session has finished.
func (e *Engine) Result() (Result, bool) {
	if e.state != StateFinished {
		return Result{}, false
	}
	return newResult(e.difficulty, e.score, len(e.questions)), true
}

// Reset clears the session and returns to NotStarted. Pending advance events
// become stale.
func (e *Engine) Reset() {
	e.session = uuid.New()
	e.state = StateNotStarted
	e.index = 0
	e.score = 0
	e.selected = noSelection
	e.questions = Filter(e.bank, e.difficulty)
}
