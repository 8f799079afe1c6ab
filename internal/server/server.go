// Package server exposes the budget, investment, tips, quiz and progress
// operations over a JSON HTTP API.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/iwvelando/finance-literacy/internal/progress"
	"github.com/iwvelando/finance-literacy/pkg/constants"
	"github.com/iwvelando/finance-literacy/pkg/finance"
	"github.com/iwvelando/finance-literacy/pkg/quiz"
	"github.com/iwvelando/finance-literacy/pkg/tips"
	"go.uber.org/zap"
)

const commitTimeout = 5 * time.Second

// Dependencies are the collaborators of the handler beyond its transport settings.
type Dependencies struct {
	// Tracker receives a commit whenever a quiz session finishes. Required.
	Tracker *progress.Tracker
	// Bank defaults to quiz.DefaultBank().
	Bank             []quiz.Question
	QuizOptions      []quiz.Option
	SchedulerOptions []quiz.SchedulerOption
}

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string

	bank    []quiz.Question
	quiz    *quiz.Scheduler
	tracker *progress.Tracker

	mu     sync.Mutex
	budget finance.BudgetData
}

// NewHandler constructs the HTTP handler serving the API. All requests share a
// single workspace: one budget, one quiz session and one progress record.
func NewHandler(logger *zap.Logger, maxBodySize int64, version string, deps Dependencies) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	bank := deps.Bank
	if bank == nil {
		bank = quiz.DefaultBank()
	}

	h := &handler{
		logger:      logger,
		maxBodySize: maxBodySize,
		version:     trimmedVersion,
		bank:        bank,
		tracker:     deps.Tracker,
	}

	opts := append([]quiz.Option{}, deps.QuizOptions...)
	opts = append(opts, quiz.WithFinishHook(h.commitProgress))
	h.quiz = quiz.NewScheduler(logger, quiz.New(bank, opts...), deps.SchedulerOptions...)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/version", h.handleVersion)
	mux.HandleFunc("/api/budget", h.handleBudget)
	mux.HandleFunc("/api/investment", h.handleInvestment)
	mux.HandleFunc("/api/tips", h.handleTips)
	mux.HandleFunc("/api/quiz", h.handleQuizState)
	mux.HandleFunc("/api/quiz/questions", h.handleQuizQuestions)
	mux.HandleFunc("/api/quiz/difficulty", h.handleQuizDifficulty)
	mux.HandleFunc("/api/quiz/start", h.handleQuizStart)
	mux.HandleFunc("/api/quiz/answer", h.handleQuizAnswer)
	mux.HandleFunc("/api/quiz/reset", h.handleQuizReset)
	mux.HandleFunc("/api/progress", h.handleProgress)

	return mux
}

// commitProgress runs inside the quiz scheduler's lock when a session finishes.
func (h *handler) commitProgress(result quiz.Result) {
	if h.tracker == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), commitTimeout)
	defer cancel()

	budgetPlanned := h.currentBudget().Income > 0
	p, err := h.tracker.Commit(ctx, result.Score, budgetPlanned)
	if err != nil {
		// Commit has already logged the failure; the in-memory record still advanced.
		return
	}
	h.logger.Info("quiz finished",
		zap.String("op", "server.commitProgress"),
		zap.Int("score", result.Score),
		zap.Int("total", result.Total),
		zap.String("tier", string(result.Tier)),
		zap.Int("completedTests", p.CompletedTestCount),
	)
}

func (h *handler) currentBudget() finance.BudgetData {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.budget
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// handleBudget returns the workspace budget report on GET and replaces the
// workspace budget on POST.
func (h *handler) handleBudget(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.writeJSON(w, http.StatusOK, finance.AnalyzeBudget(h.currentBudget()))
	case http.MethodPost:
		var data finance.BudgetData
		if !h.decodeBody(w, r, &data, "server.handleBudget") {
			return
		}

		report := finance.AnalyzeBudget(data)
		if !report.Finite() {
			h.respondErrorWithOp(w, http.StatusUnprocessableEntity, finance.ErrOutOfRange.Error(), "server.handleBudget")
			return
		}
		h.mu.Lock()
		h.budget = report.Data
		h.mu.Unlock()

		h.writeJSON(w, http.StatusOK, report)
	default:
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func (h *handler) handleInvestment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var inputs finance.InvestmentInputs
	if !h.decodeBody(w, r, &inputs, "server.handleInvestment") {
		return
	}
	report := finance.AnalyzeInvestment(inputs)
	if !report.Finite() {
		h.respondErrorWithOp(w, http.StatusUnprocessableEntity, finance.ErrOutOfRange.Error(), "server.handleInvestment")
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}

func (h *handler) handleTips(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	h.writeJSON(w, http.StatusOK, tips.All())
}

// questionSummary is a bank question without its answer.
type questionSummary struct {
	ID         int             `json:"id"`
	Text       string          `json:"question"`
	Options    []string        `json:"options"`
	Difficulty quiz.Difficulty `json:"difficulty"`
}

func (h *handler) handleQuizQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	questions := h.quiz.Questions()
	if raw := r.URL.Query().Get("difficulty"); raw != "" {
		d, err := quiz.ParseDifficulty(raw)
		if err != nil {
			h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), "server.handleQuizQuestions")
			return
		}
		questions = quiz.Filter(h.bank, d)
	}

	summaries := make([]questionSummary, 0, len(questions))
	for _, q := range questions {
		summaries = append(summaries, questionSummary{
			ID:         q.ID,
			Text:       q.Text,
			Options:    append([]string(nil), q.Options...),
			Difficulty: q.Difficulty,
		})
	}
	h.writeJSON(w, http.StatusOK, summaries)
}

func (h *handler) handleQuizState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	h.writeJSON(w, http.StatusOK, h.quiz.Snapshot())
}

type difficultyRequest struct {
	Difficulty string `json:"difficulty"`
}

func (h *handler) handleQuizDifficulty(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req difficultyRequest
	if !h.decodeBody(w, r, &req, "server.handleQuizDifficulty") {
		return
	}
	d, err := quiz.ParseDifficulty(req.Difficulty)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), "server.handleQuizDifficulty")
		return
	}
	h.respondQuiz(w, h.quiz.SelectDifficulty(d))
}

func (h *handler) handleQuizStart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	h.respondQuiz(w, h.quiz.Start())
}

type answerRequest struct {
	Option *int `json:"option"`
}

func (h *handler) handleQuizAnswer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req answerRequest
	if !h.decodeBody(w, r, &req, "server.handleQuizAnswer") {
		return
	}
	if req.Option == nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, "missing option", "server.handleQuizAnswer")
		return
	}
	h.respondQuiz(w, h.quiz.Answer(*req.Option))
}

func (h *handler) handleQuizReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	h.quiz.Reset()
	h.respondQuiz(w, true)
}

// respondQuiz writes the current quiz view; a refused action answers 409.
func (h *handler) respondQuiz(w http.ResponseWriter, accepted bool) {
	status := http.StatusOK
	if !accepted {
		status = http.StatusConflict
	}
	h.writeJSON(w, status, h.quiz.Snapshot())
}

func (h *handler) handleProgress(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var p progress.UserProgress
	if h.tracker != nil {
		p = h.tracker.Current()
	}
	h.writeJSON(w, http.StatusOK, p)
}

func (h *handler) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds limit of %d bytes", h.maxBodySize), op)
			return false
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return false
	}
	return true
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

// writeJSON encodes payload before the status is sent, so an unencodable
// payload still answers 500 with an error body.
func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		h.logger.Error("failed to encode JSON response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
		buf.Reset()
		buf.WriteString(`{"error":"failed to encode response"}` + "\n")
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Error("failed to write JSON response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}
