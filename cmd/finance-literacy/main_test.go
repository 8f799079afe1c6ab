package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/iwvelando/finance-literacy/internal/progress"
	"github.com/iwvelando/finance-literacy/pkg/constants"
	"github.com/iwvelando/finance-literacy/pkg/finance"
	"github.com/iwvelando/finance-literacy/pkg/quiz"
	"github.com/iwvelando/finance-literacy/pkg/testutil"
	"github.com/iwvelando/finance-literacy/pkg/tips"
	"go.uber.org/zap"
)

// writeTestConfig writes a config that keeps logs quiet and progress inside dir.
func writeTestConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	body := "logging:\n  level: error\nstorage:\n  driver: file\n  path: " +
		filepath.Join(dir, "progress.json") + "\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func runCLI(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	full := append([]string{
		"--config", writeTestConfig(t, dir),
		"--env-file", filepath.Join(dir, "missing.env"),
	}, args...)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(full)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestBudgetCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := runCLI(t, dir, "budget", "--output-format", "json",
		"--income", "50000", "--housing", "20000", "--food", "10000",
		"--transport", "5000", "--entertainment", "5000", "--savings", "5000")
	if err != nil {
		t.Fatalf("budget failed: %v", err)
	}

	var report finance.BudgetReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("output is not a budget report: %v\n%s", err, out)
	}
	testutil.AssertWithin(t, "total expenses", 45000, report.Summary.TotalExpenses, constants.CurrencyTolerance)
	testutil.AssertWithin(t, "remaining", 5000, report.Summary.Remaining, constants.CurrencyTolerance)
	testutil.AssertWithin(t, "savings rate", 10, report.Summary.SavingsRatePercent, constants.CurrencyTolerance)

	// The planned budget is kept for the next quiz commit
	logger = zap.NewNop()
	stored := loadBudget(context.Background(), progress.NewFileStore(filepath.Join(dir, "progress.json")))
	if stored.Income != 50000 {
		t.Errorf("stored income = %v, want 50000", stored.Income)
	}
}

func TestInvestCommand(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "invest", "--output-format", "json",
		"--principal", "10000", "--monthly", "0", "--rate", "12", "--years", "7")
	if err != nil {
		t.Fatalf("invest failed: %v", err)
	}

	var report finance.InvestmentReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("output is not an investment report: %v\n%s", err, out)
	}
	if !report.Projection.Truncated {
		t.Error("expected a truncated breakdown for a 7 year term")
	}
	if len(report.Yearly) != constants.MaxBreakdownYears {
		t.Errorf("yearly rows = %d, want %d", len(report.Yearly), constants.MaxBreakdownYears)
	}
}

func TestTipsCommand(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "tips", "--output-format", "json")
	if err != nil {
		t.Fatalf("tips failed: %v", err)
	}

	var got []tips.Tip
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not a tip list: %v\n%s", err, out)
	}
	if len(got) != len(tips.All()) {
		t.Errorf("tips = %d, want %d", len(got), len(tips.All()))
	}
}

func TestProgressCommand(t *testing.T) {
	dir := t.TempDir()
	store := progress.NewFileStore(filepath.Join(dir, "progress.json"))
	raw, err := progress.Encode(progress.UserProgress{BestQuizScore: 3, CompletedTestCount: 2, BudgetPlanCount: 1})
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if err := store.Set(context.Background(), constants.ProgressKey, raw); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	out, err := runCLI(t, dir, "progress", "--output-format", "json")
	if err != nil {
		t.Fatalf("progress failed: %v", err)
	}

	got, err := progress.Decode(out)
	if err != nil {
		t.Fatalf("output is not a progress record: %v\n%s", err, out)
	}
	want := progress.UserProgress{BestQuizScore: 3, CompletedTestCount: 2, BudgetPlanCount: 1}
	if got != want {
		t.Errorf("progress = %+v, want %+v", got, want)
	}
}

func TestInvalidOutputFormat(t *testing.T) {
	if _, err := runCLI(t, t.TempDir(), "tips", "--output-format", "csv"); err == nil {
		t.Error("expected an error for an unsupported output format")
	}
}

func TestLoadBudgetMalformed(t *testing.T) {
	logger = zap.NewNop()
	ctx := context.Background()
	store := progress.NewMemoryStore()

	if got := loadBudget(ctx, store); got != (finance.BudgetData{}) {
		t.Errorf("missing budget = %+v, want zero", got)
	}
	if err := store.Set(ctx, constants.BudgetKey, "{not json"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if got := loadBudget(ctx, store); got != (finance.BudgetData{}) {
		t.Errorf("malformed budget = %+v, want zero", got)
	}
	if err := saveBudget(ctx, store, finance.BudgetData{Income: 1000}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if got := loadBudget(ctx, store); got.Income != 1000 {
		t.Errorf("income = %v, want 1000", got.Income)
	}
}

func TestFinishHookCommitsProgress(t *testing.T) {
	logger = zap.NewNop()

	tests := []struct {
		name   string
		budget *finance.BudgetData
		want   progress.UserProgress
	}{
		{
			name:   "With a planned budget",
			budget: &finance.BudgetData{Income: 100000},
			want:   progress.UserProgress{BestQuizScore: 4, CompletedTestCount: 1, BudgetPlanCount: 1},
		},
		{
			name: "Without a budget",
			want: progress.UserProgress{BestQuizScore: 4, CompletedTestCount: 1},
		},
		{
			name:   "Budget without income",
			budget: &finance.BudgetData{},
			want:   progress.UserProgress{BestQuizScore: 4, CompletedTestCount: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := progress.NewMemoryStore()
			if tt.budget != nil {
				if err := saveBudget(ctx, store, *tt.budget); err != nil {
					t.Fatalf("seed failed: %v", err)
				}
			}

			tracker := progress.NewTracker(store, logger)
			tracker.Load(ctx)
			hook := finishHook(tracker, loadBudget(ctx, store).Income > 0)
			hook(quiz.Result{Difficulty: quiz.Beginner, Score: 4, Total: 5})

			raw, ok, err := store.Get(ctx, constants.ProgressKey)
			if err != nil || !ok {
				t.Fatalf("progress not stored: ok=%v err=%v", ok, err)
			}
			got, err := progress.Decode(raw)
			if err != nil {
				t.Fatalf("stored progress is malformed: %v", err)
			}
			if got != tt.want {
				t.Errorf("progress = %+v, want %+v", got, tt.want)
			}
			if tracker.Current() != tt.want {
				t.Errorf("tracker = %+v, want %+v", tracker.Current(), tt.want)
			}
		})
	}
}

func TestFinishHookKeepsBestScore(t *testing.T) {
	logger = zap.NewNop()
	store := progress.NewMemoryStore()
	tracker := progress.NewTracker(store, logger)

	hook := finishHook(tracker, false)
	hook(quiz.Result{Difficulty: quiz.Advanced, Score: 5, Total: 5})
	hook(quiz.Result{Difficulty: quiz.Beginner, Score: 2, Total: 5})

	want := progress.UserProgress{BestQuizScore: 5, CompletedTestCount: 2}
	if got := tracker.Current(); got != want {
		t.Errorf("progress = %+v, want %+v", got, want)
	}
}
