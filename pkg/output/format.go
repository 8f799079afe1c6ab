// Package output renders reports, tips, quiz results and progress for the CLI.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/iwvelando/finance-literacy/internal/progress"
	"github.com/iwvelando/finance-literacy/pkg/constants"
	"github.com/iwvelando/finance-literacy/pkg/finance"
	"github.com/iwvelando/finance-literacy/pkg/format"
	"github.com/iwvelando/finance-literacy/pkg/quiz"
	"github.com/iwvelando/finance-literacy/pkg/tips"
	"github.com/iwvelando/finance-literacy/pkg/validation"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	msgQuizScore  = "You answered %d of %d questions correctly"
	msgYearsShown = "First %d years of %d shown"
)

func init() {
	_ = message.Set(language.English, msgQuizScore,
		plural.Selectf(2, "%d",
			"=1", "You answered %d of %d question correctly",
			"other", "You answered %d of %d questions correctly",
		))
}

// Renderer writes results to w in the pretty or json format.
type Renderer struct {
	w      io.Writer
	format string
	p      *message.Printer
}

// NewRenderer validates outputFormat and returns a renderer writing to w.
func NewRenderer(w io.Writer, outputFormat string) (*Renderer, error) {
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return nil, err
	}
	return &Renderer{w: w, format: outputFormat, p: message.NewPrinter(language.English)}, nil
}

func (r *Renderer) json() bool {
	return r.format == constants.OutputFormatJSON
}

// writeJSON writes nothing unless v encodes completely.
func (r *Renderer) writeJSON(v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	if _, err := r.w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Renderer) printf(format string, args ...any) {
	_, _ = r.p.Fprintf(r.w, format, args...)
}

func (r *Renderer) advice(advice []finance.Advice) {
	if len(advice) == 0 {
		return
	}
	r.printf("\nRecommendations:\n")
	for _, a := range advice {
		r.printf("  • %s\n", a.Message)
	}
}

// Budget renders a budget report.
func (r *Renderer) Budget(report finance.BudgetReport) error {
	if !report.Finite() {
		return finance.ErrOutOfRange
	}
	if r.json() {
		return r.writeJSON(report)
	}

	r.printf("--- Budget ---\n")
	r.printf("%-15s | %s\n", "Income", format.Rubles(report.Data.Income))
	r.printf("\n%-15s | %-12s | Share\n", "Category", "Amount")
	r.printf("%-15s | %-12s | _____\n", "________", "______")
	for _, c := range finance.Categories {
		share := "-"
		for _, s := range report.Shares {
			if s.Category == c {
				share = format.Percent(s.DisplayPercent)
			}
		}
		r.printf("%-15s | %-12s | %s\n", c.Label(), format.Rubles(report.Data.Expenses.Get(c)), share)
	}
	r.printf("\n%-15s | %s\n", "Total expenses", format.Rubles(report.Summary.TotalExpenses))
	r.printf("%-15s | %s\n", "Remaining", format.Rubles(report.Summary.Remaining))
	r.printf("%-15s | %s\n", "Savings rate", format.Percent(report.Summary.SavingsRatePercent))
	r.advice(report.Advice)
	return nil
}

// Investment renders an investment report.
func (r *Renderer) Investment(report finance.InvestmentReport) error {
	if !report.Finite() {
		return finance.ErrOutOfRange
	}
	if r.json() {
		return r.writeJSON(report)
	}

	proj := report.Projection
	r.printf("--- Investment projection ---\n")
	r.printf("%-15s | %s\n", "Future value", format.Rubles(proj.FutureValue))
	r.printf("%-15s | %s\n", "Total invested", format.Rubles(proj.TotalInvested))
	r.printf("%-15s | %s\n", "Profit", format.Rubles(proj.Profit))
	r.printf("%-15s | %s\n", "Return", format.Percent(proj.ReturnPercent))

	if len(report.Yearly) > 0 {
		r.printf("\nYear | Value\n")
		r.printf("____ | _____\n")
		for _, y := range report.Yearly {
			r.printf("%-4d | %s\n", y.Year, format.Rubles(y.Value))
		}
		if proj.Truncated {
			r.printf(msgYearsShown, len(report.Yearly), proj.Inputs.Years)
			r.printf("\n")
		}
	}
	r.advice(report.Advice)
	return nil
}

// Tips renders the tips gallery.
func (r *Renderer) Tips(all []tips.Tip) error {
	if r.json() {
		return r.writeJSON(all)
	}
	for i, tip := range all {
		if i > 0 {
			r.printf("\n")
		}
		r.printf("%s [%s]\n  %s\n", tip.Title, tip.Badge, tip.Body)
	}
	return nil
}

// QuizResult renders the outcome of a finished quiz.
func (r *Renderer) QuizResult(result quiz.Result) error {
	if r.json() {
		return r.writeJSON(result)
	}
	r.printf("--- Quiz result (%s) ---\n", result.Difficulty.Label())
	r.printf(msgQuizScore, result.Score, result.Total)
	r.printf(" (%s)\n", format.Percent(result.Percent))
	r.printf("%s\n", result.Message)
	return nil
}

// Progress renders the stored progress.
func (r *Renderer) Progress(p progress.UserProgress) error {
	if r.json() {
		return r.writeJSON(p)
	}
	r.printf("--- Progress ---\n")
	r.printf("%-17s | %d\n", "Best quiz score", p.BestQuizScore)
	r.printf("%-17s | %d\n", "Quizzes completed", p.CompletedTestCount)
	r.printf("%-17s | %d\n", "Budget plans", p.BudgetPlanCount)
	return nil
}
