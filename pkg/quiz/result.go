package quiz

import (
	"github.com/iwvelando/finance-literacy/pkg/constants"
	"github.com/iwvelando/finance-literacy/pkg/mathutil"
)

// Tier is the qualitative bucket of a finished quiz.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

var tierMessages = map[Tier]string{
	TierHigh:   "Excellent! You have shown a high level of financial literacy!",
	TierMedium: "Good result! There is still room for improvement.",
	TierLow:    "We recommend studying more material on financial planning.",
}

// Message returns the congratulatory or remedial message for the tier.
func (t Tier) Message() string {
	return tierMessages[t]
}

// TierFor buckets a score: at least 80% is high, at least 60% is medium.
func TierFor(score, total int) Tier {
	pct := mathutil.CalculatePercentage(float64(score), float64(total))
	switch {
	case pct >= constants.HighTierPercent:
		return TierHigh
	case pct >= constants.MediumTierPercent:
		return TierMedium
	default:
		return TierLow
	}
}

// Result is the outcome of a finished session.
type Result struct {
	Difficulty Difficulty `json:"difficulty"`
	Score      int        `json:"score"`
	Total      int        `json:"total"`
	Percent    float64    `json:"percent"`
	Tier       Tier       `json:"tier"`
	Message    string     `json:"message"`
}

func newResult(d Difficulty, score, total int) Result {
	tier := TierFor(score, total)
	return Result{
		Difficulty: d,
		Score:      score,
		Total:      total,
		Percent:    mathutil.CalculatePercentage(float64(score), float64(total)),
		Tier:       tier,
		Message:    tier.Message(),
	}
}
