// Package progress persists the user's learning progress: the best quiz score,
// the number of finished quizzes and the number of budget plans made.
package progress

import (
	"encoding/json"
	"fmt"
)

// UserProgress is the persisted progress record. The JSON field names are the
// stored format and must not change.
type UserProgress struct {
	BestQuizScore      int `json:"quizScore"`
	CompletedTestCount int `json:"completedTests"`
	BudgetPlanCount    int `json:"budgetPlans"`
}

// Next returns prev updated with one finished quiz session: the best score is
// the maximum seen, the completed count increments by one, and the budget plan
// count increments when a budget was planned.
func Next(prev UserProgress, score int, budgetPlanned bool) UserProgress {
	next := prev
	if score > next.BestQuizScore {
		next.BestQuizScore = score
	}
	next.CompletedTestCount++
	if budgetPlanned {
		next.BudgetPlanCount++
	}
	return next
}

// Decode parses a stored record.
func Decode(raw string) (UserProgress, error) {
	var p UserProgress
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return UserProgress{}, fmt.Errorf("failed to decode progress: %w", err)
	}
	return p, nil
}

// Encode serializes p for storage.
func Encode(p UserProgress) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to encode progress: %w", err)
	}
	return string(data), nil
}
