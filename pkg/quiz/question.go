// Package quiz holds the financial-literacy question bank and the state
// machine that runs a scored quiz session over it.
package quiz

import (
	"fmt"
	"strings"
)

// Difficulty tags a question with its level.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Difficulties lists the levels in ascending order.
var Difficulties = []Difficulty{Beginner, Intermediate, Advanced}

var difficultyLabels = map[Difficulty]string{
	Beginner:     "Beginner",
	Intermediate: "Intermediate",
	Advanced:     "Advanced",
}

var difficultyTopics = map[Difficulty]string{
	Beginner:     "Money basics",
	Intermediate: "Investing",
	Advanced:     "Expert",
}

// Valid reports whether d is one of the known levels.
func (d Difficulty) Valid() bool {
	_, ok := difficultyLabels[d]
	return ok
}

// Label returns the display name of the level.
func (d Difficulty) Label() string {
	if label, ok := difficultyLabels[d]; ok {
		return label
	}
	return string(d)
}

// Topic returns the short description shown next to the level.
func (d Difficulty) Topic() string {
	return difficultyTopics[d]
}

// ParseDifficulty parses a level name, ignoring case and surrounding space.
func ParseDifficulty(raw string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(raw)))
	if !d.Valid() {
		return "", fmt.Errorf("unknown difficulty %q: expected one of beginner, intermediate, advanced", raw)
	}
	return d, nil
}

// Question is an immutable multiple-choice question.
type Question struct {
	ID          int        `json:"id"`
	Text        string     `json:"question"`
	Options     []string   `json:"options"`
	Correct     int        `json:"correct"`
	Explanation string     `json:"explanation"`
	Difficulty  Difficulty `json:"difficulty"`
}

// IsCorrect reports whether option is the correct answer.
func (q Question) IsCorrect(option int) bool {
	return option == q.Correct
}

// ValidOption reports whether option indexes one of the question's options.
func (q Question) ValidOption(option int) bool {
	return option >= 0 && option < len(q.Options)
}

// Filter returns the questions tagged with d, preserving their order.
func Filter(questions []Question, d Difficulty) []Question {
	var out []Question
	for _, q := range questions {
		if q.Difficulty == d {
			out = append(out, q)
		}
	}
	return out
}
