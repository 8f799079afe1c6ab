package quiz

// QuestionView is a question as presented before and after the reveal. The
// correct option and explanation are only filled in once an answer is chosen.
type QuestionView struct {
	ID          int      `json:"id"`
	Number      int      `json:"number"`
	Text        string   `json:"question"`
	Options     []string `json:"options"`
	Selected    *int     `json:"selected,omitempty"`
	Correct     *int     `json:"correct,omitempty"`
	AnsweredOK  *bool    `json:"answeredCorrectly,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
}

// View is a read-only snapshot of an engine for rendering.
type View struct {
	State         State         `json:"state"`
	Session       string        `json:"session"`
	Difficulty    Difficulty    `json:"difficulty"`
	QuestionCount int           `json:"questionCount"`
	CanStart      bool          `json:"canStart"`
	CanAnswer     bool          `json:"canAnswer"`
	Score         int           `json:"score"`
	Question      *QuestionView `json:"currentQuestion,omitempty"`
	Result        *Result       `json:"result,omitempty"`
}

// Snapshot captures the engine state for rendering.
func (e *Engine) Snapshot() View {
	v := View{
		State:         e.state,
		Session:       e.session.String(),
		Difficulty:    e.difficulty,
		QuestionCount: len(e.questions),
		CanStart:      e.CanStart(),
		CanAnswer:     e.CanAnswer(),
		Score:         e.score,
	}

	if q, ok := e.Current(); ok {
		qv := &QuestionView{
			ID:      q.ID,
			Number:  e.index + 1,
			Text:    q.Text,
			Options: append([]string(nil), q.Options...),
		}
		if selected, answered := e.Selected(); answered {
			correct := q.Correct
			ok := q.IsCorrect(selected)
			qv.Selected = &selected
			qv.Correct = &correct
			qv.AnsweredOK = &ok
			qv.Explanation = q.Explanation
		}
		v.Question = qv
	}

	if result, ok := e.Result(); ok {
		v.Result = &result
	}
	return v
}
