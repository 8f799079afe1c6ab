// Package tui provides the interactive terminal quiz and the input forms for
// the budget and investment calculators.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/iwvelando/finance-literacy/pkg/format"
	"github.com/iwvelando/finance-literacy/pkg/quiz"
)

const progressBarWidth = 40

// advanceMsg delivers a scheduled advance back to the model once its delay
// has elapsed.
type advanceMsg struct {
	event quiz.AdvanceEvent
}

func advanceCmd(ev quiz.AdvanceEvent) tea.Cmd {
	return tea.Tick(ev.Delay, func(time.Time) tea.Msg {
		return advanceMsg{event: ev}
	})
}

// QuizApp is the Bubble Tea model running one quiz engine.
type QuizApp struct {
	engine *quiz.Engine
	styles styles
	bar    progress.Model

	// cursor indexes the difficulty list before a session and the options during one.
	cursor   int
	pending  *quiz.AdvanceEvent
	quitting bool
}

// NewQuizApp creates the quiz model over engine.
func NewQuizApp(engine *quiz.Engine, theme Theme) QuizApp {
	bar := progress.New(
		progress.WithSolidFill(string(theme.Accent)),
		progress.WithWidth(progressBarWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(theme.TextMuted)

	a := QuizApp{engine: engine, styles: newStyles(theme), bar: bar}
	for i, d := range quiz.Difficulties {
		if d == engine.Difficulty() {
			a.cursor = i
		}
	}
	return a
}

// Init implements tea.Model.
func (a QuizApp) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a QuizApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := msg.Width - 4
		if width > progressBarWidth {
			width = progressBarWidth
		}
		if width > 0 {
			a.bar.Width = width
		}
		return a, nil

	case advanceMsg:
		if a.engine.Advance(msg.event) {
			a.pending = nil
			a.cursor = 0
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" || key == "q" || key == "esc" {
			a.quitting = true
			return a, tea.Quit
		}

		switch a.engine.State() {
		case quiz.StateNotStarted:
			return a.updateNotStarted(key)
		case quiz.StateInProgress:
			return a.updateInProgress(key)
		case quiz.StateFinished:
			if key == "r" || key == "enter" {
				a.reset()
			}
		}
	}
	return a, nil
}

func (a QuizApp) updateNotStarted(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.cursor < len(quiz.Difficulties)-1 {
			a.cursor++
		}
		a.engine.SelectDifficulty(quiz.Difficulties[a.cursor])
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		a.engine.SelectDifficulty(quiz.Difficulties[a.cursor])
	case "1", "2", "3":
		n, _ := strconv.Atoi(key)
		a.cursor = n - 1
		a.engine.SelectDifficulty(quiz.Difficulties[a.cursor])
	case "enter", "s":
		a.engine.SelectDifficulty(quiz.Difficulties[a.cursor])
		if a.engine.Start() {
			a.cursor = 0
		}
	}
	return a, nil
}

func (a QuizApp) updateInProgress(key string) (tea.Model, tea.Cmd) {
	if key == "r" {
		a.reset()
		return a, nil
	}
	if !a.engine.CanAnswer() {
		return a, nil
	}

	q, _ := a.engine.Current()
	switch key {
	case "j", "down":
		if a.cursor < len(q.Options)-1 {
			a.cursor++
		}
		return a, nil
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "enter", " ":
		return a.answer(a.cursor)
	}

	if n, err := strconv.Atoi(key); err == nil {
		return a.answer(n - 1)
	}
	return a, nil
}

func (a QuizApp) answer(option int) (tea.Model, tea.Cmd) {
	ev, ok := a.engine.Answer(option)
	if !ok {
		return a, nil
	}
	a.cursor = option
	a.pending = &ev
	return a, advanceCmd(ev)
}

// reset abandons the session; a tick still in flight carries the old session
// id and is ignored when it arrives.
func (a *QuizApp) reset() {
	a.engine.Reset()
	a.pending = nil
	a.cursor = 0
	for i, d := range quiz.Difficulties {
		if d == a.engine.Difficulty() {
			a.cursor = i
		}
	}
}

// View implements tea.Model.
func (a QuizApp) View() string {
	if a.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(a.styles.title.Render("  Financial literacy quiz"))
	b.WriteString("\n\n")

	v := a.engine.Snapshot()
	switch v.State {
	case quiz.StateNotStarted:
		a.viewNotStarted(&b, v)
	case quiz.StateInProgress:
		a.viewInProgress(&b, v)
	case quiz.StateFinished:
		a.viewFinished(&b, v)
	}
	return b.String()
}

func (a QuizApp) viewNotStarted(b *strings.Builder, v quiz.View) {
	b.WriteString(a.styles.text.Render("  Choose a difficulty:"))
	b.WriteString("\n\n")
	for i, d := range quiz.Difficulties {
		line := fmt.Sprintf("  %d. %s (%s)", i+1, d.Label(), d.Topic())
		if i == a.cursor {
			b.WriteString(a.styles.cursor.Render("> " + strings.TrimLeft(line, " ")))
		} else {
			b.WriteString(a.styles.muted.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if v.CanStart {
		b.WriteString(a.styles.muted.Render(fmt.Sprintf("  %d questions. Enter to start, q to quit", v.QuestionCount)))
	} else {
		b.WriteString(a.styles.wrong.Render("  No questions for this difficulty"))
	}
	b.WriteString("\n")
}

func (a QuizApp) viewInProgress(b *strings.Builder, v quiz.View) {
	q := v.Question
	if q == nil {
		return
	}

	b.WriteString("  ")
	b.WriteString(a.bar.ViewAs(float64(q.Number-1) / float64(v.QuestionCount)))
	b.WriteString("\n")
	b.WriteString(a.styles.muted.Render(fmt.Sprintf("  Question %d of %d · Score %d", q.Number, v.QuestionCount, v.Score)))
	b.WriteString("\n\n")
	b.WriteString(a.styles.text.Render("  " + q.Text))
	b.WriteString("\n\n")

	for i, opt := range q.Options {
		line := fmt.Sprintf("  %d. %s", i+1, opt)
		switch {
		case q.Correct != nil && i == *q.Correct:
			b.WriteString(a.styles.correct.Render(line + "  ✓"))
		case q.Selected != nil && i == *q.Selected:
			b.WriteString(a.styles.wrong.Render(line + "  ✗"))
		case q.Selected == nil && i == a.cursor:
			b.WriteString(a.styles.cursor.Render("> " + strings.TrimLeft(line, " ")))
		default:
			b.WriteString(a.styles.muted.Render(line))
		}
		b.WriteString("\n")
	}

	if q.Selected != nil {
		b.WriteString("\n")
		if q.AnsweredOK != nil && *q.AnsweredOK {
			b.WriteString(a.styles.correct.Render("  Correct!"))
		} else {
			b.WriteString(a.styles.wrong.Render("  Incorrect."))
		}
		b.WriteString("\n")
		b.WriteString(a.styles.highlight.Render("  " + q.Explanation))
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
		b.WriteString(a.styles.muted.Render("  1-9 or Enter to answer, r to restart, q to quit"))
		b.WriteString("\n")
	}
}

func (a QuizApp) viewFinished(b *strings.Builder, v quiz.View) {
	r := v.Result
	if r == nil {
		return
	}

	b.WriteString("  ")
	b.WriteString(a.bar.ViewAs(r.Percent / 100))
	b.WriteString("\n\n")
	b.WriteString(a.styles.text.Render(fmt.Sprintf("  Score: %d of %d (%s)", r.Score, r.Total, format.Percent(r.Percent))))
	b.WriteString("\n")

	style := a.styles.wrong
	switch r.Tier {
	case quiz.TierHigh:
		style = a.styles.correct
	case quiz.TierMedium:
		style = a.styles.highlight
	}
	b.WriteString(style.Render("  " + r.Message))
	b.WriteString("\n\n")
	b.WriteString(a.styles.muted.Render("  r to play again, q to quit"))
	b.WriteString("\n")
}

// Result returns the outcome if the quiz was finished before quitting.
func (a QuizApp) Result() (quiz.Result, bool) {
	return a.engine.Result()
}
