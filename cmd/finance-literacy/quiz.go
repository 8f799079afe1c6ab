package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/iwvelando/finance-literacy/internal/progress"
	"github.com/iwvelando/finance-literacy/internal/tui"
	"github.com/iwvelando/finance-literacy/pkg/quiz"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const commitTimeout = 5 * time.Second

var quizDifficulty string

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take the financial literacy quiz",
	RunE:  runQuiz,
}

func init() {
	quizCmd.Flags().StringVarP(&quizDifficulty, "difficulty", "d", "", "initial difficulty (beginner, intermediate, advanced)")
	rootCmd.AddCommand(quizCmd)
}

func runQuiz(cmd *cobra.Command, _ []string) error {
	opts := conf.Quiz.QuizOptions()
	if quizDifficulty != "" {
		d, err := quiz.ParseDifficulty(quizDifficulty)
		if err != nil {
			return err
		}
		opts = append(opts, quiz.WithDifficulty(d))
	}

	store, closer, err := openStore(cmd.Context(), conf.Storage)
	if err != nil {
		return err
	}
	defer closeStore(closer)

	tracker := progress.NewTracker(store, logger)
	tracker.Load(cmd.Context())
	budgetPlanned := loadBudget(cmd.Context(), store).Income > 0

	opts = append(opts, quiz.WithFinishHook(finishHook(tracker, budgetPlanned)))

	app := tui.NewQuizApp(quiz.New(quiz.DefaultBank(), opts...), tui.DefaultTheme)
	final, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	result, ok := final.(tui.QuizApp).Result()
	if !ok {
		return nil
	}
	r, err := newRenderer(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return r.QuizResult(result)
}

// finishHook commits a finished session to the tracker. The session result
// stands even when the commit fails.
func finishHook(tracker *progress.Tracker, budgetPlanned bool) func(quiz.Result) {
	return func(result quiz.Result) {
		ctx, cancel := context.WithTimeout(context.Background(), commitTimeout)
		defer cancel()
		p, err := tracker.Commit(ctx, result.Score, budgetPlanned)
		if err != nil {
			// already logged by the tracker
			return
		}
		logger.Info("quiz finished",
			zap.String("op", "main.finishHook"),
			zap.String("difficulty", string(result.Difficulty)),
			zap.Int("score", result.Score),
			zap.Int("total", result.Total),
			zap.Int("bestScore", p.BestQuizScore),
		)
	}
}
