package main

import (
	"errors"
	"fmt"

	"github.com/iwvelando/finance-literacy/internal/tui"
	"github.com/iwvelando/finance-literacy/pkg/finance"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	budgetFields      tui.BudgetFields
	budgetInteractive bool
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Analyze a monthly budget",
	Long:  "Summarize monthly income against housing, food, transport, entertainment and savings, with recommendations.",
	RunE:  runBudget,
}

func init() {
	f := budgetCmd.Flags()
	f.StringVar(&budgetFields.Income, "income", "", "monthly income")
	f.StringVar(&budgetFields.Housing, "housing", "", "housing expenses")
	f.StringVar(&budgetFields.Food, "food", "", "food expenses")
	f.StringVar(&budgetFields.Transport, "transport", "", "transport expenses")
	f.StringVar(&budgetFields.Entertainment, "entertainment", "", "entertainment expenses")
	f.StringVar(&budgetFields.Savings, "savings", "", "monthly savings")
	f.BoolVarP(&budgetInteractive, "interactive", "i", false, "enter the budget in a form")
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(cmd *cobra.Command, _ []string) error {
	if budgetInteractive {
		if err := tui.RunForm(tui.NewBudgetForm(&budgetFields)); err != nil {
			if errors.Is(err, tui.ErrAborted) {
				return nil
			}
			return err
		}
	}
	data := budgetFields.Data()

	store, closer, err := openStore(cmd.Context(), conf.Storage)
	if err != nil {
		return err
	}
	defer closeStore(closer)

	// A stored budget marks the plan for the next quiz commit
	if err := saveBudget(cmd.Context(), store, data); err != nil {
		logger.Warn("failed to store budget",
			zap.String("op", "main.runBudget"),
			zap.Error(err),
		)
	}

	r, err := newRenderer(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if err := r.Budget(finance.AnalyzeBudget(data)); err != nil {
		return fmt.Errorf("failed to render budget: %w", err)
	}
	return nil
}
