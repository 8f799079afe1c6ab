package main

import (
	"errors"
	"fmt"

	"github.com/iwvelando/finance-literacy/internal/tui"
	"github.com/iwvelando/finance-literacy/pkg/finance"
	"github.com/spf13/cobra"
)

var (
	investFields      tui.InvestmentFields
	investInteractive bool
)

var investCmd = &cobra.Command{
	Use:     "invest",
	Aliases: []string{"investment"},
	Short:   "Project compound growth of an investment",
	RunE:    runInvest,
}

func init() {
	f := investCmd.Flags()
	f.StringVar(&investFields.Principal, "principal", "", "initial amount")
	f.StringVar(&investFields.Monthly, "monthly", "", "monthly contribution")
	f.StringVar(&investFields.Rate, "rate", "", "annual return in percent")
	f.StringVar(&investFields.Years, "years", "", "term in whole years")
	f.BoolVarP(&investInteractive, "interactive", "i", false, "enter the inputs in a form")
	rootCmd.AddCommand(investCmd)
}

func runInvest(cmd *cobra.Command, _ []string) error {
	if investInteractive {
		if err := tui.RunForm(tui.NewInvestmentForm(&investFields)); err != nil {
			if errors.Is(err, tui.ErrAborted) {
				return nil
			}
			return err
		}
	}

	r, err := newRenderer(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if err := r.Investment(finance.AnalyzeInvestment(investFields.Inputs())); err != nil {
		return fmt.Errorf("failed to render investment: %w", err)
	}
	return nil
}
