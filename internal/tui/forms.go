package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/iwvelando/finance-literacy/pkg/finance"
)

// ErrAborted is returned when the user cancels a form.
var ErrAborted = errors.New("input cancelled")

// validateAmount rejects input that would be read as something other than
// what was typed. Empty input is accepted and means zero.
func validateAmount(raw string) error {
	if !finance.ValidAmount(raw) {
		return fmt.Errorf("%q is not a non-negative number", strings.TrimSpace(raw))
	}
	return nil
}

// BudgetFields holds the raw text of the budget form.
type BudgetFields struct {
	Income        string
	Housing       string
	Food          string
	Transport     string
	Entertainment string
	Savings       string
}

// Data converts the entered text to budget data. Invalid entries become zero.
func (f BudgetFields) Data() finance.BudgetData {
	return finance.BudgetData{
		Income: finance.ParseAmount(f.Income),
		Expenses: finance.Expenses{
			Housing:       finance.ParseAmount(f.Housing),
			Food:          finance.ParseAmount(f.Food),
			Transport:     finance.ParseAmount(f.Transport),
			Entertainment: finance.ParseAmount(f.Entertainment),
			Savings:       finance.ParseAmount(f.Savings),
		},
	}
}

func amountInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("0").
		Value(value).
		Validate(validateAmount)
}

// NewBudgetForm builds the form for monthly income and expenses.
func NewBudgetForm(f *BudgetFields) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			amountInput("Monthly income (₽)", &f.Income),
		).Title("Income"),
		huh.NewGroup(
			amountInput(finance.CategoryHousing.Label(), &f.Housing),
			amountInput(finance.CategoryFood.Label(), &f.Food),
			amountInput(finance.CategoryTransport.Label(), &f.Transport),
			amountInput(finance.CategoryEntertainment.Label(), &f.Entertainment),
			amountInput(finance.CategorySavings.Label(), &f.Savings),
		).Title("Monthly expenses (₽)"),
	)
}

// InvestmentFields holds the raw text of the investment form.
type InvestmentFields struct {
	Principal string
	Monthly   string
	Rate      string
	Years     string
}

// Inputs converts the entered text to investment inputs. Invalid entries become zero.
func (f InvestmentFields) Inputs() finance.InvestmentInputs {
	return finance.InvestmentInputs{
		Principal:           finance.ParseAmount(f.Principal),
		MonthlyContribution: finance.ParseAmount(f.Monthly),
		AnnualRatePercent:   finance.ParseAmount(f.Rate),
		Years:               finance.ParseYears(f.Years),
	}
}

// NewInvestmentForm builds the form for the investment projection.
func NewInvestmentForm(f *InvestmentFields) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			amountInput("Initial amount (₽)", &f.Principal),
			amountInput("Monthly contribution (₽)", &f.Monthly),
			amountInput("Annual return (%)", &f.Rate),
			amountInput("Term (years)", &f.Years),
		).Title("Investment"),
	)
}

// RunForm runs form in the terminal, mapping a cancelled form to ErrAborted.
func RunForm(form *huh.Form) error {
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return fmt.Errorf("form error: %w", err)
	}
	return nil
}
