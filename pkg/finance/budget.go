// Package finance implements the budget and investment calculators: closed-form
// arithmetic over user-entered amounts plus the advisory flags derived from it.
package finance

import (
	"errors"

	"github.com/iwvelando/finance-literacy/pkg/constants"
	"github.com/iwvelando/finance-literacy/pkg/mathutil"
)

// ErrOutOfRange is returned for reports whose amounts overflow float64.
var ErrOutOfRange = errors.New("amounts are too large to calculate")

// Category names one of the fixed budget expense categories.
type Category string

const (
	CategoryHousing       Category = "housing"
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryEntertainment Category = "entertainment"
	CategorySavings       Category = "savings"
)

// FieldIncome is the BudgetData field name for monthly income.
const FieldIncome = "income"

// Categories lists the expense categories in display order.
var Categories = []Category{
	CategoryHousing,
	CategoryFood,
	CategoryTransport,
	CategoryEntertainment,
	CategorySavings,
}

var categoryLabels = map[Category]string{
	CategoryHousing:       "Housing & utilities",
	CategoryFood:          "Food",
	CategoryTransport:     "Transport",
	CategoryEntertainment: "Entertainment",
	CategorySavings:       "Savings",
}

// Label returns the display label of the category.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Expenses holds the monthly amount spent per category.
type Expenses struct {
	Housing       float64 `json:"housing" yaml:"housing"`
	Food          float64 `json:"food" yaml:"food"`
	Transport     float64 `json:"transport" yaml:"transport"`
	Entertainment float64 `json:"entertainment" yaml:"entertainment"`
	Savings       float64 `json:"savings" yaml:"savings"`
}

// Get returns the amount for a category.
func (e Expenses) Get(c Category) float64 {
	switch c {
	case CategoryHousing:
		return e.Housing
	case CategoryFood:
		return e.Food
	case CategoryTransport:
		return e.Transport
	case CategoryEntertainment:
		return e.Entertainment
	case CategorySavings:
		return e.Savings
	}
	return 0
}

func (e *Expenses) set(c Category, value float64) bool {
	switch c {
	case CategoryHousing:
		e.Housing = value
	case CategoryFood:
		e.Food = value
	case CategoryTransport:
		e.Transport = value
	case CategoryEntertainment:
		e.Entertainment = value
	case CategorySavings:
		e.Savings = value
	default:
		return false
	}
	return true
}

// BudgetData is the monthly income and per-category expenses entered by the user.
// A deficit (expenses above income) is a valid state.
type BudgetData struct {
	Income   float64  `json:"income" yaml:"income"`
	Expenses Expenses `json:"expenses" yaml:"expenses"`
}

// Set updates a single field ("income" or a category name). Invalid values are
// stored as zero. It returns false for an unknown field.
func (b *BudgetData) Set(field string, value float64) bool {
	value = mathutil.NonNegative(value)
	if field == FieldIncome {
		b.Income = value
		return true
	}
	return b.Expenses.set(Category(field), value)
}

// Normalize clamps every field to a non-negative finite value.
func (b BudgetData) Normalize() BudgetData {
	out := BudgetData{Income: mathutil.NonNegative(b.Income)}
	for _, c := range Categories {
		out.Expenses.set(c, mathutil.NonNegative(b.Expenses.Get(c)))
	}
	return out
}

// Scale multiplies every field by factor.
func (b BudgetData) Scale(factor float64) BudgetData {
	out := BudgetData{Income: b.Income * factor}
	for _, c := range Categories {
		out.Expenses.set(c, b.Expenses.Get(c)*factor)
	}
	return out
}

// BudgetSummary holds the derived totals of a budget.
type BudgetSummary struct {
	TotalExpenses      float64 `json:"totalExpenses"`
	Remaining          float64 `json:"remaining"`
	SavingsRatePercent float64 `json:"savingsRatePercent"`
}

// Summarize sums the expense categories and derives the remaining budget and
// savings rate.
func Summarize(data BudgetData) BudgetSummary {
	total := 0.0
	for _, c := range Categories {
		total += data.Expenses.Get(c)
	}

	rate := 0.0
	if data.Income > 0 {
		rate = mathutil.CalculatePercentage(data.Expenses.Savings, data.Income)
	}

	return BudgetSummary{
		TotalExpenses:      total,
		Remaining:          data.Income - total,
		SavingsRatePercent: rate,
	}
}

// CategoryShare is one category's share of income.
type CategoryShare struct {
	Category       Category `json:"category"`
	Label          string   `json:"label"`
	Amount         float64  `json:"amount"`
	Percent        float64  `json:"percent"`
	DisplayPercent float64  `json:"displayPercent"`
}

// CategoryShares returns each category's share of income in display order.
// Percent is raw; DisplayPercent is capped at 100. Nil when income is zero.
func CategoryShares(data BudgetData) []CategoryShare {
	if data.Income <= 0 {
		return nil
	}

	shares := make([]CategoryShare, 0, len(Categories))
	for _, c := range Categories {
		amount := data.Expenses.Get(c)
		pct := mathutil.CalculatePercentage(amount, data.Income)
		shares = append(shares, CategoryShare{
			Category:       c,
			Label:          c.Label(),
			Amount:         amount,
			Percent:        pct,
			DisplayPercent: mathutil.Min(pct, constants.MaxDisplayPercent),
		})
	}
	return shares
}

// BudgetAdvice derives the advisory flags for a budget. No advice is given
// until an income has been entered.
func BudgetAdvice(data BudgetData, summary BudgetSummary) []Advice {
	if data.Income <= 0 {
		return nil
	}

	var advice []Advice
	if summary.SavingsRatePercent < constants.RecommendedSavingsRate {
		advice = append(advice, newAdvice(AdviceLowSavings))
	}
	if mathutil.CalculatePercentage(data.Expenses.Housing, data.Income) > constants.MaxHousingShare {
		advice = append(advice, newAdvice(AdviceHighHousing))
	}
	if summary.Remaining < 0 {
		advice = append(advice, newAdvice(AdviceOverBudget))
	}
	if summary.Remaining >= 0 && summary.SavingsRatePercent >= constants.RecommendedSavingsRate {
		advice = append(advice, newAdvice(AdviceGoodBalance))
	}
	return advice
}

// BudgetReport bundles everything derived from a budget.
type BudgetReport struct {
	Data    BudgetData      `json:"data"`
	Summary BudgetSummary   `json:"summary"`
	Shares  []CategoryShare `json:"shares,omitempty"`
	Advice  []Advice        `json:"advice,omitempty"`
}

// Finite reports whether every derived amount of the report is a real number.
// Huge but valid inputs can overflow the totals.
func (r BudgetReport) Finite() bool {
	s := r.Summary
	if !mathutil.Finite(s.TotalExpenses, s.Remaining, s.SavingsRatePercent) {
		return false
	}
	for _, share := range r.Shares {
		if !mathutil.Finite(share.Percent, share.DisplayPercent) {
			return false
		}
	}
	return true
}

// AnalyzeBudget normalizes data and derives its summary, shares and advice.
func AnalyzeBudget(data BudgetData) BudgetReport {
	data = data.Normalize()
	summary := Summarize(data)
	return BudgetReport{
		Data:    data,
		Summary: summary,
		Shares:  CategoryShares(data),
		Advice:  BudgetAdvice(data, summary),
	}
}
