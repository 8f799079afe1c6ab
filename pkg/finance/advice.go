package finance

import (
	"fmt"

	"github.com/iwvelando/finance-literacy/pkg/constants"
)

// AdviceCode identifies an advisory flag derived from a budget or a projection.
type AdviceCode string

const (
	AdviceLowSavings        AdviceCode = "low-savings"
	AdviceHighHousing       AdviceCode = "high-housing"
	AdviceOverBudget        AdviceCode = "over-budget"
	AdviceGoodBalance       AdviceCode = "good-balance"
	AdviceSeekHigherYield   AdviceCode = "seek-higher-yield"
	AdviceAddContributions  AdviceCode = "add-contributions"
	AdviceGoLongerTerm      AdviceCode = "go-longer-term"
	AdviceExcellentStrategy AdviceCode = "excellent-strategy"
)

var adviceMessages = map[AdviceCode]string{
	AdviceLowSavings: fmt.Sprintf("Raise your savings to %.0f-%.0f%% of income",
		constants.RecommendedSavingsRate, constants.RecommendedSavingsRateUpper),
	AdviceHighHousing: fmt.Sprintf("Housing costs exceed the recommended %.0f%% of income",
		constants.MaxHousingShare),
	AdviceOverBudget:        "Cut expenses or increase income",
	AdviceGoodBalance:       "Great balance! Consider investing the surplus",
	AdviceSeekHigherYield:   "Consider higher-yield instruments (ETFs, stocks)",
	AdviceAddContributions:  "Regular contributions will grow the final amount",
	AdviceGoLongerTerm:      "Long-term investing is more effective",
	AdviceExcellentStrategy: "Excellent long-term accumulation strategy!",
}

// Advice is a single advisory flag with its display message.
type Advice struct {
	Code    AdviceCode `json:"code"`
	Message string     `json:"message"`
}

func newAdvice(code AdviceCode) Advice {
	return Advice{Code: code, Message: adviceMessages[code]}
}

// HasAdvice reports whether code is present in advice.
func HasAdvice(advice []Advice, code AdviceCode) bool {
	for _, a := range advice {
		if a.Code == code {
			return true
		}
	}
	return false
}
