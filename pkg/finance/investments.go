package finance

import (
	"iter"
	"math"
	"slices"

	"github.com/iwvelando/finance-literacy/pkg/constants"
	"github.com/iwvelando/finance-literacy/pkg/mathutil"
)

const percentDivisor = 100.0

func percentToDecimal(percent float64) float64 {
	return percent / percentDivisor
}

// InvestmentInputs describes a compounding investment with optional monthly
// contributions.
type InvestmentInputs struct {
	Principal           float64 `json:"principal" yaml:"principal"`
	Years               int     `json:"years" yaml:"years"`
	AnnualRatePercent   float64 `json:"annualRatePercent" yaml:"annualRatePercent"`
	MonthlyContribution float64 `json:"monthlyContribution" yaml:"monthlyContribution"`
}

// Normalize clamps every field to a non-negative value.
func (in InvestmentInputs) Normalize() InvestmentInputs {
	years := in.Years
	if years < 0 {
		years = 0
	}
	if years > math.MaxInt32 {
		years = math.MaxInt32
	}
	return InvestmentInputs{
		Principal:           mathutil.NonNegative(in.Principal),
		Years:               years,
		AnnualRatePercent:   mathutil.NonNegative(in.AnnualRatePercent),
		MonthlyContribution: mathutil.NonNegative(in.MonthlyContribution),
	}
}

// MonthlyRate returns the monthly compounding rate as a decimal.
func (in InvestmentInputs) MonthlyRate() float64 {
	return percentToDecimal(in.AnnualRatePercent) / constants.MonthsPerYear
}

// Months returns the total number of compounding periods.
func (in InvestmentInputs) Months() int {
	return in.Years * constants.MonthsPerYear
}

// valueAt returns the future value of the principal and of the contributions
// after the given number of months.
//
// Contribution growth is zero when the rate is zero, even with non-zero
// contributions; callers rely on this exact behavior.
func (in InvestmentInputs) valueAt(months int) (principal, contributions float64) {
	rate := in.MonthlyRate()
	factor := mathutil.CompoundFactor(rate, months)

	if in.Principal > 0 {
		principal = in.Principal * factor
	}
	if in.MonthlyContribution > 0 && rate > 0 {
		contributions = in.MonthlyContribution * (factor - 1) / rate
	}
	return principal, contributions
}

// Projection is the closed-form result of compounding an investment.
type Projection struct {
	Inputs            InvestmentInputs `json:"inputs"`
	MonthlyRate       float64          `json:"monthlyRate"`
	Months            int              `json:"months"`
	PrincipalValue    float64          `json:"principalValue"`
	ContributionValue float64          `json:"contributionValue"`
	FutureValue       float64          `json:"futureValue"`
	TotalInvested     float64          `json:"totalInvested"`
	Profit            float64          `json:"profit"`
	ReturnPercent     float64          `json:"returnPercent"`
	// Truncated is set when the yearly breakdown shows fewer years than the horizon.
	Truncated bool `json:"truncated"`
}

// Project computes the future value, total invested, profit and return of an
// investment.
func Project(in InvestmentInputs) Projection {
	months := in.Months()
	principal, contributions := in.valueAt(months)
	future := principal + contributions
	invested := in.Principal + in.MonthlyContribution*float64(months)
	profit := future - invested

	returnPct := 0.0
	if invested > 0 {
		returnPct = mathutil.CalculatePercentage(profit, invested)
	}

	return Projection{
		Inputs:            in,
		MonthlyRate:       in.MonthlyRate(),
		Months:            months,
		PrincipalValue:    principal,
		ContributionValue: contributions,
		FutureValue:       future,
		TotalInvested:     invested,
		Profit:            profit,
		ReturnPercent:     returnPct,
		Truncated:         in.Years > constants.MaxBreakdownYears,
	}
}

// YearSnapshot is the projected value at the end of a year.
type YearSnapshot struct {
	Year   int     `json:"year"`
	Months int     `json:"months"`
	Value  float64 `json:"value"`
}

// YearlyBreakdown yields the projected value at the end of each of the first
// min(years, 5) years. The sequence is lazy and can be ranged over repeatedly.
func YearlyBreakdown(in InvestmentInputs) iter.Seq[YearSnapshot] {
	last := in.Years
	if last > constants.MaxBreakdownYears {
		last = constants.MaxBreakdownYears
	}

	return func(yield func(YearSnapshot) bool) {
		for year := 1; year <= last; year++ {
			months := year * constants.MonthsPerYear
			principal, contributions := in.valueAt(months)
			if !yield(YearSnapshot{Year: year, Months: months, Value: principal + contributions}) {
				return
			}
		}
	}
}

// InvestmentAdvice derives the advisory flags for an investment. No advice is
// given until both a principal and a horizon have been entered.
func InvestmentAdvice(in InvestmentInputs) []Advice {
	if in.Principal <= 0 || in.Years <= 0 {
		return nil
	}

	var advice []Advice
	if in.AnnualRatePercent < constants.TargetAnnualReturn {
		advice = append(advice, newAdvice(AdviceSeekHigherYield))
	}
	if in.MonthlyContribution == 0 {
		advice = append(advice, newAdvice(AdviceAddContributions))
	}
	if in.Years < constants.LongTermYears {
		advice = append(advice, newAdvice(AdviceGoLongerTerm))
	}
	if in.Years >= constants.ExcellentStrategyYears && in.AnnualRatePercent >= constants.TargetAnnualReturn {
		advice = append(advice, newAdvice(AdviceExcellentStrategy))
	}
	return advice
}

// InvestmentReport bundles everything derived from investment inputs.
type InvestmentReport struct {
	Projection Projection     `json:"projection"`
	Yearly     []YearSnapshot `json:"yearly"`
	Advice     []Advice       `json:"advice,omitempty"`
}

// Finite reports whether the projection and every yearly value are real
// numbers. Long horizons overflow the compound factor.
func (r InvestmentReport) Finite() bool {
	p := r.Projection
	if !mathutil.Finite(p.PrincipalValue, p.ContributionValue, p.FutureValue, p.TotalInvested, p.Profit, p.ReturnPercent) {
		return false
	}
	for _, y := range r.Yearly {
		if !mathutil.Finite(y.Value) {
			return false
		}
	}
	return true
}

// AnalyzeInvestment normalizes the inputs and derives the projection, the
// yearly breakdown and the advice.
func AnalyzeInvestment(in InvestmentInputs) InvestmentReport {
	in = in.Normalize()
	yearly := slices.Collect(YearlyBreakdown(in))
	if yearly == nil {
		yearly = []YearSnapshot{}
	}
	return InvestmentReport{
		Projection: Project(in),
		Yearly:     yearly,
		Advice:     InvestmentAdvice(in),
	}
}

// ParseAmount converts user input into a non-negative amount. Empty or
// malformed input is treated as zero.
func ParseAmount(raw string) float64 {
	value, ok := parseNumber(raw)
	if !ok {
		return 0
	}
	return mathutil.NonNegative(value)
}

// ParseYears converts user input into a non-negative whole number of years.
// Fractions are truncated; empty or malformed input is treated as zero.
func ParseYears(raw string) int {
	value := ParseAmount(raw)
	if value > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Floor(value))
}
