package finance

import (
	"math"
	"strings"
	"testing"

	"github.com/iwvelando/finance-literacy/pkg/testutil"
)

func scenarioABudget() BudgetData {
	return BudgetData{
		Income: 100000,
		Expenses: Expenses{
			Housing:       30000,
			Food:          15000,
			Transport:     5000,
			Entertainment: 5000,
			Savings:       10000,
		},
	}
}

func TestSummarizeScenarioA(t *testing.T) {
	data := scenarioABudget()
	summary := Summarize(data)

	testutil.AssertWithin(t, "total expenses", 65000, summary.TotalExpenses, 1e-9)
	testutil.AssertWithin(t, "remaining", 35000, summary.Remaining, 1e-9)
	testutil.AssertWithin(t, "savings rate", 10.0, summary.SavingsRatePercent, 1e-9)

	advice := BudgetAdvice(data, summary)
	if HasAdvice(advice, AdviceLowSavings) {
		t.Error("low-savings flag should be absent at exactly 10%")
	}
	if HasAdvice(advice, AdviceHighHousing) {
		t.Error("high-housing flag should be absent at exactly 30%")
	}
	if HasAdvice(advice, AdviceOverBudget) {
		t.Error("over-budget flag should be absent with a surplus")
	}
	if !HasAdvice(advice, AdviceGoodBalance) {
		t.Error("good-balance flag should be present")
	}
}

func TestSummarizeZeroIncome(t *testing.T) {
	data := BudgetData{Expenses: Expenses{Food: 500, Savings: 200}}
	summary := Summarize(data)

	if summary.SavingsRatePercent != 0 {
		t.Errorf("savings rate with zero income = %v, want 0", summary.SavingsRatePercent)
	}
	if summary.Remaining != -700 {
		t.Errorf("remaining = %v, want -700", summary.Remaining)
	}
	if advice := BudgetAdvice(data, summary); advice != nil {
		t.Errorf("expected no advice without income, got %+v", advice)
	}
	if shares := CategoryShares(data); shares != nil {
		t.Errorf("expected no shares without income, got %+v", shares)
	}
}

func TestSummarizeIsLinear(t *testing.T) {
	base := scenarioABudget()
	for _, scale := range []float64{0, 0.5, 1, 2, 3.75, 1000} {
		scaled := Summarize(base.Scale(scale)).TotalExpenses
		expected := scale * Summarize(base).TotalExpenses
		testutil.AssertWithin(t, "scaled total", expected, scaled, 1e-6)
	}
}

func TestBudgetAdvice(t *testing.T) {
	tests := []struct {
		name     string
		data     BudgetData
		expected []AdviceCode
	}{
		{
			name: "Deficit with low savings and expensive housing",
			data: BudgetData{
				Income:   50000,
				Expenses: Expenses{Housing: 25000, Food: 20000, Entertainment: 10000, Savings: 1000},
			},
			expected: []AdviceCode{AdviceLowSavings, AdviceHighHousing, AdviceOverBudget},
		},
		{
			name: "Balanced budget exactly spent",
			data: BudgetData{
				Income:   10000,
				Expenses: Expenses{Housing: 3000, Food: 3000, Transport: 1000, Entertainment: 1000, Savings: 2000},
			},
			expected: []AdviceCode{AdviceGoodBalance},
		},
		{
			name: "Surplus but no savings",
			data: BudgetData{
				Income:   10000,
				Expenses: Expenses{Food: 1000},
			},
			expected: []AdviceCode{AdviceLowSavings},
		},
		{
			name: "Housing above income is not capped for advice",
			data: BudgetData{
				Income:   1000,
				Expenses: Expenses{Housing: 2500, Savings: 500},
			},
			expected: []AdviceCode{AdviceHighHousing, AdviceOverBudget},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advice := BudgetAdvice(tt.data, Summarize(tt.data))
			if len(advice) != len(tt.expected) {
				t.Fatalf("advice = %+v, expected codes %v", advice, tt.expected)
			}
			for i, code := range tt.expected {
				if advice[i].Code != code {
					t.Errorf("advice[%d] = %s, expected %s", i, advice[i].Code, code)
				}
				if advice[i].Message == "" {
					t.Errorf("advice[%d] has no message", i)
				}
			}
		})
	}
}

func TestCategorySharesCapsDisplayOnly(t *testing.T) {
	data := BudgetData{Income: 1000, Expenses: Expenses{Housing: 2500, Food: 100}}
	shares := CategoryShares(data)

	if len(shares) != len(Categories) {
		t.Fatalf("expected %d shares, got %d", len(Categories), len(shares))
	}
	for i, c := range Categories {
		if shares[i].Category != c {
			t.Errorf("shares[%d].Category = %s, expected %s", i, shares[i].Category, c)
		}
	}

	housing := shares[0]
	testutil.AssertWithin(t, "housing percent", 250, housing.Percent, 1e-9)
	testutil.AssertWithin(t, "housing display percent", 100, housing.DisplayPercent, 1e-9)
	testutil.AssertWithin(t, "food percent", 10, shares[1].Percent, 1e-9)
	if housing.Label != "Housing & utilities" {
		t.Errorf("housing label = %q", housing.Label)
	}
}

func TestBudgetDataSet(t *testing.T) {
	var data BudgetData

	if !data.Set(FieldIncome, 5000) {
		t.Fatal("Set(income) returned false")
	}
	if !data.Set(string(CategoryFood), 1200) {
		t.Fatal("Set(food) returned false")
	}
	if !data.Set(string(CategorySavings), -50) {
		t.Fatal("Set(savings) returned false")
	}
	if data.Set("pets", 10) {
		t.Fatal("Set(pets) should reject an unknown field")
	}
	if !data.Set(string(CategoryTransport), math.NaN()) {
		t.Fatal("Set(transport) returned false")
	}

	if data.Income != 5000 || data.Expenses.Food != 1200 {
		t.Errorf("unexpected data after Set: %+v", data)
	}
	if data.Expenses.Savings != 0 {
		t.Errorf("negative savings should clamp to 0, got %v", data.Expenses.Savings)
	}
	if data.Expenses.Transport != 0 {
		t.Errorf("NaN transport should clamp to 0, got %v", data.Expenses.Transport)
	}
}

func TestAnalyzeBudgetNormalizes(t *testing.T) {
	report := AnalyzeBudget(BudgetData{Income: -10, Expenses: Expenses{Food: -5, Housing: 40}})

	if report.Data.Income != 0 || report.Data.Expenses.Food != 0 {
		t.Errorf("expected negatives clamped, got %+v", report.Data)
	}
	if report.Summary.TotalExpenses != 40 {
		t.Errorf("total = %v, expected 40", report.Summary.TotalExpenses)
	}
	if report.Advice != nil || report.Shares != nil {
		t.Errorf("expected no advice or shares without income, got %+v", report)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"", 0},
		{"   ", 0},
		{"abc", 0},
		{"1500", 1500},
		{" 1500.5 ", 1500.5},
		{"100 000", 100000},
		{"100\u00a0000", 100000},
		{"1,5", 1.5},
		{"12,34", 12.34},
		{"100,000", 100000},
		{"1,000,000", 1000000},
		{"1,000.50", 1000.5},
		{"1,234", 1234},
		{"1,0000", 0},
		{"10,00,000", 0},
		{"1,2,3", 0},
		{",500", 0},
		{"-20", 0},
		{"NaN", 0},
		{"Inf", 0},
	}

	for _, tt := range tests {
		if got := ParseAmount(tt.input); got != tt.expected {
			t.Errorf("ParseAmount(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestParseYears(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"", 0},
		{"10", 10},
		{"2.9", 2},
		{"-3", 0},
		{"ten", 0},
	}

	for _, tt := range tests {
		if got := ParseYears(tt.input); got != tt.expected {
			t.Errorf("ParseYears(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestValidAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"", true},
		{"  ", true},
		{"0", true},
		{"25 000", true},
		{"7,5", true},
		{"100,000", true},
		{"1,000,000", true},
		{"2,500.75", true},
		{"1,0000", false},
		{"12,345,67", false},
		{"-1", false},
		{"abc", false},
		{"Inf", false},
		{"NaN", false},
	}

	for _, tt := range tests {
		if got := ValidAmount(tt.input); got != tt.expected {
			t.Errorf("ValidAmount(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestBudgetReportFinite(t *testing.T) {
	if !AnalyzeBudget(scenarioABudget()).Finite() {
		t.Error("ordinary budget reported as overflowing")
	}

	huge := BudgetData{Income: 1e308, Expenses: Expenses{Housing: 1e308, Food: 1e308}}
	if AnalyzeBudget(huge).Finite() {
		t.Error("expected the total of huge expenses to overflow")
	}

	tinyIncome := BudgetData{Income: 1e-300, Expenses: Expenses{Housing: 1e300}}
	if AnalyzeBudget(tinyIncome).Finite() {
		t.Error("expected the housing share to overflow")
	}
}

func TestAdviceMessagesQuoteThresholds(t *testing.T) {
	tests := []struct {
		code     AdviceCode
		contains string
	}{
		{AdviceLowSavings, "10-20% of income"},
		{AdviceHighHousing, "recommended 30% of income"},
	}

	for _, tt := range tests {
		if got := newAdvice(tt.code).Message; !strings.Contains(got, tt.contains) {
			t.Errorf("%s message = %q, expected it to contain %q", tt.code, got, tt.contains)
		}
	}
}
