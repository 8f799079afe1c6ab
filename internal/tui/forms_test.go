package tui

import "testing"

func TestBudgetFieldsData(t *testing.T) {
	f := BudgetFields{
		Income:        "100 000",
		Housing:       "30000",
		Food:          "15 000",
		Transport:     "",
		Entertainment: "abc",
		Savings:       "10,000",
	}
	data := f.Data()
	if data.Expenses.Savings != 10000 {
		t.Errorf("grouped savings = %v, expected 10000", data.Expenses.Savings)
	}
	if data.Income != 100000 || data.Expenses.Housing != 30000 || data.Expenses.Food != 15000 {
		t.Errorf("unexpected data: %+v", data)
	}
	if data.Expenses.Transport != 0 || data.Expenses.Entertainment != 0 {
		t.Errorf("empty and invalid input should become zero: %+v", data.Expenses)
	}
	if NewBudgetForm(&f) == nil {
		t.Error("expected a form")
	}
}

func TestInvestmentFieldsInputs(t *testing.T) {
	f := InvestmentFields{Principal: "10000", Monthly: "1 000", Rate: "8", Years: "2.9"}
	in := f.Inputs()
	if in.Principal != 10000 || in.MonthlyContribution != 1000 || in.AnnualRatePercent != 8 || in.Years != 2 {
		t.Errorf("unexpected inputs: %+v", in)
	}
	if NewInvestmentForm(&f) == nil {
		t.Error("expected a form")
	}
}

func TestValidateAmount(t *testing.T) {
	for _, ok := range []string{"", "0", "12 500", "3,5", "100,000"} {
		if err := validateAmount(ok); err != nil {
			t.Errorf("validateAmount(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"-5", "ten", "1,0000"} {
		if err := validateAmount(bad); err == nil {
			t.Errorf("validateAmount(%q) expected an error", bad)
		}
	}
}
