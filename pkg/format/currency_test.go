package format

import "testing"

func TestRubles(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Zero", 0, "0 ₽"},
		{"Small", 950, "950 ₽"},
		{"Thousands", 35000, "35 000 ₽"},
		{"Millions", 1234567.4, "1 234 567 ₽"},
		{"Rounds half up", 23273.5, "23 274 ₽"},
		{"Negative", -12000, "-12 000 ₽"},
		{"Negative rounding to zero", -0.4, "0 ₽"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rubles(tt.amount); got != tt.expected {
				t.Errorf("Rubles(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestNumericRubles(t *testing.T) {
	if got := NumericRubles(-65000); got != "-65 000" {
		t.Errorf("NumericRubles(-65000) = %q, expected %q", got, "-65 000")
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{10, "10.0%"},
		{66.666, "66.7%"},
		{0, "0.0%"},
		{-5.26, "-5.3%"},
	}

	for _, tt := range tests {
		if got := Percent(tt.value); got != tt.expected {
			t.Errorf("Percent(%v) = %q, expected %q", tt.value, got, tt.expected)
		}
	}
}
