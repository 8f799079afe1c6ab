package mathutil

import (
	"math"
	"testing"
)

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		name      string
		val1      float64
		val2      float64
		tolerance float64
		expected  bool
	}{
		{"Exactly equal", 1.0, 1.0, 0.1, true},
		{"Within tolerance", 1.0, 1.05, 0.1, true},
		{"Outside tolerance", 1.0, 1.15, 0.1, false},
		{"Zero tolerance exact match", 1.0, 1.0, 0.0, true},
		{"Large tolerance", 1.0, 5.0, 10.0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := WithinTolerance(tt.val1, tt.val2, tt.tolerance)
			if result != tt.expected {
				t.Errorf("WithinTolerance(%v, %v, %v) = %v, expected %v",
					tt.val1, tt.val2, tt.tolerance, result, tt.expected)
			}
		})
	}
}

func TestMin(t *testing.T) {
	if got := Min(1, 2); got != 1 {
		t.Errorf("Min(1, 2) = %v, expected 1", got)
	}
	if got := Min(150, 100); got != 100 {
		t.Errorf("Min(150, 100) = %v, expected 100", got)
	}
}

func TestNonNegative(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Positive passes through", 42.5, 42.5},
		{"Zero", 0, 0},
		{"Negative clamps", -10, 0},
		{"NaN clamps", math.NaN(), 0},
		{"Positive infinity clamps", math.Inf(1), 0},
		{"Negative infinity clamps", math.Inf(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := NonNegative(tt.input); result != tt.expected {
				t.Errorf("NonNegative(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestCalculatePercentage(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		total    float64
		expected float64
	}{
		{"50% of 100", 50.0, 100.0, 50.0},
		{"25% of 200", 50.0, 200.0, 25.0},
		{"More than 100%", 150.0, 100.0, 150.0},
		{"Zero total", 50.0, 0.0, 0.0},
		{"Both zero", 0.0, 0.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculatePercentage(tt.value, tt.total)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("CalculatePercentage(%v, %v) = %v, expected %v",
					tt.value, tt.total, result, tt.expected)
			}
		})
	}
}

func TestCompoundFactor(t *testing.T) {
	if got := CompoundFactor(0.01, 0); got != 1 {
		t.Errorf("CompoundFactor(0.01, 0) = %v, expected 1", got)
	}
	if got := CompoundFactor(0, 120); got != 1 {
		t.Errorf("CompoundFactor(0, 120) = %v, expected 1", got)
	}
	if got := CompoundFactor(0.1, 2); math.Abs(got-1.21) > 1e-12 {
		t.Errorf("CompoundFactor(0.1, 2) = %v, expected 1.21", got)
	}
}

func TestFinite(t *testing.T) {
	tests := []struct {
		name     string
		vals     []float64
		expected bool
	}{
		{"No values", nil, true},
		{"Ordinary values", []float64{0, -1, 1e308}, true},
		{"Positive infinity", []float64{1, math.Inf(1)}, false},
		{"Negative infinity", []float64{math.Inf(-1)}, false},
		{"NaN", []float64{math.NaN(), 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Finite(tt.vals...); got != tt.expected {
				t.Errorf("Finite(%v) = %v, expected %v", tt.vals, got, tt.expected)
			}
		})
	}
}
