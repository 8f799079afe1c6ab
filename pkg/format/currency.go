// Package format renders amounts and percentages for display.
package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/finance-literacy/pkg/constants"
)

// Rubles returns a whole-rouble string with space thousands separators (e.g., "-1 234 ₽").
func Rubles(amount float64) string {
	return NumericRubles(amount) + " " + constants.CurrencySymbol
}

// NumericRubles returns a whole-rouble string without the currency symbol (e.g., "-1 234").
func NumericRubles(amount float64) string {
	rounded := math.Round(amount)
	sign := ""
	if rounded < 0 {
		sign = "-"
	}
	return sign + groupThousands(fmt.Sprintf("%.0f", math.Abs(rounded)))
}

// Percent returns a percentage with one decimal place (e.g., "10.0%").
func Percent(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

func groupThousands(intPart string) string {
	if len(intPart) <= 3 {
		return intPart
	}

	var builder strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			builder.WriteByte(' ')
		}
		builder.WriteRune(digit)
	}
	return builder.String()
}
