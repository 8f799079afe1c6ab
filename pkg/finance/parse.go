package finance

import (
	"math"
	"strconv"
	"strings"
)

// parseNumber accepts plain numbers as well as grouped input such as
// "100 000", "100,000" or "1,000.50", and a decimal comma as in "1,5".
func parseNumber(raw string) (float64, bool) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\u00a0', '_':
			return -1
		}
		return r
	}, strings.TrimSpace(raw))
	if cleaned == "" {
		return 0, false
	}

	cleaned, ok := resolveCommas(cleaned)
	if !ok {
		return 0, false
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// resolveCommas rewrites commas for strconv. A single comma followed by one or
// two digits is a decimal comma; otherwise commas must group the integer part
// in threes. Anything else is ambiguous and rejected.
func resolveCommas(s string) (string, bool) {
	if !strings.Contains(s, ",") {
		return s, true
	}

	intPart, frac, hasPoint := strings.Cut(s, ".")
	groups := strings.Split(intPart, ",")
	if !hasPoint && len(groups) == 2 && len(groups[1]) >= 1 && len(groups[1]) <= 2 {
		return groups[0] + "." + groups[1], true
	}

	lead := strings.TrimLeft(groups[0], "+-")
	if len(lead) < 1 || len(lead) > 3 {
		return "", false
	}
	for _, g := range groups[1:] {
		if len(g) != 3 {
			return "", false
		}
	}

	out := strings.Join(groups, "")
	if hasPoint {
		out += "." + frac
	}
	return out, true
}

// ValidAmount reports whether raw is empty or a finite non-negative number.
func ValidAmount(raw string) bool {
	if strings.TrimSpace(raw) == "" {
		return true
	}
	value, ok := parseNumber(raw)
	return ok && value >= 0 && !math.IsInf(value, 0) && !math.IsNaN(value)
}
