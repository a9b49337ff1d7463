package decimal

import (
	"github.com/shopspring/decimal"
)

// Hundred is the percent scale factor.
var Hundred = decimal.NewFromInt(100)

// RoundToTen rounds an amount to the nearest 10 kroner (half away from zero),
// the granularity used for assessed tax components.
func RoundToTen(d decimal.Decimal) decimal.Decimal {
	return d.Round(-1)
}

// RoundKroner rounds an amount to whole kroner.
func RoundKroner(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// RoundPercent rounds a percentage to one decimal place. Halves round up
// toward positive infinity, so -12.35 becomes -12.3.
func RoundPercent(d decimal.Decimal) decimal.Decimal {
	return d.Shift(1).Add(half).Floor().Shift(-1)
}

var half = decimal.New(5, -1)

// PercentOf returns part/whole*100 rounded to one decimal.
// A zero whole yields zero rather than a division panic.
func PercentOf(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return RoundPercent(part.Div(whole).Mul(Hundred))
}

// RateFactor converts a percentage rate (2.5 = 2.5%) into a growth factor (1.025).
func RateFactor(percent decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Add(percent.Div(Hundred))
}

// Min returns the smaller of two amounts
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the larger of two amounts
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// FormatKroner renders an amount as whole kroner with a "kr" suffix.
func FormatKroner(d decimal.Decimal) string {
	return d.StringFixed(0) + " kr"
}
