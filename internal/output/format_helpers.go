package output

import (
	"strconv"

	money "github.com/martgra/kjopekraft-sub001/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as whole kroner.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return money.FormatKroner(amount) }

// FormatSignedCurrency is FormatCurrency with an explicit plus sign for gains.
func FormatSignedCurrency(amount decimal.Decimal) string {
	if amount.Round(0).IsPositive() {
		return "+" + FormatCurrency(amount)
	}
	return FormatCurrency(amount)
}

// FormatPercentage formats a decimal as a percentage with 1 decimal.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(1) + "%" }

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
