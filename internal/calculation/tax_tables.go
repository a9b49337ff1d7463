package calculation

import (
	"github.com/martgra/kjopekraft-sub001/internal/domain"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func brackets(pairs ...string) []domain.TaxBracket {
	out := make([]domain.TaxBracket, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, domain.TaxBracket{Threshold: dec(pairs[i]), Rate: dec(pairs[i+1])})
	}
	return out
}

// DefaultTaxTable returns the built-in tax parameters keyed by year.
// A fresh map is returned on every call so callers may extend it.
func DefaultTaxTable() map[int]domain.TaxYearConfig {
	return map[int]domain.TaxYearConfig{
		2022: {
			MinstefradragRate: dec("0.46"),
			MinstefradragCap:  dec("109950"),
			Personfradrag:     dec("58250"),
			GeneralTaxRate:    dec("0.22"),
			BracketThresholds: brackets(
				"190350", "0.017",
				"267900", "0.04",
				"643800", "0.134",
				"969200", "0.164",
				"2000000", "0.174",
			),
			TrygdeRate:      dec("0.08"),
			TrygdeThreshold: dec("64650"),
		},
		2023: {
			MinstefradragRate: dec("0.46"),
			MinstefradragCap:  dec("104450"),
			Personfradrag:     dec("79600"),
			GeneralTaxRate:    dec("0.22"),
			BracketThresholds: brackets(
				"198350", "0.017",
				"279150", "0.04",
				"642950", "0.135",
				"926800", "0.165",
				"1500000", "0.175",
			),
			TrygdeRate:      dec("0.079"),
			TrygdeThreshold: dec("69650"),
		},
		2024: {
			MinstefradragRate: dec("0.46"),
			MinstefradragCap:  dec("124250"),
			Personfradrag:     dec("71650"),
			GeneralTaxRate:    dec("0.22"),
			BracketThresholds: brackets(
				"208050", "0.017",
				"292850", "0.04",
				"670000", "0.134",
				"937900", "0.164",
				"1350000", "0.174",
			),
			TrygdeRate:      dec("0.078"),
			TrygdeThreshold: dec("69650"),
		},
		2025: {
			MinstefradragRate: dec("0.46"),
			MinstefradragCap:  dec("92000"),
			Personfradrag:     dec("108550"),
			GeneralTaxRate:    dec("0.22"),
			BracketThresholds: brackets(
				"217400", "0.017",
				"306050", "0.04",
				"697150", "0.137",
				"942400", "0.167",
				"1410750", "0.177",
			),
			TrygdeRate:      dec("0.077"),
			TrygdeThreshold: dec("99650"),
		},
	}
}
