package output

import (
	"fmt"
	"strings"

	"github.com/martgra/kjopekraft-sub001/internal/calculation"
	"github.com/martgra/kjopekraft-sub001/internal/domain"
	"github.com/shopspring/decimal"
)

// CatchUp is the raise that would bring the latest pay back to its
// inflation-adjusted baseline.
type CatchUp struct {
	Needed  bool
	Raise   decimal.Decimal
	Percent decimal.Decimal
}

// AnalyzeCatchUp derives the catch-up raise from the report statistics.
// Extracted from the console and HTML formatters for testability.
func AnalyzeCatchUp(report *domain.SalaryReport) CatchUp {
	raise, pct := calculation.InflationCatchUp(report.Statistics)
	return CatchUp{Needed: raise.IsPositive(), Raise: raise, Percent: pct}
}

func yearList(years []domain.YearDelta) string {
	parts := make([]string, len(years))
	for i, y := range years {
		parts[i] = intToString(y.Year)
	}
	return strings.Join(parts, ", ")
}

func pluralYears(n int) string {
	if n == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", n)
}

// DescribeInsight renders an insight as one line of text.
func DescribeInsight(in domain.Insight) string {
	switch in.Kind {
	case domain.InsightLargestRaise:
		return fmt.Sprintf("Largest raise: %s in %d (%s)", FormatSignedCurrency(in.Amount), in.Year, FormatPercentage(in.Percent))
	case domain.InsightPurchasingPowerGain:
		return fmt.Sprintf("Pay beat inflation in %s: %s (total %s)", pluralYears(len(in.Years)), yearList(in.Years), FormatSignedCurrency(in.Amount))
	case domain.InsightPurchasingPowerLoss:
		return fmt.Sprintf("Pay fell behind inflation in %s: %s (total %s)", pluralYears(len(in.Years)), yearList(in.Years), FormatSignedCurrency(in.Amount))
	case domain.InsightReferenceWins:
		return fmt.Sprintf("Above the reference in %s: %s", pluralYears(len(in.Years)), yearList(in.Years))
	case domain.InsightReferenceLosses:
		return fmt.Sprintf("Below the reference in %s: %s", pluralYears(len(in.Years)), yearList(in.Years))
	case domain.InsightInflationBeatingStreak:
		return fmt.Sprintf("Longest run keeping pace with inflation: %s (%d-%d)", pluralYears(in.Length), in.StartYear, in.EndYear)
	}
	return string(in.Kind)
}
