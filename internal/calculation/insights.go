package calculation

import (
	"github.com/martgra/kjopekraft-sub001/internal/domain"
	money "github.com/martgra/kjopekraft-sub001/pkg/decimal"
	"github.com/shopspring/decimal"
)

// BuildSalaryInsights scans table rows for notable events. Output order is
// fixed: largest raise, purchasing power gains, losses, reference wins,
// reference losses, inflation-beating streak. Kinds with no qualifying
// years are omitted. Empty rows yield an empty slice.
func BuildSalaryInsights(rows []domain.SalaryTableRow) []domain.Insight {
	insights := []domain.Insight{}
	if len(rows) == 0 {
		return insights
	}

	if raise, ok := largestRaise(rows); ok {
		insights = append(insights, raise)
	}

	var gains, losses, wins, behind []domain.YearDelta
	for _, row := range rows {
		expected := row.Salary.Sub(row.PurchasingPowerDelta)
		delta := domain.YearDelta{
			Year:    row.Year,
			Amount:  row.PurchasingPowerDelta,
			Percent: money.PercentOf(row.PurchasingPowerDelta, expected),
		}
		switch {
		case row.PurchasingPowerDelta.IsPositive():
			gains = append(gains, delta)
		case row.PurchasingPowerDelta.IsNegative():
			losses = append(losses, delta)
		}

		if row.Reference == nil {
			continue
		}
		gap := domain.YearDelta{Year: row.Year, Amount: row.Reference.Gap, Percent: row.Reference.GapPercent}
		switch {
		case row.Reference.Gap.IsPositive():
			wins = append(wins, gap)
		case row.Reference.Gap.IsNegative():
			behind = append(behind, gap)
		}
	}

	insights = appendYearsInsight(insights, domain.InsightPurchasingPowerGain, gains)
	insights = appendYearsInsight(insights, domain.InsightPurchasingPowerLoss, losses)
	insights = appendYearsInsight(insights, domain.InsightReferenceWins, wins)
	insights = appendYearsInsight(insights, domain.InsightReferenceLosses, behind)

	if streak, ok := longestInflationBeatingStreak(rows); ok {
		insights = append(insights, streak)
	}
	return insights
}

// largestRaise picks the biggest positive year-over-year change; ties keep the earliest year.
func largestRaise(rows []domain.SalaryTableRow) (domain.Insight, bool) {
	best := -1
	for i := 1; i < len(rows); i++ {
		if !rows[i].YoYAbsoluteChange.IsPositive() {
			continue
		}
		if best < 0 || rows[i].YoYAbsoluteChange.GreaterThan(rows[best].YoYAbsoluteChange) {
			best = i
		}
	}
	if best < 0 {
		return domain.Insight{}, false
	}
	return domain.Insight{
		Kind:    domain.InsightLargestRaise,
		Year:    rows[best].Year,
		Amount:  rows[best].YoYAbsoluteChange,
		Percent: rows[best].YoYPercentChange,
	}, true
}

func appendYearsInsight(insights []domain.Insight, kind domain.InsightKind, years []domain.YearDelta) []domain.Insight {
	if len(years) == 0 {
		return insights
	}
	total := decimal.Zero
	for _, y := range years {
		total = total.Add(y.Amount)
	}
	return append(insights, domain.Insight{Kind: kind, Amount: total, Years: years})
}

// longestInflationBeatingStreak finds the longest run of consecutive rows with a
// non-negative purchasing power delta. Ties keep the earliest run.
func longestInflationBeatingStreak(rows []domain.SalaryTableRow) (domain.Insight, bool) {
	bestStart, bestLen := 0, 0
	runStart, runLen := 0, 0
	for i, row := range rows {
		if row.PurchasingPowerDelta.IsNegative() || (i > 0 && row.Year != rows[i-1].Year+1) {
			runLen = 0
		}
		if row.PurchasingPowerDelta.IsNegative() {
			continue
		}
		if runLen == 0 {
			runStart = i
		}
		runLen++
		if runLen > bestLen {
			bestStart, bestLen = runStart, runLen
		}
	}
	if bestLen == 0 {
		return domain.Insight{}, false
	}
	return domain.Insight{
		Kind:      domain.InsightInflationBeatingStreak,
		StartYear: rows[bestStart].Year,
		EndYear:   rows[bestStart+bestLen-1].Year,
		Length:    bestLen,
	}, true
}
