package output

import (
	"testing"

	"github.com/martgra/kjopekraft-sub001/internal/domain"
	"github.com/shopspring/decimal"
)

func TestAnalyzeCatchUp(t *testing.T) {
	cu := AnalyzeCatchUp(buildTestReport())
	if !cu.Needed || !cu.Raise.Equal(decimal.NewFromInt(10000)) {
		t.Fatalf("expected a 10000 kr catch-up raise, got %+v", cu)
	}

	cu = AnalyzeCatchUp(&domain.SalaryReport{})
	if cu.Needed {
		t.Fatalf("empty report should not need a raise")
	}
}

func TestDescribeInsight(t *testing.T) {
	years := []domain.YearDelta{{Year: 2021}, {Year: 2023}}
	cases := []struct {
		insight domain.Insight
		want    string
	}{
		{domain.Insight{Kind: domain.InsightPurchasingPowerGain, Years: years, Amount: decimal.NewFromInt(900)}, "Pay beat inflation in 2 years: 2021, 2023 (total +900 kr)"},
		{domain.Insight{Kind: domain.InsightReferenceWins, Years: years[:1]}, "Above the reference in 1 year: 2021"},
		{domain.Insight{Kind: domain.InsightReferenceLosses, Years: years}, "Below the reference in 2 years: 2021, 2023"},
		{domain.Insight{Kind: domain.InsightInflationBeatingStreak, StartYear: 2019, EndYear: 2022, Length: 4}, "Longest run keeping pace with inflation: 4 years (2019-2022)"},
	}
	for _, c := range cases {
		if got := DescribeInsight(c.insight); got != c.want {
			t.Errorf("DescribeInsight(%s) = %q, want %q", c.insight.Kind, got, c.want)
		}
	}
}
