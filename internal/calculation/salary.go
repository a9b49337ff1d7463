package calculation

import (
	"sort"

	"github.com/martgra/kjopekraft-sub001/internal/domain"
	money "github.com/martgra/kjopekraft-sub001/pkg/decimal"
	"github.com/shopspring/decimal"
)

// defaultChartSpan is how many years before currentYear an empty series spans
const defaultChartSpan = 5

// InterpolateSalary linearly interpolates pay for targetYear between (y0, pay0) and (y1, pay1).
// When both years are equal pay0 is returned.
func InterpolateSalary(targetYear, y0 int, pay0 decimal.Decimal, y1 int, pay1 decimal.Decimal) decimal.Decimal {
	if y0 == y1 {
		return pay0
	}
	fraction := decimal.NewFromInt(int64(targetYear - y0)).Div(decimal.NewFromInt(int64(y1 - y0)))
	return pay0.Add(pay1.Sub(pay0).Mul(fraction))
}

// SelectBaseYear picks the inflation baseline: the year of the last newJob or
// promotion before the final pay point, otherwise the earliest pay point.
// points must be sorted by year. Returns 0 for an empty slice.
func SelectBaseYear(points []domain.PayPoint) int {
	if len(points) == 0 {
		return 0
	}
	for i := len(points) - 2; i >= 0; i-- {
		if points[i].Reason.IsSignificant() {
			return points[i].Year
		}
	}
	return points[0].Year
}

// payAt returns the pay for year from sorted, year-unique points, and whether it was an exact match.
func payAt(points []domain.PayPoint, year int) (decimal.Decimal, bool) {
	first, last := points[0], points[len(points)-1]
	if year <= first.Year {
		return first.Pay, year == first.Year
	}
	if year >= last.Year {
		return last.Pay, year == last.Year
	}
	i := sort.Search(len(points), func(i int) bool { return points[i].Year >= year })
	if points[i].Year == year {
		return points[i].Pay, true
	}
	lower, upper := points[i-1], points[i]
	return InterpolateSalary(year, lower.Year, lower.Pay, upper.Year, upper.Pay), false
}

// uniqueByYear keeps the last point recorded for each year. points must be sorted.
func uniqueByYear(points []domain.PayPoint) []domain.PayPoint {
	out := make([]domain.PayPoint, 0, len(points))
	for _, p := range points {
		if n := len(out); n > 0 && out[n-1].Year == p.Year {
			out[n-1] = p
			continue
		}
		out = append(out, p)
	}
	return out
}

// AdjustSalaries expands sparse pay points into one SalaryDataPoint per year,
// from the first pay point to max(last pay point, currentYear).
//
// Pay between points is interpolated and held flat outside them. The
// inflation-adjusted pay projects the base year's pay with the price index
// alone. baseYearOverride replaces SelectBaseYear when non-nil.
// Empty pay points or an empty inflation series yield an empty slice.
func AdjustSalaries(payPoints []domain.PayPoint, inflation []domain.InflationDataPoint, currentYear int, baseYearOverride *int) []domain.SalaryDataPoint {
	if len(payPoints) == 0 || len(inflation) == 0 {
		return []domain.SalaryDataPoint{}
	}

	points := uniqueByYear(SortPayPoints(payPoints))
	baseYear := SelectBaseYear(points)
	if baseYearOverride != nil {
		baseYear = *baseYearOverride
	}

	startYear := points[0].Year
	endYear := points[len(points)-1].Year
	if currentYear > endYear {
		endYear = currentYear
	}

	basePay, _ := payAt(points, baseYear)
	index := BuildInflationIndexRange(inflation, baseYear, startYear, endYear)
	rates := inflationRates(inflation)

	series := make([]domain.SalaryDataPoint, 0, endYear-startYear+1)
	for year := startYear; year <= endYear; year++ {
		pay, exact := payAt(points, year)
		series = append(series, domain.SalaryDataPoint{
			Year:                 year,
			ActualPay:            pay,
			InflationAdjustedPay: money.RoundKroner(basePay.Mul(index[year])),
			InflationRate:        rates[year],
			IsInterpolated:       !exact,
		})
	}
	return series
}

// ComputeStatistics summarises a series. An empty series returns HasData == false.
func ComputeStatistics(series []domain.SalaryDataPoint) domain.SalaryStatistics {
	if len(series) == 0 {
		return domain.SalaryStatistics{}
	}
	first, last := series[0], series[len(series)-1]
	return domain.SalaryStatistics{
		StartingPay:          first.ActualPay,
		LatestPay:            last.ActualPay,
		InflationAdjustedPay: last.InflationAdjustedPay,
		GapPercent:           money.PercentOf(last.ActualPay.Sub(last.InflationAdjustedPay), last.InflationAdjustedPay),
		StartingYear:         first.Year,
		LatestYear:           last.Year,
		HasData:              true,
	}
}

// CalculateYearRange returns the span of years covered by series, or the
// five years leading up to currentYear when series is empty.
func CalculateYearRange(series []domain.SalaryDataPoint, currentYear int) domain.YearRange {
	if len(series) == 0 {
		return domain.YearRange{MinYear: currentYear - defaultChartSpan, MaxYear: currentYear}
	}
	r := domain.YearRange{MinYear: series[0].Year, MaxYear: series[0].Year}
	for _, p := range series[1:] {
		if p.Year < r.MinYear {
			r.MinYear = p.Year
		}
		if p.Year > r.MaxYear {
			r.MaxYear = p.Year
		}
	}
	return r
}
