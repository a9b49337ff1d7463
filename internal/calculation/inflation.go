package calculation

import (
	"github.com/martgra/kjopekraft-sub001/internal/domain"
	money "github.com/martgra/kjopekraft-sub001/pkg/decimal"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// GetInflationRate returns the recorded rate for year, or zero when the series has no entry.
// When a year appears more than once the first entry wins.
func GetInflationRate(year int, inflation []domain.InflationDataPoint) decimal.Decimal {
	for _, p := range inflation {
		if p.Year == year {
			return p.Inflation
		}
	}
	return decimal.Zero
}

func inflationRates(inflation []domain.InflationDataPoint) map[int]decimal.Decimal {
	rates := make(map[int]decimal.Decimal, len(inflation))
	for _, p := range inflation {
		if _, seen := rates[p.Year]; !seen {
			rates[p.Year] = p.Inflation
		}
	}
	return rates
}

// BuildInflationIndexRange builds a cumulative price index with index[baseYear] = 1.
//
// Walking forward, year y multiplies by (1 + rate[y]/100). Walking backward,
// year y divides by (1 + rate[y+1]/100). Missing rates count as 0%.
// The bounds may be given in either order. The returned map always covers
// baseYear, so a base outside [startYear, endYear] widens the range.
func BuildInflationIndexRange(inflation []domain.InflationDataPoint, baseYear, startYear, endYear int) map[int]decimal.Decimal {
	if startYear > endYear {
		startYear, endYear = endYear, startYear
	}
	if baseYear < startYear {
		startYear = baseYear
	}
	if baseYear > endYear {
		endYear = baseYear
	}

	rates := inflationRates(inflation)
	index := make(map[int]decimal.Decimal, endYear-startYear+1)
	index[baseYear] = one

	current := one
	for y := baseYear + 1; y <= endYear; y++ {
		current = current.Mul(money.RateFactor(rates[y]))
		index[y] = current
	}

	current = one
	for y := baseYear - 1; y >= startYear; y-- {
		factor := money.RateFactor(rates[y+1])
		// a -100% rate has no inverse; hold the index flat
		if !factor.IsZero() {
			current = current.Div(factor)
		}
		index[y] = current
	}

	return index
}

// BuildInflationIndex builds an index over every year in the series plus baseYear.
func BuildInflationIndex(inflation []domain.InflationDataPoint, baseYear int) map[int]decimal.Decimal {
	start, end := baseYear, baseYear
	for _, p := range inflation {
		if p.Year < start {
			start = p.Year
		}
		if p.Year > end {
			end = p.Year
		}
	}
	return BuildInflationIndexRange(inflation, baseYear, start, end)
}

// AdjustForInflation moves value from fromYear prices to toYear prices, rounded to whole kroner.
func AdjustForInflation(value decimal.Decimal, fromYear, toYear int, inflation []domain.InflationDataPoint) decimal.Decimal {
	if fromYear == toYear {
		return value
	}
	index := BuildInflationIndexRange(inflation, fromYear, fromYear, toYear)
	return money.RoundKroner(value.Mul(index[toYear]))
}
