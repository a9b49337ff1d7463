package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBuildInflationIndexForward(t *testing.T) {
	rates := inflationSeries(map[int]float64{2020: 2, 2021: 5, 2022: 10})

	index := BuildInflationIndex(rates, 2020)

	assert.Len(t, index, 3)
	assertDecimal(t, "1", index[2020])
	assertDecimal(t, "1.05", index[2021])
	assertDecimal(t, "1.155", index[2022])
}

func TestBuildInflationIndexBackward(t *testing.T) {
	rates := inflationSeries(map[int]float64{2020: 2, 2021: 5, 2022: 10})

	index := BuildInflationIndexRange(rates, 2022, 2020, 2022)

	assertDecimal(t, "1", index[2022])
	assert.InDelta(t, 1/1.1, index[2021].InexactFloat64(), 1e-12)
	assert.InDelta(t, 1/1.1/1.05, index[2020].InexactFloat64(), 1e-12)
}

func TestBuildInflationIndexRangeNormalisesBounds(t *testing.T) {
	rates := inflationSeries(map[int]float64{2021: 5, 2022: 10})

	a := BuildInflationIndexRange(rates, 2020, 2020, 2022)
	b := BuildInflationIndexRange(rates, 2020, 2022, 2020)

	assert.Equal(t, len(a), len(b))
	for year, v := range a {
		assert.True(t, v.Equal(b[year]), "year %d", year)
	}
}

func TestBuildInflationIndexMissingYearsAreZero(t *testing.T) {
	rates := inflationSeries(map[int]float64{2020: 2, 2022: 10})

	index := BuildInflationIndexRange(rates, 2020, 2020, 2023)

	assertDecimal(t, "1", index[2021])
	assertDecimal(t, "1.1", index[2022])
	assertDecimal(t, "1.1", index[2023])
}

func TestBuildInflationIndexBaseOutsideRange(t *testing.T) {
	rates := inflationSeries(map[int]float64{2019: 10, 2020: 10})

	index := BuildInflationIndexRange(rates, 2018, 2020, 2021)

	assert.Len(t, index, 4)
	assertDecimal(t, "1", index[2018])
	assertDecimal(t, "1.21", index[2020])
}

func TestBuildInflationIndexIgnoresDuplicateYears(t *testing.T) {
	rates := inflationSeries(map[int]float64{2021: 5})
	rates = append(rates, rates[0])
	rates[1].Inflation = decimal.NewFromInt(50)

	index := BuildInflationIndexRange(rates, 2020, 2020, 2021)
	assertDecimal(t, "1.05", index[2021])
}

func TestAdjustForInflation(t *testing.T) {
	rates := inflationSeries(map[int]float64{2020: 2, 2021: 5, 2022: 10})

	assertDecimal(t, "1155", AdjustForInflation(decimal.NewFromInt(1000), 2020, 2022, rates))
	assertDecimal(t, "1000", AdjustForInflation(decimal.NewFromInt(1155), 2022, 2020, rates))
	assertDecimal(t, "1050", AdjustForInflation(decimal.NewFromInt(1000), 2020, 2021, rates))
}

// TestAdjustForInflationIdentity checks that adjusting within a year changes nothing, not even rounding
func TestAdjustForInflationIdentity(t *testing.T) {
	rates := inflationSeries(map[int]float64{2020: 2, 2021: 5, 2022: 10})

	for _, v := range []string{"0", "1", "1234.56", "-99.5", "500000"} {
		for _, y := range []int{1999, 2020, 2021, 2022, 2050} {
			value := decimal.RequireFromString(v)
			got := AdjustForInflation(value, y, y, rates)
			assert.True(t, got.Equal(value), "value %s year %d", v, y)
		}
	}
}

func TestGetInflationRate(t *testing.T) {
	rates := inflationSeries(map[int]float64{2020: 2.5})

	assertDecimal(t, "2.5", GetInflationRate(2020, rates))
	assert.True(t, GetInflationRate(2021, rates).IsZero())
	assert.True(t, GetInflationRate(2020, nil).IsZero())
}
