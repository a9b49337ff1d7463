package calculation

import (
	"testing"

	"github.com/martgra/kjopekraft-sub001/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpolateSalary(t *testing.T) {
	pay0 := decimal.NewFromInt(500000)
	pay1 := decimal.NewFromInt(600000)

	assertDecimal(t, "550000", InterpolateSalary(2021, 2020, pay0, 2022, pay1))
	assertDecimal(t, "500000", InterpolateSalary(2020, 2020, pay0, 2020, pay1), "degenerate span")
	assertDecimal(t, "525000", InterpolateSalary(2021, 2020, pay0, 2024, pay1))
}

func TestSelectBaseYear(t *testing.T) {
	tests := []struct {
		name   string
		points []domain.PayPoint
		want   int
	}{
		{
			name: "last significant change before final point",
			points: []domain.PayPoint{
				payPoint("", 2018, 400, domain.ReasonAdjustment),
				payPoint("", 2019, 450, domain.ReasonNewJob),
				payPoint("", 2020, 460, domain.ReasonAdjustment),
				payPoint("", 2021, 500, domain.ReasonPromotion),
			},
			want: 2019,
		},
		{
			name: "only adjustments fall back to earliest",
			points: []domain.PayPoint{
				payPoint("", 2018, 400, domain.ReasonAdjustment),
				payPoint("", 2019, 410, domain.ReasonAdjustment),
			},
			want: 2018,
		},
		{
			name: "significant final point alone falls back to earliest",
			points: []domain.PayPoint{
				payPoint("", 2018, 400, domain.ReasonAdjustment),
				payPoint("", 2020, 500, domain.ReasonPromotion),
			},
			want: 2018,
		},
		{
			name:   "single point",
			points: []domain.PayPoint{payPoint("", 2022, 400, domain.ReasonNewJob)},
			want:   2022,
		},
		{
			name: "promotion in the middle",
			points: []domain.PayPoint{
				payPoint("", 2015, 300, domain.ReasonNewJob),
				payPoint("", 2017, 350, domain.ReasonPromotion),
				payPoint("", 2019, 360, domain.ReasonAdjustment),
				payPoint("", 2021, 370, domain.ReasonAdjustment),
			},
			want: 2017,
		},
		{
			name: "empty",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectBaseYear(tt.points))
		})
	}
}

func doublingSeries() ([]domain.PayPoint, []domain.InflationDataPoint) {
	points := []domain.PayPoint{
		payPoint("", 2022, 200, domain.ReasonPromotion),
		payPoint("", 2020, 100, domain.ReasonNewJob),
	}
	return points, inflationSeries(map[int]float64{2020: 0, 2021: 100, 2022: 100})
}

// TestAdjustSalariesShape builds one entry per year and extrapolates flat past the last point
func TestAdjustSalariesShape(t *testing.T) {
	points, inflation := doublingSeries()

	series := AdjustSalaries(points, inflation, 2024, nil)

	require.Len(t, series, 5)
	for i, p := range series {
		assert.Equal(t, 2020+i, p.Year)
	}

	assertDecimal(t, "100", series[0].ActualPay)
	assertDecimal(t, "150", series[1].ActualPay)
	assertDecimal(t, "200", series[2].ActualPay)
	assertDecimal(t, "200", series[3].ActualPay)
	assertDecimal(t, "200", series[4].ActualPay)

	assert.False(t, series[0].IsInterpolated)
	assert.True(t, series[1].IsInterpolated)
	assert.False(t, series[2].IsInterpolated)
	assert.True(t, series[3].IsInterpolated)
	assert.True(t, series[4].IsInterpolated)

	// base year 2020, pay 100, index 1, 2, 4, 4, 4
	assertDecimal(t, "100", series[0].InflationAdjustedPay)
	assertDecimal(t, "200", series[1].InflationAdjustedPay)
	assertDecimal(t, "400", series[2].InflationAdjustedPay)
	assertDecimal(t, "400", series[4].InflationAdjustedPay)

	assertDecimal(t, "100", series[1].InflationRate)
	assert.True(t, series[3].InflationRate.IsZero(), "missing rate reads as zero")
}

func TestAdjustSalariesBaseYearOverride(t *testing.T) {
	points, inflation := doublingSeries()
	base := 2022

	series := AdjustSalaries(points, inflation, 2023, &base)

	require.Len(t, series, 4)
	assertDecimal(t, "50", series[0].InflationAdjustedPay)
	assertDecimal(t, "100", series[1].InflationAdjustedPay)
	assertDecimal(t, "200", series[2].InflationAdjustedPay)
	assertDecimal(t, "200", series[3].InflationAdjustedPay)
}

func TestAdjustSalariesCurrentYearBeforeLastPoint(t *testing.T) {
	points, inflation := doublingSeries()
	series := AdjustSalaries(points, inflation, 2019, nil)
	require.Len(t, series, 3)
	assert.Equal(t, 2022, series[2].Year)
}

func TestAdjustSalariesDuplicateYearsKeepLast(t *testing.T) {
	points := []domain.PayPoint{
		payPoint("a", 2020, 100, domain.ReasonNewJob),
		payPoint("b", 2020, 120, domain.ReasonAdjustment),
		payPoint("c", 2021, 130, domain.ReasonAdjustment),
	}
	inflation := inflationSeries(map[int]float64{2021: 10})

	series := AdjustSalaries(points, inflation, 2021, nil)

	require.Len(t, series, 2)
	assertDecimal(t, "120", series[0].ActualPay)
	assertDecimal(t, "132", series[1].InflationAdjustedPay)
}

func TestAdjustSalariesEmptyInputs(t *testing.T) {
	points, inflation := doublingSeries()

	empty := AdjustSalaries(nil, inflation, 2024, nil)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	assert.Empty(t, AdjustSalaries(points, nil, 2024, nil))
}

func TestAdjustSalariesDoesNotMutateInput(t *testing.T) {
	points, inflation := doublingSeries()
	before := append([]domain.PayPoint(nil), points...)

	AdjustSalaries(points, inflation, 2024, nil)

	assert.Equal(t, before, points)
}

func TestComputeStatistics(t *testing.T) {
	points, inflation := doublingSeries()
	stats := ComputeStatistics(AdjustSalaries(points, inflation, 2024, nil))

	assert.True(t, stats.HasData)
	assertDecimal(t, "100", stats.StartingPay)
	assertDecimal(t, "200", stats.LatestPay)
	assertDecimal(t, "400", stats.InflationAdjustedPay)
	assertDecimal(t, "-50", stats.GapPercent)
	assert.Equal(t, 2020, stats.StartingYear)
	assert.Equal(t, 2024, stats.LatestYear)
}

func TestComputeStatisticsRoundsGap(t *testing.T) {
	series := []domain.SalaryDataPoint{
		{Year: 2020, ActualPay: decimal.NewFromInt(300), InflationAdjustedPay: decimal.NewFromInt(300)},
		{Year: 2021, ActualPay: decimal.NewFromInt(310), InflationAdjustedPay: decimal.NewFromInt(300)},
	}
	stats := ComputeStatistics(series)
	assertDecimal(t, "3.3", stats.GapPercent)

	// an exact negative half rounds up
	series[1].ActualPay = decimal.NewFromInt(87650)
	series[1].InflationAdjustedPay = decimal.NewFromInt(100000)
	assertDecimal(t, "-12.3", ComputeStatistics(series).GapPercent)
}

func TestComputeStatisticsEmpty(t *testing.T) {
	stats := ComputeStatistics(nil)
	assert.False(t, stats.HasData)
	assert.Equal(t, domain.SalaryStatistics{}, stats)
}

func TestCalculateYearRange(t *testing.T) {
	points, inflation := doublingSeries()
	series := AdjustSalaries(points, inflation, 2024, nil)

	assert.Equal(t, domain.YearRange{MinYear: 2020, MaxYear: 2024}, CalculateYearRange(series, 2030))
	assert.Equal(t, domain.YearRange{MinYear: 2019, MaxYear: 2024}, CalculateYearRange(nil, 2024))
}
