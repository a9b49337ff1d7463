package calculation

import (
	"fmt"
	"testing"

	"github.com/martgra/kjopekraft-sub001/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func assertDecimal(t *testing.T, want string, got decimal.Decimal, context ...interface{}) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(want)), "%s want %s, got %s", fmt.Sprint(context...), want, got.String())
}

func inflationSeries(pairs map[int]float64) []domain.InflationDataPoint {
	var out []domain.InflationDataPoint
	for year := 1990; year <= 2100; year++ {
		if rate, ok := pairs[year]; ok {
			out = append(out, domain.InflationDataPoint{Year: year, Inflation: decimal.NewFromFloat(rate)})
		}
	}
	return out
}

func payPoint(id string, year int, pay int64, reason domain.PayReason) domain.PayPoint {
	return domain.PayPoint{ID: id, Year: year, Pay: decimal.NewFromInt(pay), Reason: reason}
}
