package calculation

import (
	"testing"

	"github.com/martgra/kjopekraft-sub001/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateNegotiationTarget(t *testing.T) {
	engine := NewDefaultTaxEngine()

	target, err := CalculateNegotiationTarget(engine, 2024, decimal.NewFromInt(800000), decimal.NewFromInt(10000))
	require.NoError(t, err)

	assertDecimal(t, "570750", target.CurrentNet)
	assertDecimal(t, "580750", target.DesiredNet)
	assert.True(t, target.Approximate)
	assert.Equal(t, 2024, target.Year)

	// marginal net share above 800k is 0.568, so roughly 17 600 gross
	assert.InDelta(t, 17610, target.RequiredRaise.InexactFloat64(), 40)
	assert.True(t, target.RequiredGross.Equal(target.CurrentGross.Add(target.RequiredRaise)))
	assertDecimal(t, "2.2", target.RequiredRaisePercent)

	net, err := engine.CalculateNetIncome(target.RequiredGross, 2024)
	require.NoError(t, err)
	assert.InDelta(t, 580750, net.InexactFloat64(), GrossSearchTolerance)
}

func TestCalculateNegotiationTargetBelowTrygdeThreshold(t *testing.T) {
	engine := NewDefaultTaxEngine()

	target, err := CalculateNegotiationTarget(engine, 2024, decimal.NewFromInt(60000), decimal.NewFromInt(6000))
	require.NoError(t, err)

	assertDecimal(t, "66000", target.RequiredGross)
	assertDecimal(t, "6000", target.RequiredRaise)
	assertDecimal(t, "10", target.RequiredRaisePercent)
}

func TestCalculateNegotiationTargetUnknownYear(t *testing.T) {
	_, err := CalculateNegotiationTarget(NewDefaultTaxEngine(), 1999, decimal.NewFromInt(500000), decimal.NewFromInt(1000))
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInflationCatchUp(t *testing.T) {
	tests := []struct {
		name        string
		stats       domain.SalaryStatistics
		wantRaise   string
		wantPercent string
	}{
		{
			name:        "pay behind inflation",
			stats:       domain.SalaryStatistics{LatestPay: decimal.NewFromInt(200), InflationAdjustedPay: decimal.NewFromInt(400), HasData: true},
			wantRaise:   "200",
			wantPercent: "100",
		},
		{
			name:        "pay keeps pace",
			stats:       domain.SalaryStatistics{LatestPay: decimal.NewFromInt(400), InflationAdjustedPay: decimal.NewFromInt(380), HasData: true},
			wantRaise:   "0",
			wantPercent: "0",
		},
		{
			name:        "no data",
			stats:       domain.SalaryStatistics{},
			wantRaise:   "0",
			wantPercent: "0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raise, percent := InflationCatchUp(tt.stats)
			assertDecimal(t, tt.wantRaise, raise)
			assertDecimal(t, tt.wantPercent, percent)
		})
	}
}
