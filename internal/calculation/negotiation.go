package calculation

import (
	"github.com/martgra/kjopekraft-sub001/internal/domain"
	money "github.com/martgra/kjopekraft-sub001/pkg/decimal"
	"github.com/shopspring/decimal"
)

// CalculateNegotiationTarget works out the gross salary that lifts net income
// by desiredNetRaise in the given tax year. RequiredGross is estimated by
// search and the result is always marked Approximate.
func CalculateNegotiationTarget(te *TaxEngine, year int, currentGross, desiredNetRaise decimal.Decimal) (domain.NegotiationTarget, error) {
	currentNet, err := te.CalculateNetIncome(currentGross, year)
	if err != nil {
		return domain.NegotiationTarget{}, err
	}
	desiredNet := currentNet.Add(desiredNetRaise)
	requiredGross, err := te.EstimateGrossIncomeFromNet(desiredNet, year)
	if err != nil {
		return domain.NegotiationTarget{}, err
	}
	raise := requiredGross.Sub(currentGross)
	return domain.NegotiationTarget{
		Year:                 year,
		CurrentGross:         currentGross,
		CurrentNet:           currentNet,
		DesiredNet:           desiredNet,
		RequiredGross:        requiredGross,
		RequiredRaise:        raise,
		RequiredRaisePercent: money.PercentOf(raise, currentGross),
		Approximate:          true,
	}, nil
}

// InflationCatchUp returns the gross raise needed for the latest pay to match
// its inflation-adjusted baseline, and that raise as a percent of latest pay.
// Both are zero when pay already keeps pace or stats has no data.
func InflationCatchUp(stats domain.SalaryStatistics) (decimal.Decimal, decimal.Decimal) {
	if !stats.HasData {
		return decimal.Zero, decimal.Zero
	}
	shortfall := stats.InflationAdjustedPay.Sub(stats.LatestPay)
	if !shortfall.IsPositive() {
		return decimal.Zero, decimal.Zero
	}
	return money.RoundKroner(shortfall), money.PercentOf(shortfall, stats.LatestPay)
}
