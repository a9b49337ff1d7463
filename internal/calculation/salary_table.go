package calculation

import (
	"fmt"

	"github.com/martgra/kjopekraft-sub001/internal/domain"
	money "github.com/martgra/kjopekraft-sub001/pkg/decimal"
	"github.com/shopspring/decimal"
)

// PayTransform maps a gross amount for a year onto the figure to present,
// for example net income. It is applied to salaries, inflation-adjusted pay
// and reference values alike.
type PayTransform func(year int, pay decimal.Decimal) (decimal.Decimal, error)

// NetIncomeTransform presents amounts as net income through the tax engine.
// Years without a tax configuration fail with ErrConfigNotFound.
func NetIncomeTransform(te *TaxEngine) PayTransform {
	return func(year int, pay decimal.Decimal) (decimal.Decimal, error) {
		return te.CalculateNetIncome(pay, year)
	}
}

// TableOptions tunes BuildSalaryTableRows
type TableOptions struct {
	Reference []domain.ReferenceDataPoint
	Transform PayTransform
}

func referenceValues(reference []domain.ReferenceDataPoint) map[int]decimal.Decimal {
	values := make(map[int]decimal.Decimal, len(reference))
	for _, r := range reference {
		if !r.Value.Valid {
			continue
		}
		if _, seen := values[r.Year]; !seen {
			values[r.Year] = r.Value.Decimal
		}
	}
	return values
}

// BuildSalaryTableRows derives year-over-year rows from a salary series.
//
// PurchasingPowerDelta compares each salary with the previous salary grown by
// this year's inflation. The first row has no predecessor and is compared
// with its inflation-adjusted pay instead. Cumulative figures are relative to
// the first row. Reference comparisons are attached only for years with a
// reference value. The only error source is opts.Transform.
func BuildSalaryTableRows(series []domain.SalaryDataPoint, opts TableOptions) ([]domain.SalaryTableRow, error) {
	rows := make([]domain.SalaryTableRow, 0, len(series))
	if len(series) == 0 {
		return rows, nil
	}

	transform := opts.Transform
	if transform == nil {
		transform = func(_ int, pay decimal.Decimal) (decimal.Decimal, error) { return pay, nil }
	}
	refs := referenceValues(opts.Reference)

	var first, previous decimal.Decimal
	for i, point := range series {
		salary, err := transform(point.Year, point.ActualPay)
		if err != nil {
			return nil, fmt.Errorf("salary for %d: %w", point.Year, err)
		}
		adjusted, err := transform(point.Year, point.InflationAdjustedPay)
		if err != nil {
			return nil, fmt.Errorf("inflation-adjusted pay for %d: %w", point.Year, err)
		}

		row := domain.SalaryTableRow{
			Year:                 point.Year,
			Salary:               salary,
			InflationAdjustedPay: adjusted,
			InflationRate:        point.InflationRate,
			IsInterpolated:       point.IsInterpolated,
		}

		if i == 0 {
			first = salary
			row.PurchasingPowerDelta = salary.Sub(adjusted)
		} else {
			row.YoYAbsoluteChange = salary.Sub(previous)
			row.YoYPercentChange = money.PercentOf(row.YoYAbsoluteChange, previous)
			row.PurchasingPowerDelta = salary.Sub(previous.Mul(money.RateFactor(point.InflationRate)))
			row.CumulativeChange = salary.Sub(first)
			row.CumulativePercent = money.PercentOf(row.CumulativeChange, first)
		}

		if refValue, ok := refs[point.Year]; ok {
			ref, err := transform(point.Year, refValue)
			if err != nil {
				return nil, fmt.Errorf("reference value for %d: %w", point.Year, err)
			}
			gap := salary.Sub(ref)
			row.Reference = &domain.ReferenceComparison{
				Value:      ref,
				Gap:        gap,
				GapPercent: money.PercentOf(gap, ref),
			}
		}

		rows = append(rows, row)
		previous = salary
	}
	return rows, nil
}
