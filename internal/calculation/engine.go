package calculation

import (
	"fmt"

	"github.com/martgra/kjopekraft-sub001/internal/domain"
)

// CalculationEngine ties the tax engine and the salary calculator together
type CalculationEngine struct {
	TaxCalc *TaxEngine
	Logger  Logger
}

// NewCalculationEngine creates a calculation engine with the built-in tax tables
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		TaxCalc: NewDefaultTaxEngine(),
		Logger:  NopLogger{},
	}
}

// NewCalculationEngineWithConfig creates a calculation engine whose tax tables
// are the built-in ones overlaid with taxYears.
func NewCalculationEngineWithConfig(taxYears map[int]domain.TaxYearConfig) *CalculationEngine {
	return &CalculationEngine{
		TaxCalc: NewTaxEngineWithOverrides(taxYears),
		Logger:  NopLogger{},
	}
}

// SetLogger sets the logger for the engine and its tax engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	ce.Logger = orNop(l)
	ce.TaxCalc.SetLogger(l)
}

// Evaluate derives the full salary report for a profile.
//
// A profile without pay points or inflation data produces an empty report
// rather than an error. In net mode every amount passes through the tax
// engine, so a year without tax configuration fails the whole evaluation
// with ErrConfigNotFound.
func (ce *CalculationEngine) Evaluate(profile *domain.Profile) (*domain.SalaryReport, error) {
	logger := orNop(ce.Logger)

	currentYear := profile.CurrentYear
	if currentYear == 0 {
		currentYear = CurrentYear()
	}

	report := &domain.SalaryReport{NetMode: profile.NetMode}
	series := AdjustSalaries(profile.PayPoints, profile.Inflation, currentYear, profile.BaseYear)
	if len(series) == 0 {
		logger.Debugf("no salary series: %d pay points, %d inflation points", len(profile.PayPoints), len(profile.Inflation))
	}

	if profile.BaseYear != nil {
		report.BaseYear = *profile.BaseYear
	} else {
		report.BaseYear = SelectBaseYear(uniqueByYear(SortPayPoints(profile.PayPoints)))
	}
	logger.Debugf("inflation baseline year %d", report.BaseYear)

	report.Series = series
	report.YearRange = CalculateYearRange(series, currentYear)
	report.Statistics = ComputeStatistics(series)

	opts := TableOptions{Reference: profile.Reference}
	if profile.NetMode {
		opts.Transform = NetIncomeTransform(ce.TaxCalc)
	}
	rows, err := BuildSalaryTableRows(series, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build salary table: %w", err)
	}
	report.Rows = rows
	report.Insights = BuildSalaryInsights(rows)

	logger.Infof("evaluated %d years (%d-%d), %d insights", len(series), report.YearRange.MinYear, report.YearRange.MaxYear, len(report.Insights))
	return report, nil
}
