package output

import (
	"bytes"
	"encoding/csv"

	"github.com/martgra/kjopekraft-sub001/internal/domain"
	"github.com/shopspring/decimal"
)

// CSVTableFormatter writes the year-over-year table, one row per year.
// Reference columns are empty for years without a reference value.
type CSVTableFormatter struct{}

func (c CSVTableFormatter) Name() string { return "csv" }

func (c CSVTableFormatter) Format(report *domain.SalaryReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "Salary", "InflationAdjustedPay", "InflationRate", "Interpolated", "YoYChange", "YoYPercent", "PurchasingPowerDelta", "CumulativeChange", "CumulativePercent", "Reference", "ReferenceGap", "ReferenceGapPercent"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range report.Rows {
		ref, gap, gapPct := "", "", ""
		if r.Reference != nil {
			ref = amount(r.Reference.Value)
			gap = amount(r.Reference.Gap)
			gapPct = r.Reference.GapPercent.StringFixed(1)
		}
		row := []string{
			intToString(r.Year),
			amount(r.Salary),
			amount(r.InflationAdjustedPay),
			r.InflationRate.StringFixed(1),
			boolToString(r.IsInterpolated),
			amount(r.YoYAbsoluteChange),
			r.YoYPercentChange.StringFixed(1),
			amount(r.PurchasingPowerDelta),
			amount(r.CumulativeChange),
			r.CumulativePercent.StringFixed(1),
			ref,
			gap,
			gapPct,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func amount(d decimal.Decimal) string { return d.StringFixed(2) }
