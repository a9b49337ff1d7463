package output

import (
	"bytes"
	"encoding/csv"

	"github.com/martgra/kjopekraft-sub001/internal/domain"
)

// CSVSeriesExporter provides the raw yearly salary series, always gross.
type CSVSeriesExporter struct{}

func (c CSVSeriesExporter) Name() string { return "series-csv" }

func (c CSVSeriesExporter) Format(report *domain.SalaryReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "ActualPay", "InflationAdjustedPay", "InflationRate", "IsInterpolated"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, p := range report.Series {
		row := []string{
			intToString(p.Year),
			amount(p.ActualPay),
			amount(p.InflationAdjustedPay),
			p.InflationRate.StringFixed(1),
			boolToString(p.IsInterpolated),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
