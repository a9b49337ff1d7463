package output

import (
	"github.com/goccy/go-json"

	"github.com/martgra/kjopekraft-sub001/internal/domain"
)

// JSONFormatter serializes the salary report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.SalaryReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
