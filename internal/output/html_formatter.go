package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/martgra/kjopekraft-sub001/internal/domain"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":     FormatCurrency,
	"signed":   FormatSignedCurrency,
	"pct":      FormatPercentage,
	"describe": DescribeInsight,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.SalaryReport) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.SalaryReport
		CatchUp     CatchUp
		Assumptions []string
	}{report, AnalyzeCatchUp(report), GenerateAssumptions(report)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
