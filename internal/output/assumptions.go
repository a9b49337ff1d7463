package output

import (
	"fmt"

	"github.com/martgra/kjopekraft-sub001/internal/domain"
)

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Pay between known pay points is interpolated linearly and held flat after the last one",
	"Purchasing power compares each salary with the previous salary grown by the current inflation rate",
	"Years without inflation data are treated as 0% inflation",
}

// GenerateAssumptions creates the assumptions list for a specific report
func GenerateAssumptions(report *domain.SalaryReport) []string {
	out := []string{fmt.Sprintf("Inflation-adjusted pay is indexed from %d", report.BaseYear)}
	out = append(out, DefaultAssumptions...)
	if report.NetMode {
		out = append(out,
			"Net figures apply the Norwegian tax rules of each year to gross pay",
			"Tax components are rounded to the nearest 10 kr before they are summed",
		)
	}
	return out
}
