package output

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/martgra/kjopekraft-sub001/internal/domain"
)

// ConsoleFormatter renders the report as a plain text summary, table and insight list.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.SalaryReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "SALARY AND PURCHASING POWER REPORT")
	fmt.Fprintln(&buf, "==================================")
	mode := "gross"
	if report.NetMode {
		mode = "net (after tax)"
	}
	fmt.Fprintf(&buf, "Figures: %s\n", mode)
	fmt.Fprintf(&buf, "Years: %d-%d, inflation baseline %d\n", report.YearRange.MinYear, report.YearRange.MaxYear, report.BaseYear)
	fmt.Fprintln(&buf)

	writeSummary(&buf, report)

	if len(report.Rows) > 0 {
		fmt.Fprintln(&buf, "YEAR OVER YEAR")
		fmt.Fprintln(&buf, strings.Repeat("-", 14))
		if err := writeTable(&buf, report.Rows); err != nil {
			return nil, err
		}
		fmt.Fprintln(&buf, "* interpolated between pay points")
		fmt.Fprintln(&buf)
	}

	if len(report.Insights) > 0 {
		fmt.Fprintln(&buf, "INSIGHTS")
		fmt.Fprintln(&buf, strings.Repeat("-", 8))
		for _, in := range report.Insights {
			fmt.Fprintf(&buf, "• %s\n", DescribeInsight(in))
		}
	}
	return buf.Bytes(), nil
}

func writeSummary(buf *bytes.Buffer, report *domain.SalaryReport) {
	stats := report.Statistics
	fmt.Fprintln(buf, "SUMMARY (gross)")
	fmt.Fprintln(buf, strings.Repeat("-", 15))
	if !stats.HasData {
		fmt.Fprintln(buf, "No salary data.")
		fmt.Fprintln(buf)
		return
	}
	fmt.Fprintf(buf, "Starting pay (%d):       %s\n", stats.StartingYear, FormatCurrency(stats.StartingPay))
	fmt.Fprintf(buf, "Latest pay (%d):         %s\n", stats.LatestYear, FormatCurrency(stats.LatestPay))
	fmt.Fprintf(buf, "Inflation-adjusted pay:   %s\n", FormatCurrency(stats.InflationAdjustedPay))
	fmt.Fprintf(buf, "Gap to inflation:         %s\n", FormatPercentage(stats.GapPercent))
	if cu := AnalyzeCatchUp(report); cu.Needed {
		fmt.Fprintf(buf, "Raise needed to keep up:  %s (%s)\n", FormatCurrency(cu.Raise), FormatPercentage(cu.Percent))
	}
	fmt.Fprintln(buf)
}

func writeTable(buf *bytes.Buffer, rows []domain.SalaryTableRow) error {
	tw := tabwriter.NewWriter(buf, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Year\tSalary\tAdjusted\tInflation\tChange\tChange %\tPurchasing power\tCumulative %\tReference gap\t")
	for _, r := range rows {
		year := intToString(r.Year)
		if r.IsInterpolated {
			year += "*"
		}
		refGap := "-"
		if r.Reference != nil {
			refGap = FormatSignedCurrency(r.Reference.Gap)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			year,
			FormatCurrency(r.Salary),
			FormatCurrency(r.InflationAdjustedPay),
			FormatPercentage(r.InflationRate),
			FormatSignedCurrency(r.YoYAbsoluteChange),
			FormatPercentage(r.YoYPercentChange),
			FormatSignedCurrency(r.PurchasingPowerDelta),
			FormatPercentage(r.CumulativePercent),
			refGap,
		)
	}
	return tw.Flush()
}
