package main

import (
	"fmt"
	"os"

	"github.com/martgra/kjopekraft-sub001/internal/calculation"
	"github.com/martgra/kjopekraft-sub001/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_series <profile-file>")
		return
	}
	f := os.Args[1]
	p := config.NewInputParser()
	profile, err := p.LoadFromFile(f)
	if err != nil {
		panic(err)
	}
	engine := calculation.NewCalculationEngineWithConfig(profile.TaxYears)
	report, err := engine.Evaluate(profile)
	if err != nil {
		panic(err)
	}
	if len(report.Rows) == 0 {
		fmt.Println("no series")
		return
	}

	fmt.Printf("base year %d, %d-%d\n", report.BaseYear, report.YearRange.MinYear, report.YearRange.MaxYear)
	fmt.Println("year,actual,adjusted,rate,interpolated,yoy,pp_delta,reference_gap")
	for i, row := range report.Rows {
		point := report.Series[i]
		refGap := ""
		if row.Reference != nil {
			refGap = row.Reference.Gap.String()
		}
		fmt.Printf("%d,%s,%s,%s,%t,%s,%s,%s\n", row.Year, point.ActualPay, point.InflationAdjustedPay,
			point.InflationRate, point.IsInterpolated, row.YoYAbsoluteChange, row.PurchasingPowerDelta, refGap)
	}
	for _, in := range report.Insights {
		fmt.Printf("insight %s\n", in.Kind)
	}
}
