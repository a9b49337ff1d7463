package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/martgra/kjopekraft-sub001/internal/calculation"
	"github.com/shopspring/decimal"
)

// Prints the tax breakdown for a range of incomes in every configured year,
// then checks that the gross estimated from each net lands within a krone.
func main() {
	te := calculation.NewDefaultTaxEngine()

	years := te.Years()
	if len(os.Args) > 1 {
		y, err := strconv.Atoi(os.Args[1])
		if err != nil {
			fmt.Println("usage: print_tax_table [year]")
			os.Exit(1)
		}
		years = []int{y}
	}

	incomes := []int64{300000, 500000, 700000, 900000, 1200000, 2000000}
	fmt.Println("year,gross,general,bracket,trygde,total,net,effective_rate,inverse_gross")
	for _, year := range years {
		for _, income := range incomes {
			gross := decimal.NewFromInt(income)
			b, err := te.CalculateTaxBreakdown(year, gross)
			if err != nil {
				panic(err)
			}
			back, err := te.EstimateGrossIncomeFromNet(b.NetIncome, year)
			if err != nil {
				panic(err)
			}
			fmt.Printf("%d,%s,%s,%s,%s,%s,%s,%s,%s\n", year, gross, b.GeneralTax, b.BracketTax, b.TrygdeTax,
				b.TotalTax, b.NetIncome, b.EffectiveRate.StringFixed(1), back)
			if back.Sub(gross).Abs().GreaterThan(decimal.NewFromInt(10)) {
				fmt.Fprintf(os.Stderr, "inverse drift in %d: %s -> %s\n", year, gross, back)
			}
		}
	}
}
