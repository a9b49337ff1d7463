package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/martgra/kjopekraft-sub001/internal/calculation"
	"github.com/martgra/kjopekraft-sub001/internal/domain"
	"github.com/martgra/kjopekraft-sub001/internal/output"
)

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func taxCmd(opts *options) *cobra.Command {
	var (
		year   int
		gross  string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "tax",
		Short: "Break down Norwegian income tax for a gross income",
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount("gross", gross)
			if err != nil {
				return err
			}
			engine, err := opts.taxEngine(cmd)
			if err != nil {
				return err
			}
			breakdown, err := engine.CalculateTaxBreakdown(yearOrCurrent(year), amount)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), breakdown)
			}
			printBreakdown(cmd.OutOrStdout(), breakdown)
			return nil
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", 0, "Tax year (default: current year)")
	cmd.Flags().StringVarP(&gross, "gross", "g", "", "Gross annual income in kroner")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the breakdown as JSON")
	_ = cmd.MarkFlagRequired("gross")
	return cmd
}

func printBreakdown(w io.Writer, b domain.TaxBreakdown) {
	fmt.Fprintf(w, "TAX %d\n", b.Year)
	fmt.Fprintf(w, "Gross income:        %s\n", output.FormatCurrency(b.GrossIncome))
	fmt.Fprintf(w, "Minstefradrag:       %s\n", output.FormatCurrency(b.Minstefradrag))
	fmt.Fprintf(w, "Ordinary income:     %s\n", output.FormatCurrency(b.OrdinaryIncome))
	fmt.Fprintf(w, "Personfradrag:       %s\n", output.FormatCurrency(b.Personfradrag))
	fmt.Fprintf(w, "General tax:         %s\n", output.FormatCurrency(b.GeneralTax))
	for _, br := range b.Brackets {
		fmt.Fprintf(w, "  bracket %s @ %s%%:  %s\n", output.FormatCurrency(br.Threshold), br.Rate.Mul(decimal.NewFromInt(100)).String(), output.FormatCurrency(br.Tax))
	}
	fmt.Fprintf(w, "Bracket tax:         %s\n", output.FormatCurrency(b.BracketTax))
	fmt.Fprintf(w, "Trygdeavgift:        %s\n", output.FormatCurrency(b.TrygdeTax))
	fmt.Fprintf(w, "Total tax:           %s (%s)\n", output.FormatCurrency(b.TotalTax), output.FormatPercentage(b.EffectiveRate))
	fmt.Fprintf(w, "Net income:          %s\n", output.FormatCurrency(b.NetIncome))
}

func grossCmd(opts *options) *cobra.Command {
	var (
		year int
		net  string
	)

	cmd := &cobra.Command{
		Use:   "gross",
		Short: "Estimate the gross income needed for a net income",
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := parseAmount("net", net)
			if err != nil {
				return err
			}
			engine, err := opts.taxEngine(cmd)
			if err != nil {
				return err
			}
			y := yearOrCurrent(year)
			gross, err := engine.EstimateGrossIncomeFromNet(target, y)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Gross income for %s net in %d: ~%s (within %d kr)\n",
				output.FormatCurrency(target), y, output.FormatCurrency(gross), calculation.GrossSearchTolerance)
			return nil
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", 0, "Tax year (default: current year)")
	cmd.Flags().StringVarP(&net, "net", "n", "", "Desired net annual income in kroner")
	_ = cmd.MarkFlagRequired("net")
	return cmd
}

func negotiateCmd(opts *options) *cobra.Command {
	var (
		year     int
		gross    string
		netRaise string
	)

	cmd := &cobra.Command{
		Use:   "negotiate",
		Short: "Work out the gross raise behind a desired net raise",
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := parseAmount("gross", gross)
			if err != nil {
				return err
			}
			raise, err := parseAmount("net-raise", netRaise)
			if err != nil {
				return err
			}
			engine, err := opts.taxEngine(cmd)
			if err != nil {
				return err
			}
			target, err := calculation.CalculateNegotiationTarget(engine, yearOrCurrent(year), current, raise)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Current:  %s gross, %s net\n", output.FormatCurrency(target.CurrentGross), output.FormatCurrency(target.CurrentNet))
			fmt.Fprintf(w, "Target:   %s net\n", output.FormatCurrency(target.DesiredNet))
			fmt.Fprintf(w, "Required: ~%s gross, a raise of %s (%s)\n",
				output.FormatCurrency(target.RequiredGross), output.FormatSignedCurrency(target.RequiredRaise), output.FormatPercentage(target.RequiredRaisePercent))
			return nil
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", 0, "Tax year (default: current year)")
	cmd.Flags().StringVarP(&gross, "gross", "g", "", "Current gross annual income in kroner")
	cmd.Flags().StringVar(&netRaise, "net-raise", "", "Desired increase in net annual income in kroner")
	_ = cmd.MarkFlagRequired("gross")
	_ = cmd.MarkFlagRequired("net-raise")
	return cmd
}

func adjustCmd(opts *options) *cobra.Command {
	var (
		value    string
		from, to int
	)

	cmd := &cobra.Command{
		Use:   "adjust",
		Short: "Move an amount between years using the profile's inflation data",
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount("value", value)
			if err != nil {
				return err
			}
			profile, err := opts.loadProfile()
			if err != nil {
				return err
			}
			adjusted := calculation.AdjustForInflation(amount, from, to, profile.Inflation)
			fmt.Fprintf(cmd.OutOrStdout(), "%s in %d is %s in %d\n",
				output.FormatCurrency(amount), from, output.FormatCurrency(adjusted), to)
			return nil
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "Amount in kroner")
	cmd.Flags().IntVar(&from, "from", 0, "Year the amount is expressed in")
	cmd.Flags().IntVar(&to, "to", 0, "Year to express the amount in")
	_ = cmd.MarkFlagRequired("value")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
