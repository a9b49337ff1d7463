package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/martgra/kjopekraft-sub001/internal/calculation"
	"github.com/martgra/kjopekraft-sub001/internal/output"
)

func reportCmd(opts *options) *cobra.Command {
	var (
		format      string
		net         bool
		outputDir   string
		currentYear int
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the salary history against inflation",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := opts.loadProfile()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("net") {
				profile.NetMode = net
			}
			if currentYear != 0 {
				profile.CurrentYear = currentYear
			}

			engine := calculation.NewCalculationEngineWithConfig(profile.TaxYears)
			engine.SetLogger(opts.calcLogger())
			report, err := engine.Evaluate(profile)
			if err != nil {
				return err
			}

			if outputDir != "" {
				paths, err := output.SaveReport(report, format, outputDir)
				if err != nil {
					return err
				}
				for _, p := range paths {
					slog.Info("Report written", "path", p)
					fmt.Fprintln(cmd.OutOrStdout(), p)
				}
				return nil
			}
			return output.GenerateReport(cmd.OutOrStdout(), report, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "console", fmt.Sprintf("Output format (%v, or all with --output-dir)", output.AvailableFormatterNames()))
	cmd.Flags().BoolVar(&net, "net", false, "Show net income after tax instead of gross")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Write timestamped report files to this directory")
	cmd.Flags().IntVar(&currentYear, "current-year", 0, "Extend the series to this year (default: profile or clock)")
	return cmd
}
