package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/martgra/kjopekraft-sub001/internal/calculation"
	"github.com/martgra/kjopekraft-sub001/internal/config"
	"github.com/martgra/kjopekraft-sub001/internal/domain"
	"github.com/martgra/kjopekraft-sub001/internal/output"
)

func payPointCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "paypoint",
		Aliases: []string{"pp"},
		Short:   "List and edit the pay points of a profile",
	}
	cmd.AddCommand(payPointListCmd(opts), payPointAddCmd(opts), payPointRemoveCmd(opts))
	return cmd
}

func payPointListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pay points sorted by year",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := config.NewInputParser().LoadRaw(opts.profilePath)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tYEAR\tPAY\tREASON")
			for _, p := range calculation.SortPayPoints(profile.PayPoints) {
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", p.ID, p.Year, output.FormatCurrency(p.Pay), p.Reason)
			}
			return tw.Flush()
		},
	}
}

// ValidationError carries the code of a rejected pay point
type ValidationError struct {
	Result domain.ValidationResult
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Result.ErrorCode, e.Result.ErrorMessage)
}

func payPointAddCmd(opts *options) *cobra.Command {
	var (
		id     string
		year   int
		pay    string
		reason string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a pay point, or replace the one with the same id",
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount("pay", pay)
			if err != nil {
				return err
			}
			parsedReason, err := domain.ParsePayReason(reason)
			if err != nil {
				return err
			}
			if id == "" {
				id = domain.NewPayPointID()
			}
			candidate := domain.PayPoint{ID: id, Year: year, Pay: amount, Reason: parsedReason}

			parser := config.NewInputParser()
			raw, err := parser.LoadRaw(opts.profilePath)
			if err != nil {
				return err
			}
			resolved, err := parser.LoadResolved(opts.profilePath)
			if err != nil {
				return err
			}
			slog.Debug("Validating pay point", "year", candidate.Year, "inflation_points", len(resolved.Inflation))

			if result := calculation.ValidatePayPoint(candidate, resolved.PayPoints, resolved.Inflation); !result.IsValid {
				return &ValidationError{Result: result}
			}

			raw.PayPoints = calculation.UpsertPayPoint(raw.PayPoints, candidate)
			if err := parser.SaveProfile(opts.profilePath, raw); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved pay point %s (%d, %s)\n", candidate.ID, candidate.Year, output.FormatCurrency(candidate.Pay))
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Pay point id (default: new id)")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Year of the pay point")
	cmd.Flags().StringVarP(&pay, "pay", "p", "", "Gross annual pay in kroner")
	cmd.Flags().StringVarP(&reason, "reason", "r", string(domain.ReasonAdjustment), "Reason: adjustment, promotion or newJob")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("pay")
	return cmd
}

func payPointRemoveCmd(opts *options) *cobra.Command {
	var (
		id   string
		year int
		pay  string
	)

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a pay point by id, or by year and pay",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := domain.PayPoint{ID: id, Year: year}
			if id == "" {
				if year == 0 || pay == "" {
					return errors.New("either --id or both --year and --pay are required")
				}
				amount, err := parseAmount("pay", pay)
				if err != nil {
					return err
				}
				target.Pay = amount
			}

			parser := config.NewInputParser()
			raw, err := parser.LoadRaw(opts.profilePath)
			if err != nil {
				return err
			}
			remaining, ok := calculation.RemovePayPoint(raw.PayPoints, target)
			if !ok {
				return fmt.Errorf("no matching pay point in %s", opts.profilePath)
			}
			raw.PayPoints = remaining
			if err := parser.SaveProfile(opts.profilePath, raw); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed pay point, %d left\n", len(remaining))
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Pay point id")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Year of the pay point")
	cmd.Flags().StringVarP(&pay, "pay", "p", "", "Gross annual pay in kroner")
	return cmd
}

func validateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate a salary profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := opts.loadProfile()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %d pay points, %d inflation points\n",
				opts.profilePath, len(profile.PayPoints), len(profile.Inflation))
			return nil
		},
	}
}

func initCmd(opts *options) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write an example salary profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(opts.profilePath); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", opts.profilePath)
			}
			parser := config.NewInputParser()
			if err := parser.SaveProfile(opts.profilePath, parser.CreateExampleProfile()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote example profile to %s\n", opts.profilePath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing profile")
	return cmd
}
