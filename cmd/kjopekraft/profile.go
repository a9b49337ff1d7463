package main

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/martgra/kjopekraft-sub001/internal/calculation"
	"github.com/martgra/kjopekraft-sub001/internal/config"
	"github.com/martgra/kjopekraft-sub001/internal/domain"
)

func (o *options) loadProfile() (*domain.Profile, error) {
	slog.Debug("Loading profile", "path", o.profilePath)
	profile, err := config.NewInputParser().LoadFromFile(o.profilePath)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return profile, nil
}

// taxEngine uses the built-in tables, overlaid with the profile's tax years
// when --config was given explicitly.
func (o *options) taxEngine(cmd *cobra.Command) (*calculation.TaxEngine, error) {
	var engine *calculation.TaxEngine
	if cmd.Flags().Changed("config") {
		profile, err := config.NewInputParser().LoadRaw(o.profilePath)
		if err != nil {
			return nil, fmt.Errorf("load profile: %w", err)
		}
		engine = calculation.NewTaxEngineWithOverrides(profile.TaxYears)
	} else {
		engine = calculation.NewDefaultTaxEngine()
	}
	engine.SetLogger(o.calcLogger())
	return engine, nil
}

func parseAmount(name, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s %q: %w", name, value, err)
	}
	return d, nil
}

// yearOrCurrent treats an unset --year flag as the current calendar year
func yearOrCurrent(year int) int {
	if year == 0 {
		return calculation.CurrentYear()
	}
	return year
}
