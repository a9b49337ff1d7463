package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/martgra/kjopekraft-sub001/internal/calculation"
	"github.com/martgra/kjopekraft-sub001/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of salary profile files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a profile, merges any inflation and reference CSV files
// it points to, and validates the result.
//
// Inline series points come before file points, so an inline inflation rate
// wins over the file for the same year.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Profile, error) {
	profile, err := ip.LoadResolved(filename)
	if err != nil {
		return nil, err
	}

	if err := ip.ValidateProfile(profile); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}

	return profile, nil
}

// LoadRaw parses a profile without resolving series files or validating it.
// Use it when the profile is going to be edited and saved back.
func (ip *InputParser) LoadRaw(filename string) (*domain.Profile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var profile domain.Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &profile, nil
}

// LoadResolved parses a profile and merges its series files without validating it.
func (ip *InputParser) LoadResolved(filename string) (*domain.Profile, error) {
	profile, err := ip.LoadRaw(filename)
	if err != nil {
		return nil, err
	}
	if err := ip.resolveSeriesFiles(filepath.Dir(filename), profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (ip *InputParser) resolveSeriesFiles(dir string, profile *domain.Profile) error {
	if profile.InflationFile != "" {
		set, err := LoadSeriesCSV(resolvePath(dir, profile.InflationFile))
		if err != nil {
			return fmt.Errorf("failed to load inflation file: %w", err)
		}
		profile.Inflation = append(profile.Inflation, set.Inflation()...)
	}

	if profile.ReferenceFile != "" {
		set, err := LoadSeriesCSV(resolvePath(dir, profile.ReferenceFile))
		if err != nil {
			return fmt.Errorf("failed to load reference file: %w", err)
		}
		profile.Reference = append(profile.Reference, set.Reference()...)
	}

	return nil
}

func resolvePath(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// SaveProfile writes a profile as YAML. Pay point ids are preserved.
func (ip *InputParser) SaveProfile(filename string, profile *domain.Profile) error {
	data, err := yaml.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// ValidateProfile validates a loaded profile
func (ip *InputParser) ValidateProfile(profile *domain.Profile) error {
	if len(profile.PayPoints) == 0 {
		return fmt.Errorf("at least one pay point is required")
	}

	for i, point := range profile.PayPoints {
		others := make([]domain.PayPoint, 0, len(profile.PayPoints)-1)
		others = append(others, profile.PayPoints[:i]...)
		others = append(others, profile.PayPoints[i+1:]...)

		result := calculation.ValidatePayPoint(point, others, profile.Inflation)
		if !result.IsValid {
			return fmt.Errorf("pay point %d (year %d): %s: %s", i, point.Year, result.ErrorCode, result.ErrorMessage)
		}
	}

	minusHundred := decimal.NewFromInt(-100)
	for _, p := range profile.Inflation {
		if !p.Inflation.GreaterThan(minusHundred) {
			return fmt.Errorf("inflation for %d must be greater than -100%%", p.Year)
		}
	}

	if profile.BaseYear != nil && *profile.BaseYear <= 0 {
		return fmt.Errorf("base year must be positive")
	}
	if profile.CurrentYear < 0 {
		return fmt.Errorf("current year cannot be negative")
	}

	for year, cfg := range profile.TaxYears {
		if err := ip.validateTaxYear(cfg); err != nil {
			return fmt.Errorf("tax year %d validation failed: %w", year, err)
		}
	}

	return nil
}

func validRate(r decimal.Decimal) bool {
	return !r.IsNegative() && r.LessThan(decimal.NewFromInt(1))
}

func (ip *InputParser) validateTaxYear(cfg domain.TaxYearConfig) error {
	if !validRate(cfg.MinstefradragRate) {
		return fmt.Errorf("minstefradrag rate must be between 0 and 1")
	}
	if !validRate(cfg.GeneralTaxRate) {
		return fmt.Errorf("general tax rate must be between 0 and 1")
	}
	if !validRate(cfg.TrygdeRate) {
		return fmt.Errorf("trygde rate must be between 0 and 1")
	}
	if cfg.MinstefradragCap.IsNegative() {
		return fmt.Errorf("minstefradrag cap cannot be negative")
	}
	if cfg.Personfradrag.IsNegative() {
		return fmt.Errorf("personfradrag cannot be negative")
	}
	if cfg.TrygdeThreshold.IsNegative() {
		return fmt.Errorf("trygde threshold cannot be negative")
	}

	for i, b := range cfg.BracketThresholds {
		if !validRate(b.Rate) {
			return fmt.Errorf("bracket %d rate must be between 0 and 1", i)
		}
		if i > 0 && !b.Threshold.GreaterThan(cfg.BracketThresholds[i-1].Threshold) {
			return fmt.Errorf("bracket thresholds must be strictly ascending")
		}
	}

	return nil
}

// CreateExampleProfile creates a small profile for first-time users
func (ip *InputParser) CreateExampleProfile() *domain.Profile {
	return &domain.Profile{
		PayPoints: []domain.PayPoint{
			{ID: domain.NewPayPointID(), Year: 2020, Pay: decimal.NewFromInt(550000), Reason: domain.ReasonNewJob},
			{ID: domain.NewPayPointID(), Year: 2022, Pay: decimal.NewFromInt(590000), Reason: domain.ReasonAdjustment},
			{ID: domain.NewPayPointID(), Year: 2024, Pay: decimal.NewFromInt(640000), Reason: domain.ReasonPromotion},
		},
		Inflation: []domain.InflationDataPoint{
			{Year: 2020, Inflation: decimal.RequireFromString("1.3")},
			{Year: 2021, Inflation: decimal.RequireFromString("3.5")},
			{Year: 2022, Inflation: decimal.RequireFromString("5.8")},
			{Year: 2023, Inflation: decimal.RequireFromString("5.5")},
			{Year: 2024, Inflation: decimal.RequireFromString("3.1")},
			{Year: 2025, Inflation: decimal.RequireFromString("2.6")},
		},
	}
}
