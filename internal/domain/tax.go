package domain

import (
	"github.com/shopspring/decimal"
)

// TaxBracket is one step of the bracket tax (trinnskatt). Rate applies to the
// part of gross income between Threshold and the next bracket's threshold.
type TaxBracket struct {
	Threshold decimal.Decimal `yaml:"threshold" json:"threshold"`
	Rate      decimal.Decimal `yaml:"rate" json:"rate"`
}

func (b TaxBracket) MarshalYAML() (interface{}, error) {
	return struct {
		Threshold yamlNumber `yaml:"threshold"`
		Rate      yamlNumber `yaml:"rate"`
	}{yamlNumber(b.Threshold), yamlNumber(b.Rate)}, nil
}

// TaxYearConfig holds the Norwegian personal income tax parameters for one calendar year.
// Rates are fractions (0.22 = 22%).
type TaxYearConfig struct {
	MinstefradragRate decimal.Decimal `yaml:"minstefradrag_rate" json:"minstefradrag_rate"`
	MinstefradragCap  decimal.Decimal `yaml:"minstefradrag_cap" json:"minstefradrag_cap"`
	Personfradrag     decimal.Decimal `yaml:"personfradrag" json:"personfradrag"`
	GeneralTaxRate    decimal.Decimal `yaml:"general_tax_rate" json:"general_tax_rate"`
	BracketThresholds []TaxBracket    `yaml:"bracket_thresholds" json:"bracket_thresholds"`
	TrygdeRate        decimal.Decimal `yaml:"trygde_rate" json:"trygde_rate"`
	TrygdeThreshold   decimal.Decimal `yaml:"trygde_threshold" json:"trygde_threshold"`
}

func (c TaxYearConfig) MarshalYAML() (interface{}, error) {
	return struct {
		MinstefradragRate yamlNumber   `yaml:"minstefradrag_rate"`
		MinstefradragCap  yamlNumber   `yaml:"minstefradrag_cap"`
		Personfradrag     yamlNumber   `yaml:"personfradrag"`
		GeneralTaxRate    yamlNumber   `yaml:"general_tax_rate"`
		BracketThresholds []TaxBracket `yaml:"bracket_thresholds"`
		TrygdeRate        yamlNumber   `yaml:"trygde_rate"`
		TrygdeThreshold   yamlNumber   `yaml:"trygde_threshold"`
	}{
		yamlNumber(c.MinstefradragRate),
		yamlNumber(c.MinstefradragCap),
		yamlNumber(c.Personfradrag),
		yamlNumber(c.GeneralTaxRate),
		c.BracketThresholds,
		yamlNumber(c.TrygdeRate),
		yamlNumber(c.TrygdeThreshold),
	}, nil
}

// BracketTax is the unrounded tax levied inside a single bracket.
type BracketTax struct {
	Threshold decimal.Decimal `json:"threshold"`
	Rate      decimal.Decimal `json:"rate"`
	Income    decimal.Decimal `json:"income"`
	Tax       decimal.Decimal `json:"tax"`
}

// TaxBreakdown is the full result of a tax calculation for one year and gross income
type TaxBreakdown struct {
	Year           int             `json:"year"`
	GrossIncome    decimal.Decimal `json:"gross_income"`
	Minstefradrag  decimal.Decimal `json:"minstefradrag"`
	OrdinaryIncome decimal.Decimal `json:"ordinary_income"`
	Personfradrag  decimal.Decimal `json:"personfradrag"`
	GeneralTaxBase decimal.Decimal `json:"general_tax_base"`
	GeneralTax     decimal.Decimal `json:"general_tax"`
	BracketTax     decimal.Decimal `json:"bracket_tax"`
	TrygdeTax      decimal.Decimal `json:"trygde_tax"`
	TotalTax       decimal.Decimal `json:"total_tax"`
	NetIncome      decimal.Decimal `json:"net_income"`
	EffectiveRate  decimal.Decimal `json:"effective_rate"` // percent, one decimal
	Brackets       []BracketTax    `json:"brackets,omitempty"`
}

// NegotiationTarget summarises the gross pay needed to reach a desired net income.
// RequiredGross comes from an iterative search and is approximate.
type NegotiationTarget struct {
	Year                 int             `json:"year"`
	CurrentGross         decimal.Decimal `json:"current_gross"`
	CurrentNet           decimal.Decimal `json:"current_net"`
	DesiredNet           decimal.Decimal `json:"desired_net"`
	RequiredGross        decimal.Decimal `json:"required_gross"`
	RequiredRaise        decimal.Decimal `json:"required_raise"`
	RequiredRaisePercent decimal.Decimal `json:"required_raise_percent"`
	Approximate          bool            `json:"approximate"`
}
