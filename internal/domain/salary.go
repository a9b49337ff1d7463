package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// PayReason explains why a pay point changed
type PayReason string

const (
	ReasonAdjustment PayReason = "adjustment"
	ReasonPromotion  PayReason = "promotion"
	ReasonNewJob     PayReason = "newJob"
)

// Valid reports whether r is one of the known reasons.
func (r PayReason) Valid() bool {
	switch r {
	case ReasonAdjustment, ReasonPromotion, ReasonNewJob:
		return true
	}
	return false
}

// IsSignificant reports whether the reason resets the inflation baseline.
func (r PayReason) IsSignificant() bool {
	return r == ReasonNewJob || r == ReasonPromotion
}

// ParsePayReason accepts the canonical names plus snake/kebab case spellings.
func ParsePayReason(s string) (PayReason, error) {
	switch strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(s)) {
	case "":
		return "", nil
	case "adjustment":
		return ReasonAdjustment, nil
	case "promotion":
		return ReasonPromotion, nil
	case "newjob":
		return ReasonNewJob, nil
	}
	return "", fmt.Errorf("unknown pay reason %q", s)
}

// UnmarshalYAML normalises reason spellings when loading profiles
func (r *PayReason) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParsePayReason(raw)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// PayPoint is a known salary for a calendar year.
// Identity is ID when set, otherwise the (Year, Pay) pair.
type PayPoint struct {
	ID     string          `yaml:"id,omitempty" json:"id,omitempty"`
	Year   int             `yaml:"year" json:"year"`
	Pay    decimal.Decimal `yaml:"pay" json:"pay"`
	Reason PayReason       `yaml:"reason,omitempty" json:"reason,omitempty"`
}

// MarshalYAML writes pay as a plain number so saved profiles read like hand-written ones
func (p PayPoint) MarshalYAML() (interface{}, error) {
	return struct {
		ID     string     `yaml:"id,omitempty"`
		Year   int        `yaml:"year"`
		Pay    yamlNumber `yaml:"pay"`
		Reason PayReason  `yaml:"reason,omitempty"`
	}{p.ID, p.Year, yamlNumber(p.Pay), p.Reason}, nil
}

// yamlNumber emits a decimal as an unquoted YAML int or float
type yamlNumber decimal.Decimal

func (n yamlNumber) MarshalYAML() (interface{}, error) {
	d := decimal.Decimal(n)
	tag := "!!float"
	if d.IsInteger() {
		tag = "!!int"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: d.String()}, nil
}

// NewPayPointID returns a fresh identifier for a pay point.
func NewPayPointID() string {
	return uuid.NewString()
}

// InflationDataPoint is the consumer price change for a year, in percent (2.5 = 2.5%).
type InflationDataPoint struct {
	Year      int             `yaml:"year" json:"year"`
	Inflation decimal.Decimal `yaml:"inflation" json:"inflation"`
}

func (p InflationDataPoint) MarshalYAML() (interface{}, error) {
	return struct {
		Year      int        `yaml:"year"`
		Inflation yamlNumber `yaml:"inflation"`
	}{p.Year, yamlNumber(p.Inflation)}, nil
}

// ReferenceDataPoint is an external comparison value for a year, such as an
// average wage series. Value may be null when the source has no figure.
type ReferenceDataPoint struct {
	Year  int                 `yaml:"year" json:"year"`
	Value decimal.NullDecimal `yaml:"value" json:"value"`
}

// MarshalYAML writes a missing value as null
func (p ReferenceDataPoint) MarshalYAML() (interface{}, error) {
	var value interface{}
	if p.Value.Valid {
		value = yamlNumber(p.Value.Decimal)
	}
	return struct {
		Year  int         `yaml:"year"`
		Value interface{} `yaml:"value"`
	}{p.Year, value}, nil
}

// SalaryDataPoint is one year of the dense salary series
type SalaryDataPoint struct {
	Year                 int             `json:"year"`
	ActualPay            decimal.Decimal `json:"actual_pay"`
	InflationAdjustedPay decimal.Decimal `json:"inflation_adjusted_pay"`
	InflationRate        decimal.Decimal `json:"inflation_rate"`
	IsInterpolated       bool            `json:"is_interpolated"`
}

// SalaryStatistics summarises a salary series. HasData is false for an empty
// series, in which case every other field is zero and must not be displayed.
type SalaryStatistics struct {
	StartingPay          decimal.Decimal `json:"starting_pay"`
	LatestPay            decimal.Decimal `json:"latest_pay"`
	InflationAdjustedPay decimal.Decimal `json:"inflation_adjusted_pay"`
	GapPercent           decimal.Decimal `json:"gap_percent"`
	StartingYear         int             `json:"starting_year"`
	LatestYear           int             `json:"latest_year"`
	HasData              bool            `json:"has_data"`
}

// YearRange is an inclusive span of years
type YearRange struct {
	MinYear int `json:"min_year"`
	MaxYear int `json:"max_year"`
}

// ReferenceComparison compares a salary with the reference series for the same year
type ReferenceComparison struct {
	Value      decimal.Decimal `json:"value"`
	Gap        decimal.Decimal `json:"gap"`
	GapPercent decimal.Decimal `json:"gap_percent"`
}

// SalaryTableRow is one year of the year-over-year table
type SalaryTableRow struct {
	Year                 int                  `json:"year"`
	Salary               decimal.Decimal      `json:"salary"`
	InflationAdjustedPay decimal.Decimal      `json:"inflation_adjusted_pay"`
	InflationRate        decimal.Decimal      `json:"inflation_rate"`
	IsInterpolated       bool                 `json:"is_interpolated"`
	YoYAbsoluteChange    decimal.Decimal      `json:"yoy_absolute_change"`
	YoYPercentChange     decimal.Decimal      `json:"yoy_percent_change"`
	PurchasingPowerDelta decimal.Decimal      `json:"purchasing_power_delta"`
	CumulativeChange     decimal.Decimal      `json:"cumulative_change"`
	CumulativePercent    decimal.Decimal      `json:"cumulative_percent"`
	Reference            *ReferenceComparison `json:"reference,omitempty"`
}

// InsightKind tags the variant carried by an Insight
type InsightKind string

const (
	InsightLargestRaise           InsightKind = "largestRaise"
	InsightPurchasingPowerGain    InsightKind = "purchasingPowerGain"
	InsightPurchasingPowerLoss    InsightKind = "purchasingPowerLoss"
	InsightReferenceWins          InsightKind = "referenceWins"
	InsightReferenceLosses        InsightKind = "referenceLosses"
	InsightInflationBeatingStreak InsightKind = "inflationBeatingStreak"
)

// YearDelta is a signed amount attached to a year
type YearDelta struct {
	Year    int             `json:"year"`
	Amount  decimal.Decimal `json:"amount"`
	Percent decimal.Decimal `json:"percent"`
}

// Insight is a notable event derived from the salary table.
//
// Field usage per kind:
//   - largestRaise: Year, Amount, Percent
//   - purchasingPowerGain/Loss, referenceWins/Losses: Years, Amount (sum)
//   - inflationBeatingStreak: StartYear, EndYear, Length
type Insight struct {
	Kind      InsightKind     `json:"kind"`
	Year      int             `json:"year,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Percent   decimal.Decimal `json:"percent"`
	Years     []YearDelta     `json:"years,omitempty"`
	StartYear int             `json:"start_year,omitempty"`
	EndYear   int             `json:"end_year,omitempty"`
	Length    int             `json:"length,omitempty"`
}

// ValidationErrorCode identifies why a pay point was rejected
type ValidationErrorCode string

const (
	ErrCodeRequired      ValidationErrorCode = "REQUIRED"
	ErrCodePayPositive   ValidationErrorCode = "PAY_POSITIVE"
	ErrCodeYearRange     ValidationErrorCode = "YEAR_RANGE"
	ErrCodeDuplicateYear ValidationErrorCode = "DUPLICATE_YEAR"
)

// ValidationResult is returned by pay point validation; it never carries a Go error.
type ValidationResult struct {
	IsValid      bool                `json:"is_valid"`
	ErrorMessage string              `json:"error_message,omitempty"`
	ErrorCode    ValidationErrorCode `json:"error_code,omitempty"`
	Details      *YearRange          `json:"details,omitempty"`
}
