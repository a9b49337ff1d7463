package domain

// Profile is everything the engine needs to evaluate one person's salary history
type Profile struct {
	CurrentYear   int                   `yaml:"current_year,omitempty" json:"current_year,omitempty"`
	BaseYear      *int                  `yaml:"base_year,omitempty" json:"base_year,omitempty"`
	NetMode       bool                  `yaml:"net_mode,omitempty" json:"net_mode,omitempty"`
	PayPoints     []PayPoint            `yaml:"pay_points" json:"pay_points"`
	Inflation     []InflationDataPoint  `yaml:"inflation,omitempty" json:"inflation,omitempty"`
	InflationFile string                `yaml:"inflation_file,omitempty" json:"inflation_file,omitempty"`
	Reference     []ReferenceDataPoint  `yaml:"reference,omitempty" json:"reference,omitempty"`
	ReferenceFile string                `yaml:"reference_file,omitempty" json:"reference_file,omitempty"`
	TaxYears      map[int]TaxYearConfig `yaml:"tax_years,omitempty" json:"tax_years,omitempty"`
}

// SalaryReport is the derived view of a profile
type SalaryReport struct {
	NetMode    bool              `json:"net_mode"`
	BaseYear   int               `json:"base_year"`
	YearRange  YearRange         `json:"year_range"`
	Statistics SalaryStatistics  `json:"statistics"`
	Series     []SalaryDataPoint `json:"series"`
	Rows       []SalaryTableRow  `json:"rows"`
	Insights   []Insight         `json:"insights"`
}
