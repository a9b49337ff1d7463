package calculation

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/martgra/kjopekraft-sub001/internal/domain"
	money "github.com/martgra/kjopekraft-sub001/pkg/decimal"
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Bracket tax (trinnskatt) is applied to gross income, not to ordinary
//    income after minstefradrag.
//
// 2. General tax, bracket tax and trygdeavgift are each rounded to the
//    nearest 10 kroner before they are summed. Rounding the total once can
//    differ by a few kroner; the per-component rounding is kept.
//
// 3. Trygdeavgift is levied on the whole gross income once it reaches the
//    threshold. There is no phase-in band.

// ErrConfigNotFound is returned when no tax configuration is registered for a year.
// No other year's rules are substituted.
var ErrConfigNotFound = errors.New("tax configuration not found")

// ErrNegativeIncome is returned for negative gross income
var ErrNegativeIncome = errors.New("gross income cannot be negative")

const (
	// GrossSearchTolerance is the maximum distance, in kroner, between the
	// requested net income and the net income of the estimated gross.
	GrossSearchTolerance = 1
	// GrossSearchMaxIterations bounds the gross-from-net search.
	GrossSearchMaxIterations = 64
)

// TaxEngine computes Norwegian personal income tax from a per-year configuration table.
// It holds no mutable state after construction and is safe for concurrent use.
type TaxEngine struct {
	configs map[int]domain.TaxYearConfig
	Logger  Logger
}

// NewTaxEngine creates a tax engine over the given year table. The table is copied.
func NewTaxEngine(configs map[int]domain.TaxYearConfig) *TaxEngine {
	copied := make(map[int]domain.TaxYearConfig, len(configs))
	for year, cfg := range configs {
		copied[year] = cfg
	}
	return &TaxEngine{configs: copied, Logger: NopLogger{}}
}

// NewDefaultTaxEngine creates a tax engine with the built-in tables
func NewDefaultTaxEngine() *TaxEngine {
	return NewTaxEngine(DefaultTaxTable())
}

// NewTaxEngineWithOverrides layers profile supplied years over the built-in tables.
func NewTaxEngineWithOverrides(overrides map[int]domain.TaxYearConfig) *TaxEngine {
	table := DefaultTaxTable()
	for year, cfg := range overrides {
		table[year] = cfg
	}
	return NewTaxEngine(table)
}

// SetLogger sets the logger. If nil is provided, a no-op logger is used.
func (te *TaxEngine) SetLogger(l Logger) {
	if l == nil {
		te.Logger = NopLogger{}
		return
	}
	te.Logger = l
}

// Years returns the registered years in ascending order
func (te *TaxEngine) Years() []int {
	years := make([]int, 0, len(te.configs))
	for y := range te.configs {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Config returns the configuration for a year
func (te *TaxEngine) Config(year int) (domain.TaxYearConfig, error) {
	cfg, ok := te.configs[year]
	if !ok {
		return domain.TaxYearConfig{}, fmt.Errorf("%w: year %d", ErrConfigNotFound, year)
	}
	return cfg, nil
}

// CalculateTaxBreakdown computes every step of the tax calculation for a gross income
func (te *TaxEngine) CalculateTaxBreakdown(year int, grossIncome decimal.Decimal) (domain.TaxBreakdown, error) {
	cfg, err := te.Config(year)
	if err != nil {
		return domain.TaxBreakdown{}, err
	}
	if grossIncome.IsNegative() {
		return domain.TaxBreakdown{}, fmt.Errorf("%w: %s", ErrNegativeIncome, grossIncome)
	}

	minstefradrag := money.Min(grossIncome.Mul(cfg.MinstefradragRate), cfg.MinstefradragCap)
	ordinaryIncome := grossIncome.Sub(minstefradrag)
	generalTaxBase := money.Max(decimal.Zero, ordinaryIncome.Sub(cfg.Personfradrag))
	generalTax := money.RoundToTen(generalTaxBase.Mul(cfg.GeneralTaxRate))

	brackets, bracketSum := calculateBracketTax(grossIncome, cfg.BracketThresholds)
	bracketTax := money.RoundToTen(bracketSum)

	trygdeTax := decimal.Zero
	if !grossIncome.LessThan(cfg.TrygdeThreshold) {
		trygdeTax = money.RoundToTen(grossIncome.Mul(cfg.TrygdeRate))
	}

	totalTax := generalTax.Add(bracketTax).Add(trygdeTax)

	return domain.TaxBreakdown{
		Year:           year,
		GrossIncome:    grossIncome,
		Minstefradrag:  minstefradrag,
		OrdinaryIncome: ordinaryIncome,
		Personfradrag:  cfg.Personfradrag,
		GeneralTaxBase: generalTaxBase,
		GeneralTax:     generalTax,
		BracketTax:     bracketTax,
		TrygdeTax:      trygdeTax,
		TotalTax:       totalTax,
		NetIncome:      grossIncome.Sub(totalTax),
		EffectiveRate:  money.PercentOf(totalTax, grossIncome),
		Brackets:       brackets,
	}, nil
}

// calculateBracketTax applies each bracket's rate to the slice of gross income
// between its threshold and the next one. The last bracket is open ended.
func calculateBracketTax(grossIncome decimal.Decimal, brackets []domain.TaxBracket) ([]domain.BracketTax, decimal.Decimal) {
	var (
		portions []domain.BracketTax
		total    decimal.Decimal
	)
	for i, bracket := range brackets {
		if grossIncome.LessThanOrEqual(bracket.Threshold) {
			break
		}
		upper := grossIncome
		if i+1 < len(brackets) {
			upper = money.Min(grossIncome, brackets[i+1].Threshold)
		}
		incomeInBracket := upper.Sub(bracket.Threshold)
		if !incomeInBracket.IsPositive() {
			continue
		}
		tax := incomeInBracket.Mul(bracket.Rate)
		portions = append(portions, domain.BracketTax{
			Threshold: bracket.Threshold,
			Rate:      bracket.Rate,
			Income:    incomeInBracket,
			Tax:       tax,
		})
		total = total.Add(tax)
	}
	return portions, total
}

// CalculateNetIncome returns gross income minus total tax
func (te *TaxEngine) CalculateNetIncome(grossIncome decimal.Decimal, year int) (decimal.Decimal, error) {
	breakdown, err := te.CalculateTaxBreakdown(year, grossIncome)
	if err != nil {
		return decimal.Zero, err
	}
	return breakdown.NetIncome, nil
}

// EstimateGrossIncomeFromNet finds the gross income whose net income is the target.
//
// The search bisects over whole kroner for a gross whose net reaches the
// target while the krone below it does not. Net income drops when
// trygdeavgift starts, so for a target below the trygde threshold the band
// under the threshold is searched first and the cheaper gross is returned.
// If the target cannot be reached within the iteration budget, the gross
// whose net came closest is returned and a warning is logged.
func (te *TaxEngine) EstimateGrossIncomeFromNet(targetNet decimal.Decimal, year int) (decimal.Decimal, error) {
	cfg, err := te.Config(year)
	if err != nil {
		return decimal.Zero, err
	}
	if !targetNet.IsPositive() {
		return decimal.Zero, nil
	}

	s := &grossSearch{
		target: targetNet,
		netAt: func(gross int64) decimal.Decimal {
			// gross is never negative here and the year was checked above
			net, _ := te.CalculateNetIncome(decimal.NewFromInt(gross), year)
			return net
		},
	}

	// Tax is never negative, so the answer is at least the target itself.
	floor := targetNet.Ceil().IntPart()
	if s.reaches(floor) {
		return s.finish(te, floor, year), nil
	}

	if targetNet.LessThan(cfg.TrygdeThreshold) {
		if under := cfg.TrygdeThreshold.Ceil().IntPart() - 1; under > floor && s.reaches(under) {
			return s.finish(te, s.bisect(floor, under), year), nil
		}
	}

	lo, hi := floor+1, floor*2
	for !s.reaches(hi) {
		if s.iterations >= GrossSearchMaxIterations || hi > math.MaxInt64/2 {
			orNop(te.Logger).Warnf("gross search for net %s in %d gave up after %d iterations, best net %s at gross %d",
				targetNet, year, s.iterations, s.bestNet, s.best)
			return decimal.NewFromInt(s.best), nil
		}
		lo = hi + 1
		hi *= 2
		s.iterations++
	}
	return s.finish(te, s.bisect(lo, hi), year), nil
}

// grossSearch remembers the gross whose net came closest to the target
type grossSearch struct {
	target     decimal.Decimal
	netAt      func(int64) decimal.Decimal
	iterations int
	best       int64
	bestNet    decimal.Decimal
	bestDiff   decimal.Decimal
	seen       bool
}

func (s *grossSearch) reaches(gross int64) bool {
	net := s.netAt(gross)
	if diff := net.Sub(s.target).Abs(); !s.seen || diff.LessThan(s.bestDiff) {
		s.best, s.bestNet, s.bestDiff, s.seen = gross, net, diff, true
	}
	return !net.LessThan(s.target)
}

// bisect narrows [lo, hi] to the smallest gross reaching the target, given
// that hi reaches it.
func (s *grossSearch) bisect(lo, hi int64) int64 {
	for lo < hi && s.iterations < GrossSearchMaxIterations {
		mid := lo + (hi-lo)/2
		if s.reaches(mid) {
			hi = mid
		} else {
			lo = mid + 1
		}
		s.iterations++
	}
	return hi
}

func (s *grossSearch) finish(te *TaxEngine, gross int64, year int) decimal.Decimal {
	if diff := s.netAt(gross).Sub(s.target).Abs(); diff.GreaterThan(decimal.NewFromInt(GrossSearchTolerance)) {
		orNop(te.Logger).Warnf("gross search for net %s in %d stopped after %d iterations, off by %s", s.target, year, s.iterations, diff)
	}
	return decimal.NewFromInt(gross)
}
