package config

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/martgra/kjopekraft-sub001/internal/domain"
	"github.com/shopspring/decimal"
)

// SeriesPoint is one year of a yearly CSV series
type SeriesPoint struct {
	Year  int             `json:"year"`
	Value decimal.Decimal `json:"value"`
}

// SeriesStatistics provides a summary of a loaded series
type SeriesStatistics struct {
	Mean         decimal.Decimal `json:"mean"`
	Min          decimal.Decimal `json:"min"`
	Max          decimal.Decimal `json:"max"`
	Count        int             `json:"count"`
	Skipped      int             `json:"skipped"`
	MissingYears []int           `json:"missing_years"`
}

// SeriesDataSet is a yearly series read from CSV, such as consumer price
// changes or an average wage series.
type SeriesDataSet struct {
	Source     string           `json:"source"`
	Points     []SeriesPoint    `json:"points"`
	MinYear    int              `json:"min_year"`
	MaxYear    int              `json:"max_year"`
	Statistics SeriesStatistics `json:"statistics"`
}

var nullValues = map[string]bool{"": true, "null": true, "na": true, "n/a": true, "-": true}

// LoadSeriesCSV reads a "year,value" CSV file with a header row.
//
// Blank and null values ("null", "NA", "-") are skipped and counted in
// Statistics.Skipped, as are rows whose year or value does not parse.
// Years inside the range without a value are listed in MissingYears.
func LoadSeriesCSV(path string) (*SeriesDataSet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	set, err := ReadSeriesCSV(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	set.Source = path
	return set, nil
}

// ReadSeriesCSV is LoadSeriesCSV over an arbitrary reader
func ReadSeriesCSV(r io.Reader) (*SeriesDataSet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("invalid CSV format: expected at least 2 columns")
	}

	var (
		points  []SeriesPoint
		skipped int
	)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read data row: %w", err)
		}

		if len(record) < 2 {
			skipped++
			continue
		}
		year, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil {
			skipped++
			continue
		}
		raw := strings.TrimSpace(record[1])
		if nullValues[strings.ToLower(raw)] {
			skipped++
			continue
		}
		value, err := decimal.NewFromString(raw)
		if err != nil {
			skipped++
			continue
		}

		points = append(points, SeriesPoint{Year: year, Value: value})
	}

	if len(points) == 0 {
		return nil, fmt.Errorf("no valid data points found")
	}

	sort.SliceStable(points, func(i, j int) bool { return points[i].Year < points[j].Year })

	stats := calculateSeriesStatistics(points)
	stats.Skipped = skipped

	return &SeriesDataSet{
		Points:     points,
		MinYear:    points[0].Year,
		MaxYear:    points[len(points)-1].Year,
		Statistics: stats,
	}, nil
}

// calculateSeriesStatistics expects points sorted by year
func calculateSeriesStatistics(points []SeriesPoint) SeriesStatistics {
	sum := decimal.Zero
	lo, hi := points[0].Value, points[0].Value
	present := make(map[int]bool, len(points))
	for _, p := range points {
		sum = sum.Add(p.Value)
		lo = decimal.Min(lo, p.Value)
		hi = decimal.Max(hi, p.Value)
		present[p.Year] = true
	}

	var missing []int
	for year := points[0].Year; year <= points[len(points)-1].Year; year++ {
		if !present[year] {
			missing = append(missing, year)
		}
	}

	return SeriesStatistics{
		Mean:         sum.Div(decimal.NewFromInt(int64(len(points)))),
		Min:          lo,
		Max:          hi,
		Count:        len(points),
		MissingYears: missing,
	}
}

// Inflation converts the series into inflation data points, values in percent
func (s *SeriesDataSet) Inflation() []domain.InflationDataPoint {
	out := make([]domain.InflationDataPoint, 0, len(s.Points))
	for _, p := range s.Points {
		out = append(out, domain.InflationDataPoint{Year: p.Year, Inflation: p.Value})
	}
	return out
}

// Reference converts the series into reference data points
func (s *SeriesDataSet) Reference() []domain.ReferenceDataPoint {
	out := make([]domain.ReferenceDataPoint, 0, len(s.Points))
	for _, p := range s.Points {
		out = append(out, domain.ReferenceDataPoint{Year: p.Year, Value: decimal.NewNullDecimal(p.Value)})
	}
	return out
}
