package config

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSeriesCSV(t *testing.T) {
	input := "year,value\n" +
		"2019,2.2\n" +
		"2018,2.7\n" +
		"2021,null\n" +
		"2022, 5.6\n" +
		"abc,1\n" +
		"2023\n"

	set, err := ReadSeriesCSV(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, set.Points, 3)
	assert.Equal(t, 2018, set.Points[0].Year, "points are sorted by year")
	assert.Equal(t, 2018, set.MinYear)
	assert.Equal(t, 2022, set.MaxYear)

	stats := set.Statistics
	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, 3, stats.Skipped)
	assert.Equal(t, []int{2020, 2021}, stats.MissingYears)
	assert.True(t, stats.Min.Equal(decimal.RequireFromString("2.2")))
	assert.True(t, stats.Max.Equal(decimal.RequireFromString("5.6")))
	assert.True(t, stats.Mean.Equal(decimal.RequireFromString("3.5")))
}

func TestReadSeriesCSV_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"empty", "", "failed to read header"},
		{"single column header", "year\n2020\n", "expected at least 2 columns"},
		{"only nulls", "year,value\n2020,\n2021,NA\n", "no valid data points"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadSeriesCSV(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadSeriesCSV(t *testing.T) {
	path := writeFile(t, t.TempDir(), "cpi.csv", "year,inflation\n2020,1.3\n2021,3.5\n")

	set, err := LoadSeriesCSV(path)
	require.NoError(t, err)
	assert.Equal(t, path, set.Source)

	inflation := set.Inflation()
	require.Len(t, inflation, 2)
	assert.True(t, inflation[1].Inflation.Equal(decimal.RequireFromString("3.5")))

	reference := set.Reference()
	require.Len(t, reference, 2)
	assert.True(t, reference[0].Value.Valid)
}

func TestLoadSeriesCSV_NotFound(t *testing.T) {
	_, err := LoadSeriesCSV("does-not-exist.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open file")
}
