package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParsePayReason(t *testing.T) {
	tests := []struct {
		input   string
		want    PayReason
		wantErr bool
	}{
		{"adjustment", ReasonAdjustment, false},
		{"Promotion", ReasonPromotion, false},
		{"newJob", ReasonNewJob, false},
		{"new_job", ReasonNewJob, false},
		{"new-job", ReasonNewJob, false},
		{"NEW JOB", ReasonNewJob, false},
		{"", "", false},
		{"bonus", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePayReason(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPayReasonClassification(t *testing.T) {
	assert.True(t, ReasonNewJob.IsSignificant())
	assert.True(t, ReasonPromotion.IsSignificant())
	assert.False(t, ReasonAdjustment.IsSignificant())

	assert.True(t, ReasonAdjustment.Valid())
	assert.False(t, PayReason("").Valid())
	assert.False(t, PayReason("bonus").Valid())
}

func TestPayPointYAML(t *testing.T) {
	input := `
- year: 2020
  pay: 500000
  reason: new_job
- id: abc
  year: 2022
  pay: "612500.50"
  reason: promotion
- year: 2023
  pay: 620000
`
	var points []PayPoint
	require.NoError(t, yaml.Unmarshal([]byte(input), &points))
	require.Len(t, points, 3)

	assert.Equal(t, ReasonNewJob, points[0].Reason)
	assert.True(t, points[0].Pay.Equal(decimal.NewFromInt(500000)))
	assert.Equal(t, "abc", points[1].ID)
	assert.True(t, points[1].Pay.Equal(decimal.RequireFromString("612500.5")))
	assert.Equal(t, PayReason(""), points[2].Reason)
}

func TestPayPointYAMLRejectsUnknownReason(t *testing.T) {
	var points []PayPoint
	err := yaml.Unmarshal([]byte("- {year: 2020, pay: 1, reason: bonus}"), &points)
	assert.ErrorContains(t, err, "bonus")
}

func TestReferenceDataPointNullValue(t *testing.T) {
	input := `
- year: 2021
  value: 612000
- year: 2022
  value: null
- year: 2023
`
	var refs []ReferenceDataPoint
	require.NoError(t, yaml.Unmarshal([]byte(input), &refs))
	require.Len(t, refs, 3)

	assert.True(t, refs[0].Value.Valid)
	assert.True(t, refs[0].Value.Decimal.Equal(decimal.NewFromInt(612000)))
	assert.False(t, refs[1].Value.Valid)
	assert.False(t, refs[2].Value.Valid)
}

func TestNewPayPointID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewPayPointID()
		assert.Len(t, id, 36)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
