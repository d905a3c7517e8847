package expiry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeExpiration(t *testing.T) {
	tests := []struct {
		name       string
		production string
		value      int
		unit       PeriodUnit
		want       string
	}{
		{name: "leap year month clamp", production: "2024-01-31", value: 1, unit: UnitMonths, want: "2024-02-29"},
		{name: "non-leap month clamp", production: "2023-01-31", value: 1, unit: UnitMonths, want: "2023-02-28"},
		{name: "plain days", production: "2024-03-15", value: 10, unit: UnitDays, want: "2024-03-25"},
		{name: "days across year end", production: "2023-12-25", value: 10, unit: UnitDays, want: "2024-01-04"},
		{name: "days across leap day", production: "2024-02-28", value: 1, unit: UnitDays, want: "2024-02-29"},
		{name: "months with year rollover", production: "2023-11-15", value: 3, unit: UnitMonths, want: "2024-02-15"},
		{name: "twelve months keeps day", production: "2023-05-10", value: 12, unit: UnitMonths, want: "2024-05-10"},
		{name: "clamp to thirty day month", production: "2024-03-31", value: 1, unit: UnitMonths, want: "2024-04-30"},
		{name: "leap day plus a year", production: "2024-02-29", value: 12, unit: UnitMonths, want: "2025-02-28"},
		{name: "zero days", production: "2024-06-01", value: 0, unit: UnitDays, want: "2024-06-01"},
		{name: "zero months", production: "2024-06-30", value: 0, unit: UnitMonths, want: "2024-06-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeExpiration(MustParseDate(tt.production), tt.value, tt.unit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestComputeExpirationRejectsUnknownUnit(t *testing.T) {
	_, err := ComputeExpiration(MustParseDate("2024-03-15"), 3, PeriodUnit("hours"))
	assert.ErrorIs(t, err, ErrInvalidUnit)
}

func TestComputeExpirationRejectsNegativeValue(t *testing.T) {
	_, err := ComputeExpiration(MustParseDate("2024-03-15"), -1, UnitDays)
	assert.ErrorIs(t, err, ErrInvalidPeriodValue)
}

func TestParsePeriodUnit(t *testing.T) {
	for _, raw := range []string{"days", "DAYS", " Days "} {
		unit, err := ParsePeriodUnit(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, UnitDays, unit)
	}

	unit, err := ParsePeriodUnit("Months")
	require.NoError(t, err)
	assert.Equal(t, UnitMonths, unit)

	for _, raw := range []string{"", "hours", "weeks", "day"} {
		_, err := ParsePeriodUnit(raw)
		assert.ErrorIs(t, err, ErrInvalidUnit, raw)
	}
}
