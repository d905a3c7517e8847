package expiry

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidUnit        = errors.New("invalid expiry_period_unit, must be 'days' or 'months'")
	ErrInvalidPeriodValue = errors.New("expiry_period_value must not be negative")
)

// PeriodUnit is the unit of a shelf-life period.
type PeriodUnit string

const (
	UnitDays   PeriodUnit = "days"
	UnitMonths PeriodUnit = "months"
)

// ParsePeriodUnit accepts "days" or "months" in any letter case.
func ParsePeriodUnit(value string) (PeriodUnit, error) {
	switch PeriodUnit(strings.ToLower(strings.TrimSpace(value))) {
	case UnitDays:
		return UnitDays, nil
	case UnitMonths:
		return UnitMonths, nil
	default:
		return "", ErrInvalidUnit
	}
}

func (u PeriodUnit) String() string {
	return string(u)
}

// ComputeExpiration adds a shelf-life period to a production date. Month
// arithmetic clamps the day to the last day of the target month, so Jan 31
// plus one month is the last day of February.
func ComputeExpiration(production Date, value int, unit PeriodUnit) (Date, error) {
	if value < 0 {
		return Date{}, ErrInvalidPeriodValue
	}

	switch unit {
	case UnitDays:
		return production.AddDays(value), nil
	case UnitMonths:
		return addMonthsClamped(production, value), nil
	default:
		return Date{}, ErrInvalidUnit
	}
}

func addMonthsClamped(d Date, months int) Date {
	target := time.Date(d.Year, d.Month+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	day := min(d.Day, daysIn(target.Year(), target.Month()))
	return NewDate(target.Year(), target.Month(), day)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
