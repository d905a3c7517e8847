package expiry

import (
	"errors"
	"strings"
	"time"
)

const DefaultWarningWindowDays = 7

var ErrInvalidStatus = errors.New("invalid status, must be 'active', 'warning' or 'expired'")

// Status is the freshness classification of a food item.
type Status string

const (
	StatusActive  Status = "active"
	StatusWarning Status = "warning"
	StatusExpired Status = "expired"
)

func ParseStatus(value string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(value))) {
	case StatusActive:
		return StatusActive, nil
	case StatusWarning:
		return StatusWarning, nil
	case StatusExpired:
		return StatusExpired, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

// NeedsAttention reports whether the status belongs in the notification list.
func (s Status) NeedsAttention() bool {
	return s == StatusWarning || s == StatusExpired
}

// Classify returns expired when the expiration date is today or earlier,
// warning when it falls within the next warningWindowDays days, and active
// otherwise.
func Classify(expiration, today Date, warningWindowDays int) Status {
	if !expiration.After(today) {
		return StatusExpired
	}
	if !expiration.After(today.AddDays(warningWindowDays)) {
		return StatusWarning
	}
	return StatusActive
}

// Policy carries the clock, time zone and warning window used to classify
// items. The zero value classifies against the wall clock in UTC with the
// default window.
type Policy struct {
	WarningWindowDays int
	Location          *time.Location
	Clock             func() time.Time
}

func (p Policy) Now() time.Time {
	if p.Clock != nil {
		return p.Clock()
	}
	return time.Now()
}

// DateOf converts an instant to a calendar date in the policy's time zone.
func (p Policy) DateOf(t time.Time) Date {
	loc := p.Location
	if loc == nil {
		loc = time.UTC
	}
	return DateOf(t.In(loc))
}

func (p Policy) Today() Date {
	return p.DateOf(p.Now())
}

func (p Policy) Window() int {
	if p.WarningWindowDays <= 0 {
		return DefaultWarningWindowDays
	}
	return p.WarningWindowDays
}

func (p Policy) Classify(expiration, today Date) Status {
	return Classify(expiration, today, p.Window())
}
