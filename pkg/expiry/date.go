package expiry

import (
	"database/sql/driver"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

const dateLayout = "2006-01-02"

// Date is a calendar date without a time of day. It marshals as YYYY-MM-DD
// in JSON and is stored in a SQL date column.
type Date struct {
	civil.Date
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{civil.Date{Year: year, Month: month, Day: day}}
}

func ParseDate(value string) (Date, error) {
	d, err := civil.ParseDate(value)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return Date{d}, nil
}

func MustParseDate(value string) Date {
	d, err := ParseDate(value)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	return Date{civil.DateOf(t)}
}

func (d Date) AddDays(n int) Date {
	return Date{d.Date.AddDays(n)}
}

func (d Date) Before(other Date) bool {
	return d.Date.Before(other.Date)
}

func (d Date) After(other Date) bool {
	return d.Date.After(other.Date)
}

func (d Date) Equal(other Date) bool {
	return d.Date == other.Date
}

func (d Date) IsZero() bool {
	return d.Date == civil.Date{}
}

func (d Date) GormDataType() string {
	return "date"
}

func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Date.String(), nil
}

func (d *Date) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("cannot scan %T into expiry.Date", value)
	}
}

// Drivers hand back dates as "2006-01-02", RFC 3339 or "2006-01-02 15:04:05"
// depending on the column affinity; only the date prefix matters.
func (d *Date) scanString(value string) error {
	if len(value) < len(dateLayout) {
		return fmt.Errorf("cannot scan %q into expiry.Date", value)
	}
	parsed, err := ParseDate(value[:len(dateLayout)])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
