// Package date provides a calendar day type with no time of day and no zone.
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// Layout is the ISO-8601 format dates are written in.
const Layout = "2006-01-02"

// readLayout also accepts single-digit month and day, e.g. 2025-7-1.
const readLayout = "2006-1-2"

const secondsPerDay = 24 * 60 * 60

// Date is a calendar day. The zero value is reported by IsZero.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date, so New(2024, 1, 32) is 2024-02-01.
func New(year int, month time.Month, day int) Date {
	y, m, d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()
	return Date{y, m, d}
}

// Of returns the day t falls on in t's own location.
func Of(t time.Time) Date { return New(t.Date()) }

// Today returns the current date in the local zone.
func Today() Date { return Of(time.Now()) }

// TodayIn returns the current date in loc.
func TodayIn(loc *time.Location) Date { return Of(time.Now().In(loc)) }

// Parse parses a date written as YYYY-MM-DD.
func Parse(s string) (Date, error) {
	t, err := time.Parse(readLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", s, Layout, err)
	}
	return Of(t), nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err.Error())
	}
	return d
}

func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

func (d Date) Year() int          { return d.y }
func (d Date) Month() time.Month  { return d.m }
func (d Date) Day() int           { return d.d }
func (d Date) IsZero() bool       { return d == Date{} }
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }
func (d Date) After(x Date) bool  { return d.time().After(x.time()) }
func (d Date) Equal(x Date) bool  { return d == x }

// Add returns the date i days after d (before d when i is negative).
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// DaysUntil returns the signed number of whole days from d to x.
// It goes through Unix seconds rather than time.Duration so that spans
// longer than ~292 years do not overflow.
func (d Date) DaysUntil(x Date) int {
	return int((x.time().Unix() - d.time().Unix()) / secondsPerDay)
}

// String formats the date as YYYY-MM-DD. The zero Date formats as "".
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.time().Format(Layout)
}

func (d Date) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Date) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid date %s: %w", data, err)
	}
	return d.UnmarshalText([]byte(s))
}
