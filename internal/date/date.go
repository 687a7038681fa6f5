// Package date holds calendar dates (no time component) stored as
// "YYYY-MM-DD" strings in the persisted collections.
package date

import (
	"bytes"
	"fmt"
	"time"
)

type Date struct {
	t time.Time
}

func New(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func Today() Date {
	now := time.Now()
	return New(now.Year(), now.Month(), now.Day())
}

// Parse reads a "YYYY-MM-DD" form value.
func Parse(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: %w", s, err)
	}

	return Date{t}, nil
}

func (d Date) Time() time.Time { return d.t }
func (d Date) IsZero() bool    { return d.t.IsZero() }

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}

	return d.t.Format(time.DateOnly)
}

// SameMonth reports whether the date falls in the same calendar month as ref.
func (d Date) SameMonth(ref time.Time) bool {
	return d.t.Year() == ref.Year() && d.t.Month() == ref.Month()
}

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }

// DaysSince returns the gap to an earlier date in (possibly fractional) days.
func (d Date) DaysSince(earlier Date) float64 {
	return d.t.Sub(earlier.t).Hours() / 24
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON tolerates empty and malformed values, decoding them as the
// zero date rather than failing the collection read.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	if s == "" || s == "null" {
		d.t = time.Time{}
		return nil
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		// Older records may carry a full timestamp.
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			d.t = time.Time{}
			return nil
		}
	}

	d.t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	return nil
}
