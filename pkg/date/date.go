// Copyright (c) 2026 Kinotek. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package date provides a calendar-date value type with no time-of-day component.

The API speaks in plain "YYYY-MM-DD" strings (release dates, birthdays), and
the database stores them in DATE columns. Carrying a full [time.Time] through
the domain invites timezone drift; this type pins every date to midnight UTC.
*/
package date

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Layout is the wire format for all dates in the API.
const Layout = "2006-01-02"

// Date is a single calendar day, stored as midnight UTC.
//
// The zero value represents "no date" and marshals to JSON null.
type Date struct {
	t time.Time
}

// New constructs a Date from its components.
func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime truncates a [time.Time] to its calendar day in UTC.
func FromTime(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	year, month, day := t.UTC().Date()
	return New(year, month, day)
}

// Parse reads a "YYYY-MM-DD" string.
func Parse(value string) (Date, error) {
	t, err := time.Parse(Layout, value)
	if err != nil {
		return Date{}, fmt.Errorf("date: invalid value %q: %w", value, err)
	}
	return FromTime(t), nil
}

// Today returns the current calendar day in UTC.
func Today() Date {
	return FromTime(time.Now())
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Before reports whether d falls strictly before other.
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

// After reports whether d falls strictly after other.
func (d Date) After(other Date) bool { return d.t.After(other.t) }

// Equal reports whether two dates denote the same calendar day.
func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

// Time exposes the underlying midnight-UTC instant for database parameters.
func (d Date) Time() time.Time { return d.t }

// String implements [fmt.Stringer] using the wire layout.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(Layout)
}

// MarshalJSON renders the date as a quoted "YYYY-MM-DD" string, or null when unset.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.t.Format(Layout) + `"`), nil
}

// Value implements [driver.Valuer] so DATE columns accept Date parameters.
// The zero value is stored as NULL.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.t, nil
}

// Scan implements [sql.Scanner] for DATE columns.
func (d *Date) Scan(src any) error {
	switch value := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = FromTime(value)
		return nil
	case string:
		parsed, err := Parse(value)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("date: cannot scan %T", src)
	}
}

// UnmarshalJSON accepts a quoted "YYYY-MM-DD" string or null.
func (d *Date) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if raw == "null" {
		*d = Date{}
		return nil
	}
	if len(raw) < 2 || raw[0] != '"' || raw[len(raw)-1] != '"' {
		return fmt.Errorf("date: expected quoted string, got %s", raw)
	}
	parsed, err := Parse(raw[1 : len(raw)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
