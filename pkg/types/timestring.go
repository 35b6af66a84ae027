package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Layout is the canonical representation of a TimeString: "15:04" (HH:MM, 24h).
const Layout = "15:04"

// TimeString is a time of day with minute precision, stored as "HH:MM".
// It carries no date component: the date is always supplied by the caller.
type TimeString string

// NewTimeString creates a TimeString from the time-of-day component of t,
// truncated to minute precision.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(Layout))
}

// NewTimeStringFromString parses s ("HH:MM") into a TimeString.
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return "", fmt.Errorf("types: invalid time string %q: %w", s, err)
	}
	return TimeString(t.Format(Layout)), nil
}

// Validate reports whether the value is a well-formed "HH:MM" time.
func (ts TimeString) Validate() error {
	if _, err := time.Parse(Layout, string(ts)); err != nil {
		return fmt.Errorf("types: invalid time string %q: %w", ts, err)
	}
	return nil
}

// IsZero reports whether the value is empty.
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// String returns the "HH:MM" representation.
func (ts TimeString) String() string {
	return string(ts)
}

// Minutes returns the value as minutes since midnight.
func (ts TimeString) Minutes() (int, error) {
	t, err := time.Parse(Layout, string(ts))
	if err != nil {
		return 0, fmt.Errorf("types: invalid time string %q: %w", ts, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// AddMinutes returns the value shifted forward by m minutes.
// The result wraps around midnight, matching time.Time arithmetic.
func (ts TimeString) AddMinutes(m int) (TimeString, error) {
	t, err := time.Parse(Layout, string(ts))
	if err != nil {
		return "", fmt.Errorf("types: invalid time string %q: %w", ts, err)
	}
	return TimeString(t.Add(time.Duration(m) * time.Minute).Format(Layout)), nil
}

// IsBefore reports whether ts is strictly earlier in the day than other.
// Malformed values compare as strings, which keeps the ordering deterministic.
func (ts TimeString) IsBefore(other TimeString) bool {
	return string(ts) < string(other)
}

// IsAfter reports whether ts is strictly later in the day than other.
func (ts TimeString) IsAfter(other TimeString) bool {
	return string(ts) > string(other)
}

// OnDate anchors the time of day to the calendar date of d, in d's location.
func (ts TimeString) OnDate(d time.Time) (time.Time, error) {
	t, err := time.Parse(Layout, string(ts))
	if err != nil {
		return time.Time{}, fmt.Errorf("types: invalid time string %q: %w", ts, err)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, d.Location()), nil
}

// Scan implements sql.Scanner. Postgres TIME columns arrive as string,
// []byte or time.Time depending on the driver path.
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*ts = ""
		return nil
	case string:
		return ts.scanString(v)
	case []byte:
		return ts.scanString(string(v))
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", src)
	}
}

func (ts *TimeString) scanString(s string) error {
	// TIME колонки приходят как "15:04:00" - отбрасываем секунды
	if len(s) > len(Layout) {
		s = s[:len(Layout)]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}

// Value implements driver.Valuer.
func (ts TimeString) Value() (driver.Value, error) {
	if err := ts.Validate(); err != nil {
		return nil, err
	}
	return string(ts), nil
}
