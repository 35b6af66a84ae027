package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Weekday is a closed enumeration of the days of the week, Monday-first.
// The wire representation is the upper-case English name ("MONDAY".."SUNDAY").
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [7]string{
	"MONDAY",
	"TUESDAY",
	"WEDNESDAY",
	"THURSDAY",
	"FRIDAY",
	"SATURDAY",
	"SUNDAY",
}

// String returns the wire name of the weekday, or "UNKNOWN" for out-of-range values.
func (d Weekday) String() string {
	if !d.Valid() {
		return "UNKNOWN"
	}
	return weekdayNames[d]
}

// Valid reports whether the value is one of the seven defined weekdays.
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

// ParseWeekday maps a wire name ("MONDAY".."SUNDAY", exact match) to a Weekday.
func ParseWeekday(s string) (Weekday, error) {
	for i, name := range weekdayNames {
		if name == s {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("domain: unknown weekday %q", s)
}

// WeekdayFromTime converts a time.Weekday (Sunday-first) to a Weekday (Monday-first).
func WeekdayFromTime(wd time.Weekday) Weekday {
	if wd == time.Sunday {
		return Sunday
	}
	return Weekday(int(wd) - 1)
}

// DayWindow is the configured bookable window for one weekday.
// Only the time-of-day component of the boundaries is meaningful; the target
// calendar date is supplied when slots are computed.
type DayWindow struct {
	Weekday   Weekday
	StartTime types.TimeString
	EndTime   types.TimeString
}

// IsMalformed reports whether the window can never produce slots (end <= start).
// Such windows are kept: they yield an empty slot list rather than an error.
func (w *DayWindow) IsMalformed() bool {
	return !w.StartTime.IsBefore(w.EndTime)
}

// WeeklyAvailability is a user's recurring weekly schedule: at most one window
// per weekday plus the minimum lead time for same-day bookings.
type WeeklyAvailability struct {
	ID                int64
	UserID            int64
	MinimumGapMinutes int
	Windows           []DayWindow

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WindowFor returns the window configured for the given weekday, if any.
func (a *WeeklyAvailability) WindowFor(d Weekday) (*DayWindow, bool) {
	for i := range a.Windows {
		if a.Windows[i].Weekday == d {
			return &a.Windows[i], true
		}
	}
	return nil, false
}
