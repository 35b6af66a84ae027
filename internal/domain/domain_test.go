package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

func TestWeekdayFromTime(t *testing.T) {
	tests := []struct {
		goWeekday time.Weekday
		want      Weekday
	}{
		{time.Monday, Monday},
		{time.Tuesday, Tuesday},
		{time.Saturday, Saturday},
		{time.Sunday, Sunday},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, WeekdayFromTime(tc.goWeekday))
	}
}

func TestParseWeekday(t *testing.T) {
	d, err := ParseWeekday("MONDAY")
	require.NoError(t, err)
	assert.Equal(t, Monday, d)

	d, err = ParseWeekday("SUNDAY")
	require.NoError(t, err)
	assert.Equal(t, Sunday, d)

	_, err = ParseWeekday("monday")
	assert.Error(t, err)

	_, err = ParseWeekday("FUNDAY")
	assert.Error(t, err)
}

func TestWeekdayString(t *testing.T) {
	assert.Equal(t, "MONDAY", Monday.String())
	assert.Equal(t, "SUNDAY", Sunday.String())
}

func TestWindowFor(t *testing.T) {
	av := &WeeklyAvailability{
		Windows: []DayWindow{
			{Weekday: Monday, StartTime: types.TimeString("09:00"), EndTime: types.TimeString("18:00")},
		},
	}

	w, ok := av.WindowFor(Monday)
	require.True(t, ok)
	assert.Equal(t, "09:00", w.StartTime.String())

	_, ok = av.WindowFor(Tuesday)
	assert.False(t, ok)
}

func TestDayWindowIsMalformed(t *testing.T) {
	tests := []struct {
		start, end string
		malformed  bool
	}{
		{"09:00", "18:00", false},
		{"18:00", "09:00", true},
		{"09:00", "09:00", true},
		{"bad", "18:00", true},
	}

	for _, tc := range tests {
		w := DayWindow{
			Weekday:   Monday,
			StartTime: types.TimeString(tc.start),
			EndTime:   types.TimeString(tc.end),
		}
		assert.Equal(t, tc.malformed, w.IsMalformed(), "window %s-%s", tc.start, tc.end)
	}
}

func TestBookingIsActive(t *testing.T) {
	tests := []struct {
		status BookingStatus
		active bool
	}{
		{StatusConfirmed, true},
		{StatusCompleted, true},
		{StatusCancelledByClient, false},
		{StatusCancelledBySpecialist, false},
		{StatusNoShow, false},
	}

	for _, tc := range tests {
		b := Booking{Status: tc.status}
		assert.Equal(t, tc.active, b.IsActive(), "status %s", tc.status)
	}
}

func TestBookingCanBeCancelled(t *testing.T) {
	tests := []struct {
		status      BookingStatus
		cancellable bool
	}{
		{StatusConfirmed, true},
		{StatusCompleted, false},
		{StatusCancelledByClient, false},
	}

	for _, tc := range tests {
		b := Booking{Status: tc.status}
		assert.Equal(t, tc.cancellable, b.CanBeCancelled(), "status %s", tc.status)
	}
}

func TestBookingEndsAt(t *testing.T) {
	b := Booking{
		BookingDate:     time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("10:00"),
		DurationMinutes: 90,
	}

	end, err := b.EndsAt()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 9, 11, 30, 0, 0, time.UTC), end)
}
