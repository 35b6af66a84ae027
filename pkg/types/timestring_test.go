package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	for _, raw := range []string{"", "9:30:00", "25:00", "09:61", "abc"} {
		_, err := NewTimeStringFromString(raw)
		assert.Error(t, err, "value %q", raw)
	}
}

func TestNewTimeString_TruncatesToMinute(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 6, 2, 14, 7, 59, 123, time.UTC))
	assert.Equal(t, "14:07", ts.String())
}

func TestMinutes(t *testing.T) {
	tests := []struct {
		value   TimeString
		minutes int
	}{
		{"00:00", 0},
		{"09:30", 570},
		{"23:59", 1439},
	}

	for _, tc := range tests {
		got, err := tc.value.Minutes()
		require.NoError(t, err)
		assert.Equal(t, tc.minutes, got)
	}

	_, err := TimeString("bad").Minutes()
	assert.Error(t, err)
}

func TestAddMinutes(t *testing.T) {
	ts, err := TimeString("09:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, "10:15", ts.String())

	// Перенос через полночь
	ts, err = TimeString("23:30").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, "00:30", ts.String())
}

func TestOnDate(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	got, err := TimeString("14:07").OnDate(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 2, 14, 7, 0, 0, time.UTC), got)

	_, err = TimeString("bad").OnDate(date)
	assert.Error(t, err)
}

func TestIsBeforeIsAfter(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:30").IsAfter("10:00"))
}

func TestScan(t *testing.T) {
	var ts TimeString

	// Postgres TIME приходит с секундами
	require.NoError(t, ts.Scan("09:30:00"))
	assert.Equal(t, "09:30", ts.String())

	require.NoError(t, ts.Scan([]byte("18:00:00")))
	assert.Equal(t, "18:00", ts.String())

	require.NoError(t, ts.Scan(time.Date(2025, 6, 2, 11, 45, 0, 0, time.UTC)))
	assert.Equal(t, "11:45", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestValue(t *testing.T) {
	v, err := TimeString("09:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "09:30", v)

	_, err = TimeString("bad").Value()
	assert.Error(t, err)
}
