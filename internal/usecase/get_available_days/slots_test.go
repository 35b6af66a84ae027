package get_available_days

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// 2025-06-02 - понедельник
var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func ts(t *testing.T, s string) types.TimeString {
	t.Helper()
	v, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return v
}

func window(t *testing.T, day domain.Weekday, start, end string) domain.DayWindow {
	t.Helper()
	return domain.DayWindow{
		Weekday:   day,
		StartTime: ts(t, start),
		EndTime:   ts(t, end),
	}
}

func availabilityWith(gap int, windows ...domain.DayWindow) *domain.WeeklyAvailability {
	return &domain.WeeklyAvailability{
		ID:                1,
		UserID:            42,
		MinimumGapMinutes: gap,
		Windows:           windows,
	}
}

func busyAt(day time.Time, startHour, startMin, durationMin int) bookingInterval {
	start := time.Date(day.Year(), day.Month(), day.Day(), startHour, startMin, 0, 0, day.Location())
	return bookingInterval{Start: start, End: start.Add(time.Duration(durationMin) * time.Minute)}
}

func slotStrings(slots []types.TimeString) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}

func TestResolveHorizon_FullDayNoBookings(t *testing.T) {
	av := availabilityWith(0, window(t, domain.Monday, "09:00", "17:00"))
	now := monday.Add(8 * time.Hour) // понедельник 08:00

	days := resolveHorizon(av, 30, 1, nil, now)

	require.Len(t, days, 1)
	assert.Equal(t, monday, days[0].Date)
	require.Len(t, days[0].Slots, 16)
	assert.Equal(t, "09:00", days[0].Slots[0].String())
	assert.Equal(t, "16:30", days[0].Slots[15].String())
}

func TestResolveHorizon_BookingExcludesSlot(t *testing.T) {
	av := availabilityWith(0, window(t, domain.Monday, "09:00", "17:00"))
	now := monday.Add(8 * time.Hour)
	busy := []bookingInterval{busyAt(monday, 10, 0, 30)}

	days := resolveHorizon(av, 30, 1, busy, now)

	require.Len(t, days, 1)
	slots := slotStrings(days[0].Slots)
	assert.Len(t, slots, 15)
	assert.NotContains(t, slots, "10:00")
	// соседние слоты остаются: бронирование граничит с ними, но не пересекается
	assert.Contains(t, slots, "09:30")
	assert.Contains(t, slots, "10:30")
}

func TestResolveHorizon_SameDayGapOffset(t *testing.T) {
	// Сегодня 09:15, минимальный интервал 15 минут: первый слот в 09:30.
	// Сдвиг - абсолютное прибавление к текущему моменту, без выравнивания
	// по 30-минутной сетке.
	av := availabilityWith(15, window(t, domain.Monday, "09:00", "17:00"))
	now := monday.Add(9*time.Hour + 15*time.Minute)

	days := resolveHorizon(av, 30, 1, nil, now)

	require.Len(t, days, 1)
	require.NotEmpty(t, days[0].Slots)
	assert.Equal(t, "09:30", days[0].Slots[0].String())
}

func TestResolveHorizon_GapOffsetNotAligned(t *testing.T) {
	// 09:20 + 15 минут = 09:35 - слоты идут 09:35, 10:05, ...
	av := availabilityWith(15, window(t, domain.Monday, "09:00", "17:00"))
	now := monday.Add(9*time.Hour + 20*time.Minute)

	days := resolveHorizon(av, 30, 1, nil, now)

	require.Len(t, days, 1)
	slots := slotStrings(days[0].Slots)
	require.NotEmpty(t, slots)
	assert.Equal(t, "09:35", slots[0])
	assert.Equal(t, "10:05", slots[1])
}

func TestResolveHorizon_GapAppliesOnlyToToday(t *testing.T) {
	av := availabilityWith(120,
		window(t, domain.Monday, "09:00", "17:00"),
		window(t, domain.Tuesday, "09:00", "17:00"),
	)
	now := monday.Add(10 * time.Hour) // сегодня 10:00

	days := resolveHorizon(av, 30, 2, nil, now)

	require.Len(t, days, 2)
	// сегодня: 10:00 + 120 минут = 12:00
	assert.Equal(t, "12:00", days[0].Slots[0].String())
	// завтра интервал не применяется
	assert.Equal(t, "09:00", days[1].Slots[0].String())
}

func TestResolveHorizon_WindowShorterThanMeeting(t *testing.T) {
	// Окно настроено, но короче одной встречи: день присутствует с пустым
	// списком слотов.
	tuesday := monday.AddDate(0, 0, 1)
	av := availabilityWith(0, window(t, domain.Tuesday, "09:00", "09:20"))
	now := monday.Add(8 * time.Hour)

	days := resolveHorizon(av, 30, 7, nil, now)

	require.Len(t, days, 1)
	assert.Equal(t, tuesday, days[0].Date)
	assert.NotNil(t, days[0].Slots)
	assert.Empty(t, days[0].Slots)
}

func TestResolveHorizon_UnconfiguredDayOmitted(t *testing.T) {
	// Окна только на понедельник: все остальные дни горизонта отсутствуют
	// в результате, а не присутствуют с пустым списком.
	av := availabilityWith(0, window(t, domain.Monday, "09:00", "17:00"))
	now := monday.Add(8 * time.Hour)

	days := resolveHorizon(av, 30, 30, nil, now)

	// в 30 днях начиная с понедельника ровно 5 понедельников
	require.Len(t, days, 5)
	for _, d := range days {
		assert.Equal(t, time.Monday, d.Date.Weekday())
	}
}

func TestResolveHorizon_MalformedWindowYieldsEmptyDay(t *testing.T) {
	// Окно с концом раньше начала не даёт слотов, но день остаётся в выдаче.
	av := availabilityWith(0, window(t, domain.Monday, "17:00", "09:00"))
	now := monday.Add(8 * time.Hour)

	days := resolveHorizon(av, 30, 1, nil, now)

	require.Len(t, days, 1)
	assert.Empty(t, days[0].Slots)
}

func TestResolveHorizon_LastSlotEndsAtWindowClose(t *testing.T) {
	av := availabilityWith(0, window(t, domain.Monday, "09:00", "10:00"))
	now := monday.Add(8 * time.Hour)

	days := resolveHorizon(av, 60, 1, nil, now)

	require.Len(t, days, 1)
	require.Len(t, days[0].Slots, 1)
	assert.Equal(t, "09:00", days[0].Slots[0].String())
}

func TestResolveHorizon_AbuttingBookingDoesNotBlock(t *testing.T) {
	// Бронирование 09:30-10:00: слот 09:00-09:30 заканчивается ровно в его
	// начало, слот 10:00-10:30 начинается ровно в его конец - оба открыты.
	av := availabilityWith(0, window(t, domain.Monday, "09:00", "10:30"))
	now := monday.Add(8 * time.Hour)
	busy := []bookingInterval{busyAt(monday, 9, 30, 30)}

	days := resolveHorizon(av, 30, 1, busy, now)

	require.Len(t, days, 1)
	assert.Equal(t, []string{"09:00", "10:00"}, slotStrings(days[0].Slots))
}

func TestResolveHorizon_ContainedBookingBlocksSlot(t *testing.T) {
	// Бронирование короче слота и целиком внутри него всё равно закрывает слот.
	av := availabilityWith(0, window(t, domain.Monday, "09:00", "10:00"))
	now := monday.Add(8 * time.Hour)
	busy := []bookingInterval{busyAt(monday, 9, 10, 10)}

	days := resolveHorizon(av, 30, 1, busy, now)

	require.Len(t, days, 1)
	assert.Equal(t, []string{"09:30"}, slotStrings(days[0].Slots))
}

func TestResolveHorizon_PartialOverlapBlocksSlot(t *testing.T) {
	av := availabilityWith(0, window(t, domain.Monday, "09:00", "11:00"))
	now := monday.Add(8 * time.Hour)
	// бронирование 09:45-10:15 пересекает слоты 09:30 и 10:00
	busy := []bookingInterval{busyAt(monday, 9, 45, 30)}

	days := resolveHorizon(av, 30, 1, busy, now)

	require.Len(t, days, 1)
	assert.Equal(t, []string{"09:00", "10:30"}, slotStrings(days[0].Slots))
}

func TestResolveHorizon_DuplicateBookingsTolerated(t *testing.T) {
	av := availabilityWith(0, window(t, domain.Monday, "09:00", "10:00"))
	now := monday.Add(8 * time.Hour)
	busy := []bookingInterval{
		busyAt(monday, 9, 0, 30),
		busyAt(monday, 9, 0, 30), // дубликат
	}

	days := resolveHorizon(av, 30, 1, busy, now)

	require.Len(t, days, 1)
	assert.Equal(t, []string{"09:30"}, slotStrings(days[0].Slots))
}

func TestResolveHorizon_NoPastSlotsToday(t *testing.T) {
	av := availabilityWith(0, window(t, domain.Monday, "09:00", "17:00"))
	now := monday.Add(14*time.Hour + 7*time.Minute) // сегодня 14:07

	days := resolveHorizon(av, 30, 1, nil, now)

	require.Len(t, days, 1)
	for _, s := range days[0].Slots {
		start, err := s.OnDate(monday)
		require.NoError(t, err)
		assert.False(t, start.Before(now.Truncate(time.Minute)),
			"slot %s starts before now", s)
	}
	require.NotEmpty(t, days[0].Slots)
	assert.Equal(t, "14:07", days[0].Slots[0].String())
}

func TestResolveHorizon_SlotsAreBackToBack(t *testing.T) {
	av := availabilityWith(0, window(t, domain.Monday, "09:00", "17:00"))
	now := monday.Add(8 * time.Hour)

	days := resolveHorizon(av, 45, 1, nil, now)

	require.Len(t, days, 1)
	prev := -1
	for _, s := range days[0].Slots {
		min, err := s.Minutes()
		require.NoError(t, err)
		if prev >= 0 {
			assert.Equal(t, 45, min-prev)
		}
		prev = min
	}
}

func TestResolveHorizon_Deterministic(t *testing.T) {
	av := availabilityWith(10,
		window(t, domain.Monday, "09:00", "17:00"),
		window(t, domain.Wednesday, "10:00", "14:00"),
	)
	now := monday.Add(9*time.Hour + 3*time.Minute)
	busy := []bookingInterval{
		busyAt(monday, 11, 0, 60),
		busyAt(monday.AddDate(0, 0, 2), 10, 30, 30),
	}

	first := resolveHorizon(av, 30, 30, busy, now)
	second := resolveHorizon(av, 30, 30, busy, now)

	assert.Equal(t, first, second)
}

func TestResolveHorizon_BookingsNeverOverlapResult(t *testing.T) {
	av := availabilityWith(0,
		window(t, domain.Monday, "08:00", "20:00"),
		window(t, domain.Tuesday, "08:00", "20:00"),
	)
	now := monday.Add(7 * time.Hour)
	busy := []bookingInterval{
		busyAt(monday, 9, 10, 25),
		busyAt(monday, 13, 0, 90),
		busyAt(monday.AddDate(0, 0, 1), 8, 0, 480),
	}

	days := resolveHorizon(av, 30, 7, busy, now)

	for _, d := range days {
		for _, s := range d.Slots {
			start, err := s.OnDate(d.Date)
			require.NoError(t, err)
			end := start.Add(30 * time.Minute)
			assert.False(t, overlapsAny(start, end, busy),
				"slot %s on %s overlaps a booking", s, d.Date.Format("2006-01-02"))
		}
	}
}
