package get_available_days

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// bookingInterval абсолютный интервал занятости [Start, End)
type bookingInterval struct {
	Start time.Time
	End   time.Time
}

// resolveHorizon вычисляет открытые слоты на horizonDays календарных дней,
// начиная с календарного дня now.
//
// Для каждого дня:
//   - если на его день недели окно не настроено, день не попадает в результат;
//   - если окно настроено, день попадает в результат всегда, даже когда
//     окно не дало ни одного слота (некорректное окно или окно короче
//     одной встречи) - тогда список слотов пустой.
//
// Функция чистая: не обращается к хранилищу, детерминирована при
// фиксированном now.
func resolveHorizon(
	av *domain.WeeklyAvailability,
	durationMinutes int,
	horizonDays int,
	busy []bookingInterval,
	now time.Time,
) []domain.DaySlots {
	days := make([]domain.DaySlots, 0, horizonDays)

	today := dateOnly(now)
	for i := 0; i < horizonDays; i++ {
		date := today.AddDate(0, 0, i)

		window, ok := av.WindowFor(domain.WeekdayFromTime(date.Weekday()))
		if !ok {
			continue
		}

		days = append(days, domain.DaySlots{
			Date:  date,
			Slots: slotsForDay(window, date, durationMinutes, av.MinimumGapMinutes, busy, now),
		})
	}

	return days
}

// slotsForDay жадный проход по окну одного дня.
// Слоты идут вплотную друг к другу с шагом durationMinutes от начала окна;
// слот попадает в результат, только если не пересекается ни с одним
// бронированием. Последний слот может заканчиваться ровно в конец окна.
func slotsForDay(
	window *domain.DayWindow,
	date time.Time,
	durationMinutes int,
	gapMinutes int,
	busy []bookingInterval,
	now time.Time,
) []types.TimeString {
	slots := make([]types.TimeString, 0)

	current, err := window.StartTime.OnDate(date)
	if err != nil {
		return slots
	}
	windowEnd, err := window.EndTime.OnDate(date)
	if err != nil {
		return slots
	}

	// Для сегодняшнего дня не предлагаем уже прошедшие слоты: если начало
	// окна позади, сдвигаем старт на now + минимальный интервал.
	// Сдвиг - это абсолютное прибавление времени, без выравнивания по сетке.
	if isSameDay(date, now) && current.Before(now) {
		current = now.Truncate(time.Minute).Add(time.Duration(gapMinutes) * time.Minute)
	}

	duration := time.Duration(durationMinutes) * time.Minute

	for current.Before(windowEnd) {
		candidateEnd := current.Add(duration)
		if candidateEnd.After(windowEnd) {
			break
		}

		if !overlapsAny(current, candidateEnd, busy) {
			slots = append(slots, types.NewTimeString(current))
		}

		current = candidateEnd
	}

	return slots
}

// overlapsAny проверяет пересечение кандидата [start, end) с бронированиями.
// Интервалы пересекаются, только если реально накладываются друг на друга:
// бронирование начинается СТРОГО раньше конца кандидата И заканчивается
// СТРОГО позже его начала. Граничащие интервалы пересечением не считаются,
// поэтому слот может заканчиваться ровно в момент начала бронирования.
// Кандидат, целиком накрывающий бронирование, этим же условием отбрасывается.
func overlapsAny(start, end time.Time, busy []bookingInterval) bool {
	for _, b := range busy {
		if b.Start.Before(end) && b.End.After(start) {
			return true
		}
	}
	return false
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// dateOnly обнуляет время, оставляя только календарную дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
