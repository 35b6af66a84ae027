package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.DurationMinutes < domain.MinMeetingDurationMinutes ||
		req.DurationMinutes > domain.MaxMeetingDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinMeetingDurationMinutes, domain.MaxMeetingDurationMinutes)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом
func validateDate(bookingDate time.Time, now time.Time) error {
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}
	return nil
}

// validateWithinWindow проверяет, что встреча целиком помещается в окно дня.
// Встреча может заканчиваться ровно в конец окна.
func validateWithinWindow(window *domain.DayWindow, date time.Time, start time.Time, durationMinutes int) error {
	windowStart, err := window.StartTime.OnDate(date)
	if err != nil {
		return fmt.Errorf("%w: malformed window start: %v", ErrInternal, err)
	}
	windowEnd, err := window.EndTime.OnDate(date)
	if err != nil {
		return fmt.Errorf("%w: malformed window end: %v", ErrInternal, err)
	}

	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	if start.Before(windowStart) || end.After(windowEnd) {
		return ErrOutsideWindow
	}

	return nil
}

// validateNotice проверяет минимальный интервал для записи на сегодня.
// Для других дней ограничение не применяется.
func validateNotice(date time.Time, start time.Time, now time.Time, gapMinutes int) error {
	if !isSameDay(date, now) {
		return nil
	}

	minStart := now.Truncate(time.Minute).Add(time.Duration(gapMinutes) * time.Minute)
	if start.Before(minStart) {
		return ErrTooLateToBook
	}

	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
