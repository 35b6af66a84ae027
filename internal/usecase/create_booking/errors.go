package create_booking

import "errors"

var (
	// ErrUserNotFound возвращается, когда специалист не найден
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrNoAvailability возвращается, когда у специалиста не настроено расписание
	ErrNoAvailability = errors.New("create_booking: user has no availability configured")

	// ErrDayUnavailable возвращается, когда на выбранный день недели нет окна
	ErrDayUnavailable = errors.New("create_booking: no availability window on this day")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrOutsideWindow возвращается, когда встреча не помещается в окно дня
	ErrOutsideWindow = errors.New("create_booking: slot is outside the availability window")

	// ErrSlotNotAvailable возвращается, когда выбранный слот уже занят
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrTooLateToBook возвращается, когда запись нарушает minimumGapMinutes
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
