package domain

// Default values
const (
	DefaultMeetingDurationMinutes = 30
	DefaultMinimumGapMinutes      = 0
	DefaultHorizonDays            = 30
)

// Business validation constants
const (
	MinMeetingDurationMinutes = 5
	MaxMeetingDurationMinutes = 480 // 8 hours
	MinGapMinutes             = 0
	MaxGapMinutes             = 1440 // 1 day
	MinHorizonDays            = 1
	MaxHorizonDays            = 90
	MaxNotesLength            = 500
	MaxCancellationReasonLen  = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных бронирований
// Используется для фильтрации при вычислении свободных слотов
var InactiveStatuses = []BookingStatus{
	StatusCancelledByClient,
	StatusCancelledBySpecialist,
	StatusNoShow,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusConfirmed,
	StatusCompleted,
}
