package domain

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed             BookingStatus = "confirmed"
	StatusCompleted             BookingStatus = "completed"
	StatusCancelledByClient     BookingStatus = "cancelled_by_client"
	StatusCancelledBySpecialist BookingStatus = "cancelled_by_specialist"
	StatusNoShow                BookingStatus = "no_show"
)

// Booking represents a client's booking into a specialist's schedule
type Booking struct {
	ID              int64
	UserID          int64 // ID специалиста, к которому записан клиент
	ClientID        int64
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus

	Notes *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its time slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByClient &&
		b.Status != StatusCancelledBySpecialist &&
		b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByClient || b.Status == StatusCancelledBySpecialist
}

// EndsAt returns the absolute end instant of the booking
func (b *Booking) EndsAt() (time.Time, error) {
	start, err := b.StartTime.OnDate(b.BookingDate)
	if err != nil {
		return time.Time{}, err
	}
	return start.Add(time.Duration(b.DurationMinutes) * time.Minute), nil
}

// UserBookingsFilter фильтр для получения бронирований специалиста
type UserBookingsFilter struct {
	UserID          int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально, если nil - без ограничения)
	EndDate         *time.Time     // Конец периода (опционально, если nil - без ограничения)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли неактивные бронирования (отмененные, no-show)
}
