package models

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Request модели

// WindowInput окно доступности на один день недели
type WindowInput struct {
	Weekday   string `json:"weekday"`   // "MONDAY" .. "SUNDAY"
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "18:00"
}

// UpsertAvailabilityRequest запрос на создание или полную замену недельного расписания
type UpsertAvailabilityRequest struct {
	UserID            int64         `json:"userId"`
	MinimumGapMinutes int           `json:"minimumGapMinutes"`
	Windows           []WindowInput `json:"windows"`
}

// Response модели

// WindowResponse окно доступности в ответе
type WindowResponse struct {
	Weekday   string `json:"weekday"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// AvailabilityResponse ответ с недельным расписанием специалиста
type AvailabilityResponse struct {
	ID                int64            `json:"id"`
	UserID            int64            `json:"userId"`
	MinimumGapMinutes int              `json:"minimumGapMinutes"`
	Windows           []WindowResponse `json:"windows"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
}

// Методы конвертации

// FromDomainAvailability конвертирует domain модель в DTO
func FromDomainAvailability(av *domain.WeeklyAvailability) *AvailabilityResponse {
	if av == nil {
		return nil
	}

	windows := make([]WindowResponse, len(av.Windows))
	for i, w := range av.Windows {
		windows[i] = WindowResponse{
			Weekday:   w.Weekday.String(),
			StartTime: w.StartTime.String(),
			EndTime:   w.EndTime.String(),
		}
	}

	return &AvailabilityResponse{
		ID:                av.ID,
		UserID:            av.UserID,
		MinimumGapMinutes: av.MinimumGapMinutes,
		Windows:           windows,
		CreatedAt:         av.CreatedAt,
		UpdatedAt:         av.UpdatedAt,
	}
}

// ToDomainAvailability конвертирует UpsertAvailabilityRequest в domain модель
// Не валидирует поля - валидация выполняется на уровне сервиса
func (r *UpsertAvailabilityRequest) ToDomainAvailability() (*domain.WeeklyAvailability, error) {
	windows := make([]domain.DayWindow, 0, len(r.Windows))
	for _, w := range r.Windows {
		weekday, err := domain.ParseWeekday(w.Weekday)
		if err != nil {
			return nil, err
		}
		windows = append(windows, domain.DayWindow{
			Weekday:   weekday,
			StartTime: types.TimeString(w.StartTime),
			EndTime:   types.TimeString(w.EndTime),
		})
	}

	return &domain.WeeklyAvailability{
		UserID:            r.UserID,
		MinimumGapMinutes: r.MinimumGapMinutes,
		Windows:           windows,
	}, nil
}
