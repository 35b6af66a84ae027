package get_available_days

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getAvailableDays "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_days"
)

// DayResponse день горизонта с доступными слотами
type DayResponse struct {
	Date  string   `json:"date"`  // "2025-10-15"
	Slots []string `json:"slots"` // ["09:00", "09:45", ...]
}

// AvailableDaysResponse HTTP response model
type AvailableDaysResponse struct {
	UserID          int64         `json:"userId"`
	DurationMinutes int           `json:"durationMinutes"`
	Days            []DayResponse `json:"days"`
	GeneratedAt     string        `json:"generatedAt"` // ISO 8601
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDays.Response) *AvailableDaysResponse {
	days := make([]DayResponse, len(resp.Days))
	for i, day := range resp.Days {
		slots := make([]string, len(day.Slots))
		for j, slot := range day.Slots {
			slots[j] = slot.String()
		}
		days[i] = DayResponse{
			Date:  day.Date.Format(domain.DateFormat),
			Slots: slots,
		}
	}

	return &AvailableDaysResponse{
		UserID:          resp.UserID,
		DurationMinutes: resp.DurationMinutes,
		Days:            days,
		GeneratedAt:     resp.GeneratedAt.Format(time.RFC3339),
	}
}
