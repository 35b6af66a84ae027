package update_availability

import (
	"github.com/m04kA/SMC-ScheduleService/internal/service/availability/models"
)

// WindowRequest окно доступности на один день недели
type WindowRequest struct {
	Weekday   string `json:"weekday"`   // "MONDAY" .. "SUNDAY"
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "18:00"
}

// UpdateAvailabilityRequest HTTP request model
type UpdateAvailabilityRequest struct {
	MinimumGapMinutes int             `json:"minimumGapMinutes"`
	Windows           []WindowRequest `json:"windows"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateAvailabilityRequest) ToServiceRequest(userID int64) *models.UpsertAvailabilityRequest {
	windows := make([]models.WindowInput, len(r.Windows))
	for i, w := range r.Windows {
		windows[i] = models.WindowInput{
			Weekday:   w.Weekday,
			StartTime: w.StartTime,
			EndTime:   w.EndTime,
		}
	}

	return &models.UpsertAvailabilityRequest{
		UserID:            userID,
		MinimumGapMinutes: r.MinimumGapMinutes,
		Windows:           windows,
	}
}
