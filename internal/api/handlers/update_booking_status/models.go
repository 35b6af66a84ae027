package update_booking_status

import (
	"github.com/m04kA/SMC-ScheduleService/internal/service/bookings/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"` // "completed" или "no_show"
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
// actorID берётся из контекста аутентификации
func (r *UpdateStatusRequest) ToServiceRequest(actorID int64) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		ActorID: actorID,
		Status:  r.Status,
	}
}
