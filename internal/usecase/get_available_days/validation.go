package get_available_days

import (
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.DurationMinutes < domain.MinMeetingDurationMinutes ||
		req.DurationMinutes > domain.MaxMeetingDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinMeetingDurationMinutes, domain.MaxMeetingDurationMinutes)
	}

	if req.HorizonDays < domain.MinHorizonDays || req.HorizonDays > domain.MaxHorizonDays {
		return fmt.Errorf("%w: horizonDays must be between %d and %d",
			ErrInvalidInput, domain.MinHorizonDays, domain.MaxHorizonDays)
	}

	return nil
}
