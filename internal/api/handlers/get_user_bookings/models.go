package get_user_bookings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// Параметр date задаёт период из одного дня и не сочетается с startDate/endDate
func ToServiceRequest(
	userID int64,
	actorID int64,
	dateStr string,
	startDateStr string,
	endDateStr string,
	statusStr string,
	includeInactiveStr string,
) (*models.GetUserBookingsRequest, error) {
	req := &models.GetUserBookingsRequest{
		ActorID:         actorID,
		UserID:          userID,
		IncludeInactive: false, // По умолчанию только активные
	}

	// Парсим date если указана
	if dateStr != "" {
		if startDateStr != "" || endDateStr != "" {
			return nil, fmt.Errorf("date cannot be combined with startDate/endDate")
		}
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &date
		req.EndDate = &date
	}

	// Парсим startDate/endDate если указаны
	if startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}
	if endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	// Парсим status если указан
	if statusStr != "" {
		req.Status = &statusStr
	}

	// Парсим includeInactive если указан
	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
