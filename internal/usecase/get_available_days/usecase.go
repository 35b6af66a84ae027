package get_available_days

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/availability"
	userClient "github.com/m04kA/SMC-ScheduleService/internal/integrations/userservice"
)

// UseCase use case для получения открытых слотов специалиста
type UseCase struct {
	availabilityRepo AvailabilityRepository
	bookingRepo      BookingRepository
	userClient       UserServiceClient
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	bookingRepo BookingRepository,
	userClient UserServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		bookingRepo:      bookingRepo,
		userClient:       userClient,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case получения открытых слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDays: user=%d, duration=%d, horizon=%d",
		req.UserID, req.DurationMinutes, req.HorizonDays)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableDays: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем существование специалиста
	if _, err := uc.userClient.GetUser(ctx, req.UserID); err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("GetAvailableDays: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("GetAvailableDays: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// 4. Получаем недельное расписание
	// Если расписание не настроено - сразу возвращаем пустой результат,
	// резолвер по дням в этом случае не запускается.
	availability, err := uc.availabilityRepo.GetByUserID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			uc.logger.Info("GetAvailableDays: no availability configured for user=%d", req.UserID)
			return &Response{
				UserID:          req.UserID,
				DurationMinutes: req.DurationMinutes,
				HorizonDays:     req.HorizonDays,
				Days:            []Day{},
				GeneratedAt:     now,
			}, nil
		}
		uc.logger.Error("GetAvailableDays: failed to get availability for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	// 5. Получаем активные бронирования на горизонт расчёта
	startDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endDate := startDate.AddDate(0, 0, req.HorizonDays-1)

	filter := domain.UserBookingsFilter{
		UserID:          req.UserID,
		StartDate:       &startDate,
		EndDate:         &endDate,
		IncludeInactive: false, // Только активные бронирования
	}

	bookings, err := uc.bookingRepo.GetByUserWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableDays: failed to get bookings for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Вычисляем открытые слоты по дням
	days := resolveHorizon(availability, req.DurationMinutes, req.HorizonDays, toIntervals(bookings), now)

	result := make([]Day, len(days))
	for i, d := range days {
		result[i] = Day{Date: d.Date, Slots: d.Slots}
	}

	uc.logger.Info("GetAvailableDays: resolved %d days for user=%d", len(result), req.UserID)

	return &Response{
		UserID:          req.UserID,
		DurationMinutes: req.DurationMinutes,
		HorizonDays:     req.HorizonDays,
		Days:            result,
		GeneratedAt:     now,
	}, nil
}

// toIntervals конвертирует активные бронирования в абсолютные интервалы.
// Бронирования с некорректным временем начала пропускаются.
func toIntervals(bookings []*domain.Booking) []bookingInterval {
	busy := make([]bookingInterval, 0, len(bookings))
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}

		start, err := b.StartTime.OnDate(b.BookingDate)
		if err != nil {
			continue
		}

		busy = append(busy, bookingInterval{
			Start: start,
			End:   start.Add(time.Duration(b.DurationMinutes) * time.Minute),
		})
	}
	return busy
}
