package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/availability"
	userClient "github.com/m04kA/SMC-ScheduleService/internal/integrations/userservice"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	userClient       UserServiceClient
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	userClient UserServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		userClient:       userClient,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%d, user=%d, date=%s, time=%s, duration=%d",
		req.ClientID, req.UserID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем существование специалиста
	if _, err := uc.userClient.GetUser(ctx, req.UserID); err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateBooking: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем недельное расписание специалиста
		availability, err := uc.availabilityRepo.GetByUserID(txCtx, req.UserID)
		if err != nil {
			if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
				uc.logger.Warn("CreateBooking: no availability configured for user=%d", req.UserID)
				return ErrNoAvailability
			}
			uc.logger.Error("CreateBooking: failed to get availability: %v", err)
			return fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
		}

		// 4.2. Валидация даты
		if err := validateDate(req.Date, now); err != nil {
			uc.logger.Warn("CreateBooking: date validation failed: %v", err)
			return err
		}

		// 4.3. Окно на выбранный день недели
		window, ok := availability.WindowFor(domain.WeekdayFromTime(req.Date.Weekday()))
		if !ok {
			uc.logger.Warn("CreateBooking: no window on %s for user=%d",
				req.Date.Format(domain.DateFormat), req.UserID)
			return ErrDayUnavailable
		}

		start, err := req.StartTime.OnDate(req.Date)
		if err != nil {
			return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
		}

		// 4.4. Встреча должна целиком помещаться в окно
		if err := validateWithinWindow(window, req.Date, start, req.DurationMinutes); err != nil {
			uc.logger.Warn("CreateBooking: window validation failed: %v", err)
			return err
		}

		// 4.5. Минимальный интервал для записи на сегодня
		if err := validateNotice(req.Date, start, now, availability.MinimumGapMinutes); err != nil {
			uc.logger.Warn("CreateBooking: notice validation failed: %v", err)
			return err
		}

		// 4.6. Получаем все активные бронирования на эту дату с блокировкой (FOR UPDATE)
		filter := domain.UserBookingsFilter{
			UserID:          req.UserID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false, // Только активные бронирования
		}

		bookings, err := uc.bookingRepo.GetByUserWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 4.7. Проверяем, что слот свободен
		end := start.Add(time.Duration(req.DurationMinutes) * time.Minute)
		if overlapsBookings(start, end, bookings) {
			uc.logger.Warn("CreateBooking: slot %s %s is already taken for user=%d",
				req.Date.Format(domain.DateFormat), req.StartTime, req.UserID)
			return ErrSlotNotAvailable
		}

		// 4.8. Создаем бронирование
		booking := &domain.Booking{
			UserID:          req.UserID,
			ClientID:        req.ClientID,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: req.DurationMinutes,
			Status:          domain.StatusConfirmed,
			Notes:           req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		ClientID:        result.ClientID,
		UserID:          result.UserID,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// overlapsBookings проверяет пересечение интервала [start, end) с активными
// бронированиями. Граничащие интервалы пересечением не считаются, поэтому
// допустимы записи вплотную друг к другу.
// Бронирования с некорректным временем начала пропускаются.
func overlapsBookings(start, end time.Time, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}

		bookingStart, err := b.StartTime.OnDate(b.BookingDate)
		if err != nil {
			continue
		}
		bookingEnd := bookingStart.Add(time.Duration(b.DurationMinutes) * time.Minute)

		if bookingStart.Before(end) && bookingEnd.After(start) {
			return true
		}
	}
	return false
}
