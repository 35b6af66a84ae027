package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-ScheduleService/internal/service/availability/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Service сервис для работы с недельным расписанием специалистов
type Service struct {
	availabilityRepo AvailabilityRepository
	txManager        TransactionManager
	logger           Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	availabilityRepo AvailabilityRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// GetByUserID получает недельное расписание специалиста
// Публичный метод - доступен всем
func (s *Service) GetByUserID(ctx context.Context, userID int64) (*models.AvailabilityResponse, error) {
	s.logger.Info("GetByUserID: fetching availability for user=%d", userID)

	av, err := s.availabilityRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			s.logger.Warn("GetByUserID: availability for user=%d not found", userID)
			return nil, ErrAvailabilityNotFound
		}
		s.logger.Error("GetByUserID: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetByUserID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByUserID: successfully fetched availability id=%d", av.ID)
	return models.FromDomainAvailability(av), nil
}

// Upsert создаёт или полностью заменяет недельное расписание специалиста
// Замена окон выполняется в транзакции, чтобы читатели не видели
// промежуточное состояние
func (s *Service) Upsert(ctx context.Context, req *models.UpsertAvailabilityRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("Upsert: upserting availability for user=%d, windows=%d, gap=%d",
		req.UserID, len(req.Windows), req.MinimumGapMinutes)

	// 1. Валидируем входные данные
	if err := validateUpsertRequest(req); err != nil {
		s.logger.Warn("Upsert: validation failed for user=%d: %v", req.UserID, err)
		return nil, err
	}

	// 2. Конвертируем request в domain модель
	av, err := req.ToDomainAvailability()
	if err != nil {
		s.logger.Warn("Upsert: invalid weekday for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Сохраняем в транзакции
	var saved *domain.WeeklyAvailability
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		result, err := s.availabilityRepo.Upsert(txCtx, av)
		if err != nil {
			return err
		}
		saved = result
		return nil
	})
	if err != nil {
		s.logger.Error("Upsert: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: successfully saved availability id=%d for user=%d", saved.ID, req.UserID)
	return models.FromDomainAvailability(saved), nil
}

// Delete удаляет недельное расписание специалиста
// Окна удаляются каскадно на уровне БД
func (s *Service) Delete(ctx context.Context, userID int64) error {
	s.logger.Info("Delete: deleting availability for user=%d", userID)

	if err := s.availabilityRepo.DeleteByUserID(ctx, userID); err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			s.logger.Warn("Delete: availability for user=%d not found", userID)
			return ErrAvailabilityNotFound
		}
		s.logger.Error("Delete: repository error for user=%d: %v", userID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted availability for user=%d", userID)
	return nil
}

// validateUpsertRequest валидирует запрос на сохранение расписания
func validateUpsertRequest(req *models.UpsertAvailabilityRequest) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userId must be positive", ErrInvalidInput)
	}

	if req.MinimumGapMinutes < domain.MinGapMinutes || req.MinimumGapMinutes > domain.MaxGapMinutes {
		return fmt.Errorf("%w: minimumGapMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinGapMinutes, domain.MaxGapMinutes)
	}

	seen := make(map[string]bool, len(req.Windows))
	for _, w := range req.Windows {
		weekday, err := domain.ParseWeekday(w.Weekday)
		if err != nil {
			return fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, w.Weekday)
		}

		// На каждый день недели допускается не более одного окна
		if seen[weekday.String()] {
			return fmt.Errorf("%w: duplicate window for weekday %s", ErrInvalidInput, weekday)
		}
		seen[weekday.String()] = true

		start, err := domainTimeMinutes(w.StartTime)
		if err != nil {
			return fmt.Errorf("%w: invalid startTime %q for %s", ErrInvalidInput, w.StartTime, weekday)
		}
		end, err := domainTimeMinutes(w.EndTime)
		if err != nil {
			return fmt.Errorf("%w: invalid endTime %q for %s", ErrInvalidInput, w.EndTime, weekday)
		}

		if start >= end {
			return fmt.Errorf("%w: startTime must be before endTime for %s", ErrInvalidInput, weekday)
		}
	}

	return nil
}

func domainTimeMinutes(value string) (int, error) {
	ts, err := types.NewTimeStringFromString(value)
	if err != nil {
		return 0, err
	}
	return ts.Minutes()
}
