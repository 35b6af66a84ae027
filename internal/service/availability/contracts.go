package availability

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория недельного расписания
type AvailabilityRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.WeeklyAvailability, error)
	Upsert(ctx context.Context, av *domain.WeeklyAvailability) (*domain.WeeklyAvailability, error)
	DeleteByUserID(ctx context.Context, userID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
