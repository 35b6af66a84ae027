package availability

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с недельным расписанием
// Расписание хранится в двух таблицах: weekly_availability (одна строка на
// специалиста) и availability_windows (не более одной строки на день недели).
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByUserID получает недельное расписание специалиста вместе с окнами,
// окна отсортированы по дню недели (понедельник - первый)
func (r *Repository) GetByUserID(ctx context.Context, userID int64) (*domain.WeeklyAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"minimum_gap_minutes",
		"created_at",
		"updated_at",
	).
		From("weekly_availability").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	var av domain.WeeklyAvailability
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&av.ID,
		&av.UserID,
		&av.MinimumGapMinutes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAvailabilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - scan availability: %v", ErrScanRow, err)
	}

	av.CreatedAt = createdAt.Time
	av.UpdatedAt = updatedAt.Time

	windows, err := r.getWindows(ctx, executor, av.ID)
	if err != nil {
		return nil, err
	}
	av.Windows = windows

	return &av, nil
}

// Upsert создает или полностью заменяет недельное расписание специалиста.
// Должен вызываться внутри транзакции: замена окон выполняется как
// delete + insert.
func (r *Repository) Upsert(ctx context.Context, av *domain.WeeklyAvailability) (*domain.WeeklyAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("weekly_availability").
		Columns("user_id", "minimum_gap_minutes").
		Values(av.UserID, av.MinimumGapMinutes).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET minimum_gap_minutes = EXCLUDED.minimum_gap_minutes, updated_at = NOW()").
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&av.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	av.CreatedAt = createdAt.Time
	av.UpdatedAt = updatedAt.Time

	// Полностью заменяем окна
	deleteQuery, deleteArgs, err := psqlbuilder.Delete("availability_windows").
		Where(squirrel.Eq{"availability_id": av.ID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build delete windows query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return nil, fmt.Errorf("%w: Upsert - delete windows: %v", ErrExecQuery, err)
	}

	if len(av.Windows) == 0 {
		return av, nil
	}

	insertBuilder := psqlbuilder.Insert("availability_windows").
		Columns("availability_id", "weekday", "start_time", "end_time")

	for _, w := range av.Windows {
		insertBuilder = insertBuilder.Values(av.ID, int(w.Weekday), w.StartTime, w.EndTime)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert windows query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return nil, fmt.Errorf("%w: Upsert - insert windows: %v", ErrExecQuery, err)
	}

	return av, nil
}

// DeleteByUserID удаляет недельное расписание специалиста вместе с окнами
func (r *Repository) DeleteByUserID(ctx context.Context, userID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Окна удаляются каскадно по внешнему ключу availability_id
	query, args, err := psqlbuilder.Delete("weekly_availability").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByUserID - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByUserID - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByUserID - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAvailabilityNotFound
	}

	return nil
}

// getWindows получает окна расписания, по одному на день недели
func (r *Repository) getWindows(ctx context.Context, executor DBExecutor, availabilityID int64) ([]domain.DayWindow, error) {
	query, args, err := psqlbuilder.Select(
		"weekday",
		"start_time",
		"end_time",
	).
		From("availability_windows").
		Where(squirrel.Eq{"availability_id": availabilityID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getWindows - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getWindows - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	windows := make([]domain.DayWindow, 0)
	for rows.Next() {
		var window domain.DayWindow
		var weekday int

		if err := rows.Scan(&weekday, &window.StartTime, &window.EndTime); err != nil {
			return nil, fmt.Errorf("%w: getWindows - scan row: %v", ErrScanRow, err)
		}

		window.Weekday = domain.Weekday(weekday)
		if !window.Weekday.Valid() {
			return nil, fmt.Errorf("%w: getWindows - weekday %d out of range", ErrInvalidWeekday, weekday)
		}

		windows = append(windows, window)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getWindows - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}
