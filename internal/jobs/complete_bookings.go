package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// CompleteBookingsJob периодически переводит прошедшие подтверждённые
// бронирования в статус completed
type CompleteBookingsJob struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
	schedule     string
	cron         *cron.Cron
	timeout      time.Duration
}

// NewCompleteBookingsJob создает новый экземпляр джобы
// schedule - выражение в формате cron, например "*/10 * * * *"
func NewCompleteBookingsJob(
	bookingRepo BookingRepository,
	logger Logger,
	schedule string,
	timeout time.Duration,
) *CompleteBookingsJob {
	return &CompleteBookingsJob{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		schedule:     schedule,
		timeout:      timeout,
	}
}

// Start регистрирует джобу в планировщике и запускает его
func (j *CompleteBookingsJob) Start() error {
	c := cron.New()

	if _, err := c.AddFunc(j.schedule, j.run); err != nil {
		return fmt.Errorf("jobs: failed to schedule complete bookings job: %w", err)
	}

	c.Start()
	j.cron = c

	j.logger.Info("CompleteBookingsJob: started with schedule %q", j.schedule)
	return nil
}

// Stop останавливает планировщик и дожидается завершения текущего запуска
func (j *CompleteBookingsJob) Stop() {
	if j.cron == nil {
		return
	}

	ctx := j.cron.Stop()
	<-ctx.Done()

	j.logger.Info("CompleteBookingsJob: stopped")
}

// run выполняет один проход джобы
func (j *CompleteBookingsJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	now := j.timeProvider.Now()

	updated, err := j.bookingRepo.CompletePastBookings(ctx, now)
	if err != nil {
		j.logger.Error("CompleteBookingsJob: failed to complete past bookings: %v", err)
		return
	}

	if updated == 0 {
		return
	}

	j.logger.Info("CompleteBookingsJob: marked %d bookings as completed", updated)
}
