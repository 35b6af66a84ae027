package get_available_days

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/userservice"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

type fakeAvailabilityRepo struct {
	availability *domain.WeeklyAvailability
	err          error
}

func (f *fakeAvailabilityRepo) GetByUserID(_ context.Context, _ int64) (*domain.WeeklyAvailability, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.availability, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
	filter   domain.UserBookingsFilter
}

func (f *fakeBookingRepo) GetByUserWithFilter(_ context.Context, filter domain.UserBookingsFilter) ([]*domain.Booking, error) {
	f.filter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

type fakeUserClient struct {
	err error
}

func (f *fakeUserClient) GetUser(_ context.Context, userID int64) (*userservice.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &userservice.User{ID: userID, IsActive: true}, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(av *fakeAvailabilityRepo, br *fakeBookingRepo, uc *fakeUserClient, now time.Time) *UseCase {
	u := NewUseCase(av, br, uc, nopLogger{})
	u.timeProvider = &fixedTimeProvider{now: now}
	return u
}

func TestExecute_ResolvesSlotsOverHorizon(t *testing.T) {
	// Понедельник, 08:00
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	av := &fakeAvailabilityRepo{
		availability: &domain.WeeklyAvailability{
			ID:     1,
			UserID: 42,
			Windows: []domain.DayWindow{
				{Weekday: domain.Monday, StartTime: types.TimeString("09:00"), EndTime: types.TimeString("11:00")},
			},
		},
	}
	br := &fakeBookingRepo{}
	userClient := &fakeUserClient{}

	u := newTestUseCase(av, br, userClient, now)

	resp, err := u.Execute(context.Background(), &Request{
		UserID:          42,
		DurationMinutes: 60,
		HorizonDays:     7,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, int64(42), resp.UserID)
	assert.Equal(t, now, resp.GeneratedAt)

	// В 7-дневном горизонте один понедельник
	require.Len(t, resp.Days, 1)
	assert.Equal(t, now.Truncate(24*time.Hour), resp.Days[0].Date)
	require.Len(t, resp.Days[0].Slots, 2)
	assert.Equal(t, "09:00", resp.Days[0].Slots[0].String())
	assert.Equal(t, "10:00", resp.Days[0].Slots[1].String())
}

func TestExecute_QueriesBookingsForWholeHorizon(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	av := &fakeAvailabilityRepo{
		availability: &domain.WeeklyAvailability{ID: 1, UserID: 42},
	}
	br := &fakeBookingRepo{}
	u := newTestUseCase(av, br, &fakeUserClient{}, now)

	_, err := u.Execute(context.Background(), &Request{
		UserID:          42,
		DurationMinutes: 30,
		HorizonDays:     30,
	})
	require.NoError(t, err)

	require.NotNil(t, br.filter.StartDate)
	require.NotNil(t, br.filter.EndDate)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), *br.filter.StartDate)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), *br.filter.EndDate)
	assert.False(t, br.filter.IncludeInactive)
}

func TestExecute_NoAvailabilityConfigured(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	av := &fakeAvailabilityRepo{err: availabilityRepo.ErrAvailabilityNotFound}
	u := newTestUseCase(av, &fakeBookingRepo{}, &fakeUserClient{}, now)

	resp, err := u.Execute(context.Background(), &Request{
		UserID:          42,
		DurationMinutes: 30,
		HorizonDays:     30,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Empty(t, resp.Days)
}

func TestExecute_UserNotFound(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	u := newTestUseCase(
		&fakeAvailabilityRepo{},
		&fakeBookingRepo{},
		&fakeUserClient{err: userservice.ErrUserNotFound},
		now,
	)

	_, err := u.Execute(context.Background(), &Request{
		UserID:          42,
		DurationMinutes: 30,
		HorizonDays:     30,
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	u := newTestUseCase(&fakeAvailabilityRepo{}, &fakeBookingRepo{}, &fakeUserClient{}, now)

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero user id", &Request{UserID: 0, DurationMinutes: 30, HorizonDays: 30}},
		{"duration too short", &Request{UserID: 1, DurationMinutes: 1, HorizonDays: 30}},
		{"duration too long", &Request{UserID: 1, DurationMinutes: 1000, HorizonDays: 30}},
		{"horizon too short", &Request{UserID: 1, DurationMinutes: 30, HorizonDays: 0}},
		{"horizon too long", &Request{UserID: 1, DurationMinutes: 30, HorizonDays: 365}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := u.Execute(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_RepositoryError(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	av := &fakeAvailabilityRepo{err: errors.New("connection refused")}
	u := newTestUseCase(av, &fakeBookingRepo{}, &fakeUserClient{}, now)

	_, err := u.Execute(context.Background(), &Request{
		UserID:          42,
		DurationMinutes: 30,
		HorizonDays:     30,
	})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestToIntervals_SkipsInactiveAndMalformed(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	bookings := []*domain.Booking{
		{BookingDate: date, StartTime: types.TimeString("10:00"), DurationMinutes: 30, Status: domain.StatusConfirmed},
		{BookingDate: date, StartTime: types.TimeString("11:00"), DurationMinutes: 30, Status: domain.StatusCancelledByClient},
		{BookingDate: date, StartTime: types.TimeString("bad"), DurationMinutes: 30, Status: domain.StatusConfirmed},
	}

	intervals := toIntervals(bookings)
	require.Len(t, intervals, 1)
	assert.Equal(t, time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC), intervals[0].Start)
	assert.Equal(t, time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC), intervals[0].End)
}
