package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/userservice"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	created  *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	created := *booking
	created.ID = 100
	created.CreatedAt = time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

func (f *fakeBookingRepo) GetByUserWithFilter(_ context.Context, _ domain.UserBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

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

type fakeUserClient struct {
	err error
}

func (f *fakeUserClient) GetUser(_ context.Context, userID int64) (*userservice.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &userservice.User{ID: userID, IsActive: true}, nil
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

// Понедельник
var testDate = time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

func mondayAvailability(gap int) *domain.WeeklyAvailability {
	return &domain.WeeklyAvailability{
		ID:                1,
		UserID:            42,
		MinimumGapMinutes: gap,
		Windows: []domain.DayWindow{
			{Weekday: domain.Monday, StartTime: types.TimeString("09:00"), EndTime: types.TimeString("18:00")},
		},
	}
}

func newTestUseCase(br *fakeBookingRepo, ar *fakeAvailabilityRepo, uc *fakeUserClient, now time.Time) *UseCase {
	u := NewUseCase(br, ar, uc, fakeTxManager{}, nopLogger{})
	u.timeProvider = &fixedTimeProvider{now: now}
	return u
}

func validRequest() *Request {
	return &Request{
		ClientID:        7,
		UserID:          42,
		Date:            testDate,
		StartTime:       types.TimeString("10:00"),
		DurationMinutes: 60,
	}
}

func TestExecute_CreatesBooking(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	br := &fakeBookingRepo{}
	u := newTestUseCase(br, &fakeAvailabilityRepo{availability: mondayAvailability(0)}, &fakeUserClient{}, now)

	resp, err := u.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, int64(7), resp.ClientID)
	assert.Equal(t, int64(42), resp.UserID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)

	require.NotNil(t, br.created)
	assert.Equal(t, domain.StatusConfirmed, br.created.Status)
	assert.Equal(t, "10:00", br.created.StartTime.String())
}

func TestExecute_SlotTaken(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	br := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{
				BookingDate:     testDate,
				StartTime:       types.TimeString("10:30"),
				DurationMinutes: 60,
				Status:          domain.StatusConfirmed,
			},
		},
	}
	u := newTestUseCase(br, &fakeAvailabilityRepo{availability: mondayAvailability(0)}, &fakeUserClient{}, now)

	_, err := u.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_AbuttingBookingAllowed(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	// Существующая запись заканчивается ровно в 10:00
	br := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{
				BookingDate:     testDate,
				StartTime:       types.TimeString("09:00"),
				DurationMinutes: 60,
				Status:          domain.StatusConfirmed,
			},
		},
	}
	u := newTestUseCase(br, &fakeAvailabilityRepo{availability: mondayAvailability(0)}, &fakeUserClient{}, now)

	_, err := u.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	br := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{
				BookingDate:     testDate,
				StartTime:       types.TimeString("10:00"),
				DurationMinutes: 60,
				Status:          domain.StatusCancelledByClient,
			},
		},
	}
	u := newTestUseCase(br, &fakeAvailabilityRepo{availability: mondayAvailability(0)}, &fakeUserClient{}, now)

	_, err := u.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_NoAvailability(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	ar := &fakeAvailabilityRepo{err: availabilityRepo.ErrAvailabilityNotFound}
	u := newTestUseCase(&fakeBookingRepo{}, ar, &fakeUserClient{}, now)

	_, err := u.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrNoAvailability)
}

func TestExecute_DayUnavailable(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	u := newTestUseCase(&fakeBookingRepo{}, &fakeAvailabilityRepo{availability: mondayAvailability(0)}, &fakeUserClient{}, now)

	req := validRequest()
	req.Date = testDate.AddDate(0, 0, 1) // вторник

	_, err := u.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDayUnavailable)
}

func TestExecute_DateInPast(t *testing.T) {
	now := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	u := newTestUseCase(&fakeBookingRepo{}, &fakeAvailabilityRepo{availability: mondayAvailability(0)}, &fakeUserClient{}, now)

	_, err := u.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_OutsideWindow(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	u := newTestUseCase(&fakeBookingRepo{}, &fakeAvailabilityRepo{availability: mondayAvailability(0)}, &fakeUserClient{}, now)

	req := validRequest()
	req.StartTime = types.TimeString("17:30") // конец в 18:30, окно до 18:00

	_, err := u.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideWindow)
}

func TestExecute_MeetingMayEndAtWindowClose(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	u := newTestUseCase(&fakeBookingRepo{}, &fakeAvailabilityRepo{availability: mondayAvailability(0)}, &fakeUserClient{}, now)

	req := validRequest()
	req.StartTime = types.TimeString("17:00") // конец ровно в 18:00

	_, err := u.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_TooLateToBookToday(t *testing.T) {
	// Сегодня тот же понедельник, 09:50, gap 30 минут
	now := time.Date(2025, 6, 9, 9, 50, 0, 0, time.UTC)
	u := newTestUseCase(&fakeBookingRepo{}, &fakeAvailabilityRepo{availability: mondayAvailability(30)}, &fakeUserClient{}, now)

	_, err := u.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_GapSatisfiedToday(t *testing.T) {
	now := time.Date(2025, 6, 9, 9, 30, 0, 0, time.UTC)
	u := newTestUseCase(&fakeBookingRepo{}, &fakeAvailabilityRepo{availability: mondayAvailability(30)}, &fakeUserClient{}, now)

	_, err := u.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_UserNotFound(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	u := newTestUseCase(
		&fakeBookingRepo{},
		&fakeAvailabilityRepo{availability: mondayAvailability(0)},
		&fakeUserClient{err: userservice.ErrUserNotFound},
		now,
	)

	_, err := u.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestValidateRequest(t *testing.T) {
	longNotes := make([]byte, domain.MaxNotesLength+1)
	for i := range longNotes {
		longNotes[i] = 'a'
	}
	notes := string(longNotes)

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr bool
	}{
		{"valid", func(*Request) {}, false},
		{"zero client", func(r *Request) { r.ClientID = 0 }, true},
		{"zero user", func(r *Request) { r.UserID = 0 }, true},
		{"zero date", func(r *Request) { r.Date = time.Time{} }, true},
		{"empty start time", func(r *Request) { r.StartTime = "" }, true},
		{"bad start time", func(r *Request) { r.StartTime = "25:99" }, true},
		{"duration too short", func(r *Request) { r.DurationMinutes = 1 }, true},
		{"duration too long", func(r *Request) { r.DurationMinutes = 1000 }, true},
		{"notes too long", func(r *Request) { r.Notes = &notes }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)

			err := validateRequest(req)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
