package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ScheduleService/internal/service/bookings/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

type fakeBookingRepo struct {
	booking      *domain.Booking
	bookings     []*domain.Booking
	getErr       error
	cancelStatus domain.BookingStatus
	cancelReason string
	newStatus    domain.BookingStatus
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) GetByClientID(_ context.Context, _ int64, _ *domain.BookingStatus) ([]*domain.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepo) GetByUserWithFilter(_ context.Context, _ domain.UserBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, _ int64, status domain.BookingStatus) error {
	f.newStatus = status
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, _ int64, status domain.BookingStatus, reason string) error {
	f.cancelStatus = status
	f.cancelReason = reason
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:              1,
		UserID:          42,
		ClientID:        7,
		BookingDate:     time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("10:00"),
		DurationMinutes: 60,
		Status:          domain.StatusConfirmed,
	}
}

func TestGetByID_AccessControl(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	svc := NewService(repo, nopLogger{})

	// Клиент видит своё бронирование
	resp, err := svc.GetByID(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)

	// Специалист видит бронирование из своего расписания
	_, err = svc.GetByID(context.Background(), 1, 42)
	assert.NoError(t, err)

	// Посторонний пользователь не имеет доступа
	_, err = svc.GetByID(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByID(context.Background(), 1, 7)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_ByClient(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		ActorID:            7,
		CancellationReason: "не смогу прийти",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledByClient, repo.cancelStatus)
	assert.Equal(t, "не смогу прийти", repo.cancelReason)
}

func TestCancel_BySpecialist(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{ActorID: 42})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledBySpecialist, repo.cancelStatus)
}

func TestCancel_AccessDenied(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{ActorID: 99})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	booking := confirmedBooking()
	booking.Status = domain.StatusCancelledByClient
	repo := &fakeBookingRepo{booking: booking}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{ActorID: 7})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestUpdateStatus_SpecialistOnly(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	svc := NewService(repo, nopLogger{})

	// Клиент не может выставлять итоговый статус
	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		ActorID: 7,
		Status:  string(domain.StatusCompleted),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Специалист может
	err = svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		ActorID: 42,
		Status:  string(domain.StatusNoShow),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNoShow, repo.newStatus)
}

func TestUpdateStatus_OnlyTerminalStatuses(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		ActorID: 42,
		Status:  string(domain.StatusConfirmed),
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	err = svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		ActorID: 42,
		Status:  "nonsense",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUserBookings_OwnerOnly(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{confirmedBooking()}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		ActorID: 42,
		UserID:  42,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)

	_, err = svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		ActorID: 7,
		UserID:  42,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetClientBookings_InvalidStatus(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := NewService(repo, nopLogger{})

	bad := "nonsense"
	_, err := svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{
		ClientID: 7,
		Status:   &bad,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
