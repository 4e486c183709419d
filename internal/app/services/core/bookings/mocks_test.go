package bookings

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBookingRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	args := m.Called(ctx, bookingID)
	if booking, ok := args.Get(0).(*models.Booking); ok {
		return booking, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepository) FindByFilter(ctx context.Context, filter *requests.BookingQueryParams) ([]models.Booking, error) {
	args := m.Called(ctx, filter)
	if bookings, ok := args.Get(0).([]models.Booking); ok {
		return bookings, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepository) CountByFilter(ctx context.Context, filter *requests.BookingQueryParams) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) FindActiveByProviderDate(ctx context.Context, providerID, date string) ([]models.Booking, error) {
	args := m.Called(ctx, providerID, date)
	if bookings, ok := args.Get(0).([]models.Booking); ok {
		return bookings, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepository) FindActiveByPatient(ctx context.Context, patientID string) ([]models.Booking, error) {
	args := m.Called(ctx, patientID)
	if bookings, ok := args.Get(0).([]models.Booking); ok {
		return bookings, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepository) Insert(ctx context.Context, booking *models.Booking) (string, error) {
	args := m.Called(ctx, booking)
	return args.String(0), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus, message string, lastUpdated int64) error {
	args := m.Called(ctx, bookingID, status, message, lastUpdated)
	return args.Error(0)
}

type MockProviderRepository struct {
	mock.Mock
}

func (m *MockProviderRepository) FindByID(ctx context.Context, providerID string) (*models.Provider, error) {
	args := m.Called(ctx, providerID)
	if provider, ok := args.Get(0).(*models.Provider); ok {
		return provider, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

type MockNotificationQueueService struct {
	mock.Mock
}

func (m *MockNotificationQueueService) PublishBookingCreated(ctx context.Context, booking *models.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockNotificationQueueService) PublishBookingStatusChanged(ctx context.Context, booking *models.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}
