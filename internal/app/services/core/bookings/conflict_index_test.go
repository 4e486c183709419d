package bookings

import (
	"context"
	"errors"
	"medibook-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestBookingConflictIndex_OccupiedTimes(t *testing.T) {
	t.Run("Collects Times Of Active Bookings", func(t *testing.T) {
		bookingRepository := new(MockBookingRepository)
		index := &bookingConflictIndex{BookingRepository: bookingRepository, Log: zap.NewNop()}

		bookingRepository.On("FindActiveByProviderDate", mock.Anything, "provider-1", "2025-06-10").Return([]models.Booking{
			{Time: "13:00", Status: models.BookingStatusPending},
			{Time: "15:30", Status: models.BookingStatusConfirmed},
		}, nil)

		occupied := index.OccupiedTimes(context.Background(), "provider-1", "2025-06-10")

		assert.Len(t, occupied, 2)
		assert.Contains(t, occupied, "13:00")
		assert.Contains(t, occupied, "15:30")
	})

	t.Run("Store Failure Degrades To Empty Set", func(t *testing.T) {
		bookingRepository := new(MockBookingRepository)
		index := &bookingConflictIndex{BookingRepository: bookingRepository, Log: zap.NewNop()}

		bookingRepository.On("FindActiveByProviderDate", mock.Anything, "provider-1", "2025-06-10").Return(nil, errors.New("connection refused"))

		occupied := index.OccupiedTimes(context.Background(), "provider-1", "2025-06-10")

		assert.Empty(t, occupied)
	})

	t.Run("No Active Bookings Means Empty Set", func(t *testing.T) {
		bookingRepository := new(MockBookingRepository)
		index := &bookingConflictIndex{BookingRepository: bookingRepository, Log: zap.NewNop()}

		bookingRepository.On("FindActiveByProviderDate", mock.Anything, "provider-1", "2025-06-10").Return([]models.Booking{}, nil)

		occupied := index.OccupiedTimes(context.Background(), "provider-1", "2025-06-10")

		assert.Empty(t, occupied)
	})
}

func TestBookingConflictIndex_BookedDatesForPatient(t *testing.T) {
	t.Run("Collects Dates Across Providers", func(t *testing.T) {
		bookingRepository := new(MockBookingRepository)
		index := &bookingConflictIndex{BookingRepository: bookingRepository, Log: zap.NewNop()}

		bookingRepository.On("FindActiveByPatient", mock.Anything, "patient-1").Return([]models.Booking{
			{ProviderID: "provider-1", Date: "2025-06-10", Status: models.BookingStatusPending},
			{ProviderID: "provider-2", Date: "2025-06-12", Status: models.BookingStatusBooked},
		}, nil)

		dates := index.BookedDatesForPatient(context.Background(), "patient-1")

		assert.Len(t, dates, 2)
		assert.Contains(t, dates, "2025-06-10")
		assert.Contains(t, dates, "2025-06-12")
	})

	t.Run("Store Failure Degrades To Empty Set", func(t *testing.T) {
		bookingRepository := new(MockBookingRepository)
		index := &bookingConflictIndex{BookingRepository: bookingRepository, Log: zap.NewNop()}

		bookingRepository.On("FindActiveByPatient", mock.Anything, "patient-1").Return(nil, errors.New("connection refused"))

		dates := index.BookedDatesForPatient(context.Background(), "patient-1")

		assert.Empty(t, dates)
	})
}
