package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

// BookingRepository is the authoritative booking store. EnsureIndexes
// must install a uniqueness constraint on (providerId, date, time) over
// active statuses; without it the pre-check in TryReserve alone cannot
// prevent double booking under concurrent writes.
type BookingRepository interface {
	EnsureIndexes(ctx context.Context) error
	FindByID(ctx context.Context, bookingID string) (*models.Booking, error)
	FindByFilter(ctx context.Context, filter *requests.BookingQueryParams) ([]models.Booking, error)
	CountByFilter(ctx context.Context, filter *requests.BookingQueryParams) (int64, error)
	FindActiveByProviderDate(ctx context.Context, providerID, date string) ([]models.Booking, error)
	FindActiveByPatient(ctx context.Context, patientID string) ([]models.Booking, error)
	Insert(ctx context.Context, booking *models.Booking) (string, error)
	UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus, message string, lastUpdated int64) error
}

// BookingConflictIndex derives occupancy from stored bookings. Both
// lookups fail open: when the store is unreachable they return an empty
// set, and the write-path guard plus the store-level unique index remain
// the correctness backstop.
type BookingConflictIndex interface {
	OccupiedTimes(ctx context.Context, providerID, date string) map[string]struct{}
	BookedDatesForPatient(ctx context.Context, patientID string) map[string]struct{}
}

// BookingUsecase is the scheduling write and listing surface. FindAll
// returns the page selected by the filter plus the total match count so
// the transport layer can build pagination links.
type BookingUsecase interface {
	TryReserve(ctx context.Context, request *requests.CreateBooking) (*responses.Booking, error)
	FindAll(ctx context.Context, filter *requests.BookingQueryParams) ([]responses.Booking, int, error)
	UpdateStatus(ctx context.Context, bookingID string, request *requests.UpdateBookingStatus) (*responses.Booking, error)
}
