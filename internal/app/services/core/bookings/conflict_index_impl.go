package bookings

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"sync"

	"go.uber.org/zap"
)

type bookingConflictIndex struct {
	BookingRepository contracts.BookingRepository
	Log               *zap.Logger
}

var (
	conflictIndexInstance contracts.BookingConflictIndex
	onceConflictIndex     sync.Once
)

func NewBookingConflictIndex(bookingRepository contracts.BookingRepository, logger *zap.Logger) contracts.BookingConflictIndex {
	onceConflictIndex.Do(func() {
		instance := &bookingConflictIndex{
			BookingRepository: bookingRepository,
			Log:               logger,
		}
		conflictIndexInstance = instance
	})
	return conflictIndexInstance
}

// OccupiedTimes returns the storage times already held by active
// bookings for (providerID, date). A store failure degrades to an empty
// set: availability display stays optimistic and the write path plus the
// store-level unique index stay responsible for correctness.
func (idx *bookingConflictIndex) OccupiedTimes(ctx context.Context, providerID, date string) map[string]struct{} {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	occupied := make(map[string]struct{})
	activeBookings, err := idx.BookingRepository.FindActiveByProviderDate(ctx, providerID, date)
	if err != nil {
		idx.Log.Warn("bookingConflictIndex.OccupiedTimes store lookup failed, treating all times as free",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProviderIDKey, providerID),
			zap.String(constvars.LoggingBookingDateKey, date),
			zap.Error(err),
		)
		return occupied
	}

	for _, booking := range activeBookings {
		occupied[booking.Time] = struct{}{}
	}

	idx.Log.Info("bookingConflictIndex.OccupiedTimes resolved",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, providerID),
		zap.String(constvars.LoggingBookingDateKey, date),
		zap.Int(constvars.LoggingOccupiedCountKey, len(occupied)),
	)
	return occupied
}

// BookedDatesForPatient returns every date on which the patient holds an
// active booking, across all providers. Same fail-open policy as
// OccupiedTimes.
func (idx *bookingConflictIndex) BookedDatesForPatient(ctx context.Context, patientID string) map[string]struct{} {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	dates := make(map[string]struct{})
	activeBookings, err := idx.BookingRepository.FindActiveByPatient(ctx, patientID)
	if err != nil {
		idx.Log.Warn("bookingConflictIndex.BookedDatesForPatient store lookup failed, treating patient as unbooked",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return dates
	}

	for _, booking := range activeBookings {
		dates[booking.Date] = struct{}{}
	}
	return dates
}
