package availability

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/app/services/core/slots"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type availabilityUsecase struct {
	ConflictIndex            contracts.BookingConflictIndex
	UnavailabilityRepository contracts.UnavailabilityRepository
	Log                      *zap.Logger
}

var (
	availabilityUsecaseInstance contracts.AvailabilityUsecase
	onceAvailabilityUsecase     sync.Once
)

func NewAvailabilityUsecase(
	conflictIndex contracts.BookingConflictIndex,
	unavailabilityRepository contracts.UnavailabilityRepository,
	logger *zap.Logger,
) contracts.AvailabilityUsecase {
	onceAvailabilityUsecase.Do(func() {
		instance := &availabilityUsecase{
			ConflictIndex:            conflictIndex,
			UnavailabilityRepository: unavailabilityRepository,
			Log:                      logger,
		}
		availabilityUsecaseInstance = instance
	})
	return availabilityUsecaseInstance
}

// Resolve merges the day template, booked times, the provider's blackout
// calendar and the query's observation instant into the final slot list,
// in ascending time order. Slot ordering is a user-facing contract.
//
// External lookups fail open: an unreachable calendar means no
// exclusions, an unreachable booking store means no occupancy. The
// booking write path re-validates, so an optimistic availability view is
// safe.
func (uc *availabilityUsecase) Resolve(ctx context.Context, query models.AvailabilityQuery) ([]models.Slot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("availabilityUsecase.Resolve called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, query.ProviderID),
		zap.String(constvars.LoggingBookingDateKey, query.Date),
	)

	template := slots.GenerateDayTemplate()
	if len(template) == 0 {
		// Template generation has no external dependency; an empty
		// template is a programming error, not a runtime condition.
		panic("slots: day template is empty")
	}

	occupied := uc.ConflictIndex.OccupiedTimes(ctx, query.ProviderID, query.Date)

	record, err := uc.UnavailabilityRepository.FindByProviderID(ctx, query.ProviderID)
	if err != nil {
		uc.Log.Warn("availabilityUsecase.Resolve calendar lookup failed, treating provider as having no exclusions",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProviderIDKey, query.ProviderID),
			zap.Error(err),
		)
		record = nil
	}

	fullDayBlocked := record.IsDateFullyUnavailable(query.Date)

	for i := range template {
		slot := &template[i]

		_, slot.IsOccupied = occupied[slot.StorageTime]

		isPast := utils.IsSlotInPast(query.Date, slot.StorageTime, query.Now)
		blocked := record.IsTimeUnavailable(query.Date, slot.StorageTime)

		slot.IsBookable = !slot.IsOccupied && !isPast && !blocked
		if fullDayBlocked {
			slot.IsBookable = false
		}
	}

	uc.Log.Info("availabilityUsecase.Resolve succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, query.ProviderID),
		zap.String(constvars.LoggingBookingDateKey, query.Date),
		zap.Int(constvars.LoggingSlotCountKey, len(template)),
		zap.Int(constvars.LoggingOccupiedCountKey, len(occupied)),
	)
	return template, nil
}
