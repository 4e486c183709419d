package bookings

import (
	"context"
	"errors"
	"fmt"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/app/services/core/slots"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type bookingUsecase struct {
	BookingRepository  contracts.BookingRepository
	ConflictIndex      contracts.BookingConflictIndex
	ProviderRepository contracts.ProviderRepository
	LockService        contracts.LockerService
	NotificationQueue  contracts.NotificationQueueService
	Clock              contracts.Clock
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

var (
	bookingUsecaseInstance contracts.BookingUsecase
	onceBookingUsecase     sync.Once
)

func NewBookingUsecase(
	bookingRepository contracts.BookingRepository,
	conflictIndex contracts.BookingConflictIndex,
	providerRepository contracts.ProviderRepository,
	lockService contracts.LockerService,
	notificationQueue contracts.NotificationQueueService,
	clock contracts.Clock,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BookingUsecase {
	onceBookingUsecase.Do(func() {
		instance := &bookingUsecase{
			BookingRepository:  bookingRepository,
			ConflictIndex:      conflictIndex,
			ProviderRepository: providerRepository,
			LockService:        lockService,
			NotificationQueue:  notificationQueue,
			Clock:              clock,
			InternalConfig:     internalConfig,
			Log:                logger,
		}
		bookingUsecaseInstance = instance
	})
	return bookingUsecaseInstance
}

// TryReserve is the only mutation path into the booking model. The
// check-then-write sequence runs under a per-(provider, date) redis lock
// to narrow the race window, and the mongo partial unique index rejects
// whichever racing write loses anyway, so conflicts surface even if the
// lock or the pre-check misses them.
func (uc *bookingUsecase) TryReserve(ctx context.Context, request *requests.CreateBooking) (*responses.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.TryReserve called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, request.ProviderID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.String(constvars.LoggingBookingDateKey, request.Date),
		zap.String(constvars.LoggingBookingTimeKey, request.Time),
	)

	if _, err := utils.ParseISODate(request.Date); err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	if !slots.IsWithinSessionHours(request.Time) {
		return nil, exceptions.ErrBookingOutsideSessionHours(nil)
	}

	lockKey := fmt.Sprintf(constvars.BookingLockKeyFormat, request.ProviderID, request.Date)
	lockExpiration := time.Duration(uc.InternalConfig.App.BookingLockTimeInSeconds) * time.Second
	acquired, lockValue, err := uc.LockService.TryLock(ctx, lockKey, lockExpiration)
	if err != nil {
		uc.Log.Error("bookingUsecase.TryReserve error acquiring booking lock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrBookingStoreUnavailable(err)
	}
	if !acquired {
		return nil, exceptions.ErrBookingLockNotAcquired(nil)
	}
	defer func() {
		if unlockErr := uc.LockService.Unlock(ctx, lockKey, lockValue); unlockErr != nil {
			uc.Log.Error("bookingUsecase.TryReserve error releasing booking lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(unlockErr),
			)
		}
	}()

	// Conflicts are re-derived at call time, never from a cached
	// resolver result.
	occupied := uc.ConflictIndex.OccupiedTimes(ctx, request.ProviderID, request.Date)
	if _, taken := occupied[request.Time]; taken {
		return nil, exceptions.ErrSlotAlreadyBooked(nil)
	}

	bookedDates := uc.ConflictIndex.BookedDatesForPatient(ctx, request.PatientID)
	if _, taken := bookedDates[request.Date]; taken {
		return nil, exceptions.ErrPatientAlreadyBookedThatDate(nil)
	}

	now := uc.Clock.Now().Unix()
	booking := &models.Booking{
		ID:          utils.GenerateBookingID(),
		ProviderID:  request.ProviderID,
		PatientID:   request.PatientID,
		Date:        request.Date,
		Time:        request.Time,
		Status:      models.BookingStatusPending,
		CreatedAt:   now,
		LastUpdated: now,
	}

	_, err = uc.BookingRepository.Insert(ctx, booking)
	if err != nil {
		uc.Log.Error("bookingUsecase.TryReserve error committing booking write",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, uc.classifyWriteError(err)
	}

	uc.Log.Info("bookingUsecase.TryReserve booking committed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, booking.ID),
	)

	// Fire-and-forget: notification failure never rolls back a
	// committed booking.
	if err := uc.NotificationQueue.PublishBookingCreated(ctx, booking); err != nil {
		uc.Log.Warn("bookingUsecase.TryReserve notification dispatch failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingIDKey, booking.ID),
			zap.Error(err),
		)
	}

	response := uc.buildBookingResponse(ctx, booking)
	return &response, nil
}

func (uc *bookingUsecase) FindAll(ctx context.Context, filter *requests.BookingQueryParams) ([]responses.Booking, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	total, err := uc.BookingRepository.CountByFilter(ctx, filter)
	if err != nil {
		uc.Log.Error("bookingUsecase.FindAll error counting bookings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	bookings, err := uc.BookingRepository.FindByFilter(ctx, filter)
	if err != nil {
		uc.Log.Error("bookingUsecase.FindAll error fetching bookings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	response := make([]responses.Booking, 0, len(bookings))
	for i := range bookings {
		response = append(response, uc.buildBookingResponse(ctx, &bookings[i]))
	}

	uc.Log.Info("bookingUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingBookingCountKey, len(response)),
	)
	return response, int(total), nil
}

func (uc *bookingUsecase) UpdateStatus(ctx context.Context, bookingID string, request *requests.UpdateBookingStatus) (*responses.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
		zap.String(constvars.LoggingBookingStatusKey, request.Status),
	)

	booking, err := uc.BookingRepository.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, exceptions.ErrBookingNotFound(nil)
	}

	nextStatus := models.BookingStatus(request.Status)
	if !booking.Status.CanTransitionTo(nextStatus) {
		return nil, exceptions.ErrInvalidStatusTransition(string(booking.Status), request.Status)
	}

	message := booking.Message
	if request.Note != "" {
		if message != "" {
			message += "; "
		}
		message += request.Note
	}

	updatedAt := uc.Clock.Now().Unix()
	if err := uc.BookingRepository.UpdateStatus(ctx, bookingID, nextStatus, message, updatedAt); err != nil {
		uc.Log.Error("bookingUsecase.UpdateStatus error updating booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingIDKey, bookingID),
			zap.Error(err),
		)
		return nil, err
	}

	booking.Status = nextStatus
	booking.Message = message
	booking.LastUpdated = updatedAt

	if err := uc.NotificationQueue.PublishBookingStatusChanged(ctx, booking); err != nil {
		uc.Log.Warn("bookingUsecase.UpdateStatus notification dispatch failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingIDKey, bookingID),
			zap.Error(err),
		)
	}

	response := uc.buildBookingResponse(ctx, booking)
	return &response, nil
}

func (uc *bookingUsecase) buildBookingResponse(ctx context.Context, booking *models.Booking) responses.Booking {
	providerName := constvars.ProviderPlaceholderDisplayName
	provider, err := uc.ProviderRepository.FindByID(ctx, booking.ProviderID)
	if err == nil && provider != nil {
		providerName = provider.DisplayName
	}

	return responses.Booking{
		ID:           booking.ID,
		ProviderID:   booking.ProviderID,
		ProviderName: providerName,
		PatientID:    booking.PatientID,
		Date:         booking.Date,
		Time:         booking.Time,
		DisplayTime:  utils.To12Hour(booking.Time),
		Status:       string(booking.Status),
		Message:      booking.Message,
		CreatedAt:    booking.CreatedAt,
		LastUpdated:  booking.LastUpdated,
	}
}

// classifyWriteError maps storage failures onto the fail-closed booking
// error taxonomy. Ambiguity always resolves toward rejecting the write.
func (uc *bookingUsecase) classifyWriteError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return exceptions.ErrBookingWriteTimeout(err)
	}

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusConflict {
		return exceptions.ErrSlotAlreadyBooked(err)
	}
	return exceptions.ErrBookingStoreUnavailable(err)
}
