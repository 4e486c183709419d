package availability

import (
	"context"
	"errors"
	"medibook-service/internal/app/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockBookingConflictIndex struct {
	mock.Mock
}

func (m *MockBookingConflictIndex) OccupiedTimes(ctx context.Context, providerID, date string) map[string]struct{} {
	args := m.Called(ctx, providerID, date)
	return args.Get(0).(map[string]struct{})
}

func (m *MockBookingConflictIndex) BookedDatesForPatient(ctx context.Context, patientID string) map[string]struct{} {
	args := m.Called(ctx, patientID)
	return args.Get(0).(map[string]struct{})
}

type MockUnavailabilityRepository struct {
	mock.Mock
}

func (m *MockUnavailabilityRepository) FindByProviderID(ctx context.Context, providerID string) (*models.UnavailabilityRecord, error) {
	args := m.Called(ctx, providerID)
	if record, ok := args.Get(0).(*models.UnavailabilityRecord); ok {
		return record, args.Error(1)
	}
	return nil, args.Error(1)
}

func newAvailabilityFixture() (*availabilityUsecase, *MockBookingConflictIndex, *MockUnavailabilityRepository) {
	conflictIndex := new(MockBookingConflictIndex)
	unavailabilityRepository := new(MockUnavailabilityRepository)
	usecase := &availabilityUsecase{
		ConflictIndex:            conflictIndex,
		UnavailabilityRepository: unavailabilityRepository,
		Log:                      zap.NewNop(),
	}
	return usecase, conflictIndex, unavailabilityRepository
}

func slotByTime(t *testing.T, resolved []models.Slot, storageTime string) models.Slot {
	t.Helper()
	for _, slot := range resolved {
		if slot.StorageTime == storageTime {
			return slot
		}
	}
	t.Fatalf("no slot with storage time %s", storageTime)
	return models.Slot{}
}

func TestAvailabilityUsecase_Resolve(t *testing.T) {
	// A morning instant on the day before the query date, so no slot is
	// ever in the past unless a test says otherwise.
	morningBefore := time.Date(2025, 6, 9, 8, 0, 0, 0, time.UTC)
	query := models.AvailabilityQuery{
		ProviderID: "provider-1",
		Date:       "2025-06-10",
		Now:        morningBefore,
	}

	t.Run("Free Day Yields Nineteen Bookable Slots", func(t *testing.T) {
		usecase, conflictIndex, unavailabilityRepository := newAvailabilityFixture()
		conflictIndex.On("OccupiedTimes", mock.Anything, "provider-1", "2025-06-10").Return(map[string]struct{}{})
		unavailabilityRepository.On("FindByProviderID", mock.Anything, "provider-1").Return(nil, nil)

		resolved, err := usecase.Resolve(context.Background(), query)

		assert.NoError(t, err)
		assert.Len(t, resolved, 19)
		for _, slot := range resolved {
			assert.True(t, slot.IsBookable, "slot %s", slot.StorageTime)
			assert.False(t, slot.IsOccupied, "slot %s", slot.StorageTime)
		}
	})

	t.Run("Occupied Slot Is Not Bookable", func(t *testing.T) {
		usecase, conflictIndex, unavailabilityRepository := newAvailabilityFixture()
		conflictIndex.On("OccupiedTimes", mock.Anything, "provider-1", "2025-06-10").Return(map[string]struct{}{"13:00": {}})
		unavailabilityRepository.On("FindByProviderID", mock.Anything, "provider-1").Return(nil, nil)

		resolved, err := usecase.Resolve(context.Background(), query)

		assert.NoError(t, err)
		blocked := slotByTime(t, resolved, "13:00")
		assert.True(t, blocked.IsOccupied)
		assert.False(t, blocked.IsBookable)
		assert.True(t, slotByTime(t, resolved, "12:30").IsBookable)
		assert.True(t, slotByTime(t, resolved, "13:30").IsBookable)
	})

	t.Run("Earlier Slots Today Are Not Bookable", func(t *testing.T) {
		usecase, conflictIndex, unavailabilityRepository := newAvailabilityFixture()
		conflictIndex.On("OccupiedTimes", mock.Anything, "provider-1", "2025-06-10").Return(map[string]struct{}{})
		unavailabilityRepository.On("FindByProviderID", mock.Anything, "provider-1").Return(nil, nil)

		sameDay := query
		sameDay.Now = time.Date(2025, 6, 10, 14, 15, 0, 0, time.UTC)
		resolved, err := usecase.Resolve(context.Background(), sameDay)

		assert.NoError(t, err)
		assert.False(t, slotByTime(t, resolved, "14:00").IsBookable)
		assert.False(t, slotByTime(t, resolved, "10:00").IsBookable)
		assert.True(t, slotByTime(t, resolved, "14:30").IsBookable)
		assert.True(t, slotByTime(t, resolved, "19:00").IsBookable)
	})

	t.Run("Blackout Times Are Not Bookable", func(t *testing.T) {
		usecase, conflictIndex, unavailabilityRepository := newAvailabilityFixture()
		conflictIndex.On("OccupiedTimes", mock.Anything, "provider-1", "2025-06-10").Return(map[string]struct{}{})
		unavailabilityRepository.On("FindByProviderID", mock.Anything, "provider-1").Return(&models.UnavailabilityRecord{
			ProviderID: "provider-1",
			Dates: map[string]models.DateUnavailability{
				"2025-06-10": {Times: []string{"11:00", "11:30"}},
			},
		}, nil)

		resolved, err := usecase.Resolve(context.Background(), query)

		assert.NoError(t, err)
		assert.False(t, slotByTime(t, resolved, "11:00").IsBookable)
		assert.False(t, slotByTime(t, resolved, "11:30").IsBookable)
		assert.True(t, slotByTime(t, resolved, "10:30").IsBookable)
		assert.True(t, slotByTime(t, resolved, "12:00").IsBookable)
	})

	t.Run("Full Day Blackout Blocks Every Slot", func(t *testing.T) {
		usecase, conflictIndex, unavailabilityRepository := newAvailabilityFixture()
		conflictIndex.On("OccupiedTimes", mock.Anything, "provider-1", "2025-06-10").Return(map[string]struct{}{})
		unavailabilityRepository.On("FindByProviderID", mock.Anything, "provider-1").Return(&models.UnavailabilityRecord{
			ProviderID: "provider-1",
			Dates: map[string]models.DateUnavailability{
				"2025-06-10": {FullyUnavailable: true, Times: []string{"13:00"}},
			},
		}, nil)

		resolved, err := usecase.Resolve(context.Background(), query)

		assert.NoError(t, err)
		assert.Len(t, resolved, 19)
		for _, slot := range resolved {
			assert.False(t, slot.IsBookable, "slot %s", slot.StorageTime)
		}
	})

	t.Run("Calendar Failure Means No Exclusions", func(t *testing.T) {
		usecase, conflictIndex, unavailabilityRepository := newAvailabilityFixture()
		conflictIndex.On("OccupiedTimes", mock.Anything, "provider-1", "2025-06-10").Return(map[string]struct{}{})
		unavailabilityRepository.On("FindByProviderID", mock.Anything, "provider-1").Return(nil, errors.New("connection refused"))

		resolved, err := usecase.Resolve(context.Background(), query)

		assert.NoError(t, err)
		for _, slot := range resolved {
			assert.True(t, slot.IsBookable, "slot %s", slot.StorageTime)
		}
	})

	t.Run("Slots Ascend And Resolution Is Repeatable", func(t *testing.T) {
		usecase, conflictIndex, unavailabilityRepository := newAvailabilityFixture()
		conflictIndex.On("OccupiedTimes", mock.Anything, "provider-1", "2025-06-10").Return(map[string]struct{}{"16:00": {}})
		unavailabilityRepository.On("FindByProviderID", mock.Anything, "provider-1").Return(nil, nil)

		first, err := usecase.Resolve(context.Background(), query)
		assert.NoError(t, err)
		second, err := usecase.Resolve(context.Background(), query)
		assert.NoError(t, err)

		assert.Equal(t, first, second)
		for i := 1; i < len(first); i++ {
			assert.Less(t, first[i-1].StorageTime, first[i].StorageTime)
		}
	})
}
