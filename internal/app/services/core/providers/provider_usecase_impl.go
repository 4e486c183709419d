package providers

import (
	"context"
	"fmt"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/responses"
	"sort"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type providerUsecase struct {
	ProviderRepository       contracts.ProviderRepository
	UnavailabilityRepository contracts.UnavailabilityRepository
	RedisRepository          contracts.RedisRepository
	Log                      *zap.Logger
}

var (
	providerUsecaseInstance contracts.ProviderUsecase
	onceProviderUsecase     sync.Once
)

func NewProviderUsecase(
	providerRepository contracts.ProviderRepository,
	unavailabilityRepository contracts.UnavailabilityRepository,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
) contracts.ProviderUsecase {
	onceProviderUsecase.Do(func() {
		instance := &providerUsecase{
			ProviderRepository:       providerRepository,
			UnavailabilityRepository: unavailabilityRepository,
			RedisRepository:          redisRepository,
			Log:                      logger,
		}
		providerUsecaseInstance = instance
	})
	return providerUsecaseInstance
}

// FindByID enriches responses for display only and never blocks
// scheduling: directory failures degrade to a placeholder identity.
// Hits populate a short-TTL redis cache keyed by provider ID; cache
// failures on either side fall through to the directory.
func (uc *providerUsecase) FindByID(ctx context.Context, providerID string) (*responses.Provider, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("providerUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, providerID),
	)

	cacheKey := fmt.Sprintf(constvars.ProviderProfileCacheKeyFormat, providerID)
	if cached, cacheErr := uc.RedisRepository.Get(ctx, cacheKey); cacheErr == nil && cached != "" {
		var profile responses.Provider
		if unmarshalErr := json.Unmarshal([]byte(cached), &profile); unmarshalErr == nil {
			return &profile, nil
		}
	}

	provider, err := uc.ProviderRepository.FindByID(ctx, providerID)
	if err != nil || provider == nil {
		if err != nil {
			uc.Log.Warn("providerUsecase.FindByID directory lookup failed, substituting placeholder",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingProviderIDKey, providerID),
				zap.Error(err),
			)
		}
		return &responses.Provider{
			ID:             providerID,
			DisplayName:    constvars.ProviderPlaceholderDisplayName,
			Specialization: constvars.ProviderPlaceholderSpecialization,
		}, nil
	}

	profile := &responses.Provider{
		ID:             provider.ID,
		DisplayName:    provider.DisplayName,
		Specialization: provider.Specialization,
	}

	cacheTTL := constvars.ProviderProfileCacheTTLInMinutes * time.Minute
	if cacheErr := uc.RedisRepository.Set(ctx, cacheKey, profile, cacheTTL); cacheErr != nil {
		uc.Log.Warn("providerUsecase.FindByID failed caching provider profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProviderIDKey, providerID),
			zap.Error(cacheErr),
		)
	}

	return profile, nil
}

func (uc *providerUsecase) GetUnavailability(ctx context.Context, providerID string) (*responses.Unavailability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("providerUsecase.GetUnavailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, providerID),
	)

	record, err := uc.UnavailabilityRepository.FindByProviderID(ctx, providerID)
	if err != nil {
		uc.Log.Error("providerUsecase.GetUnavailability error fetching unavailability record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := &responses.Unavailability{
		ProviderID: providerID,
		Dates:      []responses.DateUnavailability{},
	}
	if record == nil {
		return response, nil
	}

	for date, entry := range record.Dates {
		response.Dates = append(response.Dates, responses.DateUnavailability{
			Date:             date,
			FullyUnavailable: entry.FullyUnavailable,
			UnavailableTimes: entry.Times,
		})
	}
	sort.Slice(response.Dates, func(i, j int) bool {
		return response.Dates[i].Date < response.Dates[j].Date
	})

	return response, nil
}
