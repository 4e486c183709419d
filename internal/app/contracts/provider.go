package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/responses"
)

type ProviderRepository interface {
	FindByID(ctx context.Context, providerID string) (*models.Provider, error)
}

// UnavailabilityRepository reads provider-authored blackout calendars.
// A (nil, nil) result means the provider has no record, which callers
// must treat as "no declared exclusions".
type UnavailabilityRepository interface {
	FindByProviderID(ctx context.Context, providerID string) (*models.UnavailabilityRecord, error)
}

type ProviderUsecase interface {
	FindByID(ctx context.Context, providerID string) (*responses.Provider, error)
	GetUnavailability(ctx context.Context, providerID string) (*responses.Unavailability, error)
}
