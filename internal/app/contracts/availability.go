package contracts

import (
	"context"
	"medibook-service/internal/app/models"
)

type AvailabilityUsecase interface {
	Resolve(ctx context.Context, query models.AvailabilityQuery) ([]models.Slot, error)
}
