package contracts

import (
	"context"
	"medibook-service/internal/app/models"
)

// NotificationQueueService dispatches booking events to interested
// consumers. Dispatch is fire-and-forget from the booking write path: a
// publish failure must never roll back or fail the booking itself.
type NotificationQueueService interface {
	PublishBookingCreated(ctx context.Context, booking *models.Booking) error
	PublishBookingStatusChanged(ctx context.Context, booking *models.Booking) error
}
