package notificationqueue

import (
	"context"
	"errors"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	BookingCreatedKind       = "booking.created"
	BookingStatusChangedKind = "booking.status_changed"
)

// NotificationMessage is the payload stored in RabbitMQ for downstream
// notification consumers (push, e-mail, SMS).
type NotificationMessage struct {
	Kind       string `json:"kind"`
	BookingID  string `json:"booking_id"`
	ProviderID string `json:"provider_id"`
	PatientID  string `json:"patient_id"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Status     string `json:"status"`
}

type queueService struct {
	ch        *amqp.Channel
	log       *zap.Logger
	queueName string
	confirms  chan amqp.Confirmation
	mu        sync.Mutex
}

var (
	notificationQueueInstance contracts.NotificationQueueService
	onceNotificationQueue     sync.Once
	initErr                   error
)

// NewService declares the notification queue, enables publisher
// confirms, and returns the singleton queue service. Durability is a
// deploy-time choice so local setups can run with a throwaway queue.
func NewService(conn *amqp.Connection, log *zap.Logger, queueName string, durable bool) (contracts.NotificationQueueService, error) {
	onceNotificationQueue.Do(func() {
		ch, err := conn.Channel()
		if err != nil {
			initErr = err
			return
		}

		_, err = ch.QueueDeclare(
			queueName, // name
			durable,   // durable
			false,     // autoDelete
			false,     // exclusive
			false,     // noWait
			nil,       // args
		)
		if err != nil {
			initErr = err
			return
		}

		if err := ch.Confirm(false); err != nil {
			initErr = err
			return
		}

		notificationQueueInstance = &queueService{
			ch:        ch,
			log:       log,
			queueName: queueName,
			confirms:  ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
		}
	})
	return notificationQueueInstance, initErr
}

func (s *queueService) PublishBookingCreated(ctx context.Context, booking *models.Booking) error {
	return s.publish(ctx, BookingCreatedKind, booking)
}

func (s *queueService) PublishBookingStatusChanged(ctx context.Context, booking *models.Booking) error {
	return s.publish(ctx, BookingStatusChangedKind, booking)
}

func (s *queueService) publish(ctx context.Context, kind string, booking *models.Booking) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("notificationQueue.publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNotificationKindKey, kind),
		zap.String(constvars.LoggingQueueNameKey, s.queueName),
	)

	body, err := json.Marshal(NotificationMessage{
		Kind:       kind,
		BookingID:  booking.ID,
		ProviderID: booking.ProviderID,
		PatientID:  booking.PatientID,
		Date:       booking.Date,
		Time:       booking.Time,
		Status:     string(booking.Status),
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := s.ch.PublishWithContext(ctx, "", s.queueName, false, false, msg); err != nil {
		return exceptions.ErrQueuePublish(err)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrQueuePublish(errors.New(constvars.ErrDevQueueConfirmAbsent))
		}
	case <-ctx.Done():
		return exceptions.ErrQueuePublish(ctx.Err())
	}
	return nil
}
