package event

//go:generate go run go.uber.org/mock/mockgen -source=./publisher.go -destination=../mocks/publisher_mock.go -package=mocks

import (
	"context"
	"time"

	"innkeep/config"
	"innkeep/infras/kafka"
	"innkeep/infras/otel"
	"innkeep/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	defaultTopicBookingCreated   = "booking.created"
	defaultTopicBookingCancelled = "booking.cancelled"
)

// BookingEvent is the payload published when a booking is created or
// cancelled, consumed by the notification services (email/SMS senders).
type BookingEvent struct {
	BookingID    string    `json:"booking_id"`
	RoomID       string    `json:"room_id"`
	GuestName    string    `json:"guest_name"`
	GuestContact string    `json:"guest_contact"`
	CheckInDate  time.Time `json:"check_in_date"`
	CheckOutDate time.Time `json:"check_out_date"`
	Status       string    `json:"status"`
	Reason       string    `json:"reason,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// Publisher is the notification hook. Delivery is fire-and-forget: publish
// failures are logged and never propagate to the booking write that
// triggered them.
type Publisher interface {
	BookingCreated(ctx context.Context, evt BookingEvent)
	BookingCancelled(ctx context.Context, evt BookingEvent)
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func NewPublisher(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (p *publisherImpl) BookingCreated(ctx context.Context, evt BookingEvent) {
	topic := p.cfg.Kafka.Topics.BookingCreated
	if topic == constant.Empty {
		topic = defaultTopicBookingCreated
	}

	p.publish(ctx, topic, evt)
}

func (p *publisherImpl) BookingCancelled(ctx context.Context, evt BookingEvent) {
	topic := p.cfg.Kafka.Topics.BookingCancelled
	if topic == constant.Empty {
		topic = defaultTopicBookingCancelled
	}

	p.publish(ctx, topic, evt)
}

func (p *publisherImpl) publish(ctx context.Context, topic string, evt BookingEvent) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".booking.publish")
	defer scope.End()

	message := kafka.Message{
		Key:   evt.BookingID,
		Value: evt,
	}

	if err := p.client.SendMessages(ctx, topic, message); err != nil {
		scope.TraceError(err)
		log.Error().
			Err(err).
			Str("topic", topic).
			Str("bookingID", evt.BookingID).
			Msg("failed to publish booking event, notification dropped")
	}
}
