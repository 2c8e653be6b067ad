package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"time"

	"cinetix/config"
	"cinetix/infras/kafka"
	"cinetix/infras/otel"
	"cinetix/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	TypeBookingCreated = "booking.created"
	TypeBookingDeleted = "booking.deleted"
)

// BookingEvent is the payload published on booking lifecycle changes.
type BookingEvent struct {
	Type          string    `json:"type"`
	BookingID     string    `json:"booking_id"`
	MovieID       string    `json:"movie_id,omitempty"`
	CustomerEmail string    `json:"customer_email,omitempty"`
	NumberOfSeats int       `json:"number_of_seats,omitempty"`
	TotalPrice    float64   `json:"total_price,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type Publisher interface {
	PublishBookingEvent(ctx context.Context, event BookingEvent)
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func NewPublisher(client kafka.Client, cfg *config.Config, otl otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
		otel:   otl,
	}
}

// PublishBookingEvent is fire-and-forget: delivery failures are logged, never
// surfaced to the request that triggered them.
func (p *publisherImpl) PublishBookingEvent(ctx context.Context, event BookingEvent) {
	if !p.cfg.External.Kafka.Enable {
		return
	}

	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".PublishBookingEvent")
	defer scope.End()

	message := kafka.Message{
		Key:   event.BookingID,
		Value: event,
	}

	if err := p.client.SendMessages(ctx, p.cfg.External.Kafka.BookingTopic, message); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("type", event.Type).Str("booking_id", event.BookingID).Msg("failed to publish booking event")
	}
}
