// Package events publishes product change events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/MKhiriev/go-catalog/internal/config"
	"github.com/MKhiriev/go-catalog/internal/logger"
	"github.com/MKhiriev/go-catalog/models"
)

const writeTimeout = 5 * time.Second

//go:generate mockgen -source=publisher.go -destination=../mock/events_mock.go -package=mock

// Publisher delivers product events.
type Publisher interface {
	PublishProductEvent(ctx context.Context, event models.ProductEvent) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes events as JSON messages keyed by product id.
type KafkaPublisher struct {
	writer messageWriter
	topic  string
	logger *logger.Logger
}

// NewPublisher returns a Kafka publisher when brokers are configured and a
// no-op publisher otherwise.
func NewPublisher(cfg config.Events, log *logger.Logger) Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		log.Info().Str("func", "events.NewPublisher").Msg("no kafka brokers configured, product events are disabled")
		return NopPublisher{}
	}

	log.Info().Str("func", "events.NewPublisher").Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.Topic).Msg("publishing product events")
	p := &KafkaPublisher{
		topic:  cfg.Topic,
		logger: log,
	}
	p.writer = &kafka.Writer{
		Addr:                   kafka.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		WriteTimeout:           writeTimeout,
		Async:                  true,
		Completion:             p.completion,
	}
	return p
}

// completion reports the outcome of an asynchronous batch write.
func (p *KafkaPublisher) completion(messages []kafka.Message, err error) {
	if err != nil {
		p.logger.Err(err).Str("func", "*KafkaPublisher.completion").
			Str("topic", p.topic).
			Int("messages", len(messages)).
			Msg("error delivering product events")
		return
	}

	p.logger.Debug().Str("func", "*KafkaPublisher.completion").
		Str("topic", p.topic).
		Int("messages", len(messages)).
		Msg("product events delivered")
}

// PublishProductEvent hands the event to the writer. The Kafka writer is
// asynchronous, so delivery errors surface in completion, not here.
func (p *KafkaPublisher) PublishProductEvent(ctx context.Context, event models.ProductEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingEvent, err)
	}

	msg := kafka.Message{
		Key:   []byte(event.ProductID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
		},
		Time: event.OccurredAt,
	}

	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: %w", ErrPublishingEvent, err)
	}

	logger.FromContext(ctx).Debug().Str("func", "*KafkaPublisher.PublishProductEvent").
		Str("topic", p.topic).
		Str("type", event.Type).
		Msg("product event queued")
	return nil
}

// Close flushes pending messages and releases the writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher discards every event.
type NopPublisher struct{}

func (NopPublisher) PublishProductEvent(context.Context, models.ProductEvent) error { return nil }

func (NopPublisher) Close() error { return nil }
