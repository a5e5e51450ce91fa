// Package kafka relays outbox messages to a Kafka topic. Messages are keyed by parcel ID,
// so every event of one parcel lands on the same partition in order.
package kafka

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"parcelhub/internal/core/ports"

	"github.com/IBM/sarama"
)

const (
	HeaderEventName = "event-name"
	HeaderMessageID = "message-id"
)

// Publisher implements ports.EventPublisher on a sarama.SyncProducer.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewSaramaPublisher connects a synchronous producer to brokers, a comma-separated list.
func NewSaramaPublisher(brokers, topic string, logger *slog.Logger) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Retry.Backoff = 100 * time.Millisecond
	config.Producer.Return.Successes = true
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1
	config.Net.DialTimeout = 10 * time.Second

	brokerList := strings.Split(brokers, ",")
	producer, err := sarama.NewSyncProducer(brokerList, config)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	logger.Info("kafka producer ready", "brokers", brokerList, "topic", topic)
	return NewPublisher(producer, topic, logger), nil
}

func NewPublisher(producer sarama.SyncProducer, topic string, logger *slog.Logger) *Publisher {
	return &Publisher{producer: producer, topic: topic, logger: logger}
}

func (p *Publisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(msg.AggregateID.String()),
		Value: sarama.ByteEncoder(msg.Payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte(HeaderEventName), Value: []byte(msg.EventName)},
			{Key: []byte(HeaderMessageID), Value: []byte(msg.ID.String())},
		},
		Timestamp: msg.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("publish %s for parcel %s: %w", msg.EventName, msg.AggregateID, err)
	}

	p.logger.Debug("event published",
		"event", msg.EventName,
		"parcelId", msg.AggregateID.String(),
		"partition", partition,
		"offset", offset,
	)
	return nil
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}

// LogPublisher writes events to the log instead of a broker. It stands in when no
// Kafka host is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	p.logger.InfoContext(ctx, "parcel event",
		"event", msg.EventName,
		"parcelId", msg.AggregateID.String(),
		"messageId", msg.ID.String(),
		"payload", string(msg.Payload),
	)
	return nil
}

func (p *LogPublisher) Close() error { return nil }
