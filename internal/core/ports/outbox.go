package ports

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
)

// OutboxMessage is a parcel event stored in the same transaction as the parcel change
// and relayed to subscribers afterwards.
type OutboxMessage struct {
	ID          kernel.UUID
	EventName   string
	AggregateID kernel.UUID
	Payload     []byte
	OccurredAt  time.Time
}

// NewOutboxMessage encodes event as JSON.
func NewOutboxMessage(event parcel.DomainEvent) (OutboxMessage, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return OutboxMessage{}, fmt.Errorf("encode %s event: %w", event.EventName(), err)
	}
	return OutboxMessage{
		ID:          kernel.NewUUID(),
		EventName:   event.EventName(),
		AggregateID: event.AggregateID(),
		Payload:     payload,
		OccurredAt:  event.OccurredAt(),
	}, nil
}

// OutboxRepository reads and acknowledges stored events. Writing happens inside
// UnitOfWork.Commit from the events recorded on tracked parcels.
type OutboxRepository interface {
	// FetchPending returns up to limit unsent messages, oldest first.
	FetchPending(ctx context.Context, limit int) ([]OutboxMessage, error)

	MarkSent(ctx context.Context, id kernel.UUID, sentAt time.Time) error
}

// EventPublisher delivers an outbox message to subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, msg OutboxMessage) error
	Close() error
}
