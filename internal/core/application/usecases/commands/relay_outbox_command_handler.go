package commands

import (
	"context"
	"fmt"
	"time"

	"parcelhub/internal/core/ports"
)

// RelayOutboxResult tells how far a relay run got.
type RelayOutboxResult struct {
	Published int
	Pending   int
}

// RelayOutboxCommandHandler publishes pending outbox messages in order and marks each
// one sent. No unit of work is open while a message is being published, so a slow broker
// never holds storage locks. Delivery is at least once: a message whose mark is lost is
// published again on the next run.
type RelayOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
	now        func() time.Time
}

func NewRelayOutboxCommandHandler(uowFactory OutboxUoWFactory, publisher ports.EventPublisher) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{uowFactory: uowFactory, publisher: publisher, now: time.Now}
}

// Handle stops at the first message that cannot be published so later events of the
// same parcel never overtake it. Messages published before the failure stay marked.
func (h RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (RelayOutboxResult, error) {
	if err := cmd.Validate(); err != nil {
		return RelayOutboxResult{}, err
	}

	messages, err := h.fetchPending(ctx, cmd.BatchSize())
	if err != nil {
		return RelayOutboxResult{}, err
	}

	result := RelayOutboxResult{Pending: len(messages)}
	for _, msg := range messages {
		if err = h.publisher.Publish(ctx, msg); err != nil {
			return result, fmt.Errorf("relay message %s: %w", msg.ID, err)
		}
		if err = h.markSent(ctx, msg); err != nil {
			return result, fmt.Errorf("mark message %s sent: %w", msg.ID, err)
		}
		result.Published++
		result.Pending--
	}

	return result, nil
}

func (h RelayOutboxCommandHandler) fetchPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.OutboxRepository().FetchPending(ctx, limit)
}

func (h RelayOutboxCommandHandler) markSent(ctx context.Context, msg ports.OutboxMessage) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OutboxRepository().MarkSent(ctx, msg.ID, h.now()); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
