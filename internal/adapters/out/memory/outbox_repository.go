package memory

import (
	"context"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/pkg/errs"
)

type OutboxRepository struct {
	store *Store
	tx    *UnitOfWork
}

func NewOutboxRepository(store *Store) *OutboxRepository {
	return &OutboxRepository{store: store}
}

// FetchPending returns committed messages that are not yet sent, oldest first.
func (r *OutboxRepository) FetchPending(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	if r.tx == nil {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}

	messages := make([]ports.OutboxMessage, 0)
	for _, msg := range r.store.outbox {
		if limit > 0 && len(messages) >= limit {
			break
		}
		if r.tx != nil {
			if _, staged := r.tx.changes.sent[msg.ID.String()]; staged {
				continue
			}
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func (r *OutboxRepository) MarkSent(ctx context.Context, id kernel.UUID, sentAt time.Time) error {
	if r.tx == nil {
		return autocommit(ctx, r.store, func(uow *UnitOfWork) error {
			return (&OutboxRepository{store: r.store, tx: uow}).MarkSent(ctx, id, sentAt)
		})
	}

	for _, msg := range r.store.outbox {
		if msg.ID.IsEqual(id) {
			r.tx.changes.sent[id.String()] = sentAt.UTC()
			return nil
		}
	}
	return errs.NewObjectNotFoundError("outboxMessage", id.String())
}
