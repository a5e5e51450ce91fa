package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories returned after Begin run
// inside the transaction. Commit also writes the events recorded on every parcel the
// repositories touched to the outbox.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit returns an error if no transaction is active.
	Commit(ctx context.Context) error

	// Rollback returns an error if no transaction is active; callers defer it and
	// ignore the result after a successful Commit.
	Rollback(ctx context.Context) error

	ParcelRepository() ParcelRepository
	DeliveryOrderRepository() DeliveryOrderRepository
	OutboxRepository() OutboxRepository
}
