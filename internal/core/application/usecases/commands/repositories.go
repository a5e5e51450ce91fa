// Package commands contains the operations that change parcels and delivery orders.
// Every handler validates its command, opens a unit of work, applies the change through
// the aggregate and commits; the deferred Rollback is a no-op after Commit.
package commands

import (
	"context"

	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	DeliveryOrderRepoFactory interface {
		DeliveryOrderRepository() ports.DeliveryOrderRepository
	}

	// ParcelUoW is used by commands that only change parcels.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
	}

	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// DeliveryOrderUoW is used by commands that only change delivery orders.
	DeliveryOrderUoW interface {
		TxManager
		DeliveryOrderRepoFactory
	}

	DeliveryOrderUoWFactory interface {
		Create() DeliveryOrderUoW
	}

	// UoW spans parcels and delivery orders, e.g. a vendor batch and the parcels it creates.
	UoW interface {
		TxManager
		ParcelRepoFactory
		DeliveryOrderRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}

	// OutboxUoW is used by the relay, which reads and marks outbox messages only.
	OutboxUoW interface {
		TxManager
		OutboxRepository() ports.OutboxRepository
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}

	// TrackingIDGenerator hands out candidate tracking codes. Clashes are detected by
	// the repository, not the generator.
	TrackingIDGenerator interface {
		Generate() (parcel.TrackingID, error)
	}
)
