// Package postgres provides the GORM-based Unit of Work over the parcel, delivery order
// and outbox tables.
//
// A unit of work tracks every parcel its repositories add or update. On Commit the
// events recorded by those parcels are written to the outbox table inside the same
// transaction, so a state change and its notification are stored together or not at all.
//
// Usage:
//
//	factory := postgres.NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	p, err := uow.ParcelRepository().Get(ctx, id) // row stays locked until Commit
//	if err != nil {
//	    return err
//	}
//	if _, err := p.Advance(); err != nil {
//	    return err
//	}
//	if err := uow.ParcelRepository().Update(ctx, p); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance holds at most one transaction; do not share it between goroutines
//   - Parcel reads inside a transaction use SELECT ... FOR UPDATE, serialising concurrent
//     status changes of the same parcel
//   - Repositories obtained before Begin keep using the plain connection
package postgres

import (
	"context"

	"parcelhub/internal/adapters/out/postgres/deliveryorderrepo"
	"parcelhub/internal/adapters/out/postgres/outboxrepo"
	"parcelhub/internal/adapters/out/postgres/parcelrepo"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// eventSource is implemented by aggregates whose events go to the outbox.
type eventSource interface {
	Events() []parcel.DomainEvent
	ClearEvents()
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := postgres.Open(dsn)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	factory := postgres.NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state and tracked aggregates.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and the outbox writes that go
// with it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin opens a transaction. Multiple calls on the same instance do not nest.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Commit writes the pending events of tracked parcels to the outbox and commits.
// If anything fails the transaction is rolled back and the parcels keep their events.
//
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	sources, messages, err := uow.pendingMessages()
	if err == nil {
		err = outboxrepo.NewGormOutboxRepository(uow.tx, true).Append(ctx, messages)
	}
	if err != nil {
		_ = uow.tx.Rollback().Error
		uow.reset()
		return err
	}

	if err := uow.tx.Commit().Error; err != nil {
		uow.reset()
		return err
	}

	for _, source := range sources {
		source.ClearEvents()
	}
	uow.reset()
	return nil
}

// Rollback discards the transaction.
//
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.reset()
	return err
}

// ParcelRepository runs inside the current transaction if one is active, otherwise
// each call executes on its own.
func (uow *GormUnitOfWork) ParcelRepository() ports.ParcelRepository {
	return parcelrepo.NewGormParcelRepository(uow.conn(), uow, uow.tx != nil)
}

func (uow *GormUnitOfWork) DeliveryOrderRepository() ports.DeliveryOrderRepository {
	return deliveryorderrepo.NewGormDeliveryOrderRepository(uow.conn())
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn(), uow.tx != nil)
}

// TrackAggregate registers an aggregate as modified within this unit of work.
// Repositories call it after every successful Add or Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	for _, t := range uow.trackedAggregates {
		if t.Aggregate == aggregate {
			return
		}
	}
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) pendingMessages() ([]eventSource, []ports.OutboxMessage, error) {
	var (
		sources  []eventSource
		messages []ports.OutboxMessage
	)
	for _, t := range uow.trackedAggregates {
		source, ok := t.Aggregate.(eventSource)
		if !ok {
			continue
		}
		sources = append(sources, source)
		for _, event := range source.Events() {
			msg, err := ports.NewOutboxMessage(event)
			if err != nil {
				return nil, nil, err
			}
			messages = append(messages, msg)
		}
	}
	return sources, messages, nil
}

func (uow *GormUnitOfWork) reset() {
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
}
