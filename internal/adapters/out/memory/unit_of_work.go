package memory

import (
	"context"

	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/ports"
)

type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages writes and applies them, together with the outbox messages of every
// tracked parcel, when Commit is called.
type UnitOfWork struct {
	store   *Store
	active  bool
	changes *changeSet
	tracked []*parcel.Parcel
}

// Begin takes the store's write lock. Calling it twice is harmless.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.active {
		return nil
	}
	uow.store.mu.Lock()
	uow.active = true
	uow.changes = newChangeSet()
	uow.tracked = nil
	return nil
}

func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	messages, err := collectOutboxMessages(uow.tracked)
	if err != nil {
		return err
	}

	uow.store.apply(uow.changes, messages)
	for _, p := range uow.tracked {
		p.ClearEvents()
	}
	uow.finish()
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}
	uow.finish()
	return nil
}

func (uow *UnitOfWork) ParcelRepository() ports.ParcelRepository {
	if uow.active {
		return &ParcelRepository{store: uow.store, tx: uow}
	}
	return NewParcelRepository(uow.store)
}

func (uow *UnitOfWork) DeliveryOrderRepository() ports.DeliveryOrderRepository {
	if uow.active {
		return &DeliveryOrderRepository{store: uow.store, tx: uow}
	}
	return NewDeliveryOrderRepository(uow.store)
}

func (uow *UnitOfWork) OutboxRepository() ports.OutboxRepository {
	if uow.active {
		return &OutboxRepository{store: uow.store, tx: uow}
	}
	return NewOutboxRepository(uow.store)
}

func (uow *UnitOfWork) track(p *parcel.Parcel) {
	for _, t := range uow.tracked {
		if t == p {
			return
		}
	}
	uow.tracked = append(uow.tracked, p)
}

func (uow *UnitOfWork) finish() {
	uow.active = false
	uow.changes = nil
	uow.tracked = nil
	uow.store.mu.Unlock()
}

func collectOutboxMessages(tracked []*parcel.Parcel) ([]ports.OutboxMessage, error) {
	var messages []ports.OutboxMessage
	for _, p := range tracked {
		for _, event := range p.Events() {
			msg, err := ports.NewOutboxMessage(event)
			if err != nil {
				return nil, err
			}
			messages = append(messages, msg)
		}
	}
	return messages, nil
}

// autocommit runs fn in its own unit of work, for repositories used without Begin.
func autocommit(ctx context.Context, store *Store, fn func(uow *UnitOfWork) error) error {
	uow := &UnitOfWork{store: store}
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(uow); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
