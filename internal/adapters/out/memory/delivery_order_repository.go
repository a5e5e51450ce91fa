package memory

import (
	"context"
	"slices"

	"parcelhub/internal/core/domain/model/deliveryorder"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
)

type DeliveryOrderRepository struct {
	store *Store
	tx    *UnitOfWork
}

func NewDeliveryOrderRepository(store *Store) *DeliveryOrderRepository {
	return &DeliveryOrderRepository{store: store}
}

func (r *DeliveryOrderRepository) Add(ctx context.Context, order *deliveryorder.DeliveryOrder) error {
	if err := order.Validate(); err != nil {
		return err
	}
	if r.tx == nil {
		return autocommit(ctx, r.store, func(uow *UnitOfWork) error {
			return (&DeliveryOrderRepository{store: r.store, tx: uow}).Add(ctx, order)
		})
	}

	id := order.ID().String()
	if _, ok := r.lookup(id); ok {
		return errs.NewObjectAlreadyExistsError("deliveryOrder", id)
	}
	r.tx.changes.orders[id] = order.Snapshot()
	r.tx.changes.newOrders = append(r.tx.changes.newOrders, id)
	return nil
}

func (r *DeliveryOrderRepository) Update(ctx context.Context, order *deliveryorder.DeliveryOrder) error {
	if err := order.Validate(); err != nil {
		return err
	}
	if r.tx == nil {
		return autocommit(ctx, r.store, func(uow *UnitOfWork) error {
			return (&DeliveryOrderRepository{store: r.store, tx: uow}).Update(ctx, order)
		})
	}

	id := order.ID().String()
	if _, ok := r.lookup(id); !ok {
		return errs.NewObjectNotFoundError("deliveryOrder", id)
	}
	r.tx.changes.orders[id] = order.Snapshot()
	return nil
}

func (r *DeliveryOrderRepository) Get(_ context.Context, id kernel.UUID) (*deliveryorder.DeliveryOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	unlock := r.rlock()
	defer unlock()

	snap, ok := r.lookup(id.String())
	if !ok {
		return nil, errs.NewObjectNotFoundError("deliveryOrder", id.String())
	}
	return deliveryorder.RestoreDeliveryOrder(snap)
}

func (r *DeliveryOrderRepository) List(_ context.Context, vendorID string) ([]*deliveryorder.DeliveryOrder, error) {
	unlock := r.rlock()
	defer unlock()

	ids := r.store.orderOrder
	if r.tx != nil {
		ids = append(slices.Clone(ids), r.tx.changes.newOrders...)
	}

	orders := make([]*deliveryorder.DeliveryOrder, 0, len(ids))
	for _, id := range ids {
		snap, ok := r.lookup(id)
		if !ok || (vendorID != "" && snap.VendorID != vendorID) {
			continue
		}
		order, err := deliveryorder.RestoreDeliveryOrder(snap)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	slices.SortStableFunc(orders, func(a, b *deliveryorder.DeliveryOrder) int {
		return a.OrderDate().Compare(b.OrderDate())
	})
	return orders, nil
}

func (r *DeliveryOrderRepository) rlock() func() {
	if r.tx != nil {
		return func() {}
	}
	r.store.mu.RLock()
	return r.store.mu.RUnlock
}

func (r *DeliveryOrderRepository) lookup(id string) (deliveryorder.Snapshot, bool) {
	if r.tx != nil {
		if snap, ok := r.tx.changes.orders[id]; ok {
			return snap, true
		}
	}
	snap, ok := r.store.orders[id]
	return snap, ok
}
