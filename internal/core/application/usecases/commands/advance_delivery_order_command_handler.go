package commands

import (
	"context"

	"parcelhub/internal/core/domain/model/deliveryorder"
)

// AdvanceDeliveryOrderCommandHandler walks a batch through
// pending, processing, ready_for_pickup, picked_up and completed.
// Completed orders are returned unchanged.
type AdvanceDeliveryOrderCommandHandler struct {
	uowFactory DeliveryOrderUoWFactory
}

func NewAdvanceDeliveryOrderCommandHandler(uowFactory DeliveryOrderUoWFactory) AdvanceDeliveryOrderCommandHandler {
	return AdvanceDeliveryOrderCommandHandler{uowFactory: uowFactory}
}

func (h AdvanceDeliveryOrderCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceDeliveryOrderCommand,
) (*deliveryorder.DeliveryOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryOrderRepository()
	order, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !order.Advance() {
		return order, nil
	}

	if err = repo.Update(ctx, order); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return order, nil
}
