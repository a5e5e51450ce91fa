package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var ErrAdvanceDeliveryOrderCommandIsNotConstructed = errors.New(
	"AdvanceDeliveryOrderCommand must be created via NewAdvanceDeliveryOrderCommand constructor",
)

// AdvanceDeliveryOrderCommand moves a vendor batch to its next status.
type AdvanceDeliveryOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAdvanceDeliveryOrderCommand(orderID kernel.UUID) (AdvanceDeliveryOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AdvanceDeliveryOrderCommand{}, err
	}
	return AdvanceDeliveryOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c AdvanceDeliveryOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveryOrderCommandIsNotConstructed)
}

func (c AdvanceDeliveryOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
