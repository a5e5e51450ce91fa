package ports

import (
	"context"

	"parcelhub/internal/core/domain/model/deliveryorder"
	"parcelhub/internal/core/domain/model/kernel"
)

// DeliveryOrderRepository persists vendor batches.
type DeliveryOrderRepository interface {
	Add(ctx context.Context, order *deliveryorder.DeliveryOrder) error
	Update(ctx context.Context, order *deliveryorder.DeliveryOrder) error
	Get(ctx context.Context, id kernel.UUID) (*deliveryorder.DeliveryOrder, error)

	// List returns orders in order-date order. An empty vendorID lists every vendor.
	List(ctx context.Context, vendorID string) ([]*deliveryorder.DeliveryOrder, error)
}
