package queries

import (
	"context"

	"parcelhub/internal/core/domain/model/deliveryorder"
)

type ListDeliveryOrdersQueryHandler struct {
	reader DeliveryOrderReader
}

func NewListDeliveryOrdersQueryHandler(reader DeliveryOrderReader) ListDeliveryOrdersQueryHandler {
	return ListDeliveryOrdersQueryHandler{reader: reader}
}

func (h ListDeliveryOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListDeliveryOrdersQuery,
) ([]*deliveryorder.DeliveryOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.reader.List(ctx, query.VendorID())
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = make([]*deliveryorder.DeliveryOrder, 0)
	}
	return orders, nil
}
