package queries

import (
	"errors"
	"strings"

	"parcelhub/internal/pkg/guard"
)

var ErrListDeliveryOrdersQueryIsNotConstructed = errors.New(
	"ListDeliveryOrdersQuery must be created via NewListDeliveryOrdersQuery constructor",
)

// ListDeliveryOrdersQuery lists vendor batches; an empty vendor ID lists all of them.
type ListDeliveryOrdersQuery struct {
	vendorID string

	guard guard.ConstructorGuard
}

func NewListDeliveryOrdersQuery(vendorID string) ListDeliveryOrdersQuery {
	return ListDeliveryOrdersQuery{vendorID: strings.TrimSpace(vendorID), guard: guard.NewConstructorGuard()}
}

func (q ListDeliveryOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveryOrdersQueryIsNotConstructed)
}

func (q ListDeliveryOrdersQuery) VendorID() string {
	return q.vendorID
}
