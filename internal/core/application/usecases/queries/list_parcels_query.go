package queries

import (
	"errors"
	"strings"

	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/pkg/guard"
)

var ErrListParcelsQueryIsNotConstructed = errors.New(
	"ListParcelsQuery must be created via NewListParcelsQuery constructor",
)

// ListParcelsQuery returns parcels in creation order, optionally narrowed by a search
// term and exact-match filters.
//
// Example:
//
//	query, _ := NewListParcelsQuery(ports.ParcelFilter{Search: "asha"})
//	parcels, err := handler.Handle(ctx, query)
type ListParcelsQuery struct {
	filter ports.ParcelFilter

	guard guard.ConstructorGuard
}

func NewListParcelsQuery(filter ports.ParcelFilter) (ListParcelsQuery, error) {
	for _, s := range filter.Statuses {
		if err := s.Validate(); err != nil {
			return ListParcelsQuery{}, err
		}
	}

	filter.Search = strings.TrimSpace(filter.Search)
	filter.DriverID = strings.TrimSpace(filter.DriverID)
	filter.CustomerID = strings.TrimSpace(filter.CustomerID)
	filter.VendorID = strings.TrimSpace(filter.VendorID)
	filter.Statuses = append([]parcel.Status(nil), filter.Statuses...)

	return ListParcelsQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q ListParcelsQuery) Validate() error {
	return q.guard.Validate(ErrListParcelsQueryIsNotConstructed)
}

func (q ListParcelsQuery) Filter() ports.ParcelFilter {
	return q.filter
}
