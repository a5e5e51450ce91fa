package queries

import (
	"errors"

	"parcelhub/internal/pkg/guard"
)

var ErrGetParcelStatsQueryIsNotConstructed = errors.New(
	"GetParcelStatsQuery must be created via NewGetParcelStatsQuery constructor",
)

// GetParcelStatsQuery summarises parcels, optionally for one vendor only.
type GetParcelStatsQuery struct {
	vendorID string

	guard guard.ConstructorGuard
}

func NewGetParcelStatsQuery(vendorID string) GetParcelStatsQuery {
	return GetParcelStatsQuery{vendorID: vendorID, guard: guard.NewConstructorGuard()}
}

func (q GetParcelStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelStatsQueryIsNotConstructed)
}

func (q GetParcelStatsQuery) VendorID() string {
	return q.vendorID
}
