package queries

import (
	"errors"
	"strings"

	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var ErrGetDriverRoutesQueryIsNotConstructed = errors.New(
	"GetDriverRoutesQuery must be created via NewGetDriverRoutesQuery constructor",
)

// ActiveRouteStatuses are the statuses a driver still has to act on.
func ActiveRouteStatuses() []parcel.Status {
	return []parcel.Status{
		parcel.StatusPending,
		parcel.StatusPickedUp,
		parcel.StatusInTransit,
		parcel.StatusOutForDelivery,
	}
}

// GetDriverRoutesQuery groups a driver's parcels by pincode. Without explicit statuses
// only ActiveRouteStatuses are included.
type GetDriverRoutesQuery struct {
	driverID string
	statuses []parcel.Status

	guard guard.ConstructorGuard
}

func NewGetDriverRoutesQuery(driverID string, statuses []parcel.Status) (GetDriverRoutesQuery, error) {
	driverID = strings.TrimSpace(driverID)
	if driverID == "" {
		return GetDriverRoutesQuery{}, errs.NewValueIsRequiredError("driverId")
	}
	for _, s := range statuses {
		if err := s.Validate(); err != nil {
			return GetDriverRoutesQuery{}, err
		}
	}
	if len(statuses) == 0 {
		statuses = ActiveRouteStatuses()
	}

	return GetDriverRoutesQuery{
		driverID: driverID,
		statuses: append([]parcel.Status(nil), statuses...),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetDriverRoutesQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverRoutesQueryIsNotConstructed)
}

func (q GetDriverRoutesQuery) DriverID() string { return q.driverID }

func (q GetDriverRoutesQuery) Statuses() []parcel.Status {
	return append([]parcel.Status(nil), q.statuses...)
}
