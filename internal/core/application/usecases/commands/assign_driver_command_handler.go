package commands

import (
	"context"

	"parcelhub/internal/core/domain/model/parcel"
)

// AssignDriverCommandHandler records the driver responsible for a parcel. Driver IDs
// are opaque; only the parcel's existence is checked.
type AssignDriverCommandHandler struct {
	uowFactory ParcelUoWFactory
}

func NewAssignDriverCommandHandler(uowFactory ParcelUoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{uowFactory: uowFactory}
}

func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateParcel(ctx, h.uowFactory, cmd.ParcelID(), func(p *parcel.Parcel) (bool, error) {
		return true, p.AssignDriver(cmd.DriverID())
	})
}
