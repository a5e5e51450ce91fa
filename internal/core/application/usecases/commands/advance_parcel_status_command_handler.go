package commands

import (
	"context"

	"parcelhub/internal/core/domain/model/parcel"
)

// AdvanceParcelStatusCommandHandler applies the next delivery step to one parcel.
//
// The parcel is read and written inside one unit of work, which keeps concurrent
// advances of the same parcel from skipping or repeating a step.
//
// Example:
//
//	p, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown parcel id
//	case errors.Is(err, errs.ErrInvalidStateTransfer):
//	    // cancelled parcels have to be resumed first
//	}
type AdvanceParcelStatusCommandHandler struct {
	uowFactory ParcelUoWFactory
}

func NewAdvanceParcelStatusCommandHandler(uowFactory ParcelUoWFactory) AdvanceParcelStatusCommandHandler {
	return AdvanceParcelStatusCommandHandler{uowFactory: uowFactory}
}

// Handle returns the parcel after the step. A delivered parcel is returned unchanged
// and nothing is written.
func (h AdvanceParcelStatusCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceParcelStatusCommand,
) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateParcel(ctx, h.uowFactory, cmd.ParcelID(), func(p *parcel.Parcel) (bool, error) {
		return p.Advance()
	})
}
