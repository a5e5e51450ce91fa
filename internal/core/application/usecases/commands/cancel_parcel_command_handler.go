package commands

import (
	"context"

	"parcelhub/internal/core/domain/model/parcel"
)

type CancelParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

func NewCancelParcelCommandHandler(uowFactory ParcelUoWFactory) CancelParcelCommandHandler {
	return CancelParcelCommandHandler{uowFactory: uowFactory}
}

// Handle fails with errs.ErrInvalidStateTransfer for delivered or already cancelled parcels.
func (h CancelParcelCommandHandler) Handle(ctx context.Context, cmd CancelParcelCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateParcel(ctx, h.uowFactory, cmd.ParcelID(), func(p *parcel.Parcel) (bool, error) {
		return true, p.Cancel()
	})
}
