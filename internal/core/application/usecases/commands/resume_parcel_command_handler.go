package commands

import (
	"context"

	"parcelhub/internal/core/domain/model/parcel"
)

type ResumeParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

func NewResumeParcelCommandHandler(uowFactory ParcelUoWFactory) ResumeParcelCommandHandler {
	return ResumeParcelCommandHandler{uowFactory: uowFactory}
}

// Handle fails with errs.ErrInvalidStateTransfer unless the parcel is cancelled.
func (h ResumeParcelCommandHandler) Handle(ctx context.Context, cmd ResumeParcelCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateParcel(ctx, h.uowFactory, cmd.ParcelID(), func(p *parcel.Parcel) (bool, error) {
		return true, p.Resume()
	})
}
