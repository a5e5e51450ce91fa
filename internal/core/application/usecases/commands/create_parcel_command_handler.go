package commands

import (
	"context"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
)

// CreateParcelCommandHandler stores a new Pending parcel with its fee and tracking code.
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	generator  TrackingIDGenerator
	now        func() time.Time
}

func NewCreateParcelCommandHandler(uowFactory ParcelUoWFactory, generator TrackingIDGenerator) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
		generator:  generator,
		now:        time.Now,
	}
}

// Handle returns the stored parcel. Tracking code clashes are retried up to
// MaxTrackingIDAttempts times; nothing is stored on any failure.
func (h CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	p, err := addWithUniqueTrackingID(ctx, uow.ParcelRepository(), h.generator,
		func(trackingID parcel.TrackingID) (*parcel.Parcel, error) {
			return parcel.NewParcel(kernel.NewUUID(), trackingID, cmd.Details(), h.now())
		},
	)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
