package commands

import (
	"context"
	"time"

	"parcelhub/internal/core/domain/model/deliveryorder"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
)

// CreateDeliveryOrderResult is the stored batch with the parcels created for it, in
// submission order.
type CreateDeliveryOrderResult struct {
	Order   *deliveryorder.DeliveryOrder
	Parcels []*parcel.Parcel
}

// CreateDeliveryOrderCommandHandler creates the batch and all of its parcels in one
// unit of work: either everything is stored or nothing is.
type CreateDeliveryOrderCommandHandler struct {
	uowFactory UoWFactory
	generator  TrackingIDGenerator
	now        func() time.Time
}

func NewCreateDeliveryOrderCommandHandler(uowFactory UoWFactory, generator TrackingIDGenerator) CreateDeliveryOrderCommandHandler {
	return CreateDeliveryOrderCommandHandler{
		uowFactory: uowFactory,
		generator:  generator,
		now:        time.Now,
	}
}

func (h CreateDeliveryOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateDeliveryOrderCommand,
) (CreateDeliveryOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateDeliveryOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateDeliveryOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderID := kernel.NewUUID()
	createdAt := h.now()
	parcelRepo := uow.ParcelRepository()

	details := cmd.Parcels()
	parcels := make([]*parcel.Parcel, 0, len(details))
	parcelIDs := make([]kernel.UUID, 0, len(details))
	for _, d := range details {
		d.DeliveryOrderID = &orderID
		p, err := addWithUniqueTrackingID(ctx, parcelRepo, h.generator,
			func(trackingID parcel.TrackingID) (*parcel.Parcel, error) {
				return parcel.NewParcel(kernel.NewUUID(), trackingID, d, createdAt)
			},
		)
		if err != nil {
			return CreateDeliveryOrderResult{}, err
		}
		parcels = append(parcels, p)
		parcelIDs = append(parcelIDs, p.ID())
	}

	order, err := deliveryorder.NewDeliveryOrder(orderID, cmd.VendorID(), cmd.VendorName(), parcelIDs, cmd.FileURL(), createdAt)
	if err != nil {
		return CreateDeliveryOrderResult{}, err
	}

	if err = uow.DeliveryOrderRepository().Add(ctx, order); err != nil {
		return CreateDeliveryOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateDeliveryOrderResult{}, err
	}

	return CreateDeliveryOrderResult{Order: order, Parcels: parcels}, nil
}
