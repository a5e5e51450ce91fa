// Package queries contains the read operations: parcel listing and lookup, driver
// routes and reports, stats, and delivery order listing. Handlers read the current
// state through narrow reader interfaces and never write.
package queries

import (
	"context"

	"parcelhub/internal/core/domain/model/deliveryorder"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/ports"
)

type (
	// ParcelReader is the read half of ports.ParcelRepository.
	ParcelReader interface {
		GetByTrackingID(ctx context.Context, trackingID parcel.TrackingID) (*parcel.Parcel, error)
		List(ctx context.Context, filter ports.ParcelFilter) ([]*parcel.Parcel, error)
	}

	DeliveryOrderReader interface {
		List(ctx context.Context, vendorID string) ([]*deliveryorder.DeliveryOrder, error)
	}
)
