// Package ports defines the contracts between the parcel core and its adapters:
// repositories, the unit of work, the event outbox and the credential verifier.
package ports

import (
	"context"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
)

// ParcelFilter narrows List. Zero fields do not filter.
//
// Search is a case-insensitive substring match against customer name, tracking ID
// or phone. Statuses matches any of the listed statuses.
type ParcelFilter struct {
	Search     string
	Statuses   []parcel.Status
	DriverID   string
	CustomerID string
	VendorID   string
}

// ParcelRepository persists Parcel aggregates.
type ParcelRepository interface {
	// Add stores a new parcel. A clashing tracking ID fails with errs.ErrObjectAlreadyExists
	// and nothing is stored.
	Add(ctx context.Context, p *parcel.Parcel) error

	// Update stores the new state of an existing parcel.
	Update(ctx context.Context, p *parcel.Parcel) error

	// Get loads a parcel by store ID. Inside a unit of work the row stays locked until
	// Commit or Rollback, so read-modify-write sequences are atomic per parcel.
	// Unknown IDs fail with errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByTrackingID fails with errs.ErrObjectNotFound when no parcel carries trackingID.
	GetByTrackingID(ctx context.Context, trackingID parcel.TrackingID) (*parcel.Parcel, error)

	ExistsTrackingID(ctx context.Context, trackingID parcel.TrackingID) (bool, error)

	// List returns matching parcels in creation order.
	List(ctx context.Context, filter ParcelFilter) ([]*parcel.Parcel, error)
}
