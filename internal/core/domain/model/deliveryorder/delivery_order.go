package deliveryorder

import (
	"errors"
	"strings"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
)

var ErrDeliveryOrderIsNotConstructed = errors.New(
	"DeliveryOrder must be created via NewDeliveryOrder or RestoreDeliveryOrder",
)

// Snapshot is the persisted state of a delivery order.
type Snapshot struct {
	ID         kernel.UUID
	VendorID   string
	VendorName string
	OrderDate  time.Time
	ParcelIDs  []kernel.UUID
	Status     Status
	FileURL    string
}

// DeliveryOrder lists the parcels a vendor handed over in one batch.
type DeliveryOrder struct {
	id         kernel.UUID
	vendorID   string
	vendorName string
	orderDate  time.Time
	parcelIDs  []kernel.UUID
	status     Status
	fileURL    string

	isConstructed bool
}

// NewDeliveryOrder creates a pending order. parcelIDs must be non-empty; the parcels
// themselves are created by the caller in the same unit of work.
func NewDeliveryOrder(
	id kernel.UUID,
	vendorID, vendorName string,
	parcelIDs []kernel.UUID,
	fileURL string,
	orderDate time.Time,
) (*DeliveryOrder, error) {
	vendorID = strings.TrimSpace(vendorID)
	vendorName = strings.TrimSpace(vendorName)

	if err := errs.NewValidationError("deliveryOrder", errors.Join(
		id.Validate(),
		required("vendorId", vendorID),
		required("vendorName", vendorName),
		validateParcelIDs(parcelIDs),
	)); err != nil {
		return nil, err
	}

	return &DeliveryOrder{
		id:            id,
		vendorID:      vendorID,
		vendorName:    vendorName,
		orderDate:     orderDate.UTC(),
		parcelIDs:     append([]kernel.UUID(nil), parcelIDs...),
		status:        StatusPending,
		fileURL:       strings.TrimSpace(fileURL),
		isConstructed: true,
	}, nil
}

func RestoreDeliveryOrder(s Snapshot) (*DeliveryOrder, error) {
	if err := errors.Join(s.ID.Validate(), s.Status.Validate()); err != nil {
		return nil, err
	}

	return &DeliveryOrder{
		id:            s.ID,
		vendorID:      s.VendorID,
		vendorName:    s.VendorName,
		orderDate:     s.OrderDate.UTC(),
		parcelIDs:     append([]kernel.UUID(nil), s.ParcelIDs...),
		status:        s.Status,
		fileURL:       s.FileURL,
		isConstructed: true,
	}, nil
}

func (o *DeliveryOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrDeliveryOrderIsNotConstructed
	}
	return nil
}

func (o *DeliveryOrder) Snapshot() Snapshot {
	return Snapshot{
		ID:         o.id,
		VendorID:   o.vendorID,
		VendorName: o.vendorName,
		OrderDate:  o.orderDate,
		ParcelIDs:  o.ParcelIDs(),
		Status:     o.status,
		FileURL:    o.fileURL,
	}
}

func (o *DeliveryOrder) ID() kernel.UUID { return o.id }
func (o *DeliveryOrder) VendorID() string { return o.vendorID }
func (o *DeliveryOrder) VendorName() string { return o.vendorName }
func (o *DeliveryOrder) OrderDate() time.Time { return o.orderDate }
func (o *DeliveryOrder) Status() Status { return o.status }
func (o *DeliveryOrder) FileURL() string { return o.fileURL }
func (o *DeliveryOrder) TotalParcels() int { return len(o.parcelIDs) }

func (o *DeliveryOrder) ParcelIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), o.parcelIDs...)
}

// Advance moves the order to its next status and reports whether anything changed.
func (o *DeliveryOrder) Advance() bool {
	next := o.status.Next()
	if next == o.status {
		return false
	}
	o.status = next
	return true
}

func required(field, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(field)
	}
	return nil
}

func validateParcelIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("parcels")
	}
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("parcels", err)
		}
	}
	return nil
}
