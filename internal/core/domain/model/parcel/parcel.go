package parcel

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
)

// ErrParcelIsNotConstructed is returned when a Parcel was not built by NewParcel or RestoreParcel.
var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel")

// Details carries the caller-supplied fields of a new parcel.
type Details struct {
	CustomerID          string
	CustomerName        string
	CustomerPhone       string
	CustomerEmail       string
	VendorID            string
	DeliveryOrderID     *kernel.UUID
	PickupAddress       string
	DeliveryAddress     string
	Pincode             string
	Size                Size
	WeightKg            float64
	SpecialInstructions string
	IsFragile           bool
	RequiresSignature   bool
}

// Snapshot is the full persisted state of a parcel. Repositories use it to rebuild
// the aggregate through RestoreParcel.
type Snapshot struct {
	ID               kernel.UUID
	TrackingID       TrackingID
	Details          Details
	AssignedDriverID string
	DeliveryFee      kernel.Money
	Status           Status
	CreatedAt        time.Time
}

// Parcel is the aggregate root of a single shippable item tracked from pickup to delivery.
//
// Parcel follows these invariants:
//   - ID and TrackingID are assigned at creation and never change
//   - DeliveryFee is computed once by NewParcel and never recomputed
//   - Weight is positive and at most MaxWeightKg, and Size is one of the four categories
//   - Status changes only through Advance, Cancel and Resume
type Parcel struct {
	id               kernel.UUID
	trackingID       TrackingID
	details          Details
	assignedDriverID string
	deliveryFee      kernel.Money
	status           Status
	createdAt        time.Time

	events        []DomainEvent
	isConstructed bool
}

// NewParcel validates details and creates a Pending parcel with its delivery fee.
//
// All field problems are reported together in one errs.ValidationError, so a caller can
// show every missing or invalid field at once. Nothing is created on failure.
//
// Example:
//
//	p, err := parcel.NewParcel(kernel.NewUUID(), trackingID, parcel.Details{
//	    CustomerName:    "Asha Rao",
//	    CustomerPhone:   "+91-9876543210",
//	    PickupAddress:   "12 MG Road, Bengaluru",
//	    DeliveryAddress: "4 Park Street, Kolkata",
//	    Pincode:         "700016",
//	    Size:            parcel.SizeLarge,
//	    WeightKg:        12,
//	}, time.Now())
//	// p.DeliveryFee().String() == "13.00"
func NewParcel(id kernel.UUID, trackingID TrackingID, details Details, createdAt time.Time) (*Parcel, error) {
	details = normalizeDetails(details)

	if err := errs.NewValidationError("parcel", errors.Join(
		id.Validate(),
		trackingID.Validate(),
		validateDetails(details),
	)); err != nil {
		return nil, err
	}

	fee, err := ComputeFee(details.Size, details.WeightKg)
	if err != nil {
		return nil, errs.NewValidationError("parcel", err)
	}

	p := &Parcel{
		id:            id,
		trackingID:    trackingID,
		details:       details,
		deliveryFee:   fee,
		status:        StatusPending,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}
	p.record(Created{
		ParcelID:    p.id,
		ParcelIDStr: p.id.String(),
		TrackingID:  p.trackingID.String(),
		Status:      p.status.String(),
		DeliveryFee: p.deliveryFee.Float64(),
		At:          p.createdAt,
	})
	return p, nil
}

// RestoreParcel rebuilds a parcel from persisted state without recording events.
// The stored fee is kept as is.
func RestoreParcel(s Snapshot) (*Parcel, error) {
	if err := errors.Join(
		s.ID.Validate(),
		s.TrackingID.Validate(),
		s.Status.Validate(),
		validateDetails(s.Details),
	); err != nil {
		return nil, err
	}

	return &Parcel{
		id:               s.ID,
		trackingID:       s.TrackingID,
		details:          s.Details,
		assignedDriverID: s.AssignedDriverID,
		deliveryFee:      s.DeliveryFee,
		status:           s.Status,
		createdAt:        s.CreatedAt.UTC(),
		isConstructed:    true,
	}, nil
}

// Validate ensures the parcel was built through NewParcel or RestoreParcel.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// Snapshot returns a copy of the parcel state.
func (p *Parcel) Snapshot() Snapshot {
	details := p.details
	if details.DeliveryOrderID != nil {
		orderID := *details.DeliveryOrderID
		details.DeliveryOrderID = &orderID
	}
	return Snapshot{
		ID:               p.id,
		TrackingID:       p.trackingID,
		Details:          details,
		AssignedDriverID: p.assignedDriverID,
		DeliveryFee:      p.deliveryFee,
		Status:           p.status,
		CreatedAt:        p.createdAt,
	}
}

func (p *Parcel) ID() kernel.UUID { return p.id }
func (p *Parcel) TrackingID() TrackingID { return p.trackingID }
func (p *Parcel) CustomerID() string { return p.details.CustomerID }
func (p *Parcel) CustomerName() string { return p.details.CustomerName }
func (p *Parcel) CustomerPhone() string { return p.details.CustomerPhone }
func (p *Parcel) CustomerEmail() string { return p.details.CustomerEmail }
func (p *Parcel) VendorID() string { return p.details.VendorID }
func (p *Parcel) PickupAddress() string { return p.details.PickupAddress }
func (p *Parcel) DeliveryAddress() string { return p.details.DeliveryAddress }
func (p *Parcel) Pincode() string { return p.details.Pincode }
func (p *Parcel) Size() Size { return p.details.Size }
func (p *Parcel) WeightKg() float64 { return p.details.WeightKg }
func (p *Parcel) SpecialInstructions() string { return p.details.SpecialInstructions }
func (p *Parcel) IsFragile() bool { return p.details.IsFragile }
func (p *Parcel) RequiresSignature() bool { return p.details.RequiresSignature }
func (p *Parcel) AssignedDriverID() string { return p.assignedDriverID }
func (p *Parcel) DeliveryFee() kernel.Money { return p.deliveryFee }
func (p *Parcel) Status() Status { return p.status }
func (p *Parcel) CreatedAt() time.Time { return p.createdAt }

// DeliveryOrderID returns the vendor batch this parcel belongs to, or nil.
func (p *Parcel) DeliveryOrderID() *kernel.UUID {
	if p.details.DeliveryOrderID == nil {
		return nil
	}
	id := *p.details.DeliveryOrderID
	return &id
}

// IsEqual compares parcels by identity.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// MatchesSearch reports whether term occurs, case-insensitively, in the customer name,
// tracking ID or phone. An empty term matches every parcel.
func (p *Parcel) MatchesSearch(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.details.CustomerName), term) ||
		strings.Contains(strings.ToLower(p.trackingID.String()), term) ||
		strings.Contains(strings.ToLower(p.details.CustomerPhone), term)
}

// Advance moves the parcel one step along the delivery path.
//
// Returns:
//   - (true, nil) when the status changed
//   - (false, nil) when the parcel is already Delivered
//   - (false, err) when the parcel is Cancelled; it has to be resumed first
func (p *Parcel) Advance() (bool, error) {
	next, err := p.status.Advance()
	if err != nil {
		return false, err
	}
	if next == p.status {
		return false, nil
	}
	p.changeStatus(next)
	return true, nil
}

// Cancel moves a parcel that has not been delivered to Cancelled.
func (p *Parcel) Cancel() error {
	next, err := p.status.Cancel()
	if err != nil {
		return err
	}
	p.changeStatus(next)
	return nil
}

// Resume returns a cancelled parcel to Pending.
func (p *Parcel) Resume() error {
	next, err := p.status.Resume()
	if err != nil {
		return err
	}
	p.changeStatus(next)
	return nil
}

// AssignDriver sets or replaces the assigned driver. Any status is accepted.
func (p *Parcel) AssignDriver(driverID string) error {
	driverID = strings.TrimSpace(driverID)
	if driverID == "" {
		return errs.NewValueIsRequiredError("driverId")
	}
	p.assignedDriverID = driverID
	p.record(DriverAssigned{
		ParcelID:    p.id,
		ParcelIDStr: p.id.String(),
		TrackingID:  p.trackingID.String(),
		DriverID:    driverID,
		At:          time.Now().UTC(),
	})
	return nil
}

// Events returns the events recorded since the parcel was loaded or created.
func (p *Parcel) Events() []DomainEvent {
	out := make([]DomainEvent, len(p.events))
	copy(out, p.events)
	return out
}

// ClearEvents drops recorded events once they have been handed to the outbox.
func (p *Parcel) ClearEvents() {
	p.events = nil
}

func (p *Parcel) changeStatus(next Status) {
	from := p.status
	p.status = next
	p.record(StatusChanged{
		ParcelID:    p.id,
		ParcelIDStr: p.id.String(),
		TrackingID:  p.trackingID.String(),
		From:        from.String(),
		To:          next.String(),
		At:          time.Now().UTC(),
	})
}

func (p *Parcel) record(event DomainEvent) {
	p.events = append(p.events, event)
}

// ValidateDetails reports every missing or invalid field of d in one errs.ValidationError,
// or nil. NewParcel performs the same checks.
func ValidateDetails(d Details) error {
	return errs.NewValidationError("parcel", validateDetails(normalizeDetails(d)))
}

func normalizeDetails(d Details) Details {
	d.CustomerID = strings.TrimSpace(d.CustomerID)
	d.CustomerName = strings.TrimSpace(d.CustomerName)
	d.CustomerPhone = strings.TrimSpace(d.CustomerPhone)
	d.CustomerEmail = strings.TrimSpace(d.CustomerEmail)
	d.VendorID = strings.TrimSpace(d.VendorID)
	d.PickupAddress = strings.TrimSpace(d.PickupAddress)
	d.DeliveryAddress = strings.TrimSpace(d.DeliveryAddress)
	d.Pincode = strings.TrimSpace(d.Pincode)
	d.SpecialInstructions = strings.TrimSpace(d.SpecialInstructions)
	return d
}

func validateDetails(d Details) error {
	return errors.Join(
		required("customerName", d.CustomerName),
		required("customerPhone", d.CustomerPhone),
		required("pickupAddress", d.PickupAddress),
		required("deliveryAddress", d.DeliveryAddress),
		validateEmail(d.CustomerEmail),
		d.Size.Validate(),
		validateWeight(d.WeightKg),
	)
}

func required(field, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(field)
	}
	return nil
}

func validateEmail(email string) error {
	if email != "" && !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause("customerEmail", fmt.Errorf("%q is not an email address", email))
	}
	return nil
}

func validateWeight(weightKg float64) error {
	if math.IsNaN(weightKg) || math.IsInf(weightKg, 0) || weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is not greater than 0", weightKg))
	}
	if weightKg > MaxWeightKg {
		return errs.NewValueIsOutOfRangeError("weight", weightKg, 0, MaxWeightKg)
	}
	return nil
}
