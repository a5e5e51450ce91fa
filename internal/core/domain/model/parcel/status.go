package parcel

import (
	"fmt"

	"parcelhub/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel.
//
// State transitions:
//
//	Pending ──> PickedUp ──> InTransit ──> OutForDelivery ──> Delivered
//	   any of the four non-terminal states ──cancel──> Cancelled
//	   Cancelled ──resume──> Pending
//
// Advance follows the top row only. Cancel and Resume are separate, explicit actions.
type Status int

const (
	// StatusUnknown is the zero value and never valid for a stored parcel.
	StatusUnknown Status = iota
	StatusPending
	StatusPickedUp
	StatusInTransit
	StatusOutForDelivery
	StatusDelivered
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "unknown",
		StatusPending:        "pending",
		StatusPickedUp:       "picked_up",
		StatusInTransit:      "in_transit",
		StatusOutForDelivery: "out_for_delivery",
		StatusDelivered:      "delivered",
		StatusCancelled:      "cancelled",
	}
}

// AllStatuses lists the valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusPickedUp,
		StatusInTransit,
		StatusOutForDelivery,
		StatusDelivered,
		StatusCancelled,
	}
}

// ParseStatus converts the wire form (e.g. "out_for_delivery") into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// String returns the wire form of the status. Invalid values render as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate reports an error for StatusUnknown and out-of-range values.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > StatusCancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no forward movement is possible.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered
}

// NextStatus is the single "advance" step of the status table. It is total over
// Status: Delivered maps to itself, Cancelled maps back to Pending as the status table
// has always done, and unrecognised values are returned unchanged.
//
// Parcel.Advance does not use the Cancelled row; see Status.Advance.
func NextStatus(current Status) Status {
	switch current {
	case StatusPending:
		return StatusPickedUp
	case StatusPickedUp:
		return StatusInTransit
	case StatusInTransit:
		return StatusOutForDelivery
	case StatusOutForDelivery:
		return StatusDelivered
	case StatusDelivered:
		return StatusDelivered
	case StatusCancelled:
		return StatusPending
	default:
		return current
	}
}

// Advance returns the status that follows s on the delivery path.
//
// Returns:
//   - (next, nil) for Pending through OutForDelivery
//   - (Delivered, nil) for Delivered, which callers treat as "nothing changed"
//   - an InvalidStateTransferError for Cancelled (use Resume)
//   - a ValueIsInvalidError for statuses outside the table
func (s Status) Advance() (Status, error) {
	if err := s.Validate(); err != nil {
		return StatusUnknown, err
	}
	if s == StatusCancelled {
		return StatusUnknown, errs.NewInvalidStateTransferError("advance", s.String())
	}
	return NextStatus(s), nil
}

// Cancel moves any non-terminal, non-cancelled status to Cancelled.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return StatusUnknown, err
	}
	if s.IsTerminal() || s == StatusCancelled {
		return StatusUnknown, errs.NewInvalidStateTransferError("cancel", s.String())
	}
	return StatusCancelled, nil
}

// Resume moves a cancelled parcel back to Pending.
func (s Status) Resume() (Status, error) {
	if s != StatusCancelled {
		return StatusUnknown, errs.NewInvalidStateTransferError("resume", s.String())
	}
	return StatusPending, nil
}
