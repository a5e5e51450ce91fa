package deliveryorder

import (
	"fmt"

	"parcelhub/internal/pkg/errs"
)

type Status int

const (
	StatusUnknown Status = iota
	StatusPending
	StatusProcessing
	StatusReadyForPickup
	StatusPickedUp
	StatusCompleted
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusPending:        "pending",
		StatusProcessing:     "processing",
		StatusReadyForPickup: "ready_for_pickup",
		StatusPickedUp:       "picked_up",
		StatusCompleted:      "completed",
	}
}

func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid delivery order status", s))
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

func (s Status) Validate() error {
	if s <= StatusUnknown || s > StatusCompleted {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid delivery order status", s))
	}
	return nil
}

// Next returns the following status. Completed and unknown values map to themselves.
func (s Status) Next() Status {
	switch s {
	case StatusPending:
		return StatusProcessing
	case StatusProcessing:
		return StatusReadyForPickup
	case StatusReadyForPickup:
		return StatusPickedUp
	case StatusPickedUp:
		return StatusCompleted
	default:
		return s
	}
}
