package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/pkg/guard"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// CreateParcelCommand registers a single parcel.
//
// Example:
//
//	cmd, err := NewCreateParcelCommand(parcel.Details{
//	    CustomerName:    "Asha Rao",
//	    CustomerPhone:   "+91-9876543210",
//	    PickupAddress:   "12 MG Road",
//	    DeliveryAddress: "4 Park Street",
//	    Size:            parcel.SizeSmall,
//	    WeightKg:        1,
//	})
//	if err != nil {
//	    // errs.ValidationError listing every missing or invalid field
//	}
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	details parcel.Details

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand fails with errs.ValidationError naming every bad field.
func NewCreateParcelCommand(details parcel.Details) (CreateParcelCommand, error) {
	if err := parcel.ValidateDetails(details); err != nil {
		return CreateParcelCommand{}, err
	}

	return CreateParcelCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

func (c CreateParcelCommand) Details() parcel.Details {
	return c.details
}
