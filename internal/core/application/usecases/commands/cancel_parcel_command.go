package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var ErrCancelParcelCommandIsNotConstructed = errors.New(
	"CancelParcelCommand must be created via NewCancelParcelCommand constructor",
)

// CancelParcelCommand cancels a parcel that has not been delivered.
type CancelParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelParcelCommand(parcelID kernel.UUID) (CancelParcelCommand, error) {
	if err := parcelID.Validate(); err != nil {
		return CancelParcelCommand{}, err
	}
	return CancelParcelCommand{parcelID: parcelID, guard: guard.NewConstructorGuard()}, nil
}

func (c CancelParcelCommand) Validate() error {
	return c.guard.Validate(ErrCancelParcelCommandIsNotConstructed)
}

func (c CancelParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}
