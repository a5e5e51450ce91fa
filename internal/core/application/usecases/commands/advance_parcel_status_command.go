package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var ErrAdvanceParcelStatusCommandIsNotConstructed = errors.New(
	"AdvanceParcelStatusCommand must be created via NewAdvanceParcelStatusCommand constructor",
)

// AdvanceParcelStatusCommand moves a parcel one step along the delivery path.
type AdvanceParcelStatusCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAdvanceParcelStatusCommand(parcelID kernel.UUID) (AdvanceParcelStatusCommand, error) {
	if err := parcelID.Validate(); err != nil {
		return AdvanceParcelStatusCommand{}, err
	}
	return AdvanceParcelStatusCommand{parcelID: parcelID, guard: guard.NewConstructorGuard()}, nil
}

func (c AdvanceParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceParcelStatusCommandIsNotConstructed)
}

func (c AdvanceParcelStatusCommand) ParcelID() kernel.UUID {
	return c.parcelID
}
