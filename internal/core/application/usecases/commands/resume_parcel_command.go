package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var ErrResumeParcelCommandIsNotConstructed = errors.New(
	"ResumeParcelCommand must be created via NewResumeParcelCommand constructor",
)

// ResumeParcelCommand returns a cancelled parcel to pending.
type ResumeParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

func NewResumeParcelCommand(parcelID kernel.UUID) (ResumeParcelCommand, error) {
	if err := parcelID.Validate(); err != nil {
		return ResumeParcelCommand{}, err
	}
	return ResumeParcelCommand{parcelID: parcelID, guard: guard.NewConstructorGuard()}, nil
}

func (c ResumeParcelCommand) Validate() error {
	return c.guard.Validate(ErrResumeParcelCommandIsNotConstructed)
}

func (c ResumeParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}
