package commands

import (
	"errors"
	"strings"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand sets or replaces the driver of a parcel.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	driverID string

	guard guard.ConstructorGuard
}

func NewAssignDriverCommand(parcelID kernel.UUID, driverID string) (AssignDriverCommand, error) {
	cmd := AssignDriverCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setDriverID(driverID),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return cmd, nil
}

func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

func (c AssignDriverCommand) ParcelID() kernel.UUID { return c.parcelID }
func (c AssignDriverCommand) DriverID() string { return c.driverID }

func (c *AssignDriverCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *AssignDriverCommand) setDriverID(driverID string) error {
	driverID = strings.TrimSpace(driverID)
	if driverID == "" {
		return errs.NewValueIsRequiredError("driverId")
	}
	c.driverID = driverID
	return nil
}
