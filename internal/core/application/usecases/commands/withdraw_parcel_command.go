package commands

import (
	"errors"

	"railmail/internal/core/domain/model/kernel"
	"railmail/internal/pkg/guard"
)

var ErrWithdrawParcelCommandIsNotConstructed = errors.New(
	"WithdrawParcelCommand must be created via NewWithdrawParcelCommand constructor",
)

// WithdrawParcelCommand represents a sender reclaiming a parcel that has not
// shipped yet.
type WithdrawParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewWithdrawParcelCommand creates a command to withdraw the given parcel.
func NewWithdrawParcelCommand(parcelID kernel.UUID) (WithdrawParcelCommand, error) {
	command := WithdrawParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setParcelID(parcelID); err != nil {
		return WithdrawParcelCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrWithdrawParcelCommandIsNotConstructed if validation fails.
func (c WithdrawParcelCommand) Validate() error {
	return c.guard.Validate(ErrWithdrawParcelCommandIsNotConstructed)
}

// ParcelID returns the parcel ID from the command.
func (c WithdrawParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c *WithdrawParcelCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.parcelID = id
	return nil
}
