package commands

import (
	"errors"

	"railmail/internal/core/domain/model/kernel"
	"railmail/internal/pkg/guard"
)

var ErrWithdrawTrainCommandIsNotConstructed = errors.New(
	"WithdrawTrainCommand must be created via NewWithdrawTrainCommand constructor",
)

// WithdrawTrainCommand represents a request to pull an open train from the
// scheduling pool.
type WithdrawTrainCommand struct { //nolint:recvcheck //using for validation
	trainID kernel.UUID

	guard guard.ConstructorGuard
}

// NewWithdrawTrainCommand creates a command to withdraw the given train.
func NewWithdrawTrainCommand(trainID kernel.UUID) (WithdrawTrainCommand, error) {
	command := WithdrawTrainCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setTrainID(trainID); err != nil {
		return WithdrawTrainCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrWithdrawTrainCommandIsNotConstructed if validation fails.
func (c WithdrawTrainCommand) Validate() error {
	return c.guard.Validate(ErrWithdrawTrainCommandIsNotConstructed)
}

// TrainID returns the train ID from the command.
func (c WithdrawTrainCommand) TrainID() kernel.UUID {
	return c.trainID
}

func (c *WithdrawTrainCommand) setTrainID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.trainID = id
	return nil
}
