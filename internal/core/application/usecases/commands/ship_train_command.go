package commands

import (
	"errors"
	"fmt"

	"railmail/internal/core/domain/model/kernel"
	"railmail/internal/pkg/guard"
)

var (
	ErrShipTrainCommandIsNotConstructed = errors.New(
		"ShipTrainCommand must be created via NewShipTrainCommand constructor",
	)
	ErrCostPerWeightIsInvalid = errors.New("cost per weight must be greater than 0")
)

// ShipTrainCommand represents a request to depart a train on a line, packing
// pending parcels onto it. An optional cost-per-weight override replaces the
// rate derived from the train's charter cost.
//
// Example:
//
//	cmd, err := NewShipTrainCommand(trainID, lineID, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid departure request: %w", err)
//	}
//
//	handler := NewShipTrainCommandHandler(uowFactory, packer, allocator, 12*time.Hour)
//	shipped, err := handler.Handle(ctx, cmd)
type ShipTrainCommand struct { //nolint:recvcheck //using for validation
	trainID       kernel.UUID
	lineID        kernel.UUID
	costPerWeight *float64

	guard guard.ConstructorGuard
}

// NewShipTrainCommand creates a command to depart the given train on the
// given line. costPerWeight is optional; when set it must be positive.
func NewShipTrainCommand(
	trainID kernel.UUID,
	lineID kernel.UUID,
	costPerWeight *float64,
) (ShipTrainCommand, error) {
	command := ShipTrainCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTrainID(trainID),
		command.setLineID(lineID),
		command.setCostPerWeight(costPerWeight),
	); err != nil {
		return ShipTrainCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrShipTrainCommandIsNotConstructed if validation fails.
func (c ShipTrainCommand) Validate() error {
	return c.guard.Validate(ErrShipTrainCommandIsNotConstructed)
}

// TrainID returns the train ID from the command.
func (c ShipTrainCommand) TrainID() kernel.UUID {
	return c.trainID
}

// LineID returns the line ID from the command.
func (c ShipTrainCommand) LineID() kernel.UUID {
	return c.lineID
}

// CostPerWeight returns the optional rate override, or nil to derive the
// rate from the train's charter cost.
func (c ShipTrainCommand) CostPerWeight() *float64 {
	if c.costPerWeight == nil {
		return nil
	}
	v := *c.costPerWeight
	return &v
}

func (c *ShipTrainCommand) setTrainID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.trainID = id
	return nil
}

func (c *ShipTrainCommand) setLineID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.lineID = id
	return nil
}

func (c *ShipTrainCommand) setCostPerWeight(costPerWeight *float64) error {
	if costPerWeight == nil {
		return nil
	}
	if *costPerWeight <= 0 {
		return fmt.Errorf("%w: %v", ErrCostPerWeightIsInvalid, *costPerWeight)
	}

	v := *costPerWeight
	c.costPerWeight = &v
	return nil
}
