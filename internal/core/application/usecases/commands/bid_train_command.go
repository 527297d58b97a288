package commands

import (
	"errors"
	"fmt"

	"railmail/internal/core/domain/model/kernel"
	"railmail/internal/pkg/guard"
)

var (
	ErrBidTrainCommandIsNotConstructed = errors.New(
		"BidTrainCommand must be created via NewBidTrainCommand constructor",
	)
	ErrCostIsInvalid     = errors.New("cost must be greater than 0")
	ErrCapacityIsInvalid = errors.New("capacity must be greater than 0")
	ErrLinesAreRequired  = errors.New("at least one line name is required")
)

// BidTrainCommand represents an operator's bid of a train into the scheduling
// pool. Lines are referenced by their unique names, as operators know them.
//
// Example:
//
//	cmd, err := NewBidTrainCommand("Thomas", 200, 80, 300, []string{"Northern"})
//	if err != nil {
//	    return fmt.Errorf("invalid bid: %w", err)
//	}
//
//	handler := NewBidTrainCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to bid train: %w", err)
//	}
//	fmt.Printf("Bid train with ID: %s", cmd.TrainID())
type BidTrainCommand struct { //nolint:recvcheck //using for validation
	trainID        kernel.UUID
	name           string
	cost           float64
	weightCapacity float64
	volumeCapacity float64
	lineNames      []string

	guard guard.ConstructorGuard
}

// NewBidTrainCommand creates a command to bid a train into the pool.
// Automatically generates a unique ID for the train.
// Validates that the name is not empty, cost and both capacities are
// positive, and at least one non-empty line name is given.
func NewBidTrainCommand(
	name string,
	cost float64,
	weightCapacity float64,
	volumeCapacity float64,
	lineNames []string,
) (BidTrainCommand, error) {
	command := BidTrainCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTrainID(kernel.NewUUID()),
		command.setName(name),
		command.setCost(cost),
		command.setWeightCapacity(weightCapacity),
		command.setVolumeCapacity(volumeCapacity),
		command.setLineNames(lineNames),
	); err != nil {
		return BidTrainCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrBidTrainCommandIsNotConstructed if validation fails.
func (c BidTrainCommand) Validate() error {
	return c.guard.Validate(ErrBidTrainCommandIsNotConstructed)
}

// TrainID returns the generated train ID from the command.
func (c BidTrainCommand) TrainID() kernel.UUID {
	return c.trainID
}

// Name returns the train name from the command.
func (c BidTrainCommand) Name() string {
	return c.name
}

// Cost returns the charter cost from the command.
func (c BidTrainCommand) Cost() float64 {
	return c.cost
}

// WeightCapacity returns the weight capacity from the command.
func (c BidTrainCommand) WeightCapacity() float64 {
	return c.weightCapacity
}

// VolumeCapacity returns the volume capacity from the command.
func (c BidTrainCommand) VolumeCapacity() float64 {
	return c.volumeCapacity
}

// LineNames returns the names of the lines the train bids to service.
func (c BidTrainCommand) LineNames() []string {
	out := make([]string, len(c.lineNames))
	copy(out, c.lineNames)
	return out
}

func (c *BidTrainCommand) setTrainID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.trainID = id
	return nil
}

func (c *BidTrainCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *BidTrainCommand) setCost(cost float64) error {
	if cost <= 0 {
		return ErrCostIsInvalid
	}

	c.cost = cost
	return nil
}

func (c *BidTrainCommand) setWeightCapacity(weightCapacity float64) error {
	if weightCapacity <= 0 {
		return fmt.Errorf("%w: weight", ErrCapacityIsInvalid)
	}

	c.weightCapacity = weightCapacity
	return nil
}

func (c *BidTrainCommand) setVolumeCapacity(volumeCapacity float64) error {
	if volumeCapacity <= 0 {
		return fmt.Errorf("%w: volume", ErrCapacityIsInvalid)
	}

	c.volumeCapacity = volumeCapacity
	return nil
}

func (c *BidTrainCommand) setLineNames(lineNames []string) error {
	if len(lineNames) == 0 {
		return ErrLinesAreRequired
	}
	for _, name := range lineNames {
		if name == "" {
			return ErrNameIsRequired
		}
	}

	c.lineNames = make([]string, len(lineNames))
	copy(c.lineNames, lineNames)
	return nil
}
