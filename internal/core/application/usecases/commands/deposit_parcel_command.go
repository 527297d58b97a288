package commands

import (
	"errors"
	"fmt"

	"railmail/internal/core/domain/model/kernel"
	"railmail/internal/pkg/guard"
)

var (
	ErrDepositParcelCommandIsNotConstructed = errors.New(
		"DepositParcelCommand must be created via NewDepositParcelCommand constructor",
	)
	ErrLabelIsRequired    = errors.New("label is required")
	ErrDimensionIsInvalid = errors.New("dimension must be greater than 0")
)

// DepositParcelCommand represents a sender dropping a parcel at the depot.
//
// Example:
//
//	cmd, err := NewDepositParcelCommand("books", "paperbacks", 2, 30)
//	if err != nil {
//	    return fmt.Errorf("invalid parcel data: %w", err)
//	}
//
//	handler := NewDepositParcelCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to deposit parcel: %w", err)
//	}
//	fmt.Printf("Deposited parcel with ID: %s", cmd.ParcelID())
type DepositParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID    kernel.UUID
	label       string
	description string
	weight      float64
	volume      float64

	guard guard.ConstructorGuard
}

// NewDepositParcelCommand creates a command to deposit a new parcel.
// Automatically generates a unique ID for the parcel.
// Validates that the label is not empty and weight and volume are positive.
func NewDepositParcelCommand(
	label string,
	description string,
	weight float64,
	volume float64,
) (DepositParcelCommand, error) {
	command := DepositParcelCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setParcelID(kernel.NewUUID()),
		command.setLabel(label),
		command.setWeight(weight),
		command.setVolume(volume),
	); err != nil {
		return DepositParcelCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDepositParcelCommandIsNotConstructed if validation fails.
func (c DepositParcelCommand) Validate() error {
	return c.guard.Validate(ErrDepositParcelCommandIsNotConstructed)
}

// ParcelID returns the generated parcel ID from the command.
func (c DepositParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Label returns the parcel label from the command.
func (c DepositParcelCommand) Label() string {
	return c.label
}

// Description returns the parcel description from the command.
func (c DepositParcelCommand) Description() string {
	return c.description
}

// Weight returns the parcel weight from the command.
func (c DepositParcelCommand) Weight() float64 {
	return c.weight
}

// Volume returns the parcel volume from the command.
func (c DepositParcelCommand) Volume() float64 {
	return c.volume
}

func (c *DepositParcelCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.parcelID = id
	return nil
}

func (c *DepositParcelCommand) setLabel(label string) error {
	if label == "" {
		return ErrLabelIsRequired
	}

	c.label = label
	return nil
}

func (c *DepositParcelCommand) setWeight(weight float64) error {
	if weight <= 0 {
		return fmt.Errorf("%w: weight", ErrDimensionIsInvalid)
	}

	c.weight = weight
	return nil
}

func (c *DepositParcelCommand) setVolume(volume float64) error {
	if volume <= 0 {
		return fmt.Errorf("%w: volume", ErrDimensionIsInvalid)
	}

	c.volume = volume
	return nil
}
