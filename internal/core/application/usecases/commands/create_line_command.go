package commands

import (
	"errors"

	"railmail/internal/core/domain/model/kernel"
	"railmail/internal/pkg/guard"
)

var (
	ErrCreateLineCommandIsNotConstructed = errors.New(
		"CreateLineCommand must be created via NewCreateLineCommand constructor",
	)
	ErrNameIsRequired = errors.New("name is required")
)

// CreateLineCommand represents a request to register a new rail line.
//
// Example:
//
//	cmd, err := NewCreateLineCommand("Northern", "coastal route")
//	if err != nil {
//	    return fmt.Errorf("invalid line data: %w", err)
//	}
//
//	handler := NewCreateLineCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create line: %w", err)
//	}
//	fmt.Printf("Created line with ID: %s", cmd.LineID())
type CreateLineCommand struct { //nolint:recvcheck //using for validation
	lineID      kernel.UUID
	name        string
	description string

	guard guard.ConstructorGuard
}

// NewCreateLineCommand creates a command to register a new line.
// Automatically generates a unique ID for the line.
// Validates that the name is not empty; the description is optional.
func NewCreateLineCommand(name string, description string) (CreateLineCommand, error) {
	command := CreateLineCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setLineID(kernel.NewUUID()),
		command.setName(name),
	); err != nil {
		return CreateLineCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateLineCommandIsNotConstructed if validation fails.
func (c CreateLineCommand) Validate() error {
	return c.guard.Validate(ErrCreateLineCommandIsNotConstructed)
}

// LineID returns the generated line ID from the command.
func (c CreateLineCommand) LineID() kernel.UUID {
	return c.lineID
}

// Name returns the line name from the command.
func (c CreateLineCommand) Name() string {
	return c.name
}

// Description returns the line description from the command.
func (c CreateLineCommand) Description() string {
	return c.description
}

func (c *CreateLineCommand) setLineID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.lineID = id
	return nil
}

func (c *CreateLineCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
