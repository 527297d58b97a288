package commands

import (
	"context"

	"railmail/internal/core/domain/model/line"
)

// CreateLineCommandHandler handles the business logic for line registration.
// Creates and persists new line entities; name uniqueness is enforced by the
// persistence layer.
type CreateLineCommandHandler struct {
	uowFactory LineUoWFactory
}

// NewCreateLineCommandHandler creates a handler for line registration.
// Requires a LineUoWFactory for transactional persistence operations.
func NewCreateLineCommandHandler(uowFactory LineUoWFactory) CreateLineCommandHandler {
	return CreateLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the line creation command.
// Creates a new line entity and persists it within a transaction.
// Automatically rolls back on any error to prevent partial data.
func (h *CreateLineCommandHandler) Handle(ctx context.Context, cmd CreateLineCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	lineRepo := uow.LineRepository()
	lineEntity, err := line.NewLine(cmd.LineID(), cmd.Name(), cmd.Description())
	if err != nil {
		return err
	}

	if err = lineRepo.Add(ctx, lineEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
