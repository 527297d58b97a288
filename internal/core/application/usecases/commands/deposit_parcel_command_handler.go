package commands

import (
	"context"
	"time"

	"railmail/internal/core/domain/model/parcel"
)

// DepositParcelCommandHandler handles the business logic for parcel deposit.
// Creates and persists new pending parcels stamped with the deposit time,
// which later drives the first-come-first-served packing order.
type DepositParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewDepositParcelCommandHandler creates a handler for parcel deposit.
// Requires a ParcelUoWFactory for transactional persistence operations.
func NewDepositParcelCommandHandler(uowFactory ParcelUoWFactory) DepositParcelCommandHandler {
	return DepositParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel deposit command.
// Creates a new pending parcel and persists it within a transaction.
// Automatically rolls back on any error to prevent partial data.
func (h *DepositParcelCommandHandler) Handle(ctx context.Context, cmd DepositParcelCommand) error {
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

	parcelEntity, err := parcel.NewParcel(
		cmd.ParcelID(),
		cmd.Label(),
		cmd.Description(),
		cmd.Weight(),
		cmd.Volume(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.ParcelRepository().Add(ctx, parcelEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
