package commands

import (
	"context"
	"time"
)

// WithdrawParcelCommandHandler handles a sender reclaiming a pending parcel.
// The domain model rejects withdrawal once the parcel is on a shipment or
// already withdrawn (parcel.ErrParcelNotPending).
type WithdrawParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewWithdrawParcelCommandHandler creates a handler for parcel withdrawal.
// Requires a ParcelUoWFactory for transactional persistence operations.
func NewWithdrawParcelCommandHandler(uowFactory ParcelUoWFactory) WithdrawParcelCommandHandler {
	return WithdrawParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel withdrawal command.
// Automatically rolls back on any error so the parcel keeps its prior state.
func (h *WithdrawParcelCommandHandler) Handle(ctx context.Context, cmd WithdrawParcelCommand) error {
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

	parcelRepo := uow.ParcelRepository()
	parcelEntity, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if err = parcelEntity.Withdraw(time.Now().UTC()); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, parcelEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
