package commands

import (
	"context"
)

// WithdrawTrainCommandHandler handles the withdrawal of an open train from
// the scheduling pool. The domain state machine rejects withdrawal of booked
// or already withdrawn trains.
type WithdrawTrainCommandHandler struct {
	uowFactory TrainUoWFactory
}

// NewWithdrawTrainCommandHandler creates a handler for train withdrawal.
// Requires a TrainUoWFactory for transactional persistence operations.
func NewWithdrawTrainCommandHandler(uowFactory TrainUoWFactory) WithdrawTrainCommandHandler {
	return WithdrawTrainCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the train withdrawal command.
// Automatically rolls back on any error so the train keeps its prior status.
func (h *WithdrawTrainCommandHandler) Handle(ctx context.Context, cmd WithdrawTrainCommand) error {
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

	trainRepo := uow.TrainRepository()
	trainEntity, err := trainRepo.Get(ctx, cmd.TrainID())
	if err != nil {
		return err
	}

	if err = trainEntity.Withdraw(); err != nil {
		return err
	}

	if err = trainRepo.Update(ctx, trainEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
