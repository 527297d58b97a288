package commands

import (
	"context"
	"errors"
	"fmt"

	"railmail/internal/core/domain/model/kernel"
	"railmail/internal/core/domain/model/line"
	"railmail/internal/core/domain/model/train"
)

// ErrLinesNotFound is returned when a bid references line names that are not
// registered in the system.
var ErrLinesNotFound = errors.New("lines not found")

// BidTrainCommandHandler handles the business logic for bidding a train into
// the scheduling pool. Resolves the bid's line names to registered lines and
// persists the new train in Open status.
type BidTrainCommandHandler struct {
	uowFactory TrainUoWFactory
}

// NewBidTrainCommandHandler creates a handler for train bids.
// Requires a TrainUoWFactory for transactional persistence operations.
func NewBidTrainCommandHandler(uowFactory TrainUoWFactory) BidTrainCommandHandler {
	return BidTrainCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the train bid command.
// Fails with ErrLinesNotFound if any referenced line name is unknown.
// Automatically rolls back on any error to prevent partial data.
func (h *BidTrainCommandHandler) Handle(ctx context.Context, cmd BidTrainCommand) error {
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

	lines, err := uow.LineRepository().GetByNames(ctx, cmd.LineNames())
	if err != nil {
		return err
	}
	if len(lines) != len(cmd.LineNames()) {
		return fmt.Errorf("%w: %v", ErrLinesNotFound, missingLineNames(cmd.LineNames(), lines))
	}

	lineIDs := make([]kernel.UUID, len(lines))
	for i, l := range lines {
		lineIDs[i] = l.ID()
	}

	trainEntity, err := train.NewTrain(
		cmd.TrainID(),
		cmd.Name(),
		cmd.Cost(),
		cmd.WeightCapacity(),
		cmd.VolumeCapacity(),
		lineIDs,
	)
	if err != nil {
		return err
	}

	if err = uow.TrainRepository().Add(ctx, trainEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// missingLineNames lists the requested names absent from the resolved lines.
func missingLineNames(requested []string, resolved []*line.Line) []string {
	found := make(map[string]bool, len(resolved))
	for _, l := range resolved {
		found[l.Name()] = true
	}

	var missing []string
	for _, name := range requested {
		if !found[name] {
			missing = append(missing, name)
		}
	}
	return missing
}
