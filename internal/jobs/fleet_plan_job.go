package jobs

import (
	"context"
	"log/slog"

	"railmail/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// fleetPlanSchedule runs the planning pass every five minutes.
const fleetPlanSchedule = "0 */5 * * * *"

// FleetPlanJob periodically runs the minimum-cost fleet assignment over the
// current pool and logs the recommendation. The job is advisory and
// read-only; dispatchers act on the logged plan, nothing is booked.
type FleetPlanJob struct {
	handler queries.PlanFleetScheduleQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewFleetPlanJob creates a new job for periodic fleet planning.
func NewFleetPlanJob(handler queries.PlanFleetScheduleQueryHandler, logger *slog.Logger) *FleetPlanJob {
	return &FleetPlanJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "fleet_plan_job"),
	}
}

// Start begins the fleet planning job.
func (j *FleetPlanJob) Start() error {
	_, err := j.cron.AddFunc(fleetPlanSchedule, func() {
		ctx := context.Background()
		query := queries.NewPlanFleetScheduleQuery()

		plan, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Fleet planning job failed", "error", err)
			return
		}

		if !plan.Feasible {
			j.logger.WarnContext(ctx, "No feasible fleet assignment covers the pending pool")
			return
		}

		j.logger.InfoContext(ctx, "Fleet plan computed",
			"total_cost", plan.TotalCost,
			"assignments", len(plan.Assignments),
		)
		for _, a := range plan.Assignments {
			j.logger.InfoContext(ctx, "Recommended assignment",
				"train", a.TrainName,
				"train_id", a.TrainID.String(),
				"line", a.LineName,
				"line_id", a.LineID.String(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Fleet planning job started (running every five minutes)")
	return nil
}

// Stop stops the fleet planning job.
func (j *FleetPlanJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Fleet planning job stopped")
}
