package jobs

import (
	"fmt"
	"log/slog"

	"railmail/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	fleetPlanJob *FleetPlanJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	planFleetScheduleHandler queries.PlanFleetScheduleQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		fleetPlanJob: NewFleetPlanJob(planFleetScheduleHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.fleetPlanJob.Start(); err != nil {
		return fmt.Errorf("failed to start fleet planning job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.fleetPlanJob.Stop()
}
