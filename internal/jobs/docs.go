// Package jobs provides scheduled background tasks for the depot.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. FleetPlanJob - Runs every five minutes to compute the minimum-cost
// assignment of open trains to lines covering the pending parcel pool,
// and logs the recommendation for dispatchers.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(planFleetScheduleHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The planning job treats an infeasible pool as a normal outcome and logs
// it as a warning; only repository or optimizer failures are logged as
// errors. Failed job starts stop any already running jobs.
package jobs
