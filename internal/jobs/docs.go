// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the fulfillment board.
//
// # Available Jobs
//
// 1. BoardSnapshotJob - Runs every minute to rebuild the board and log its shape
// 2. PickupReminderJob - Runs every five minutes to re-notify customers whose
// pickup orders have been sitting in ready
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(boardHandler, store, notifier, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Snapshot failures are logged and retried on the next tick
// - Reminder send failures are logged; the order stays eligible for the next run
// - Failed job starts will stop any already running jobs
package jobs
