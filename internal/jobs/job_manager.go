package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	boardSnapshotJob  *BoardSnapshotJob
	pickupReminderJob *PickupReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	boardHandler queries.GetFulfillmentBoardQueryHandler,
	store queries.SnapshotReader,
	notifier ports.ReadyNotifier,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		boardSnapshotJob:  NewBoardSnapshotJob(boardHandler, logger),
		pickupReminderJob: NewPickupReminderJob(store, notifier, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.boardSnapshotJob.Start(); err != nil {
		return fmt.Errorf("failed to start board snapshot job: %w", err)
	}

	if err := jm.pickupReminderJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.boardSnapshotJob.Stop()
		return fmt.Errorf("failed to start pickup reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pickupReminderJob.Stop()
	jm.boardSnapshotJob.Stop()
}
