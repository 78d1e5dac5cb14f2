package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// BoardSnapshotJob periodically rebuilds the fulfillment board and logs its
// shape. The log line is the operational heartbeat: a growing action-needed
// count is the first sign staff are falling behind.
type BoardSnapshotJob struct {
	handler queries.GetFulfillmentBoardQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewBoardSnapshotJob creates a job that snapshots the board every minute.
func NewBoardSnapshotJob(handler queries.GetFulfillmentBoardQueryHandler, logger *slog.Logger) *BoardSnapshotJob {
	return &BoardSnapshotJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "board_snapshot_job"),
	}
}

// Start begins the board snapshot job to run every minute.
func (j *BoardSnapshotJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetFulfillmentBoardQuery(false)

		result, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Board snapshot job failed", "error", handleErr)
			return
		}

		j.logger.InfoContext(ctx, "Fulfillment board snapshot",
			"action_needed", len(result.Board.Active),
			"done", len(result.Board.Done))
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Board snapshot job started (running every minute)")
	return nil
}

// Stop stops the board snapshot job.
func (j *BoardSnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Board snapshot job stopped")
}
