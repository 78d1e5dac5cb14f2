package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// ReminderAfter is how long a pickup order may sit in ready before the
// customer is nudged again.
const ReminderAfter = 30 * time.Minute

// PickupReminderJob re-notifies customers whose pickup orders have been ready
// for a while. Reminders reuse the same fire-and-forget notification channel
// as the original ready event; a failed send is logged and retried on the
// next run.
type PickupReminderJob struct {
	store    queries.SnapshotReader
	notifier ports.ReadyNotifier
	cron     *cron.Cron
	logger   *slog.Logger

	// reminded tracks orders already nudged so each gets one reminder per
	// process lifetime. Guarded by mu: cron runs each trigger in its own
	// goroutine, so a slow sweep can overlap the next one.
	mu       sync.Mutex
	reminded map[string]struct{}
}

// NewPickupReminderJob creates a job that checks for stale ready pickups
// every five minutes.
func NewPickupReminderJob(
	store queries.SnapshotReader,
	notifier ports.ReadyNotifier,
	logger *slog.Logger,
) *PickupReminderJob {
	return &PickupReminderJob{
		store:    store,
		notifier: notifier,
		cron:     cron.New(),
		logger:   logger.With("component", "pickup_reminder_job"),
		reminded: make(map[string]struct{}),
	}
}

// Start begins the pickup reminder job to run every five minutes.
func (j *PickupReminderJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * *", func() {
		ctx := context.Background()
		if runErr := j.run(ctx); runErr != nil {
			j.logger.ErrorContext(ctx, "Pickup reminder job failed", "error", runErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pickup reminder job started (running every five minutes)")
	return nil
}

// Stop stops the pickup reminder job.
func (j *PickupReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pickup reminder job stopped")
}

func (j *PickupReminderJob) run(ctx context.Context) error {
	orders, err := j.store.FetchOrders(ctx, ports.OrderFilter{
		Types: []order.OrderType{order.TypePickup},
	})
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-ReminderAfter)
	for _, o := range orders {
		if o.Status() != order.StatusReady {
			continue
		}
		readySince := o.UpdatedAt()
		if readySince.IsZero() {
			readySince = o.CreatedAt()
		}
		if readySince.After(cutoff) {
			continue
		}
		if j.alreadyReminded(o.ID().String()) {
			continue
		}

		notification := ports.ReadyForPickupNotification{
			OrderID:       o.ID(),
			CustomerName:  o.CustomerName(),
			CustomerPhone: o.CustomerPhone(),
		}
		if pickupID := o.PickupLocationID(); pickupID != nil {
			if record, ok := o.FulfillmentLocation(*pickupID); ok {
				notification.PickupLocationName = record.Name
			}
		}

		if sendErr := j.notifier.SendReadyForPickup(ctx, notification); sendErr != nil {
			j.logger.WarnContext(ctx, "Pickup reminder send failed",
				"order_id", o.ID().String(), "error", sendErr)
			continue
		}

		j.markReminded(o.ID().String())
		j.logger.InfoContext(ctx, "Pickup reminder sent",
			"order_id", o.ID().String(), "ready_since", readySince)
	}

	return nil
}

func (j *PickupReminderJob) alreadyReminded(orderID string) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	_, done := j.reminded[orderID]
	return done
}

func (j *PickupReminderJob) markReminded(orderID string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.reminded[orderID] = struct{}{}
}
