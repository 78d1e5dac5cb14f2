package commands

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// AdvanceOrderStatusCommandHandler applies forward status transitions.
//
// The handler fetches a fresh snapshot first and verifies the requested target
// is reachable forward from the current status through the transition table.
// A target the table cannot reach is a stale request and is rejected locally
// with ErrActionOutOfDate, never sent to the order store. Reachability rather
// than single-step equality is checked because the board's collapsed actions
// legitimately skip pipeline steps.
//
// After a successful transition of a pickup order to ready, the handler
// notifies the customer opportunistically. Notification failure is logged and
// swallowed: it never rolls back or fails the transition.
type AdvanceOrderStatusCommandHandler struct {
	store    TransitionStore
	notifier ports.ReadyNotifier
	logger   *slog.Logger
}

// NewAdvanceOrderStatusCommandHandler creates a handler for status advancement.
func NewAdvanceOrderStatusCommandHandler(
	store TransitionStore,
	notifier ports.ReadyNotifier,
	logger *slog.Logger,
) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		store:    store,
		notifier: notifier,
		logger:   logger.With("component", "advance_order_status"),
	}
}

// Handle processes the status advancement command.
//
// Returns:
//   - nil when the order is already at the target status (idempotent no-op)
//   - ErrActionOutOfDate when the target is not reachable from the current
//     snapshot
//   - the store's error, unretouched, when the transition command fails; the
//     failure leaves all derived state unchanged and is retryable by the caller
func (h AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	current, err := h.store.FetchOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if current.Status() == cmd.TargetStatus() {
		return nil
	}

	if !order.ReachableForward(current.Type(), current.Status(), cmd.TargetStatus()) {
		return ErrActionOutOfDate
	}

	updated, err := h.store.UpdateOrderStatus(ctx, cmd.OrderID(), cmd.TargetStatus())
	if err != nil {
		return err
	}

	if updated.Type() == order.TypePickup && updated.Status() == order.StatusReady {
		h.notifyReadyForPickup(ctx, updated)
	}

	return nil
}

// notifyReadyForPickup fires the pickup-ready notification. Fire-and-forget:
// failures are logged, never propagated.
func (h AdvanceOrderStatusCommandHandler) notifyReadyForPickup(ctx context.Context, o *order.Order) {
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

	if err := h.notifier.SendReadyForPickup(ctx, notification); err != nil {
		h.logger.WarnContext(ctx, "ready-for-pickup notification failed",
			"order_id", o.ID().String(), "error", err)
	}
}
