package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// CancelOrderCommandHandler applies explicit order cancellation.
// Cancelling an already cancelled order is an idempotent no-op; cancelling a
// terminal order is rejected locally as out of date.
type CancelOrderCommandHandler struct {
	store TransitionStore
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(store TransitionStore) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{store: store}
}

// Handle processes the cancellation command against a fresh snapshot.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	current, err := h.store.FetchOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if current.IsCancelled() {
		return nil
	}

	if !order.CanCancel(current.Type(), current.Status()) {
		return ErrActionOutOfDate
	}

	_, err = h.store.UpdateOrderStatus(ctx, cmd.OrderID(), order.StatusCancelled)
	return err
}
