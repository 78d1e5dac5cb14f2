package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// ReadyForPickupNotification carries the customer-facing details for a
// "your order is ready" message. Content and delivery channel (push, SMS)
// belong to the notification collaborator, not the engine.
type ReadyForPickupNotification struct {
	OrderID            kernel.UUID
	CustomerName       string
	CustomerPhone      string
	PickupLocationName string
}

// ReadyNotifier is the notification collaborator invoked opportunistically
// after a successful pickup "Mark Ready" transition. It is fire-and-forget:
// a send failure is logged by the caller and must never roll back or block
// the status transition that triggered it.
type ReadyNotifier interface {
	SendReadyForPickup(ctx context.Context, notification ReadyForPickupNotification) error
}
