// Package commands contains the operations that issue state changes to the
// external order store. Implements the Command pattern for write operations in
// the CQRS façade. All commands follow a consistent pattern: constructor-guard
// validation, re-validation against a fresh snapshot, then a single store call.
//
// Command handlers never mutate derived state optimistically: a failed store
// call leaves everything the aggregator and resolver compute unchanged until a
// fresh snapshot confirms success.
package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// Narrow store interfaces keep each handler to exactly the calls it makes.
// ports.OrderStore satisfies all of them structurally; tests substitute fakes.
type (
	// OrderReader reads order and item snapshots.
	OrderReader interface {
		FetchOrder(ctx context.Context, orderID kernel.UUID) (*order.Order, error)
		FetchOrderItems(ctx context.Context, orderID kernel.UUID) ([]*order.Item, error)
	}

	// StatusWriter issues status transitions.
	StatusWriter interface {
		UpdateOrderStatus(
			ctx context.Context,
			orderID kernel.UUID,
			newStatus order.Status,
		) (*order.Order, error)
	}

	// LocationFulfiller marks a location's items fulfilled.
	LocationFulfiller interface {
		FulfillItemsAtLocation(
			ctx context.Context,
			orderID kernel.UUID,
			locationID *kernel.UUID,
		) (ports.FulfillmentResult, error)
	}

	// ShipmentWriter records a location's carrier handoff.
	ShipmentWriter interface {
		RecordShipment(
			ctx context.Context,
			orderID kernel.UUID,
			locationID kernel.UUID,
			trackingNumber string,
		) (*order.Order, error)
	}

	// TransitionStore is what the status-change handlers need: a fresh
	// snapshot to re-validate against, and the transition call itself.
	TransitionStore interface {
		OrderReader
		StatusWriter
	}

	// FulfillmentStore is what the fulfillment handler needs.
	FulfillmentStore interface {
		OrderReader
		LocationFulfiller
	}

	// ShipmentStore is what the shipment handler needs.
	ShipmentStore interface {
		OrderReader
		ShipmentWriter
	}
)
