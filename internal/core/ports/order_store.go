// Package ports defines the collaborator contracts of the fulfillment engine.
// These interfaces establish the boundary between the pure engine core and the
// external order store and notification infrastructure, enabling dependency
// inversion and testability. How a contract is implemented (database, REST
// call, message queue) is outside the engine's scope.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderFilter narrows a FetchOrders call. Zero-value fields are not applied.
type OrderFilter struct {
	// Types restricts results to the given order types.
	Types []order.OrderType

	// ExcludeStatuses drops orders in any of the given statuses.
	ExcludeStatuses []order.Status
}

// FulfillmentResult is the order store's report of a FulfillItemsAtLocation
// command. RemainingLocations must agree with what the location aggregator
// would compute from a fresh item fetch; the engine treats a mismatch as a
// data-consistency warning and always trusts the fresh snapshot over this
// payload.
type FulfillmentResult struct {
	// ItemsFulfilled is the number of items the command marked fulfilled.
	ItemsFulfilled int

	// OrderFullyFulfilled is true when no unfulfilled items remain anywhere
	// on the order.
	OrderFullyFulfilled bool

	// RemainingLocations lists the location IDs that still have unfulfilled
	// items after the command.
	RemainingLocations []kernel.UUID
}

// OrderStore is the external order store the engine reads snapshots from and
// issues commands to. The store is the sole arbiter of final order state: the
// engine never mutates local derived state on the strength of a command
// response, only on a fresh snapshot.
//
// Concurrent status-change commands for the same order carry no ordering
// guarantee at this layer; the store must itself provide at-least
// last-write-wins semantics.
type OrderStore interface {
	// FetchOrders reads a snapshot of orders matching the filter.
	FetchOrders(ctx context.Context, filter OrderFilter) ([]*order.Order, error)

	// FetchOrder reads a snapshot of a single order.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	FetchOrder(ctx context.Context, orderID kernel.UUID) (*order.Order, error)

	// FetchOrderItems reads a snapshot of an order's line items.
	FetchOrderItems(ctx context.Context, orderID kernel.UUID) ([]*order.Item, error)

	// UpdateOrderStatus issues a status transition and returns the order as
	// the store sees it afterwards. Validity of the transition against the
	// current snapshot is the caller's responsibility; the store enforces only
	// that the status is legal for the order's type.
	UpdateOrderStatus(ctx context.Context, orderID kernel.UUID, newStatus order.Status) (*order.Order, error)

	// FulfillItemsAtLocation marks all of a location's items on the order as
	// fulfilled. Pass nil locationID for the unassigned group.
	FulfillItemsAtLocation(
		ctx context.Context,
		orderID kernel.UUID,
		locationID *kernel.UUID,
	) (FulfillmentResult, error)

	// RecordShipment stores the carrier handoff for one location: tracking
	// number and shipped-at timestamp on the order's fulfillment record.
	RecordShipment(
		ctx context.Context,
		orderID kernel.UUID,
		locationID kernel.UUID,
		trackingNumber string,
	) (*order.Order, error)
}
