package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. Statuses are scoped by
// order type: each OrderType defines its own forward pipeline of statuses, and
// a status is only legal on an order whose type's pipeline (or cancel path)
// contains it. The canonical pipelines live in transitions.go.
//
// Status values are persisted as strings by the order store, so the constants
// below are the wire representation as well as the domain one.
type Status string

const (
	// StatusPending is the initial status of every order type.
	StatusPending Status = "pending"

	// StatusConfirmed means staff acknowledged the order (pickup, shipping).
	StatusConfirmed Status = "confirmed"

	// StatusPreparing means staff are assembling the order.
	StatusPreparing Status = "preparing"

	// StatusReady means a pickup order is waiting for the customer.
	StatusReady Status = "ready"

	// StatusOutForDelivery means a delivery order left with the courier.
	StatusOutForDelivery Status = "out_for_delivery"

	// StatusPacking and StatusPacked track parcel assembly for shipping orders.
	StatusPacking Status = "packing"
	StatusPacked  Status = "packed"

	// StatusReadyToShip means a shipping order awaits carrier handoff.
	StatusReadyToShip Status = "ready_to_ship"

	// StatusShipped and StatusInTransit track the parcel after handoff.
	// Staff action is no longer required from these statuses even though the
	// pipeline continues to delivered.
	StatusShipped   Status = "shipped"
	StatusInTransit Status = "in_transit"

	// StatusDelivered is the terminal status of the shipping pipeline.
	StatusDelivered Status = "delivered"

	// StatusCompleted is the terminal status of the walk-in, pickup, and
	// delivery pipelines. It also appears on legacy shipping orders.
	StatusCompleted Status = "completed"

	// StatusCancelled is reachable from any non-terminal status through an
	// explicit cancel operation. It is never part of a forward pipeline.
	StatusCancelled Status = "cancelled"
)

// ValidateFor checks that the status is legal for the given order type.
// The legal set is the type's forward pipeline plus cancelled, plus the legacy
// completed status for shipping orders.
//
// Returns:
//   - nil if the status belongs to the type's legal set
//   - error if the order type is unrecognized or the status is not legal for it
func (s Status) ValidateFor(orderType OrderType) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	for _, legal := range StatusesFor(orderType) {
		if s == legal {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a legal status for %s orders", string(s), orderType),
	)
}

// String returns the wire representation of the status.
// Implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// FulfillmentStatus tracks whether a single line item has been physically
// fulfilled by its responsible location. It is independent from the order-level
// Status: an order can be mid-pipeline while some of its items are fulfilled.
type FulfillmentStatus string

const (
	// ItemPending means the item still needs to be picked, packed, or set aside.
	ItemPending FulfillmentStatus = "pending"

	// ItemFulfilled means the responsible location finished handling the item.
	ItemFulfilled FulfillmentStatus = "fulfilled"
)

// String returns the wire representation of the fulfillment status.
func (f FulfillmentStatus) String() string {
	return string(f)
}

// PaymentStatus tracks the payment state of an order. The fulfillment engine
// never transitions payments; the value is carried on snapshots for display
// and capture happens in an external collaborator.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// String returns the wire representation of the payment status.
func (p PaymentStatus) String() string {
	return string(p)
}
