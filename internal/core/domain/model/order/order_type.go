package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// OrderType identifies the fulfillment channel of an order. Every type carries
// its own status pipeline (see transitions.go), so the type scopes which
// statuses are legal for the order.
type OrderType string

const (
	// TypeWalkIn is an in-person point-of-sale purchase, paid and handed over
	// at the counter. Its pipeline is a single step.
	TypeWalkIn OrderType = "walk_in"

	// TypePickup is an order the customer retrieves in-store after staff
	// prepare it.
	TypePickup OrderType = "pickup"

	// TypeDelivery is a local delivery run by staff or a courier.
	TypeDelivery OrderType = "delivery"

	// TypeShipping is an e-commerce parcel shipped through a carrier.
	TypeShipping OrderType = "shipping"
)

// getValidOrderTypes returns the set of recognized order types.
func getValidOrderTypes() map[OrderType]struct{} {
	return map[OrderType]struct{}{
		TypeWalkIn:   {},
		TypePickup:   {},
		TypeDelivery: {},
		TypeShipping: {},
	}
}

// Validate checks that the order type is one of the recognized channels.
// An unrecognized type is data corruption from the order store and must fail
// loudly: guessing a pipeline risks presenting an unsafe action to staff.
func (t OrderType) Validate() error {
	if _, ok := getValidOrderTypes()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"order type is invalid",
			fmt.Errorf("%q is not a recognized order type", string(t)),
		)
	}
	return nil
}

// String returns the wire representation of the order type.
// Implements fmt.Stringer.
func (t OrderType) String() string {
	return string(t)
}

// FulfillmentType classifies how a location group of items leaves the building.
// A split order can carry mixed fulfillment types, so the type is tagged on the
// items themselves rather than inferred from the order.
type FulfillmentType string

const (
	// FulfillmentPickup marks items the customer collects at the location.
	FulfillmentPickup FulfillmentType = "pickup"

	// FulfillmentShipping marks items the location ships through a carrier.
	FulfillmentShipping FulfillmentType = "shipping"

	// FulfillmentUnknown is used when items carry no fulfillment tag.
	FulfillmentUnknown FulfillmentType = "unknown"
)

// String returns the wire representation of the fulfillment type.
func (f FulfillmentType) String() string {
	return string(f)
}
