package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the RestoreOrder factory. This ensures all orders are validated
	// against their type's legal status set before the engine derives anything
	// from them.
	ErrOrderIsNotConstructed = errors.New("Order must be created via RestoreOrder constructor")
)

// FulfillmentLocation describes one physical location responsible for part of
// an order, as recorded by the order store. ShippedAt and TrackingNumber are
// set by the shipping-label capture flow once the location's parcel is handed
// to the carrier.
type FulfillmentLocation struct {
	LocationID     kernel.UUID
	Name           string
	Role           FulfillmentType
	TrackingNumber string
	ShippedAt      *time.Time
}

// Snapshot carries the raw order fields as read from the order store.
// RestoreOrder validates it into an Order aggregate.
type Snapshot struct {
	ID                   kernel.UUID
	Type                 OrderType
	Status               Status
	PaymentStatus        PaymentStatus
	CustomerName         string
	CustomerPhone        string
	Total                kernel.Money
	CreatedAt            time.Time
	UpdatedAt            time.Time
	PickupLocationID     *kernel.UUID
	FulfillmentLocations []FulfillmentLocation
}

// Order is a read-model aggregate over a snapshot from the external order
// store. The engine never mutates it: status changes are commands sent to the
// store, and derived views are rebuilt from a fresh snapshot afterwards.
//
// Invariant: the status is always a member of the legal status set for the
// order's type. RestoreOrder enforces this, so any Order that exists in the
// engine is safe to feed through the transition table.
type Order struct {
	id                   kernel.UUID
	orderType            OrderType
	status               Status
	paymentStatus        PaymentStatus
	customerName         string
	customerPhone        string
	total                kernel.Money
	createdAt            time.Time
	updatedAt            time.Time
	pickupLocationID     *kernel.UUID
	fulfillmentLocations []FulfillmentLocation

	isConstructed bool
}

// RestoreOrder reconstructs an Order aggregate from a store snapshot.
//
// Validation is deliberately loud: an unrecognized order type or a status
// outside the type's legal set means the backend sent data outside the finite
// known sets, which is a data error that must not be papered over with a
// guessed pipeline.
//
// Returns:
//   - *Order: the restored aggregate if all validations pass
//   - error: validation error if the snapshot is inconsistent
func RestoreOrder(snapshot Snapshot) (*Order, error) {
	o := &Order{
		paymentStatus:        snapshot.PaymentStatus,
		customerName:         snapshot.CustomerName,
		customerPhone:        snapshot.CustomerPhone,
		total:                snapshot.Total,
		createdAt:            snapshot.CreatedAt,
		updatedAt:            snapshot.UpdatedAt,
		fulfillmentLocations: snapshot.FulfillmentLocations,
		isConstructed:        true,
	}

	if err := errors.Join(
		o.setID(snapshot.ID),
		o.setTypeAndStatus(snapshot.Type, snapshot.Status),
		o.setPickupLocationID(snapshot.PickupLocationID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was constructed through RestoreOrder.
// Returns ErrOrderIsNotConstructed for zero-value or literal instances.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Type returns the order's fulfillment channel.
func (o *Order) Type() OrderType {
	return o.orderType
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the payment state carried on the snapshot.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// CustomerName returns the customer contact name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerPhone returns the customer contact phone number.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// Total returns the order's monetary total.
func (o *Order) Total() kernel.Money {
	return o.total
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order was last modified by the store.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// PickupLocationID returns the location the customer retrieves the order from.
// Returns nil when the order has no designated pickup location.
func (o *Order) PickupLocationID() *kernel.UUID {
	return o.pickupLocationID
}

// FulfillmentLocations returns the physical locations responsible for parts of
// the order. The slice is a copy; mutating it does not affect the aggregate.
func (o *Order) FulfillmentLocations() []FulfillmentLocation {
	locations := make([]FulfillmentLocation, len(o.fulfillmentLocations))
	copy(locations, o.fulfillmentLocations)
	return locations
}

// FulfillmentLocation looks up the fulfillment record for a location ID.
// Returns false when the order carries no record for that location.
func (o *Order) FulfillmentLocation(locationID kernel.UUID) (FulfillmentLocation, bool) {
	for _, loc := range o.fulfillmentLocations {
		if loc.LocationID.IsEqual(locationID) {
			return loc, true
		}
	}
	return FulfillmentLocation{}, false
}

// IsTerminal reports whether the order's pipeline defines no further forward
// transition from its current status.
func (o *Order) IsTerminal() bool {
	return IsTerminal(o.orderType, o.status)
}

// IsCancelled reports whether the order was explicitly cancelled.
func (o *Order) IsCancelled() bool {
	return o.status == StatusCancelled
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTypeAndStatus(orderType OrderType, status Status) error {
	if err := status.ValidateFor(orderType); err != nil {
		return err
	}
	o.orderType = orderType
	o.status = status
	return nil
}

func (o *Order) setPickupLocationID(pickupLocationID *kernel.UUID) error {
	if pickupLocationID == nil {
		return nil
	}
	if err := pickupLocationID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"pickup location is invalid",
			fmt.Errorf("pickup location ID failed validation: %w", err),
		)
	}
	o.pickupLocationID = pickupLocationID
	return nil
}
