package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through the RestoreItem factory.
	ErrItemIsNotConstructed = errors.New("Item must be created via RestoreItem constructor")
)

// ItemSnapshot carries the raw line-item fields as read from the order store.
// RestoreItem validates it into an Item.
type ItemSnapshot struct {
	ID                kernel.UUID
	OrderID           kernel.UUID
	ProductName       string
	Quantity          int
	UnitPrice         kernel.Money
	LineTotal         kernel.Money
	FulfillmentStatus FulfillmentStatus
	FulfillmentType   FulfillmentType
	LocationID        *kernel.UUID
	LocationName      string
}

// Item is a single order line as read from the order store. It belongs to
// exactly one order, and optionally to one physical location responsible for
// fulfilling it. Items without a location ID fall into the implicit
// "unassigned" group when the aggregator partitions an order.
//
// Like Order, an Item is an immutable snapshot: fulfilling items is a command
// to the store, never a local mutation.
type Item struct {
	id                kernel.UUID
	orderID           kernel.UUID
	productName       string
	quantity          int
	unitPrice         kernel.Money
	lineTotal         kernel.Money
	fulfillmentStatus FulfillmentStatus
	fulfillmentType   FulfillmentType
	locationID        *kernel.UUID
	locationName      string

	isConstructed bool
}

// RestoreItem reconstructs an Item from a store snapshot.
//
// A missing fulfillment tag is normalized to FulfillmentUnknown rather than
// rejected: unlike order types, the tag only steers presentation tie-breaks,
// so degraded data stays displayable. An unrecognized fulfillment status is
// still rejected because the completion derivations depend on it.
func RestoreItem(snapshot ItemSnapshot) (*Item, error) {
	item := &Item{
		locationName:  snapshot.LocationName,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setIDs(snapshot.ID, snapshot.OrderID),
		item.setProductName(snapshot.ProductName),
		item.setQuantity(snapshot.Quantity),
		item.setPricing(snapshot.UnitPrice, snapshot.LineTotal),
		item.setFulfillment(snapshot.FulfillmentStatus, snapshot.FulfillmentType),
		item.setLocationID(snapshot.LocationID),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the Item was constructed through RestoreItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// OrderID returns the identifier of the order this item belongs to.
func (i *Item) OrderID() kernel.UUID {
	return i.orderID
}

// ProductName returns the display name of the purchased product.
func (i *Item) ProductName() string {
	return i.productName
}

// Quantity returns the purchased quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// LineTotal returns the line total as recorded by the store.
func (i *Item) LineTotal() kernel.Money {
	return i.lineTotal
}

// FulfillmentStatus returns whether the item has been fulfilled.
func (i *Item) FulfillmentStatus() FulfillmentStatus {
	return i.fulfillmentStatus
}

// IsFulfilled reports whether the responsible location finished the item.
func (i *Item) IsFulfilled() bool {
	return i.fulfillmentStatus == ItemFulfilled
}

// FulfillmentType returns how this item leaves the building.
// FulfillmentUnknown when the item carries no tag.
func (i *Item) FulfillmentType() FulfillmentType {
	return i.fulfillmentType
}

// LocationID returns the physical location responsible for this item.
// Returns nil for items in the implicit unassigned group.
func (i *Item) LocationID() *kernel.UUID {
	return i.locationID
}

// LocationName returns the display name of the responsible location, or an
// empty string for unassigned items.
func (i *Item) LocationName() string {
	return i.locationName
}

func (i *Item) setIDs(id, orderID kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := orderID.Validate(); err != nil {
		return err
	}
	i.id = id
	i.orderID = orderID
	return nil
}

func (i *Item) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	i.productName = productName
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPricing(unitPrice, lineTotal kernel.Money) error {
	i.unitPrice = unitPrice
	i.lineTotal = lineTotal
	return nil
}

func (i *Item) setFulfillment(status FulfillmentStatus, fulfillmentType FulfillmentType) error {
	if status != ItemPending && status != ItemFulfilled {
		return errs.NewValueIsInvalidErrorWithCause(
			"fulfillment status is invalid",
			fmt.Errorf("%q is not a recognized fulfillment status", string(status)),
		)
	}
	i.fulfillmentStatus = status

	switch fulfillmentType {
	case FulfillmentPickup, FulfillmentShipping:
		i.fulfillmentType = fulfillmentType
	default:
		i.fulfillmentType = FulfillmentUnknown
	}
	return nil
}

func (i *Item) setLocationID(locationID *kernel.UUID) error {
	if locationID == nil {
		return nil
	}
	if err := locationID.Validate(); err != nil {
		return err
	}
	i.locationID = locationID
	return nil
}
