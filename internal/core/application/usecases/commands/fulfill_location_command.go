package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrFulfillLocationCommandIsNotConstructed = errors.New(
		"FulfillLocationCommand must be created via NewFulfillLocationCommand constructor",
	)
)

// FulfillLocationCommand requests that all items at one of an order's
// locations be marked fulfilled. A nil location targets the implicit
// unassigned group.
type FulfillLocationCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	locationID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewFulfillLocationCommand creates a command to fulfill a location group.
// Pass nil locationID for the unassigned group.
func NewFulfillLocationCommand(orderID kernel.UUID, locationID *kernel.UUID) (FulfillLocationCommand, error) {
	cmd := FulfillLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLocationID(locationID),
	); err != nil {
		return FulfillLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FulfillLocationCommand) Validate() error {
	return c.guard.Validate(ErrFulfillLocationCommandIsNotConstructed)
}

// OrderID returns the order whose location is being fulfilled.
func (c FulfillLocationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LocationID returns the targeted location; nil for the unassigned group.
func (c FulfillLocationCommand) LocationID() *kernel.UUID {
	return c.locationID
}

func (c *FulfillLocationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *FulfillLocationCommand) setLocationID(locationID *kernel.UUID) error {
	if locationID == nil {
		return nil
	}
	if err := locationID.Validate(); err != nil {
		return err
	}
	c.locationID = locationID
	return nil
}
