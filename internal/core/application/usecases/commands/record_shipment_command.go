package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrRecordShipmentCommandIsNotConstructed = errors.New(
		"RecordShipmentCommand must be created via NewRecordShipmentCommand constructor",
	)
	ErrTrackingNumberIsRequired = errors.New("tracking number is required")
)

// RecordShipmentCommand records the carrier handoff of one location's parcel:
// the tracking number captured by the shipping-label flow, and the shipped-at
// timestamp the store assigns.
type RecordShipmentCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	locationID     kernel.UUID
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewRecordShipmentCommand creates a command to record a shipment.
// Validates both IDs and requires a non-empty tracking number.
func NewRecordShipmentCommand(
	orderID kernel.UUID,
	locationID kernel.UUID,
	trackingNumber string,
) (RecordShipmentCommand, error) {
	cmd := RecordShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLocationID(locationID),
		cmd.setTrackingNumber(trackingNumber),
	); err != nil {
		return RecordShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordShipmentCommand) Validate() error {
	return c.guard.Validate(ErrRecordShipmentCommandIsNotConstructed)
}

// OrderID returns the order being shipped.
func (c RecordShipmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LocationID returns the location whose parcel was handed to the carrier.
func (c RecordShipmentCommand) LocationID() kernel.UUID {
	return c.locationID
}

// TrackingNumber returns the carrier tracking number.
func (c RecordShipmentCommand) TrackingNumber() string {
	return c.trackingNumber
}

func (c *RecordShipmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RecordShipmentCommand) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}
	c.locationID = locationID
	return nil
}

func (c *RecordShipmentCommand) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return ErrTrackingNumberIsRequired
	}
	c.trackingNumber = trackingNumber
	return nil
}
