package commands

import (
	"context"

	"fulfillment/internal/core/domain/services"
)

// RecordShipmentCommandHandler records a location's carrier handoff.
//
// The handler re-validates against a fresh snapshot that the targeted group
// would actually resolve to a "Ship" action: the group must exist, be a
// fulfilled shipping group, and not be shipped already. Anything else is a
// stale request rejected locally.
type RecordShipmentCommandHandler struct {
	store      ShipmentStore
	aggregator services.LocationAggregator
	resolver   services.ActionResolver
}

// NewRecordShipmentCommandHandler creates a handler for shipment recording.
func NewRecordShipmentCommandHandler(store ShipmentStore) RecordShipmentCommandHandler {
	return RecordShipmentCommandHandler{
		store:      store,
		aggregator: services.NewLocationAggregator(),
		resolver:   services.NewActionResolver(),
	}
}

// Handle processes the shipment command against a fresh snapshot.
func (h RecordShipmentCommandHandler) Handle(ctx context.Context, cmd RecordShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := h.store.FetchOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	items, err := h.store.FetchOrderItems(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	grouping := h.aggregator.GroupItemsByLocation(o, items)
	locationID := cmd.LocationID()
	group, ok := grouping.Group(&locationID)
	if !ok {
		return ErrActionOutOfDate
	}

	action := h.resolver.ResolveLocationAction(o, group)
	if action == nil || action.Kind != services.ActionShip {
		return ErrActionOutOfDate
	}

	_, err = h.store.RecordShipment(ctx, cmd.OrderID(), cmd.LocationID(), cmd.TrackingNumber())
	return err
}
