package commands

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
)

// FulfillLocationResponse reports the outcome of a location fulfillment,
// derived from the fresh post-command snapshot rather than the store's own
// response payload. The fresh snapshot always wins on disagreement.
type FulfillLocationResponse struct {
	// ItemsFulfilled is the item count the store reported marking fulfilled.
	ItemsFulfilled int

	// OrderFullyFulfilled is true when the fresh snapshot shows no
	// unfulfilled items anywhere on the order.
	OrderFullyFulfilled bool

	// RemainingLocations lists groups that still hold unfulfilled items,
	// computed by the aggregator from the fresh snapshot.
	RemainingLocations []kernel.UUID
}

// FulfillLocationCommandHandler marks a location group's items fulfilled.
//
// After the store command succeeds, the handler re-fetches the order's items
// and recomputes the grouping. When the store's reported remaining locations
// disagree with the fresh computation, that is a data-consistency warning,
// not a failure: it is logged and the snapshot-derived values are returned.
type FulfillLocationCommandHandler struct {
	store      FulfillmentStore
	aggregator services.LocationAggregator
	logger     *slog.Logger
}

// NewFulfillLocationCommandHandler creates a handler for location fulfillment.
func NewFulfillLocationCommandHandler(store FulfillmentStore, logger *slog.Logger) FulfillLocationCommandHandler {
	return FulfillLocationCommandHandler{
		store:      store,
		aggregator: services.NewLocationAggregator(),
		logger:     logger.With("component", "fulfill_location"),
	}
}

// Handle processes the fulfillment command and returns the snapshot-derived
// outcome. A store failure is returned unretouched and leaves derived state
// unchanged; the caller may retry.
func (h FulfillLocationCommandHandler) Handle(
	ctx context.Context,
	cmd FulfillLocationCommand,
) (FulfillLocationResponse, error) {
	if err := cmd.Validate(); err != nil {
		return FulfillLocationResponse{}, err
	}

	result, err := h.store.FulfillItemsAtLocation(ctx, cmd.OrderID(), cmd.LocationID())
	if err != nil {
		return FulfillLocationResponse{}, err
	}

	o, err := h.store.FetchOrder(ctx, cmd.OrderID())
	if err != nil {
		return FulfillLocationResponse{}, err
	}
	items, err := h.store.FetchOrderItems(ctx, cmd.OrderID())
	if err != nil {
		return FulfillLocationResponse{}, err
	}

	grouping := h.aggregator.GroupItemsByLocation(o, items)
	remaining := remainingLocationIDs(grouping)

	if !sameLocationSet(remaining, result.RemainingLocations) {
		h.logger.WarnContext(ctx, "fulfillment result disagrees with fresh snapshot, trusting snapshot",
			"order_id", cmd.OrderID().String(),
			"reported_remaining", len(result.RemainingLocations),
			"snapshot_remaining", len(remaining))
	}

	return FulfillLocationResponse{
		ItemsFulfilled:      result.ItemsFulfilled,
		OrderFullyFulfilled: len(grouping.Groups) > 0 && grouping.AllFulfilled(),
		RemainingLocations:  remaining,
	}, nil
}

// remainingLocationIDs lists the located groups still holding unfulfilled items.
func remainingLocationIDs(grouping services.Grouping) []kernel.UUID {
	remaining := make([]kernel.UUID, 0, len(grouping.Groups))
	for _, group := range grouping.Groups {
		if !group.AllFulfilled && group.LocationID != nil {
			remaining = append(remaining, *group.LocationID)
		}
	}
	return remaining
}

// sameLocationSet compares two location ID lists ignoring order.
func sameLocationSet(a, b []kernel.UUID) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]int, len(a))
	for _, id := range a {
		seen[id.String()]++
	}
	for _, id := range b {
		seen[id.String()]--
		if seen[id.String()] < 0 {
			return false
		}
	}
	return true
}
