package queries

import (
	"context"

	"fulfillment/internal/core/domain/services"
)

// GetOrderFulfillmentQueryHandler assembles the detail view of one order from
// a fresh snapshot: location groups via the aggregator, then the order-level
// and per-group actions via the resolver.
type GetOrderFulfillmentQueryHandler struct {
	store      SnapshotReader
	aggregator services.LocationAggregator
	resolver   services.ActionResolver
}

// NewGetOrderFulfillmentQueryHandler creates a handler for detail queries.
func NewGetOrderFulfillmentQueryHandler(store SnapshotReader) GetOrderFulfillmentQueryHandler {
	return GetOrderFulfillmentQueryHandler{
		store:      store,
		aggregator: services.NewLocationAggregator(),
		resolver:   services.NewActionResolver(),
	}
}

// Handle fetches the order and its items, groups them, and resolves actions.
func (h GetOrderFulfillmentQueryHandler) Handle(
	ctx context.Context,
	query GetOrderFulfillmentQuery,
) (GetOrderFulfillmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderFulfillmentQueryResponse{}, err
	}

	o, err := h.store.FetchOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderFulfillmentQueryResponse{}, err
	}
	items, err := h.store.FetchOrderItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderFulfillmentQueryResponse{}, err
	}

	grouping := h.aggregator.GroupItemsByLocation(o, items)

	locations := make([]LocationDetail, 0, len(grouping.Groups))
	for _, group := range grouping.Groups {
		locations = append(locations, LocationDetail{
			Group:  group,
			Action: h.resolver.ResolveLocationAction(o, group),
		})
	}

	return GetOrderFulfillmentQueryResponse{
		Order:       o,
		Grouping:    grouping,
		OrderAction: h.resolver.ResolveOrderAction(o, grouping),
		Locations:   locations,
	}, nil
}
