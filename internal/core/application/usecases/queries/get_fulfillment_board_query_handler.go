package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// SnapshotReader is the narrow read-side store surface the query handlers
// need. ports.OrderStore satisfies it structurally; tests substitute fakes.
type SnapshotReader interface {
	FetchOrders(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error)
	FetchOrder(ctx context.Context, orderID kernel.UUID) (*order.Order, error)
	FetchOrderItems(ctx context.Context, orderID kernel.UUID) ([]*order.Item, error)
}

// GetFulfillmentBoardQueryHandler builds the operational dashboard from a
// fresh snapshot on every call. Nothing is cached across calls: fulfillment
// state can change out of band, so staleness is avoided by recomputation,
// which stays cheap because the board is bounded (all active orders plus at
// most the capped done list).
type GetFulfillmentBoardQueryHandler struct {
	store      SnapshotReader
	aggregator services.LocationAggregator
	assembler  services.BoardAssembler
}

// NewGetFulfillmentBoardQueryHandler creates a handler for board queries.
func NewGetFulfillmentBoardQueryHandler(store SnapshotReader) GetFulfillmentBoardQueryHandler {
	return GetFulfillmentBoardQueryHandler{
		store:      store,
		aggregator: services.NewLocationAggregator(),
		assembler:  services.NewBoardAssembler(),
	}
}

// Handle fetches pickup and shipping orders (cancelled excluded at the store),
// groups each order's items, and assembles the board.
func (h GetFulfillmentBoardQueryHandler) Handle(
	ctx context.Context,
	query GetFulfillmentBoardQuery,
) (GetFulfillmentBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetFulfillmentBoardQueryResponse{}, err
	}

	orders, err := h.store.FetchOrders(ctx, ports.OrderFilter{
		Types:           []order.OrderType{order.TypePickup, order.TypeShipping},
		ExcludeStatuses: []order.Status{order.StatusCancelled},
	})
	if err != nil {
		return GetFulfillmentBoardQueryResponse{}, err
	}

	inputs := make([]services.BoardInput, 0, len(orders))
	for _, o := range orders {
		items, itemsErr := h.store.FetchOrderItems(ctx, o.ID())
		if itemsErr != nil {
			return GetFulfillmentBoardQueryResponse{}, itemsErr
		}
		inputs = append(inputs, services.BoardInput{
			Order:    o,
			Grouping: h.aggregator.GroupItemsByLocation(o, items),
		})
	}

	board := h.assembler.Assemble(inputs)
	return GetFulfillmentBoardQueryResponse{
		Board: board,
		Rows:  board.Rows(query.DoneExpanded()),
	}, nil
}
