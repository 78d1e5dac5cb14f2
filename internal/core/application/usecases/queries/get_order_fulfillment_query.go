package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetOrderFulfillmentQueryIsNotConstructed = errors.New(
		"GetOrderFulfillmentQuery must be created via NewGetOrderFulfillmentQuery constructor",
	)
)

// GetOrderFulfillmentQuery retrieves the fulfillment detail view of a single
// order: its location groups and the resolved next action for the order and
// for each group.
type GetOrderFulfillmentQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderFulfillmentQuery creates a detail query for one order.
func NewGetOrderFulfillmentQuery(orderID kernel.UUID) (GetOrderFulfillmentQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderFulfillmentQuery{}, err
	}

	return GetOrderFulfillmentQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderFulfillmentQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderFulfillmentQueryIsNotConstructed)
}

// OrderID returns the order being viewed.
func (q GetOrderFulfillmentQuery) OrderID() kernel.UUID {
	return q.orderID
}

// LocationDetail pairs a location group with its resolved action.
// Action is nil when the group needs nothing from staff.
type LocationDetail struct {
	Group  services.LocationGroup
	Action *services.Action
}

// GetOrderFulfillmentQueryResponse is the assembled detail view.
//
// OrderAction is nil for terminal orders; for multi-location orders it is the
// per-location sentinel and Locations carries the actionable breakdown.
type GetOrderFulfillmentQueryResponse struct {
	Order       *order.Order
	Grouping    services.Grouping
	OrderAction *services.Action
	Locations   []LocationDetail
}
