// Package http exposes the fulfillment use cases over HTTP.
package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	advanceOrderStatusHandler commands.AdvanceOrderStatusCommandHandler
	cancelOrderHandler        commands.CancelOrderCommandHandler
	fulfillLocationHandler    commands.FulfillLocationCommandHandler
	recordShipmentHandler     commands.RecordShipmentCommandHandler

	// Query handlers
	getFulfillmentBoardHandler queries.GetFulfillmentBoardQueryHandler
	getOrderFulfillmentHandler queries.GetOrderFulfillmentQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	advanceOrderStatusHandler commands.AdvanceOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	fulfillLocationHandler commands.FulfillLocationCommandHandler,
	recordShipmentHandler commands.RecordShipmentCommandHandler,
	getFulfillmentBoardHandler queries.GetFulfillmentBoardQueryHandler,
	getOrderFulfillmentHandler queries.GetOrderFulfillmentQueryHandler,
) *Server {
	return &Server{
		advanceOrderStatusHandler:  advanceOrderStatusHandler,
		cancelOrderHandler:         cancelOrderHandler,
		fulfillLocationHandler:     fulfillLocationHandler,
		recordShipmentHandler:      recordShipmentHandler,
		getFulfillmentBoardHandler: getFulfillmentBoardHandler,
		getOrderFulfillmentHandler: getOrderFulfillmentHandler,
	}
}

// RegisterRoutes attaches all fulfillment endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/v1/fulfillment/board", s.GetFulfillmentBoard)
	e.GET("/api/v1/orders/:orderID/fulfillment", s.GetOrderFulfillment)
	e.POST("/api/v1/orders/:orderID/advance", s.AdvanceOrderStatus)
	e.POST("/api/v1/orders/:orderID/cancel", s.CancelOrder)
	e.POST("/api/v1/orders/:orderID/fulfill", s.FulfillLocation)
	e.POST("/api/v1/orders/:orderID/locations/:locationID/ship", s.RecordShipment)
}

// Error is the standard error payload.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Action is the wire form of a resolved next action.
type Action struct {
	Label        string `json:"label"`
	Kind         string `json:"kind"`
	TargetStatus string `json:"targetStatus,omitempty"`
	Style        string `json:"style"`
}

// OrderSummary is the wire form of an order snapshot.
type OrderSummary struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone,omitempty"`
	Total         string `json:"total"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt,omitempty"`
}

// BoardRow is one row of the flat board list.
type BoardRow struct {
	Kind   string        `json:"kind"`
	Title  string        `json:"title,omitempty"`
	Count  int           `json:"count,omitempty"`
	Order  *OrderSummary `json:"order,omitempty"`
	IsDone bool          `json:"isDone,omitempty"`
	Action *Action       `json:"action,omitempty"`
}

// BoardResponse is the board endpoint payload.
type BoardResponse struct {
	ActiveCount int        `json:"activeCount"`
	DoneCount   int        `json:"doneCount"`
	Rows        []BoardRow `json:"rows"`
}

// ItemDetail is the wire form of one order item within a location group.
type ItemDetail struct {
	ID          string `json:"id"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	LineTotal   string `json:"lineTotal"`
	Fulfilled   bool   `json:"fulfilled"`
}

// LocationDetail is the wire form of one location group and its action.
type LocationDetail struct {
	LocationID      *string      `json:"locationId"`
	LocationName    string       `json:"locationName,omitempty"`
	FulfillmentType string       `json:"fulfillmentType"`
	FulfilledCount  int          `json:"fulfilledCount"`
	TotalCount      int          `json:"totalCount"`
	AllFulfilled    bool         `json:"allFulfilled"`
	TrackingNumber  string       `json:"trackingNumber,omitempty"`
	ShippedAt       string       `json:"shippedAt,omitempty"`
	Items           []ItemDetail `json:"items"`
	Action          *Action      `json:"action,omitempty"`
}

// OrderFulfillmentResponse is the detail endpoint payload.
type OrderFulfillmentResponse struct {
	Order           OrderSummary     `json:"order"`
	IsMultiLocation bool             `json:"isMultiLocation"`
	Action          *Action          `json:"action,omitempty"`
	Locations       []LocationDetail `json:"locations"`
}

// AdvanceOrderStatusRequest is the advance endpoint body.
type AdvanceOrderStatusRequest struct {
	TargetStatus string `json:"targetStatus"`
}

// FulfillLocationRequest is the fulfill endpoint body. A null location
// targets the unassigned group.
type FulfillLocationRequest struct {
	LocationID *string `json:"locationId"`
}

// FulfillLocationResponse is the fulfill endpoint payload.
type FulfillLocationResponse struct {
	ItemsFulfilled      int      `json:"itemsFulfilled"`
	OrderFullyFulfilled bool     `json:"orderFullyFulfilled"`
	RemainingLocations  []string `json:"remainingLocations"`
}

// RecordShipmentRequest is the ship endpoint body.
type RecordShipmentRequest struct {
	TrackingNumber string `json:"trackingNumber"`
}

// GetFulfillmentBoard handles GET /api/v1/fulfillment/board.
// The expanded query parameter controls whether done rows are included.
func (s *Server) GetFulfillmentBoard(ctx echo.Context) error {
	query := queries.NewGetFulfillmentBoardQuery(ctx.QueryParam("expanded") == "true")

	result, err := s.getFulfillmentBoardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to load fulfillment board",
		})
	}

	rows := make([]BoardRow, len(result.Rows))
	for i, row := range result.Rows {
		rows[i] = boardRowToWire(row)
	}

	return ctx.JSON(http.StatusOK, BoardResponse{
		ActiveCount: len(result.Board.Active),
		DoneCount:   len(result.Board.Done),
		Rows:        rows,
	})
}

// GetOrderFulfillment handles GET /api/v1/orders/:orderID/fulfillment.
func (s *Server) GetOrderFulfillment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	query, err := queries.NewGetOrderFulfillmentQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid query: " + err.Error(),
		})
	}

	result, err := s.getOrderFulfillmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to load order fulfillment")
	}

	locations := make([]LocationDetail, len(result.Locations))
	for i, detail := range result.Locations {
		locations[i] = locationDetailToWire(detail.Group, detail.Action)
	}

	return ctx.JSON(http.StatusOK, OrderFulfillmentResponse{
		Order:           orderToWire(result.Order),
		IsMultiLocation: result.Grouping.IsMultiLocation,
		Action:          actionToWire(result.OrderAction),
		Locations:       locations,
	})
}

// AdvanceOrderStatus handles POST /api/v1/orders/:orderID/advance.
func (s *Server) AdvanceOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	var request AdvanceOrderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, order.Status(request.TargetStatus))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid transition request: " + err.Error(),
		})
	}

	if handleErr := s.advanceOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.errorResponse(ctx, handleErr, "Failed to advance order status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid cancellation request: " + err.Error(),
		})
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.errorResponse(ctx, handleErr, "Failed to cancel order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FulfillLocation handles POST /api/v1/orders/:orderID/fulfill.
func (s *Server) FulfillLocation(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	var request FulfillLocationRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var locationID *kernel.UUID
	if request.LocationID != nil {
		parsed, parseErr := kernel.UUIDFromString(*request.LocationID)
		if parseErr != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid location ID",
			})
		}
		locationID = &parsed
	}

	cmd, err := commands.NewFulfillLocationCommand(orderID, locationID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid fulfillment request: " + err.Error(),
		})
	}

	result, err := s.fulfillLocationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to fulfill location")
	}

	remaining := make([]string, len(result.RemainingLocations))
	for i, id := range result.RemainingLocations {
		remaining[i] = id.String()
	}

	return ctx.JSON(http.StatusOK, FulfillLocationResponse{
		ItemsFulfilled:      result.ItemsFulfilled,
		OrderFullyFulfilled: result.OrderFullyFulfilled,
		RemainingLocations:  remaining,
	})
}

// RecordShipment handles POST /api/v1/orders/:orderID/locations/:locationID/ship.
func (s *Server) RecordShipment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	locationID, err := kernel.UUIDFromString(ctx.Param("locationID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid location ID",
		})
	}

	var request RecordShipmentRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewRecordShipmentCommand(orderID, locationID, request.TrackingNumber)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipment request: " + err.Error(),
		})
	}

	if handleErr := s.recordShipmentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.errorResponse(ctx, handleErr, "Failed to record shipment")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// errorResponse maps handler errors onto HTTP statuses: stale actions are
// conflicts, missing orders are not found, everything else is internal.
func (s *Server) errorResponse(ctx echo.Context, err error, message string) error {
	switch {
	case errors.Is(err, commands.ErrActionOutOfDate):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Order state changed, refresh and try again",
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: message,
		})
	}
}

func orderToWire(o *order.Order) OrderSummary {
	summary := OrderSummary{
		ID:            o.ID().String(),
		Type:          string(o.Type()),
		Status:        string(o.Status()),
		PaymentStatus: string(o.PaymentStatus()),
		CustomerName:  o.CustomerName(),
		CustomerPhone: o.CustomerPhone(),
		Total:         o.Total().String(),
		CreatedAt:     o.CreatedAt().Format(timeFormat),
	}
	if !o.UpdatedAt().IsZero() {
		summary.UpdatedAt = o.UpdatedAt().Format(timeFormat)
	}
	return summary
}

func actionToWire(action *services.Action) *Action {
	if action == nil {
		return nil
	}
	return &Action{
		Label:        action.Label,
		Kind:         string(action.Kind),
		TargetStatus: string(action.TargetStatus),
		Style:        string(action.Style),
	}
}

func boardRowToWire(row services.BoardRow) BoardRow {
	wire := BoardRow{
		Kind:  string(row.Kind),
		Title: row.Title,
		Count: row.Count,
	}
	if row.Entry != nil {
		summary := orderToWire(row.Entry.Order)
		wire.Order = &summary
		wire.IsDone = row.Entry.IsDone
		wire.Action = actionToWire(row.Entry.Action)
	}
	return wire
}

func locationDetailToWire(group services.LocationGroup, action *services.Action) LocationDetail {
	detail := LocationDetail{
		LocationName:    group.LocationName,
		FulfillmentType: string(group.FulfillmentType),
		FulfilledCount:  group.FulfilledCount,
		TotalCount:      group.TotalCount,
		AllFulfilled:    group.AllFulfilled,
		TrackingNumber:  group.TrackingNumber,
		Items:           make([]ItemDetail, len(group.Items)),
		Action:          actionToWire(action),
	}
	if group.LocationID != nil {
		id := group.LocationID.String()
		detail.LocationID = &id
	}
	if group.ShippedAt != nil {
		detail.ShippedAt = group.ShippedAt.Format(timeFormat)
	}
	for i, item := range group.Items {
		detail.Items[i] = ItemDetail{
			ID:          item.ID().String(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().String(),
			LineTotal:   item.LineTotal().String(),
			Fulfilled:   item.IsFulfilled(),
		}
	}
	return detail
}

const timeFormat = "2006-01-02T15:04:05Z07:00"
