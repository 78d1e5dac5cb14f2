// Package queries contains the read operations of the CQRS façade. Query
// handlers fetch snapshots through the order-store port and run them through
// the pure domain services; they hold no state and cache nothing between calls.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetFulfillmentBoardQueryIsNotConstructed = errors.New(
		"GetFulfillmentBoardQuery must be created via NewGetFulfillmentBoardQuery constructor",
	)
)

// GetFulfillmentBoardQuery retrieves the operational dashboard: every pickup
// and shipping order classified into "action needed" and "done" buckets, with
// the done list capped for display performance.
//
// Example:
//
//	query := NewGetFulfillmentBoardQuery(true)
//	board, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load board: %w", err)
//	}
//	fmt.Printf("%d orders need action\n", len(board.Board.Active))
type GetFulfillmentBoardQuery struct {
	doneExpanded bool

	guard guard.ConstructorGuard
}

// NewGetFulfillmentBoardQuery creates a board query. doneExpanded controls
// whether the flattened row list includes the done entries under the
// "Done Today" toggle.
func NewGetFulfillmentBoardQuery(doneExpanded bool) GetFulfillmentBoardQuery {
	return GetFulfillmentBoardQuery{
		doneExpanded: doneExpanded,
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetFulfillmentBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetFulfillmentBoardQueryIsNotConstructed)
}

// DoneExpanded reports whether done rows should be included in the flat list.
func (q GetFulfillmentBoardQuery) DoneExpanded() bool {
	return q.doneExpanded
}

// GetFulfillmentBoardQueryResponse carries the assembled board and its
// flattened display rows.
type GetFulfillmentBoardQueryResponse struct {
	Board services.Board
	Rows  []services.BoardRow
}
