package services

import (
	"sort"
	"time"

	"fulfillment/internal/core/domain/model/order"
)

// DoneDisplayLimit caps the board's done list to bound dashboard render cost.
const DoneDisplayLimit = 50

// BoardInput pairs an order with its location grouping. The grouping is needed
// so the board's collapsed actions can detect multi-location orders.
type BoardInput struct {
	Order    *order.Order
	Grouping Grouping
}

// BoardEntry wraps an order for dashboard display. Entries are ephemeral and
// recomputed whenever the order list changes.
type BoardEntry struct {
	Order *order.Order

	// IsDone classifies the entry at the board level: staff action is no
	// longer required. See Assemble for how this deliberately diverges from
	// pipeline terminality.
	IsDone bool

	// Action is the collapsed board action for active entries; nil for done
	// entries and for active entries whose status defines no transition.
	Action *Action

	// SortKey is the timestamp the entry was ordered by: createdAt for active
	// entries, updatedAt (falling back to createdAt) for done entries.
	SortKey time.Time
}

// BoardRowKind discriminates the flat board row list.
type BoardRowKind string

const (
	// RowHeader is the "ACTION NEEDED (n)" section header.
	RowHeader BoardRowKind = "header"

	// RowOrder is a single order entry.
	RowOrder BoardRowKind = "order"

	// RowDoneToggle is the collapsible "Done Today (n)" toggle row.
	RowDoneToggle BoardRowKind = "done_toggle"
)

// BoardRow is one row of the flat board list.
type BoardRow struct {
	Kind  BoardRowKind
	Title string
	Count int

	// Entry is set for RowOrder rows.
	Entry *BoardEntry
}

// Board is the assembled dashboard view: a stable, prioritized partition of
// the current order set into actionable and done buckets.
type Board struct {
	Active []BoardEntry
	Done   []BoardEntry
}

// Rows flattens the board into its display list: the action-needed header,
// the active rows, the done toggle row, and, when doneExpanded, the done
// rows. The row count is always
// len(Active) + (doneExpanded ? len(Done) : 0) + 2 header rows.
func (b Board) Rows(doneExpanded bool) []BoardRow {
	rows := make([]BoardRow, 0, len(b.Active)+len(b.Done)+2)

	rows = append(rows, BoardRow{Kind: RowHeader, Title: "ACTION NEEDED", Count: len(b.Active)})
	for i := range b.Active {
		rows = append(rows, BoardRow{Kind: RowOrder, Entry: &b.Active[i]})
	}

	rows = append(rows, BoardRow{Kind: RowDoneToggle, Title: "Done Today", Count: len(b.Done)})
	if doneExpanded {
		for i := range b.Done {
			rows = append(rows, BoardRow{Kind: RowOrder, Entry: &b.Done[i]})
		}
	}

	return rows
}

// BoardAssembler produces the operational dashboard over the current order
// set. The board covers pickup and shipping orders only; walk-in sales finish
// at the counter and delivery runs have their own dispatch view.
type BoardAssembler struct {
	resolver ActionResolver
}

// NewBoardAssembler creates a new BoardAssembler instance.
func NewBoardAssembler() BoardAssembler {
	return BoardAssembler{resolver: NewActionResolver()}
}

// Assemble classifies, sorts, and caps the order set for dashboard display.
//
// Rules:
//   - Only pickup and shipping orders participate; cancelled orders are
//     excluded entirely. A cancelled order is neither actionable nor "done".
//   - Done means status ∈ {completed, delivered, shipped, in_transit}. Note
//     that shipped and in_transit still have forward transitions in the
//     pipeline; the board treats them as done because staff action is no
//     longer required. This deliberately diverges from pipeline terminality.
//   - Active orders sort ascending by createdAt: oldest first, first-in
//     first-out fairness for staff.
//   - Done orders sort descending by updatedAt (falling back to createdAt)
//     and are truncated to the DoneDisplayLimit most recent.
//
// The active/done partition is a function of order state only; no order
// appears in both buckets.
func (a BoardAssembler) Assemble(inputs []BoardInput) Board {
	board := Board{
		Active: make([]BoardEntry, 0, len(inputs)),
		Done:   make([]BoardEntry, 0, len(inputs)),
	}

	for _, input := range inputs {
		o := input.Order
		if o.Type() != order.TypePickup && o.Type() != order.TypeShipping {
			continue
		}
		if o.IsCancelled() {
			continue
		}

		if isBoardDone(o.Status()) {
			board.Done = append(board.Done, BoardEntry{
				Order:   o,
				IsDone:  true,
				SortKey: doneSortKey(o),
			})
			continue
		}

		board.Active = append(board.Active, BoardEntry{
			Order:   o,
			Action:  a.resolver.ResolveBoardAction(o, input.Grouping),
			SortKey: o.CreatedAt(),
		})
	}

	sort.SliceStable(board.Active, func(i, j int) bool {
		return board.Active[i].SortKey.Before(board.Active[j].SortKey)
	})
	sort.SliceStable(board.Done, func(i, j int) bool {
		return board.Done[i].SortKey.After(board.Done[j].SortKey)
	})

	if len(board.Done) > DoneDisplayLimit {
		board.Done = board.Done[:DoneDisplayLimit]
	}

	return board
}

// isBoardDone reports board-level doneness. Distinct from order.IsTerminal on
// purpose: shipped and in_transit are done here but still actionable in the
// detail view.
func isBoardDone(status order.Status) bool {
	switch status {
	case order.StatusCompleted, order.StatusDelivered, order.StatusShipped, order.StatusInTransit:
		return true
	default:
		return false
	}
}

// doneSortKey picks the timestamp done entries are ordered by.
func doneSortKey(o *order.Order) time.Time {
	if o.UpdatedAt().IsZero() {
		return o.CreatedAt()
	}
	return o.UpdatedAt()
}
