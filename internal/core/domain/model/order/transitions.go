package order

// Transition is one forward step of a status pipeline: the status the order
// moves to and the staff-facing label for the button that performs the move.
type Transition struct {
	// Target is the status the order transitions to.
	Target Status

	// Label is the staff-facing text for the action, e.g. "Start Preparing".
	Label string
}

// The canonical status pipelines, one per order type. This table is the single
// source of truth for legal forward transitions: detail views, the board, and
// command validation all resolve through it rather than re-encoding the
// pipeline locally.
//
// Pipelines:
//
//	walk_in:  pending → completed
//	pickup:   pending → confirmed → preparing → ready → completed
//	delivery: pending → preparing → out_for_delivery → completed
//	shipping: pending → confirmed → preparing → packing → packed →
//	          ready_to_ship → shipped → in_transit → delivered
//
// Cancelled is reachable from any non-terminal status via CanCancel, not
// through the pipeline.
func getPipelines() map[OrderType][]Status {
	return map[OrderType][]Status{
		TypeWalkIn: {StatusPending, StatusCompleted},
		TypePickup: {StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusCompleted},
		TypeDelivery: {StatusPending, StatusPreparing, StatusOutForDelivery, StatusCompleted},
		TypeShipping: {
			StatusPending, StatusConfirmed, StatusPreparing, StatusPacking, StatusPacked,
			StatusReadyToShip, StatusShipped, StatusInTransit, StatusDelivered,
		},
	}
}

// getTransitionLabels returns the staff-facing label for each (orderType, fromStatus)
// pair in the pipelines.
func getTransitionLabels() map[OrderType]map[Status]string {
	return map[OrderType]map[Status]string{
		TypeWalkIn: {
			StatusPending: "✓ Complete",
		},
		TypePickup: {
			StatusPending:   "✓ Confirm Order",
			StatusConfirmed: "Start Preparing",
			StatusPreparing: "✓ Mark Ready",
			StatusReady:     "✓ Complete",
		},
		TypeDelivery: {
			StatusPending:        "Start Preparing",
			StatusPreparing:      "Out for Delivery",
			StatusOutForDelivery: "✓ Complete",
		},
		TypeShipping: {
			StatusPending:     "✓ Confirm Order",
			StatusConfirmed:   "Start Preparing",
			StatusPreparing:   "Start Packing",
			StatusPacking:     "✓ Mark Packed",
			StatusPacked:      "Ready to Ship",
			StatusReadyToShip: "Mark Shipped",
			StatusShipped:     "In Transit",
			StatusInTransit:   "✓ Mark Delivered",
		},
	}
}

// Next returns the single forward transition from the current status for the
// given order type, with its staff-facing label.
//
// The lookup is pure and total for recognized order types:
//   - (Transition{}, false) when current is terminal for the type
//   - (Transition{}, false) when current is not part of the type's pipeline,
//     including cancelled and unrecognized statuses
//   - (transition, true) otherwise
//
// An unrecognized order type also returns false; callers that restored orders
// through this package have already rejected unknown types loudly, so hiding
// the action here is the degraded path for raw data, never a silent guess at
// a pipeline.
func Next(orderType OrderType, current Status) (Transition, bool) {
	pipeline, ok := getPipelines()[orderType]
	if !ok {
		return Transition{}, false
	}

	for i, status := range pipeline {
		if status != current {
			continue
		}
		if i == len(pipeline)-1 {
			return Transition{}, false
		}
		return Transition{
			Target: pipeline[i+1],
			Label:  getTransitionLabels()[orderType][current],
		}, true
	}
	return Transition{}, false
}

// IsTerminal reports whether the status ends the pipeline for the given order
// type. Terminal statuses are completed (walk_in, pickup, delivery), delivered
// (shipping), cancelled (all types), and the legacy completed on shipping orders.
func IsTerminal(orderType OrderType, status Status) bool {
	if status == StatusCancelled {
		return true
	}
	if orderType == TypeShipping {
		return status == StatusDelivered || status == StatusCompleted
	}
	return status == StatusCompleted
}

// CanCancel reports whether an order of the given type and status may be
// cancelled. Cancellation is an explicit operation available from every
// non-terminal status; it is not a pipeline step.
func CanCancel(orderType OrderType, status Status) bool {
	if err := status.ValidateFor(orderType); err != nil {
		return false
	}
	return !IsTerminal(orderType, status)
}

// ReachableForward reports whether target can be reached from current by
// following the type's pipeline zero or more steps forward. Used to validate
// transition requests against a fresh snapshot before they are sent to the
// order store: the board's collapsed actions may legitimately skip pipeline
// steps, but a request whose target lies behind the current status is stale.
func ReachableForward(orderType OrderType, current, target Status) bool {
	pipeline, ok := getPipelines()[orderType]
	if !ok {
		return false
	}

	currentIdx, targetIdx := -1, -1
	for i, status := range pipeline {
		if status == current {
			currentIdx = i
		}
		if status == target {
			targetIdx = i
		}
	}
	return currentIdx >= 0 && targetIdx > currentIdx
}

// StatusesFor returns the legal status set for the given order type: the
// forward pipeline, cancelled, and for shipping orders the legacy completed
// status. Returns nil for unrecognized order types.
func StatusesFor(orderType OrderType) []Status {
	pipeline, ok := getPipelines()[orderType]
	if !ok {
		return nil
	}

	statuses := make([]Status, 0, len(pipeline)+2)
	statuses = append(statuses, pipeline...)
	statuses = append(statuses, StatusCancelled)
	if orderType == TypeShipping {
		statuses = append(statuses, StatusCompleted)
	}
	return statuses
}
