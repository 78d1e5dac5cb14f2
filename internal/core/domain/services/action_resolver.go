package services

import (
	"fulfillment/internal/core/domain/model/order"
)

// ActionKind identifies what invoking an action does. Advance actions issue a
// status-change command; fulfill and ship actions target a single location
// group; the per-location kind is a sentinel telling the caller to resolve
// each group individually instead of presenting a whole-order action.
type ActionKind string

const (
	// ActionAdvance moves the order to Action.TargetStatus via the
	// transition table.
	ActionAdvance ActionKind = "advance"

	// ActionFulfill marks all items at one location as fulfilled.
	ActionFulfill ActionKind = "fulfill_location"

	// ActionShip invokes the shipping-label capture flow for one location.
	ActionShip ActionKind = "ship"

	// ActionResolvePerLocation is the sentinel returned for multi-location
	// orders: the whole-order action is ambiguous when sub-locations are in
	// different states, so the caller presents per-group actions instead.
	ActionResolvePerLocation ActionKind = "resolve_per_location"
)

// ActionStyle is the presentation weight of an action button.
type ActionStyle string

const (
	StylePrimary   ActionStyle = "primary"
	StyleSecondary ActionStyle = "secondary"
)

// Action is the single next actionable step to present for an order or a
// location group. Actions are computed fresh from the current snapshot on
// every resolution and carry no identity or persistence of their own.
type Action struct {
	Label string
	Kind  ActionKind

	// TargetStatus is set for ActionAdvance; zero otherwise.
	TargetStatus order.Status

	Style ActionStyle
}

// ActionResolver produces the single next actionable step for an order as a
// whole, for each location group within a split order, and in a collapsed
// form for the operational board.
//
// Resolving never fails: terminal orders and unrecognized statuses yield nil,
// hiding the action rather than guessing a transition. Applying a resolved
// action is a separate, fallible command handled by the application layer.
type ActionResolver struct{}

// NewActionResolver creates a new ActionResolver instance.
func NewActionResolver() ActionResolver {
	return ActionResolver{}
}

// ResolveOrderAction returns the next whole-order action, or nil when the
// order is terminal or its status defines no further transition.
//
// Multi-location orders never get a whole-order action: the grouping's
// sub-locations can be in different states, so the resolver returns the
// ActionResolvePerLocation sentinel and the caller falls back to
// ResolveLocationAction per group.
func (ActionResolver) ResolveOrderAction(o *order.Order, grouping Grouping) *Action {
	if o.IsTerminal() {
		return nil
	}

	if grouping.IsMultiLocation {
		return &Action{
			Label: "Fulfill by location",
			Kind:  ActionResolvePerLocation,
			Style: StyleSecondary,
		}
	}

	transition, ok := order.Next(o.Type(), o.Status())
	if !ok {
		return nil
	}

	return &Action{
		Label:        transition.Label,
		Kind:         ActionAdvance,
		TargetStatus: transition.Target,
		Style:        StylePrimary,
	}
}

// ResolveLocationAction returns the next action for one location group of an
// order, or nil when the group needs nothing from staff.
//
// Rules:
//   - Unfulfilled group → "Fulfill" (marks all items at the location fulfilled).
//   - Fulfilled pickup group → nil; the order-level action takes over at
//     pickup and completion.
//   - Fulfilled shipping group not yet shipped → "Ship" (invokes the external
//     shipping-label capture flow).
//   - Fulfilled and shipped, or fulfilled with unknown type → nil.
func (ActionResolver) ResolveLocationAction(o *order.Order, group LocationGroup) *Action {
	if o.IsCancelled() {
		return nil
	}

	if !group.AllFulfilled {
		return &Action{
			Label: "Fulfill",
			Kind:  ActionFulfill,
			Style: StylePrimary,
		}
	}

	if group.FulfillmentType == order.FulfillmentShipping && group.ShippedAt == nil {
		return &Action{
			Label: "Ship",
			Kind:  ActionShip,
			Style: StylePrimary,
		}
	}

	return nil
}

// ResolveBoardAction returns the collapsed one-tap action shown on the
// operational board.
//
// The board merges the pending, confirmed, and preparing statuses into a
// "Start"/"✓ Ready" pair so dashboard interactions stay at one tap. This is a
// presentation simplification over the same transition table, not a separate
// state machine: targets are always obtained by walking the table, and only
// the labels are shortened. Statuses past preparing fall through to the
// table's own transition unchanged.
func (r ActionResolver) ResolveBoardAction(o *order.Order, grouping Grouping) *Action {
	if o.IsTerminal() {
		return nil
	}

	if grouping.IsMultiLocation {
		return &Action{
			Label: "Fulfill by location",
			Kind:  ActionResolvePerLocation,
			Style: StyleSecondary,
		}
	}

	switch o.Status() {
	case order.StatusPending, order.StatusConfirmed:
		target, ok := fastForward(o.Type(), o.Status(), order.StatusPreparing)
		if !ok {
			return nil
		}
		return &Action{
			Label:        "Start",
			Kind:         ActionAdvance,
			TargetStatus: target,
			Style:        StyleSecondary,
		}
	case order.StatusPreparing:
		transition, ok := order.Next(o.Type(), o.Status())
		if !ok {
			return nil
		}
		label := transition.Label
		if o.Type() == order.TypePickup {
			label = "✓ Ready"
		}
		return &Action{
			Label:        label,
			Kind:         ActionAdvance,
			TargetStatus: transition.Target,
			Style:        StylePrimary,
		}
	default:
		transition, ok := order.Next(o.Type(), o.Status())
		if !ok {
			return nil
		}
		return &Action{
			Label:        transition.Label,
			Kind:         ActionAdvance,
			TargetStatus: transition.Target,
			Style:        StylePrimary,
		}
	}
}

// fastForward walks the transition table from current until it reaches until,
// returning the reached status. Keeps the collapsed board actions a view over
// the table rather than a second encoding of the pipeline.
func fastForward(orderType order.OrderType, current, until order.Status) (order.Status, bool) {
	status := current
	for status != until {
		transition, ok := order.Next(orderType, status)
		if !ok {
			return "", false
		}
		status = transition.Target
	}
	return status, true
}
