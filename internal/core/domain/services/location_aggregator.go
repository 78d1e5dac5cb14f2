package services

import (
	"sort"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// LocationGroup is the derived partition of an order's items by responsible
// location. One group exists per distinct location ID among the order's items,
// plus a single unassigned group for items with no location. Groups are value
// derivations: they are rebuilt from the current item list on every load and
// never mutated in place.
type LocationGroup struct {
	// LocationID is nil for the implicit unassigned group.
	LocationID *kernel.UUID

	// LocationName is the display name of the location, empty for the
	// unassigned group.
	LocationName string

	// FulfillmentType is taken from the group's first item tag. Unknown when
	// the items carry no tag. A split order can mix types across its groups.
	FulfillmentType order.FulfillmentType

	// Items is the subset of the order's items fulfilled by this location,
	// in encounter order.
	Items []*order.Item

	// FulfilledCount and TotalCount summarize per-group completion.
	FulfilledCount int
	TotalCount     int

	// AllFulfilled is true when every item in the group is fulfilled.
	AllFulfilled bool

	// ShippedAt and TrackingNumber are carried over from the order's
	// fulfillment record for this location, when one exists.
	ShippedAt      *time.Time
	TrackingNumber string
}

// Grouping is the order-level result of partitioning items by location.
// An order with zero items yields zero groups; callers must treat that
// distinctly from "all fulfilled" and infer nothing in either direction.
type Grouping struct {
	Groups []LocationGroup

	// IsMultiLocation is true when more than one group exists. Multi-location
	// orders have no single whole-order action; fulfillment is resolved per
	// group instead.
	IsMultiLocation bool
}

// AllFulfilled reports whether every group in the grouping is fulfilled.
// Returns false for a grouping with zero groups: an empty order is not done,
// it is empty.
func (g Grouping) AllFulfilled() bool {
	if len(g.Groups) == 0 {
		return false
	}
	for _, group := range g.Groups {
		if !group.AllFulfilled {
			return false
		}
	}
	return true
}

// Group looks up the group for a location ID. Pass nil for the unassigned group.
func (g Grouping) Group(locationID *kernel.UUID) (LocationGroup, bool) {
	for _, group := range g.Groups {
		if locationID == nil && group.LocationID == nil {
			return group, true
		}
		if locationID != nil && group.LocationID != nil && group.LocationID.IsEqual(*locationID) {
			return group, true
		}
	}
	return LocationGroup{}, false
}

// LocationAggregator converts a flat item list into location groups and
// answers whether an order or a location is done fulfilling its items.
//
// The aggregation is a pure projection with no side effects. It is re-run on
// every item-list load and never cached across requests, because fulfillment
// status can change out of band on another device or by another staff member.
type LocationAggregator struct{}

// NewLocationAggregator creates a new LocationAggregator instance.
func NewLocationAggregator() LocationAggregator {
	return LocationAggregator{}
}

// GroupItemsByLocation partitions an order's items into location groups.
//
// Rules:
//   - Items are partitioned by location ID; items with no location form a
//     single unassigned group.
//   - Groups keep the encounter order of their first item, except that
//     pickup-type groups sort first. The pickup-first ordering is a
//     presentation tie-break for display stability, not a business invariant.
//   - Each group's fulfillment type comes from its first item's tag.
//   - Shipment fields are joined from the order's fulfillment records.
func (LocationAggregator) GroupItemsByLocation(o *order.Order, items []*order.Item) Grouping {
	groupIndex := make(map[string]int)
	groups := make([]LocationGroup, 0)

	for _, item := range items {
		key := unassignedKey
		if item.LocationID() != nil {
			key = item.LocationID().String()
		}

		idx, seen := groupIndex[key]
		if !seen {
			idx = len(groups)
			groupIndex[key] = idx
			groups = append(groups, newLocationGroup(o, item))
		}

		groups[idx].Items = append(groups[idx].Items, item)
		groups[idx].TotalCount++
		if item.IsFulfilled() {
			groups[idx].FulfilledCount++
		}
	}

	for i := range groups {
		groups[i].AllFulfilled = groups[i].FulfilledCount == groups[i].TotalCount
	}

	// Stable: non-pickup groups keep encounter order relative to each other.
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].FulfillmentType == order.FulfillmentPickup &&
			groups[j].FulfillmentType != order.FulfillmentPickup
	})

	return Grouping{
		Groups:          groups,
		IsMultiLocation: len(groups) > 1,
	}
}

// unassignedKey is the internal partition key for items without a location.
const unassignedKey = "unassigned"

// newLocationGroup seeds an empty group from the first item encountered for a
// location, joining the order's fulfillment record when one exists.
func newLocationGroup(o *order.Order, first *order.Item) LocationGroup {
	group := LocationGroup{
		LocationID:      first.LocationID(),
		LocationName:    first.LocationName(),
		FulfillmentType: first.FulfillmentType(),
	}

	if first.LocationID() == nil {
		return group
	}

	if record, ok := o.FulfillmentLocation(*first.LocationID()); ok {
		group.ShippedAt = record.ShippedAt
		group.TrackingNumber = record.TrackingNumber
		if group.LocationName == "" {
			group.LocationName = record.Name
		}
	}
	return group
}
