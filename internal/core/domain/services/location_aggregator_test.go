package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixture builders shared by the services tests.

type orderFixture struct {
	orderType            order.OrderType
	status               order.Status
	createdAt            time.Time
	updatedAt            time.Time
	pickupLocationID     *kernel.UUID
	fulfillmentLocations []order.FulfillmentLocation
}

func buildOrder(t *testing.T, fixture orderFixture) *order.Order {
	t.Helper()

	if fixture.createdAt.IsZero() {
		fixture.createdAt = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	}
	total, err := kernel.NewMoneyFromString("25.00")
	require.NoError(t, err)

	o, err := order.RestoreOrder(order.Snapshot{
		ID:                   kernel.NewUUID(),
		Type:                 fixture.orderType,
		Status:               fixture.status,
		PaymentStatus:        order.PaymentPaid,
		CustomerName:         "Casey Tran",
		CustomerPhone:        "+15550123",
		Total:                total,
		CreatedAt:            fixture.createdAt,
		UpdatedAt:            fixture.updatedAt,
		PickupLocationID:     fixture.pickupLocationID,
		FulfillmentLocations: fixture.fulfillmentLocations,
	})
	require.NoError(t, err)
	return o
}

type itemFixture struct {
	orderID         kernel.UUID
	productName     string
	fulfilled       bool
	fulfillmentType order.FulfillmentType
	locationID      *kernel.UUID
	locationName    string
}

func buildItem(t *testing.T, fixture itemFixture) *order.Item {
	t.Helper()

	if fixture.productName == "" {
		fixture.productName = "Espresso Beans 1kg"
	}
	status := order.ItemPending
	if fixture.fulfilled {
		status = order.ItemFulfilled
	}
	unitPrice, err := kernel.NewMoneyFromString("12.50")
	require.NoError(t, err)

	item, err := order.RestoreItem(order.ItemSnapshot{
		ID:                kernel.NewUUID(),
		OrderID:           fixture.orderID,
		ProductName:       fixture.productName,
		Quantity:          2,
		UnitPrice:         unitPrice,
		LineTotal:         unitPrice.Mul(2),
		FulfillmentStatus: status,
		FulfillmentType:   fixture.fulfillmentType,
		LocationID:        fixture.locationID,
		LocationName:      fixture.locationName,
	})
	require.NoError(t, err)
	return item
}

func TestLocationAggregator_GroupItemsByLocation(t *testing.T) {
	aggregator := services.NewLocationAggregator()

	t.Run("should produce zero groups for zero items", func(t *testing.T) {
		o := buildOrder(t, orderFixture{orderType: order.TypePickup, status: order.StatusPending})

		grouping := aggregator.GroupItemsByLocation(o, nil)

		assert.Empty(t, grouping.Groups)
		assert.False(t, grouping.IsMultiLocation)
		assert.False(t, grouping.AllFulfilled(), "an empty order is not done, it is empty")
	})

	t.Run("should group unlocated items into a single unassigned group", func(t *testing.T) {
		o := buildOrder(t, orderFixture{orderType: order.TypePickup, status: order.StatusPreparing})
		items := []*order.Item{
			buildItem(t, itemFixture{orderID: o.ID()}),
			buildItem(t, itemFixture{orderID: o.ID(), fulfilled: true}),
		}

		grouping := aggregator.GroupItemsByLocation(o, items)

		require.Len(t, grouping.Groups, 1)
		group := grouping.Groups[0]
		assert.Nil(t, group.LocationID)
		assert.Equal(t, order.FulfillmentUnknown, group.FulfillmentType)
		assert.Equal(t, 2, group.TotalCount)
		assert.Equal(t, 1, group.FulfilledCount)
		assert.False(t, group.AllFulfilled)
		assert.False(t, grouping.IsMultiLocation)
	})

	t.Run("should partition items across two locations", func(t *testing.T) {
		warehouseID := kernel.NewUUID()
		storeID := kernel.NewUUID()
		o := buildOrder(t, orderFixture{orderType: order.TypeShipping, status: order.StatusPreparing})
		items := []*order.Item{
			buildItem(t, itemFixture{
				orderID: o.ID(), locationID: &warehouseID, locationName: "Warehouse A",
				fulfillmentType: order.FulfillmentShipping, fulfilled: true,
			}),
			buildItem(t, itemFixture{
				orderID: o.ID(), locationID: &storeID, locationName: "Main Street Store",
				fulfillmentType: order.FulfillmentShipping,
			}),
			buildItem(t, itemFixture{
				orderID: o.ID(), locationID: &warehouseID, locationName: "Warehouse A",
				fulfillmentType: order.FulfillmentShipping,
			}),
		}

		grouping := aggregator.GroupItemsByLocation(o, items)

		require.Len(t, grouping.Groups, 2)
		assert.True(t, grouping.IsMultiLocation)
		assert.False(t, grouping.AllFulfilled())

		warehouse, ok := grouping.Group(&warehouseID)
		require.True(t, ok)
		assert.Equal(t, "Warehouse A", warehouse.LocationName)
		assert.Equal(t, 2, warehouse.TotalCount)
		assert.Equal(t, 1, warehouse.FulfilledCount)
		assert.False(t, warehouse.AllFulfilled)

		store, ok := grouping.Group(&storeID)
		require.True(t, ok)
		assert.Equal(t, 1, store.TotalCount)
		assert.Equal(t, 0, store.FulfilledCount)
	})

	t.Run("should keep encounter order with pickup groups first", func(t *testing.T) {
		shippingID := kernel.NewUUID()
		pickupID := kernel.NewUUID()
		o := buildOrder(t, orderFixture{orderType: order.TypeShipping, status: order.StatusPreparing})
		items := []*order.Item{
			buildItem(t, itemFixture{
				orderID: o.ID(), locationID: &shippingID,
				fulfillmentType: order.FulfillmentShipping,
			}),
			buildItem(t, itemFixture{
				orderID: o.ID(), locationID: &pickupID,
				fulfillmentType: order.FulfillmentPickup,
			}),
		}

		grouping := aggregator.GroupItemsByLocation(o, items)

		require.Len(t, grouping.Groups, 2)
		assert.Equal(t, order.FulfillmentPickup, grouping.Groups[0].FulfillmentType)
		assert.Equal(t, order.FulfillmentShipping, grouping.Groups[1].FulfillmentType)
	})

	t.Run("should take group fulfillment type from the first item's tag", func(t *testing.T) {
		locationID := kernel.NewUUID()
		o := buildOrder(t, orderFixture{orderType: order.TypeShipping, status: order.StatusPreparing})
		items := []*order.Item{
			buildItem(t, itemFixture{
				orderID: o.ID(), locationID: &locationID,
				fulfillmentType: order.FulfillmentShipping,
			}),
			buildItem(t, itemFixture{
				orderID: o.ID(), locationID: &locationID,
				fulfillmentType: order.FulfillmentPickup,
			}),
		}

		grouping := aggregator.GroupItemsByLocation(o, items)

		require.Len(t, grouping.Groups, 1)
		assert.Equal(t, order.FulfillmentShipping, grouping.Groups[0].FulfillmentType)
	})

	t.Run("should join shipment fields from the order's fulfillment record", func(t *testing.T) {
		locationID := kernel.NewUUID()
		shippedAt := time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC)
		o := buildOrder(t, orderFixture{
			orderType: order.TypeShipping,
			status:    order.StatusShipped,
			fulfillmentLocations: []order.FulfillmentLocation{{
				LocationID:     locationID,
				Name:           "Warehouse A",
				Role:           order.FulfillmentShipping,
				TrackingNumber: "TRK-100200",
				ShippedAt:      &shippedAt,
			}},
		})
		items := []*order.Item{
			buildItem(t, itemFixture{
				orderID: o.ID(), locationID: &locationID,
				fulfillmentType: order.FulfillmentShipping, fulfilled: true,
			}),
		}

		grouping := aggregator.GroupItemsByLocation(o, items)

		require.Len(t, grouping.Groups, 1)
		group := grouping.Groups[0]
		assert.Equal(t, "TRK-100200", group.TrackingNumber)
		require.NotNil(t, group.ShippedAt)
		assert.Equal(t, shippedAt, *group.ShippedAt)
	})

	t.Run("should fall back to the fulfillment record name when items carry none", func(t *testing.T) {
		locationID := kernel.NewUUID()
		o := buildOrder(t, orderFixture{
			orderType: order.TypeShipping,
			status:    order.StatusPreparing,
			fulfillmentLocations: []order.FulfillmentLocation{{
				LocationID: locationID,
				Name:       "Warehouse A",
				Role:       order.FulfillmentShipping,
			}},
		})
		items := []*order.Item{
			buildItem(t, itemFixture{
				orderID: o.ID(), locationID: &locationID,
				fulfillmentType: order.FulfillmentShipping,
			}),
		}

		grouping := aggregator.GroupItemsByLocation(o, items)

		require.Len(t, grouping.Groups, 1)
		assert.Equal(t, "Warehouse A", grouping.Groups[0].LocationName)
	})

	t.Run("should report all fulfilled when every group is complete", func(t *testing.T) {
		locationID := kernel.NewUUID()
		o := buildOrder(t, orderFixture{orderType: order.TypeShipping, status: order.StatusPreparing})
		items := []*order.Item{
			buildItem(t, itemFixture{
				orderID: o.ID(), locationID: &locationID,
				fulfillmentType: order.FulfillmentShipping, fulfilled: true,
			}),
			buildItem(t, itemFixture{orderID: o.ID(), fulfilled: true}),
		}

		grouping := aggregator.GroupItemsByLocation(o, items)

		require.Len(t, grouping.Groups, 2)
		assert.True(t, grouping.AllFulfilled())
	})
}

func TestGrouping_Group(t *testing.T) {
	aggregator := services.NewLocationAggregator()

	t.Run("should look up the unassigned group with nil", func(t *testing.T) {
		o := buildOrder(t, orderFixture{orderType: order.TypePickup, status: order.StatusPreparing})
		items := []*order.Item{buildItem(t, itemFixture{orderID: o.ID()})}

		grouping := aggregator.GroupItemsByLocation(o, items)

		group, ok := grouping.Group(nil)
		require.True(t, ok)
		assert.Nil(t, group.LocationID)
	})

	t.Run("should return false for an unknown location", func(t *testing.T) {
		o := buildOrder(t, orderFixture{orderType: order.TypePickup, status: order.StatusPreparing})
		items := []*order.Item{buildItem(t, itemFixture{orderID: o.ID()})}

		grouping := aggregator.GroupItemsByLocation(o, items)

		unknownID := kernel.NewUUID()
		_, ok := grouping.Group(&unknownID)
		assert.False(t, ok)
	})
}
