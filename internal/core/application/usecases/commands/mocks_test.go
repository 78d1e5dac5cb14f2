package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderStore satisfies every narrow store interface the command handlers use.
type MockOrderStore struct {
	mock.Mock
}

func (m *MockOrderStore) FetchOrder(ctx context.Context, orderID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderStore) FetchOrderItems(ctx context.Context, orderID kernel.UUID) ([]*order.Item, error) {
	args := m.Called(ctx, orderID)
	if items, ok := args.Get(0).([]*order.Item); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderStore) UpdateOrderStatus(
	ctx context.Context,
	orderID kernel.UUID,
	newStatus order.Status,
) (*order.Order, error) {
	args := m.Called(ctx, orderID, newStatus)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderStore) FulfillItemsAtLocation(
	ctx context.Context,
	orderID kernel.UUID,
	locationID *kernel.UUID,
) (ports.FulfillmentResult, error) {
	args := m.Called(ctx, orderID, locationID)
	result, _ := args.Get(0).(ports.FulfillmentResult)
	return result, args.Error(1)
}

func (m *MockOrderStore) RecordShipment(
	ctx context.Context,
	orderID kernel.UUID,
	locationID kernel.UUID,
	trackingNumber string,
) (*order.Order, error) {
	args := m.Called(ctx, orderID, locationID, trackingNumber)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockReadyNotifier records pickup-ready notification sends.
type MockReadyNotifier struct {
	mock.Mock
}

func (m *MockReadyNotifier) SendReadyForPickup(
	ctx context.Context,
	notification ports.ReadyForPickupNotification,
) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type snapshotOverride func(*order.Snapshot)

func withPickupLocation(locationID kernel.UUID, name string) snapshotOverride {
	return func(s *order.Snapshot) {
		s.PickupLocationID = &locationID
		s.FulfillmentLocations = append(s.FulfillmentLocations, order.FulfillmentLocation{
			LocationID: locationID,
			Name:       name,
			Role:       order.FulfillmentPickup,
		})
	}
}

func withFulfillmentLocation(record order.FulfillmentLocation) snapshotOverride {
	return func(s *order.Snapshot) {
		s.FulfillmentLocations = append(s.FulfillmentLocations, record)
	}
}

func restoreOrder(
	t *testing.T,
	id kernel.UUID,
	orderType order.OrderType,
	status order.Status,
	overrides ...snapshotOverride,
) *order.Order {
	t.Helper()

	total, err := kernel.NewMoneyFromString("30.00")
	require.NoError(t, err)

	snapshot := order.Snapshot{
		ID:            id,
		Type:          orderType,
		Status:        status,
		PaymentStatus: order.PaymentPaid,
		CustomerName:  "Riley Okafor",
		CustomerPhone: "+15550177",
		Total:         total,
		CreatedAt:     time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}
	for _, override := range overrides {
		override(&snapshot)
	}

	o, err := order.RestoreOrder(snapshot)
	require.NoError(t, err)
	return o
}

func restoreItem(
	t *testing.T,
	orderID kernel.UUID,
	locationID *kernel.UUID,
	fulfillmentType order.FulfillmentType,
	fulfilled bool,
) *order.Item {
	t.Helper()

	status := order.ItemPending
	if fulfilled {
		status = order.ItemFulfilled
	}
	unitPrice, err := kernel.NewMoneyFromString("15.00")
	require.NoError(t, err)

	item, err := order.RestoreItem(order.ItemSnapshot{
		ID:                kernel.NewUUID(),
		OrderID:           orderID,
		ProductName:       "Cold Brew Bottle",
		Quantity:          1,
		UnitPrice:         unitPrice,
		LineTotal:         unitPrice,
		FulfillmentStatus: status,
		FulfillmentType:   fulfillmentType,
		LocationID:        locationID,
	})
	require.NoError(t, err)
	return item
}
