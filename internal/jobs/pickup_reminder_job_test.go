package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSnapshotReader struct {
	mock.Mock
}

func (m *MockSnapshotReader) FetchOrders(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	if orders, ok := args.Get(0).([]*order.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSnapshotReader) FetchOrder(ctx context.Context, orderID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSnapshotReader) FetchOrderItems(ctx context.Context, orderID kernel.UUID) ([]*order.Item, error) {
	args := m.Called(ctx, orderID)
	if items, ok := args.Get(0).([]*order.Item); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockReadyNotifier struct {
	mock.Mock
}

func (m *MockReadyNotifier) SendReadyForPickup(
	ctx context.Context, notification ports.ReadyForPickupNotification,
) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func restorePickupOrder(t *testing.T, status order.Status, readySince time.Time) *order.Order {
	t.Helper()

	total, err := kernel.NewMoneyFromString("18.50")
	require.NoError(t, err)

	pickupID := kernel.NewUUID()
	o, err := order.RestoreOrder(order.Snapshot{
		ID:               kernel.NewUUID(),
		Type:             order.TypePickup,
		Status:           status,
		PaymentStatus:    order.PaymentPaid,
		CustomerName:     "Dana Reyes",
		CustomerPhone:    "+15550102030",
		Total:            total,
		CreatedAt:        readySince.Add(-time.Hour),
		UpdatedAt:        readySince,
		PickupLocationID: &pickupID,
		FulfillmentLocations: []order.FulfillmentLocation{{
			LocationID: pickupID,
			Name:       "Main Street Store",
			Role:       order.FulfillmentPickup,
		}},
	})
	require.NoError(t, err)
	return o
}

func TestPickupReminderJob_Run(t *testing.T) {
	t.Run("should remind only stale ready orders", func(t *testing.T) {
		// Arrange
		stale := restorePickupOrder(t, order.StatusReady, time.Now().Add(-ReminderAfter-time.Minute))
		fresh := restorePickupOrder(t, order.StatusReady, time.Now().Add(-time.Minute))
		preparing := restorePickupOrder(t, order.StatusPreparing, time.Now().Add(-2*ReminderAfter))

		store := new(MockSnapshotReader)
		store.On("FetchOrders", mock.Anything, mock.Anything).
			Return([]*order.Order{stale, fresh, preparing}, nil)

		notifier := new(MockReadyNotifier)
		notifier.On("SendReadyForPickup", mock.Anything,
			mock.MatchedBy(func(n ports.ReadyForPickupNotification) bool {
				return n.OrderID.IsEqual(stale.ID()) && n.PickupLocationName == "Main Street Store"
			})).Return(nil).Once()

		job := NewPickupReminderJob(store, notifier, testLogger())

		// Act
		err := job.run(context.Background())

		// Assert
		require.NoError(t, err)
		notifier.AssertExpectations(t)
		notifier.AssertNumberOfCalls(t, "SendReadyForPickup", 1)
	})

	t.Run("should not remind the same order twice", func(t *testing.T) {
		// Arrange
		stale := restorePickupOrder(t, order.StatusReady, time.Now().Add(-ReminderAfter-time.Minute))

		store := new(MockSnapshotReader)
		store.On("FetchOrders", mock.Anything, mock.Anything).
			Return([]*order.Order{stale}, nil)

		notifier := new(MockReadyNotifier)
		notifier.On("SendReadyForPickup", mock.Anything, mock.Anything).Return(nil)

		job := NewPickupReminderJob(store, notifier, testLogger())

		// Act
		require.NoError(t, job.run(context.Background()))
		require.NoError(t, job.run(context.Background()))

		// Assert
		notifier.AssertNumberOfCalls(t, "SendReadyForPickup", 1)
	})

	t.Run("should keep a failed send eligible for the next run", func(t *testing.T) {
		// Arrange
		stale := restorePickupOrder(t, order.StatusReady, time.Now().Add(-ReminderAfter-time.Minute))

		store := new(MockSnapshotReader)
		store.On("FetchOrders", mock.Anything, mock.Anything).
			Return([]*order.Order{stale}, nil)

		notifier := new(MockReadyNotifier)
		notifier.On("SendReadyForPickup", mock.Anything, mock.Anything).
			Return(errors.New("broker unavailable")).Once()
		notifier.On("SendReadyForPickup", mock.Anything, mock.Anything).
			Return(nil).Once()

		job := NewPickupReminderJob(store, notifier, testLogger())

		// Act
		require.NoError(t, job.run(context.Background()))
		require.NoError(t, job.run(context.Background()))

		// Assert
		notifier.AssertNumberOfCalls(t, "SendReadyForPickup", 2)
	})

	t.Run("should propagate store errors", func(t *testing.T) {
		// Arrange
		store := new(MockSnapshotReader)
		store.On("FetchOrders", mock.Anything, mock.Anything).
			Return(nil, errors.New("connection refused"))

		notifier := new(MockReadyNotifier)
		job := NewPickupReminderJob(store, notifier, testLogger())

		// Act
		err := job.run(context.Background())

		// Assert
		require.Error(t, err)
		notifier.AssertNotCalled(t, "SendReadyForPickup", mock.Anything, mock.Anything)
	})
}

// Cron fires each trigger on its own goroutine, so a slow sweep can overlap
// the next one. Overlapping runs must not race on the reminded set; run this
// with the race detector.
func TestPickupReminderJob_OverlappingRuns(t *testing.T) {
	stale := restorePickupOrder(t, order.StatusReady, time.Now().Add(-ReminderAfter-time.Minute))

	store := new(MockSnapshotReader)
	store.On("FetchOrders", mock.Anything, mock.Anything).
		Return([]*order.Order{stale}, nil)

	notifier := new(MockReadyNotifier)
	notifier.On("SendReadyForPickup", mock.Anything, mock.Anything).Return(nil)

	job := NewPickupReminderJob(store, notifier, testLogger())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, job.run(context.Background()))
		}()
	}
	wg.Wait()

	assert.True(t, job.alreadyReminded(stale.ID().String()))
}
