package order_test

import (
	"fmt"
	"testing"

	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext_PickupPipeline(t *testing.T) {
	t.Run("should walk the full pickup pipeline with labels", func(t *testing.T) {
		expected := []struct {
			from   order.Status
			target order.Status
			label  string
		}{
			{order.StatusPending, order.StatusConfirmed, "✓ Confirm Order"},
			{order.StatusConfirmed, order.StatusPreparing, "Start Preparing"},
			{order.StatusPreparing, order.StatusReady, "✓ Mark Ready"},
			{order.StatusReady, order.StatusCompleted, "✓ Complete"},
		}

		status := order.StatusPending
		for _, step := range expected {
			transition, ok := order.Next(order.TypePickup, status)

			require.True(t, ok, "expected a transition from %s", status)
			assert.Equal(t, step.from, status)
			assert.Equal(t, step.target, transition.Target)
			assert.Equal(t, step.label, transition.Label)
			status = transition.Target
		}

		// completed is terminal: no further transition
		_, ok := order.Next(order.TypePickup, status)
		assert.False(t, ok)
	})
}

func TestNext_WalkInPipeline(t *testing.T) {
	t.Run("should complete in a single step", func(t *testing.T) {
		transition, ok := order.Next(order.TypeWalkIn, order.StatusPending)

		require.True(t, ok)
		assert.Equal(t, order.StatusCompleted, transition.Target)
		assert.Equal(t, "✓ Complete", transition.Label)
	})

	t.Run("should have no transition from completed", func(t *testing.T) {
		_, ok := order.Next(order.TypeWalkIn, order.StatusCompleted)
		assert.False(t, ok)
	})
}

func TestNext_DeliveryPipeline(t *testing.T) {
	t.Run("should walk the full delivery pipeline with labels", func(t *testing.T) {
		expected := []struct {
			target order.Status
			label  string
		}{
			{order.StatusPreparing, "Start Preparing"},
			{order.StatusOutForDelivery, "Out for Delivery"},
			{order.StatusCompleted, "✓ Complete"},
		}

		status := order.StatusPending
		for _, step := range expected {
			transition, ok := order.Next(order.TypeDelivery, status)

			require.True(t, ok, "expected a transition from %s", status)
			assert.Equal(t, step.target, transition.Target)
			assert.Equal(t, step.label, transition.Label)
			status = transition.Target
		}

		_, ok := order.Next(order.TypeDelivery, status)
		assert.False(t, ok)
	})

	t.Run("should skip confirmed for delivery orders", func(t *testing.T) {
		transition, ok := order.Next(order.TypeDelivery, order.StatusPending)

		require.True(t, ok)
		assert.NotEqual(t, order.StatusConfirmed, transition.Target)
		assert.Equal(t, order.StatusPreparing, transition.Target)
	})
}

func TestNext_ShippingPipeline(t *testing.T) {
	t.Run("should walk the full shipping pipeline with labels", func(t *testing.T) {
		expected := []struct {
			target order.Status
			label  string
		}{
			{order.StatusConfirmed, "✓ Confirm Order"},
			{order.StatusPreparing, "Start Preparing"},
			{order.StatusPacking, "Start Packing"},
			{order.StatusPacked, "✓ Mark Packed"},
			{order.StatusReadyToShip, "Ready to Ship"},
			{order.StatusShipped, "Mark Shipped"},
			{order.StatusInTransit, "In Transit"},
			{order.StatusDelivered, "✓ Mark Delivered"},
		}

		status := order.StatusPending
		for _, step := range expected {
			transition, ok := order.Next(order.TypeShipping, status)

			require.True(t, ok, "expected a transition from %s", status)
			assert.Equal(t, step.target, transition.Target)
			assert.Equal(t, step.label, transition.Label)
			status = transition.Target
		}

		_, ok := order.Next(order.TypeShipping, status)
		assert.False(t, ok)
	})
}

func TestNext_NonPipelineStatuses(t *testing.T) {
	t.Run("should return no transition from cancelled", func(t *testing.T) {
		orderTypes := []order.OrderType{
			order.TypeWalkIn, order.TypePickup, order.TypeDelivery, order.TypeShipping,
		}

		for _, orderType := range orderTypes {
			t.Run(orderType.String(), func(t *testing.T) {
				_, ok := order.Next(orderType, order.StatusCancelled)
				assert.False(t, ok)
			})
		}
	})

	t.Run("should return no transition for statuses outside the pipeline", func(t *testing.T) {
		// ready belongs to pickup, not shipping
		_, ok := order.Next(order.TypeShipping, order.StatusReady)
		assert.False(t, ok)

		// packing belongs to shipping, not pickup
		_, ok = order.Next(order.TypePickup, order.StatusPacking)
		assert.False(t, ok)
	})

	t.Run("should return no transition for unrecognized order types", func(t *testing.T) {
		_, ok := order.Next(order.OrderType("subscription"), order.StatusPending)
		assert.False(t, ok)
	})

	t.Run("should return no transition for unrecognized statuses", func(t *testing.T) {
		_, ok := order.Next(order.TypePickup, order.Status("on_hold"))
		assert.False(t, ok)
	})
}

func TestIsTerminal(t *testing.T) {
	t.Run("should treat cancelled as terminal for every type", func(t *testing.T) {
		orderTypes := []order.OrderType{
			order.TypeWalkIn, order.TypePickup, order.TypeDelivery, order.TypeShipping,
		}

		for _, orderType := range orderTypes {
			assert.True(t, order.IsTerminal(orderType, order.StatusCancelled), orderType)
		}
	})

	t.Run("should treat completed as terminal for walk_in, pickup, delivery", func(t *testing.T) {
		assert.True(t, order.IsTerminal(order.TypeWalkIn, order.StatusCompleted))
		assert.True(t, order.IsTerminal(order.TypePickup, order.StatusCompleted))
		assert.True(t, order.IsTerminal(order.TypeDelivery, order.StatusCompleted))
	})

	t.Run("should treat delivered and legacy completed as terminal for shipping", func(t *testing.T) {
		assert.True(t, order.IsTerminal(order.TypeShipping, order.StatusDelivered))
		assert.True(t, order.IsTerminal(order.TypeShipping, order.StatusCompleted))
	})

	t.Run("should not treat shipped or in_transit as terminal", func(t *testing.T) {
		assert.False(t, order.IsTerminal(order.TypeShipping, order.StatusShipped))
		assert.False(t, order.IsTerminal(order.TypeShipping, order.StatusInTransit))
	})

	t.Run("should not treat mid-pipeline statuses as terminal", func(t *testing.T) {
		assert.False(t, order.IsTerminal(order.TypePickup, order.StatusPreparing))
		assert.False(t, order.IsTerminal(order.TypePickup, order.StatusReady))
		assert.False(t, order.IsTerminal(order.TypeShipping, order.StatusReadyToShip))
	})
}

func TestCanCancel(t *testing.T) {
	t.Run("should allow cancellation from every non-terminal status", func(t *testing.T) {
		testCases := []struct {
			orderType order.OrderType
			status    order.Status
		}{
			{order.TypeWalkIn, order.StatusPending},
			{order.TypePickup, order.StatusPending},
			{order.TypePickup, order.StatusReady},
			{order.TypeDelivery, order.StatusOutForDelivery},
			{order.TypeShipping, order.StatusInTransit},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("%s/%s", tc.orderType, tc.status), func(t *testing.T) {
				assert.True(t, order.CanCancel(tc.orderType, tc.status))
			})
		}
	})

	t.Run("should reject cancellation from terminal statuses", func(t *testing.T) {
		assert.False(t, order.CanCancel(order.TypePickup, order.StatusCompleted))
		assert.False(t, order.CanCancel(order.TypeShipping, order.StatusDelivered))
		assert.False(t, order.CanCancel(order.TypePickup, order.StatusCancelled))
	})

	t.Run("should reject cancellation for illegal type and status pairs", func(t *testing.T) {
		assert.False(t, order.CanCancel(order.TypeWalkIn, order.StatusPreparing))
		assert.False(t, order.CanCancel(order.OrderType("subscription"), order.StatusPending))
	})
}

func TestReachableForward(t *testing.T) {
	t.Run("should reach the immediate next status", func(t *testing.T) {
		assert.True(t, order.ReachableForward(order.TypePickup, order.StatusPending, order.StatusConfirmed))
	})

	t.Run("should reach statuses several steps ahead", func(t *testing.T) {
		// the board's collapsed Start action jumps pending straight to preparing
		assert.True(t, order.ReachableForward(order.TypePickup, order.StatusPending, order.StatusPreparing))
		assert.True(t, order.ReachableForward(order.TypeShipping, order.StatusPending, order.StatusDelivered))
	})

	t.Run("should reject the current status itself", func(t *testing.T) {
		assert.False(t, order.ReachableForward(order.TypePickup, order.StatusPreparing, order.StatusPreparing))
	})

	t.Run("should reject backward targets", func(t *testing.T) {
		assert.False(t, order.ReachableForward(order.TypePickup, order.StatusReady, order.StatusConfirmed))
		assert.False(t, order.ReachableForward(order.TypeShipping, order.StatusShipped, order.StatusPacking))
	})

	t.Run("should reject statuses outside the pipeline", func(t *testing.T) {
		assert.False(t, order.ReachableForward(order.TypePickup, order.StatusPending, order.StatusCancelled))
		assert.False(t, order.ReachableForward(order.TypePickup, order.StatusCancelled, order.StatusCompleted))
		assert.False(t, order.ReachableForward(order.TypeWalkIn, order.StatusPending, order.StatusPreparing))
	})

	t.Run("should reject unrecognized order types", func(t *testing.T) {
		assert.False(t, order.ReachableForward(order.OrderType("subscription"), order.StatusPending, order.StatusCompleted))
	})
}

func TestStatusesFor(t *testing.T) {
	t.Run("should include the pipeline plus cancelled", func(t *testing.T) {
		statuses := order.StatusesFor(order.TypePickup)

		assert.ElementsMatch(t, []order.Status{
			order.StatusPending, order.StatusConfirmed, order.StatusPreparing,
			order.StatusReady, order.StatusCompleted, order.StatusCancelled,
		}, statuses)
	})

	t.Run("should include legacy completed for shipping", func(t *testing.T) {
		statuses := order.StatusesFor(order.TypeShipping)

		assert.Contains(t, statuses, order.StatusCompleted)
		assert.Contains(t, statuses, order.StatusDelivered)
		assert.Contains(t, statuses, order.StatusCancelled)
	})

	t.Run("should return nil for unrecognized types", func(t *testing.T) {
		assert.Nil(t, order.StatusesFor(order.OrderType("subscription")))
	})
}
