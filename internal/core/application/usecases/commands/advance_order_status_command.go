package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
		"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
	)
	ErrTargetStatusIsRequired = errors.New("target status is required")
)

// AdvanceOrderStatusCommand requests a forward status transition for an order.
// The target status comes from a resolved action (detail view or board); the
// handler re-validates it against a fresh snapshot before issuing the command,
// so stale requests die locally.
//
// Example:
//
//	cmd, err := NewAdvanceOrderStatusCommand(orderID, action.TargetStatus)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); errors.Is(err, ErrActionOutOfDate) {
//	    // Refresh the snapshot and re-resolve the action.
//	}
type AdvanceOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	targetStatus order.Status

	guard guard.ConstructorGuard
}

// NewAdvanceOrderStatusCommand creates a command to advance an order to the
// target status. Validates that the order ID is valid and a target is given.
func NewAdvanceOrderStatusCommand(
	orderID kernel.UUID,
	targetStatus order.Status,
) (AdvanceOrderStatusCommand, error) {
	cmd := AdvanceOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTargetStatus(targetStatus),
	); err != nil {
		return AdvanceOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c AdvanceOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TargetStatus returns the status the order should move to.
func (c AdvanceOrderStatusCommand) TargetStatus() order.Status {
	return c.targetStatus
}

func (c *AdvanceOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderStatusCommand) setTargetStatus(targetStatus order.Status) error {
	if targetStatus == "" {
		return ErrTargetStatusIsRequired
	}
	c.targetStatus = targetStatus
	return nil
}
