package commands

import (
	"errors"
	"strings"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"
	"ordertracker/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
	ErrOrderIDIsRequired   = errs.NewValueIsRequiredError("order_id")
	ErrNewStatusIsRequired = errs.NewValueIsRequiredError("new_status")
)

// ChangeOrderStatusCommand requests moving an order to a new status.
// The order id stays in its raw form; resolving it is the handler's job
// because an unusable id means "not found", not "invalid".
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   string
	newStatus order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand validates that an order id is present and that
// newStatus names a known status. Whether the transition is allowed depends on
// the stored order and is checked by the handler.
func NewChangeOrderStatusCommand(orderID string, newStatus string) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the raw order identifier.
func (c ChangeOrderStatusCommand) OrderID() string {
	return c.orderID
}

// NewStatus returns the requested status.
func (c ChangeOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID string) error {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setNewStatus(newStatus string) error {
	if newStatus == "" {
		return ErrNewStatusIsRequired
	}

	status, err := order.ParseStatus(newStatus)
	if err != nil {
		return err
	}

	c.newStatus = status
	return nil
}
