package commands

import (
	"errors"
	"strings"

	"ordertracker/internal/pkg/errs"
	"ordertracker/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemNameIsRequired   = errs.NewValueIsRequiredError("item_name")
	ErrCustomerIDIsRequired = errs.NewValueIsRequiredError("customer_id")
	ErrQuantityIsInvalid    = errs.NewValueIsInvalidErrorWithCause(
		"quantity", errors.New("quantity must be greater than 0"),
	)
)

// CreateOrderCommand represents a request to place a new order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("Widget", 3, "C1")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	itemName   string
	quantity   int
	customerID string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the client input for a new order.
// Every violation is reported at once through errors.Join.
func NewCreateOrderCommand(itemName string, quantity int, customerID string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemName(itemName),
		cmd.setQuantity(quantity),
		cmd.setCustomerID(customerID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// ItemName returns the trimmed item name.
func (c CreateOrderCommand) ItemName() string {
	return c.itemName
}

// Quantity returns the number of items.
func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

// CustomerID returns the trimmed customer identifier.
func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

func (c *CreateOrderCommand) setItemName(itemName string) error {
	itemName = strings.TrimSpace(itemName)
	if itemName == "" {
		return ErrItemNameIsRequired
	}

	c.itemName = itemName
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return ErrCustomerIDIsRequired
	}

	c.customerID = customerID
	return nil
}
