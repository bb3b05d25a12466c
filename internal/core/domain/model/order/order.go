package order

import (
	"errors"
	"fmt"
	"strings"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for a customer's request of an item and quantity.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Item name and customer id are non-empty
//   - Quantity is positive
//   - Status only changes through ChangeStatus, following the transition table
//   - Everything except status is immutable
type Order struct {
	id         kernel.UUID
	itemName   string
	quantity   int
	customerID string
	status     Status

	isConstructed bool
}

// NewOrder creates a Pending order. All field violations are reported
// together as a joined error.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), "Widget", 3, "C1")
//	if err != nil {
//	    // validation failed
//	}
func NewOrder(id kernel.UUID, itemName string, quantity int, customerID string) (*Order, error) {
	return build(id, itemName, quantity, customerID, Pending)
}

// RestoreOrder rebuilds an order from storage with its persisted status.
// It applies the same validation as NewOrder and additionally checks the status.
func RestoreOrder(id kernel.UUID, itemName string, quantity int, customerID string, status Status) (*Order, error) {
	return build(id, itemName, quantity, customerID, status)
}

func build(id kernel.UUID, itemName string, quantity int, customerID string, status Status) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setItemName(itemName),
		order.setQuantity(quantity),
		order.setCustomerID(customerID),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ItemName returns the ordered item.
func (o *Order) ItemName() string {
	return o.itemName
}

// Quantity returns how many items were ordered.
func (o *Order) Quantity() int {
	return o.quantity
}

// CustomerID returns the identifier of the requesting customer.
func (o *Order) CustomerID() string {
	return o.customerID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// ChangeStatus moves the order to next when the transition table allows it.
// On failure the order is left untouched.
func (o *Order) ChangeStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Clone returns an independent copy, used by stores that must not share
// mutable aggregates with callers.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	c := *o
	return &c
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setItemName(itemName string) error {
	itemName = strings.TrimSpace(itemName)
	if itemName == "" {
		return errs.NewValueIsRequiredError("item_name")
	}
	o.itemName = itemName
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setCustomerID(customerID string) error {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return errs.NewValueIsRequiredError("customer_id")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// ParseID converts a client-supplied order identifier. A value that is not a
// usable UUID cannot name any order, so it is reported as not found.
func ParseID(raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewObjectNotFoundErrorWithCause("order", raw, err)
	}
	if err = id.Validate(); err != nil {
		return kernel.UUID{}, errs.NewObjectNotFoundErrorWithCause("order", raw, err)
	}
	return id, nil
}
