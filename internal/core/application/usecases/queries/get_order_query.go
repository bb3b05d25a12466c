package queries

import (
	"errors"
	"strings"

	"ordertracker/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order by its identifier.
//
// Example:
//
//	query := NewGetOrderQuery(c.Param("order_id"))
//	response, err := handler.Handle(ctx, query)
//	if errs.IsNotFound(err) {
//	    // 404
//	}
type GetOrderQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a raw order identifier. Any string is
// accepted; an id that cannot name an order yields a not found error from
// the handler.
func NewGetOrderQuery(orderID string) GetOrderQuery {
	return GetOrderQuery{
		orderID: strings.TrimSpace(orderID),
		guard:   guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the raw identifier.
func (q GetOrderQuery) OrderID() string {
	return q.orderID
}
