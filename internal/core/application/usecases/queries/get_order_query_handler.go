package queries

import (
	"context"

	"ordertracker/internal/core/domain/model/order"
)

// GetOrderQueryHandler looks up single orders.
type GetOrderQueryHandler struct {
	reader OrderReader
}

// NewGetOrderQueryHandler creates a handler reading from the given store.
func NewGetOrderQueryHandler(reader OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{reader: reader}
}

// Handle returns the order or an ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	id, err := order.ParseID(query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	aggregate, err := h.reader.Get(ctx, id)
	if err != nil {
		return OrderResponse{}, err
	}

	return NewOrderResponse(aggregate), nil
}
