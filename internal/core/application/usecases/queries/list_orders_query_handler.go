package queries

import (
	"context"
)

// ListOrdersQueryHandler lists orders in insertion order.
type ListOrdersQueryHandler struct {
	reader OrderReader
}

// NewListOrdersQueryHandler creates a handler reading from the given store.
func NewListOrdersQueryHandler(reader OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{reader: reader}
}

// Handle returns every matching order. The result is never nil.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.reader.List(ctx, query.status)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, NewOrderResponse(o))
	}

	return responses, nil
}
