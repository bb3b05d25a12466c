package queries_test

import (
	"errors"
	"testing"

	"ordertracker/internal/core/application/usecases/queries"
	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetOrderQueryHandler_Handle(t *testing.T) {
	t.Run("returns the stored order", func(t *testing.T) {
		ctx := t.Context()
		stored, err := order.RestoreOrder(kernel.NewUUID(), "Widget", 3, "C1", order.Shipped)
		require.NoError(t, err)

		reader := new(MockOrderReader)
		reader.On("Get", ctx, stored.ID()).Return(stored, nil).Once()

		h := queries.NewGetOrderQueryHandler(reader)
		response, err := h.Handle(ctx, queries.NewGetOrderQuery(stored.ID().String()))
		require.NoError(t, err)
		assert.Equal(t, queries.OrderResponse{
			ID:         stored.ID(),
			ItemName:   "Widget",
			Quantity:   3,
			CustomerID: "C1",
			Status:     order.Shipped,
		}, response)
		reader.AssertExpectations(t)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		reader := new(MockOrderReader)
		reader.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()

		h := queries.NewGetOrderQueryHandler(reader)
		_, err := h.Handle(ctx, queries.NewGetOrderQuery(id.String()))
		require.Error(t, err)
		assert.True(t, errs.IsNotFound(err))
	})

	t.Run("malformed id is not found without touching the store", func(t *testing.T) {
		reader := new(MockOrderReader)
		h := queries.NewGetOrderQueryHandler(reader)

		for _, raw := range []string{"", "no-such-order", "00000000-0000-0000-0000-000000000000"} {
			_, err := h.Handle(t.Context(), queries.NewGetOrderQuery(raw))
			require.Error(t, err)
			assert.True(t, errs.IsNotFound(err), raw)
		}
		reader.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("store failure is passed through", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		reader := new(MockOrderReader)
		reader.On("Get", ctx, id).Return(nil, errors.New("connection reset")).Once()

		h := queries.NewGetOrderQueryHandler(reader)
		_, err := h.Handle(ctx, queries.NewGetOrderQuery(id.String()))
		require.EqualError(t, err, "connection reset")
	})

	t.Run("zero query is rejected", func(t *testing.T) {
		h := queries.NewGetOrderQueryHandler(new(MockOrderReader))
		_, err := h.Handle(t.Context(), queries.GetOrderQuery{})
		require.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
	})
}
