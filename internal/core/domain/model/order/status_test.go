package order_test

import (
	"fmt"
	"testing"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	t.Run("should parse every valid status", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			t.Run(status.String(), func(t *testing.T) {
				parsed, err := order.ParseStatus(string(status))

				require.NoError(t, err)
				assert.Equal(t, status, parsed)
			})
		}
	})

	t.Run("should reject unknown values", func(t *testing.T) {
		for _, raw := range []string{"", "Pending", "PENDING", "done", " pending"} {
			t.Run(fmt.Sprintf("value %q", raw), func(t *testing.T) {
				parsed, err := order.ParseStatus(raw)

				require.Error(t, err)
				assert.Equal(t, order.Unknown, parsed)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "is not a valid status")
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire names for valid statuses", func(t *testing.T) {
		assert.Equal(t, "pending", order.Pending.String())
		assert.Equal(t, "processing", order.Processing.String())
		assert.Equal(t, "shipped", order.Shipped.String())
		assert.Equal(t, "delivered", order.Delivered.String())
		assert.Equal(t, "cancelled", order.Cancelled.String())
	})

	t.Run("should return unknown for invalid statuses", func(t *testing.T) {
		assert.Equal(t, "unknown", order.Unknown.String())
		assert.Equal(t, "unknown", order.Status("lost").String())
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	testCases := []struct {
		status   order.Status
		terminal bool
	}{
		{order.Pending, false},
		{order.Processing, false},
		{order.Shipped, false},
		{order.Delivered, true},
		{order.Cancelled, true},
		{order.Unknown, false},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("status %q", string(tc.status)), func(t *testing.T) {
			assert.Equal(t, tc.terminal, tc.status.IsTerminal())
		})
	}
}

func TestStatus_TransitionTable(t *testing.T) {
	allowed := map[order.Status][]order.Status{
		order.Pending:    {order.Processing, order.Cancelled},
		order.Processing: {order.Shipped, order.Cancelled},
		order.Shipped:    {order.Delivered},
		order.Delivered:  {},
		order.Cancelled:  {},
	}

	t.Run("should enforce the table exhaustively", func(t *testing.T) {
		for _, from := range order.AllStatuses() {
			for _, to := range order.AllStatuses() {
				name := fmt.Sprintf("%s to %s", from, to)
				t.Run(name, func(t *testing.T) {
					expected := false
					for _, s := range allowed[from] {
						if s == to {
							expected = true
						}
					}

					next, err := from.TransitionTo(to)

					assert.Equal(t, expected, from.CanTransitionTo(to))
					if expected {
						require.NoError(t, err)
						assert.Equal(t, to, next)
						return
					}
					require.Error(t, err)
					assert.Equal(t, order.Unknown, next)
					assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
					assert.Contains(t, err.Error(), fmt.Sprintf("cannot change status from %s to %s", from, to))
				})
			}
		}
	})

	t.Run("should report allowed transitions in table order", func(t *testing.T) {
		for from, expected := range allowed {
			assert.Equal(t, expected, from.AllowedTransitions(), "from %s", from)
		}
	})

	t.Run("should not expose internal table", func(t *testing.T) {
		next := order.Pending.AllowedTransitions()
		next[0] = order.Delivered

		assert.Equal(t, []order.Status{order.Processing, order.Cancelled}, order.Pending.AllowedTransitions())
	})
}

func TestStatus_ValidateTransition(t *testing.T) {
	t.Run("should reject unknown target status", func(t *testing.T) {
		err := order.Pending.ValidateTransition(order.Status("lost"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), `"lost" is not a valid status`)
	})

	t.Run("should reject transitions from unknown status", func(t *testing.T) {
		err := order.Unknown.ValidateTransition(order.Pending)

		require.Error(t, err)
		assert.Contains(t, err.Error(), `"" is not a valid status`)
	})

	t.Run("should reject delivered to pending", func(t *testing.T) {
		err := order.Delivered.ValidateTransition(order.Pending)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "cannot change status from delivered to pending")
	})
}

func TestStatus_Immutability(t *testing.T) {
	t.Run("should not modify original status during transitions", func(t *testing.T) {
		original := order.Pending

		next, err := original.TransitionTo(order.Processing)
		require.NoError(t, err)

		assert.Equal(t, order.Pending, original)
		assert.Equal(t, order.Processing, next)
	})
}
