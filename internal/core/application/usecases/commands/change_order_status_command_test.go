package commands_test

import (
	"testing"

	"ordertracker/internal/core/application/usecases/commands"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStatusCommand(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		cmd, err := commands.NewChangeOrderStatusCommand(" abc ", "shipped")
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "abc", cmd.OrderID())
		assert.Equal(t, order.Shipped, cmd.NewStatus())
	})

	t.Run("missing order id", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand("", "shipped")
		require.ErrorIs(t, err, commands.ErrOrderIDIsRequired)
	})

	t.Run("missing status", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand("abc", "")
		require.ErrorIs(t, err, commands.ErrNewStatusIsRequired)
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("unknown status", func(t *testing.T) {
		cmd, err := commands.NewChangeOrderStatusCommand("abc", "returned")
		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
		assert.Equal(t, commands.ErrChangeOrderStatusCommandIsNotConstructed, cmd.Validate())
	})

	t.Run("status is case sensitive", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand("abc", "Shipped")
		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
	})
}
