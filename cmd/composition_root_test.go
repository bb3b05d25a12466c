package cmd_test

import (
	"io"
	"log/slog"
	"testing"

	"ordertracker/cmd"
	"ordertracker/internal/core/application/usecases/commands"
	"ordertracker/internal/core/application/usecases/queries"
	"ordertracker/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositionRoot_Memory(t *testing.T) {
	ctx := t.Context()
	config, err := cmd.ConfigFromLookup(lookupFrom(nil))
	require.NoError(t, err)

	root, err := cmd.NewCompositionRoot(config, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	createHandler := root.CreateCreateOrderCommandHandler()
	changeHandler := root.CreateChangeOrderStatusCommandHandler()
	getHandler := root.CreateGetOrderQueryHandler()
	listHandler := root.CreateListOrdersQueryHandler()

	createCmd, err := commands.NewCreateOrderCommand("Widget", 3, "C1")
	require.NoError(t, err)
	created, err := createHandler.Handle(ctx, createCmd)
	require.NoError(t, err)

	changeCmd, err := commands.NewChangeOrderStatusCommand(created.ID().String(), "processing")
	require.NoError(t, err)
	_, err = changeHandler.Handle(ctx, changeCmd)
	require.NoError(t, err)

	got, err := getHandler.Handle(ctx, queries.NewGetOrderQuery(created.ID().String()))
	require.NoError(t, err)
	assert.Equal(t, order.Processing, got.Status)

	listQuery, err := queries.NewListOrdersQuery("processing")
	require.NoError(t, err)
	listed, err := listHandler.Handle(ctx, listQuery)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID(), listed[0].ID)

	require.NoError(t, root.Close(ctx))
	require.NoError(t, root.Close(ctx), "second close is a no-op")
}
