package commands

import (
	"context"
	"log/slog"
	"time"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/ports"
)

// ChangeOrderStatusCommandHandler applies status transitions.
//
// The order is read with GetForUpdate, so the transition check and the write
// happen while no other unit of work can change the same order. Once the
// transaction commits, an OrderStatusChanged event is published; a publishing
// failure is logged and does not fail the command.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
	now        func() time.Time
}

// NewChangeOrderStatusCommandHandler creates a handler for status updates.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "change_order_status_handler"),
		now:        time.Now,
	}
}

// Handle moves the order to the requested status and returns the stored order.
//
// Returns:
//   - ObjectNotFoundError if the id is unusable or unknown
//   - ValueIsInvalidError if the transition table forbids the move
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	orderID, err := order.ParseID(cmd.OrderID())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, orderID)
	if err != nil {
		return nil, err
	}

	oldStatus := aggregate.Status()
	if err = aggregate.ChangeStatus(cmd.NewStatus()); err != nil {
		return nil, err
	}

	updated, err := orderRepo.UpdateStatus(ctx, orderID, aggregate.Status())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	event := ports.OrderStatusChanged{
		OrderID:    updated.ID(),
		CustomerID: updated.CustomerID(),
		OldStatus:  oldStatus,
		NewStatus:  updated.Status(),
		OccurredAt: h.now().UTC(),
	}
	// The change is committed; a client leaving now must not drop the event.
	if pubErr := h.publisher.PublishStatusChanged(context.WithoutCancel(ctx), event); pubErr != nil {
		h.logger.WarnContext(ctx, "Failed to publish order status change",
			"order_id", updated.ID().String(),
			"new_status", updated.Status().String(),
			"error", pubErr,
		)
	}

	return updated, nil
}
