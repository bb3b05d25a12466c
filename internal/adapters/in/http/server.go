// Package http exposes the order use cases over HTTP with Echo.
package http

import (
	"errors"
	"log/slog"
	"net/http"

	"ordertracker/internal/core/application/usecases/commands"
	"ordertracker/internal/core/application/usecases/queries"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler

	// Query handlers
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		getOrderHandler:          getOrderHandler,
		listOrdersHandler:        listOrdersHandler,
		logger:                   logger.With("component", "http_server"),
	}
}

// ListOrders handles GET /api/orders - lists orders, optionally by status.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	var status string
	if params.Status != nil {
		status = string(*params.Status)
	}

	query, err := queries.NewListOrdersQuery(status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return s.respondBindError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(newOrder.ItemName, newOrder.Quantity, newOrder.CustomerId)
	if err != nil {
		return s.respondError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, fromAggregate(created))
}

// GetOrder handles GET /api/orders/{order_id}.
func (s *Server) GetOrder(ctx echo.Context, orderID servers.OrderID) error {
	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), queries.NewGetOrderQuery(orderID))
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(result))
}

// UpdateOrderStatus handles PUT /api/orders/{order_id}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderID servers.OrderID) error {
	var update servers.StatusUpdate
	if err := ctx.Bind(&update); err != nil {
		return s.respondBindError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, update.NewStatus)
	if err != nil {
		return s.respondError(ctx, err)
	}

	updated, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAggregate(updated))
}

func (s *Server) respondBindError(ctx echo.Context, err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return ctx.JSON(httpErr.Code, servers.Error{Error: httpErrorMessage(httpErr)})
	}
	return ctx.JSON(http.StatusBadRequest, servers.Error{Error: "invalid request body"})
}

func toOrder(o queries.OrderResponse) servers.Order {
	return servers.Order{
		OrderId:    o.ID.String(),
		ItemName:   o.ItemName,
		Quantity:   o.Quantity,
		CustomerId: o.CustomerID,
		Status:     servers.OrderStatus(o.Status),
	}
}

func fromAggregate(o *order.Order) servers.Order {
	return toOrder(queries.NewOrderResponse(o))
}
