// Package http exposes the order lifecycle as a REST surface. Handlers
// translate JSON requests into commands and queries and map error kinds to
// status codes: validation failures become 400, missing objects 404, and
// state conflicts (illegal transitions, terminal orders, version races) 409.
package http

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	addItemHandler        commands.AddOrderItemCommandHandler
	removeItemHandler     commands.RemoveOrderItemCommandHandler
	updateQuantityHandler commands.UpdateItemQuantityCommandHandler
	changeStatusHandler   commands.ChangeOrderStatusCommandHandler
	cancelOrderHandler    commands.CancelOrderCommandHandler

	// Query handlers
	getOrderHandler        queries.GetOrderQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addItemHandler commands.AddOrderItemCommandHandler,
	removeItemHandler commands.RemoveOrderItemCommandHandler,
	updateQuantityHandler commands.UpdateItemQuantityCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		addItemHandler:         addItemHandler,
		removeItemHandler:      removeItemHandler,
		updateQuantityHandler:  updateQuantityHandler,
		changeStatusHandler:    changeStatusHandler,
		cancelOrderHandler:     cancelOrderHandler,
		getOrderHandler:        getOrderHandler,
		getActiveOrdersHandler: getActiveOrdersHandler,
	}
}

// RegisterRoutes attaches all order endpoints to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/items", s.AddOrderItem)
	api.DELETE("/orders/:id/items/:itemID", s.RemoveOrderItem)
	api.PATCH("/orders/:id/items/:itemID", s.UpdateItemQuantity)
	api.POST("/orders/:id/status", s.ChangeOrderStatus)
	api.POST("/orders/:id/cancel", s.CancelOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(request.UserID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid user id: "+err.Error())
	}
	restaurantID, err := kernel.UUIDFromString(request.RestaurantID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid restaurant id: "+err.Error())
	}

	orderID := kernel.NewUUID()
	orderNumber := generateOrderNumber(time.Now())

	cmd, err := commands.NewCreateOrderCommand(
		orderID, orderNumber, userID, restaurantID, request.Currency, request.SpecialInstructions)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainErrorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		ID:          orderID.String(),
		OrderNumber: orderNumber,
	})
}

// AddOrderItem handles POST /api/v1/orders/:id/items - adds a line item.
func (s *Server) AddOrderItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	var request AddOrderItemRequest
	if err = ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	menuItemID, err := kernel.UUIDFromString(request.MenuItemID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid menu item id: "+err.Error())
	}

	unitPrice, err := kernel.NewMoneyFromString(request.UnitPrice, request.Currency)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid unit price: "+err.Error())
	}

	cmd, err := commands.NewAddOrderItemCommand(
		orderID, menuItemID, request.MenuItemName, unitPrice, request.Quantity, request.SpecialNotes)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid item data: "+err.Error())
	}

	if handleErr := s.addItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainErrorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveOrderItem handles DELETE /api/v1/orders/:id/items/:itemID.
// Removing an item the order does not have succeeds without effect.
func (s *Server) RemoveOrderItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}
	itemID, err := kernel.UUIDFromString(ctx.Param("itemID"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid item id: "+err.Error())
	}

	cmd, err := commands.NewRemoveOrderItemCommand(orderID, itemID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
	}

	if handleErr := s.removeItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainErrorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateItemQuantity handles PATCH /api/v1/orders/:id/items/:itemID.
func (s *Server) UpdateItemQuantity(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}
	itemID, err := kernel.UUIDFromString(ctx.Param("itemID"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid item id: "+err.Error())
	}

	var request UpdateItemQuantityRequest
	if err = ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateItemQuantityCommand(orderID, itemID, request.Quantity)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid quantity: "+err.Error())
	}

	if handleErr := s.updateQuantityHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainErrorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status - moves an order
// through the fulfillment workflow.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	var request ChangeOrderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	newStatus, err := order.StatusFromString(request.Status)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, newStatus)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
	}

	if handleErr := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainErrorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - the customer-facing
// cancellation, allowed only before preparation starts.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainErrorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order with items.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	items := make([]OrderItemResponse, len(result.Items))
	for i, item := range result.Items {
		items[i] = OrderItemResponse{
			ID:           item.ID.String(),
			MenuItemID:   item.MenuItemID.String(),
			MenuItemName: item.MenuItemName,
			UnitPrice:    item.UnitPrice,
			Quantity:     item.Quantity,
			Subtotal:     item.Subtotal,
			SpecialNotes: item.SpecialNotes,
		}
	}

	return ctx.JSON(http.StatusOK, OrderResponse{
		ID:                  result.ID.String(),
		OrderNumber:         result.OrderNumber,
		UserID:              result.UserID.String(),
		RestaurantID:        result.RestaurantID.String(),
		Status:              result.Status,
		TotalAmount:         result.TotalAmount,
		Currency:            result.Currency,
		SpecialInstructions: result.SpecialInstructions,
		EstimatedPickupTime: result.EstimatedPickupTime,
		ActualPickupTime:    result.ActualPickupTime,
		CreatedAt:           result.CreatedAt,
		Items:               items,
	})
}

// GetActiveOrders handles GET /api/v1/orders/active - lists orders that are
// neither completed nor cancelled.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	results, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	response := make([]ActiveOrderResponse, len(results))
	for i, result := range results {
		response[i] = ActiveOrderResponse{
			ID:          result.ID.String(),
			OrderNumber: result.OrderNumber,
			Status:      result.Status,
			TotalAmount: result.TotalAmount,
			Currency:    result.Currency,
			ItemCount:   result.ItemCount,
			CreatedAt:   result.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// generateOrderNumber builds a human-readable order number. Uniqueness is
// ultimately enforced by the database unique index on order_number.
func generateOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD-%s-%04d", now.Format("20060102"), rand.IntN(10000))
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}

// domainErrorResponse translates application errors into HTTP status codes.
func domainErrorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrCancellationNotAllowed),
		errors.Is(err, order.ErrOrderIsNotActive),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorResponse(ctx, http.StatusInternalServerError, "Internal server error")
	}
}
