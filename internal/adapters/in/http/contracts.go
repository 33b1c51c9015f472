package http

import "time"

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	UserID              string `json:"user_id"`
	RestaurantID        string `json:"restaurant_id"`
	Currency            string `json:"currency"`
	SpecialInstructions string `json:"special_instructions"`
}

// CreateOrderResponse returns the identifiers of a newly placed order.
type CreateOrderResponse struct {
	ID          string `json:"id"`
	OrderNumber string `json:"order_number"`
}

// AddOrderItemRequest is the body of POST /api/v1/orders/:id/items.
type AddOrderItemRequest struct {
	MenuItemID   string `json:"menu_item_id"`
	MenuItemName string `json:"menu_item_name"`
	UnitPrice    string `json:"unit_price"`
	Currency     string `json:"currency"`
	Quantity     int    `json:"quantity"`
	SpecialNotes string `json:"special_notes"`
}

// UpdateItemQuantityRequest is the body of PATCH /api/v1/orders/:id/items/:itemID.
type UpdateItemQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// ChangeOrderStatusRequest is the body of POST /api/v1/orders/:id/status.
// Status is a case-insensitive status name, e.g. "Confirmed".
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse is the body of GET /api/v1/orders/:id.
type OrderResponse struct {
	ID                  string              `json:"id"`
	OrderNumber         string              `json:"order_number"`
	UserID              string              `json:"user_id"`
	RestaurantID        string              `json:"restaurant_id"`
	Status              string              `json:"status"`
	TotalAmount         string              `json:"total_amount"`
	Currency            string              `json:"currency"`
	SpecialInstructions string              `json:"special_instructions,omitempty"`
	EstimatedPickupTime *time.Time          `json:"estimated_pickup_time,omitempty"`
	ActualPickupTime    *time.Time          `json:"actual_pickup_time,omitempty"`
	CreatedAt           time.Time           `json:"created_at"`
	Items               []OrderItemResponse `json:"items"`
}

// OrderItemResponse is one line item inside OrderResponse.
type OrderItemResponse struct {
	ID           string `json:"id"`
	MenuItemID   string `json:"menu_item_id"`
	MenuItemName string `json:"menu_item_name"`
	UnitPrice    string `json:"unit_price"`
	Quantity     int    `json:"quantity"`
	Subtotal     string `json:"subtotal"`
	SpecialNotes string `json:"special_notes,omitempty"`
}

// ActiveOrderResponse is one element of the GET /api/v1/orders/active list.
type ActiveOrderResponse struct {
	ID          string    `json:"id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	TotalAmount string    `json:"total_amount"`
	Currency    string    `json:"currency"`
	ItemCount   int       `json:"item_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
