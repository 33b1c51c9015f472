package queries

import (
	"context"
	"database/sql"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order straight from the
// database, bypassing the domain model.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an object-not-found error when no
// order exists under the given identifier.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	response, err := h.fetchOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	items, err := h.fetchItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Items = items

	return response, nil
}

func (h GetOrderQueryHandler) fetchOrder(ctx context.Context, orderID kernel.UUID) (GetOrderQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			user_id,
			restaurant_id,
			status,
			total_amount,
			currency,
			special_instructions,
			estimated_pickup_time,
			actual_pickup_time,
			created_at
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", orderID.String())
	}

	var response GetOrderQueryResponse
	var id, userID, restaurantID uuid.UUID
	var status int
	var totalAmount decimal.Decimal
	var estimated, actual sql.NullTime

	err = rows.Scan(
		&id,
		&response.OrderNumber,
		&userID,
		&restaurantID,
		&status,
		&totalAmount,
		&response.Currency,
		&response.SpecialInstructions,
		&estimated,
		&actual,
		&response.CreatedAt,
	)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}

	response.Status = order.Status(status).String()
	response.TotalAmount = totalAmount.StringFixed(2)
	if estimated.Valid {
		response.EstimatedPickupTime = &estimated.Time
	}
	if actual.Valid {
		response.ActualPickupTime = &actual.Time
	}

	return response, rows.Err()
}

func (h GetOrderQueryHandler) fetchItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]GetOrderQueryItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			menu_item_id,
			menu_item_name,
			unit_price,
			quantity,
			special_notes
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetOrderQueryItemResponse, 0)
	for rows.Next() {
		var item GetOrderQueryItemResponse
		var id, menuItemID uuid.UUID
		var unitPrice decimal.Decimal

		err = rows.Scan(
			&id,
			&menuItemID,
			&item.MenuItemName,
			&unitPrice,
			&item.Quantity,
			&item.SpecialNotes,
		)
		if err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.MenuItemID, err = kernel.UUIDFromBytes(menuItemID[:]); err != nil {
			return nil, err
		}

		item.UnitPrice = unitPrice.StringFixed(2)
		item.Subtotal = unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))).StringFixed(2)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
