// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and their
// relational representation.
package orderrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The monetary total is stored as an exact numeric plus a
// currency code; Version backs optimistic concurrency control.
type OrderDTO struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderNumber         string          `gorm:"type:varchar(32);uniqueIndex"`
	UserID              uuid.UUID       `gorm:"type:uuid;index"`
	RestaurantID        uuid.UUID       `gorm:"type:uuid;index"`
	Status              int             `gorm:"index"`
	TotalAmount         decimal.Decimal `gorm:"type:numeric(12,2)"`
	Currency            string          `gorm:"type:char(3)"`
	SpecialInstructions string
	EstimatedPickupTime *time.Time
	ActualPickupTime    *time.Time
	Version             int
	CreatedAt           time.Time `gorm:"index"`
	UpdatedAt           time.Time
	Items               []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents a persisted order line item. The menu item name
// and unit price are snapshots taken when the item was added.
type OrderItemDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID       `gorm:"type:uuid;index"`
	MenuItemID   uuid.UUID       `gorm:"type:uuid"`
	MenuItemName string          `gorm:"type:varchar(255)"`
	UnitPrice    decimal.Decimal `gorm:"type:numeric(12,2)"`
	Currency     string          `gorm:"type:char(3)"`
	Quantity     int
	SpecialNotes string
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation,
// items included.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemFromDomain(aggregate.ID(), item))
	}

	return OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		OrderNumber:         aggregate.OrderNumber(),
		UserID:              aggregate.UserID().Bytes(),
		RestaurantID:        aggregate.RestaurantID().Bytes(),
		Status:              int(aggregate.Status()),
		TotalAmount:         aggregate.TotalAmount().Amount(),
		Currency:            aggregate.TotalAmount().Currency(),
		SpecialInstructions: aggregate.SpecialInstructions(),
		EstimatedPickupTime: aggregate.EstimatedPickupTime(),
		ActualPickupTime:    aggregate.ActualPickupTime(),
		Version:             aggregate.Version(),
		Items:               items,
	}
}

func itemFromDomain(orderID kernel.UUID, item *order.OrderItem) OrderItemDTO {
	return OrderItemDTO{
		ID:           item.ID().Bytes(),
		OrderID:      orderID.Bytes(),
		MenuItemID:   item.MenuItemID().Bytes(),
		MenuItemName: item.MenuItemName(),
		UnitPrice:    item.UnitPrice().Amount(),
		Currency:     item.UnitPrice().Currency(),
		Quantity:     item.Quantity(),
		SpecialNotes: item.SpecialNotes(),
	}
}

// toDomain converts a database DTO to an order aggregate.
// Reconstructs the complete aggregate, items included, through
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.TotalAmount, dto.Currency)
	if err != nil {
		return nil, err
	}

	items := make([]*order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		userID,
		restaurantID,
		order.Status(dto.Status),
		total,
		dto.SpecialInstructions,
		dto.EstimatedPickupTime,
		dto.ActualPickupTime,
		items,
		dto.Version,
	)
}

func itemToDomain(dto OrderItemDTO) (*order.OrderItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice, dto.Currency)
	if err != nil {
		return nil, err
	}

	return order.NewOrderItem(id, menuItemID, dto.MenuItemName, unitPrice, dto.Quantity, dto.SpecialNotes)
}
