package order

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// minQuantity is the smallest quantity a line item may carry.
const minQuantity = 1

var (
	// ErrOrderItemIsNotConstructed indicates that the OrderItem was not
	// properly initialized through the NewOrderItem constructor function.
	ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")
)

// OrderItem is a line item owned exclusively by one Order: a menu item
// reference with a name and unit-price snapshot taken at order time, a
// quantity, and optional preparation notes.
//
// The snapshot is immutable once created: later price or name changes to the
// underlying menu item do not retroactively affect already-placed orders.
// Quantity is the only mutable field and must stay >= 1.
type OrderItem struct {
	// id uniquely identifies the line item within its order
	id kernel.UUID

	// menuItemID references the menu item this line was created from
	menuItemID kernel.UUID

	// menuItemName is the name snapshot captured at order time
	menuItemName string

	// unitPrice is the price snapshot captured at order time
	unitPrice kernel.Money

	// quantity is the number of units ordered (>= 1)
	quantity int

	// specialNotes carries optional preparation notes
	specialNotes string

	// guard ensures the item was properly constructed
	guard guard.ConstructorGuard
}

// NewOrderItem creates a line item with a price/name snapshot of the given
// menu item. Fails with a validation error if the quantity is below 1, the
// name is empty, or any identifier or the unit price is invalid.
func NewOrderItem(
	id kernel.UUID,
	menuItemID kernel.UUID,
	menuItemName string,
	unitPrice kernel.Money,
	quantity int,
	specialNotes string,
) (*OrderItem, error) {
	item := &OrderItem{
		specialNotes: specialNotes,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setMenuItemID(menuItemID),
		item.setMenuItemName(menuItemName),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the item was created through NewOrderItem.
func (i *OrderItem) Validate() error {
	if i == nil {
		return ErrOrderItemIsNotConstructed
	}
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

// IsEqual compares two items by their unique identifiers.
func (i *OrderItem) IsEqual(other *OrderItem) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the line item's unique identifier.
func (i *OrderItem) ID() kernel.UUID {
	return i.id
}

// MenuItemID returns the referenced menu item's identifier.
func (i *OrderItem) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// MenuItemName returns the name snapshot captured at order time.
func (i *OrderItem) MenuItemName() string {
	return i.menuItemName
}

// UnitPrice returns the price snapshot captured at order time.
func (i *OrderItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the ordered quantity.
func (i *OrderItem) Quantity() int {
	return i.quantity
}

// SpecialNotes returns the optional preparation notes.
func (i *OrderItem) SpecialNotes() string {
	return i.specialNotes
}

// Subtotal returns unitPrice multiplied by quantity, in the currency of the
// unit price.
func (i *OrderItem) Subtotal() (kernel.Money, error) {
	if err := i.Validate(); err != nil {
		return kernel.Money{}, err
	}
	return i.unitPrice.MultiplyInt(i.quantity)
}

// UpdateQuantity changes the ordered quantity.
// Fails with a validation error for quantities below 1; the item is left
// unchanged on failure.
func (i *OrderItem) UpdateQuantity(newQuantity int) error {
	if err := i.Validate(); err != nil {
		return err
	}
	return i.setQuantity(newQuantity)
}

func (i *OrderItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *OrderItem) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	i.menuItemID = menuItemID
	return nil
}

func (i *OrderItem) setMenuItemName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("menuItemName")
	}
	i.menuItemName = name
	return nil
}

func (i *OrderItem) setUnitPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.unitPrice = price
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity < minQuantity {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is less than %d", quantity, minQuantity),
		)
	}
	i.quantity = quantity
	return nil
}
