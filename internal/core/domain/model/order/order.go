package order

import (
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// DefaultPickupSLA is the pickup-time estimate stamped when an order becomes
// Ready without an estimate already set.
const DefaultPickupSLA = 5 * time.Minute

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderIsNotActive is returned when attempting to mutate the item
	// list of an order that has reached a terminal status.
	ErrOrderIsNotActive = errors.New("order is in a terminal status")

	// ErrCancellationNotAllowed is returned by Cancel when the order has
	// progressed past Confirmed. The generic ChangeStatus(Cancelled) path
	// still allows cancellation from Preparing and Ready.
	ErrCancellationNotAllowed = errors.New("order can no longer be cancelled")
)

// Order is the aggregate root of the order lifecycle. It owns an ordered
// collection of line items, keeps the monetary total exactly equal to the
// sum of item subtotals, and is the sole entry point for status transitions.
//
// Invariants held after every mutating operation:
//   - totalAmount equals the sum of item subtotals, with exact decimal
//     equality
//   - status only moves along the transition table; no external mutation
//     bypasses validation
//   - every item quantity is >= 1
//   - actualPickupTime is set if and only if the order reached Completed
//
// Mutating operations either succeed completely or leave the order
// unchanged. Operations that need the current time take it as a parameter so
// callers inject the clock. Domain events are returned as plain values, not
// queued on the entity.
//
// The aggregate is a single-threaded data structure; concurrent-modification
// safety is supplied at the persistence boundary through the version counter
// it carries.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// orderNumber is the unique human-facing identifier
	orderNumber string

	// userID identifies the customer who placed the order
	userID kernel.UUID

	// restaurantID identifies the fulfilling restaurant
	restaurantID kernel.UUID

	// status is the current state in the order lifecycle
	status Status

	// totalAmount is the sum of all item subtotals; its currency anchors
	// the currency of every item
	totalAmount kernel.Money

	// specialInstructions carries optional order-level notes
	specialInstructions string

	// estimatedPickupTime is set when the order becomes Ready (nil before)
	estimatedPickupTime *time.Time

	// actualPickupTime is set when the order is Completed (nil before)
	actualPickupTime *time.Time

	// items is the ordered collection of owned line items
	items []*OrderItem

	// version supports optimistic concurrency at the persistence boundary
	version int

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder places a new order in Pending status with an empty item list.
// The initial total establishes the order's currency; items added later must
// match it. Returns the order together with the OrderCreated event for the
// caller to publish.
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	userID kernel.UUID,
	restaurantID kernel.UUID,
	initialTotal kernel.Money,
	specialInstructions string,
) (*Order, OrderCreated, error) {
	o := &Order{
		status:              Pending,
		specialInstructions: specialInstructions,
		isConstructed:       true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setUserID(userID),
		o.setRestaurantID(restaurantID),
		o.setTotalAmount(initialTotal),
	); err != nil {
		return nil, OrderCreated{}, err
	}

	event := OrderCreated{
		OrderID:      o.id,
		OrderNumber:  o.orderNumber,
		UserID:       o.userID,
		RestaurantID: o.restaurantID,
	}

	return o, event, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// including its items, timestamps, and version. The restored order behaves
// identically to one built through normal domain operations.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	userID kernel.UUID,
	restaurantID kernel.UUID,
	status Status,
	totalAmount kernel.Money,
	specialInstructions string,
	estimatedPickupTime *time.Time,
	actualPickupTime *time.Time,
	items []*OrderItem,
	version int,
) (*Order, error) {
	o := &Order{
		specialInstructions: specialInstructions,
		estimatedPickupTime: estimatedPickupTime,
		actualPickupTime:    actualPickupTime,
		version:             version,
		isConstructed:       true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setUserID(userID),
		o.setRestaurantID(restaurantID),
		o.setStatus(status),
		o.setTotalAmount(totalAmount),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the unique human-facing identifier.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// UserID returns the customer's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// RestaurantID returns the fulfilling restaurant's identifier.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the order total, exactly the sum of item subtotals.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// SpecialInstructions returns the optional order-level notes.
func (o *Order) SpecialInstructions() string {
	return o.specialInstructions
}

// EstimatedPickupTime returns the pickup estimate, nil until the order
// becomes Ready (or until a caller sets one through a transition).
func (o *Order) EstimatedPickupTime() *time.Time {
	return o.estimatedPickupTime
}

// ActualPickupTime returns the completion timestamp, nil until the order is
// Completed. Once set it is never retracted.
func (o *Order) ActualPickupTime() *time.Time {
	return o.actualPickupTime
}

// Items returns the owned line items in insertion order.
// The slice is a copy; the items themselves are shared and must only be
// mutated through the aggregate.
func (o *Order) Items() []*OrderItem {
	items := make([]*OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

// Item returns the line item with the given identifier, or nil if the order
// holds no such item.
func (o *Order) Item(itemID kernel.UUID) *OrderItem {
	if idx := o.indexOfItem(itemID); idx >= 0 {
		return o.items[idx]
	}
	return nil
}

// Version returns the optimistic-concurrency version restored from storage.
func (o *Order) Version() int {
	return o.version
}

// IsActive reports whether the order is neither Completed nor Cancelled.
func (o *Order) IsActive() bool {
	return !o.status.IsFinal()
}

// AddItem appends a line item and recomputes the total as the exact sum of
// all item subtotals. The item's currency must match the order's currency.
// Fails without mutation if the order is in a terminal status.
func (o *Order) AddItem(item *OrderItem) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return err
	}
	if !o.IsActive() {
		return fmt.Errorf("%w: %s", ErrOrderIsNotActive, o.status)
	}
	if existing := o.Item(item.ID()); existing != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"item",
			fmt.Errorf("item %s already belongs to the order", item.ID()),
		)
	}

	// Compute the new total before touching the item list so a currency
	// mismatch leaves the order unchanged.
	newTotal, err := sumSubtotals(o.totalAmount.Currency(), append(o.Items(), item))
	if err != nil {
		return err
	}

	o.items = append(o.items, item)
	o.totalAmount = newTotal
	return nil
}

// RemoveItem removes the line item with the given identifier and recomputes
// the total. Removing an id the order does not hold is a deliberate no-op so
// callers can retry safely.
func (o *Order) RemoveItem(itemID kernel.UUID) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := itemID.Validate(); err != nil {
		return err
	}
	if !o.IsActive() {
		return fmt.Errorf("%w: %s", ErrOrderIsNotActive, o.status)
	}

	idx := o.indexOfItem(itemID)
	if idx < 0 {
		return nil
	}

	remaining := append(o.Items()[:idx], o.items[idx+1:]...)
	newTotal, err := sumSubtotals(o.totalAmount.Currency(), remaining)
	if err != nil {
		return err
	}

	o.items = remaining
	o.totalAmount = newTotal
	return nil
}

// UpdateItemQuantity changes the quantity of an owned line item and
// recomputes the total. Fails with a validation error for quantities below 1
// and with an object-not-found error for ids the order does not hold; the
// order is unchanged in both cases.
func (o *Order) UpdateItemQuantity(itemID kernel.UUID, newQuantity int) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := itemID.Validate(); err != nil {
		return err
	}
	if !o.IsActive() {
		return fmt.Errorf("%w: %s", ErrOrderIsNotActive, o.status)
	}

	idx := o.indexOfItem(itemID)
	if idx < 0 {
		return errs.NewObjectNotFoundError("orderItem", itemID.String())
	}

	if err := o.items[idx].UpdateQuantity(newQuantity); err != nil {
		return err
	}

	newTotal, err := sumSubtotals(o.totalAmount.Currency(), o.items)
	if err != nil {
		return err
	}

	o.totalAmount = newTotal
	return nil
}

// ChangeStatus moves the order along the transition table.
// Fails with an InvalidTransitionError, leaving the order completely
// unchanged, if the table does not allow the pair.
//
// Side effects on success: becoming Ready stamps estimatedPickupTime with
// now+DefaultPickupSLA unless an estimate is already set; becoming Completed
// stamps actualPickupTime with now. Returns the OrderStatusChanged event for
// the caller to publish.
func (o *Order) ChangeStatus(newStatus Status, now time.Time) (OrderStatusChanged, error) {
	if err := o.Validate(); err != nil {
		return OrderStatusChanged{}, err
	}
	if err := newStatus.Validate(); err != nil {
		return OrderStatusChanged{}, err
	}

	if !o.status.CanTransitionTo(newStatus) {
		return OrderStatusChanged{}, &InvalidTransitionError{From: o.status, To: newStatus}
	}

	oldStatus := o.status
	o.status = newStatus

	if newStatus == Ready && o.estimatedPickupTime == nil {
		estimate := now.Add(DefaultPickupSLA)
		o.estimatedPickupTime = &estimate
	}

	if newStatus == Completed {
		pickedUp := now
		o.actualPickupTime = &pickedUp
	}

	return OrderStatusChanged{
		OrderID:      o.id,
		UserID:       o.userID,
		RestaurantID: o.restaurantID,
		OldStatus:    oldStatus,
		NewStatus:    newStatus,
	}, nil
}

// Cancel is the customer-facing cancellation: it delegates to
// ChangeStatus(Cancelled) but only from Pending or Confirmed, failing with
// ErrCancellationNotAllowed once preparation has started. Staff-side flows
// may still cancel from Preparing or Ready through ChangeStatus directly,
// as Status.CanBeCancelled documents.
func (o *Order) Cancel(now time.Time) (OrderStatusChanged, error) {
	if err := o.Validate(); err != nil {
		return OrderStatusChanged{}, err
	}

	if o.status != Pending && o.status != Confirmed {
		return OrderStatusChanged{}, fmt.Errorf("%w: status is %s", ErrCancellationNotAllowed, o.status)
	}

	return o.ChangeStatus(Cancelled, now)
}

func (o *Order) indexOfItem(itemID kernel.UUID) int {
	for idx, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return idx
		}
	}
	return -1
}

// sumSubtotals computes the exact sum of item subtotals in the given
// currency. An empty item list yields zero money in that currency.
func sumSubtotals(currency string, items []*OrderItem) (kernel.Money, error) {
	total, err := kernel.NewZeroMoney(currency)
	if err != nil {
		return kernel.Money{}, err
	}

	for _, item := range items {
		subtotal, subErr := item.Subtotal()
		if subErr != nil {
			return kernel.Money{}, subErr
		}

		total, err = total.Add(subtotal)
		if err != nil {
			return kernel.Money{}, err
		}
	}

	return total, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setTotalAmount(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}
	o.totalAmount = total
	return nil
}

func (o *Order) setItems(items []*OrderItem) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}
