// Package order provides the domain model for the order lifecycle: the
// Order aggregate root, the OrderItem line items it owns, the Status state
// machine, and the domain events mutations emit.
//
// The package includes:
//   - Order: the aggregate root owning items, the monetary total, and all
//     status transitions
//   - OrderItem: a line item with an immutable price/name snapshot
//   - Status: the lifecycle state machine, expressed as a plain-data
//     transition table
//   - OrderCreated / OrderStatusChanged: events returned by mutations
//
// Key business rules:
//   - the total always equals the exact sum of item subtotals
//   - status moves only along Pending -> Confirmed -> Preparing -> Ready ->
//     Completed, with Cancelled reachable from every non-terminal status
//   - customers may cancel only from Pending or Confirmed; staff flows may
//     cancel up to Ready
//   - item quantities are always >= 1, and items of terminal orders are
//     immutable
//
// The package follows Domain-Driven Design principles: private fields,
// constructor validation, and Restore functions for rehydration from
// persistence. It performs no I/O; repositories and event publication are
// ports implemented by adapters.
package order
