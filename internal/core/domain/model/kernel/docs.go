// Package kernel contains shared value objects used across the domain model.
//
// The package provides:
//   - UUID: identity value object wrapping github.com/google/uuid
//   - Money: a currency-bound decimal amount with exact 2-digit scaling
//
// All value objects are immutable, validate themselves on construction, and
// treat their zero value as invalid. They carry no behavior beyond what the
// domain needs; persistence and transport mapping live in the adapters.
package kernel
