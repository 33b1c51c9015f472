// Package guard provides a constructor guard for enforcing that domain
// objects are created through their constructor functions rather than by
// zero-value struct literals.
//
// A ConstructorGuard embedded as a private field is set only by the
// constructor; Validate on a zero-value object then reports the object
// as not constructed.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guard is a
// zero value and the caller did not supply its own error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through a
// constructor. The zero value reports the object as not constructed.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
// Constructors embed the result into the object they build.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil if the guard was created via NewConstructorGuard.
// For a zero-value guard it returns notConstructed, or
// ErrDefaultConstructorGuard when notConstructed is nil.
func (g ConstructorGuard) Validate(notConstructed error) error {
	if g.constructed {
		return nil
	}

	if notConstructed == nil {
		return ErrDefaultConstructorGuard
	}

	return notConstructed
}
