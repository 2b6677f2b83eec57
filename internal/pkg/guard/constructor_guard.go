// Package guard provides a lightweight mechanism to enforce constructor usage
// for value objects and commands. A ConstructorGuard embedded in a struct makes
// the zero value detectable: only instances created through the type's
// constructor carry a constructed guard, so Validate can reject structs that
// were instantiated directly and skipped validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guard is a zero
// value and no custom error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as constructed through its factory function.
// Embed it as a private field and initialize it with NewConstructorGuard inside
// the constructor. The zero value is "not constructed".
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard creates a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil if the guard was created via NewConstructorGuard.
// For a zero-value guard it returns notConstructedErr, or
// ErrDefaultConstructorGuard when notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.constructed {
		return nil
	}

	if notConstructedErr != nil {
		return notConstructedErr
	}

	return ErrDefaultConstructorGuard
}
