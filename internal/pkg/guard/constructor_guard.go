// Package guard provides ConstructorGuard, a marker embedded in value objects,
// query objects and aggregates so that zero-value instances can be told apart
// from instances built through their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object was not
// constructed and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether its owner was created through a constructor.
//
// Example usage:
//
//	var ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute")
//
//	type Route struct {
//	    start, end string
//	    guard      guard.ConstructorGuard
//	}
//
//	func (r Route) Validate() error {
//	    return r.guard.Validate(ErrRouteIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the owner is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
