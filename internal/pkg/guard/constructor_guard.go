// Package guard provides ConstructorGuard, a marker embedded in value objects,
// entities and command/query values so that zero values built outside their
// constructors can be detected and rejected.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the caller
// passes a nil validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures objects are only created through their designated constructor.
//
// Example usage:
//
//	var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer")
//
//	type Customer struct {
//	    name  kernel.Name
//	    guard guard.ConstructorGuard
//	}
//
//	func (c *Customer) Validate() error {
//	    return c.guard.Validate(ErrCustomerIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its owner as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the owner was not built by its constructor.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
