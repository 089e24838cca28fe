// Package guard provides the constructor guard pattern used by domain objects
// to detect zero-value instances that bypassed their designated constructors.
//
// Embedding a ConstructorGuard in a struct lets Validate distinguish an object
// built through its New* function from one created as a bare struct literal.
// This keeps domain invariants enforceable: a zero-value aggregate or command
// always fails validation before any operation runs on it.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the
// caller passes a nil validation error. Validation of an unconstructed object
// therefore always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value is
// invalid; only NewConstructorGuard produces a guard that passes Validate.
//
// Example:
//
//	var ErrDroneIsNotConstructed = errors.New("Drone must be created via NewDrone")
//
//	type Drone struct {
//	    id    int
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewDrone(id int, name string) (*Drone, error) {
//	    // ...validation...
//	    return &Drone{id: id, name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (d *Drone) Validate() error {
//	    return d.guard.Validate(ErrDroneIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its owner as constructed.
// Call it inside the owning type's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owner was built via its constructor.
// For a zero-value guard it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
