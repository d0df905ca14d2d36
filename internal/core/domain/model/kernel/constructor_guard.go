package kernel

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures entities are only created through their designated
// constructor functions. Embedding a guard in a struct makes a zero-value
// instance distinguishable from one that went through constructor validation.
//
// Example usage:
//
//	var ErrEmployeeIsNotConstructed = errors.New("Employee must be created via NewEmployee")
//
//	type Employee struct {
//	    firstName string
//	    lastName  string
//	    guard     kernel.ConstructorGuard
//	}
//
//	func NewEmployee(firstName, lastName string) (*Employee, error) {
//	    // validate inputs...
//	    return &Employee{
//	        firstName: firstName,
//	        lastName:  lastName,
//	        guard:     kernel.NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (e *Employee) Validate() error {
//	    return e.guard.Validate(ErrEmployeeIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in the constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// constructor. A zero-value guard fails with validationError, or with
// ErrDefaultConstructorGuard if validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
