package employee

import (
	"errors"
	"strings"

	"payroll/internal/core/domain/model/kernel"
	"payroll/internal/pkg/errs"
)

// ErrEmployeeIsNotConstructed is returned when an Employee instance was not
// created through one of the factory functions.
var ErrEmployeeIsNotConstructed = errors.New("Employee must be created via NewEmployee, NewEmployeeFromFullName or RestoreEmployee")

// Employee is the aggregate root for a payroll employee.
//
// Employee follows these invariants:
//   - First name, last name and role must not be empty
//   - A populated id means the employee exists in the store
//   - The derived full name is always firstName + " " + lastName
//   - Can only be created through a factory function
type Employee struct {
	// id is the server-assigned identifier; 0 means not yet persisted.
	id int64

	firstName string
	lastName  string
	role      string

	guard kernel.ConstructorGuard
}

// NewEmployee creates an Employee from its separate name parts.
// Returns a validation error when any field is empty.
func NewEmployee(firstName, lastName, role string) (*Employee, error) {
	e := &Employee{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setFirstName(firstName),
		e.setLastName(lastName),
		e.setRole(role),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// NewEmployeeFromFullName creates an Employee from a combined "First Last"
// name. The name is split on the first space: the token before the space
// becomes the first name, everything after it the last name. A name without
// a space is rejected rather than guessed at.
func NewEmployeeFromFullName(name, role string) (*Employee, error) {
	firstName, lastName, err := SplitFullName(name)
	if err != nil {
		return nil, err
	}

	return NewEmployee(firstName, lastName, role)
}

// RestoreEmployee rehydrates an Employee from persisted state.
func RestoreEmployee(id int64, firstName, lastName, role string) (*Employee, error) {
	e, err := NewEmployee(firstName, lastName, role)
	if err != nil {
		return nil, err
	}

	if err = e.setID(id); err != nil {
		return nil, err
	}

	return e, nil
}

// SplitFullName splits a combined full name on the first space.
// "Bilbo Baggins" becomes ("Bilbo", "Baggins"); a remainder containing
// further spaces stays intact in the last name.
func SplitFullName(name string) (firstName, lastName string, err error) {
	firstName, lastName, found := strings.Cut(name, " ")
	if !found {
		return "", "", errs.NewValueIsInvalidErrorWithCause(
			"name",
			errors.New("name must contain a first and last name separated by a space"),
		)
	}
	return firstName, lastName, nil
}

// Validate ensures the Employee instance was properly constructed through a
// factory function, guarding against zero-value structs reaching the store.
func (e *Employee) Validate() error {
	if e == nil {
		return ErrEmployeeIsNotConstructed
	}
	return e.guard.Validate(ErrEmployeeIsNotConstructed)
}

// ID returns the server-assigned identifier, 0 when not yet persisted.
func (e *Employee) ID() int64 {
	return e.id
}

// SetID records the identifier assigned by the store, or the target id of an
// upsert. The id must be positive.
func (e *Employee) SetID(id int64) error {
	return e.setID(id)
}

// FirstName returns the employee's first name.
func (e *Employee) FirstName() string {
	return e.firstName
}

// LastName returns the employee's last name.
func (e *Employee) LastName() string {
	return e.lastName
}

// Role returns the employee's role.
func (e *Employee) Role() string {
	return e.role
}

// Name returns the derived full name, firstName + " " + lastName.
func (e *Employee) Name() string {
	return e.firstName + " " + e.lastName
}

// Rename replaces both name parts from a combined full name, with the same
// split semantics as NewEmployeeFromFullName.
func (e *Employee) Rename(name string) error {
	firstName, lastName, err := SplitFullName(name)
	if err != nil {
		return err
	}

	return errors.Join(
		e.setFirstName(firstName),
		e.setLastName(lastName),
	)
}

// ChangeName replaces both name parts directly.
func (e *Employee) ChangeName(firstName, lastName string) error {
	return errors.Join(
		e.setFirstName(firstName),
		e.setLastName(lastName),
	)
}

// ChangeRole replaces the employee's role.
func (e *Employee) ChangeRole(role string) error {
	return e.setRole(role)
}

// IsEqual compares two employees by id, first name, last name and role.
func (e *Employee) IsEqual(other *Employee) bool {
	return other != nil &&
		e.id == other.id &&
		e.firstName == other.firstName &&
		e.lastName == other.lastName &&
		e.role == other.role
}

func (e *Employee) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("id")
	}
	e.id = id
	return nil
}

func (e *Employee) setFirstName(firstName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("firstName")
	}
	e.firstName = firstName
	return nil
}

func (e *Employee) setLastName(lastName string) error {
	if lastName == "" {
		return errs.NewValueIsRequiredError("lastName")
	}
	e.lastName = lastName
	return nil
}

func (e *Employee) setRole(role string) error {
	if role == "" {
		return errs.NewValueIsRequiredError("role")
	}
	e.role = role
	return nil
}
