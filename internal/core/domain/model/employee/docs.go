// Package employee provides domain entities and business logic for employee
// management in the payroll service. It implements the Employee aggregate
// root with name handling and validation.
//
// The package includes:
//   - Employee: The aggregate root that manages employee identity, name and role
//   - SplitFullName: The canonical split of a combined "First Last" name
//
// Key business rules:
//   - First name, last name and role must not be empty
//   - A combined name is split on its first space; a single-token name is
//     rejected instead of being padded with an empty last name
//   - The derived full name is always firstName + " " + lastName
//   - Employees compare equal by id, first name, last name and role
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package employee
