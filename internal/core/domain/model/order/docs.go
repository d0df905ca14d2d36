// Package order provides domain entities and business logic for order
// management in the payroll service. It implements the Order aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, description, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - TransitionError: A typed error describing a rejected transition
//
// Key business rules:
//   - Orders must have a non-empty description
//   - New orders always start in the IN_PROGRESS status
//   - IN_PROGRESS orders may be completed or cancelled
//   - COMPLETED and CANCELLED are terminal; no sequence of transitions can
//     re-open an order that reached either of them
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
