package order

import (
	"errors"

	"payroll/internal/core/domain/model/kernel"
	"payroll/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root for a purchase order. It manages the order
// lifecycle from creation through completion or cancellation.
//
// Order follows these invariants:
//   - Description must not be empty
//   - A populated id means the order exists in the store
//   - Status transitions follow the Status state machine: a new order is
//     always InProgress, and Completed/Cancelled are terminal
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the server-assigned identifier; 0 means not yet persisted.
	id int64

	// description is what the order is for.
	description string

	// status is the current state in the order lifecycle.
	status Status

	guard kernel.ConstructorGuard
}

// NewOrder creates a new Order in the InProgress status. The status is
// always forced to InProgress here; clients cannot choose the initial state.
//
// Returns a validation error when description is empty.
func NewOrder(description string) (*Order, error) {
	o := &Order{
		status: InProgress,
		guard:  kernel.NewConstructorGuard(),
	}

	if err := o.setDescription(description); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rehydrates an Order from persisted state. Unlike NewOrder it
// accepts any valid status and a populated id.
func RestoreOrder(id int64, description string, status Status) (*Order, error) {
	o := &Order{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setDescription(description),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function, guarding against zero-value structs reaching the store.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the server-assigned identifier, 0 when not yet persisted.
func (o *Order) ID() int64 {
	return o.id
}

// SetID records the identifier assigned by the store. The id must be
// positive and is expected to be set exactly once, on first save.
func (o *Order) SetID(id int64) error {
	return o.setID(id)
}

// Description returns what the order is for.
func (o *Order) Description() string {
	return o.description
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Complete marks the order as completed.
//
// The order must currently be InProgress; any other status yields a
// TransitionError naming the actual status. Completed is terminal.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel marks the order as cancelled.
//
// The order must currently be InProgress; any other status yields a
// TransitionError naming the actual status. Cancelled is terminal.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("id")
	}
	o.id = id
	return nil
}

func (o *Order) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	o.description = description
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
