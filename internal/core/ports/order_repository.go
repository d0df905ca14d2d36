package ports

import (
	"context"

	"payroll/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// It carries the same upsert, snapshot and concurrency semantics as
// EmployeeRepository.
//
// The findById → transition → Save sequence of a state change is not
// protected by a transaction: two concurrent transitions may both observe
// IN_PROGRESS and the later Save wins. The state machine is monotone from
// IN_PROGRESS to a terminal status, so either outcome is terminal.
type OrderRepository interface {
	// FindAll retrieves all orders in insertion order.
	FindAll(ctx context.Context) ([]*order.Order, error)

	// FindByID retrieves an order by its identifier.
	// Returns an errs.ObjectNotFoundError when no order has that id.
	FindByID(ctx context.Context, id int64) (*order.Order, error)

	// Save persists the aggregate, assigning an id when it has none, and
	// returns the persisted aggregate with its id populated.
	Save(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// DeleteByID removes the order with the given id.
	// Deleting an absent id is not an error.
	DeleteByID(ctx context.Context, id int64) error
}
