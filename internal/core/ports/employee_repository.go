package ports

import (
	"context"

	"payroll/internal/core/domain/model/employee"
)

// EmployeeRepository defines the persistence contract for employee aggregates.
//
// Save has upsert semantics: an aggregate without an id is inserted and gets
// the next monotonically assigned id; an aggregate with an id replaces the
// stored row under that id, creating it if absent. FindAll returns a snapshot
// in insertion order; callers must not assume the sequence stays stable
// across calls. Implementations are safe for concurrent readers and a single
// writer at a time.
type EmployeeRepository interface {
	// FindAll retrieves all employees in insertion order.
	FindAll(ctx context.Context) ([]*employee.Employee, error)

	// FindByID retrieves an employee by its identifier.
	// Returns an errs.ObjectNotFoundError when no employee has that id.
	FindByID(ctx context.Context, id int64) (*employee.Employee, error)

	// Save persists the aggregate, assigning an id when it has none, and
	// returns the persisted aggregate with its id populated.
	Save(ctx context.Context, aggregate *employee.Employee) (*employee.Employee, error)

	// DeleteByID removes the employee with the given id.
	// Deleting an absent id is not an error.
	DeleteByID(ctx context.Context, id int64) error
}
