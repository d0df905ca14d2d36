package inmem

import (
	"context"
	"strconv"
	"sync"

	"payroll/internal/core/domain/model/employee"
	"payroll/internal/pkg/errs"
)

// EmployeeRepository is an in-memory implementation of ports.EmployeeRepository.
type EmployeeRepository struct {
	mu     sync.RWMutex
	nextID int64
	ids    []int64
	items  map[int64]*employee.Employee
}

// NewEmployeeRepository creates an empty in-memory employee repository.
func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{
		items: make(map[int64]*employee.Employee),
	}
}

// FindAll returns a snapshot of all employees in insertion order.
func (r *EmployeeRepository) FindAll(_ context.Context) ([]*employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*employee.Employee, 0, len(r.ids))
	for _, id := range r.ids {
		clone, err := cloneEmployee(r.items[id])
		if err != nil {
			return nil, err
		}
		out = append(out, clone)
	}
	return out, nil
}

// FindByID returns the employee with the given id, or an ObjectNotFoundError.
func (r *EmployeeRepository) FindByID(_ context.Context, id int64) (*employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.items[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("employee", strconv.FormatInt(id, 10))
	}
	return cloneEmployee(stored)
}

// Save upserts the aggregate, assigning the next monotone id when it has
// none, and returns the persisted aggregate.
func (r *EmployeeRepository) Save(_ context.Context, aggregate *employee.Employee) (*employee.Employee, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if aggregate.ID() == 0 {
		r.nextID++
		if err := aggregate.SetID(r.nextID); err != nil {
			return nil, err
		}
	} else if aggregate.ID() > r.nextID {
		// Keep future assignments past explicitly chosen upsert ids.
		r.nextID = aggregate.ID()
	}

	stored, err := cloneEmployee(aggregate)
	if err != nil {
		return nil, err
	}

	if _, exists := r.items[stored.ID()]; !exists {
		r.ids = append(r.ids, stored.ID())
	}
	r.items[stored.ID()] = stored

	return cloneEmployee(stored)
}

// DeleteByID removes the employee with the given id; absent ids are ignored.
func (r *EmployeeRepository) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return nil
	}

	delete(r.items, id)
	for i, storedID := range r.ids {
		if storedID == id {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			break
		}
	}
	return nil
}

// cloneEmployee copies an aggregate so callers never alias stored state.
func cloneEmployee(e *employee.Employee) (*employee.Employee, error) {
	return employee.RestoreEmployee(e.ID(), e.FirstName(), e.LastName(), e.Role())
}
