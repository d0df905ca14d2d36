package inmem

import (
	"context"
	"strconv"
	"sync"

	"payroll/internal/core/domain/model/order"
	"payroll/internal/pkg/errs"
)

// OrderRepository is an in-memory implementation of ports.OrderRepository.
type OrderRepository struct {
	mu     sync.RWMutex
	nextID int64
	ids    []int64
	items  map[int64]*order.Order
}

// NewOrderRepository creates an empty in-memory order repository.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		items: make(map[int64]*order.Order),
	}
}

// FindAll returns a snapshot of all orders in insertion order.
func (r *OrderRepository) FindAll(_ context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*order.Order, 0, len(r.ids))
	for _, id := range r.ids {
		clone, err := cloneOrder(r.items[id])
		if err != nil {
			return nil, err
		}
		out = append(out, clone)
	}
	return out, nil
}

// FindByID returns the order with the given id, or an ObjectNotFoundError.
func (r *OrderRepository) FindByID(_ context.Context, id int64) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.items[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", strconv.FormatInt(id, 10))
	}
	return cloneOrder(stored)
}

// Save upserts the aggregate, assigning the next monotone id when it has
// none, and returns the persisted aggregate. Concurrent transitions race
// benignly: the later Save wins and both outcomes are terminal.
func (r *OrderRepository) Save(_ context.Context, aggregate *order.Order) (*order.Order, error) {
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
		r.nextID = aggregate.ID()
	}

	stored, err := cloneOrder(aggregate)
	if err != nil {
		return nil, err
	}

	if _, exists := r.items[stored.ID()]; !exists {
		r.ids = append(r.ids, stored.ID())
	}
	r.items[stored.ID()] = stored

	return cloneOrder(stored)
}

// DeleteByID removes the order with the given id; absent ids are ignored.
func (r *OrderRepository) DeleteByID(_ context.Context, id int64) error {
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

// cloneOrder copies an aggregate so callers never alias stored state.
func cloneOrder(o *order.Order) (*order.Order, error) {
	return order.RestoreOrder(o.ID(), o.Description(), o.Status())
}
