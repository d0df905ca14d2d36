// Package seed preloads the database with sample employees and orders.
// It runs once at startup, before the HTTP server starts listening.
package seed

import (
	"context"
	"log/slog"

	"payroll/internal/core/domain/model/employee"
	"payroll/internal/core/domain/model/order"
	"payroll/internal/core/ports"
	"payroll/internal/pkg/errs"
)

// Loader writes the sample data set through the repository ports.
type Loader struct {
	employees ports.EmployeeRepository
	orders    ports.OrderRepository
	logger    *slog.Logger
}

// NewLoader creates a Loader. All arguments are required.
func NewLoader(
	employees ports.EmployeeRepository,
	orders ports.OrderRepository,
	logger *slog.Logger,
) (*Loader, error) {
	if employees == nil {
		return nil, errs.NewValueIsRequiredError("employees")
	}
	if orders == nil {
		return nil, errs.NewValueIsRequiredError("orders")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &Loader{employees: employees, orders: orders, logger: logger}, nil
}

// Load stores the sample employees and orders. Existing data is left in
// place: when the employee collection is not empty Load does nothing,
// so restarts do not duplicate the data set.
func (l *Loader) Load(ctx context.Context) error {
	existing, err := l.employees.FindAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		l.logger.InfoContext(ctx, "Skipping preload, database is not empty")
		return nil
	}

	if err := l.loadEmployees(ctx); err != nil {
		return err
	}
	return l.loadOrders(ctx)
}

func (l *Loader) loadEmployees(ctx context.Context) error {
	samples := []struct {
		firstName string
		lastName  string
		role      string
	}{
		{"Bilbo", "Baggins", "burglar"},
		{"Frodo", "Baggins", "thief"},
	}

	for _, sample := range samples {
		newEmployee, err := employee.NewEmployee(sample.firstName, sample.lastName, sample.role)
		if err != nil {
			return err
		}

		saved, err := l.employees.Save(ctx, newEmployee)
		if err != nil {
			return err
		}
		l.logger.InfoContext(ctx, "Preloading employee",
			"id", saved.ID(), "name", saved.Name(), "role", saved.Role())
	}
	return nil
}

func (l *Loader) loadOrders(ctx context.Context) error {
	completed, err := order.NewOrder("MacBook Pro")
	if err != nil {
		return err
	}
	if err := completed.Complete(); err != nil {
		return err
	}

	inProgress, err := order.NewOrder("iPhone")
	if err != nil {
		return err
	}

	for _, o := range []*order.Order{completed, inProgress} {
		saved, err := l.orders.Save(ctx, o)
		if err != nil {
			return err
		}
		l.logger.InfoContext(ctx, "Preloading order",
			"id", saved.ID(), "description", saved.Description(), "status", saved.Status().String())
	}
	return nil
}
