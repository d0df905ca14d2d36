package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	httpin "payroll/internal/adapters/in/http"
	"payroll/internal/adapters/out/postgres/employeerepo"
	"payroll/internal/adapters/out/postgres/orderrepo"
	"payroll/internal/core/domain/model/kernel"
	"payroll/internal/core/ports"
	"payroll/internal/jobs"
	"payroll/internal/seed"
)

// CompositionRoot wires the adapters to the core. All dependencies are
// created once and shared.
type CompositionRoot struct {
	employees ports.EmployeeRepository
	orders    ports.OrderRepository
	routes    *kernel.RouteTable
	logger    *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		employees: employeerepo.NewGormEmployeeRepository(gormDB),
		orders:    orderrepo.NewGormOrderRepository(gormDB),
		routes:    kernel.NewRouteTable(),
		logger:    logger,
	}
}

func (c *CompositionRoot) CreateHTTPServer() (*httpin.Server, error) {
	return httpin.NewServer(c.employees, c.orders, c.routes, c.logger)
}

func (c *CompositionRoot) CreateSeedLoader() (*seed.Loader, error) {
	return seed.NewLoader(c.employees, c.orders, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.orders, c.logger)
}
