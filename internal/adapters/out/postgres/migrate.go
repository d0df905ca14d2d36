// Package postgres groups the GORM-backed repository adapters and their
// shared schema setup.
package postgres

import (
	"gorm.io/gorm"

	"payroll/internal/adapters/out/postgres/employeerepo"
	"payroll/internal/adapters/out/postgres/orderrepo"
)

// Migrate creates the employee and orders tables when they are absent.
// This is the only schema management the service performs; there are no
// further migrations.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&employeerepo.EmployeeDTO{},
		&orderrepo.OrderDTO{},
	)
}
