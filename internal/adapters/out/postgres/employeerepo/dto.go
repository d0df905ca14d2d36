// Package employeerepo provides data transfer objects and mapping functions
// for employee persistence. It implements the repository pattern for the
// employee aggregate, converting between domain entities and database rows.
package employeerepo

import (
	"payroll/internal/core/domain/model/employee"
)

// EmployeeDTO represents the database structure for persisting employee
// aggregates. The derived full name is never stored; only its parts are.
type EmployeeDTO struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	FirstName string
	LastName  string
	Role      string
}

// TableName specifies the database table name for employee entities.
// Overrides GORM's default pluralized naming to use "employee".
func (EmployeeDTO) TableName() string {
	return "employee"
}

// fromDomain converts an employee domain aggregate to its database
// representation. A zero id is left for the store to assign.
func fromDomain(e *employee.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:        e.ID(),
		FirstName: e.FirstName(),
		LastName:  e.LastName(),
		Role:      e.Role(),
	}
}

// toDomain converts a database row to an employee domain aggregate.
func toDomain(dto EmployeeDTO) (*employee.Employee, error) {
	return employee.RestoreEmployee(dto.ID, dto.FirstName, dto.LastName, dto.Role)
}
