package http

import (
	"payroll/internal/core/domain/model/employee"
)

// EmployeeRequest is the write model for the employee endpoints.
// Clients may send either the split firstName/lastName pair or the
// legacy single name field; when both are present the split pair wins.
type EmployeeRequest struct {
	Name      string `json:"name"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

func (r EmployeeRequest) toDomain() (*employee.Employee, error) {
	if r.FirstName != "" || r.LastName != "" {
		return employee.NewEmployee(r.FirstName, r.LastName, r.Role)
	}
	return employee.NewEmployeeFromFullName(r.Name, r.Role)
}

// OrderRequest is the write model for order creation. A status sent by
// the client is ignored: every order starts in the IN_PROGRESS status.
type OrderRequest struct {
	Description string `json:"description"`
	Status      string `json:"status"`
}
