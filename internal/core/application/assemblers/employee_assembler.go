package assemblers

import (
	"payroll/internal/core/domain/model/employee"
	"payroll/internal/core/domain/model/kernel"
)

// EmployeeDocument is the hypermedia representation of a single employee.
// The name field is derived from the first and last name, never stored.
type EmployeeDocument struct {
	ID        int64           `json:"id"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Role      string          `json:"role"`
	Name      string          `json:"name"`
	Links     *kernel.LinkSet `json:"_links,omitempty"`
}

// EmployeeCollectionDocument is the hypermedia representation of the
// employee collection. Item documents are embedded under the employees
// relation; the collection itself carries a self link only.
type EmployeeCollectionDocument struct {
	Embedded EmployeeCollectionEmbedded `json:"_embedded"`
	Links    *kernel.LinkSet            `json:"_links"`
}

// EmployeeCollectionEmbedded holds the embedded item documents of an
// employee collection document.
type EmployeeCollectionEmbedded struct {
	Employees []EmployeeDocument `json:"employees"`
}

// EmployeeAssembler converts Employee aggregates into hypermedia documents.
type EmployeeAssembler struct {
	routes *kernel.RouteTable
}

// NewEmployeeAssembler creates an assembler building hrefs from the given
// route table.
func NewEmployeeAssembler(routes *kernel.RouteTable) EmployeeAssembler {
	return EmployeeAssembler{routes: routes}
}

// ToDocument assembles the document for a single employee. Links appear in
// canonical order: self, then employees.
func (a EmployeeAssembler) ToDocument(e *employee.Employee) EmployeeDocument {
	links := kernel.NewLinkSet().
		Add(kernel.RelSelf, a.routes.Href(kernel.EmployeeItemRoute, e.ID())).
		Add(kernel.RelEmployees, a.routes.Href(kernel.EmployeeCollectionRoute))

	return EmployeeDocument{
		ID:        e.ID(),
		FirstName: e.FirstName(),
		LastName:  e.LastName(),
		Role:      e.Role(),
		Name:      e.Name(),
		Links:     links,
	}
}

// ToCollectionDocument assembles the collection document over all given
// employees, preserving their order.
func (a EmployeeAssembler) ToCollectionDocument(employees []*employee.Employee) EmployeeCollectionDocument {
	items := make([]EmployeeDocument, 0, len(employees))
	for _, e := range employees {
		items = append(items, a.ToDocument(e))
	}

	return EmployeeCollectionDocument{
		Embedded: EmployeeCollectionEmbedded{Employees: items},
		Links: kernel.NewLinkSet().
			Add(kernel.RelSelf, a.routes.Href(kernel.EmployeeCollectionRoute)),
	}
}
