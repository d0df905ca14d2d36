package kernel

import (
	"strconv"
	"strings"
)

// Route identifies one handler of the HTTP surface. Link hrefs are built
// from an explicit route table keyed by Route instead of being discovered
// from handler methods, so the assemblers never touch the HTTP request.
type Route int

const (
	// EmployeeCollectionRoute lists and creates employees.
	EmployeeCollectionRoute Route = iota

	// EmployeeItemRoute reads, replaces and deletes a single employee.
	EmployeeItemRoute

	// OrderCollectionRoute lists and creates orders.
	OrderCollectionRoute

	// OrderItemRoute reads a single order.
	OrderItemRoute

	// OrderCompleteRoute transitions an order to COMPLETED.
	OrderCompleteRoute

	// OrderCancelRoute transitions an order to CANCELLED.
	OrderCancelRoute
)

// idParam is the path parameter name used by every item route.
const idParam = "id"

// routeTemplates is the single source of truth for the HTTP surface.
// The echo server registers handlers against these templates and the
// assemblers format hrefs from them, so routes and links cannot drift apart.
var routeTemplates = map[Route]string{
	EmployeeCollectionRoute: "/employees",
	EmployeeItemRoute:       "/employees/:id",
	OrderCollectionRoute:    "/orders",
	OrderItemRoute:          "/orders/:id",
	OrderCompleteRoute:      "/orders/:id/complete",
	OrderCancelRoute:        "/orders/:id/cancel",
}

// RouteTable builds absolute-path URIs from the route templates.
// It is the URI-building collaborator injected into the model assemblers.
type RouteTable struct{}

// NewRouteTable creates a RouteTable over the canonical route templates.
func NewRouteTable() *RouteTable {
	return &RouteTable{}
}

// Template returns the router path template for the route, with the
// :id placeholder left in place. Used when registering echo handlers.
func (t *RouteTable) Template(route Route) string {
	return routeTemplates[route]
}

// Href builds the absolute-path URI for the route, substituting the
// numeric id into the :id placeholder. Collection routes take no id.
func (t *RouteTable) Href(route Route, id ...int64) string {
	template := routeTemplates[route]
	if len(id) == 0 {
		return template
	}
	return strings.Replace(template, ":"+idParam, strconv.FormatInt(id[0], 10), 1)
}
