package assemblers

import (
	"payroll/internal/core/domain/model/kernel"
	"payroll/internal/core/domain/model/order"
)

// OrderDocument is the hypermedia representation of a single order.
// Status carries the wire name of the order status (IN_PROGRESS,
// COMPLETED, CANCELLED).
type OrderDocument struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	Links       *kernel.LinkSet `json:"_links,omitempty"`
}

// OrderCollectionDocument is the hypermedia representation of the order
// collection.
type OrderCollectionDocument struct {
	Embedded OrderCollectionEmbedded `json:"_embedded"`
	Links    *kernel.LinkSet         `json:"_links"`
}

// OrderCollectionEmbedded holds the embedded item documents of an order
// collection document.
type OrderCollectionEmbedded struct {
	Orders []OrderDocument `json:"orders"`
}

// OrderAssembler converts Order aggregates into hypermedia documents.
//
// The links it emits are the observable face of the order state machine:
// clients are expected to follow only the affordances the document
// advertises, so a terminal order simply stops offering complete and
// cancel rather than documenting that they would fail.
type OrderAssembler struct {
	routes *kernel.RouteTable
}

// NewOrderAssembler creates an assembler building hrefs from the given
// route table.
func NewOrderAssembler(routes *kernel.RouteTable) OrderAssembler {
	return OrderAssembler{routes: routes}
}

// ToDocument assembles the document for a single order. Links appear in
// canonical order: self, orders, then complete and cancel for
// IN_PROGRESS orders only.
func (a OrderAssembler) ToDocument(o *order.Order) OrderDocument {
	links := kernel.NewLinkSet().
		Add(kernel.RelSelf, a.routes.Href(kernel.OrderItemRoute, o.ID())).
		Add(kernel.RelOrders, a.routes.Href(kernel.OrderCollectionRoute))

	if o.Status() == order.InProgress {
		links.
			Add(kernel.RelComplete, a.routes.Href(kernel.OrderCompleteRoute, o.ID())).
			Add(kernel.RelCancel, a.routes.Href(kernel.OrderCancelRoute, o.ID()))
	}

	return OrderDocument{
		ID:          o.ID(),
		Description: o.Description(),
		Status:      o.Status().String(),
		Links:       links,
	}
}

// ToCollectionDocument assembles the collection document over all given
// orders, preserving their order.
func (a OrderAssembler) ToCollectionDocument(orders []*order.Order) OrderCollectionDocument {
	items := make([]OrderDocument, 0, len(orders))
	for _, o := range orders {
		items = append(items, a.ToDocument(o))
	}

	return OrderCollectionDocument{
		Embedded: OrderCollectionEmbedded{Orders: items},
		Links: kernel.NewLinkSet().
			Add(kernel.RelSelf, a.routes.Href(kernel.OrderCollectionRoute)),
	}
}
