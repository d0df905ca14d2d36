// Package kernel provides core domain primitives shared across the payroll
// service. It holds the fundamental building blocks used by both the domain
// model and the representation layer.
//
// The package includes:
//   - Rel, Link and LinkSet: hypermedia link primitives. LinkSet keeps link
//     relations in insertion order so that documents always render their
//     links in canonical order (self, collection relation, affordances).
//   - Route and RouteTable: the explicit route table the HTTP adapter
//     registers its handlers against and the assemblers build hrefs from.
//   - ConstructorGuard: a defensive pattern that ensures domain objects are
//     only created through their constructor functions.
//
// These primitives enforce the representation contract: given the same
// entity state, assemblers produce byte-identical hypermedia documents.
package kernel
