// Package assemblers turns domain aggregates into hypermedia documents.
//
// An assembler is a pure function over an entity: given the same entity
// state it produces a byte-identical document, links included. Assemblers
// never read a repository and never see the HTTP request; hrefs come from
// the kernel route table injected at construction.
//
// Item documents inline the entity's public fields beside a _links object.
// Collection documents wrap item documents under _embedded and carry a
// self link only. For orders, the advertised links are a function of
// status: an IN_PROGRESS order offers complete and cancel affordances,
// a terminal order offers none.
package assemblers
