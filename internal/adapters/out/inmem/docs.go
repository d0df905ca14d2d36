// Package inmem provides in-memory implementations of the repository ports.
//
// The repositories keep aggregates in a map guarded by a RWMutex and hand
// out snapshots, so they are safe for concurrent readers with a single
// writer at a time. Ids are assigned monotonically, FindAll preserves
// insertion order, and DeleteByID is silent on absent ids, matching the
// persistence contract of the Postgres adapters.
//
// The package backs the HTTP handler tests and storeless runs; production
// deployments use the postgres adapters.
package inmem
