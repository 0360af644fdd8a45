// Package store holds the latest status snapshot for statuswatch.
//
// This package is internal to statuswatch and manages the single piece of
// state shared between the scheduler (writer) and renderers or HTTP
// handlers (readers): the most recent complete snapshot. The snapshot is
// replaced wholesale each tick, never patched in place, so readers always
// see a fully consistent set of results from the same tick.
//
// The main components are:
//
//   - [Store]: Interface defining replace, read, and subscription operations
//   - [SnapshotStore]: In-memory implementation of Store with pub/sub
//   - [Snapshot] and [Outcome]: the JSON-serializable storage shapes
//
// Subscribers receive whole snapshots via buffered channels with
// non-blocking sends; a slow subscriber misses snapshots rather than
// blocking the writer.
//
// Users of the statuswatch library should not need to interact with this
// package directly.
package store
