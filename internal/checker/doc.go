// Package checker implements the concurrent checking core of statuswatch.
//
// This package is internal to statuswatch and contains the pieces that turn
// a fixed target registry into one complete status snapshot per tick:
//
//   - [Client]: HTTP client wrapper with connection pooling and
//     per-request context deadlines
//   - [Prober]: performs one bounded-latency check against one target and
//     classifies the result
//   - [Pool]: fans out one probe per target, joins all results, and returns
//     a complete snapshot
//   - [Scheduler]: drives the tick cadence and publishes each snapshot
//
// Types here are deliberately decoupled from the public statuswatch types
// to avoid circular dependencies; the root package converts between them.
//
// Users of the statuswatch library should not need to interact with this
// package directly.
package checker
