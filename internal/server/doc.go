// Package server exposes the statuswatch status store over HTTP.
//
// This package is internal to statuswatch. It serves two endpoints:
//
//   - GET /api/status: the current snapshot as JSON
//   - GET /api/events: a Server-Sent Events stream emitting each
//     published snapshot
//
// The server is an optional renderer-side consumer: it only ever reads
// the store, and the core's once-per-tick publish guarantees are
// unaffected by connected clients. Shutdown is driven by context
// cancellation.
package server
