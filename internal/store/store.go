package store

import "time"

// Outcome is the storage representation of one target's latest check
// result, optimized for JSON serialization (used by the REST API and SSE).
// It is decoupled from the checker's internal types to allow independent
// evolution.
type Outcome struct {
	// Target is the target's display name.
	Target string `json:"target"`

	// URL is the address that was checked.
	URL string `json:"url"`

	// Status is the health classification: "up", "down", or "error".
	Status string `json:"status"`

	// StatusCode is the HTTP status code; omitted when no response arrived.
	StatusCode int `json:"status_code,omitempty"`

	// LatencyMs is the round-trip time in milliseconds.
	// nil indicates no response was received (timeout or connection failure).
	LatencyMs *int64 `json:"latency_ms"`

	// CheckedAt is the timestamp of the check.
	CheckedAt time.Time `json:"checked_at"`

	// Detail contains the error description for failed checks.
	// nil indicates no error detail.
	Detail *string `json:"detail"`
}

// Snapshot is the stored form of one tick's complete results, in registry
// order. The zero Snapshot is the empty snapshot seen before the first
// tick completes.
type Snapshot struct {
	// TakenAt is the start time of the tick.
	TakenAt time.Time `json:"taken_at"`

	// Outcomes holds one entry per registered target, in registry order.
	Outcomes []Outcome `json:"outcomes"`
}

// Store defines the interface for publishing and reading snapshots.
//
// Store implementations must be safe for concurrent access: Replace may
// race with any number of Current calls. The pub/sub mechanism pushes
// whole snapshots to subscribers (e.g., the SSE handler).
type Store interface {
	// Replace atomically swaps in a new snapshot. Readers never observe
	// a mix of old and new outcomes.
	Replace(s Snapshot)

	// Current returns the latest snapshot, or the empty snapshot if no
	// tick has completed yet.
	Current() Snapshot

	// Subscribe returns a channel that receives each published snapshot.
	// The channel is buffered; slow consumers miss snapshots rather than
	// blocking the writer. Caller must call Unsubscribe when done.
	Subscribe() <-chan Snapshot

	// Unsubscribe removes a subscription and closes the channel.
	// Safe to call with a channel that was already unsubscribed.
	Unsubscribe(ch <-chan Snapshot)
}
