package statuswatch

import "time"

// Status represents the health state of a target.
//
// Status is a string type that can hold one of three predefined values:
// [StatusUp], [StatusDown], or [StatusError]. Using a string type allows
// for easy JSON serialization and human-readable logging while maintaining
// type safety through the defined constants.
type Status string

const (
	// StatusUp indicates the target responded and the response status code
	// was accepted by the configured success policy.
	StatusUp Status = "up"

	// StatusDown indicates the target responded with a rejected status code,
	// or did not respond within the per-check timeout.
	StatusDown Status = "down"

	// StatusError indicates the check failed before any response was
	// received: DNS resolution, TCP connect, or TLS handshake failure,
	// or an unexpected fault during the check.
	StatusError Status = "error"
)

// String returns the string representation of the status.
// This implements the fmt.Stringer interface.
func (s Status) String() string {
	return string(s)
}

// CheckOutcome holds the result of one check against one target.
//
// CheckOutcome is immutable after creation. A new tick produces a new
// CheckOutcome for every target; an outcome is never updated in place.
type CheckOutcome struct {
	// Target is the display name of the checked target.
	Target string

	// URL is the address that was checked.
	URL string

	// Status is the determined health state of the target.
	Status Status

	// StatusCode is the HTTP status code returned by the target.
	// Zero if no response was received.
	StatusCode int

	// Latency is the measured round-trip time. Only meaningful when a
	// response was received; zero on timeout and connection failure.
	Latency time.Duration

	// CheckedAt is the timestamp when the check completed.
	CheckedAt time.Time

	// Detail carries the error description for failed checks: "timeout"
	// when the per-check deadline expired, or the underlying failure
	// message for connection errors. Empty for responses.
	Detail string
}

// Responded reports whether a response was received from the target,
// i.e. whether StatusCode and Latency carry real values.
func (o CheckOutcome) Responded() bool {
	return o.StatusCode != 0
}

// Snapshot is the complete, consistent set of latest check outcomes,
// exactly one per registered target, in registry order.
//
// A Snapshot is immutable and replaced wholesale each tick: every outcome
// it contains was produced by the same tick, never a mix of old and new.
// The zero Snapshot is the empty snapshot seen before the first tick.
type Snapshot struct {
	takenAt  time.Time
	outcomes []CheckOutcome
	index    map[string]int
}

// NewSnapshot builds a [Snapshot] from outcomes in registry order.
//
// The outcomes slice is copied; the caller may reuse it afterwards.
func NewSnapshot(takenAt time.Time, outcomes []CheckOutcome) Snapshot {
	cp := make([]CheckOutcome, len(outcomes))
	copy(cp, outcomes)
	index := make(map[string]int, len(cp))
	for i, o := range cp {
		index[o.Target] = i
	}
	return Snapshot{takenAt: takenAt, outcomes: cp, index: index}
}

// TakenAt returns the start time of the tick that produced the snapshot.
func (s Snapshot) TakenAt() time.Time {
	return s.takenAt
}

// Len returns the number of outcomes in the snapshot.
func (s Snapshot) Len() int {
	return len(s.outcomes)
}

// Outcomes returns a copy of all outcomes in registry order.
func (s Snapshot) Outcomes() []CheckOutcome {
	cp := make([]CheckOutcome, len(s.outcomes))
	copy(cp, s.outcomes)
	return cp
}

// Get returns the outcome for the named target and whether it exists.
func (s Snapshot) Get(target string) (CheckOutcome, bool) {
	i, ok := s.index[target]
	if !ok {
		return CheckOutcome{}, false
	}
	return s.outcomes[i], true
}
