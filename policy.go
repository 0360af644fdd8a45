package statuswatch

// SuccessPolicy reports whether an HTTP status code counts as the target
// being up.
//
// SuccessPolicy is a pure function: the same status code always produces
// the same answer. This makes policies easy to test and compose.
//
// # Panic Safety
//
// SuccessPolicy functions are called within a panic recovery boundary.
// If a policy panics, the target's outcome is set to [StatusError] with a
// detail containing a correlation ID, and the full stack trace is logged.
// A misbehaving policy cannot abort a tick.
type SuccessPolicy func(statusCode int) bool

// SuccessRange returns a [SuccessPolicy] that accepts status codes in the
// inclusive range [lo, hi].
//
// Example:
//
//	statuswatch.WithSuccessPolicy(statuswatch.SuccessRange(200, 299))
func SuccessRange(lo, hi int) SuccessPolicy {
	return func(statusCode int) bool {
		return statusCode >= lo && statusCode <= hi
	}
}

// SuccessCodes returns a [SuccessPolicy] that accepts exactly the given
// status codes.
//
// Example:
//
//	statuswatch.WithSuccessPolicy(statuswatch.SuccessCodes(200, 204, 301))
func SuccessCodes(codes ...int) SuccessPolicy {
	set := make(map[int]struct{}, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	return func(statusCode int) bool {
		_, ok := set[statusCode]
		return ok
	}
}

// DefaultSuccessPolicy accepts any 2xx or 3xx response. A target that is
// reachable and responding counts as up; 4xx and 5xx count as down.
var DefaultSuccessPolicy SuccessPolicy = SuccessRange(200, 399)
