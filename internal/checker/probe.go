package checker

import (
	"context"
	"errors"
	"fmt"
	"net"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Status values mirror the public statuswatch constants as plain strings,
// avoiding a circular dependency on the root package.
const (
	StatusUp    = "up"
	StatusDown  = "down"
	StatusError = "error"
)

// detailTimeout is the fixed detail string for checks that hit the
// per-check deadline.
const detailTimeout = "timeout"

// Outcome is the checker-internal result of a single probe.
type Outcome struct {
	// Target is the display name of the checked target.
	Target string

	// URL is the address that was checked.
	URL string

	// Status is the classification as a string: "up", "down", or "error".
	Status string

	// StatusCode is the HTTP status code; zero when no response arrived.
	StatusCode int

	// Latency is the measured round-trip time; zero when no response arrived.
	Latency time.Duration

	// CheckedAt is when the probe completed.
	CheckedAt time.Time

	// Detail is the error description for failed checks, empty otherwise.
	Detail string
}

// Snapshot is one tick's complete set of outcomes, in registry order.
type Snapshot struct {
	TakenAt  time.Time
	Outcomes []Outcome
}

// SuccessPolicy reports whether a status code counts as up. This is the
// checker-internal version of the public statuswatch.SuccessPolicy.
type SuccessPolicy func(statusCode int) bool

// TargetInfo is the checker-internal representation of one registry entry.
type TargetInfo struct {
	// Name is the display name of the target.
	Name string

	// URL is the address to check.
	URL string

	// Timeout is the per-check deadline for this target.
	Timeout time.Duration
}

// Prober performs one network check against one target, producing a
// bounded-latency [Outcome]. It never retries: retry policy, if any,
// belongs to the scheduler across ticks.
type Prober struct {
	client *Client
	policy SuccessPolicy
	logger *zap.Logger
}

// NewProber creates a [Prober] using the given client, success policy,
// and logger.
func NewProber(client *Client, policy SuccessPolicy, logger *zap.Logger) *Prober {
	return &Prober{client: client, policy: policy, logger: logger}
}

// Probe checks a single target and returns within at most t.Timeout.
//
// Classification:
//   - response received: "up" or "down" per the success policy
//   - deadline exceeded: "down" with detail "timeout"
//   - DNS/TCP/TLS failure: "error" with the failure description
func (p *Prober) Probe(ctx context.Context, t TargetInfo) Outcome {
	cctx, cancel := context.WithTimeout(ctx, t.Timeout)
	defer cancel()

	resp := p.client.Get(cctx, t.URL)

	out := Outcome{
		Target:    t.Name,
		URL:       t.URL,
		CheckedAt: time.Now().UTC(),
	}

	if resp.Err != nil {
		if isTimeout(resp.Err) {
			out.Status = StatusDown
			out.Detail = detailTimeout
		} else {
			out.Status = StatusError
			out.Detail = resp.Err.Error()
		}
		return out
	}

	out.StatusCode = resp.StatusCode
	out.Latency = resp.Latency
	if p.classify(resp.StatusCode, &out) {
		out.Status = StatusUp
	} else if out.Status == "" {
		out.Status = StatusDown
	}
	return out
}

// classify applies the success policy with panic recovery. If the policy
// panics, the outcome is forced to "error" with a correlation ID and the
// stack trace is logged server-side.
func (p *Prober) classify(statusCode int, out *Outcome) (up bool) {
	defer func() {
		if r := recover(); r != nil {
			correlationID := uuid.NewString()
			p.logger.Error("success policy panic",
				zap.String("correlation_id", correlationID),
				zap.String("panic", fmt.Sprintf("%v", r)),
				zap.String("stack", string(debug.Stack())),
			)
			up = false
			out.Status = StatusError
			out.Detail = fmt.Sprintf("success policy panic (correlation_id: %s)", correlationID)
		}
	}()
	return p.policy(statusCode)
}

// isTimeout reports whether err is a deadline expiry rather than a
// connection-level failure.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
