package statuswatch

import (
	"errors"
	"time"

	"go.uber.org/zap"
)

// monitorConfig holds mutable state during Monitor construction.
type monitorConfig struct {
	targets      []Target
	interval     time.Duration
	checkTimeout time.Duration
	policy       SuccessPolicy
	renderers    []Renderer
	logger       *zap.Logger
	apiAddr      string
}

// Option is a function that configures a [Monitor] instance during
// construction.
//
// Option implements the functional options pattern, allowing optional
// configuration to be passed to [New] in a type-safe, extensible way.
// Options return an error if validation fails.
//
// Built-in options: [WithTarget], [WithTargets], [WithInterval],
// [WithCheckTimeout], [WithSuccessPolicy], [WithSuccessRange],
// [WithRenderer], [WithLogger], [WithAPIAddr].
type Option func(*monitorConfig) error

// WithTarget appends a single [Target] to the registry.
//
// Can be called multiple times; registry order is append order and is
// preserved in every snapshot. At least one target must be configured
// for [New] to succeed.
func WithTarget(t Target) Option {
	return func(cfg *monitorConfig) error {
		cfg.targets = append(cfg.targets, t)
		return nil
	}
}

// WithTargets appends multiple [Target] values to the registry.
//
// Equivalent to calling [WithTarget] once per target, in order.
func WithTargets(targets ...Target) Option {
	return func(cfg *monitorConfig) error {
		cfg.targets = append(cfg.targets, targets...)
		return nil
	}
}

// WithInterval sets the tick interval: how often every target is checked.
//
// Each tick checks all targets concurrently, waits for every check to
// resolve, and publishes one snapshot. Defaults to 60 seconds.
//
// Returns an error if the duration is zero or negative.
func WithInterval(d time.Duration) Option {
	return func(cfg *monitorConfig) error {
		if d <= 0 {
			return errors.New("interval must be positive")
		}
		cfg.interval = d
		return nil
	}
}

// WithCheckTimeout sets the global per-check timeout.
//
// Every check resolves within this bound: a target that has not responded
// by the deadline is reported as [StatusDown] with detail "timeout". The
// timeout must be no longer than the tick interval; [New] enforces that.
// Defaults to 10 seconds.
//
// Returns an error if the duration is zero or negative.
func WithCheckTimeout(d time.Duration) Option {
	return func(cfg *monitorConfig) error {
		if d <= 0 {
			return errors.New("check timeout must be positive")
		}
		cfg.checkTimeout = d
		return nil
	}
}

// WithSuccessPolicy sets the [SuccessPolicy] that decides whether a
// response status code counts as up. Defaults to [DefaultSuccessPolicy]
// (any 2xx–3xx).
func WithSuccessPolicy(p SuccessPolicy) Option {
	return func(cfg *monitorConfig) error {
		if p == nil {
			return errors.New("success policy cannot be nil")
		}
		cfg.policy = p
		return nil
	}
}

// WithSuccessRange sets an inclusive status-code range as the success
// policy. Shorthand for WithSuccessPolicy(SuccessRange(lo, hi)).
//
// Returns an error unless 100 <= lo <= hi <= 599.
func WithSuccessRange(lo, hi int) Option {
	return func(cfg *monitorConfig) error {
		if lo < 100 || hi > 599 || lo > hi {
			return errors.New("success range must satisfy 100 <= lo <= hi <= 599")
		}
		cfg.policy = SuccessRange(lo, hi)
		return nil
	}
}

// WithRenderer registers a [Renderer] to be invoked once per tick with the
// published snapshot.
//
// Can be called multiple times; renderers run in registration order on the
// scheduler's goroutine.
func WithRenderer(r Renderer) Option {
	return func(cfg *monitorConfig) error {
		if r == nil {
			return errors.New("renderer cannot be nil")
		}
		cfg.renderers = append(cfg.renderers, r)
		return nil
	}
}

// WithLogger sets the logger used by the monitor and its internals.
// Defaults to [zap.NewNop] if not specified.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *monitorConfig) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// WithAPIAddr enables the HTTP status API on the given listen address
// (e.g. ":8080"). When set, [Monitor.Start] also serves GET /api/status
// and the /api/events SSE stream. Disabled by default.
func WithAPIAddr(addr string) Option {
	return func(cfg *monitorConfig) error {
		if addr == "" {
			return errors.New("api address cannot be empty")
		}
		cfg.apiAddr = addr
		return nil
	}
}
