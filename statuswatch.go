package statuswatch

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mpetrov/statuswatch/internal/checker"
	"github.com/mpetrov/statuswatch/internal/server"
	"github.com/mpetrov/statuswatch/internal/store"
)

const (
	defaultInterval     = 60 * time.Second
	defaultCheckTimeout = 10 * time.Second
)

// Monitor is the main orchestrator: it drives the tick cadence, checks
// every registered target concurrently each tick, publishes one complete
// snapshot to the status store, and invokes the configured renderers.
//
// Monitor is created with [New] using functional options and started with
// [Monitor.Start]. The typical lifecycle is:
//
//	m, err := statuswatch.New(
//	    statuswatch.WithTargets(targets...),
//	    statuswatch.WithRenderer(&render.Terminal{Out: os.Stdout}),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
//	defer stop()
//
//	m.Start(ctx) // blocks until ctx cancelled
//
// The caller controls the lifecycle via the context. Cancel the context
// to trigger graceful shutdown: an idle wait is interrupted immediately,
// an in-flight tick completes (bounded by the per-check timeout) and is
// published before Start returns.
type Monitor struct {
	targets      []Target
	interval     time.Duration
	checkTimeout time.Duration
	policy       SuccessPolicy
	renderers    []Renderer
	logger       *zap.Logger
	apiAddr      string

	store *store.SnapshotStore
}

// New creates a [Monitor] with the given options.
//
// At least one target must be configured via [WithTarget] or [WithTargets].
// Other options have defaults:
//   - Tick interval: 60 seconds
//   - Per-check timeout: 10 seconds
//   - Success policy: [DefaultSuccessPolicy] (2xx–3xx is up)
//
// Configuration errors surface here, before any tick runs: an empty
// registry, duplicate target names, or a check timeout (global or
// per-target) longer than the tick interval.
func New(opts ...Option) (*Monitor, error) {
	cfg := &monitorConfig{
		interval:     defaultInterval,
		checkTimeout: defaultCheckTimeout,
		policy:       DefaultSuccessPolicy,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if len(cfg.targets) == 0 {
		return nil, errors.New("at least one target is required")
	}

	// snapshot keys are target names, so names must be unique
	seen := make(map[string]bool, len(cfg.targets))
	for _, t := range cfg.targets {
		if seen[t.name] {
			return nil, fmt.Errorf("duplicate target name: %q", t.name)
		}
		seen[t.name] = true
	}

	if cfg.checkTimeout > cfg.interval {
		return nil, fmt.Errorf("check timeout %s exceeds tick interval %s", cfg.checkTimeout, cfg.interval)
	}
	for _, t := range cfg.targets {
		if t.timeout > cfg.interval {
			return nil, fmt.Errorf("target %q timeout %s exceeds tick interval %s", t.name, t.timeout, cfg.interval)
		}
	}

	logger := cfg.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Monitor{
		targets:      cfg.targets,
		interval:     cfg.interval,
		checkTimeout: cfg.checkTimeout,
		policy:       cfg.policy,
		renderers:    cfg.renderers,
		logger:       logger,
		apiAddr:      cfg.apiAddr,
		store:        store.NewSnapshotStore(),
	}, nil
}

// Start begins checking targets and blocks until ctx is cancelled.
//
// During execution:
//   - All targets are checked immediately, then once per tick interval
//   - Each tick publishes exactly one complete snapshot to the status
//     store and invokes every renderer with it, in registration order
//   - When configured via [WithAPIAddr], the HTTP status API is served
//
// Returns nil on graceful shutdown, or an error if the HTTP API fails
// to start.
func (m *Monitor) Start(ctx context.Context) error {
	m.logger.Info("statuswatch starting",
		zap.Int("targets", len(m.targets)),
		zap.Duration("interval", m.interval),
		zap.Duration("check_timeout", m.checkTimeout),
	)

	if ctx.Err() != nil {
		return nil
	}

	client := checker.NewClient()
	defer client.Close()

	prober := checker.NewProber(client, checker.SuccessPolicy(m.policy), m.logger)
	pool := checker.NewPool(prober, m.toCheckerTargets(), m.logger)
	scheduler := checker.NewScheduler(pool, m.interval, m.publish, m.logger)

	if m.apiAddr != "" {
		srv := server.NewServer(m.store, m.apiAddr, m.logger)
		if err := srv.Start(ctx); err != nil {
			return fmt.Errorf("failed to start HTTP API: %w", err)
		}
	}

	scheduler.Run(ctx)

	m.logger.Info("statuswatch stopped")
	return nil
}

// Snapshot returns the latest published snapshot, or the empty snapshot
// if no tick has completed yet. Safe to call concurrently with Start.
func (m *Monitor) Snapshot() Snapshot {
	return storeToPublic(m.store.Current())
}

// Targets returns a copy of the registry.
func (m *Monitor) Targets() []Target {
	cp := make([]Target, len(m.targets))
	copy(cp, m.targets)
	return cp
}

// Interval returns the configured tick interval.
func (m *Monitor) Interval() time.Duration {
	return m.interval
}

// CheckTimeout returns the configured global per-check timeout.
func (m *Monitor) CheckTimeout() time.Duration {
	return m.checkTimeout
}

// publish is the scheduler's publish hook: it replaces the store snapshot
// exactly once per tick, then invokes the renderers with the public form.
// Store update comes first so readers of the HTTP API and renderers agree.
func (m *Monitor) publish(ts checker.Snapshot) {
	pub := checkerToPublic(ts)
	m.store.Replace(publicToStore(pub))

	for _, r := range m.renderers {
		m.renderSafe(r, pub)
	}

	for _, o := range pub.Outcomes() {
		fields := []zap.Field{
			zap.String("target", o.Target),
			zap.String("url", o.URL),
			zap.String("status", string(o.Status)),
			zap.Int64("latency_ms", o.Latency.Milliseconds()),
		}
		if o.Detail != "" {
			m.logger.Warn("check completed with error", append(fields, zap.String("detail", o.Detail))...)
		} else {
			m.logger.Debug("check completed", fields...)
		}
	}
}

// renderSafe invokes a renderer with panic recovery. A panicking renderer
// is logged with a correlation ID and skipped for this tick.
func (m *Monitor) renderSafe(r Renderer, s Snapshot) {
	defer func() {
		if rec := recover(); rec != nil {
			correlationID := uuid.NewString()
			m.logger.Error("renderer panic",
				zap.String("correlation_id", correlationID),
				zap.String("panic", fmt.Sprintf("%v", rec)),
				zap.String("stack", string(debug.Stack())),
			)
		}
	}()
	r.Render(s)
}

// toCheckerTargets converts the registry to the checker's internal form,
// resolving per-target timeout overrides against the global default.
func (m *Monitor) toCheckerTargets() []checker.TargetInfo {
	infos := make([]checker.TargetInfo, len(m.targets))
	for i, t := range m.targets {
		timeout := t.timeout
		if timeout == 0 {
			timeout = m.checkTimeout
		}
		infos[i] = checker.TargetInfo{
			Name:    t.name,
			URL:     t.url,
			Timeout: timeout,
		}
	}
	return infos
}

// checkerToPublic converts a checker snapshot to the public form.
func checkerToPublic(ts checker.Snapshot) Snapshot {
	outcomes := make([]CheckOutcome, len(ts.Outcomes))
	for i, o := range ts.Outcomes {
		outcomes[i] = CheckOutcome{
			Target:     o.Target,
			URL:        o.URL,
			Status:     Status(o.Status),
			StatusCode: o.StatusCode,
			Latency:    o.Latency,
			CheckedAt:  o.CheckedAt,
			Detail:     o.Detail,
		}
	}
	return NewSnapshot(ts.TakenAt, outcomes)
}

// publicToStore converts a public snapshot to the store's JSON shape.
func publicToStore(s Snapshot) store.Snapshot {
	outcomes := make([]store.Outcome, 0, s.Len())
	for _, o := range s.Outcomes() {
		so := store.Outcome{
			Target:     o.Target,
			URL:        o.URL,
			Status:     string(o.Status),
			StatusCode: o.StatusCode,
			CheckedAt:  o.CheckedAt,
		}
		if o.Responded() {
			ms := o.Latency.Milliseconds()
			so.LatencyMs = &ms
		}
		if o.Detail != "" {
			d := o.Detail
			so.Detail = &d
		}
		outcomes = append(outcomes, so)
	}
	return store.Snapshot{TakenAt: s.TakenAt(), Outcomes: outcomes}
}

// storeToPublic converts a stored snapshot back to the public form.
func storeToPublic(ss store.Snapshot) Snapshot {
	outcomes := make([]CheckOutcome, len(ss.Outcomes))
	for i, o := range ss.Outcomes {
		co := CheckOutcome{
			Target:     o.Target,
			URL:        o.URL,
			Status:     Status(o.Status),
			StatusCode: o.StatusCode,
			CheckedAt:  o.CheckedAt,
		}
		if o.LatencyMs != nil {
			co.Latency = time.Duration(*o.LatencyMs) * time.Millisecond
		}
		if o.Detail != nil {
			co.Detail = *o.Detail
		}
		outcomes[i] = co
	}
	return NewSnapshot(ss.TakenAt, outcomes)
}
