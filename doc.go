// Package statuswatch is a periodic, concurrent uptime probe for HTTP(S)
// targets.
//
// statuswatch checks a fixed, ordered set of targets once per tick: every
// target is probed in parallel with an independent per-check timeout, all
// results are joined into one complete snapshot, and the snapshot is
// published to a status store and to the configured renderers. Ticks never
// overlap, and a snapshot always contains exactly one outcome per target —
// a slow or unreachable target becomes a "down" or "error" outcome, never
// a missing entry.
//
// # Quick Start
//
//	api, _ := statuswatch.NewTarget("API", "https://api.example.com/health")
//	web, _ := statuswatch.NewTarget("Web", "https://www.example.com")
//
//	m, err := statuswatch.New(
//	    statuswatch.WithTargets(api, web),
//	    statuswatch.WithInterval(30*time.Second),
//	    statuswatch.WithCheckTimeout(5*time.Second),
//	    statuswatch.WithRenderer(&render.Terminal{Out: os.Stdout, Clear: true}),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
//	defer stop()
//	_ = m.Start(ctx)
//
// # Architecture
//
// The core components are:
//
//   - [Target]: an immutable monitored endpoint (name + URL)
//   - [Monitor]: drives the tick cadence and owns the component wiring
//   - [Snapshot]: the complete, consistent set of latest [CheckOutcome]
//     values, one per target, in registry order
//   - [Renderer]: consumes each tick's snapshot for display
//   - [SuccessPolicy]: decides which HTTP status codes count as up
//
// Checking internals live in internal/checker, snapshot storage in
// internal/store, and the optional HTTP status API in internal/server.
// Ready-made renderers live in the render package. For file-driven use,
// the config package loads a YAML target list and the cmd/statuswatch CLI
// wraps the whole thing.
package statuswatch
