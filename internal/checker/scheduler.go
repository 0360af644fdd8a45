package checker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// PublishFunc receives one complete [Snapshot] per tick. The scheduler
// calls it inline, after all probes for the tick have resolved and before
// the next tick is scheduled.
type PublishFunc func(Snapshot)

// Scheduler drives the tick cadence: it invokes the [Pool] once per
// interval and hands each complete snapshot to the publish function.
//
// Ticks never overlap. Each tick fans out to parallel per-target probes,
// fans back in, and is published before the next tick begins; a tick that
// outlasts the interval simply delays the next one.
type Scheduler struct {
	pool     *Pool
	interval time.Duration
	publish  PublishFunc
	logger   *zap.Logger
}

// NewScheduler creates a [Scheduler] ticking at the given interval.
func NewScheduler(pool *Pool, interval time.Duration, publish PublishFunc, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		pool:     pool,
		interval: interval,
		publish:  publish,
		logger:   logger,
	}
}

// Run executes the tick loop until ctx is cancelled.
//
// The first tick fires immediately, not after a full interval. Cancellation
// interrupts an idle wait at once; a tick already in flight runs to
// completion — its probes are bounded by their per-check timeouts — and is
// published before Run returns, so the last snapshot is never lost.
func (s *Scheduler) Run(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	s.tick(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick runs one complete check cycle: fan out, join, publish.
func (s *Scheduler) tick(ctx context.Context) {
	start := time.Now()
	snap := s.pool.RunTick(ctx)
	s.publish(snap)
	s.logger.Debug("tick complete",
		zap.Int("targets", len(snap.Outcomes)),
		zap.Duration("elapsed", time.Since(start)),
	)
}
