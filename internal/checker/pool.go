package checker

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Pool runs one probe per registered target concurrently each tick.
//
// All targets are checked in parallel; each probe's timeout is enforced
// independently, so one slow target never delays reporting on the others.
// RunTick returns only after every probe has resolved — by response,
// timeout, failure, or recovered panic — so no work leaks past the tick
// boundary and the returned snapshot is always complete.
type Pool struct {
	prober  *Prober
	targets []TargetInfo
	logger  *zap.Logger
}

// NewPool creates a [Pool] over a fixed, ordered target registry.
func NewPool(prober *Prober, targets []TargetInfo, logger *zap.Logger) *Pool {
	return &Pool{prober: prober, targets: targets, logger: logger}
}

// RunTick probes every target concurrently and returns the tick's complete
// [Snapshot] in registry order: exactly one outcome per target, never a
// partial set.
func (p *Pool) RunTick(ctx context.Context) Snapshot {
	takenAt := time.Now().UTC()
	outcomes := make([]Outcome, len(p.targets))

	var wg sync.WaitGroup
	for i, t := range p.targets {
		wg.Add(1)
		go func(i int, t TargetInfo) {
			defer wg.Done()
			defer func() {
				// a faulting probe is isolated: it becomes an error
				// outcome instead of aborting the other probes
				if r := recover(); r != nil {
					correlationID := uuid.NewString()
					p.logger.Error("probe panic",
						zap.String("correlation_id", correlationID),
						zap.String("target", t.Name),
						zap.String("panic", fmt.Sprintf("%v", r)),
						zap.String("stack", string(debug.Stack())),
					)
					outcomes[i] = Outcome{
						Target:    t.Name,
						URL:       t.URL,
						Status:    StatusError,
						CheckedAt: time.Now().UTC(),
						Detail:    fmt.Sprintf("probe panic (correlation_id: %s)", correlationID),
					}
				}
			}()
			outcomes[i] = p.prober.Probe(ctx, t)
		}(i, t)
	}
	wg.Wait()

	return Snapshot{TakenAt: takenAt, Outcomes: outcomes}
}
