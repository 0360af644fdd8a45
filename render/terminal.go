// Package render provides ready-made statuswatch renderers.
//
// Two implementations are included:
//
//   - [Terminal]: a colored per-target status board written to an
//     io.Writer, refreshed in place each tick
//   - [Log]: one structured log line per target per tick
//
// Both satisfy the statuswatch.Renderer interface and are invoked once
// per tick with a complete snapshot.
package render

import (
	"fmt"
	"io"
	"sync"

	"github.com/mpetrov/statuswatch"
)

// ANSI escape sequences for the terminal board.
const (
	ansiClear  = "\x1b[2J\x1b[H"
	ansiGreen  = "\x1b[32m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiDim    = "\x1b[2m"
	ansiReset  = "\x1b[0m"
)

// Terminal renders each snapshot as a colored status board: one line per
// target with a status dot, the target name, and latency or error detail.
//
// The zero value is not usable; set Out. With Clear set, the screen is
// cleared before each tick so the board refreshes in place.
type Terminal struct {
	// Out receives the rendered board. Usually os.Stdout.
	Out io.Writer

	// Clear wipes the screen before each render, turning the output into
	// a live board instead of an append-only log.
	Clear bool

	// NoColor disables ANSI color sequences, for dumb terminals and pipes.
	NoColor bool

	mu sync.Mutex
}

// Render writes the snapshot as one board. Safe for concurrent use,
// though the monitor only calls it from the scheduler goroutine.
func (t *Terminal) Render(s statuswatch.Snapshot) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.Clear {
		fmt.Fprint(t.Out, ansiClear)
	}

	fmt.Fprintf(t.Out, "statuswatch  %s\n\n", s.TakenAt().Local().Format("2006-01-02 15:04:05"))
	for _, o := range s.Outcomes() {
		fmt.Fprintf(t.Out, "%s %-30s %s\n", t.dot(o.Status), o.Target, t.detail(o))
	}
}

// dot returns the colored status indicator for one outcome.
func (t *Terminal) dot(status statuswatch.Status) string {
	if t.NoColor {
		switch status {
		case statuswatch.StatusUp:
			return "[ up  ]"
		case statuswatch.StatusDown:
			return "[down ]"
		default:
			return "[error]"
		}
	}
	switch status {
	case statuswatch.StatusUp:
		return ansiGreen + "●" + ansiReset
	case statuswatch.StatusDown:
		return ansiRed + "●" + ansiReset
	default:
		return ansiYellow + "●" + ansiReset
	}
}

// detail returns the right-hand column: latency for responses, the error
// detail otherwise.
func (t *Terminal) detail(o statuswatch.CheckOutcome) string {
	if o.Responded() {
		s := fmt.Sprintf("%d  %dms", o.StatusCode, o.Latency.Milliseconds())
		if !t.NoColor {
			return ansiDim + s + ansiReset
		}
		return s
	}
	return o.Detail
}
