package statuswatch

// Renderer consumes a complete [Snapshot] and produces display output:
// a terminal board, a log line per target, an HTTP payload, anything.
//
// The monitor guarantees a renderer is invoked exactly once per tick, with
// a snapshot containing one outcome per registered target, and never with
// partial results from an in-flight tick. Rendering happens on the
// scheduler's goroutine; a slow renderer delays the next tick rather than
// overlapping with it.
//
// # Panic Safety
//
// Renderers are invoked within a panic recovery boundary. A panicking
// renderer is logged with a correlation ID and skipped for that tick; it
// cannot stop the monitor.
type Renderer interface {
	Render(Snapshot)
}

// RendererFunc adapts an ordinary function to the [Renderer] interface.
type RendererFunc func(Snapshot)

// Render calls f(s).
func (f RendererFunc) Render(s Snapshot) {
	f(s)
}
