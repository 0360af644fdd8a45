package render

import (
	"go.uber.org/zap"

	"github.com/mpetrov/statuswatch"
)

// Log renders each snapshot as one structured log line per target.
// Useful in serve mode, where no terminal owns the output.
type Log struct {
	Logger *zap.Logger
}

// Render logs every outcome in the snapshot at info level.
func (l *Log) Render(s statuswatch.Snapshot) {
	for _, o := range s.Outcomes() {
		fields := []zap.Field{
			zap.String("target", o.Target),
			zap.String("url", o.URL),
			zap.String("status", string(o.Status)),
		}
		if o.Responded() {
			fields = append(fields,
				zap.Int("status_code", o.StatusCode),
				zap.Int64("latency_ms", o.Latency.Milliseconds()),
			)
		}
		if o.Detail != "" {
			fields = append(fields, zap.String("detail", o.Detail))
		}
		l.Logger.Info("target status", fields...)
	}
}
