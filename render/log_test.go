package render

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mpetrov/statuswatch"
)

func TestLog_OneLinePerTarget(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := &Log{Logger: zap.New(core)}

	l.Render(boardSnapshot())

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("logged %d entries, want 3", len(entries))
	}

	first := entries[0].ContextMap()
	if first["target"] != "api" {
		t.Errorf("first entry target = %v, want api", first["target"])
	}
	if first["status"] != "up" {
		t.Errorf("first entry status = %v, want up", first["status"])
	}
	if first["latency_ms"] != int64(42) {
		t.Errorf("first entry latency_ms = %v, want 42", first["latency_ms"])
	}

	second := entries[1].ContextMap()
	if second["detail"] != "timeout" {
		t.Errorf("second entry detail = %v, want timeout", second["detail"])
	}
	if _, present := second["status_code"]; present {
		t.Error("second entry carries status_code despite no response")
	}
}

func TestLog_EmptySnapshotLogsNothing(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := &Log{Logger: zap.New(core)}

	l.Render(statuswatch.NewSnapshot(time.Now(), nil))

	if n := logs.Len(); n != 0 {
		t.Errorf("logged %d entries for an empty snapshot, want 0", n)
	}
}
