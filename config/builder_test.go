package config

import (
	"testing"
	"time"

	"github.com/mpetrov/statuswatch"
)

func TestBuildTargets(t *testing.T) {
	cfg, err := Parse([]byte(`
check_timeout: 10s
targets:
  - https://example.com
  - name: API
    url: https://api.example.com/health
    timeout: 5s
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	targets, err := BuildTargets(cfg)
	if err != nil {
		t.Fatalf("BuildTargets() error = %v", err)
	}
	if len(targets) != 2 {
		t.Fatalf("len(targets) = %d, want 2", len(targets))
	}

	if got := targets[0].Name(); got != "https://example.com" {
		t.Errorf("targets[0].Name() = %q, want the URL", got)
	}
	if got := targets[0].Timeout(); got != 0 {
		t.Errorf("targets[0].Timeout() = %v, want 0 (use global)", got)
	}

	if got := targets[1].Name(); got != "API" {
		t.Errorf("targets[1].Name() = %q, want API", got)
	}
	if got := targets[1].Timeout(); got != 5*time.Second {
		t.Errorf("targets[1].Timeout() = %v, want 5s", got)
	}
}

func TestBuildOptions_ConstructsMonitor(t *testing.T) {
	cfg, err := Parse([]byte(`
check_interval: 30s
check_timeout: 5s
success_range:
  min: 200
  max: 299
targets:
  - https://example.com
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	opts, err := BuildOptions(cfg)
	if err != nil {
		t.Fatalf("BuildOptions() error = %v", err)
	}

	m, err := statuswatch.New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got := m.Interval(); got != 30*time.Second {
		t.Errorf("Interval() = %v, want 30s", got)
	}
	if got := m.CheckTimeout(); got != 5*time.Second {
		t.Errorf("CheckTimeout() = %v, want 5s", got)
	}
	if got := len(m.Targets()); got != 1 {
		t.Errorf("len(Targets()) = %d, want 1", got)
	}
}
