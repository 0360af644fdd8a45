package checker

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestPool(targets []TargetInfo, policy SuccessPolicy) *Pool {
	return NewPool(newTestProber(policy), targets, zap.NewNop())
}

func TestPool_OneOutcomePerTarget(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	var targets []TargetInfo
	for i := 0; i < 8; i++ {
		targets = append(targets, TargetInfo{
			Name:    fmt.Sprintf("T%d", i),
			URL:     srv.URL,
			Timeout: time.Second,
		})
	}

	pool := newTestPool(targets, acceptAll)
	snap := pool.RunTick(context.Background())

	if len(snap.Outcomes) != len(targets) {
		t.Fatalf("outcomes = %d, want %d", len(snap.Outcomes), len(targets))
	}
	for i, o := range snap.Outcomes {
		if o.Target != targets[i].Name {
			t.Errorf("Outcomes[%d].Target = %v, want %v (registry order)", i, o.Target, targets[i].Name)
		}
	}
	if snap.TakenAt.IsZero() {
		t.Error("TakenAt is zero")
	}
}

func TestPool_TrueParallelism(t *testing.T) {
	const perRequestDelay = 150 * time.Millisecond
	const n = 6

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(perRequestDelay)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	var targets []TargetInfo
	for i := 0; i < n; i++ {
		targets = append(targets, TargetInfo{
			Name:    fmt.Sprintf("T%d", i),
			URL:     srv.URL,
			Timeout: 2 * time.Second,
		})
	}

	pool := newTestPool(targets, acceptAll)

	start := time.Now()
	snap := pool.RunTick(context.Background())
	elapsed := time.Since(start)

	// approximately the slowest single probe, not the sum of all probes
	if elapsed >= time.Duration(n)*perRequestDelay {
		t.Errorf("tick took %v, want ~%v (parallel), serial would be %v",
			elapsed, perRequestDelay, time.Duration(n)*perRequestDelay)
	}

	for _, o := range snap.Outcomes {
		if o.Status != StatusUp {
			t.Errorf("%s status = %v, want up", o.Target, o.Status)
		}
	}
}

func TestPool_SlowTargetDoesNotOmitFastOnes(t *testing.T) {
	fast := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer fast.Close()

	hung := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(5 * time.Second) // never answers within the timeout
	}))
	defer hung.Close()

	targets := []TargetInfo{
		{Name: "fast", URL: fast.URL, Timeout: time.Second},
		{Name: "hung", URL: hung.URL, Timeout: 100 * time.Millisecond},
	}

	pool := newTestPool(targets, acceptAll)

	start := time.Now()
	snap := pool.RunTick(context.Background())
	elapsed := time.Since(start)

	if len(snap.Outcomes) != 2 {
		t.Fatalf("outcomes = %d, want 2 (timeouts still produce outcomes)", len(snap.Outcomes))
	}

	fastOut := snap.Outcomes[0]
	if fastOut.Status != StatusUp {
		t.Errorf("fast status = %v, want up", fastOut.Status)
	}

	hungOut := snap.Outcomes[1]
	if hungOut.Status != StatusDown || hungOut.Detail != "timeout" {
		t.Errorf("hung outcome = %+v, want down/timeout", hungOut)
	}

	// bounded by the hung target's timeout, not its sleep
	if elapsed > time.Second {
		t.Errorf("tick took %v, want bounded by the 100ms per-check timeout", elapsed)
	}
}

func TestPool_PanicIsolation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	// the policy panics only for the poisoned target's status code
	poison := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer poison.Close()

	policy := func(code int) bool {
		if code == http.StatusTeapot {
			panic("teapot")
		}
		return true
	}

	targets := []TargetInfo{
		{Name: "ok", URL: srv.URL, Timeout: time.Second},
		{Name: "poison", URL: poison.URL, Timeout: time.Second},
	}

	pool := newTestPool(targets, policy)
	snap := pool.RunTick(context.Background())

	if len(snap.Outcomes) != 2 {
		t.Fatalf("outcomes = %d, want 2", len(snap.Outcomes))
	}

	if snap.Outcomes[0].Status != StatusUp {
		t.Errorf("ok status = %v, want up (fault must not abort other probes)", snap.Outcomes[0].Status)
	}
	if snap.Outcomes[1].Status != StatusError {
		t.Errorf("poison status = %v, want error", snap.Outcomes[1].Status)
	}
	if !strings.Contains(snap.Outcomes[1].Detail, "correlation_id") {
		t.Errorf("poison detail = %q, want correlation ID reference", snap.Outcomes[1].Detail)
	}
}
