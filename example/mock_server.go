package main

import (
	"math/rand"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// StartMockTargetServer runs three mock endpoints with distinct behaviors:
//
//   - /healthy: always 200, small latency variance
//   - /flaky: alternates between 200 and 503 every 20-60 seconds
//   - /slow: sleeps 5 seconds before answering, tripping short timeouts
//
// Call this in a goroutine before creating targets.
func StartMockTargetServer(addr string, logger *zap.Logger) {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthy", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Duration(20+rand.Intn(80)) * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	})

	var (
		mu          sync.Mutex
		flakyUp     = true
		nextFlipAt  = time.Now().Add(time.Duration(20+rand.Intn(41)) * time.Second)
		flipBackoff = func() time.Time {
			return time.Now().Add(time.Duration(20+rand.Intn(41)) * time.Second)
		}
	)
	mux.HandleFunc("/flaky", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		if time.Now().After(nextFlipAt) {
			flakyUp = !flakyUp
			nextFlipAt = flipBackoff()
			logger.Info("flaky target flipped", zap.Bool("up", flakyUp))
		}
		up := flakyUp
		mu.Unlock()

		if up {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(5 * time.Second)
		w.WriteHeader(http.StatusOK)
	})

	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("mock server error", zap.Error(err))
	}
}
