package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/mpetrov/statuswatch/internal/store"
)

const (
	// sseWriteTimeout bounds a single SSE write so a slow or disconnected
	// client cannot leak the handler goroutine. Must be <= the shutdown
	// timeout for clean shutdown.
	sseWriteTimeout = 5 * time.Second

	shutdownTimeout = 5 * time.Second
)

// Server handles HTTP requests for the statuswatch status API.
//
// Server provides two endpoints:
//   - GET /api/status: Returns the current snapshot as JSON
//   - GET /api/events: Server-Sent Events stream of published snapshots
//
// The server is designed for graceful shutdown via context cancellation.
type Server struct {
	store      store.Store
	addr       string
	boundAddr  string
	httpServer *http.Server
	logger     *zap.Logger
}

// NewServer creates a new HTTP [Server] reading from the given store.
// The server is not started until [Server.Start] is called.
func NewServer(st store.Store, addr string, logger *zap.Logger) *Server {
	return &Server{
		store:  st,
		addr:   addr,
		logger: logger,
	}
}

// Start begins serving HTTP requests in a background goroutine.
//
// Start is non-blocking and returns immediately after confirming the
// listener is bound. The server runs until ctx is cancelled, then shuts
// down gracefully with a bounded timeout.
//
// Returns an error if the listener fails to bind.
func (s *Server) Start(ctx context.Context) error {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet},
	}))

	r.Get("/api/status", s.handleStatus)
	r.Get("/api/events", s.handleEvents)

	// create the listener first to surface bind errors synchronously
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to bind to %s: %w", s.addr, err)
	}

	s.httpServer = &http.Server{
		Handler: r,
		// BaseContext derives all request contexts from the server context,
		// so cancelling ctx also cancels long-running handlers like SSE.
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	s.boundAddr = ln.Addr().String()
	s.logger.Info("status API listening", zap.String("addr", s.boundAddr))

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger.Error("http server error", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("http server shutdown error", zap.Error(err))
		}
	}()

	return nil
}

// Addr returns the bound listen address. Empty before Start; useful when
// the configured address uses port 0.
func (s *Server) Addr() string {
	return s.boundAddr
}

// handleStatus returns the current snapshot as JSON.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Current()

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")

	if err := json.NewEncoder(w).Encode(snap); err != nil {
		s.logger.Error("failed to encode status response", zap.Error(err))
	}
}

// handleEvents streams published snapshots via Server-Sent Events.
//
// The handler sends the current snapshot immediately, then one event per
// published snapshot. Write deadlines prevent goroutine leaks on slow or
// disconnected clients.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	sub := s.store.Subscribe()
	defer s.store.Unsubscribe(sub)

	rc := http.NewResponseController(w)

	// initial event so a client sees state without waiting a full tick
	if err := writeEvent(rc, w, flusher, s.store.Current()); err != nil {
		return
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case snap, ok := <-sub:
			if !ok {
				return
			}
			if err := writeEvent(rc, w, flusher, snap); err != nil {
				return
			}
		}
	}
}

// writeEvent marshals one snapshot as an SSE data frame with a bounded
// write deadline.
func writeEvent(rc *http.ResponseController, w http.ResponseWriter, flusher http.Flusher, snap store.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	if err := rc.SetWriteDeadline(time.Now().Add(sseWriteTimeout)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
		return err
	}
	flusher.Flush()
	return nil
}
