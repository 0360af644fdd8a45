package checker

import (
	"context"
	"io"
	"net/http"
	"time"
)

// drainLimit caps how much of a response body is read before the
// connection is released. Status checks only need the status code; the
// body is drained (up to this limit) so keep-alive connections are reused.
const drainLimit = 64 << 10 // 64KB

// connection pooling limits to prevent resource exhaustion when checking
// many targets every tick
const (
	defaultMaxIdleConns        = 100
	defaultMaxIdleConnsPerHost = 4
	defaultMaxConnsPerHost     = 4
	defaultIdleConnTimeout     = 90 * time.Second
)

// Response holds the result of one HTTP request made by [Client].
type Response struct {
	// StatusCode is the HTTP status code (e.g., 200, 404, 500).
	// Zero if the request failed before receiving a response.
	StatusCode int

	// Latency is the total time taken for the request.
	Latency time.Duration

	// Err contains any transport-level error: DNS, TCP, TLS, or a
	// context deadline. nil means a response was received.
	Err error
}

// Client is an HTTP client wrapper for status checks.
//
// Client carries no global timeout; deadlines are applied per request via
// the context passed to [Client.Get], so each target's timeout is enforced
// independently.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new check [Client] with pooled connections.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        defaultMaxIdleConns,
				MaxIdleConnsPerHost: defaultMaxIdleConnsPerHost,
				MaxConnsPerHost:     defaultMaxConnsPerHost,
				IdleConnTimeout:     defaultIdleConnTimeout,
			},
		},
	}
}

// Get performs a GET request against url and returns a structured
// [Response]. Errors are captured in the Err field rather than returned
// separately, which simplifies classification in the prober.
//
// The caller is responsible for bounding the request with a context
// deadline; Get itself never blocks past ctx.
func (c *Client) Get(ctx context.Context, url string) Response {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Response{Latency: time.Since(start), Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{Latency: time.Since(start), Err: err}
	}
	latency := time.Since(start)

	// drain so the connection can be reused, then close
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, drainLimit))
	_ = resp.Body.Close()

	return Response{StatusCode: resp.StatusCode, Latency: latency}
}

// Close releases all idle connections in the client's pool. The client
// remains usable afterwards; new connections are established as needed.
func (c *Client) Close() {
	if c == nil || c.httpClient == nil {
		return
	}
	if transport, ok := c.httpClient.Transport.(*http.Transport); ok {
		transport.CloseIdleConnections()
	}
}
