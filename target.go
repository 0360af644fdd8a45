package statuswatch

import (
	"errors"
	"net/url"
	"time"
)

// Target represents a monitored endpoint: a display name and a URL.
//
// Target is immutable after creation via [NewTarget]. The registry handed
// to [New] is an ordered list of Targets, fixed for the process lifetime;
// snapshot ordering follows registry ordering.
type Target struct {
	name    string
	url     string
	timeout time.Duration
}

// Name returns the target's display name.
// The name keys the target's outcome in every snapshot.
func (t Target) Name() string {
	return t.name
}

// URL returns the target's address as a string.
func (t Target) URL() string {
	return t.url
}

// Timeout returns the target's per-check timeout override.
// Returns 0 if no override was specified, meaning the global check timeout
// configured via [WithCheckTimeout] applies.
func (t Target) Timeout() time.Duration {
	return t.timeout
}

// NewTarget creates a [Target] with the given name, URL, and options.
//
// The name is a human-readable identifier and must be unique within the
// registry. The rawURL must be a valid http:// or https:// URL.
//
// Returns an error if the name is empty or the URL is invalid.
//
// Example:
//
//	t, err := statuswatch.NewTarget("API", "https://api.example.com/health",
//	    statuswatch.WithTargetTimeout(5 * time.Second),
//	)
func NewTarget(name, rawURL string, opts ...TargetOption) (Target, error) {
	if name == "" {
		return Target{}, errors.New("target name cannot be empty")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return Target{}, errors.New("invalid URL: " + err.Error())
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return Target{}, errors.New("URL scheme must be http or https")
	}
	if parsed.Host == "" {
		return Target{}, errors.New("URL must have a host")
	}

	cfg := &targetConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return Target{}, err
		}
	}

	return Target{
		name:    name,
		url:     rawURL,
		timeout: cfg.timeout,
	}, nil
}

// targetConfig holds mutable state during target construction.
type targetConfig struct {
	timeout time.Duration
}

// TargetOption is a function that configures a [Target] during construction.
//
// TargetOption implements the functional options pattern. Options return an
// error if validation fails.
type TargetOption func(*targetConfig) error

// WithTargetTimeout overrides the global per-check timeout for this target.
//
// Use this for endpoints that are known to be slower or faster than the
// rest of the registry. The override must still be no longer than the tick
// interval; [New] enforces that once the registry is assembled.
//
// Returns an error if the duration is zero or negative.
func WithTargetTimeout(d time.Duration) TargetOption {
	return func(cfg *targetConfig) error {
		if d <= 0 {
			return errors.New("target timeout must be positive")
		}
		cfg.timeout = d
		return nil
	}
}
