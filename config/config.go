// Package config provides YAML configuration parsing for statuswatch.
//
// This package enables running statuswatch as a standalone binary with a
// configuration file, as an alternative to the programmatic library
// approach.
//
// Example configuration:
//
//	check_interval: 60s
//	check_timeout: 10s
//	log_dir: logs
//
//	targets:
//	  - https://example.com
//	  - name: API
//	    url: https://api.example.com/health
//	    timeout: 5s
package config

import (
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

const (
	defaultInterval = 60 * time.Second
	defaultTimeout  = 10 * time.Second
	defaultAPIAddr  = ":8080"
	defaultLogDir   = "logs"
)

// minInterval is the minimum allowed tick interval. This prevents
// accidental DoS of targets with overly aggressive checking.
const minInterval = 1 * time.Second

// Config is the root configuration structure for statuswatch.
//
// It maps directly to the YAML configuration file. Use [Load] or [Parse]
// to create a Config from YAML; both apply defaults and validate.
type Config struct {
	// CheckInterval is the time between ticks.
	// Accepts duration strings like "60s", "1m", "500ms". Defaults to 60s.
	CheckInterval Duration `yaml:"check_interval"`

	// CheckTimeout is the global per-check timeout. Must be no longer
	// than CheckInterval. Defaults to 10s.
	CheckTimeout Duration `yaml:"check_timeout"`

	// SuccessRange is the inclusive status-code range that counts as up.
	// Defaults to 200–399.
	SuccessRange RangeConfig `yaml:"success_range"`

	// APIAddr is the listen address for the HTTP status API in serve
	// mode. Defaults to ":8080".
	APIAddr string `yaml:"api_addr"`

	// LogDir is the directory for rotating log files. Defaults to "logs".
	LogDir string `yaml:"log_dir"`

	// Targets is the ordered list of monitored endpoints.
	Targets []TargetConfig `yaml:"targets"`
}

// TargetConfig defines a single monitored endpoint.
//
// It supports two YAML formats. Shorthand string, where the URL doubles
// as the display name:
//
//	targets:
//	  - https://example.com
//
// Structured object:
//
//	targets:
//	  - name: API
//	    url: https://api.example.com/health
//	    timeout: 5s
type TargetConfig struct {
	// Name is the display name. Defaults to the URL when omitted.
	Name string `yaml:"name"`

	// URL is the address to check. Supports environment variable
	// substitution: ${VAR} or ${VAR:-default}.
	URL string `yaml:"url"`

	// Timeout overrides the global check timeout for this target.
	Timeout Duration `yaml:"timeout"`
}

// RangeConfig is an inclusive HTTP status-code range.
type RangeConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Duration wraps time.Duration for YAML unmarshalling.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}

	*d = Duration(parsed)
	return nil
}

// Duration returns the underlying time.Duration value.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// UnmarshalYAML implements yaml.Unmarshaler for TargetConfig, accepting
// either a bare URL string or a structured object.
func (t *TargetConfig) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		t.URL = s
		return nil
	}

	if node.Kind == yaml.MappingNode {
		// temporary struct to avoid infinite recursion
		var raw struct {
			Name    string   `yaml:"name"`
			URL     string   `yaml:"url"`
			Timeout Duration `yaml:"timeout"`
		}
		if err := node.Decode(&raw); err != nil {
			return err
		}
		t.Name = raw.Name
		t.URL = raw.URL
		t.Timeout = raw.Timeout
		return nil
	}

	return fmt.Errorf("target must be a URL string or an object, got %v", node.Kind)
}

// envVarPattern matches ${VAR} and ${VAR:-default} patterns.
// Group 1: variable name
// Group 2: the ":-default" part (if present, indicates a default was specified)
// Group 3: the default value (may be empty for ${VAR:-})
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(:-([^}]*))?\}`)

// expandEnvVars replaces ${VAR} and ${VAR:-default} patterns with
// environment values.
func expandEnvVars(s string) (string, error) {
	var firstErr error

	result := envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		if firstErr != nil {
			return match
		}

		submatches := envVarPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		varName := submatches[1]
		hasDefault := len(submatches) > 2 && submatches[2] != ""
		defaultVal := ""
		if hasDefault && len(submatches) > 3 {
			defaultVal = submatches[3]
		}

		value, exists := os.LookupEnv(varName)
		if !exists {
			if hasDefault {
				return defaultVal
			}
			firstErr = fmt.Errorf("environment variable %q is not set", varName)
			return match
		}
		return value
	})

	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}

// Load reads and parses a YAML configuration file.
//
// Environment variables in target URLs are expanded, defaults are applied,
// and the result is validated. Returns an error if the file cannot be
// read, the YAML is malformed, or validation fails.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML configuration bytes.
//
// Like [Load], Parse expands environment variables, applies defaults, and
// validates before returning.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.applyDefaults()

	for i := range cfg.Targets {
		expanded, err := expandEnvVars(cfg.Targets[i].URL)
		if err != nil {
			return nil, fmt.Errorf("target %d: %w", i, err)
		}
		cfg.Targets[i].URL = expanded
		if cfg.Targets[i].Name == "" {
			cfg.Targets[i].Name = cfg.Targets[i].URL
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills unset fields with their documented defaults.
func (c *Config) applyDefaults() {
	if c.CheckInterval == 0 {
		c.CheckInterval = Duration(defaultInterval)
	}
	if c.CheckTimeout == 0 {
		c.CheckTimeout = Duration(defaultTimeout)
	}
	if c.SuccessRange == (RangeConfig{}) {
		c.SuccessRange = RangeConfig{Min: 200, Max: 399}
	}
	if c.APIAddr == "" {
		c.APIAddr = defaultAPIAddr
	}
	if c.LogDir == "" {
		c.LogDir = defaultLogDir
	}
}

// Validate checks the configuration for startup errors: an empty target
// list, invalid interval/timeout values, bad URLs, duplicate names, or a
// nonsensical success range.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.CheckInterval,
			validation.Required,
			validation.By(func(interface{}) error {
				if c.CheckInterval.Duration() < minInterval {
					return fmt.Errorf("check_interval must be at least %s", minInterval)
				}
				return nil
			}),
		),
		validation.Field(&c.CheckTimeout,
			validation.Required,
			validation.By(func(interface{}) error {
				if c.CheckTimeout.Duration() <= 0 {
					return fmt.Errorf("check_timeout must be positive")
				}
				if c.CheckTimeout.Duration() > c.CheckInterval.Duration() {
					return fmt.Errorf("check_timeout %s exceeds check_interval %s",
						c.CheckTimeout.Duration(), c.CheckInterval.Duration())
				}
				return nil
			}),
		),
		validation.Field(&c.SuccessRange,
			validation.By(func(interface{}) error {
				r := c.SuccessRange
				if r.Min < 100 || r.Max > 599 || r.Min > r.Max {
					return fmt.Errorf("success_range must satisfy 100 <= min <= max <= 599")
				}
				return nil
			}),
		),
		validation.Field(&c.Targets,
			validation.Required.Error("at least one target is required"),
			validation.By(validateTargets),
		),
	)
}

// validateTargets checks each target URL and rejects duplicate names.
func validateTargets(value interface{}) error {
	targets, ok := value.([]TargetConfig)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a target list")
	}

	seen := make(map[string]bool, len(targets))
	for i, t := range targets {
		if seen[t.Name] {
			return fmt.Errorf("target %d: duplicate name %q", i, t.Name)
		}
		seen[t.Name] = true

		u, err := url.Parse(t.URL)
		if err != nil {
			return fmt.Errorf("target %q: invalid URL: %w", t.Name, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("target %q: URL scheme must be http or https", t.Name)
		}
		if u.Host == "" {
			return fmt.Errorf("target %q: URL must have a host", t.Name)
		}
		if strings.TrimSpace(t.Name) == "" {
			return fmt.Errorf("target %d: name cannot be blank", i)
		}
	}
	return nil
}
