package config

import (
	"fmt"

	"github.com/mpetrov/statuswatch"
)

// BuildTargets converts a validated config's target list into library
// [statuswatch.Target] values, preserving file order.
func BuildTargets(cfg *Config) ([]statuswatch.Target, error) {
	targets := make([]statuswatch.Target, 0, len(cfg.Targets))

	for _, tc := range cfg.Targets {
		var opts []statuswatch.TargetOption
		if tc.Timeout > 0 {
			opts = append(opts, statuswatch.WithTargetTimeout(tc.Timeout.Duration()))
		}

		t, err := statuswatch.NewTarget(tc.Name, tc.URL, opts...)
		if err != nil {
			return nil, fmt.Errorf("target %q: %w", tc.Name, err)
		}
		targets = append(targets, t)
	}

	return targets, nil
}

// BuildOptions converts a validated config into the monitor options it
// implies: targets, cadence, timeout, and success policy. Renderer,
// logger, and API address are left to the caller since they depend on
// the run mode.
func BuildOptions(cfg *Config) ([]statuswatch.Option, error) {
	targets, err := BuildTargets(cfg)
	if err != nil {
		return nil, err
	}

	return []statuswatch.Option{
		statuswatch.WithTargets(targets...),
		statuswatch.WithInterval(cfg.CheckInterval.Duration()),
		statuswatch.WithCheckTimeout(cfg.CheckTimeout.Duration()),
		statuswatch.WithSuccessRange(cfg.SuccessRange.Min, cfg.SuccessRange.Max),
	}, nil
}
