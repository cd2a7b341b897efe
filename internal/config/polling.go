package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// PollingConfig contains the fixed re-poll interval for the status
// cache. There is no backoff or jitter; the domain is low frequency.
type PollingConfig struct {
	StatusInterval string `toml:"status_interval" envconfig:"POLL_STATUS_INTERVAL"`
}

// StatusIntervalDuration returns the status poll interval as a duration.
func (c *PollingConfig) StatusIntervalDuration() time.Duration {
	d, _ := time.ParseDuration(c.StatusInterval)
	return d
}

// Merge applies non-zero values from the overlay configuration.
func (c *PollingConfig) Merge(overlay *PollingConfig) {
	if overlay.StatusInterval != "" {
		c.StatusInterval = overlay.StatusInterval
	}
}

// Finalize applies defaults, loads environment overrides, and validates
// the configuration.
func (c *PollingConfig) Finalize() error {
	if c.StatusInterval == "" {
		c.StatusInterval = "5s"
	}
	if err := envconfig.Process("agentops", c); err != nil {
		return fmt.Errorf("process env: %w", err)
	}
	if _, err := time.ParseDuration(c.StatusInterval); err != nil {
		return fmt.Errorf("invalid status_interval: %w", err)
	}
	return nil
}
