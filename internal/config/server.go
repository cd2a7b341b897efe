package config

import (
	"fmt"
	"time"

	"github.com/docker/go-units"
	"github.com/kelseyhightower/envconfig"
)

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host         string `toml:"host" envconfig:"HOST"`
	Port         int    `toml:"port" envconfig:"PORT"`
	ReadTimeout  string `toml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout string `toml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout  string `toml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
	MaxBodySize  string `toml:"max_body_size" envconfig:"MAX_BODY_SIZE"`
}

// Addr returns the host:port listen address.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ReadTimeoutDuration returns the read timeout as a duration.
func (c *ServerConfig) ReadTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ReadTimeout)
	return d
}

// WriteTimeoutDuration returns the write timeout as a duration.
func (c *ServerConfig) WriteTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.WriteTimeout)
	return d
}

// IdleTimeoutDuration returns the idle timeout as a duration.
func (c *ServerConfig) IdleTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.IdleTimeout)
	return d
}

// MaxBodyBytes returns the maximum request body size in bytes, parsed
// from a human-readable size such as "1MB".
func (c *ServerConfig) MaxBodyBytes() int64 {
	n, _ := units.FromHumanSize(c.MaxBodySize)
	return n
}

// Merge applies non-zero values from the overlay configuration.
func (c *ServerConfig) Merge(overlay *ServerConfig) {
	if overlay.Host != "" {
		c.Host = overlay.Host
	}
	if overlay.Port != 0 {
		c.Port = overlay.Port
	}
	if overlay.ReadTimeout != "" {
		c.ReadTimeout = overlay.ReadTimeout
	}
	if overlay.WriteTimeout != "" {
		c.WriteTimeout = overlay.WriteTimeout
	}
	if overlay.IdleTimeout != "" {
		c.IdleTimeout = overlay.IdleTimeout
	}
	if overlay.MaxBodySize != "" {
		c.MaxBodySize = overlay.MaxBodySize
	}
}

// Finalize applies defaults, loads environment overrides, and validates
// the configuration.
func (c *ServerConfig) Finalize() error {
	if c.Host == "" {
		c.Host = "0.0.0.0"
	}
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.ReadTimeout == "" {
		c.ReadTimeout = "10s"
	}
	if c.WriteTimeout == "" {
		c.WriteTimeout = "30s"
	}
	if c.IdleTimeout == "" {
		c.IdleTimeout = "120s"
	}
	if c.MaxBodySize == "" {
		c.MaxBodySize = "1MB"
	}

	if err := envconfig.Process("agentops_server", c); err != nil {
		return fmt.Errorf("process env: %w", err)
	}

	for name, v := range map[string]string{
		"read_timeout":  c.ReadTimeout,
		"write_timeout": c.WriteTimeout,
		"idle_timeout":  c.IdleTimeout,
	} {
		if _, err := time.ParseDuration(v); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}
	if _, err := units.FromHumanSize(c.MaxBodySize); err != nil {
		return fmt.Errorf("invalid max_body_size: %w", err)
	}
	return nil
}
