// Package configs provides the domain system for persisted
// configuration sections: whole-bag reads and upserts keyed by section.
package configs

import (
	"time"
)

// AgentConfig is one persisted configuration section. Value holds the
// entire bag for the section; LastUpdated is assigned by the store on
// every successful write.
type AgentConfig struct {
	Key         string         `json:"key"`
	Value       map[string]any `json:"value"`
	LastUpdated time.Time      `json:"last_updated"`
}
