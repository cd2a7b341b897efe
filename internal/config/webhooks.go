package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// WebhookNotConfigured is the sentinel URL value meaning a webhook is
// intentionally unconfigured; it is treated identically to an absent
// value.
const WebhookNotConfigured = "placeholder"

// WebhooksConfig maps each agent's webhook reference to a URL. One
// environment variable exists per agent (AGENTOPS_WEBHOOK_*), allowing
// deployment-time rebinding without code change.
type WebhooksConfig struct {
	BusinessIntel      string `toml:"business_intel" envconfig:"WEBHOOK_BUSINESS_INTEL"`
	CareerScout        string `toml:"career_scout" envconfig:"WEBHOOK_CAREER_SCOUT"`
	LinkedinResearcher string `toml:"linkedin_researcher" envconfig:"WEBHOOK_LINKEDIN_RESEARCHER"`
}

// Merge applies non-zero values from the overlay configuration.
func (c *WebhooksConfig) Merge(overlay *WebhooksConfig) {
	if overlay.BusinessIntel != "" {
		c.BusinessIntel = overlay.BusinessIntel
	}
	if overlay.CareerScout != "" {
		c.CareerScout = overlay.CareerScout
	}
	if overlay.LinkedinResearcher != "" {
		c.LinkedinResearcher = overlay.LinkedinResearcher
	}
}

// Finalize loads environment overrides.
func (c *WebhooksConfig) Finalize() error {
	if err := envconfig.Process("agentops", c); err != nil {
		return fmt.Errorf("process env: %w", err)
	}
	return nil
}

// URL resolves a webhook reference to its configured URL. The second
// result is false when the reference is unknown, empty, or the
// not-configured sentinel.
func (c *WebhooksConfig) URL(ref string) (string, bool) {
	var url string
	switch ref {
	case "business-intel":
		url = c.BusinessIntel
	case "career-scout":
		url = c.CareerScout
	case "linkedin-researcher":
		url = c.LinkedinResearcher
	default:
		return "", false
	}

	if url == "" || url == WebhookNotConfigured {
		return "", false
	}
	return url, true
}

// Configured returns every resolvable webhook URL in catalog order.
func (c *WebhooksConfig) Configured() []string {
	var urls []string
	for _, ref := range []string{"business-intel", "career-scout", "linkedin-researcher"} {
		if url, ok := c.URL(ref); ok {
			urls = append(urls, url)
		}
	}
	return urls
}
