package config_test

import (
	"reflect"
	"testing"

	"github.com/bremenlabs/agentops/internal/config"
)

func TestWebhooksConfig_URL(t *testing.T) {
	cfg := config.WebhooksConfig{
		BusinessIntel:      "https://hooks.example.com/business",
		CareerScout:        config.WebhookNotConfigured,
		LinkedinResearcher: "",
	}

	tests := []struct {
		name    string
		ref     string
		wantURL string
		wantOK  bool
	}{
		{"configured", "business-intel", "https://hooks.example.com/business", true},
		{"sentinel treated as absent", "career-scout", "", false},
		{"empty treated as absent", "linkedin-researcher", "", false},
		{"unknown reference", "mystery-agent", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, ok := cfg.URL(tt.ref)
			if url != tt.wantURL || ok != tt.wantOK {
				t.Errorf("URL(%s) = (%q, %v), want (%q, %v)", tt.ref, url, ok, tt.wantURL, tt.wantOK)
			}
		})
	}
}

func TestWebhooksConfig_Configured(t *testing.T) {
	cfg := config.WebhooksConfig{
		BusinessIntel:      config.WebhookNotConfigured,
		CareerScout:        "https://hooks.example.com/career",
		LinkedinResearcher: "https://hooks.example.com/linkedin",
	}

	got := cfg.Configured()
	want := []string{"https://hooks.example.com/career", "https://hooks.example.com/linkedin"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Configured() = %v, want %v", got, want)
	}
}

func TestServerConfig_FinalizeDefaults(t *testing.T) {
	cfg := config.ServerConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if got := cfg.Addr(); got != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q, want 0.0.0.0:8080", got)
	}
	if got := cfg.ReadTimeoutDuration().String(); got != "10s" {
		t.Errorf("ReadTimeoutDuration() = %s, want 10s", got)
	}
	if got := cfg.MaxBodyBytes(); got != 1000000 {
		t.Errorf("MaxBodyBytes() = %d, want 1000000", got)
	}
}

func TestServerConfig_FinalizeRejectsBadDuration(t *testing.T) {
	cfg := config.ServerConfig{ReadTimeout: "soon"}
	if err := cfg.Finalize(); err == nil {
		t.Error("Finalize() error = nil, want invalid read_timeout error")
	}
}

func TestServerConfig_Merge(t *testing.T) {
	base := config.ServerConfig{Host: "0.0.0.0", Port: 8080, ReadTimeout: "10s"}
	base.Merge(&config.ServerConfig{Port: 9090})

	if base.Port != 9090 {
		t.Errorf("Port = %d, want overlay 9090", base.Port)
	}
	if base.Host != "0.0.0.0" {
		t.Errorf("Host = %q, want base value kept", base.Host)
	}
}

func TestPollingConfig_FinalizeDefaults(t *testing.T) {
	cfg := config.PollingConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if got := cfg.StatusIntervalDuration().String(); got != "5s" {
		t.Errorf("StatusIntervalDuration() = %s, want 5s", got)
	}
}

func TestConfig_ShutdownTimeout(t *testing.T) {
	cfg := config.Config{}
	cfg.Database.Name = "agentops"
	cfg.Database.User = "agentops"
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if got := cfg.ShutdownTimeoutDuration().String(); got != "30s" {
		t.Errorf("ShutdownTimeoutDuration() = %s, want 30s", got)
	}
}
