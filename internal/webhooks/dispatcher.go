// Package webhooks dispatches fire-and-forget trigger calls to the
// externally hosted automation agents. Each trigger is a single POST,
// at most once, with no retry or backoff.
package webhooks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/bremenlabs/agentops/internal/schema"
)

// Resolver resolves an agent's webhook reference to a URL. The second
// result is false when the reference is not configured for this
// deployment.
type Resolver interface {
	URL(ref string) (string, bool)
	Configured() []string
}

// ConnectivityResult reports whether the webhook host is reachable.
type ConnectivityResult struct {
	Connected bool   `json:"connected"`
	Message   string `json:"message"`
}

// Dispatcher issues trigger calls for agents.
type Dispatcher struct {
	client   *http.Client
	resolver Resolver
	logger   *slog.Logger
	now      func() time.Time
}

// New creates a dispatcher. A nil client falls back to
// http.DefaultClient.
func New(client *http.Client, resolver Resolver, logger *slog.Logger) *Dispatcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Dispatcher{
		client:   client,
		resolver: resolver,
		logger:   logger.With("system", "webhooks"),
		now:      time.Now,
	}
}

// Trigger resolves the agent's webhook reference and issues one POST
// with a JSON body. When payload is nil the body is the default trigger
// envelope {"triggered": true, "timestamp": <RFC3339>}. An unresolved
// reference fails immediately with ErrNotConfigured and no network call.
func (d *Dispatcher) Trigger(ctx context.Context, agent schema.Definition, payload map[string]any) error {
	url, ok := d.resolver.URL(agent.WebhookRef)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotConfigured, agent.WebhookRef)
	}

	if payload == nil {
		payload = map[string]any{
			"triggered": true,
			"timestamp": d.now().UTC().Format(time.RFC3339),
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal trigger payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build trigger request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
	}

	d.logger.Info("agent triggered", "agent", agent.ID)
	return nil
}

// Connectivity probes the first configured webhook URL with a HEAD
// request. A 2xx or 405 answer counts as reachable.
func (d *Dispatcher) Connectivity(ctx context.Context) ConnectivityResult {
	urls := d.resolver.Configured()
	if len(urls) == 0 {
		return ConnectivityResult{Connected: false, Message: "no webhooks configured"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, urls[0], nil)
	if err != nil {
		return ConnectivityResult{Connected: false, Message: err.Error()}
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return ConnectivityResult{Connected: false, Message: "cannot reach webhook host"}
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	ok := (resp.StatusCode >= 200 && resp.StatusCode <= 299) || resp.StatusCode == http.StatusMethodNotAllowed
	if !ok {
		return ConnectivityResult{Connected: false, Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}
	return ConnectivityResult{Connected: true, Message: "connected"}
}
