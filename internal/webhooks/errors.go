package webhooks

import (
	"errors"
	"net/http"
)

// Domain errors for webhook dispatch.
var (
	// ErrNotConfigured means the agent's webhook reference resolves to
	// no URL; dispatch fails fast without a network attempt.
	ErrNotConfigured = errors.New("webhook not configured")
	// ErrUnreachable means the network call itself failed.
	ErrUnreachable = errors.New("webhook unreachable")
	// ErrRejected means the endpoint answered with a non-2xx status.
	ErrRejected = errors.New("webhook rejected")
)

// MapHTTPStatus maps dispatch errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotConfigured) {
		return http.StatusServiceUnavailable
	}
	if errors.Is(err, ErrUnreachable) || errors.Is(err, ErrRejected) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
