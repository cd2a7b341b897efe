package configs

import (
	"errors"
	"net/http"
)

// Domain errors for configuration operations.
var (
	ErrNotFound       = errors.New("config not found")
	ErrDuplicate      = errors.New("config key already exists")
	ErrUnknownSection = errors.New("unknown config section")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrUnknownSection) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
