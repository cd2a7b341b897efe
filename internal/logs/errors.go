package logs

import (
	"errors"
	"net/http"
)

// Domain errors for log operations.
var (
	ErrNotFound  = errors.New("log entry not found")
	ErrDuplicate = errors.New("log entry already exists")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
