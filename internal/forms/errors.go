package forms

import (
	"errors"
	"net/http"
)

// Domain errors for form editing operations.
var (
	ErrUnknownField = errors.New("unknown field")
	ErrInvalidValue = errors.New("invalid value for field")
)

// MapHTTPStatus maps form errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrUnknownField) || errors.Is(err, ErrInvalidValue) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
