// Package pagination parses result-window parameters from URL queries.
// The API pages by limit only; there is no offset or cursor.
package pagination

import (
	"net/url"
	"strconv"
)

// Limit reads the "limit" query parameter and clamps it to [1, max].
// Missing or malformed values fall back to the given default.
func Limit(values url.Values, fallback, max int) int {
	v := values.Get("limit")
	if v == "" {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	if n > max {
		return max
	}
	return n
}
