// Package middleware provides HTTP middleware shared across the service
// endpoints.
package middleware

import (
	"net/http"
	"slices"
	"strings"
)

// CORSPolicy describes the cross-origin policy applied to every
// response. An empty Origins list disables the allow-origin header.
type CORSPolicy struct {
	Origins     []string
	Methods     []string
	Headers     []string
	Credentials bool
}

// CORS returns middleware applying the given cross-origin policy.
// Preflight OPTIONS requests are answered directly.
func CORS(policy CORSPolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(policy.Origins) > 0 {
				origin := r.Header.Get("Origin")
				if slices.Contains(policy.Origins, origin) {
					w.Header().Set("Access-Control-Allow-Origin", origin)
				}
			}

			if len(policy.Methods) > 0 {
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(policy.Methods, ", "))
			}

			if len(policy.Headers) > 0 {
				w.Header().Set("Access-Control-Allow-Headers", strings.Join(policy.Headers, ", "))
			}

			if policy.Credentials {
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// LimitBody returns middleware capping the request body size for
// mutating methods.
func LimitBody(max int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost || r.Method == http.MethodPut {
				r.Body = http.MaxBytesReader(w, r.Body, max)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// TrimSlash returns middleware that redirects requests with trailing
// slashes to their canonical form without the slash. The root path "/"
// is preserved.
func TrimSlash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.URL.Path) > 1 && strings.HasSuffix(r.URL.Path, "/") {
				target := strings.TrimSuffix(r.URL.Path, "/")
				if r.URL.RawQuery != "" {
					target += "?" + r.URL.RawQuery
				}
				http.Redirect(w, r, target, http.StatusMovedPermanently)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
