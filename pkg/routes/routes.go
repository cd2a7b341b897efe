// Package routes provides declarative route registration over the
// standard library mux, grouping related endpoints under a common prefix.
package routes

import (
	"fmt"
	"net/http"
)

// Route binds an HTTP method and path pattern to a handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// Group is a collection of routes mounted under a shared URL prefix.
type Group struct {
	Prefix      string
	Description string
	Routes      []Route
}

// Router accumulates route registrations and builds the final handler.
type Router struct {
	mux *http.ServeMux
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{mux: http.NewServeMux()}
}

// RegisterRoute registers a single route at the mux root.
func (r *Router) RegisterRoute(rt Route) {
	r.mux.HandleFunc(fmt.Sprintf("%s %s", rt.Method, rt.Pattern), rt.Handler)
}

// RegisterGroup registers every route in the group under its prefix.
func (r *Router) RegisterGroup(g Group) {
	for _, rt := range g.Routes {
		r.mux.HandleFunc(fmt.Sprintf("%s %s%s", rt.Method, g.Prefix, rt.Pattern), rt.Handler)
	}
}

// Build returns the composed http.Handler.
func (r *Router) Build() http.Handler {
	return r.mux
}
