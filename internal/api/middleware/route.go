package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// routePattern returns the chi route pattern matched for r, such as
// "/v1/journeys:search", or the raw path when no route matched. Call it
// after the request has been routed.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}
