package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/httprate"

	"github.com/legwise/legwise/internal/api/models"
)

// RateLimitConfig holds configuration for rate limiting.
type RateLimitConfig struct {
	// Requests per window
	RequestLimit int
	// Window duration
	WindowLength time.Duration
}

// Default rate limit configurations.
var (
	// SearchRateLimit applies to journey search endpoints (60 req/min).
	SearchRateLimit = RateLimitConfig{
		RequestLimit: 60,
		WindowLength: time.Minute,
	}

	// StandardRateLimit applies to catalog and metadata endpoints (100 req/min).
	StandardRateLimit = RateLimitConfig{
		RequestLimit: 100,
		WindowLength: time.Minute,
	}
)

// RateLimitByIP creates a rate limiter middleware using client IP address.
// Uses X-Forwarded-For header if present (extracted by chi's RealIP middleware).
func RateLimitByIP(cfg RateLimitConfig) func(http.Handler) http.Handler {
	retryAfter := int(cfg.WindowLength.Seconds())
	if retryAfter < 1 {
		retryAfter = 1
	}

	return httprate.Limit(
		cfg.RequestLimit,
		cfg.WindowLength,
		httprate.WithKeyFuncs(httprate.KeyByRealIP),
		httprate.WithLimitHandler(rateLimitExceededHandler(retryAfter)),
	)
}

// rateLimitExceededHandler writes an RFC7807 Problem response when rate limit is exceeded.
// httprate does not expose the reset time, so Retry-After is the window length.
func rateLimitExceededHandler(retryAfter int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		traceID := GetRequestID(r.Context())

		problem := models.NewTooManyRequests(traceID, "Rate limit exceeded. Please try again later.")
		problem.Instance = r.URL.Path

		w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
		problem.Write(w)
	}
}
