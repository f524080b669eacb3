package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/legwise/legwise/internal/api/models"
)

// Recovery turns a handler panic into a 500 problem, logs it with the matched
// route and marks the request span as failed. http.ErrAbortHandler is
// re-raised so net/http can drop the connection quietly.
func Recovery(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				err, ok := rec.(error)
				if !ok {
					err = fmt.Errorf("%v", rec)
				}
				requestID := GetRequestID(r.Context())

				log.Error().
					Err(err).
					Str("request_id", requestID).
					Str("method", r.Method).
					Str("route", routePattern(r)).
					Str("stack", string(debug.Stack())).
					Msg("panic recovered")

				span := trace.SpanFromContext(r.Context())
				span.RecordError(err)
				span.SetStatus(codes.Error, "panic")

				problem := models.NewInternalError(requestID, "an unexpected error occurred")
				problem.Instance = r.URL.Path
				problem.Write(w)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
