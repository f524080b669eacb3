package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legwise/legwise/internal/api/middleware"
	"github.com/legwise/legwise/internal/api/models"
)

func TestRecovery_WritesProblemAndLogsRoute(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(log))
	r.Post("/v1/journeys:search", func(http.ResponseWriter, *http.Request) {
		panic("ranking exploded")
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/journeys:search", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var problem models.Problem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
	assert.Equal(t, "/v1/journeys:search", problem.Instance)
	assert.Equal(t, w.Header().Get(middleware.HeaderRequestID), problem.TraceID)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "panic recovered", entry["message"])
	assert.Equal(t, "ranking exploded", entry["error"])
	assert.Equal(t, "/v1/journeys:search", entry["route"])
	assert.Equal(t, "POST", entry["method"])
	assert.NotEmpty(t, entry["stack"])
}

func TestRecovery_KeepsErrorValue(t *testing.T) {
	var buf bytes.Buffer
	handler := middleware.Recovery(zerolog.New(&buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(errors.New("catalog missing"))
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/init", http.NoBody))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "catalog missing", entry["error"])
	assert.Equal(t, "/api/init", entry["route"])
}

func TestRecovery_ReraisesAbortHandler(t *testing.T) {
	handler := middleware.Recovery(zerolog.Nop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/init", http.NoBody))
	})
}

func TestRecovery_PassesThrough(t *testing.T) {
	handler := middleware.Recovery(zerolog.Nop())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ops/health", http.NoBody))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
