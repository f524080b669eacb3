// Package handler provides HTTP handlers for the Legwise API.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/legwise/legwise/internal/api/models"
	"github.com/legwise/legwise/internal/api/response"
	"github.com/legwise/legwise/internal/catalog"
	"github.com/legwise/legwise/internal/featureflags"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	buildTime string
	catalog   *catalog.Catalog
	flags     *featureflags.Service
}

// NewOpsHandler creates a new OpsHandler. cat and flags feed the readiness
// check; either may be nil.
func NewOpsHandler(version, buildTime string, cat *catalog.Catalog, flags *featureflags.Service) *OpsHandler {
	return &OpsHandler{
		version:   version,
		buildTime: buildTime,
		catalog:   cat,
		flags:     flags,
	}
}

// HealthCheck handles GET /v1/ops/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
		Details: map[string]interface{}{
			"version":   h.version,
			"buildTime": h.buildTime,
		},
	}
	response.JSON(w, r, http.StatusOK, health)
}

// ReadinessCheck handles GET /v1/ops/ready - readiness check. The service is
// ready once a valid catalog is loaded. Missing feature flags only degrade it.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	subsystems := []models.SubsystemStatus{
		h.catalogStatus(),
		h.flagsStatus(r.Context()),
	}

	status := models.HealthStatusOK
	for _, s := range subsystems {
		if s.Status == models.HealthStatusFail {
			status = models.HealthStatusFail
			break
		}
		if s.Status == models.HealthStatusDegraded {
			status = models.HealthStatusDegraded
		}
	}

	code := http.StatusOK
	if status == models.HealthStatusFail {
		code = http.StatusServiceUnavailable
	}

	response.JSON(w, r, code, models.Readiness{
		Status:     status,
		Time:       models.Timestamp(time.Now()),
		Subsystems: subsystems,
	})
}

func (h *OpsHandler) catalogStatus() models.SubsystemStatus {
	s := models.SubsystemStatus{Name: "catalog", Status: models.HealthStatusOK}
	if h.catalog == nil {
		s.Status = models.HealthStatusFail
		s.Detail = strPtr("catalog not loaded")
		return s
	}
	if err := h.catalog.Validate(); err != nil {
		s.Status = models.HealthStatusFail
		s.Detail = strPtr(err.Error())
	}
	return s
}

func (h *OpsHandler) flagsStatus(ctx context.Context) models.SubsystemStatus {
	s := models.SubsystemStatus{Name: "feature-flags", Status: models.HealthStatusOK}
	if h.flags == nil {
		s.Status = models.HealthStatusDegraded
		s.Detail = strPtr("using built-in defaults")
		return s
	}
	if len(h.flags.GetAllFlags(ctx)) == 0 {
		s.Status = models.HealthStatusDegraded
		s.Detail = strPtr("no flags configured")
	}
	return s
}

func strPtr(s string) *string {
	return &s
}
