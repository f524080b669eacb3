package handler

import (
	"net/http"

	"github.com/legwise/legwise/internal/api/models"
	"github.com/legwise/legwise/internal/api/response"
	"github.com/legwise/legwise/internal/featureflags"
)

// FeatureFlagsHandler handles feature flag endpoints.
type FeatureFlagsHandler struct {
	service *featureflags.Service
}

// NewFeatureFlagsHandler creates a new FeatureFlagsHandler.
func NewFeatureFlagsHandler(service *featureflags.Service) *FeatureFlagsHandler {
	return &FeatureFlagsHandler{service: service}
}

// ListFeatureFlags handles GET /v1/metadata/feature-flags - the flags that
// currently shape search results.
func (h *FeatureFlagsHandler) ListFeatureFlags(w http.ResponseWriter, r *http.Request) {
	var flags models.FeatureFlags
	if h.service != nil {
		flags = h.service.ListFlags(r.Context())
	}
	if flags.Items == nil {
		flags.Items = []featureflags.Flag{}
	}
	response.JSON(w, r, http.StatusOK, flags)
}
