package handler

import (
	"net/http"

	"github.com/legwise/legwise/internal/api/models"
	"github.com/legwise/legwise/internal/api/response"
	"github.com/legwise/legwise/internal/catalog"
	"github.com/legwise/legwise/internal/journey"
)

// MetadataHandler handles metadata endpoints.
type MetadataHandler struct{}

// NewMetadataHandler creates a new MetadataHandler.
func NewMetadataHandler() *MetadataHandler {
	return &MetadataHandler{}
}

// GetEnums handles GET /v1/metadata/enums - get enum values used by the API.
func (h *MetadataHandler) GetEnums(w http.ResponseWriter, r *http.Request) {
	modes := catalog.Modes()
	enums := models.Enums{
		Modes:      make([]string, 0, len(modes)),
		Strategies: journey.StrategyNames(),
		Groups: []string{
			string(catalog.GroupFirstMile),
			string(catalog.GroupMainLeg),
			string(catalog.GroupLastMile),
		},
	}
	for _, m := range modes {
		enums.Modes = append(enums.Modes, string(m))
	}
	response.JSON(w, r, http.StatusOK, enums)
}
