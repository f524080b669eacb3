package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sort"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/legwise/legwise/internal/api/middleware"
	"github.com/legwise/legwise/internal/api/models"
	"github.com/legwise/legwise/internal/api/response"
	"github.com/legwise/legwise/internal/catalog"
	"github.com/legwise/legwise/internal/featureflags"
	"github.com/legwise/legwise/internal/journey"
	"github.com/legwise/legwise/pkg/polyline"
)

// maxSearchBody caps the search request body.
const maxSearchBody = 64 << 10

// JourneyHandler handles catalog and journey search endpoints.
type JourneyHandler struct {
	planner *journey.Planner
	flags   *featureflags.Service
	logger  zerolog.Logger

	// init is built once; the catalog never changes after startup.
	init models.InitResponse
}

// NewJourneyHandler creates a new JourneyHandler. flags may be nil.
func NewJourneyHandler(planner *journey.Planner, flags *featureflags.Service, logger zerolog.Logger) *JourneyHandler {
	return &JourneyHandler{
		planner: planner,
		flags:   flags,
		logger:  logger,
		init:    newInitResponse(planner.Catalog()),
	}
}

func newInitResponse(c *catalog.Catalog) models.InitResponse {
	path := polyline.Decode(c.OverviewPath)

	resp := models.InitResponse{
		SegmentOptions: models.SegmentOptions{
			FirstMile: c.FirstMile,
			MainLeg:   c.MainLeg,
			LastMile:  c.LastMile,
		},
		DirectDrive: c.Baseline,
		MockPath:    models.LatLonPairs(path),
	}
	if box, ok := polyline.Bounds(path); ok {
		resp.Bounds = &box
	}
	return resp
}

// Init handles GET /api/init and GET /v1/catalog - the segment options,
// the direct drive and the overview path for the map.
func (h *JourneyHandler) Init(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, h.init)
}

// Search handles POST /api/search and POST /v1/journeys:search - the top
// ranked journeys for a tab and mode selection.
func (h *JourneyHandler) Search(w http.ResponseWriter, r *http.Request) {
	input, err := decodeSearch(r.Body)
	if err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	modes, fieldErrors := selectedModes(input.SelectedModes)
	if len(fieldErrors) > 0 {
		response.BadRequest(w, r, "selectedModes contains unknown modes", fieldErrors)
		return
	}

	ctx := r.Context()
	if disabled := h.flags.DisabledModes(ctx); len(disabled) > 0 {
		modes = modes.Without(disabled...)
	}

	query := journey.Query{
		Strategy:   input.TabName(),
		Modes:      modes,
		TimeWeight: h.flags.SmartTimeWeight(ctx),
	}
	if !input.DepartAt.IsZero() {
		query.DepartAt = input.DepartAt.Time()
	}

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("legwise.search.tab", journey.ParseStrategy(query.Strategy, query.TimeWeight).Name()),
		attribute.String("legwise.search.modes", modes.String()),
	)

	results, err := h.planner.Search(ctx, query)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Str("request_id", middleware.GetRequestID(ctx)).
			Msg("journey search aborted")
		response.ServiceUnavailable(w, r, "search was cancelled")
		return
	}

	out := make([]models.SearchResult, 0, len(results))
	for _, res := range results {
		out = append(out, models.NewSearchResult(res))
	}
	response.JSON(w, r, http.StatusOK, out)
}

// decodeSearch reads at most one JSON value from body. An empty body is a
// search with every field defaulted; anything after the value is rejected.
func decodeSearch(body io.Reader) (models.SearchRequest, error) {
	var input models.SearchRequest
	dec := json.NewDecoder(io.LimitReader(body, maxSearchBody))
	if err := dec.Decode(&input); err != nil {
		if errors.Is(err, io.EOF) {
			return models.SearchRequest{}, nil
		}
		return models.SearchRequest{}, err
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return models.SearchRequest{}, errors.New("unexpected data after JSON body")
	}
	return input, nil
}

// selectedModes converts the client's mode map to an allow-list. A nil map
// allows every mode. Keys that are not modes are reported as field errors.
func selectedModes(in map[string]bool) (journey.Modes, []models.FieldError) {
	if in == nil {
		return nil, nil
	}

	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	modes := make(journey.Modes, len(in))
	var errs []models.FieldError
	for _, k := range keys {
		m := catalog.Mode(k)
		if !m.Valid() {
			errs = append(errs, models.FieldError{
				Field:   "selectedModes." + k,
				Message: "unknown mode",
				Code:    models.CodeUnknownMode,
			})
			continue
		}
		modes[m] = in[k]
	}
	return modes, errs
}
