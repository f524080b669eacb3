package models

import (
	"encoding/json"

	"github.com/legwise/legwise/internal/catalog"
	"github.com/legwise/legwise/internal/journey"
	"github.com/legwise/legwise/pkg/polyline"
)

// SearchRequest is the body of a journey search. Every field is optional.
type SearchRequest struct {
	// Tab is the ranking strategy: smart, fastest or cheapest. It is kept
	// raw so that a value of any JSON type falls back to smart.
	Tab json.RawMessage `json:"tab"`

	// SelectedModes is the mode allow-list. Missing means every mode.
	SelectedModes map[string]bool `json:"selectedModes"`

	// DepartAt requests an itinerary starting at this time.
	DepartAt *Timestamp `json:"departAt,omitempty"`
}

// TabName returns the tab as a string, or "" when it is missing or not a
// JSON string.
func (r SearchRequest) TabName() string {
	var name string
	if err := json.Unmarshal(r.Tab, &name); err != nil {
		return ""
	}
	return name
}

// SegmentOptions is the catalog grouped the way the client renders it.
type SegmentOptions struct {
	FirstMile []catalog.Leg `json:"firstMile"`
	MainLeg   catalog.Leg   `json:"mainLeg"`
	LastMile  []catalog.Leg `json:"lastMile"`
}

// InitResponse is everything the client needs before the first search.
type InitResponse struct {
	SegmentOptions SegmentOptions   `json:"segmentOptions"`
	DirectDrive    catalog.Baseline `json:"directDrive"`
	MockPath       [][2]float64     `json:"mockPath"`
	Bounds         *polyline.Box    `json:"bounds,omitempty"`
}

// LatLonPairs flattens coordinates to the [lat, lon] pairs the map widget
// expects. It never returns nil.
func LatLonPairs(coords []polyline.Coordinate) [][2]float64 {
	path := make([][2]float64, 0, len(coords))
	for _, c := range coords {
		path = append(path, [2]float64{c.Lat, c.Lon})
	}
	return path
}

// Emissions is the CO2 comparison of one result. Text is null when the
// journey does not beat driving.
type Emissions struct {
	Val     float64 `json:"val"`
	Percent int     `json:"percent"`
	Text    *string `json:"text"`
}

// VsDriving is a result measured against the direct drive.
type VsDriving struct {
	CostDelta float64 `json:"cost"`
	TimeDelta int     `json:"time"`
}

// SearchResult is one ranked journey.
type SearchResult struct {
	ID           string             `json:"id"`
	Leg1         catalog.Leg        `json:"leg1"`
	Leg3         catalog.Leg        `json:"leg3"`
	Cost         float64            `json:"cost"`
	Time         int                `json:"time"`
	Buffer       int                `json:"buffer"`
	Risk         int                `json:"risk"`
	Emissions    Emissions          `json:"emissions"`
	DurationText string             `json:"durationText"`
	VsDriving    VsDriving          `json:"vsDriving"`
	Path         [][2]float64       `json:"path,omitempty"`
	Itinerary    *journey.Itinerary `json:"itinerary,omitempty"`
}

// NewSearchResult converts a planner result to its wire form.
func NewSearchResult(r journey.Result) SearchResult {
	e := Emissions{
		Val:     r.Emissions.Savings,
		Percent: r.Emissions.SavingsPercent,
	}
	if r.Emissions.Claimed() {
		text := r.Emissions.Text
		e.Text = &text
	}

	return SearchResult{
		ID:           r.ID,
		Leg1:         *r.FirstMile,
		Leg3:         *r.LastMile,
		Cost:         r.Cost,
		Time:         r.Time,
		Buffer:       r.Buffer,
		Risk:         r.Risk,
		Emissions:    e,
		DurationText: r.DurationText,
		VsDriving: VsDriving{
			CostDelta: r.VsDriving.CostDelta,
			TimeDelta: r.VsDriving.TimeDelta,
		},
		Path:      LatLonPairs(polyline.Join(segmentPaths(r.Segments())...)),
		Itinerary: r.Itinerary,
	}
}

// segmentPaths returns the encoded display path of every segment that has one.
func segmentPaths(segments []catalog.Segment) []string {
	paths := make([]string, 0, len(segments))
	for _, s := range segments {
		if s.Polyline != "" {
			paths = append(paths, s.Polyline)
		}
	}
	return paths
}
