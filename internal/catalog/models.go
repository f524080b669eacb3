// Package catalog holds the static table of journey legs scored by the planner.
package catalog

import "errors"

// ErrLegNotFound is returned when a leg lookup misses.
var ErrLegNotFound = errors.New("leg not found")

// Mode is the transport mode of a single segment.
type Mode string

const (
	ModeWalk  Mode = "walk"
	ModeBus   Mode = "bus"
	ModeTrain Mode = "train"
	ModeTaxi  Mode = "taxi"
	ModeCar   Mode = "car"
	ModeBike  Mode = "bike"
)

// Modes lists every known mode in display order.
func Modes() []Mode {
	return []Mode{ModeTrain, ModeBus, ModeCar, ModeBike, ModeTaxi, ModeWalk}
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeWalk, ModeBus, ModeTrain, ModeTaxi, ModeCar, ModeBike:
		return true
	}
	return false
}

// Group identifies which part of the journey a leg belongs to.
type Group string

const (
	GroupFirstMile Group = "firstMile"
	GroupMainLeg   Group = "mainLeg"
	GroupLastMile  Group = "lastMile"
)

// Icon identifiers used by the client. Presentation only.
const (
	IconTrain      = "train"
	IconCar        = "car"
	IconBus        = "bus"
	IconBike       = "bike"
	IconFootprints = "footprints"
)

// Segment is one atomic, single-mode movement.
type Segment struct {
	Mode            Mode   `json:"mode"`
	Label           string `json:"label"`
	DurationMinutes int    `json:"time"`
	DestinationName string `json:"to"`

	// Presentation only; never read by the scoring code.
	LineColor string `json:"lineColor,omitempty"`
	IconID    string `json:"iconId,omitempty"`
	// Polyline is an optional encoded display path (precision 5).
	Polyline string `json:"polyline,omitempty"`
}

// Display carries the presentation attributes of a leg.
type Display struct {
	Label                string `json:"label"`
	Detail               string `json:"detail,omitempty"`
	Description          string `json:"desc,omitempty"`
	IconID               string `json:"iconId,omitempty"`
	Color                string `json:"color,omitempty"`
	BgColor              string `json:"bgColor,omitempty"`
	LineColor            string `json:"lineColor,omitempty"`
	Recommended          bool   `json:"recommended,omitempty"`
	WaitMinutes          *int   `json:"waitTime,omitempty"`
	NextDepartureMinutes *int   `json:"nextBusIn,omitempty"`
	Platform             *int   `json:"platform,omitempty"`
}

// Leg is one selectable (or fixed) alternative between two fixed points.
type Leg struct {
	ID                   string    `json:"id"`
	CostAmount           float64   `json:"cost"`
	TotalDurationMinutes int       `json:"time"`
	DistanceUnits        float64   `json:"distance"`
	RiskScore            int       `json:"riskScore"`
	PrimaryMode          Mode      `json:"primaryMode"`
	Segments             []Segment `json:"segments"`

	Display Display `json:"display"`
}

// SegmentDuration returns the sum of the leg's segment durations.
func (l *Leg) SegmentDuration() int {
	total := 0
	for _, s := range l.Segments {
		total += s.DurationMinutes
	}
	return total
}

// Baseline is the direct door-to-door drive used for comparisons.
type Baseline struct {
	TimeMinutes   int     `json:"time"`
	CostAmount    float64 `json:"cost"`
	DistanceUnits float64 `json:"distance"`
}

// Catalog is the full, read-only set of journey options.
type Catalog struct {
	FirstMile []Leg    `json:"firstMile"`
	MainLeg   Leg      `json:"mainLeg"`
	LastMile  []Leg    `json:"lastMile"`
	Baseline  Baseline `json:"directDrive"`

	// OverviewPath is an encoded polyline of the whole trip for the client map.
	OverviewPath string `json:"overviewPath,omitempty"`
}

// Leg returns the leg with the given id from a group.
func (c *Catalog) Leg(group Group, id string) (*Leg, error) {
	switch group {
	case GroupMainLeg:
		if c.MainLeg.ID == id {
			return &c.MainLeg, nil
		}
	case GroupFirstMile:
		return findLeg(c.FirstMile, id)
	case GroupLastMile:
		return findLeg(c.LastMile, id)
	}
	return nil, ErrLegNotFound
}

func findLeg(legs []Leg, id string) (*Leg, error) {
	for i := range legs {
		if legs[i].ID == id {
			return &legs[i], nil
		}
	}
	return nil, ErrLegNotFound
}
