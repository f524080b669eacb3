// Package journey enumerates, scores, filters and ranks first mile / main leg /
// last mile combinations over a read-only catalog.
package journey

import (
	"github.com/legwise/legwise/internal/catalog"
)

// Policy constants. These are tunable product choices, not physical laws.
const (
	// DefaultInterchangeBuffer is the dwell time at the interchange station,
	// applied once per combination whatever legs are chosen.
	DefaultInterchangeBuffer = 10

	// DefaultSmartTimeWeight converts one minute of travel into currency
	// units for the smart strategy.
	DefaultSmartTimeWeight = 0.3

	// DefaultResultLimit is how many ranked combinations a search returns.
	DefaultResultLimit = 3
)

// Policy holds the scoring knobs applied to every combination.
type Policy struct {
	InterchangeBuffer int
	SmartTimeWeight   float64
	ResultLimit       int
}

// DefaultPolicy returns the production scoring policy.
func DefaultPolicy() Policy {
	return Policy{
		InterchangeBuffer: DefaultInterchangeBuffer,
		SmartTimeWeight:   DefaultSmartTimeWeight,
		ResultLimit:       DefaultResultLimit,
	}
}

// Pair is a first-mile and last-mile choice around the fixed main leg.
type Pair struct {
	FirstMile *catalog.Leg
	MainLeg   *catalog.Leg
	LastMile  *catalog.Leg
}

// CompositeID is the deterministic id of the two variable legs.
func (p Pair) CompositeID() string {
	return p.FirstMile.ID + "-" + p.LastMile.ID
}

// Segments flattens the pair into its ordered segments: first mile, main
// leg, last mile.
func (p Pair) Segments() []catalog.Segment {
	out := make([]catalog.Segment, 0, len(p.FirstMile.Segments)+len(p.MainLeg.Segments)+len(p.LastMile.Segments))
	out = append(out, p.FirstMile.Segments...)
	out = append(out, p.MainLeg.Segments...)
	out = append(out, p.LastMile.Segments...)
	return out
}

// Emissions summarises CO2 against the direct-drive baseline, in kg.
type Emissions struct {
	// Combination is the estimated emission of the journey.
	Combination float64
	// Baseline is the estimated emission of driving door to door.
	Baseline float64
	// Savings and SavingsPercent are zero unless the journey beats the baseline.
	Savings        float64
	SavingsPercent int
	// Text is empty unless there is a saving to claim.
	Text string
}

// Claimed reports whether the journey emits less than driving.
func (e Emissions) Claimed() bool {
	return e.Text != ""
}

// Comparison is the journey measured against the direct drive.
type Comparison struct {
	CostDelta float64
	TimeDelta int
}

// Stats are the aggregate figures for one combination.
type Stats struct {
	Cost      float64
	Time      int
	Buffer    int
	Risk      int
	Emissions Emissions
	VsDriving Comparison
}

// Combination is a scored pair.
type Combination struct {
	Pair
	ID string
	Stats
}
