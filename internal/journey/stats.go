package journey

import (
	"fmt"
	"math"

	"github.com/legwise/legwise/internal/catalog"
)

// Emission factors in kg CO2e per distance unit.
const (
	factorTrain = 0.06
	factorBus   = 0.10
	factorCar   = 0.27
)

// EmissionFactor returns the per-distance-unit emission of a mode. Walking,
// cycling and unknown modes contribute nothing.
func EmissionFactor(m catalog.Mode) float64 {
	switch m {
	case catalog.ModeTrain:
		return factorTrain
	case catalog.ModeBus:
		return factorBus
	case catalog.ModeCar, catalog.ModeTaxi:
		return factorCar
	default:
		return 0
	}
}

// LegEmission approximates a leg's emission from its whole distance and its
// primary mode. It does not decompose by segment.
func LegEmission(l *catalog.Leg) float64 {
	return l.DistanceUnits * EmissionFactor(l.PrimaryMode)
}

// BaselineEmission is the emission of driving the baseline distance.
func BaselineEmission(b catalog.Baseline) float64 {
	return b.DistanceUnits * factorCar
}

// Aggregate computes the totals for one combination. Cost is not rounded.
func Aggregate(first, main, last *catalog.Leg, baseline catalog.Baseline, policy Policy) Stats {
	buffer := policy.InterchangeBuffer
	cost := first.CostAmount + main.CostAmount + last.CostAmount
	duration := first.TotalDurationMinutes + buffer + main.TotalDurationMinutes + last.TotalDurationMinutes

	return Stats{
		Cost:      cost,
		Time:      duration,
		Buffer:    buffer,
		Risk:      first.RiskScore + main.RiskScore + last.RiskScore,
		Emissions: emissions(LegEmission(first)+LegEmission(main)+LegEmission(last), BaselineEmission(baseline)),
		VsDriving: Comparison{
			CostDelta: cost - baseline.CostAmount,
			TimeDelta: duration - baseline.TimeMinutes,
		},
	}
}

func emissions(combination, baseline float64) Emissions {
	e := Emissions{
		Combination: combination,
		Baseline:    baseline,
	}

	savings := baseline - combination
	if baseline <= 0 || savings <= 0 {
		return e
	}

	e.Savings = savings
	e.SavingsPercent = int(math.Floor(100*savings/baseline + 0.5))
	e.Text = fmt.Sprintf("Saves %d%% CO₂ vs driving", e.SavingsPercent)
	return e
}

// SegmentEmission is the display-only share of a leg's emission carried by
// one segment.
type SegmentEmission struct {
	Segment       catalog.Segment
	DistanceUnits float64
	Emission      float64
}

// SegmentEmissions splits a leg's distance across its segments in proportion
// to their durations and applies each segment's own mode factor. Scoring
// always uses LegEmission; this breakdown is for display.
func SegmentEmissions(l *catalog.Leg) []SegmentEmission {
	total := l.SegmentDuration()
	out := make([]SegmentEmission, 0, len(l.Segments))
	for _, s := range l.Segments {
		var dist float64
		if total > 0 {
			dist = l.DistanceUnits * float64(s.DurationMinutes) / float64(total)
		}
		out = append(out, SegmentEmission{
			Segment:       s,
			DistanceUnits: dist,
			Emission:      dist * EmissionFactor(s.Mode),
		})
	}
	return out
}
