package journey

import (
	"fmt"
	"time"

	"github.com/legwise/legwise/internal/catalog"
)

// StepKind distinguishes travel from waiting in an itinerary.
type StepKind string

const (
	StepTravel      StepKind = "travel"
	StepInterchange StepKind = "interchange"
)

// Step is one timed entry of an itinerary.
type Step struct {
	Kind            StepKind     `json:"kind"`
	Mode            catalog.Mode `json:"mode,omitempty"`
	Label           string       `json:"label"`
	DestinationName string       `json:"to,omitempty"`
	DurationMinutes int          `json:"time"`
	Start           time.Time    `json:"start"`
	End             time.Time    `json:"end"`
}

// TimeRange renders the step as "15:04 - 15:18".
func (s Step) TimeRange() string {
	return FormatTimeRange(s.Start, s.DurationMinutes)
}

// Itinerary is a clock-time timeline of a combination.
type Itinerary struct {
	DepartAt time.Time `json:"departAt"`
	ArriveAt time.Time `json:"arriveAt"`
	Steps    []Step    `json:"steps"`
}

// BuildItinerary lays the combination's segments out from departAt. The
// interchange buffer sits between the first mile and the main leg. The
// arrival time is departAt plus the combination's total time.
func BuildItinerary(c Combination, departAt time.Time) Itinerary {
	it := Itinerary{DepartAt: departAt}
	at := departAt

	add := func(s Step) {
		s.Start = at
		s.End = at.Add(time.Duration(s.DurationMinutes) * time.Minute)
		at = s.End
		it.Steps = append(it.Steps, s)
	}
	addLeg := func(l *catalog.Leg) {
		for _, seg := range l.Segments {
			add(Step{
				Kind:            StepTravel,
				Mode:            seg.Mode,
				Label:           seg.Label,
				DestinationName: seg.DestinationName,
				DurationMinutes: seg.DurationMinutes,
			})
		}
	}

	addLeg(c.FirstMile)
	if c.Buffer > 0 {
		add(Step{
			Kind:            StepInterchange,
			Label:           "Interchange",
			DurationMinutes: c.Buffer,
		})
	}
	addLeg(c.MainLeg)
	addLeg(c.LastMile)

	it.ArriveAt = at
	return it
}

// FormatDuration renders minutes as "14 min" below an hour and "1hr 50"
// from an hour up.
func FormatDuration(minutes int) string {
	h, m := minutes/60, minutes%60
	if h == 0 {
		return fmt.Sprintf("%d min", m)
	}
	return fmt.Sprintf("%dhr %d", h, m)
}

// FormatTimeRange renders a start clock time and the end after duration
// minutes, as "15:04 - 15:18".
func FormatTimeRange(start time.Time, durationMinutes int) string {
	end := start.Add(time.Duration(durationMinutes) * time.Minute)
	return start.Format("15:04") + " - " + end.Format("15:04")
}
