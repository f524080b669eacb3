package catalog

import (
	"fmt"
	"strings"
)

// Violation describes one broken catalog invariant.
type Violation struct {
	Field   string
	Message string
}

// ValidationError collects every invariant violation found in a catalog.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return "invalid catalog: " + strings.Join(parts, "; ")
}

// Validate checks the catalog invariants. The scoring code assumes a catalog
// that passed validation and does not re-check at call sites.
func (c *Catalog) Validate() error {
	var violations []Violation
	add := func(field, format string, args ...any) {
		violations = append(violations, Violation{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	checkGroup := func(group Group, legs []Leg) {
		if len(legs) == 0 {
			add(string(group), "must contain at least one leg")
			return
		}
		seen := make(map[string]bool, len(legs))
		for i := range legs {
			field := fmt.Sprintf("%s[%d]", group, i)
			if seen[legs[i].ID] {
				add(field+".id", "duplicate id %q", legs[i].ID)
			}
			seen[legs[i].ID] = true
			validateLeg(field, &legs[i], add)
		}
	}

	checkGroup(GroupFirstMile, c.FirstMile)
	validateLeg(string(GroupMainLeg), &c.MainLeg, add)
	checkGroup(GroupLastMile, c.LastMile)

	if c.Baseline.DistanceUnits <= 0 {
		add("directDrive.distance", "must be positive")
	}
	if c.Baseline.CostAmount < 0 {
		add("directDrive.cost", "must not be negative")
	}
	if c.Baseline.TimeMinutes < 0 {
		add("directDrive.time", "must not be negative")
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

func validateLeg(field string, l *Leg, add func(field, format string, args ...any)) {
	if l.ID == "" {
		add(field+".id", "is required")
	}
	if l.CostAmount < 0 {
		add(field+".cost", "must not be negative")
	}
	if l.RiskScore < 0 {
		add(field+".riskScore", "must not be negative")
	}
	if l.DistanceUnits < 0 {
		add(field+".distance", "must not be negative")
	}
	if !l.PrimaryMode.Valid() {
		add(field+".primaryMode", "unknown mode %q", l.PrimaryMode)
	}
	if len(l.Segments) == 0 {
		add(field+".segments", "must not be empty")
		return
	}
	for i, s := range l.Segments {
		sf := fmt.Sprintf("%s.segments[%d]", field, i)
		if !s.Mode.Valid() {
			add(sf+".mode", "unknown mode %q", s.Mode)
		}
		if s.DurationMinutes <= 0 {
			add(sf+".time", "must be positive")
		}
	}
	if sum := l.SegmentDuration(); sum != l.TotalDurationMinutes {
		add(field+".time", "is %d but segments sum to %d", l.TotalDurationMinutes, sum)
	}
}
