package models

import "github.com/legwise/legwise/internal/featureflags"

// Enums represents the enum values used by the API.
type Enums struct {
	Modes      []string `json:"modes"`
	Strategies []string `json:"strategies"`
	Groups     []string `json:"groups"`
}

// FeatureFlags is the public view of the active feature flags.
type FeatureFlags = featureflags.FlagList
