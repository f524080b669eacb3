// Package featureflags provides runtime overrides for the journey scoring policy.
package featureflags

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/legwise/legwise/internal/catalog"
)

// Well-known feature flag keys.
const (
	// FlagSmartTimeWeight overrides the per-minute weight of the smart strategy.
	FlagSmartTimeWeight = "smart_time_weight"

	// FlagDisabledModes is a comma separated list of modes removed from every
	// search regardless of the client's selection.
	FlagDisabledModes = "disabled_modes"
)

// DefaultSmartTimeWeight mirrors the journey package default.
const DefaultSmartTimeWeight = 0.3

// Flag represents a feature flag with its current value.
type Flag struct {
	Key       string      `json:"key"`
	Value     interface{} `json:"value"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// FlagList represents a list of feature flags.
type FlagList struct {
	Items []Flag `json:"items"`
}

// StringValue returns the flag value as a string.
// Returns the default value if the flag is nil or not a string.
func (f *Flag) StringValue(defaultValue string) string {
	if f == nil {
		return defaultValue
	}
	if v, ok := f.Value.(string); ok {
		return v
	}
	return defaultValue
}

// Float64Value returns the flag value as a float64.
// Returns the default value if the flag is nil or not a number.
func (f *Flag) Float64Value(defaultValue float64) float64 {
	if f == nil {
		return defaultValue
	}
	switch v := f.Value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return defaultValue
	}
}

// ModesValue parses the flag value as a comma separated mode list. Unknown
// names are dropped. Walking is never returned.
func (f *Flag) ModesValue() []catalog.Mode {
	raw := f.StringValue("")
	if raw == "" {
		return nil
	}

	var modes []catalog.Mode
	for _, part := range strings.Split(raw, ",") {
		m := catalog.Mode(strings.ToLower(strings.TrimSpace(part)))
		if !m.Valid() || m == catalog.ModeWalk {
			continue
		}
		modes = append(modes, m)
	}
	return modes
}

// DefaultFlags returns the default feature flags for the application.
func DefaultFlags() map[string]*Flag {
	now := time.Now()
	return map[string]*Flag{
		FlagSmartTimeWeight: {
			Key:       FlagSmartTimeWeight,
			Value:     DefaultSmartTimeWeight,
			UpdatedAt: now,
		},
		FlagDisabledModes: {
			Key:       FlagDisabledModes,
			Value:     "",
			UpdatedAt: now,
		},
	}
}

// ParseFlags decodes a JSON object such as {"disabled_modes":"taxi"} into
// flags. An empty string yields no flags.
func ParseFlags(raw string) (map[string]*Flag, error) {
	flags := make(map[string]*Flag)
	if strings.TrimSpace(raw) == "" {
		return flags, nil
	}

	var values map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, fmt.Errorf("parse feature flags: %w", err)
	}

	now := time.Now()
	for k, v := range values {
		flags[k] = &Flag{Key: k, Value: v, UpdatedAt: now}
	}
	return flags, nil
}

// LoadOverrides parses the inline JSON overrides, then the JSON file at path
// if one is given. Keys in the file win.
func LoadOverrides(inline, path string) (map[string]*Flag, error) {
	flags, err := ParseFlags(inline)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return flags, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read feature flags file: %w", err)
	}
	fromFile, err := ParseFlags(string(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for k, v := range fromFile {
		flags[k] = v
	}
	return flags, nil
}
