// Package config loads the API server configuration from the environment.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the API server configuration.
type Config struct {
	Port        string
	Environment string

	// CatalogFile is a JSON catalog. Empty means the built-in catalog.
	CatalogFile string

	// FeatureFlags is a JSON object of flag overrides. FeatureFlagsFile, when
	// set, holds the same kind of object and wins key by key. The file is
	// re-read on SIGHUP.
	FeatureFlags     string
	FeatureFlagsFile string
	FlagCacheTTL     time.Duration

	OTelEnabled     bool
	OTLPEndpoint    string
	OTelSampleRatio float64

	RequireTLS         bool
	CORSAllowedOrigins []string

	ShutdownTimeout time.Duration
}

// Config keys and the environment variables they are bound to.
const (
	keyPort             = "port"
	keyEnvironment      = "environment"
	keyCatalogFile      = "catalog_file"
	keyFeatureFlags     = "feature_flags"
	keyFeatureFlagsFile = "feature_flags_file"
	keyFlagCacheTTL     = "feature_flags_cache_ttl"
	keyOTelEnabled      = "otel_enabled"
	keyOTLPEndpoint     = "otel_endpoint"
	keyOTelSampleRatio  = "otel_sample_ratio"
	keyRequireTLS       = "require_tls"
	keyCORSOrigins      = "cors_allowed_origins"
	keyShutdownTimeout  = "shutdown_timeout"
)

var envBindings = map[string]string{
	keyPort:             "APP_PORT",
	keyEnvironment:      "APP_ENV",
	keyCatalogFile:      "CATALOG_FILE",
	keyFeatureFlags:     "FEATURE_FLAGS",
	keyFeatureFlagsFile: "FEATURE_FLAGS_FILE",
	keyFlagCacheTTL:     "FEATURE_FLAGS_CACHE_TTL",
	keyOTelEnabled:      "OTEL_ENABLED",
	keyOTLPEndpoint:     "OTEL_EXPORTER_OTLP_ENDPOINT",
	keyOTelSampleRatio:  "OTEL_SAMPLE_RATIO",
	keyRequireTLS:       "REQUIRE_TLS",
	keyCORSOrigins:      "CORS_ALLOWED_ORIGINS",
	keyShutdownTimeout:  "SHUTDOWN_TIMEOUT",
}

// newViper returns a viper instance bound to the server's environment
// variables, with defaults. Empty variables count as unset.
func newViper() *viper.Viper {
	v := viper.New()
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	v.SetDefault(keyPort, "3000")
	v.SetDefault(keyEnvironment, "development")
	v.SetDefault(keyFlagCacheTTL, "1m")
	v.SetDefault(keyOTelEnabled, false)
	v.SetDefault(keyOTLPEndpoint, "localhost:4317")
	v.SetDefault(keyOTelSampleRatio, "1")
	v.SetDefault(keyRequireTLS, false)
	v.SetDefault(keyShutdownTimeout, "30s")
	return v
}

// FromEnv creates a Config from environment variables.
func FromEnv() (Config, error) {
	v := newViper()

	ttl, err := duration(v, keyFlagCacheTTL)
	if err != nil {
		return Config{}, err
	}
	shutdown, err := duration(v, keyShutdownTimeout)
	if err != nil {
		return Config{}, err
	}
	ratio, err := strconv.ParseFloat(v.GetString(keyOTelSampleRatio), 64)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", envBindings[keyOTelSampleRatio], err)
	}

	return Config{
		Port:               v.GetString(keyPort),
		Environment:        v.GetString(keyEnvironment),
		CatalogFile:        v.GetString(keyCatalogFile),
		FeatureFlags:       v.GetString(keyFeatureFlags),
		FeatureFlagsFile:   v.GetString(keyFeatureFlagsFile),
		FlagCacheTTL:       ttl,
		OTelEnabled:        v.GetBool(keyOTelEnabled),
		OTLPEndpoint:       v.GetString(keyOTLPEndpoint),
		OTelSampleRatio:    ratio,
		RequireTLS:         v.GetBool(keyRequireTLS),
		CORSAllowedOrigins: splitList(v.GetString(keyCORSOrigins)),
		ShutdownTimeout:    shutdown,
	}, nil
}

// IsProduction reports whether the server runs in production.
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// duration parses the key strictly; viper's own getter maps garbage to zero.
func duration(v *viper.Viper, key string) (time.Duration, error) {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", envBindings[key], err)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
