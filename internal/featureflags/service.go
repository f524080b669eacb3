package featureflags

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/legwise/legwise/internal/catalog"
)

// ServiceConfig holds configuration for the feature flag service.
type ServiceConfig struct {
	Repository   Repository
	Logger       zerolog.Logger
	CacheTTL     time.Duration // How long to cache flags in memory
	DefaultFlags map[string]*Flag
}

// Service provides feature flag evaluation with caching and fallback.
type Service struct {
	repo         Repository
	logger       zerolog.Logger
	cacheTTL     time.Duration
	defaultFlags map[string]*Flag

	mu          sync.RWMutex
	cache       map[string]*Flag
	cacheExpiry time.Time
}

// NewService creates a new feature flag service.
func NewService(cfg ServiceConfig) *Service {
	cacheTTL := cfg.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 1 * time.Minute // Default cache TTL
	}

	defaultFlags := cfg.DefaultFlags
	if defaultFlags == nil {
		defaultFlags = DefaultFlags()
	}

	return &Service{
		repo:         cfg.Repository,
		logger:       cfg.Logger,
		cacheTTL:     cacheTTL,
		defaultFlags: defaultFlags,
		cache:        make(map[string]*Flag),
	}
}

// GetFlag retrieves a feature flag by key.
// Uses cached value if available and not expired, with fallback to defaults.
func (s *Service) GetFlag(ctx context.Context, key string) *Flag {
	// Try cache first
	if flag := s.getCached(key); flag != nil {
		return flag
	}

	// Try repository
	flag, err := s.repo.GetFlag(ctx, key)
	if err == nil {
		s.setCached(key, flag)
		return flag
	}

	// Log error if not just "not found"
	if !errors.Is(err, ErrFlagNotFound) {
		s.logger.Warn().Err(err).Str("flag", key).Msg("failed to get feature flag from repository")
	}

	// Fallback to default
	if defaultFlag, ok := s.defaultFlags[key]; ok {
		return defaultFlag
	}

	return nil
}

// GetAllFlags retrieves all feature flags.
// Returns cached values merged with defaults.
func (s *Service) GetAllFlags(ctx context.Context) map[string]*Flag {
	// Start with defaults
	result := make(map[string]*Flag, len(s.defaultFlags))
	for k, v := range s.defaultFlags {
		result[k] = v
	}

	// Try to get from repository
	flags, err := s.repo.GetAllFlags(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to get feature flags from repository, using defaults")
		return result
	}

	// Merge repository flags over defaults
	for k, v := range flags {
		result[k] = v
	}

	// Update cache
	s.mu.Lock()
	s.cache = flags
	s.cacheExpiry = time.Now().Add(s.cacheTTL)
	s.mu.Unlock()

	return result
}

// SetFlags writes flags to the repository and drops the cache so the next
// read sees them.
func (s *Service) SetFlags(ctx context.Context, flags []*Flag) error {
	now := time.Now()
	for _, flag := range flags {
		flag.UpdatedAt = now
	}

	if err := s.repo.SetFlags(ctx, flags); err != nil {
		return fmt.Errorf("set flags: %w", err)
	}

	s.InvalidateCache()
	return nil
}

// ApplyOverrides resets every default flag and then writes overrides on
// top. A key dropped from the overrides returns to its default.
func (s *Service) ApplyOverrides(ctx context.Context, overrides map[string]*Flag) error {
	merged := make(map[string]*Flag, len(s.defaultFlags)+len(overrides))
	for k, v := range s.defaultFlags {
		merged[k] = &Flag{Key: k, Value: v.Value}
	}
	for k, v := range overrides {
		merged[k] = &Flag{Key: k, Value: v.Value}
	}

	flags := make([]*Flag, 0, len(merged))
	for _, k := range sortedKeys(merged) {
		flags = append(flags, merged[k])
	}

	if err := s.SetFlags(ctx, flags); err != nil {
		return err
	}
	s.logger.Info().Strs("overrides", sortedKeys(overrides)).Msg("feature flags applied")
	return nil
}

func sortedKeys(m map[string]*Flag) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// InvalidateCache clears the cached flags, forcing a refresh on next access.
func (s *Service) InvalidateCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string]*Flag)
	s.cacheExpiry = time.Time{}
}

// getCached retrieves a flag from cache if valid.
func (s *Service) getCached(key string) *Flag {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if time.Now().After(s.cacheExpiry) {
		return nil
	}

	flag, ok := s.cache[key]
	if !ok {
		return nil
	}
	return flag
}

// setCached stores a flag in the cache.
func (s *Service) setCached(key string, flag *Flag) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[key] = flag
	// Extend cache expiry if setting individual flags
	if s.cacheExpiry.Before(time.Now()) {
		s.cacheExpiry = time.Now().Add(s.cacheTTL)
	}
}

// ListFlags returns every flag sorted by key.
func (s *Service) ListFlags(ctx context.Context) FlagList {
	all := s.GetAllFlags(ctx)

	items := make([]Flag, 0, len(all))
	for _, f := range all {
		items = append(items, *f)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Key < items[j].Key })
	return FlagList{Items: items}
}

// Convenience methods for well-known flags. A nil Service reports defaults.

// SmartTimeWeight returns the smart strategy weight. Non-positive values
// fall back to the default.
func (s *Service) SmartTimeWeight(ctx context.Context) float64 {
	if s == nil {
		return DefaultSmartTimeWeight
	}
	w := s.GetFlag(ctx, FlagSmartTimeWeight).Float64Value(DefaultSmartTimeWeight)
	if w <= 0 {
		s.logger.Warn().Float64("value", w).Str("flag", FlagSmartTimeWeight).Msg("ignoring non-positive weight")
		return DefaultSmartTimeWeight
	}
	return w
}

// DisabledModes returns the modes switched off for every search.
func (s *Service) DisabledModes(ctx context.Context) []catalog.Mode {
	if s == nil {
		return nil
	}
	return s.GetFlag(ctx, FlagDisabledModes).ModesValue()
}
