package featureflags

import (
	"context"
	"sync"
	"time"
)

// InMemoryRepository is an in-memory implementation of Repository. Flags are
// copied on the way in and out.
type InMemoryRepository struct {
	mu    sync.RWMutex
	flags map[string]*Flag
}

// NewInMemoryRepository creates a new in-memory repository seeded with the
// default flags.
func NewInMemoryRepository() *InMemoryRepository {
	return NewInMemoryRepositoryWithFlags(DefaultFlags())
}

// NewInMemoryRepositoryWithFlags creates a new in-memory repository with initial flags.
func NewInMemoryRepositoryWithFlags(flags map[string]*Flag) *InMemoryRepository {
	repo := &InMemoryRepository{
		flags: make(map[string]*Flag, len(flags)),
	}
	for k, v := range flags {
		repo.flags[k] = copyFlag(v)
	}
	return repo
}

// GetFlag retrieves a single feature flag by key.
func (r *InMemoryRepository) GetFlag(_ context.Context, key string) (*Flag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	flag, ok := r.flags[key]
	if !ok {
		return nil, ErrFlagNotFound
	}
	return copyFlag(flag), nil
}

// GetAllFlags retrieves all feature flags.
func (r *InMemoryRepository) GetAllFlags(_ context.Context) (map[string]*Flag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*Flag, len(r.flags))
	for k, v := range r.flags {
		result[k] = copyFlag(v)
	}
	return result, nil
}

// SetFlags creates or updates flags under a single lock.
func (r *InMemoryRepository) SetFlags(_ context.Context, flags []*Flag) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for _, flag := range flags {
		r.flags[flag.Key] = &Flag{
			Key:       flag.Key,
			Value:     flag.Value,
			UpdatedAt: now,
		}
	}
	return nil
}

func copyFlag(f *Flag) *Flag {
	return &Flag{
		Key:       f.Key,
		Value:     f.Value,
		UpdatedAt: f.UpdatedAt,
	}
}

// Ensure InMemoryRepository implements Repository interface.
var _ Repository = (*InMemoryRepository)(nil)
