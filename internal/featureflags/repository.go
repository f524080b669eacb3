package featureflags

import (
	"context"
	"errors"
)

// ErrFlagNotFound is returned when a flag key has no stored value.
var ErrFlagNotFound = errors.New("feature flag not found")

// Repository stores flag values. Reads return copies.
type Repository interface {
	GetFlag(ctx context.Context, key string) (*Flag, error)
	GetAllFlags(ctx context.Context) (map[string]*Flag, error)

	// SetFlags writes every flag in one step. Readers never observe a
	// partial update.
	SetFlags(ctx context.Context, flags []*Flag) error
}
