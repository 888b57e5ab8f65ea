package sequence

import (
	"context"
)

// Repository defines the interface for sequence counter persistence
type Repository interface {
	// Next atomically increments and durably persists the counter for the
	// (prefix, year) key, returning the new value. The first call for a key
	// returns 1. Implementations must serialize concurrent calls per key
	// while keeping different keys independent, and must persist the new
	// value before returning it.
	Next(ctx context.Context, prefix string, year int) (int64, error)

	// Current returns the last issued value for the key, 0 if the key has
	// never been seen.
	Current(ctx context.Context, prefix string, year int) (int64, error)
}
