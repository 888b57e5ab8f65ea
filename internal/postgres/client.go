package postgres

import (
	"context"
)

// IClient is the transaction-control surface services depend on. Tests swap
// in a client whose WithTx runs the callback directly.
type IClient interface {
	// WithTx wraps the given function in a transaction
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

var _ IClient = (*DB)(nil)

// NewClient exposes the DB as an IClient for dependency injection
func NewClient(db *DB) IClient {
	return db
}
