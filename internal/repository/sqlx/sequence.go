package sqlx

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"github.com/studioledger/studioledger/internal/config"
	"github.com/studioledger/studioledger/internal/domain/sequence"
	ierr "github.com/studioledger/studioledger/internal/errors"
	"github.com/studioledger/studioledger/internal/logger"
	"github.com/studioledger/studioledger/internal/postgres"
	"github.com/studioledger/studioledger/internal/types"
)

type sequenceRepository struct {
	db     *postgres.DB
	config *config.Configuration
	logger *logger.Logger
}

func NewSequenceRepository(db *postgres.DB, cfg *config.Configuration, logger *logger.Logger) sequence.Repository {
	return &sequenceRepository{db: db, config: cfg, logger: logger}
}

// Postgres SQLSTATEs worth retrying at the allocator level: the counter row
// is locked by a concurrent allocation (55P03 under lock_timeout), or the
// transaction lost a serialization/deadlock race (40001, 40P01).
func isRetryableSQLState(err error) bool {
	var pqErr *pq.Error
	if !ierr.As(err, &pqErr) {
		return false
	}
	switch string(pqErr.Code) {
	case "55P03", "40001", "40P01":
		return true
	}
	return false
}

// Next increments the (prefix, year) counter in its own short transaction,
// never joining a transaction from the context. The upsert takes Postgres'
// row lock on the unique key, so concurrent calls for the same key
// serialize while other keys proceed; committing before returning gives the
// persist-then-return guarantee, and a caller's later rollback can only burn
// a number, never reissue one.
func (r *sequenceRepository) Next(ctx context.Context, prefix string, year int) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("sequence allocation failed").
			Mark(ierr.ErrDatabase)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if timeout := r.config.Allocator.LockTimeoutMS; timeout > 0 {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("SET LOCAL lock_timeout = %d", timeout)); err != nil {
			return 0, ierr.WithError(err).
				WithHint("sequence allocation failed").
				Mark(ierr.ErrDatabase)
		}
	}

	query := `
		INSERT INTO sequence_counters (id, prefix, year, last_value, created_at, updated_at)
		VALUES ($1, $2, $3, 1, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT (prefix, year) DO UPDATE
		SET last_value = sequence_counters.last_value + 1,
			updated_at = CURRENT_TIMESTAMP
		RETURNING last_value`

	var lastValue int64
	if err := tx.GetContext(ctx, &lastValue, query, types.GenerateUUIDWithPrefix("seq"), prefix, year); err != nil {
		if isRetryableSQLState(err) {
			return 0, ierr.WithError(err).
				WithHint("sequence counter is contended").
				WithReportableDetails(map[string]any{
					"prefix": prefix,
					"year":   year,
				}).
				Mark(ierr.ErrLockContention)
		}
		return 0, ierr.WithError(err).
			WithHint("sequence allocation failed").
			Mark(ierr.ErrDatabase)
	}

	if err := tx.Commit(); err != nil {
		if isRetryableSQLState(err) {
			return 0, ierr.WithError(err).
				WithHint("sequence counter is contended").
				Mark(ierr.ErrLockContention)
		}
		return 0, ierr.WithError(err).
			WithHint("sequence allocation failed").
			Mark(ierr.ErrDatabase)
	}

	return lastValue, nil
}

func (r *sequenceRepository) Current(ctx context.Context, prefix string, year int) (int64, error) {
	var lastValue int64
	query := `SELECT last_value FROM sequence_counters WHERE prefix = $1 AND year = $2`
	err := r.db.GetContext(ctx, &lastValue, query, prefix, year)
	if err != nil {
		if isNoRows(err) {
			return 0, nil
		}
		return 0, ierr.WithError(err).
			WithHint("sequence counter lookup failed").
			Mark(ierr.ErrDatabase)
	}
	return lastValue, nil
}
