package sequence

import (
	"time"
)

// Counter is the persisted last-issued value for one (prefix, year) key.
// Rows are created lazily on first allocation and never deleted, so the
// history of issued numbers is never reset within a year.
type Counter struct {
	ID        string    `db:"id"`
	Prefix    string    `db:"prefix"`
	Year      int       `db:"year"`
	LastValue int64     `db:"last_value"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
