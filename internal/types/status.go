package types

// Status is the lifecycle status of any persisted record. Deleted rows stay
// in the store and are filtered out of reads (soft delete).
type Status string

const (
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
	StatusDeleted   Status = "deleted"
)

func (s Status) String() string {
	return string(s)
}
