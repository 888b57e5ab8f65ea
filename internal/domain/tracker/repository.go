package tracker

import (
	"context"

	"github.com/studioledger/studioledger/internal/types"
)

// Filter narrows tracker list queries
type Filter struct {
	types.QueryFilter
	ProjectName *string `json:"project_name,omitempty" form:"project_name"`
}

// Repository defines the interface for tracker persistence operations
type Repository interface {
	// Create creates a new tracker row
	Create(ctx context.Context, t *Tracker) error

	// Get retrieves a tracker by internal ID
	Get(ctx context.Context, id string) (*Tracker, error)

	// GetByProjectName retrieves the non-deleted tracker row whose project
	// name exactly matches the given name
	GetByProjectName(ctx context.Context, projectName string) (*Tracker, error)

	// UpdateDerived overwrites only the derived fields of an existing row in
	// a single atomic update, leaving user fields untouched
	UpdateDerived(ctx context.Context, id string, d Derived) error

	// UpdateUserFields patches only the user-owned fields
	UpdateUserFields(ctx context.Context, id string, p UserFieldsPatch) error

	// List retrieves trackers based on filter criteria
	List(ctx context.Context, filter *Filter) ([]*Tracker, error)

	// Count returns the total count of trackers based on filter criteria
	Count(ctx context.Context, filter *Filter) (int, error)

	// Delete soft-deletes a tracker row
	Delete(ctx context.Context, id string) error
}
