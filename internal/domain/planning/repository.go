package planning

import (
	"context"

	"github.com/studioledger/studioledger/internal/types"
)

// Repository defines the interface for planning persistence operations
type Repository interface {
	// Create creates a new planning
	Create(ctx context.Context, p *Planning) error

	// Get retrieves a planning by internal ID
	Get(ctx context.Context, id string) (*Planning, error)

	// GetByNumber retrieves a planning by its business number
	GetByNumber(ctx context.Context, number string) (*Planning, error)

	// List retrieves plannings based on filter criteria
	List(ctx context.Context, filter *types.DocumentFilter) ([]*Planning, error)

	// Count returns the total count of plannings based on filter criteria
	Count(ctx context.Context, filter *types.DocumentFilter) (int, error)

	// Update updates an existing planning
	Update(ctx context.Context, p *Planning) error

	// Delete soft-deletes a planning
	Delete(ctx context.Context, id string) error

	// HardDelete removes a planning row entirely
	HardDelete(ctx context.Context, id string) error
}
