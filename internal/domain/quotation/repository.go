package quotation

import (
	"context"

	"github.com/studioledger/studioledger/internal/types"
)

// Repository defines the interface for quotation persistence operations
type Repository interface {
	// Create creates a new quotation
	Create(ctx context.Context, q *Quotation) error

	// Get retrieves a quotation by internal ID
	Get(ctx context.Context, id string) (*Quotation, error)

	// GetByNumber retrieves a quotation by its business number
	GetByNumber(ctx context.Context, number string) (*Quotation, error)

	// List retrieves quotations based on filter criteria
	List(ctx context.Context, filter *types.DocumentFilter) ([]*Quotation, error)

	// Count returns the total count of quotations based on filter criteria
	Count(ctx context.Context, filter *types.DocumentFilter) (int, error)

	// Update updates an existing quotation
	Update(ctx context.Context, q *Quotation) error

	// Delete soft-deletes a quotation
	Delete(ctx context.Context, id string) error

	// HardDelete removes a quotation row entirely
	HardDelete(ctx context.Context, id string) error
}
