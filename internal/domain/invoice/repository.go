package invoice

import (
	"context"

	"github.com/studioledger/studioledger/internal/types"
)

// Repository defines the interface for invoice persistence operations
type Repository interface {
	// Create creates a new invoice
	Create(ctx context.Context, inv *Invoice) error

	// Get retrieves an invoice by internal ID
	Get(ctx context.Context, id string) (*Invoice, error)

	// GetByNumber retrieves an invoice by its business number
	GetByNumber(ctx context.Context, number string) (*Invoice, error)

	// List retrieves invoices based on filter criteria
	List(ctx context.Context, filter *types.DocumentFilter) ([]*Invoice, error)

	// Count returns the total count of invoices based on filter criteria
	Count(ctx context.Context, filter *types.DocumentFilter) (int, error)

	// Update updates an existing invoice
	Update(ctx context.Context, inv *Invoice) error

	// Delete soft-deletes an invoice
	Delete(ctx context.Context, id string) error

	// HardDelete removes an invoice row entirely
	HardDelete(ctx context.Context, id string) error
}
