package expense

import (
	"context"

	"github.com/studioledger/studioledger/internal/types"
)

// Repository defines the interface for expense persistence operations
type Repository interface {
	// Create creates a new expense
	Create(ctx context.Context, e *Expense) error

	// Get retrieves an expense by internal ID
	Get(ctx context.Context, id string) (*Expense, error)

	// GetByNumber retrieves an expense by its business number
	GetByNumber(ctx context.Context, number string) (*Expense, error)

	// ListByInvoiceNumber retrieves expenses referencing an invoice number.
	// The reference is a soft one, so this also returns expenses whose
	// source invoice no longer exists.
	ListByInvoiceNumber(ctx context.Context, invoiceNumber string) ([]*Expense, error)

	// List retrieves expenses based on filter criteria
	List(ctx context.Context, filter *types.DocumentFilter) ([]*Expense, error)

	// Count returns the total count of expenses based on filter criteria
	Count(ctx context.Context, filter *types.DocumentFilter) (int, error)

	// Update updates an existing expense
	Update(ctx context.Context, e *Expense) error

	// Delete soft-deletes an expense
	Delete(ctx context.Context, id string) error

	// HardDelete removes an expense row entirely
	HardDelete(ctx context.Context, id string) error
}
