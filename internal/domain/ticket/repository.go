package ticket

import (
	"context"

	"github.com/studioledger/studioledger/internal/types"
)

// Filter narrows ticket list queries
type Filter struct {
	types.DocumentFilter
	Kind *types.TicketKind `json:"kind,omitempty" form:"kind"`
}

// Repository defines the interface for ticket persistence operations
type Repository interface {
	// Create creates a new ticket
	Create(ctx context.Context, t *Ticket) error

	// Get retrieves a ticket by internal ID
	Get(ctx context.Context, id string) (*Ticket, error)

	// GetByNumber retrieves a ticket by its business number
	GetByNumber(ctx context.Context, number string) (*Ticket, error)

	// List retrieves tickets based on filter criteria
	List(ctx context.Context, filter *Filter) ([]*Ticket, error)

	// Count returns the total count of tickets based on filter criteria
	Count(ctx context.Context, filter *Filter) (int, error)

	// Update updates an existing ticket
	Update(ctx context.Context, t *Ticket) error

	// Delete soft-deletes a ticket
	Delete(ctx context.Context, id string) error

	// HardDelete removes a ticket row entirely
	HardDelete(ctx context.Context, id string) error
}
