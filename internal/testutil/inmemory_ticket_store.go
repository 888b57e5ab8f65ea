package testutil

import (
	"context"

	"github.com/studioledger/studioledger/internal/domain/ticket"
	ierr "github.com/studioledger/studioledger/internal/errors"
	"github.com/studioledger/studioledger/internal/types"
)

// InMemoryTicketStore implements ticket.Repository
type InMemoryTicketStore struct {
	*InMemoryStore[*ticket.Ticket]
}

func NewInMemoryTicketStore() *InMemoryTicketStore {
	return &InMemoryTicketStore{
		InMemoryStore: NewInMemoryStore[*ticket.Ticket](),
	}
}

func ticketFilterFn(ctx context.Context, t *ticket.Ticket, filter interface{}) bool {
	if t == nil {
		return false
	}

	if tenantID, ok := ctx.Value(types.CtxTenantID).(string); ok {
		if t.TenantID != tenantID {
			return false
		}
	}

	f, ok := filter.(*ticket.Filter)
	if !ok || f == nil {
		return t.Status != types.StatusDeleted
	}

	if string(t.Status) != f.GetStatus() {
		return false
	}
	if f.Kind != nil && t.Kind != *f.Kind {
		return false
	}
	if f.ProjectName != nil && t.ProjectName != *f.ProjectName {
		return false
	}
	if f.ClientName != nil && t.ClientName != *f.ClientName {
		return false
	}
	return true
}

func ticketSortFn(i, j *ticket.Ticket) bool {
	return i.CreatedAt.After(j.CreatedAt)
}

func (s *InMemoryTicketStore) Create(ctx context.Context, t *ticket.Ticket) error {
	if t == nil {
		return ierr.NewError("ticket cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, t.ID, t)
}

func (s *InMemoryTicketStore) Get(ctx context.Context, id string) (*ticket.Ticket, error) {
	t, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.Status == types.StatusDeleted {
		return nil, ierr.NewError("ticket not found").
			Mark(ierr.ErrNotFound)
	}
	return t, nil
}

func (s *InMemoryTicketStore) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	items, err := s.InMemoryStore.List(ctx, nil, ticketFilterFn, nil)
	if err != nil {
		return nil, err
	}
	for _, t := range items {
		if t.TicketNumber == number {
			return t, nil
		}
	}
	return nil, ierr.NewError("ticket not found").
		Mark(ierr.ErrNotFound)
}

func (s *InMemoryTicketStore) List(ctx context.Context, filter *ticket.Filter) ([]*ticket.Ticket, error) {
	return s.InMemoryStore.List(ctx, filter, ticketFilterFn, ticketSortFn)
}

func (s *InMemoryTicketStore) Count(ctx context.Context, filter *ticket.Filter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, ticketFilterFn)
}

func (s *InMemoryTicketStore) Update(ctx context.Context, t *ticket.Ticket) error {
	if t == nil {
		return ierr.NewError("ticket cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Update(ctx, t.ID, t)
}

func (s *InMemoryTicketStore) Delete(ctx context.Context, id string) error {
	t, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	t.Status = types.StatusDeleted
	return s.InMemoryStore.Update(ctx, id, t)
}

func (s *InMemoryTicketStore) HardDelete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}
