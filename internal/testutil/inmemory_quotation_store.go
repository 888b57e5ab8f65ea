package testutil

import (
	"context"

	"github.com/studioledger/studioledger/internal/domain/quotation"
	ierr "github.com/studioledger/studioledger/internal/errors"
	"github.com/studioledger/studioledger/internal/types"
)

// InMemoryQuotationStore implements quotation.Repository
type InMemoryQuotationStore struct {
	*InMemoryStore[*quotation.Quotation]
}

func NewInMemoryQuotationStore() *InMemoryQuotationStore {
	return &InMemoryQuotationStore{
		InMemoryStore: NewInMemoryStore[*quotation.Quotation](),
	}
}

func quotationFilterFn(ctx context.Context, q *quotation.Quotation, filter interface{}) bool {
	if q == nil {
		return false
	}

	if tenantID, ok := ctx.Value(types.CtxTenantID).(string); ok {
		if q.TenantID != tenantID {
			return false
		}
	}

	f, ok := filter.(*types.DocumentFilter)
	if !ok || f == nil {
		return q.Status != types.StatusDeleted
	}

	if string(q.Status) != f.GetStatus() {
		return false
	}
	if f.ProjectName != nil && q.ProjectName != *f.ProjectName {
		return false
	}
	if f.ClientName != nil && q.ClientName != *f.ClientName {
		return false
	}
	return true
}

func quotationSortFn(i, j *quotation.Quotation) bool {
	return i.CreatedAt.After(j.CreatedAt)
}

func (s *InMemoryQuotationStore) Create(ctx context.Context, q *quotation.Quotation) error {
	if q == nil {
		return ierr.NewError("quotation cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, q.ID, q)
}

func (s *InMemoryQuotationStore) Get(ctx context.Context, id string) (*quotation.Quotation, error) {
	q, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if q.Status == types.StatusDeleted {
		return nil, ierr.NewError("quotation not found").
			Mark(ierr.ErrNotFound)
	}
	return q, nil
}

func (s *InMemoryQuotationStore) GetByNumber(ctx context.Context, number string) (*quotation.Quotation, error) {
	items, err := s.InMemoryStore.List(ctx, nil, quotationFilterFn, nil)
	if err != nil {
		return nil, err
	}
	for _, q := range items {
		if q.QuotationNumber == number {
			return q, nil
		}
	}
	return nil, ierr.NewError("quotation not found").
		Mark(ierr.ErrNotFound)
}

func (s *InMemoryQuotationStore) List(ctx context.Context, filter *types.DocumentFilter) ([]*quotation.Quotation, error) {
	return s.InMemoryStore.List(ctx, filter, quotationFilterFn, quotationSortFn)
}

func (s *InMemoryQuotationStore) Count(ctx context.Context, filter *types.DocumentFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, quotationFilterFn)
}

func (s *InMemoryQuotationStore) Update(ctx context.Context, q *quotation.Quotation) error {
	if q == nil {
		return ierr.NewError("quotation cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Update(ctx, q.ID, q)
}

func (s *InMemoryQuotationStore) Delete(ctx context.Context, id string) error {
	q, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	q.Status = types.StatusDeleted
	return s.InMemoryStore.Update(ctx, id, q)
}

func (s *InMemoryQuotationStore) HardDelete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}
