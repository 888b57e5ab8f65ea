package testutil

import (
	"context"

	"github.com/studioledger/studioledger/internal/domain/planning"
	ierr "github.com/studioledger/studioledger/internal/errors"
	"github.com/studioledger/studioledger/internal/types"
)

// InMemoryPlanningStore implements planning.Repository
type InMemoryPlanningStore struct {
	*InMemoryStore[*planning.Planning]
}

func NewInMemoryPlanningStore() *InMemoryPlanningStore {
	return &InMemoryPlanningStore{
		InMemoryStore: NewInMemoryStore[*planning.Planning](),
	}
}

func planningFilterFn(ctx context.Context, p *planning.Planning, filter interface{}) bool {
	if p == nil {
		return false
	}

	if tenantID, ok := ctx.Value(types.CtxTenantID).(string); ok {
		if p.TenantID != tenantID {
			return false
		}
	}

	f, ok := filter.(*types.DocumentFilter)
	if !ok || f == nil {
		return p.Status != types.StatusDeleted
	}

	if string(p.Status) != f.GetStatus() {
		return false
	}
	if f.ProjectName != nil && p.ProjectName != *f.ProjectName {
		return false
	}
	if f.ClientName != nil && p.ClientName != *f.ClientName {
		return false
	}
	return true
}

func planningSortFn(i, j *planning.Planning) bool {
	return i.CreatedAt.After(j.CreatedAt)
}

func (s *InMemoryPlanningStore) Create(ctx context.Context, p *planning.Planning) error {
	if p == nil {
		return ierr.NewError("planning cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, p.ID, p)
}

func (s *InMemoryPlanningStore) Get(ctx context.Context, id string) (*planning.Planning, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status == types.StatusDeleted {
		return nil, ierr.NewError("planning not found").
			Mark(ierr.ErrNotFound)
	}
	return p, nil
}

func (s *InMemoryPlanningStore) GetByNumber(ctx context.Context, number string) (*planning.Planning, error) {
	items, err := s.InMemoryStore.List(ctx, nil, planningFilterFn, nil)
	if err != nil {
		return nil, err
	}
	for _, p := range items {
		if p.PlanningNumber == number {
			return p, nil
		}
	}
	return nil, ierr.NewError("planning not found").
		Mark(ierr.ErrNotFound)
}

func (s *InMemoryPlanningStore) List(ctx context.Context, filter *types.DocumentFilter) ([]*planning.Planning, error) {
	return s.InMemoryStore.List(ctx, filter, planningFilterFn, planningSortFn)
}

func (s *InMemoryPlanningStore) Count(ctx context.Context, filter *types.DocumentFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, planningFilterFn)
}

func (s *InMemoryPlanningStore) Update(ctx context.Context, p *planning.Planning) error {
	if p == nil {
		return ierr.NewError("planning cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Update(ctx, p.ID, p)
}

func (s *InMemoryPlanningStore) Delete(ctx context.Context, id string) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	p.Status = types.StatusDeleted
	return s.InMemoryStore.Update(ctx, id, p)
}

func (s *InMemoryPlanningStore) HardDelete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}
