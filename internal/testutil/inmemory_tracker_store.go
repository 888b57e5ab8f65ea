package testutil

import (
	"context"

	"github.com/studioledger/studioledger/internal/domain/tracker"
	ierr "github.com/studioledger/studioledger/internal/errors"
	"github.com/studioledger/studioledger/internal/types"
)

// InMemoryTrackerStore implements tracker.Repository
type InMemoryTrackerStore struct {
	*InMemoryStore[*tracker.Tracker]
}

func NewInMemoryTrackerStore() *InMemoryTrackerStore {
	return &InMemoryTrackerStore{
		InMemoryStore: NewInMemoryStore[*tracker.Tracker](),
	}
}

func trackerFilterFn(ctx context.Context, t *tracker.Tracker, filter interface{}) bool {
	if t == nil {
		return false
	}

	if tenantID, ok := ctx.Value(types.CtxTenantID).(string); ok {
		if t.TenantID != tenantID {
			return false
		}
	}

	f, ok := filter.(*tracker.Filter)
	if !ok || f == nil {
		return t.Status != types.StatusDeleted
	}

	if string(t.Status) != f.GetStatus() {
		return false
	}
	if f.ProjectName != nil && t.ProjectName != *f.ProjectName {
		return false
	}
	return true
}

func trackerSortFn(i, j *tracker.Tracker) bool {
	return i.CreatedAt.After(j.CreatedAt)
}

func (s *InMemoryTrackerStore) Create(ctx context.Context, t *tracker.Tracker) error {
	if t == nil {
		return ierr.NewError("tracker cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, t.ID, t)
}

func (s *InMemoryTrackerStore) Get(ctx context.Context, id string) (*tracker.Tracker, error) {
	t, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.Status == types.StatusDeleted {
		return nil, ierr.NewError("tracker not found").
			Mark(ierr.ErrNotFound)
	}
	return t, nil
}

func (s *InMemoryTrackerStore) GetByProjectName(ctx context.Context, projectName string) (*tracker.Tracker, error) {
	items, err := s.InMemoryStore.List(ctx, nil, trackerFilterFn, nil)
	if err != nil {
		return nil, err
	}
	for _, t := range items {
		if t.ProjectName == projectName {
			return t, nil
		}
	}
	return nil, ierr.NewError("tracker not found").
		WithHintf("no tracker for project %s", projectName).
		Mark(ierr.ErrNotFound)
}

func (s *InMemoryTrackerStore) UpdateDerived(ctx context.Context, id string, d tracker.Derived) error {
	t, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	t.ApplyDerived(d)
	return s.InMemoryStore.Update(ctx, id, t)
}

func (s *InMemoryTrackerStore) UpdateUserFields(ctx context.Context, id string, p tracker.UserFieldsPatch) error {
	t, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	t.ApplyUserFields(p)
	return s.InMemoryStore.Update(ctx, id, t)
}

func (s *InMemoryTrackerStore) List(ctx context.Context, filter *tracker.Filter) ([]*tracker.Tracker, error) {
	return s.InMemoryStore.List(ctx, filter, trackerFilterFn, trackerSortFn)
}

func (s *InMemoryTrackerStore) Count(ctx context.Context, filter *tracker.Filter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, trackerFilterFn)
}

func (s *InMemoryTrackerStore) Delete(ctx context.Context, id string) error {
	t, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	t.Status = types.StatusDeleted
	return s.InMemoryStore.Update(ctx, id, t)
}
