package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/studioledger/studioledger/internal/domain/tracker"
	ierr "github.com/studioledger/studioledger/internal/errors"
	"github.com/studioledger/studioledger/internal/types"
)

// TrackerService keeps the one-per-project production tracker row in sync
// with the documents that describe the project. The merge key is the exact
// project name string: documents sharing a name collapse into one row, and a
// renamed document (for example a copy with a suffix) starts a new row.
type TrackerService interface {
	// Sync finds or creates the tracker row for the project name and merges
	// in the supplied derived fields. User-entered fields are defaulted on
	// creation and never touched afterwards.
	Sync(ctx context.Context, projectName string, derived tracker.Derived) (*tracker.Tracker, error)

	// Get retrieves a tracker row by internal ID
	Get(ctx context.Context, id string) (*tracker.Tracker, error)

	// List retrieves tracker rows
	List(ctx context.Context, filter *tracker.Filter) ([]*tracker.Tracker, error)

	// Count returns the number of tracker rows matching the filter
	Count(ctx context.Context, filter *tracker.Filter) (int, error)

	// UpdateUserFields patches the user-owned fields of a tracker row
	UpdateUserFields(ctx context.Context, id string, patch tracker.UserFieldsPatch) (*tracker.Tracker, error)

	// Delete soft-deletes a tracker row. Trackers are only ever deleted
	// through this call, never as a side effect of deleting a document.
	Delete(ctx context.Context, id string) error
}

type trackerService struct {
	ServiceParams
}

func NewTrackerService(params ServiceParams) TrackerService {
	return &trackerService{ServiceParams: params}
}

// Sync is an explicit lookup-then-create-or-patch rather than a generic
// upsert: the patch step must exclude the user-entered fields, which a row
// level upsert would overwrite.
func (s *trackerService) Sync(ctx context.Context, projectName string, derived tracker.Derived) (*tracker.Tracker, error) {
	if projectName == "" {
		return nil, ierr.NewError("project name is required").
			WithHint("cannot synchronize a tracker without a project name").
			Mark(ierr.ErrValidation)
	}

	existing, err := s.TrackerRepo.GetByProjectName(ctx, projectName)
	if err != nil && !ierr.IsNotFound(err) {
		s.Logger.Errorw("tracker lookup failed",
			"project_name", projectName,
			"error", err,
		)
		return nil, err
	}

	if existing != nil {
		if err := s.TrackerRepo.UpdateDerived(ctx, existing.ID, derived); err != nil {
			s.Logger.Errorw("tracker synchronization failed",
				"project_name", projectName,
				"tracker_id", existing.ID,
				"error", err,
			)
			return nil, err
		}
		existing.ApplyDerived(derived)
		return existing, nil
	}

	t := &tracker.Tracker{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_TRACKER),
		ProjectName: projectName,
		// User fields start empty and stay under user control from here on
		ProductAmounts: tracker.ProductAmounts{},
		Expense:        decimal.Zero,
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}
	t.ApplyDerived(derived)

	if err := s.TrackerRepo.Create(ctx, t); err != nil {
		s.Logger.Errorw("tracker creation failed",
			"project_name", projectName,
			"error", err,
		)
		return nil, err
	}
	return t, nil
}

func (s *trackerService) Get(ctx context.Context, id string) (*tracker.Tracker, error) {
	return s.TrackerRepo.Get(ctx, id)
}

func (s *trackerService) List(ctx context.Context, filter *tracker.Filter) ([]*tracker.Tracker, error) {
	if filter == nil {
		filter = &tracker.Filter{QueryFilter: *types.NewDefaultQueryFilter()}
	}
	return s.TrackerRepo.List(ctx, filter)
}

func (s *trackerService) Count(ctx context.Context, filter *tracker.Filter) (int, error) {
	if filter == nil {
		filter = &tracker.Filter{QueryFilter: *types.NewDefaultQueryFilter()}
	}
	return s.TrackerRepo.Count(ctx, filter)
}

func (s *trackerService) UpdateUserFields(ctx context.Context, id string, patch tracker.UserFieldsPatch) (*tracker.Tracker, error) {
	if err := s.TrackerRepo.UpdateUserFields(ctx, id, patch); err != nil {
		return nil, err
	}
	return s.TrackerRepo.Get(ctx, id)
}

func (s *trackerService) Delete(ctx context.Context, id string) error {
	return s.TrackerRepo.Delete(ctx, id)
}
