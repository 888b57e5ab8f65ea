package service

import (
	"context"

	"github.com/samber/lo"

	"github.com/studioledger/studioledger/internal/api/dto"
	"github.com/studioledger/studioledger/internal/domain/quotation"
	"github.com/studioledger/studioledger/internal/domain/tracker"
	ierr "github.com/studioledger/studioledger/internal/errors"
	"github.com/studioledger/studioledger/internal/types"
)

// QuotationService exposes quotation document operations
type QuotationService interface {
	Create(ctx context.Context, req dto.CreateQuotationRequest) (*dto.QuotationResponse, error)
	Get(ctx context.Context, id string) (*dto.QuotationResponse, error)
	GetByNumber(ctx context.Context, number string) (*dto.QuotationResponse, error)
	List(ctx context.Context, filter *types.DocumentFilter) (*dto.ListQuotationsResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateQuotationRequest) (*dto.QuotationResponse, error)
	Duplicate(ctx context.Context, id string) (*dto.QuotationResponse, error)
	MarkAccepted(ctx context.Context, id string) (*dto.QuotationResponse, error)
	MarkRejected(ctx context.Context, id string) (*dto.QuotationResponse, error)
	Delete(ctx context.Context, id string) error
}

type quotationService struct {
	ServiceParams
	allocator AllocatorService
	trackers  TrackerService
}

func NewQuotationService(params ServiceParams) QuotationService {
	return &quotationService{
		ServiceParams: params,
		allocator:     NewAllocatorService(params),
		trackers:      NewTrackerService(params),
	}
}

// derived maps a quotation onto the tracker fields it feeds
func (s *quotationService) derived(q *quotation.Quotation) tracker.Derived {
	return tracker.Derived{
		Date:        q.QuotationDate,
		TotalAmount: q.TotalAmount,
	}
}

func (s *quotationService) Create(ctx context.Context, req dto.CreateQuotationRequest) (*dto.QuotationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Number allocation runs on its own connection so the counter lock is
	// released before the document transaction starts. A rollback below
	// burns the number, it is never reissued.
	number, err := s.allocator.Allocate(ctx, types.DocumentTypeQuotation)
	if err != nil {
		return nil, err
	}

	q := req.ToQuotation(ctx)
	q.QuotationNumber = number

	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		if err := s.QuotationRepo.Create(ctx, q); err != nil {
			return err
		}
		_, err := s.trackers.Sync(ctx, q.ProjectName, s.derived(q))
		return err
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("created quotation",
		"quotation_id", q.ID,
		"quotation_number", q.QuotationNumber,
		"project_name", q.ProjectName,
	)
	return &dto.QuotationResponse{Quotation: q}, nil
}

func (s *quotationService) Get(ctx context.Context, id string) (*dto.QuotationResponse, error) {
	q, err := s.QuotationRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.QuotationResponse{Quotation: q}, nil
}

func (s *quotationService) GetByNumber(ctx context.Context, number string) (*dto.QuotationResponse, error) {
	q, err := s.QuotationRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return &dto.QuotationResponse{Quotation: q}, nil
}

func (s *quotationService) List(ctx context.Context, filter *types.DocumentFilter) (*dto.ListQuotationsResponse, error) {
	if filter == nil {
		filter = &types.DocumentFilter{QueryFilter: *types.NewDefaultQueryFilter()}
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	items, err := s.QuotationRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.QuotationRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &dto.ListQuotationsResponse{
		Items: lo.Map(items, func(q *quotation.Quotation, _ int) *dto.QuotationResponse {
			return &dto.QuotationResponse{Quotation: q}
		}),
		Pagination: types.NewPaginationResponse(total, filter.GetLimit(), filter.GetOffset()),
	}, nil
}

func (s *quotationService) Update(ctx context.Context, id string, req dto.UpdateQuotationRequest) (*dto.QuotationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	q, err := s.QuotationRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(q)

	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		if err := s.QuotationRepo.Update(ctx, q); err != nil {
			return err
		}
		_, err := s.trackers.Sync(ctx, q.ProjectName, s.derived(q))
		return err
	})
	if err != nil {
		return nil, err
	}
	return &dto.QuotationResponse{Quotation: q}, nil
}

// Duplicate copies a quotation into a fresh draft under its own business
// number. The copy suffix changes the project name, so the copy starts a new
// tracker row instead of merging into the original's.
func (s *quotationService) Duplicate(ctx context.Context, id string) (*dto.QuotationResponse, error) {
	src, err := s.QuotationRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	number, err := s.allocator.Allocate(ctx, types.DocumentTypeQuotation)
	if err != nil {
		return nil, err
	}

	copy := *src
	copy.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_QUOTATION)
	copy.QuotationNumber = number
	copy.ProjectName = src.ProjectName + " (Copy)"
	copy.QuotationStatus = types.QuotationStatusDraft
	copy.BaseModel = types.GetDefaultBaseModel(ctx)

	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		if err := s.QuotationRepo.Create(ctx, &copy); err != nil {
			return err
		}
		_, err := s.trackers.Sync(ctx, copy.ProjectName, s.derived(&copy))
		return err
	})
	if err != nil {
		return nil, err
	}
	return &dto.QuotationResponse{Quotation: &copy}, nil
}

func (s *quotationService) MarkAccepted(ctx context.Context, id string) (*dto.QuotationResponse, error) {
	return s.transition(ctx, id, types.QuotationStatusAccepted)
}

func (s *quotationService) MarkRejected(ctx context.Context, id string) (*dto.QuotationResponse, error) {
	return s.transition(ctx, id, types.QuotationStatusRejected)
}

func (s *quotationService) transition(ctx context.Context, id string, to types.QuotationStatus) (*dto.QuotationResponse, error) {
	q, err := s.QuotationRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if q.QuotationStatus == to {
		return nil, ierr.NewError("quotation already in target status").
			WithHintf("quotation %s is already %s", q.QuotationNumber, to).
			Mark(ierr.ErrInvalidOperation)
	}

	q.QuotationStatus = to
	if err := s.QuotationRepo.Update(ctx, q); err != nil {
		return nil, err
	}
	return &dto.QuotationResponse{Quotation: q}, nil
}

// Delete soft-deletes the quotation. The project's tracker row survives: it
// still aggregates whatever other documents share the project name, and is
// only ever removed through the tracker API.
func (s *quotationService) Delete(ctx context.Context, id string) error {
	if _, err := s.QuotationRepo.Get(ctx, id); err != nil {
		return err
	}
	return s.QuotationRepo.Delete(ctx, id)
}
