package service

import (
	"context"

	"github.com/samber/lo"

	"github.com/studioledger/studioledger/internal/api/dto"
	"github.com/studioledger/studioledger/internal/domain/planning"
	"github.com/studioledger/studioledger/internal/types"
)

// PlanningService exposes shoot planning operations. Plannings never
// synchronize the production tracker.
type PlanningService interface {
	Create(ctx context.Context, req dto.CreatePlanningRequest) (*dto.PlanningResponse, error)
	Get(ctx context.Context, id string) (*dto.PlanningResponse, error)
	GetByNumber(ctx context.Context, number string) (*dto.PlanningResponse, error)
	List(ctx context.Context, filter *types.DocumentFilter) (*dto.ListPlanningsResponse, error)
	Update(ctx context.Context, id string, req dto.UpdatePlanningRequest) (*dto.PlanningResponse, error)
	Delete(ctx context.Context, id string) error
}

type planningService struct {
	ServiceParams
	allocator AllocatorService
}

func NewPlanningService(params ServiceParams) PlanningService {
	return &planningService{
		ServiceParams: params,
		allocator:     NewAllocatorService(params),
	}
}

func (s *planningService) Create(ctx context.Context, req dto.CreatePlanningRequest) (*dto.PlanningResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	number, err := s.allocator.Allocate(ctx, types.DocumentTypePlanning)
	if err != nil {
		return nil, err
	}

	p := req.ToPlanning(ctx)
	p.PlanningNumber = number

	if err := s.PlanningRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.Logger.Infow("created planning",
		"planning_id", p.ID,
		"planning_number", p.PlanningNumber,
		"project_name", p.ProjectName,
	)
	return &dto.PlanningResponse{Planning: p}, nil
}

func (s *planningService) Get(ctx context.Context, id string) (*dto.PlanningResponse, error) {
	p, err := s.PlanningRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.PlanningResponse{Planning: p}, nil
}

func (s *planningService) GetByNumber(ctx context.Context, number string) (*dto.PlanningResponse, error) {
	p, err := s.PlanningRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return &dto.PlanningResponse{Planning: p}, nil
}

func (s *planningService) List(ctx context.Context, filter *types.DocumentFilter) (*dto.ListPlanningsResponse, error) {
	if filter == nil {
		filter = &types.DocumentFilter{QueryFilter: *types.NewDefaultQueryFilter()}
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	items, err := s.PlanningRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.PlanningRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &dto.ListPlanningsResponse{
		Items: lo.Map(items, func(p *planning.Planning, _ int) *dto.PlanningResponse {
			return &dto.PlanningResponse{Planning: p}
		}),
		Pagination: types.NewPaginationResponse(total, filter.GetLimit(), filter.GetOffset()),
	}, nil
}

func (s *planningService) Update(ctx context.Context, id string, req dto.UpdatePlanningRequest) (*dto.PlanningResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.PlanningRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(p)

	if err := s.PlanningRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return &dto.PlanningResponse{Planning: p}, nil
}

func (s *planningService) Delete(ctx context.Context, id string) error {
	if _, err := s.PlanningRepo.Get(ctx, id); err != nil {
		return err
	}
	return s.PlanningRepo.Delete(ctx, id)
}
