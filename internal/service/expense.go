package service

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/studioledger/studioledger/internal/api/dto"
	"github.com/studioledger/studioledger/internal/domain/expense"
	"github.com/studioledger/studioledger/internal/types"
)

// ExpenseService exposes expense document operations. Expenses never touch
// the production tracker: they are cost records, not project milestones.
type ExpenseService interface {
	Create(ctx context.Context, req dto.CreateExpenseRequest) (*dto.ExpenseResponse, error)

	// CreateFromInvoice generates an expense from an invoice, copying the
	// invoice snapshot fields onto the new expense.
	CreateFromInvoice(ctx context.Context, req dto.CreateExpenseFromInvoiceRequest) (*dto.ExpenseResponse, error)

	// CreateFromPlanning generates an expense from a planning, copying the
	// planning snapshot fields onto the new expense.
	CreateFromPlanning(ctx context.Context, req dto.CreateExpenseFromPlanningRequest) (*dto.ExpenseResponse, error)

	Get(ctx context.Context, id string) (*dto.ExpenseResponse, error)
	GetByNumber(ctx context.Context, number string) (*dto.ExpenseResponse, error)
	List(ctx context.Context, filter *types.DocumentFilter) (*dto.ListExpensesResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error)
	Delete(ctx context.Context, id string) error
}

type expenseService struct {
	ServiceParams
	allocator AllocatorService
	snapshots SnapshotService
}

func NewExpenseService(params ServiceParams) ExpenseService {
	return &expenseService{
		ServiceParams: params,
		allocator:     NewAllocatorService(params),
		snapshots:     NewSnapshotService(params),
	}
}

func (s *expenseService) Create(ctx context.Context, req dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	number, err := s.allocator.Allocate(ctx, types.DocumentTypeExpense)
	if err != nil {
		return nil, err
	}

	e := req.ToExpense(ctx)
	e.ExpenseNumber = number

	if err := s.ExpenseRepo.Create(ctx, e); err != nil {
		return nil, err
	}

	s.Logger.Infow("created expense",
		"expense_id", e.ID,
		"expense_number", e.ExpenseNumber,
		"project_name", e.ProjectName,
	)
	return &dto.ExpenseResponse{Expense: e}, nil
}

func (s *expenseService) CreateFromInvoice(ctx context.Context, req dto.CreateExpenseFromInvoiceRequest) (*dto.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	snap, err := s.snapshots.CaptureFromInvoice(ctx, req.InvoiceID)
	if err != nil {
		return nil, err
	}

	src, err := s.InvoiceRepo.Get(ctx, req.InvoiceID)
	if err != nil {
		return nil, err
	}

	number, err := s.allocator.Allocate(ctx, types.DocumentTypeExpense)
	if err != nil {
		return nil, err
	}

	e := &expense.Expense{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_EXPENSE),
		ExpenseNumber: number,
		ProjectName:   src.ProjectName,
		ExpenseDate:   lo.FromPtrOr(req.ExpenseDate, time.Now().UTC()),
		Category:      req.Category,
		Description:   lo.Ternary(req.Description != "", req.Description, src.Description),
		TotalAmount:   snap.TotalAmount,
		Notes:         req.Notes,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}
	e.ApplyInvoiceSnapshot(*snap)

	if err := s.ExpenseRepo.Create(ctx, e); err != nil {
		return nil, err
	}

	s.Logger.Infow("generated expense from invoice",
		"expense_id", e.ID,
		"expense_number", e.ExpenseNumber,
		"invoice_number", snap.InvoiceNumber,
	)
	return &dto.ExpenseResponse{Expense: e}, nil
}

func (s *expenseService) CreateFromPlanning(ctx context.Context, req dto.CreateExpenseFromPlanningRequest) (*dto.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	snap, err := s.snapshots.CaptureFromPlanning(ctx, req.PlanningID)
	if err != nil {
		return nil, err
	}

	src, err := s.PlanningRepo.Get(ctx, req.PlanningID)
	if err != nil {
		return nil, err
	}

	number, err := s.allocator.Allocate(ctx, types.DocumentTypeExpense)
	if err != nil {
		return nil, err
	}

	e := &expense.Expense{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_EXPENSE),
		ExpenseNumber: number,
		ProjectName:   src.ProjectName,
		ExpenseDate:   lo.FromPtrOr(req.ExpenseDate, snap.EventDate),
		Category:      req.Category,
		Description:   lo.Ternary(req.Description != "", req.Description, src.Description),
		TotalAmount:   snap.TotalAmount,
		Notes:         req.Notes,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}
	e.ApplyPlanningSnapshot(*snap)

	if err := s.ExpenseRepo.Create(ctx, e); err != nil {
		return nil, err
	}

	s.Logger.Infow("generated expense from planning",
		"expense_id", e.ID,
		"expense_number", e.ExpenseNumber,
		"planning_number", snap.PlanningNumber,
	)
	return &dto.ExpenseResponse{Expense: e}, nil
}

func (s *expenseService) Get(ctx context.Context, id string) (*dto.ExpenseResponse, error) {
	e, err := s.ExpenseRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.ExpenseResponse{Expense: e}, nil
}

func (s *expenseService) GetByNumber(ctx context.Context, number string) (*dto.ExpenseResponse, error) {
	e, err := s.ExpenseRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return &dto.ExpenseResponse{Expense: e}, nil
}

func (s *expenseService) List(ctx context.Context, filter *types.DocumentFilter) (*dto.ListExpensesResponse, error) {
	if filter == nil {
		filter = &types.DocumentFilter{QueryFilter: *types.NewDefaultQueryFilter()}
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	items, err := s.ExpenseRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.ExpenseRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &dto.ListExpensesResponse{
		Items: lo.Map(items, func(e *expense.Expense, _ int) *dto.ExpenseResponse {
			return &dto.ExpenseResponse{Expense: e}
		}),
		Pagination: types.NewPaginationResponse(total, filter.GetLimit(), filter.GetOffset()),
	}, nil
}

func (s *expenseService) Update(ctx context.Context, id string, req dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	e, err := s.ExpenseRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(e)

	if err := s.ExpenseRepo.Update(ctx, e); err != nil {
		return nil, err
	}
	return &dto.ExpenseResponse{Expense: e}, nil
}

func (s *expenseService) Delete(ctx context.Context, id string) error {
	if _, err := s.ExpenseRepo.Get(ctx, id); err != nil {
		return err
	}
	return s.ExpenseRepo.Delete(ctx, id)
}
