package testutil

import (
	"context"

	"github.com/studioledger/studioledger/internal/domain/expense"
	ierr "github.com/studioledger/studioledger/internal/errors"
	"github.com/studioledger/studioledger/internal/types"
)

// InMemoryExpenseStore implements expense.Repository
type InMemoryExpenseStore struct {
	*InMemoryStore[*expense.Expense]
}

func NewInMemoryExpenseStore() *InMemoryExpenseStore {
	return &InMemoryExpenseStore{
		InMemoryStore: NewInMemoryStore[*expense.Expense](),
	}
}

func expenseFilterFn(ctx context.Context, e *expense.Expense, filter interface{}) bool {
	if e == nil {
		return false
	}

	if tenantID, ok := ctx.Value(types.CtxTenantID).(string); ok {
		if e.TenantID != tenantID {
			return false
		}
	}

	f, ok := filter.(*types.DocumentFilter)
	if !ok || f == nil {
		return e.Status != types.StatusDeleted
	}

	if string(e.Status) != f.GetStatus() {
		return false
	}
	if f.ProjectName != nil && e.ProjectName != *f.ProjectName {
		return false
	}
	return true
}

func expenseSortFn(i, j *expense.Expense) bool {
	return i.CreatedAt.After(j.CreatedAt)
}

func (s *InMemoryExpenseStore) Create(ctx context.Context, e *expense.Expense) error {
	if e == nil {
		return ierr.NewError("expense cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, e.ID, e)
}

func (s *InMemoryExpenseStore) Get(ctx context.Context, id string) (*expense.Expense, error) {
	e, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.Status == types.StatusDeleted {
		return nil, ierr.NewError("expense not found").
			Mark(ierr.ErrNotFound)
	}
	return e, nil
}

func (s *InMemoryExpenseStore) GetByNumber(ctx context.Context, number string) (*expense.Expense, error) {
	items, err := s.InMemoryStore.List(ctx, nil, expenseFilterFn, nil)
	if err != nil {
		return nil, err
	}
	for _, e := range items {
		if e.ExpenseNumber == number {
			return e, nil
		}
	}
	return nil, ierr.NewError("expense not found").
		Mark(ierr.ErrNotFound)
}

func (s *InMemoryExpenseStore) ListByInvoiceNumber(ctx context.Context, invoiceNumber string) ([]*expense.Expense, error) {
	items, err := s.InMemoryStore.List(ctx, nil, expenseFilterFn, expenseSortFn)
	if err != nil {
		return nil, err
	}
	result := []*expense.Expense{}
	for _, e := range items {
		if e.InvoiceNumber != nil && *e.InvoiceNumber == invoiceNumber {
			result = append(result, e)
		}
	}
	return result, nil
}

func (s *InMemoryExpenseStore) List(ctx context.Context, filter *types.DocumentFilter) ([]*expense.Expense, error) {
	return s.InMemoryStore.List(ctx, filter, expenseFilterFn, expenseSortFn)
}

func (s *InMemoryExpenseStore) Count(ctx context.Context, filter *types.DocumentFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, expenseFilterFn)
}

func (s *InMemoryExpenseStore) Update(ctx context.Context, e *expense.Expense) error {
	if e == nil {
		return ierr.NewError("expense cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Update(ctx, e.ID, e)
}

func (s *InMemoryExpenseStore) Delete(ctx context.Context, id string) error {
	e, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	e.Status = types.StatusDeleted
	return s.InMemoryStore.Update(ctx, id, e)
}

func (s *InMemoryExpenseStore) HardDelete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}
