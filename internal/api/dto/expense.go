package dto

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/studioledger/studioledger/internal/domain/expense"
	"github.com/studioledger/studioledger/internal/types"
	"github.com/studioledger/studioledger/internal/validator"
)

type CreateExpenseRequest struct {
	ProjectName string          `json:"project_name" validate:"required"`
	ExpenseDate time.Time       `json:"expense_date" validate:"required"`
	Category    string          `json:"category,omitempty"`
	Description string          `json:"description,omitempty"`
	TotalAmount decimal.Decimal `json:"total_amount" validate:"required"`
	Notes       string          `json:"notes,omitempty"`
}

func (r *CreateExpenseRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// ToExpense builds a standalone expense; the business number is assigned by
// the caller.
func (r *CreateExpenseRequest) ToExpense(ctx context.Context) *expense.Expense {
	return &expense.Expense{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_EXPENSE),
		ProjectName: r.ProjectName,
		ExpenseDate: r.ExpenseDate,
		Category:    r.Category,
		Description: r.Description,
		TotalAmount: r.TotalAmount,
		Notes:       r.Notes,
		SourceType:  expense.SourceTypeNone,
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
}

// CreateExpenseFromInvoiceRequest generates an expense from an invoice,
// snapshotting the invoice fields at generation time.
type CreateExpenseFromInvoiceRequest struct {
	InvoiceID   string     `json:"invoice_id" validate:"required"`
	ExpenseDate *time.Time `json:"expense_date,omitempty"`
	Category    string     `json:"category,omitempty"`
	Description string     `json:"description,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

func (r *CreateExpenseFromInvoiceRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// CreateExpenseFromPlanningRequest generates an expense from a planning,
// snapshotting the planning fields at generation time.
type CreateExpenseFromPlanningRequest struct {
	PlanningID  string     `json:"planning_id" validate:"required"`
	ExpenseDate *time.Time `json:"expense_date,omitempty"`
	Category    string     `json:"category,omitempty"`
	Description string     `json:"description,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

func (r *CreateExpenseFromPlanningRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type UpdateExpenseRequest struct {
	ProjectName *string          `json:"project_name,omitempty"`
	ExpenseDate *time.Time       `json:"expense_date,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Description *string          `json:"description,omitempty"`
	TotalAmount *decimal.Decimal `json:"total_amount,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
}

func (r *UpdateExpenseRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// Apply copies the supplied fields onto the expense. Snapshot columns and
// the source type stay out of reach.
func (r *UpdateExpenseRequest) Apply(e *expense.Expense) {
	if r.ProjectName != nil {
		e.ProjectName = *r.ProjectName
	}
	if r.ExpenseDate != nil {
		e.ExpenseDate = *r.ExpenseDate
	}
	if r.Category != nil {
		e.Category = *r.Category
	}
	if r.Description != nil {
		e.Description = *r.Description
	}
	if r.TotalAmount != nil {
		e.TotalAmount = *r.TotalAmount
	}
	if r.Notes != nil {
		e.Notes = *r.Notes
	}
}

type ExpenseResponse struct {
	*expense.Expense
}

type ListExpensesResponse struct {
	Items      []*ExpenseResponse       `json:"items"`
	Pagination types.PaginationResponse `json:"pagination"`
}
