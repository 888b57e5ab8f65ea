package sqlx

import (
	"context"
	"time"

	"github.com/studioledger/studioledger/internal/domain/expense"
	ierr "github.com/studioledger/studioledger/internal/errors"
	"github.com/studioledger/studioledger/internal/logger"
	"github.com/studioledger/studioledger/internal/postgres"
	"github.com/studioledger/studioledger/internal/types"
)

type expenseRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewExpenseRepository(db *postgres.DB, logger *logger.Logger) expense.Repository {
	return &expenseRepository{db: db, logger: logger}
}

const expenseColumns = `id, expense_number, project_name, expense_date, category, description,
	total_amount, notes, source_type,
	invoice_number, invoice_total_amount, invoice_date, invoice_client_name,
	planning_number, planning_amount, planning_event_date, planning_client_name,
	tenant_id, status, created_at, updated_at, created_by, updated_by`

func (r *expenseRepository) Create(ctx context.Context, e *expense.Expense) error {
	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES (:id, :expense_number, :project_name, :expense_date, :category, :description,
			:total_amount, :notes, :source_type,
			:invoice_number, :invoice_total_amount, :invoice_date, :invoice_client_name,
			:planning_number, :planning_amount, :planning_event_date, :planning_client_name,
			:tenant_id, :status, :created_at, :updated_at, :created_by, :updated_by)`

	if _, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, e); err != nil {
		return ierr.WithError(err).
			WithHint("failed to create expense").
			WithReportableDetails(map[string]any{"expense_number": e.ExpenseNumber}).
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *expenseRepository) Get(ctx context.Context, id string) (*expense.Expense, error) {
	var e expense.Expense
	query := `SELECT ` + expenseColumns + ` FROM expenses
		WHERE id = $1 AND tenant_id = $2 AND status != $3`

	err := r.db.GetQuerier(ctx).GetContext(ctx, &e, query, id, types.GetTenantID(ctx), types.StatusDeleted)
	if err != nil {
		if isNoRows(err) {
			return nil, ierr.NewError("expense not found").
				WithHintf("expense %s does not exist", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("failed to get expense").
			Mark(ierr.ErrDatabase)
	}
	return &e, nil
}

func (r *expenseRepository) GetByNumber(ctx context.Context, number string) (*expense.Expense, error) {
	var e expense.Expense
	query := `SELECT ` + expenseColumns + ` FROM expenses
		WHERE expense_number = $1 AND tenant_id = $2 AND status != $3`

	err := r.db.GetQuerier(ctx).GetContext(ctx, &e, query, number, types.GetTenantID(ctx), types.StatusDeleted)
	if err != nil {
		if isNoRows(err) {
			return nil, ierr.NewError("expense not found").
				WithHintf("expense %s does not exist", number).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("failed to get expense").
			Mark(ierr.ErrDatabase)
	}
	return &e, nil
}

// ListByInvoiceNumber matches on the stored snapshot reference, so it still
// finds expenses whose source invoice has since been deleted.
func (r *expenseRepository) ListByInvoiceNumber(ctx context.Context, invoiceNumber string) ([]*expense.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses
		WHERE invoice_number = $1 AND tenant_id = $2 AND status != $3
		ORDER BY created_at DESC`

	expenses := []*expense.Expense{}
	err := r.db.GetQuerier(ctx).SelectContext(ctx, &expenses, query,
		invoiceNumber, types.GetTenantID(ctx), types.StatusDeleted)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to list expenses by invoice").
			Mark(ierr.ErrDatabase)
	}
	return expenses, nil
}

func (r *expenseRepository) List(ctx context.Context, filter *types.DocumentFilter) ([]*expense.Expense, error) {
	where, args := documentWhere(types.GetTenantID(ctx), filter)
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE ` + where +
		` ORDER BY created_at DESC` + pagination(filter)

	expenses := []*expense.Expense{}
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &expenses, query, args...); err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to list expenses").
			Mark(ierr.ErrDatabase)
	}
	return expenses, nil
}

func (r *expenseRepository) Count(ctx context.Context, filter *types.DocumentFilter) (int, error) {
	where, args := documentWhere(types.GetTenantID(ctx), filter)
	query := `SELECT COUNT(*) FROM expenses WHERE ` + where

	var count int
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &count, query, args...); err != nil {
		return 0, ierr.WithError(err).
			WithHint("failed to count expenses").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

// Update never touches the invoice_* / planning_* snapshot columns.
func (r *expenseRepository) Update(ctx context.Context, e *expense.Expense) error {
	e.UpdatedAt = time.Now().UTC()
	e.UpdatedBy = types.GetUserID(ctx)

	query := `
		UPDATE expenses SET
			project_name = :project_name,
			expense_date = :expense_date,
			category = :category,
			description = :description,
			total_amount = :total_amount,
			notes = :notes,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND tenant_id = :tenant_id`

	result, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, e)
	if err != nil {
		return ierr.WithError(err).
			WithHint("failed to update expense").
			Mark(ierr.ErrDatabase)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ierr.NewError("expense not found").
			WithHintf("expense %s does not exist", e.ID).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *expenseRepository) Delete(ctx context.Context, id string) error {
	return softDelete(ctx, r.db, "expenses", id)
}

func (r *expenseRepository) HardDelete(ctx context.Context, id string) error {
	return hardDelete(ctx, r.db, "expenses", id)
}
