package sqlx

import (
	"context"
	"time"

	"github.com/studioledger/studioledger/internal/domain/invoice"
	ierr "github.com/studioledger/studioledger/internal/errors"
	"github.com/studioledger/studioledger/internal/logger"
	"github.com/studioledger/studioledger/internal/postgres"
	"github.com/studioledger/studioledger/internal/types"
)

type invoiceRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewInvoiceRepository(db *postgres.DB, logger *logger.Logger) invoice.Repository {
	return &invoiceRepository{db: db, logger: logger}
}

const invoiceColumns = `id, invoice_number, project_name, client_name, invoice_date, due_date,
	description, total_amount, payment_status, notes,
	quotation_number, quotation_total_amount, quotation_date, quotation_client_name,
	tenant_id, status, created_at, updated_at, created_by, updated_by`

func (r *invoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES (:id, :invoice_number, :project_name, :client_name, :invoice_date, :due_date,
			:description, :total_amount, :payment_status, :notes,
			:quotation_number, :quotation_total_amount, :quotation_date, :quotation_client_name,
			:tenant_id, :status, :created_at, :updated_at, :created_by, :updated_by)`

	if _, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, inv); err != nil {
		return ierr.WithError(err).
			WithHint("failed to create invoice").
			WithReportableDetails(map[string]any{"invoice_number": inv.InvoiceNumber}).
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *invoiceRepository) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	var inv invoice.Invoice
	query := `SELECT ` + invoiceColumns + ` FROM invoices
		WHERE id = $1 AND tenant_id = $2 AND status != $3`

	err := r.db.GetQuerier(ctx).GetContext(ctx, &inv, query, id, types.GetTenantID(ctx), types.StatusDeleted)
	if err != nil {
		if isNoRows(err) {
			return nil, ierr.NewError("invoice not found").
				WithHintf("invoice %s does not exist", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("failed to get invoice").
			Mark(ierr.ErrDatabase)
	}
	return &inv, nil
}

func (r *invoiceRepository) GetByNumber(ctx context.Context, number string) (*invoice.Invoice, error) {
	var inv invoice.Invoice
	query := `SELECT ` + invoiceColumns + ` FROM invoices
		WHERE invoice_number = $1 AND tenant_id = $2 AND status != $3`

	err := r.db.GetQuerier(ctx).GetContext(ctx, &inv, query, number, types.GetTenantID(ctx), types.StatusDeleted)
	if err != nil {
		if isNoRows(err) {
			return nil, ierr.NewError("invoice not found").
				WithHintf("invoice %s does not exist", number).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("failed to get invoice").
			Mark(ierr.ErrDatabase)
	}
	return &inv, nil
}

func (r *invoiceRepository) List(ctx context.Context, filter *types.DocumentFilter) ([]*invoice.Invoice, error) {
	where, args := documentWhere(types.GetTenantID(ctx), filter)
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE ` + where +
		` ORDER BY created_at DESC` + pagination(filter)

	invoices := []*invoice.Invoice{}
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &invoices, query, args...); err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to list invoices").
			Mark(ierr.ErrDatabase)
	}
	return invoices, nil
}

func (r *invoiceRepository) Count(ctx context.Context, filter *types.DocumentFilter) (int, error) {
	where, args := documentWhere(types.GetTenantID(ctx), filter)
	query := `SELECT COUNT(*) FROM invoices WHERE ` + where

	var count int
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &count, query, args...); err != nil {
		return 0, ierr.WithError(err).
			WithHint("failed to count invoices").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

// Update never touches the quotation_* snapshot columns; they are written
// once at creation and stay frozen afterwards.
func (r *invoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	inv.UpdatedAt = time.Now().UTC()
	inv.UpdatedBy = types.GetUserID(ctx)

	query := `
		UPDATE invoices SET
			project_name = :project_name,
			client_name = :client_name,
			invoice_date = :invoice_date,
			due_date = :due_date,
			description = :description,
			total_amount = :total_amount,
			payment_status = :payment_status,
			notes = :notes,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND tenant_id = :tenant_id`

	result, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, inv)
	if err != nil {
		return ierr.WithError(err).
			WithHint("failed to update invoice").
			Mark(ierr.ErrDatabase)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ierr.NewError("invoice not found").
			WithHintf("invoice %s does not exist", inv.ID).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *invoiceRepository) Delete(ctx context.Context, id string) error {
	return softDelete(ctx, r.db, "invoices", id)
}

func (r *invoiceRepository) HardDelete(ctx context.Context, id string) error {
	return hardDelete(ctx, r.db, "invoices", id)
}
