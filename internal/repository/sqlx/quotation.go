package sqlx

import (
	"context"
	"time"

	"github.com/studioledger/studioledger/internal/domain/quotation"
	ierr "github.com/studioledger/studioledger/internal/errors"
	"github.com/studioledger/studioledger/internal/logger"
	"github.com/studioledger/studioledger/internal/postgres"
	"github.com/studioledger/studioledger/internal/types"
)

type quotationRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewQuotationRepository(db *postgres.DB, logger *logger.Logger) quotation.Repository {
	return &quotationRepository{db: db, logger: logger}
}

const quotationColumns = `id, quotation_number, project_name, client_name, quotation_date,
	valid_until, description, total_amount, quotation_status, notes,
	tenant_id, status, created_at, updated_at, created_by, updated_by`

func (r *quotationRepository) Create(ctx context.Context, q *quotation.Quotation) error {
	query := `
		INSERT INTO quotations (` + quotationColumns + `)
		VALUES (:id, :quotation_number, :project_name, :client_name, :quotation_date,
			:valid_until, :description, :total_amount, :quotation_status, :notes,
			:tenant_id, :status, :created_at, :updated_at, :created_by, :updated_by)`

	if _, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, q); err != nil {
		return ierr.WithError(err).
			WithHint("failed to create quotation").
			WithReportableDetails(map[string]any{"quotation_number": q.QuotationNumber}).
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *quotationRepository) Get(ctx context.Context, id string) (*quotation.Quotation, error) {
	var q quotation.Quotation
	query := `SELECT ` + quotationColumns + ` FROM quotations
		WHERE id = $1 AND tenant_id = $2 AND status != $3`

	err := r.db.GetQuerier(ctx).GetContext(ctx, &q, query, id, types.GetTenantID(ctx), types.StatusDeleted)
	if err != nil {
		if isNoRows(err) {
			return nil, ierr.NewError("quotation not found").
				WithHintf("quotation %s does not exist", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("failed to get quotation").
			Mark(ierr.ErrDatabase)
	}
	return &q, nil
}

func (r *quotationRepository) GetByNumber(ctx context.Context, number string) (*quotation.Quotation, error) {
	var q quotation.Quotation
	query := `SELECT ` + quotationColumns + ` FROM quotations
		WHERE quotation_number = $1 AND tenant_id = $2 AND status != $3`

	err := r.db.GetQuerier(ctx).GetContext(ctx, &q, query, number, types.GetTenantID(ctx), types.StatusDeleted)
	if err != nil {
		if isNoRows(err) {
			return nil, ierr.NewError("quotation not found").
				WithHintf("quotation %s does not exist", number).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("failed to get quotation").
			Mark(ierr.ErrDatabase)
	}
	return &q, nil
}

func (r *quotationRepository) List(ctx context.Context, filter *types.DocumentFilter) ([]*quotation.Quotation, error) {
	where, args := documentWhere(types.GetTenantID(ctx), filter)
	query := `SELECT ` + quotationColumns + ` FROM quotations WHERE ` + where +
		` ORDER BY created_at DESC` + pagination(filter)

	quotations := []*quotation.Quotation{}
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &quotations, query, args...); err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to list quotations").
			Mark(ierr.ErrDatabase)
	}
	return quotations, nil
}

func (r *quotationRepository) Count(ctx context.Context, filter *types.DocumentFilter) (int, error) {
	where, args := documentWhere(types.GetTenantID(ctx), filter)
	query := `SELECT COUNT(*) FROM quotations WHERE ` + where

	var count int
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &count, query, args...); err != nil {
		return 0, ierr.WithError(err).
			WithHint("failed to count quotations").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (r *quotationRepository) Update(ctx context.Context, q *quotation.Quotation) error {
	q.UpdatedAt = time.Now().UTC()
	q.UpdatedBy = types.GetUserID(ctx)

	query := `
		UPDATE quotations SET
			project_name = :project_name,
			client_name = :client_name,
			quotation_date = :quotation_date,
			valid_until = :valid_until,
			description = :description,
			total_amount = :total_amount,
			quotation_status = :quotation_status,
			notes = :notes,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND tenant_id = :tenant_id`

	result, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, q)
	if err != nil {
		return ierr.WithError(err).
			WithHint("failed to update quotation").
			Mark(ierr.ErrDatabase)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ierr.NewError("quotation not found").
			WithHintf("quotation %s does not exist", q.ID).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *quotationRepository) Delete(ctx context.Context, id string) error {
	return softDelete(ctx, r.db, "quotations", id)
}

func (r *quotationRepository) HardDelete(ctx context.Context, id string) error {
	return hardDelete(ctx, r.db, "quotations", id)
}
