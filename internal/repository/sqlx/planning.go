package sqlx

import (
	"context"
	"time"

	"github.com/studioledger/studioledger/internal/domain/planning"
	ierr "github.com/studioledger/studioledger/internal/errors"
	"github.com/studioledger/studioledger/internal/logger"
	"github.com/studioledger/studioledger/internal/postgres"
	"github.com/studioledger/studioledger/internal/types"
)

type planningRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewPlanningRepository(db *postgres.DB, logger *logger.Logger) planning.Repository {
	return &planningRepository{db: db, logger: logger}
}

const planningColumns = `id, planning_number, project_name, client_name, event_date, crew_notes,
	description, total_amount, planning_status, notes,
	tenant_id, status, created_at, updated_at, created_by, updated_by`

func (r *planningRepository) Create(ctx context.Context, p *planning.Planning) error {
	query := `
		INSERT INTO plannings (` + planningColumns + `)
		VALUES (:id, :planning_number, :project_name, :client_name, :event_date, :crew_notes,
			:description, :total_amount, :planning_status, :notes,
			:tenant_id, :status, :created_at, :updated_at, :created_by, :updated_by)`

	if _, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, p); err != nil {
		return ierr.WithError(err).
			WithHint("failed to create planning").
			WithReportableDetails(map[string]any{"planning_number": p.PlanningNumber}).
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *planningRepository) Get(ctx context.Context, id string) (*planning.Planning, error) {
	var p planning.Planning
	query := `SELECT ` + planningColumns + ` FROM plannings
		WHERE id = $1 AND tenant_id = $2 AND status != $3`

	err := r.db.GetQuerier(ctx).GetContext(ctx, &p, query, id, types.GetTenantID(ctx), types.StatusDeleted)
	if err != nil {
		if isNoRows(err) {
			return nil, ierr.NewError("planning not found").
				WithHintf("planning %s does not exist", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("failed to get planning").
			Mark(ierr.ErrDatabase)
	}
	return &p, nil
}

func (r *planningRepository) GetByNumber(ctx context.Context, number string) (*planning.Planning, error) {
	var p planning.Planning
	query := `SELECT ` + planningColumns + ` FROM plannings
		WHERE planning_number = $1 AND tenant_id = $2 AND status != $3`

	err := r.db.GetQuerier(ctx).GetContext(ctx, &p, query, number, types.GetTenantID(ctx), types.StatusDeleted)
	if err != nil {
		if isNoRows(err) {
			return nil, ierr.NewError("planning not found").
				WithHintf("planning %s does not exist", number).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("failed to get planning").
			Mark(ierr.ErrDatabase)
	}
	return &p, nil
}

func (r *planningRepository) List(ctx context.Context, filter *types.DocumentFilter) ([]*planning.Planning, error) {
	where, args := documentWhere(types.GetTenantID(ctx), filter)
	query := `SELECT ` + planningColumns + ` FROM plannings WHERE ` + where +
		` ORDER BY created_at DESC` + pagination(filter)

	plannings := []*planning.Planning{}
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &plannings, query, args...); err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to list plannings").
			Mark(ierr.ErrDatabase)
	}
	return plannings, nil
}

func (r *planningRepository) Count(ctx context.Context, filter *types.DocumentFilter) (int, error) {
	where, args := documentWhere(types.GetTenantID(ctx), filter)
	query := `SELECT COUNT(*) FROM plannings WHERE ` + where

	var count int
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &count, query, args...); err != nil {
		return 0, ierr.WithError(err).
			WithHint("failed to count plannings").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (r *planningRepository) Update(ctx context.Context, p *planning.Planning) error {
	p.UpdatedAt = time.Now().UTC()
	p.UpdatedBy = types.GetUserID(ctx)

	query := `
		UPDATE plannings SET
			project_name = :project_name,
			client_name = :client_name,
			event_date = :event_date,
			crew_notes = :crew_notes,
			description = :description,
			total_amount = :total_amount,
			planning_status = :planning_status,
			notes = :notes,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND tenant_id = :tenant_id`

	result, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, p)
	if err != nil {
		return ierr.WithError(err).
			WithHint("failed to update planning").
			Mark(ierr.ErrDatabase)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ierr.NewError("planning not found").
			WithHintf("planning %s does not exist", p.ID).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *planningRepository) Delete(ctx context.Context, id string) error {
	return softDelete(ctx, r.db, "plannings", id)
}

func (r *planningRepository) HardDelete(ctx context.Context, id string) error {
	return hardDelete(ctx, r.db, "plannings", id)
}
