package sqlx

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/studioledger/studioledger/internal/domain/tracker"
	ierr "github.com/studioledger/studioledger/internal/errors"
	"github.com/studioledger/studioledger/internal/logger"
	"github.com/studioledger/studioledger/internal/postgres"
	"github.com/studioledger/studioledger/internal/types"
)

type trackerRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewTrackerRepository(db *postgres.DB, logger *logger.Logger) tracker.Repository {
	return &trackerRepository{db: db, logger: logger}
}

const trackerColumns = `id, project_name, date, total_amount, invoice_number, expense_number,
	product_amounts, expense, notes, workflow_status,
	tenant_id, status, created_at, updated_at, created_by, updated_by`

func (r *trackerRepository) Create(ctx context.Context, t *tracker.Tracker) error {
	query := `
		INSERT INTO trackers (` + trackerColumns + `)
		VALUES (:id, :project_name, :date, :total_amount, :invoice_number, :expense_number,
			:product_amounts, :expense, :notes, :workflow_status,
			:tenant_id, :status, :created_at, :updated_at, :created_by, :updated_by)`

	if _, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, t); err != nil {
		return ierr.WithError(err).
			WithHint("failed to create tracker").
			WithReportableDetails(map[string]any{"project_name": t.ProjectName}).
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *trackerRepository) Get(ctx context.Context, id string) (*tracker.Tracker, error) {
	var t tracker.Tracker
	query := `SELECT ` + trackerColumns + ` FROM trackers
		WHERE id = $1 AND tenant_id = $2 AND status != $3`

	err := r.db.GetQuerier(ctx).GetContext(ctx, &t, query, id, types.GetTenantID(ctx), types.StatusDeleted)
	if err != nil {
		if isNoRows(err) {
			return nil, ierr.NewError("tracker not found").
				WithHintf("tracker %s does not exist", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("failed to get tracker").
			Mark(ierr.ErrDatabase)
	}
	return &t, nil
}

// GetByProjectName is the merge-key lookup: exact string match on the
// project name, deleted rows excluded.
func (r *trackerRepository) GetByProjectName(ctx context.Context, projectName string) (*tracker.Tracker, error) {
	var t tracker.Tracker
	query := `SELECT ` + trackerColumns + ` FROM trackers
		WHERE project_name = $1 AND tenant_id = $2 AND status != $3`

	err := r.db.GetQuerier(ctx).GetContext(ctx, &t, query, projectName, types.GetTenantID(ctx), types.StatusDeleted)
	if err != nil {
		if isNoRows(err) {
			return nil, ierr.NewError("tracker not found").
				WithHintf("no tracker for project %s", projectName).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("failed to get tracker").
			Mark(ierr.ErrDatabase)
	}
	return &t, nil
}

// UpdateDerived is a single UPDATE over the derived columns only, the
// field-whitelist half of the manual upsert. User columns are absent from
// the statement, so they cannot be clobbered even by concurrent syncs.
func (r *trackerRepository) UpdateDerived(ctx context.Context, id string, d tracker.Derived) error {
	sets := []string{
		"date = $1",
		"total_amount = $2",
		"updated_at = $3",
		"updated_by = $4",
	}
	args := []interface{}{d.Date, d.TotalAmount, time.Now().UTC(), types.GetUserID(ctx)}

	if d.InvoiceNumber != nil {
		args = append(args, *d.InvoiceNumber)
		sets = append(sets, fmt.Sprintf("invoice_number = $%d", len(args)))
	}
	if d.ExpenseNumber != nil {
		args = append(args, *d.ExpenseNumber)
		sets = append(sets, fmt.Sprintf("expense_number = $%d", len(args)))
	}

	args = append(args, id)
	idPos := len(args)
	args = append(args, types.GetTenantID(ctx))
	tenantPos := len(args)
	args = append(args, types.StatusDeleted)
	statusPos := len(args)

	query := fmt.Sprintf(`UPDATE trackers SET %s WHERE id = $%d AND tenant_id = $%d AND status != $%d`,
		strings.Join(sets, ", "), idPos, tenantPos, statusPos)

	result, err := r.db.GetQuerier(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return ierr.WithError(err).
			WithHint("failed to update tracker derived fields").
			Mark(ierr.ErrDatabase)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ierr.NewError("tracker not found").
			WithHintf("tracker %s does not exist", id).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

// UpdateUserFields patches the user-owned columns only.
func (r *trackerRepository) UpdateUserFields(ctx context.Context, id string, p tracker.UserFieldsPatch) error {
	sets := []string{"updated_at = $1", "updated_by = $2"}
	args := []interface{}{time.Now().UTC(), types.GetUserID(ctx)}

	if p.ProductAmounts != nil {
		args = append(args, *p.ProductAmounts)
		sets = append(sets, fmt.Sprintf("product_amounts = $%d", len(args)))
	}
	if p.Expense != nil {
		args = append(args, *p.Expense)
		sets = append(sets, fmt.Sprintf("expense = $%d", len(args)))
	}
	if p.Notes != nil {
		args = append(args, *p.Notes)
		sets = append(sets, fmt.Sprintf("notes = $%d", len(args)))
	}
	if p.WorkflowStatus != nil {
		args = append(args, *p.WorkflowStatus)
		sets = append(sets, fmt.Sprintf("workflow_status = $%d", len(args)))
	}

	args = append(args, id)
	idPos := len(args)
	args = append(args, types.GetTenantID(ctx))
	tenantPos := len(args)
	args = append(args, types.StatusDeleted)
	statusPos := len(args)

	query := fmt.Sprintf(`UPDATE trackers SET %s WHERE id = $%d AND tenant_id = $%d AND status != $%d`,
		strings.Join(sets, ", "), idPos, tenantPos, statusPos)

	result, err := r.db.GetQuerier(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return ierr.WithError(err).
			WithHint("failed to update tracker user fields").
			Mark(ierr.ErrDatabase)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ierr.NewError("tracker not found").
			WithHintf("tracker %s does not exist", id).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *trackerRepository) trackerWhere(ctx context.Context, filter *tracker.Filter) (string, []interface{}) {
	conds := []string{"tenant_id = $1"}
	args := []interface{}{types.GetTenantID(ctx)}

	status := string(types.StatusPublished)
	if filter != nil {
		status = filter.GetStatus()
	}
	args = append(args, status)
	conds = append(conds, fmt.Sprintf("status = $%d", len(args)))

	if filter != nil && filter.ProjectName != nil {
		args = append(args, *filter.ProjectName)
		conds = append(conds, fmt.Sprintf("project_name = $%d", len(args)))
	}

	return strings.Join(conds, " AND "), args
}

func (r *trackerRepository) List(ctx context.Context, filter *tracker.Filter) ([]*tracker.Tracker, error) {
	where, args := r.trackerWhere(ctx, filter)
	query := `SELECT ` + trackerColumns + ` FROM trackers WHERE ` + where +
		` ORDER BY created_at DESC`
	if filter != nil {
		query += pagination(filter)
	}

	trackers := []*tracker.Tracker{}
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &trackers, query, args...); err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to list trackers").
			Mark(ierr.ErrDatabase)
	}
	return trackers, nil
}

func (r *trackerRepository) Count(ctx context.Context, filter *tracker.Filter) (int, error) {
	where, args := r.trackerWhere(ctx, filter)
	query := `SELECT COUNT(*) FROM trackers WHERE ` + where

	var count int
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &count, query, args...); err != nil {
		return 0, ierr.WithError(err).
			WithHint("failed to count trackers").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (r *trackerRepository) Delete(ctx context.Context, id string) error {
	return softDelete(ctx, r.db, "trackers", id)
}
