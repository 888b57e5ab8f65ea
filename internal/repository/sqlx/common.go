package sqlx

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	ierr "github.com/studioledger/studioledger/internal/errors"
	"github.com/studioledger/studioledger/internal/postgres"
	"github.com/studioledger/studioledger/internal/types"
)

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// documentWhere builds the WHERE clause shared by the document list queries:
// tenant scoping, soft-delete status, and exact project/client matching.
func documentWhere(tenantID string, filter *types.DocumentFilter) (string, []interface{}) {
	conds := []string{"tenant_id = $1"}
	args := []interface{}{tenantID}

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
	if filter != nil && filter.ClientName != nil {
		args = append(args, *filter.ClientName)
		conds = append(conds, fmt.Sprintf("client_name = $%d", len(args)))
	}

	return strings.Join(conds, " AND "), args
}

// pagination renders LIMIT/OFFSET for a filter, empty when unlimited.
func pagination(filter types.BaseFilter) string {
	if filter == nil || filter.IsUnlimited() {
		return ""
	}
	return fmt.Sprintf(" LIMIT %d OFFSET %d", filter.GetLimit(), filter.GetOffset())
}

// softDelete marks a row deleted, keeping it in the store. Snapshot columns
// on dependent rows are unaffected either way.
func softDelete(ctx context.Context, db *postgres.DB, table, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET status = $1, updated_at = $2, updated_by = $3
		WHERE id = $4 AND tenant_id = $5 AND status != $1`, table)

	result, err := db.GetQuerier(ctx).ExecContext(ctx, query,
		types.StatusDeleted, time.Now().UTC(), types.GetUserID(ctx), id, types.GetTenantID(ctx))
	if err != nil {
		return ierr.WithError(err).
			WithHintf("failed to delete from %s", table).
			Mark(ierr.ErrDatabase)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ierr.NewError("record not found").
			WithHintf("%s record %s does not exist", table, id).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

// hardDelete removes the row entirely.
func hardDelete(ctx context.Context, db *postgres.DB, table, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 AND tenant_id = $2`, table)

	result, err := db.GetQuerier(ctx).ExecContext(ctx, query, id, types.GetTenantID(ctx))
	if err != nil {
		return ierr.WithError(err).
			WithHintf("failed to hard delete from %s", table).
			Mark(ierr.ErrDatabase)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ierr.NewError("record not found").
			WithHintf("%s record %s does not exist", table, id).
			Mark(ierr.ErrNotFound)
	}
	return nil
}
