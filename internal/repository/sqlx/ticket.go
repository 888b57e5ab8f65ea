package sqlx

import (
	"context"
	"fmt"
	"time"

	"github.com/studioledger/studioledger/internal/domain/ticket"
	ierr "github.com/studioledger/studioledger/internal/errors"
	"github.com/studioledger/studioledger/internal/logger"
	"github.com/studioledger/studioledger/internal/postgres"
	"github.com/studioledger/studioledger/internal/types"
)

type ticketRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewTicketRepository(db *postgres.DB, logger *logger.Logger) ticket.Repository {
	return &ticketRepository{db: db, logger: logger}
}

const ticketColumns = `id, ticket_number, kind, project_name, client_name, ticket_date,
	description, total_amount, ticket_status, notes,
	tenant_id, status, created_at, updated_at, created_by, updated_by`

func (r *ticketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	query := `
		INSERT INTO tickets (` + ticketColumns + `)
		VALUES (:id, :ticket_number, :kind, :project_name, :client_name, :ticket_date,
			:description, :total_amount, :ticket_status, :notes,
			:tenant_id, :status, :created_at, :updated_at, :created_by, :updated_by)`

	if _, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, t); err != nil {
		return ierr.WithError(err).
			WithHint("failed to create ticket").
			WithReportableDetails(map[string]any{"ticket_number": t.TicketNumber}).
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *ticketRepository) Get(ctx context.Context, id string) (*ticket.Ticket, error) {
	var t ticket.Ticket
	query := `SELECT ` + ticketColumns + ` FROM tickets
		WHERE id = $1 AND tenant_id = $2 AND status != $3`

	err := r.db.GetQuerier(ctx).GetContext(ctx, &t, query, id, types.GetTenantID(ctx), types.StatusDeleted)
	if err != nil {
		if isNoRows(err) {
			return nil, ierr.NewError("ticket not found").
				WithHintf("ticket %s does not exist", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("failed to get ticket").
			Mark(ierr.ErrDatabase)
	}
	return &t, nil
}

func (r *ticketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	var t ticket.Ticket
	query := `SELECT ` + ticketColumns + ` FROM tickets
		WHERE ticket_number = $1 AND tenant_id = $2 AND status != $3`

	err := r.db.GetQuerier(ctx).GetContext(ctx, &t, query, number, types.GetTenantID(ctx), types.StatusDeleted)
	if err != nil {
		if isNoRows(err) {
			return nil, ierr.NewError("ticket not found").
				WithHintf("ticket %s does not exist", number).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("failed to get ticket").
			Mark(ierr.ErrDatabase)
	}
	return &t, nil
}

func (r *ticketRepository) ticketWhere(ctx context.Context, filter *ticket.Filter) (string, []interface{}) {
	var docFilter *types.DocumentFilter
	if filter != nil {
		docFilter = &filter.DocumentFilter
	}
	where, args := documentWhere(types.GetTenantID(ctx), docFilter)
	if filter != nil && filter.Kind != nil {
		args = append(args, *filter.Kind)
		where += fmt.Sprintf(" AND kind = $%d", len(args))
	}
	return where, args
}

func (r *ticketRepository) List(ctx context.Context, filter *ticket.Filter) ([]*ticket.Ticket, error) {
	where, args := r.ticketWhere(ctx, filter)
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE ` + where +
		` ORDER BY created_at DESC`
	if filter != nil {
		query += pagination(filter)
	}

	tickets := []*ticket.Ticket{}
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &tickets, query, args...); err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to list tickets").
			Mark(ierr.ErrDatabase)
	}
	return tickets, nil
}

func (r *ticketRepository) Count(ctx context.Context, filter *ticket.Filter) (int, error) {
	where, args := r.ticketWhere(ctx, filter)
	query := `SELECT COUNT(*) FROM tickets WHERE ` + where

	var count int
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &count, query, args...); err != nil {
		return 0, ierr.WithError(err).
			WithHint("failed to count tickets").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (r *ticketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	t.UpdatedAt = time.Now().UTC()
	t.UpdatedBy = types.GetUserID(ctx)

	query := `
		UPDATE tickets SET
			project_name = :project_name,
			client_name = :client_name,
			ticket_date = :ticket_date,
			description = :description,
			total_amount = :total_amount,
			ticket_status = :ticket_status,
			notes = :notes,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND tenant_id = :tenant_id`

	result, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, t)
	if err != nil {
		return ierr.WithError(err).
			WithHint("failed to update ticket").
			Mark(ierr.ErrDatabase)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ierr.NewError("ticket not found").
			WithHintf("ticket %s does not exist", t.ID).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *ticketRepository) Delete(ctx context.Context, id string) error {
	return softDelete(ctx, r.db, "tickets", id)
}

func (r *ticketRepository) HardDelete(ctx context.Context, id string) error {
	return hardDelete(ctx, r.db, "tickets", id)
}
