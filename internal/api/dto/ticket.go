package dto

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/studioledger/studioledger/internal/domain/ticket"
	"github.com/studioledger/studioledger/internal/types"
	"github.com/studioledger/studioledger/internal/validator"
)

type CreateTicketRequest struct {
	Kind        types.TicketKind `json:"kind" validate:"required"`
	ProjectName string           `json:"project_name" validate:"required"`
	ClientName  string           `json:"client_name" validate:"required"`
	TicketDate  time.Time        `json:"ticket_date" validate:"required"`
	Description string           `json:"description,omitempty"`
	TotalAmount decimal.Decimal  `json:"total_amount" validate:"required"`
	Notes       string           `json:"notes,omitempty"`
}

func (r *CreateTicketRequest) Validate() error {
	if err := r.Kind.Validate(); err != nil {
		return err
	}
	return validator.ValidateRequest(r)
}

func (r *CreateTicketRequest) ToTicket(ctx context.Context) *ticket.Ticket {
	return &ticket.Ticket{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_TICKET),
		Kind:         r.Kind,
		ProjectName:  r.ProjectName,
		ClientName:   r.ClientName,
		TicketDate:   r.TicketDate,
		Description:  r.Description,
		TotalAmount:  r.TotalAmount,
		TicketStatus: types.TicketStatusOpen,
		Notes:        r.Notes,
		BaseModel:    types.GetDefaultBaseModel(ctx),
	}
}

type UpdateTicketRequest struct {
	ProjectName *string             `json:"project_name,omitempty"`
	ClientName  *string             `json:"client_name,omitempty"`
	TicketDate  *time.Time          `json:"ticket_date,omitempty"`
	Description *string             `json:"description,omitempty"`
	TotalAmount *decimal.Decimal    `json:"total_amount,omitempty"`
	Status      *types.TicketStatus `json:"ticket_status,omitempty"`
	Notes       *string             `json:"notes,omitempty"`
}

func (r *UpdateTicketRequest) Validate() error {
	if r.Status != nil {
		if err := r.Status.Validate(); err != nil {
			return err
		}
	}
	return validator.ValidateRequest(r)
}

// Apply copies the supplied fields onto the ticket. Kind is fixed at
// creation and cannot change.
func (r *UpdateTicketRequest) Apply(t *ticket.Ticket) {
	if r.ProjectName != nil {
		t.ProjectName = *r.ProjectName
	}
	if r.ClientName != nil {
		t.ClientName = *r.ClientName
	}
	if r.TicketDate != nil {
		t.TicketDate = *r.TicketDate
	}
	if r.Description != nil {
		t.Description = *r.Description
	}
	if r.TotalAmount != nil {
		t.TotalAmount = *r.TotalAmount
	}
	if r.Status != nil {
		t.TicketStatus = *r.Status
	}
	if r.Notes != nil {
		t.Notes = *r.Notes
	}
}

type TicketResponse struct {
	*ticket.Ticket
}

type ListTicketsResponse struct {
	Items      []*TicketResponse        `json:"items"`
	Pagination types.PaginationResponse `json:"pagination"`
}
