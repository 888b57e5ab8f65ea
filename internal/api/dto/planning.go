package dto

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/studioledger/studioledger/internal/domain/planning"
	"github.com/studioledger/studioledger/internal/types"
	"github.com/studioledger/studioledger/internal/validator"
)

type CreatePlanningRequest struct {
	ProjectName string          `json:"project_name" validate:"required"`
	ClientName  string          `json:"client_name" validate:"required"`
	EventDate   time.Time       `json:"event_date" validate:"required"`
	CrewNotes   string          `json:"crew_notes,omitempty"`
	Description string          `json:"description,omitempty"`
	TotalAmount decimal.Decimal `json:"total_amount" validate:"required"`
	Notes       string          `json:"notes,omitempty"`
}

func (r *CreatePlanningRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreatePlanningRequest) ToPlanning(ctx context.Context) *planning.Planning {
	return &planning.Planning{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PLANNING),
		ProjectName:    r.ProjectName,
		ClientName:     r.ClientName,
		EventDate:      r.EventDate,
		CrewNotes:      r.CrewNotes,
		Description:    r.Description,
		TotalAmount:    r.TotalAmount,
		PlanningStatus: types.PlanningStatusDraft,
		Notes:          r.Notes,
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}
}

type UpdatePlanningRequest struct {
	ProjectName *string               `json:"project_name,omitempty"`
	ClientName  *string               `json:"client_name,omitempty"`
	EventDate   *time.Time            `json:"event_date,omitempty"`
	CrewNotes   *string               `json:"crew_notes,omitempty"`
	Description *string               `json:"description,omitempty"`
	TotalAmount *decimal.Decimal      `json:"total_amount,omitempty"`
	Status      *types.PlanningStatus `json:"planning_status,omitempty"`
	Notes       *string               `json:"notes,omitempty"`
}

func (r *UpdatePlanningRequest) Validate() error {
	if r.Status != nil {
		if err := r.Status.Validate(); err != nil {
			return err
		}
	}
	return validator.ValidateRequest(r)
}

func (r *UpdatePlanningRequest) Apply(p *planning.Planning) {
	if r.ProjectName != nil {
		p.ProjectName = *r.ProjectName
	}
	if r.ClientName != nil {
		p.ClientName = *r.ClientName
	}
	if r.EventDate != nil {
		p.EventDate = *r.EventDate
	}
	if r.CrewNotes != nil {
		p.CrewNotes = *r.CrewNotes
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.TotalAmount != nil {
		p.TotalAmount = *r.TotalAmount
	}
	if r.Status != nil {
		p.PlanningStatus = *r.Status
	}
	if r.Notes != nil {
		p.Notes = *r.Notes
	}
}

type PlanningResponse struct {
	*planning.Planning
}

type ListPlanningsResponse struct {
	Items      []*PlanningResponse      `json:"items"`
	Pagination types.PaginationResponse `json:"pagination"`
}
