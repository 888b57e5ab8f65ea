package dto

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/studioledger/studioledger/internal/domain/quotation"
	"github.com/studioledger/studioledger/internal/types"
	"github.com/studioledger/studioledger/internal/validator"
)

type CreateQuotationRequest struct {
	ProjectName   string          `json:"project_name" validate:"required"`
	ClientName    string          `json:"client_name" validate:"required"`
	QuotationDate time.Time       `json:"quotation_date" validate:"required"`
	ValidUntil    *time.Time      `json:"valid_until,omitempty"`
	Description   string          `json:"description,omitempty"`
	TotalAmount   decimal.Decimal `json:"total_amount" validate:"required"`
	Notes         string          `json:"notes,omitempty"`
}

func (r *CreateQuotationRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// ToQuotation builds a draft quotation; the business number is assigned by
// the caller after allocation.
func (r *CreateQuotationRequest) ToQuotation(ctx context.Context) *quotation.Quotation {
	return &quotation.Quotation{
		ID:              types.GenerateUUIDWithPrefix(types.UUID_PREFIX_QUOTATION),
		ProjectName:     r.ProjectName,
		ClientName:      r.ClientName,
		QuotationDate:   r.QuotationDate,
		ValidUntil:      r.ValidUntil,
		Description:     r.Description,
		TotalAmount:     r.TotalAmount,
		QuotationStatus: types.QuotationStatusDraft,
		Notes:           r.Notes,
		BaseModel:       types.GetDefaultBaseModel(ctx),
	}
}

type UpdateQuotationRequest struct {
	ProjectName   *string          `json:"project_name,omitempty"`
	ClientName    *string          `json:"client_name,omitempty"`
	QuotationDate *time.Time       `json:"quotation_date,omitempty"`
	ValidUntil    *time.Time       `json:"valid_until,omitempty"`
	Description   *string          `json:"description,omitempty"`
	TotalAmount   *decimal.Decimal `json:"total_amount,omitempty"`
	Status        *types.QuotationStatus `json:"quotation_status,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
}

func (r *UpdateQuotationRequest) Validate() error {
	if r.Status != nil {
		if err := r.Status.Validate(); err != nil {
			return err
		}
	}
	return validator.ValidateRequest(r)
}

// Apply copies the supplied fields onto the quotation
func (r *UpdateQuotationRequest) Apply(q *quotation.Quotation) {
	if r.ProjectName != nil {
		q.ProjectName = *r.ProjectName
	}
	if r.ClientName != nil {
		q.ClientName = *r.ClientName
	}
	if r.QuotationDate != nil {
		q.QuotationDate = *r.QuotationDate
	}
	if r.ValidUntil != nil {
		q.ValidUntil = r.ValidUntil
	}
	if r.Description != nil {
		q.Description = *r.Description
	}
	if r.TotalAmount != nil {
		q.TotalAmount = *r.TotalAmount
	}
	if r.Status != nil {
		q.QuotationStatus = *r.Status
	}
	if r.Notes != nil {
		q.Notes = *r.Notes
	}
}

type QuotationResponse struct {
	*quotation.Quotation
}

type ListQuotationsResponse struct {
	Items      []*QuotationResponse     `json:"items"`
	Pagination types.PaginationResponse `json:"pagination"`
}
