package dto

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/studioledger/studioledger/internal/domain/invoice"
	"github.com/studioledger/studioledger/internal/types"
	"github.com/studioledger/studioledger/internal/validator"
)

type CreateInvoiceRequest struct {
	ProjectName string          `json:"project_name" validate:"required"`
	ClientName  string          `json:"client_name" validate:"required"`
	InvoiceDate time.Time       `json:"invoice_date" validate:"required"`
	DueDate     *time.Time      `json:"due_date,omitempty"`
	Description string          `json:"description,omitempty"`
	TotalAmount decimal.Decimal `json:"total_amount" validate:"required"`
	Notes       string          `json:"notes,omitempty"`
}

func (r *CreateInvoiceRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// ToInvoice builds a draft invoice; business number and any quotation
// snapshot are assigned by the caller.
func (r *CreateInvoiceRequest) ToInvoice(ctx context.Context) *invoice.Invoice {
	return &invoice.Invoice{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE),
		ProjectName:   r.ProjectName,
		ClientName:    r.ClientName,
		InvoiceDate:   r.InvoiceDate,
		DueDate:       r.DueDate,
		Description:   r.Description,
		TotalAmount:   r.TotalAmount,
		PaymentStatus: types.InvoicePaymentStatusDraft,
		Notes:         r.Notes,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}
}

// CreateInvoiceFromQuotationRequest generates an invoice from an accepted
// quotation. Fields left empty default from the quotation snapshot.
type CreateInvoiceFromQuotationRequest struct {
	QuotationID string     `json:"quotation_id" validate:"required"`
	InvoiceDate *time.Time `json:"invoice_date,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Description string     `json:"description,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

func (r *CreateInvoiceFromQuotationRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type UpdateInvoiceRequest struct {
	ProjectName *string                     `json:"project_name,omitempty"`
	ClientName  *string                     `json:"client_name,omitempty"`
	InvoiceDate *time.Time                  `json:"invoice_date,omitempty"`
	DueDate     *time.Time                  `json:"due_date,omitempty"`
	Description *string                     `json:"description,omitempty"`
	TotalAmount *decimal.Decimal            `json:"total_amount,omitempty"`
	Status      *types.InvoicePaymentStatus `json:"payment_status,omitempty"`
	Notes       *string                     `json:"notes,omitempty"`
}

func (r *UpdateInvoiceRequest) Validate() error {
	if r.Status != nil {
		if err := r.Status.Validate(); err != nil {
			return err
		}
	}
	return validator.ValidateRequest(r)
}

// Apply copies the supplied fields onto the invoice. Snapshot columns are
// not reachable from here on purpose.
func (r *UpdateInvoiceRequest) Apply(inv *invoice.Invoice) {
	if r.ProjectName != nil {
		inv.ProjectName = *r.ProjectName
	}
	if r.ClientName != nil {
		inv.ClientName = *r.ClientName
	}
	if r.InvoiceDate != nil {
		inv.InvoiceDate = *r.InvoiceDate
	}
	if r.DueDate != nil {
		inv.DueDate = r.DueDate
	}
	if r.Description != nil {
		inv.Description = *r.Description
	}
	if r.TotalAmount != nil {
		inv.TotalAmount = *r.TotalAmount
	}
	if r.Status != nil {
		inv.PaymentStatus = *r.Status
	}
	if r.Notes != nil {
		inv.Notes = *r.Notes
	}
}

type InvoiceResponse struct {
	*invoice.Invoice
}

type ListInvoicesResponse struct {
	Items      []*InvoiceResponse       `json:"items"`
	Pagination types.PaginationResponse `json:"pagination"`
}
