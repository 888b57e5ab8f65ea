package invoice

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/studioledger/studioledger/internal/types"
)

// Invoice represents the invoice domain model.
//
// The quotation_* columns are a snapshot captured when the invoice was
// generated from a quotation. They belong to the invoice from that point on:
// quotation_number is a soft reference that may dangle once the quotation is
// deleted, and the copied values are never re-derived from the source.
type Invoice struct {
	ID            string                     `db:"id" json:"id"`
	InvoiceNumber string                     `db:"invoice_number" json:"invoice_number"`
	ProjectName   string                     `db:"project_name" json:"project_name"`
	ClientName    string                     `db:"client_name" json:"client_name"`
	InvoiceDate   time.Time                  `db:"invoice_date" json:"invoice_date"`
	DueDate       *time.Time                 `db:"due_date" json:"due_date,omitempty"`
	Description   string                     `db:"description" json:"description,omitempty"`
	TotalAmount   decimal.Decimal            `db:"total_amount" json:"total_amount"`
	PaymentStatus types.InvoicePaymentStatus `db:"payment_status" json:"payment_status"`
	Notes         string                     `db:"notes" json:"notes,omitempty"`

	// Snapshot of the source quotation, when generated from one
	QuotationNumber      *string          `db:"quotation_number" json:"quotation_number,omitempty"`
	QuotationTotalAmount *decimal.Decimal `db:"quotation_total_amount" json:"quotation_total_amount,omitempty"`
	QuotationDate        *time.Time       `db:"quotation_date" json:"quotation_date,omitempty"`
	QuotationClientName  *string          `db:"quotation_client_name" json:"quotation_client_name,omitempty"`

	types.BaseModel
}

// QuotationSnapshot holds the quotation fields copied onto an invoice at
// generation time.
type QuotationSnapshot struct {
	QuotationNumber string
	TotalAmount     decimal.Decimal
	QuotationDate   time.Time
	ClientName      string
}

// ApplySnapshot stores the captured quotation fields on the invoice.
func (i *Invoice) ApplySnapshot(s QuotationSnapshot) {
	number := s.QuotationNumber
	amount := s.TotalAmount
	date := s.QuotationDate
	client := s.ClientName
	i.QuotationNumber = &number
	i.QuotationTotalAmount = &amount
	i.QuotationDate = &date
	i.QuotationClientName = &client
}

// IsPaid reports whether the invoice can source an expense.
func (i *Invoice) IsPaid() bool {
	return i.PaymentStatus == types.InvoicePaymentStatusPaid
}
