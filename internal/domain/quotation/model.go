package quotation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/studioledger/studioledger/internal/types"
)

// Quotation represents the quotation domain model
type Quotation struct {
	ID              string                `db:"id" json:"id"`
	QuotationNumber string                `db:"quotation_number" json:"quotation_number"`
	ProjectName     string                `db:"project_name" json:"project_name"`
	ClientName      string                `db:"client_name" json:"client_name"`
	QuotationDate   time.Time             `db:"quotation_date" json:"quotation_date"`
	ValidUntil      *time.Time            `db:"valid_until" json:"valid_until,omitempty"`
	Description     string                `db:"description" json:"description,omitempty"`
	TotalAmount     decimal.Decimal       `db:"total_amount" json:"total_amount"`
	QuotationStatus types.QuotationStatus `db:"quotation_status" json:"quotation_status"`
	Notes           string                `db:"notes" json:"notes,omitempty"`
	types.BaseModel
}

// IsAccepted reports whether the quotation can source an invoice.
func (q *Quotation) IsAccepted() bool {
	return q.QuotationStatus == types.QuotationStatusAccepted
}
