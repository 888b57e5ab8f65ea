package expense

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/studioledger/studioledger/internal/types"
)

// SourceType names the document an expense was generated from, if any.
type SourceType string

const (
	SourceTypeNone     SourceType = "none"
	SourceTypeInvoice  SourceType = "invoice"
	SourceTypePlanning SourceType = "planning"
)

// Expense represents the expense domain model.
//
// When generated from an invoice or a planning, the invoice_* or planning_*
// columns hold a snapshot captured at generation time. The source number is
// a soft reference that may dangle after the source is deleted; the snapshot
// stays authoritative for display and reporting either way.
type Expense struct {
	ID            string          `db:"id" json:"id"`
	ExpenseNumber string          `db:"expense_number" json:"expense_number"`
	ProjectName   string          `db:"project_name" json:"project_name"`
	ExpenseDate   time.Time       `db:"expense_date" json:"expense_date"`
	Category      string          `db:"category" json:"category,omitempty"`
	Description   string          `db:"description" json:"description,omitempty"`
	TotalAmount   decimal.Decimal `db:"total_amount" json:"total_amount"`
	Notes         string          `db:"notes" json:"notes,omitempty"`
	SourceType    SourceType      `db:"source_type" json:"source_type"`

	// Snapshot of the source invoice
	InvoiceNumber      *string          `db:"invoice_number" json:"invoice_number,omitempty"`
	InvoiceTotalAmount *decimal.Decimal `db:"invoice_total_amount" json:"invoice_total_amount,omitempty"`
	InvoiceDate        *time.Time       `db:"invoice_date" json:"invoice_date,omitempty"`
	InvoiceClientName  *string          `db:"invoice_client_name" json:"invoice_client_name,omitempty"`

	// Snapshot of the source planning
	PlanningNumber     *string          `db:"planning_number" json:"planning_number,omitempty"`
	PlanningAmount     *decimal.Decimal `db:"planning_amount" json:"planning_amount,omitempty"`
	PlanningEventDate  *time.Time       `db:"planning_event_date" json:"planning_event_date,omitempty"`
	PlanningClientName *string          `db:"planning_client_name" json:"planning_client_name,omitempty"`

	types.BaseModel
}

// InvoiceSnapshot holds the invoice fields copied onto an expense at
// generation time.
type InvoiceSnapshot struct {
	InvoiceNumber string
	TotalAmount   decimal.Decimal
	InvoiceDate   time.Time
	ClientName    string
}

// PlanningSnapshot holds the planning fields copied onto an expense at
// generation time.
type PlanningSnapshot struct {
	PlanningNumber string
	TotalAmount    decimal.Decimal
	EventDate      time.Time
	ClientName     string
}

// ApplyInvoiceSnapshot stores the captured invoice fields on the expense.
func (e *Expense) ApplyInvoiceSnapshot(s InvoiceSnapshot) {
	number := s.InvoiceNumber
	amount := s.TotalAmount
	date := s.InvoiceDate
	client := s.ClientName
	e.SourceType = SourceTypeInvoice
	e.InvoiceNumber = &number
	e.InvoiceTotalAmount = &amount
	e.InvoiceDate = &date
	e.InvoiceClientName = &client
}

// ApplyPlanningSnapshot stores the captured planning fields on the expense.
func (e *Expense) ApplyPlanningSnapshot(s PlanningSnapshot) {
	number := s.PlanningNumber
	amount := s.TotalAmount
	date := s.EventDate
	client := s.ClientName
	e.SourceType = SourceTypePlanning
	e.PlanningNumber = &number
	e.PlanningAmount = &amount
	e.PlanningEventDate = &date
	e.PlanningClientName = &client
}
