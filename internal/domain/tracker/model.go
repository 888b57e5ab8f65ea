package tracker

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	ierr "github.com/studioledger/studioledger/internal/errors"
	"github.com/studioledger/studioledger/internal/types"
)

// ProductAmounts maps a product name to its user-entered amount. Stored as
// JSONB on the tracker row.
type ProductAmounts map[string]decimal.Decimal

// Value implements driver.Valuer
func (p ProductAmounts) Value() (driver.Value, error) {
	if p == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(p)
}

// Scan implements sql.Scanner
func (p *ProductAmounts) Scan(src interface{}) error {
	if src == nil {
		*p = ProductAmounts{}
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return ierr.NewError("unsupported product amounts column type").
			Mark(ierr.ErrDatabase)
	}
	return json.Unmarshal(data, p)
}

// Tracker is the per-project production tracker row. One row per exact
// project name combines fields derived from source documents with fields a
// user edits directly.
//
// Derived fields (Date, TotalAmount, InvoiceNumber, ExpenseNumber) are
// overwritten on every synchronization. User fields (ProductAmounts,
// Expense, Notes, WorkflowStatus) are set once to empty defaults on creation
// and never touched by synchronization again.
type Tracker struct {
	ID          string `db:"id" json:"id"`
	ProjectName string `db:"project_name" json:"project_name"`

	// Derived fields
	Date          time.Time       `db:"date" json:"date"`
	TotalAmount   decimal.Decimal `db:"total_amount" json:"total_amount"`
	InvoiceNumber *string         `db:"invoice_number" json:"invoice_number,omitempty"`
	ExpenseNumber *string         `db:"expense_number" json:"expense_number,omitempty"`

	// User fields
	ProductAmounts ProductAmounts  `db:"product_amounts" json:"product_amounts"`
	Expense        decimal.Decimal `db:"expense" json:"expense"`
	Notes          string          `db:"notes" json:"notes,omitempty"`
	WorkflowStatus string          `db:"workflow_status" json:"workflow_status,omitempty"`

	types.BaseModel
}

// Derived carries the source-document facts merged into a tracker row on
// every sync. Nil invoice/expense numbers leave the stored value as is.
type Derived struct {
	Date          time.Time
	TotalAmount   decimal.Decimal
	InvoiceNumber *string
	ExpenseNumber *string
}

// ApplyDerived overwrites the derived fields only.
func (t *Tracker) ApplyDerived(d Derived) {
	t.Date = d.Date
	t.TotalAmount = d.TotalAmount
	if d.InvoiceNumber != nil {
		t.InvoiceNumber = d.InvoiceNumber
	}
	if d.ExpenseNumber != nil {
		t.ExpenseNumber = d.ExpenseNumber
	}
}

// UserFieldsPatch is a partial update of the user-owned fields.
type UserFieldsPatch struct {
	ProductAmounts *ProductAmounts
	Expense        *decimal.Decimal
	Notes          *string
	WorkflowStatus *string
}

// ApplyUserFields patches the user fields only.
func (t *Tracker) ApplyUserFields(p UserFieldsPatch) {
	if p.ProductAmounts != nil {
		t.ProductAmounts = *p.ProductAmounts
	}
	if p.Expense != nil {
		t.Expense = *p.Expense
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
	if p.WorkflowStatus != nil {
		t.WorkflowStatus = *p.WorkflowStatus
	}
}
