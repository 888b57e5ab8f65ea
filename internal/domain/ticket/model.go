package ticket

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/studioledger/studioledger/internal/types"
)

// Ticket represents a special-case client ticket. Both streams (paragon and
// erha) share the table and are told apart by Kind; each stream allocates
// numbers from its own prefix.
type Ticket struct {
	ID           string             `db:"id" json:"id"`
	TicketNumber string             `db:"ticket_number" json:"ticket_number"`
	Kind         types.TicketKind   `db:"kind" json:"kind"`
	ProjectName  string             `db:"project_name" json:"project_name"`
	ClientName   string             `db:"client_name" json:"client_name"`
	TicketDate   time.Time          `db:"ticket_date" json:"ticket_date"`
	Description  string             `db:"description" json:"description,omitempty"`
	TotalAmount  decimal.Decimal    `db:"total_amount" json:"total_amount"`
	TicketStatus types.TicketStatus `db:"ticket_status" json:"ticket_status"`
	Notes        string             `db:"notes" json:"notes,omitempty"`
	types.BaseModel
}
