package planning

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/studioledger/studioledger/internal/types"
)

// Planning represents a shoot planning document
type Planning struct {
	ID             string               `db:"id" json:"id"`
	PlanningNumber string               `db:"planning_number" json:"planning_number"`
	ProjectName    string               `db:"project_name" json:"project_name"`
	ClientName     string               `db:"client_name" json:"client_name"`
	EventDate      time.Time            `db:"event_date" json:"event_date"`
	CrewNotes      string               `db:"crew_notes" json:"crew_notes,omitempty"`
	Description    string               `db:"description" json:"description,omitempty"`
	TotalAmount    decimal.Decimal      `db:"total_amount" json:"total_amount"`
	PlanningStatus types.PlanningStatus `db:"planning_status" json:"planning_status"`
	Notes          string               `db:"notes" json:"notes,omitempty"`
	types.BaseModel
}
