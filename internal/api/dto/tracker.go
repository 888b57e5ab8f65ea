package dto

import (
	"github.com/shopspring/decimal"

	"github.com/studioledger/studioledger/internal/domain/tracker"
	"github.com/studioledger/studioledger/internal/types"
	"github.com/studioledger/studioledger/internal/validator"
)

// UpdateTrackerUserFieldsRequest patches the user-owned tracker fields.
// Derived fields are owned by document synchronization and have no request
// surface at all.
type UpdateTrackerUserFieldsRequest struct {
	ProductAmounts *tracker.ProductAmounts `json:"product_amounts,omitempty"`
	Expense        *decimal.Decimal        `json:"expense,omitempty"`
	Notes          *string                 `json:"notes,omitempty"`
	WorkflowStatus *string                 `json:"workflow_status,omitempty"`
}

func (r *UpdateTrackerUserFieldsRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *UpdateTrackerUserFieldsRequest) ToPatch() tracker.UserFieldsPatch {
	return tracker.UserFieldsPatch{
		ProductAmounts: r.ProductAmounts,
		Expense:        r.Expense,
		Notes:          r.Notes,
		WorkflowStatus: r.WorkflowStatus,
	}
}

type TrackerResponse struct {
	*tracker.Tracker
}

type ListTrackersResponse struct {
	Items      []*TrackerResponse       `json:"items"`
	Pagination types.PaginationResponse `json:"pagination"`
}
