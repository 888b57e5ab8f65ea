package types

import (
	ierr "github.com/studioledger/studioledger/internal/errors"
)

// PlanningStatus tracks a shoot planning document.
type PlanningStatus string

const (
	PlanningStatusDraft     PlanningStatus = "draft"
	PlanningStatusConfirmed PlanningStatus = "confirmed"
	PlanningStatusDone      PlanningStatus = "done"
)

func (s PlanningStatus) Validate() error {
	switch s {
	case PlanningStatusDraft, PlanningStatusConfirmed, PlanningStatusDone:
		return nil
	}
	return ierr.NewError("invalid planning status").
		WithHintf("unknown planning status: %s", s).
		Mark(ierr.ErrValidation)
}
