package types

import (
	ierr "github.com/studioledger/studioledger/internal/errors"
)

// QuotationStatus tracks a quotation through its approval flow.
type QuotationStatus string

const (
	QuotationStatusDraft    QuotationStatus = "draft"
	QuotationStatusSent     QuotationStatus = "sent"
	QuotationStatusAccepted QuotationStatus = "accepted"
	QuotationStatusRejected QuotationStatus = "rejected"
)

func (s QuotationStatus) Validate() error {
	switch s {
	case QuotationStatusDraft, QuotationStatusSent, QuotationStatusAccepted, QuotationStatusRejected:
		return nil
	}
	return ierr.NewError("invalid quotation status").
		WithHintf("unknown quotation status: %s", s).
		Mark(ierr.ErrValidation)
}
