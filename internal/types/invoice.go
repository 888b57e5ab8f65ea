package types

import (
	ierr "github.com/studioledger/studioledger/internal/errors"
)

// InvoicePaymentStatus tracks an invoice from draft through payment.
type InvoicePaymentStatus string

const (
	InvoicePaymentStatusDraft   InvoicePaymentStatus = "draft"
	InvoicePaymentStatusPending InvoicePaymentStatus = "pending"
	InvoicePaymentStatusPaid    InvoicePaymentStatus = "paid"
)

func (s InvoicePaymentStatus) Validate() error {
	switch s {
	case InvoicePaymentStatusDraft, InvoicePaymentStatusPending, InvoicePaymentStatusPaid:
		return nil
	}
	return ierr.NewError("invalid invoice payment status").
		WithHintf("unknown invoice payment status: %s", s).
		Mark(ierr.ErrValidation)
}
