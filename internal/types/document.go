package types

import (
	ierr "github.com/studioledger/studioledger/internal/errors"
)

// DocumentType identifies the business document streams handled by the system.
type DocumentType string

const (
	DocumentTypeQuotation     DocumentType = "quotation"
	DocumentTypeInvoice       DocumentType = "invoice"
	DocumentTypeExpense       DocumentType = "expense"
	DocumentTypePlanning      DocumentType = "planning"
	DocumentTypeParagonTicket DocumentType = "paragon_ticket"
	DocumentTypeErhaTicket    DocumentType = "erha_ticket"
)

// numberPrefixes maps each document type to the prefix used in its
// human-facing business number, e.g. INV-2026-0001.
var numberPrefixes = map[DocumentType]string{
	DocumentTypeQuotation:     "QTN",
	DocumentTypeInvoice:       "INV",
	DocumentTypeExpense:       "EXP",
	DocumentTypePlanning:      "PLN",
	DocumentTypeParagonTicket: "PRG",
	DocumentTypeErhaTicket:    "ERH",
}

// NumberPrefix returns the business number prefix for the document type.
func (t DocumentType) NumberPrefix() string {
	return numberPrefixes[t]
}

// SyncsTracker reports whether create/update of this document type must
// synchronize the production tracker. Planning and expense never do.
func (t DocumentType) SyncsTracker() bool {
	switch t {
	case DocumentTypeQuotation, DocumentTypeInvoice, DocumentTypeParagonTicket, DocumentTypeErhaTicket:
		return true
	default:
		return false
	}
}

func (t DocumentType) Validate() error {
	if _, ok := numberPrefixes[t]; !ok {
		return ierr.NewError("invalid document type").
			WithHintf("unknown document type: %s", t).
			Mark(ierr.ErrValidation)
	}
	return nil
}
