package types

import (
	ierr "github.com/studioledger/studioledger/internal/errors"
)

// TicketKind distinguishes the two special-case client ticket streams.
type TicketKind string

const (
	TicketKindParagon TicketKind = "paragon"
	TicketKindErha    TicketKind = "erha"
)

func (k TicketKind) Validate() error {
	switch k {
	case TicketKindParagon, TicketKindErha:
		return nil
	}
	return ierr.NewError("invalid ticket kind").
		WithHintf("unknown ticket kind: %s", k).
		Mark(ierr.ErrValidation)
}

// DocumentType returns the document type for the ticket kind.
func (k TicketKind) DocumentType() DocumentType {
	if k == TicketKindErha {
		return DocumentTypeErhaTicket
	}
	return DocumentTypeParagonTicket
}

// TicketStatus tracks a ticket from open through settlement.
type TicketStatus string

const (
	TicketStatusOpen    TicketStatus = "open"
	TicketStatusBilled  TicketStatus = "billed"
	TicketStatusSettled TicketStatus = "settled"
)

func (s TicketStatus) Validate() error {
	switch s {
	case TicketStatusOpen, TicketStatusBilled, TicketStatusSettled:
		return nil
	}
	return ierr.NewError("invalid ticket status").
		WithHintf("unknown ticket status: %s", s).
		Mark(ierr.ErrValidation)
}
