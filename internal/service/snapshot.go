package service

import (
	"context"

	"github.com/studioledger/studioledger/internal/domain/expense"
	"github.com/studioledger/studioledger/internal/domain/invoice"
	ierr "github.com/studioledger/studioledger/internal/errors"
)

// SnapshotService captures the fixed field set a dependent document copies
// from its source at generation time. Capture happens exactly once; the
// returned values become plain columns on the dependent record and are never
// re-derived, so the dependent survives soft or hard deletion of its source.
type SnapshotService interface {
	// CaptureFromQuotation reads an accepted quotation for a new invoice.
	CaptureFromQuotation(ctx context.Context, quotationID string) (*invoice.QuotationSnapshot, error)

	// CaptureFromInvoice reads an invoice for a new expense.
	CaptureFromInvoice(ctx context.Context, invoiceID string) (*expense.InvoiceSnapshot, error)

	// CaptureFromPlanning reads a planning for a new expense.
	CaptureFromPlanning(ctx context.Context, planningID string) (*expense.PlanningSnapshot, error)
}

type snapshotService struct {
	ServiceParams
}

func NewSnapshotService(params ServiceParams) SnapshotService {
	return &snapshotService{ServiceParams: params}
}

func (s *snapshotService) CaptureFromQuotation(ctx context.Context, quotationID string) (*invoice.QuotationSnapshot, error) {
	q, err := s.QuotationRepo.Get(ctx, quotationID)
	if err != nil {
		if ierr.IsNotFound(err) {
			// Source gone between user action and capture: the dependent
			// must not be created with partial snapshot data.
			return nil, ierr.WithError(err).
				WithHint("source quotation no longer exists").
				Mark(ierr.ErrValidation)
		}
		return nil, err
	}

	if !q.IsAccepted() {
		return nil, ierr.NewError("quotation is not accepted").
			WithHintf("quotation %s must be accepted before generating an invoice", q.QuotationNumber).
			Mark(ierr.ErrInvalidOperation)
	}

	return &invoice.QuotationSnapshot{
		QuotationNumber: q.QuotationNumber,
		TotalAmount:     q.TotalAmount,
		QuotationDate:   q.QuotationDate,
		ClientName:      q.ClientName,
	}, nil
}

func (s *snapshotService) CaptureFromInvoice(ctx context.Context, invoiceID string) (*expense.InvoiceSnapshot, error) {
	inv, err := s.InvoiceRepo.Get(ctx, invoiceID)
	if err != nil {
		if ierr.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("source invoice no longer exists").
				Mark(ierr.ErrValidation)
		}
		return nil, err
	}

	return &expense.InvoiceSnapshot{
		InvoiceNumber: inv.InvoiceNumber,
		TotalAmount:   inv.TotalAmount,
		InvoiceDate:   inv.InvoiceDate,
		ClientName:    inv.ClientName,
	}, nil
}

func (s *snapshotService) CaptureFromPlanning(ctx context.Context, planningID string) (*expense.PlanningSnapshot, error) {
	p, err := s.PlanningRepo.Get(ctx, planningID)
	if err != nil {
		if ierr.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("source planning no longer exists").
				Mark(ierr.ErrValidation)
		}
		return nil, err
	}

	return &expense.PlanningSnapshot{
		PlanningNumber: p.PlanningNumber,
		TotalAmount:    p.TotalAmount,
		EventDate:      p.EventDate,
		ClientName:     p.ClientName,
	}, nil
}
