package service

import (
	"context"

	"github.com/samber/lo"

	"github.com/studioledger/studioledger/internal/api/dto"
	"github.com/studioledger/studioledger/internal/domain/invoice"
	"github.com/studioledger/studioledger/internal/domain/tracker"
	ierr "github.com/studioledger/studioledger/internal/errors"
	"github.com/studioledger/studioledger/internal/types"
)

// InvoiceService exposes invoice document operations
type InvoiceService interface {
	Create(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)

	// CreateFromQuotation generates an invoice from an accepted quotation,
	// copying the quotation snapshot fields onto the new invoice.
	CreateFromQuotation(ctx context.Context, req dto.CreateInvoiceFromQuotationRequest) (*dto.InvoiceResponse, error)

	Get(ctx context.Context, id string) (*dto.InvoiceResponse, error)
	GetByNumber(ctx context.Context, number string) (*dto.InvoiceResponse, error)
	List(ctx context.Context, filter *types.DocumentFilter) (*dto.ListInvoicesResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error)
	MarkPaid(ctx context.Context, id string) (*dto.InvoiceResponse, error)
	Delete(ctx context.Context, id string) error
}

type invoiceService struct {
	ServiceParams
	allocator AllocatorService
	snapshots SnapshotService
	trackers  TrackerService
}

func NewInvoiceService(params ServiceParams) InvoiceService {
	return &invoiceService{
		ServiceParams: params,
		allocator:     NewAllocatorService(params),
		snapshots:     NewSnapshotService(params),
		trackers:      NewTrackerService(params),
	}
}

// derived maps an invoice onto the tracker fields it feeds. An invoice is
// the only document that carries its own number into the tracker.
func (s *invoiceService) derived(inv *invoice.Invoice) tracker.Derived {
	return tracker.Derived{
		Date:          inv.InvoiceDate,
		TotalAmount:   inv.TotalAmount,
		InvoiceNumber: &inv.InvoiceNumber,
	}
}

func (s *invoiceService) Create(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	number, err := s.allocator.Allocate(ctx, types.DocumentTypeInvoice)
	if err != nil {
		return nil, err
	}

	inv := req.ToInvoice(ctx)
	inv.InvoiceNumber = number

	if err := s.persist(ctx, inv); err != nil {
		return nil, err
	}

	s.Logger.Infow("created invoice",
		"invoice_id", inv.ID,
		"invoice_number", inv.InvoiceNumber,
		"project_name", inv.ProjectName,
	)
	return &dto.InvoiceResponse{Invoice: inv}, nil
}

func (s *invoiceService) CreateFromQuotation(ctx context.Context, req dto.CreateInvoiceFromQuotationRequest) (*dto.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Snapshot capture validates the source too: a missing or non-accepted
	// quotation fails here, before a number is spent.
	snap, err := s.snapshots.CaptureFromQuotation(ctx, req.QuotationID)
	if err != nil {
		return nil, err
	}

	number, err := s.allocator.Allocate(ctx, types.DocumentTypeInvoice)
	if err != nil {
		return nil, err
	}

	src, err := s.QuotationRepo.Get(ctx, req.QuotationID)
	if err != nil {
		return nil, err
	}

	inv := &invoice.Invoice{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE),
		InvoiceNumber: number,
		ProjectName:   src.ProjectName,
		ClientName:    snap.ClientName,
		InvoiceDate:   lo.FromPtrOr(req.InvoiceDate, snap.QuotationDate),
		DueDate:       req.DueDate,
		Description:   lo.Ternary(req.Description != "", req.Description, src.Description),
		TotalAmount:   snap.TotalAmount,
		PaymentStatus: types.InvoicePaymentStatusDraft,
		Notes:         req.Notes,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}
	inv.ApplySnapshot(*snap)

	if err := s.persist(ctx, inv); err != nil {
		return nil, err
	}

	s.Logger.Infow("generated invoice from quotation",
		"invoice_id", inv.ID,
		"invoice_number", inv.InvoiceNumber,
		"quotation_number", snap.QuotationNumber,
	)
	return &dto.InvoiceResponse{Invoice: inv}, nil
}

// persist writes the invoice and its tracker sync in one transaction
func (s *invoiceService) persist(ctx context.Context, inv *invoice.Invoice) error {
	return s.DB.WithTx(ctx, func(ctx context.Context) error {
		if err := s.InvoiceRepo.Create(ctx, inv); err != nil {
			return err
		}
		_, err := s.trackers.Sync(ctx, inv.ProjectName, s.derived(inv))
		return err
	})
}

func (s *invoiceService) Get(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.InvoiceResponse{Invoice: inv}, nil
}

func (s *invoiceService) GetByNumber(ctx context.Context, number string) (*dto.InvoiceResponse, error) {
	inv, err := s.InvoiceRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return &dto.InvoiceResponse{Invoice: inv}, nil
}

func (s *invoiceService) List(ctx context.Context, filter *types.DocumentFilter) (*dto.ListInvoicesResponse, error) {
	if filter == nil {
		filter = &types.DocumentFilter{QueryFilter: *types.NewDefaultQueryFilter()}
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	items, err := s.InvoiceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.InvoiceRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &dto.ListInvoicesResponse{
		Items: lo.Map(items, func(inv *invoice.Invoice, _ int) *dto.InvoiceResponse {
			return &dto.InvoiceResponse{Invoice: inv}
		}),
		Pagination: types.NewPaginationResponse(total, filter.GetLimit(), filter.GetOffset()),
	}, nil
}

func (s *invoiceService) Update(ctx context.Context, id string, req dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(inv)

	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		if err := s.InvoiceRepo.Update(ctx, inv); err != nil {
			return err
		}
		_, err := s.trackers.Sync(ctx, inv.ProjectName, s.derived(inv))
		return err
	})
	if err != nil {
		return nil, err
	}
	return &dto.InvoiceResponse{Invoice: inv}, nil
}

func (s *invoiceService) MarkPaid(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if inv.IsPaid() {
		return nil, ierr.NewError("invoice already paid").
			WithHintf("invoice %s is already marked paid", inv.InvoiceNumber).
			Mark(ierr.ErrInvalidOperation)
	}

	inv.PaymentStatus = types.InvoicePaymentStatusPaid
	if err := s.InvoiceRepo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return &dto.InvoiceResponse{Invoice: inv}, nil
}

// Delete soft-deletes the invoice. Expenses generated from it keep their
// snapshot columns, and the project's tracker row is left alone.
func (s *invoiceService) Delete(ctx context.Context, id string) error {
	if _, err := s.InvoiceRepo.Get(ctx, id); err != nil {
		return err
	}
	return s.InvoiceRepo.Delete(ctx, id)
}
