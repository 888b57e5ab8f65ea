package service

import (
	"context"

	"github.com/samber/lo"

	"github.com/studioledger/studioledger/internal/api/dto"
	"github.com/studioledger/studioledger/internal/domain/ticket"
	"github.com/studioledger/studioledger/internal/domain/tracker"
	ierr "github.com/studioledger/studioledger/internal/errors"
	"github.com/studioledger/studioledger/internal/types"
)

// TicketService exposes special-case ticket operations for both streams.
// Each kind allocates numbers from its own prefix, but both synchronize the
// production tracker the same way quotations and invoices do.
type TicketService interface {
	Create(ctx context.Context, req dto.CreateTicketRequest) (*dto.TicketResponse, error)
	Get(ctx context.Context, id string) (*dto.TicketResponse, error)
	GetByNumber(ctx context.Context, number string) (*dto.TicketResponse, error)
	List(ctx context.Context, filter *ticket.Filter) (*dto.ListTicketsResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateTicketRequest) (*dto.TicketResponse, error)
	MarkBilled(ctx context.Context, id string) (*dto.TicketResponse, error)
	MarkSettled(ctx context.Context, id string) (*dto.TicketResponse, error)
	Delete(ctx context.Context, id string) error
}

type ticketService struct {
	ServiceParams
	allocator AllocatorService
	trackers  TrackerService
}

func NewTicketService(params ServiceParams) TicketService {
	return &ticketService{
		ServiceParams: params,
		allocator:     NewAllocatorService(params),
		trackers:      NewTrackerService(params),
	}
}

// derived maps a ticket onto the tracker fields it feeds
func (s *ticketService) derived(t *ticket.Ticket) tracker.Derived {
	return tracker.Derived{
		Date:        t.TicketDate,
		TotalAmount: t.TotalAmount,
	}
}

func (s *ticketService) Create(ctx context.Context, req dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	number, err := s.allocator.Allocate(ctx, req.Kind.DocumentType())
	if err != nil {
		return nil, err
	}

	t := req.ToTicket(ctx)
	t.TicketNumber = number

	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		if err := s.TicketRepo.Create(ctx, t); err != nil {
			return err
		}
		_, err := s.trackers.Sync(ctx, t.ProjectName, s.derived(t))
		return err
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("created ticket",
		"ticket_id", t.ID,
		"ticket_number", t.TicketNumber,
		"kind", t.Kind,
		"project_name", t.ProjectName,
	)
	return &dto.TicketResponse{Ticket: t}, nil
}

func (s *ticketService) Get(ctx context.Context, id string) (*dto.TicketResponse, error) {
	t, err := s.TicketRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.TicketResponse{Ticket: t}, nil
}

func (s *ticketService) GetByNumber(ctx context.Context, number string) (*dto.TicketResponse, error) {
	t, err := s.TicketRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return &dto.TicketResponse{Ticket: t}, nil
}

func (s *ticketService) List(ctx context.Context, filter *ticket.Filter) (*dto.ListTicketsResponse, error) {
	if filter == nil {
		filter = &ticket.Filter{DocumentFilter: types.DocumentFilter{QueryFilter: *types.NewDefaultQueryFilter()}}
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	items, err := s.TicketRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.TicketRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &dto.ListTicketsResponse{
		Items: lo.Map(items, func(t *ticket.Ticket, _ int) *dto.TicketResponse {
			return &dto.TicketResponse{Ticket: t}
		}),
		Pagination: types.NewPaginationResponse(total, filter.GetLimit(), filter.GetOffset()),
	}, nil
}

func (s *ticketService) Update(ctx context.Context, id string, req dto.UpdateTicketRequest) (*dto.TicketResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	t, err := s.TicketRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(t)

	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		if err := s.TicketRepo.Update(ctx, t); err != nil {
			return err
		}
		_, err := s.trackers.Sync(ctx, t.ProjectName, s.derived(t))
		return err
	})
	if err != nil {
		return nil, err
	}
	return &dto.TicketResponse{Ticket: t}, nil
}

func (s *ticketService) MarkBilled(ctx context.Context, id string) (*dto.TicketResponse, error) {
	return s.transition(ctx, id, types.TicketStatusBilled)
}

func (s *ticketService) MarkSettled(ctx context.Context, id string) (*dto.TicketResponse, error) {
	return s.transition(ctx, id, types.TicketStatusSettled)
}

func (s *ticketService) transition(ctx context.Context, id string, to types.TicketStatus) (*dto.TicketResponse, error) {
	t, err := s.TicketRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if t.TicketStatus == to {
		return nil, ierr.NewError("ticket already in target status").
			WithHintf("ticket %s is already %s", t.TicketNumber, to).
			Mark(ierr.ErrInvalidOperation)
	}

	t.TicketStatus = to
	if err := s.TicketRepo.Update(ctx, t); err != nil {
		return nil, err
	}
	return &dto.TicketResponse{Ticket: t}, nil
}

func (s *ticketService) Delete(ctx context.Context, id string) error {
	if _, err := s.TicketRepo.Get(ctx, id); err != nil {
		return err
	}
	return s.TicketRepo.Delete(ctx, id)
}
