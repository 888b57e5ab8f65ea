package service

import (
	"github.com/studioledger/studioledger/internal/config"
	"github.com/studioledger/studioledger/internal/domain/expense"
	"github.com/studioledger/studioledger/internal/domain/invoice"
	"github.com/studioledger/studioledger/internal/domain/planning"
	"github.com/studioledger/studioledger/internal/domain/quotation"
	"github.com/studioledger/studioledger/internal/domain/sequence"
	"github.com/studioledger/studioledger/internal/domain/ticket"
	"github.com/studioledger/studioledger/internal/domain/tracker"
	"github.com/studioledger/studioledger/internal/logger"
	"github.com/studioledger/studioledger/internal/postgres"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	DB     postgres.IClient

	// Repositories
	SequenceRepo  sequence.Repository
	QuotationRepo quotation.Repository
	InvoiceRepo   invoice.Repository
	ExpenseRepo   expense.Repository
	PlanningRepo  planning.Repository
	TicketRepo    ticket.Repository
	TrackerRepo   tracker.Repository
}

// NewServiceParams builds the common service params
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	db postgres.IClient,
	sequenceRepo sequence.Repository,
	quotationRepo quotation.Repository,
	invoiceRepo invoice.Repository,
	expenseRepo expense.Repository,
	planningRepo planning.Repository,
	ticketRepo ticket.Repository,
	trackerRepo tracker.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:        logger,
		Config:        config,
		DB:            db,
		SequenceRepo:  sequenceRepo,
		QuotationRepo: quotationRepo,
		InvoiceRepo:   invoiceRepo,
		ExpenseRepo:   expenseRepo,
		PlanningRepo:  planningRepo,
		TicketRepo:    ticketRepo,
		TrackerRepo:   trackerRepo,
	}
}
