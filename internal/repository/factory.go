package repository

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
	sqlxrepo "github.com/studioledger/studioledger/internal/repository/sqlx"
)

func NewSequenceRepository(db *postgres.DB, cfg *config.Configuration, logger *logger.Logger) sequence.Repository {
	return sqlxrepo.NewSequenceRepository(db, cfg, logger)
}

func NewQuotationRepository(db *postgres.DB, logger *logger.Logger) quotation.Repository {
	return sqlxrepo.NewQuotationRepository(db, logger)
}

func NewInvoiceRepository(db *postgres.DB, logger *logger.Logger) invoice.Repository {
	return sqlxrepo.NewInvoiceRepository(db, logger)
}

func NewExpenseRepository(db *postgres.DB, logger *logger.Logger) expense.Repository {
	return sqlxrepo.NewExpenseRepository(db, logger)
}

func NewPlanningRepository(db *postgres.DB, logger *logger.Logger) planning.Repository {
	return sqlxrepo.NewPlanningRepository(db, logger)
}

func NewTicketRepository(db *postgres.DB, logger *logger.Logger) ticket.Repository {
	return sqlxrepo.NewTicketRepository(db, logger)
}

func NewTrackerRepository(db *postgres.DB, logger *logger.Logger) tracker.Repository {
	return sqlxrepo.NewTrackerRepository(db, logger)
}
