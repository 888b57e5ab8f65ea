package testutil

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"

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
	"github.com/studioledger/studioledger/internal/types"
	"github.com/studioledger/studioledger/internal/validator"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
	SequenceRepo  sequence.Repository
	QuotationRepo quotation.Repository
	InvoiceRepo   invoice.Repository
	ExpenseRepo   expense.Repository
	PlanningRepo  planning.Repository
	TicketRepo    ticket.Repository
	TrackerRepo   tracker.Repository
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	stores Stores
	db     postgres.IClient
	logger *logger.Logger
	config *config.Configuration
	now    time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()

	s.config = config.GetDefaultConfig()

	var err error
	s.logger, err = logger.NewLogger()
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.setupContext()
	s.setupStores()
	s.now = time.Now().UTC()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.clearStores()
}

func (s *BaseServiceTestSuite) setupContext() {
	s.ctx = context.Background()
	s.ctx = context.WithValue(s.ctx, types.CtxTenantID, types.DefaultTenantID)
	s.ctx = context.WithValue(s.ctx, types.CtxUserID, types.DefaultUserID)
	s.ctx = context.WithValue(s.ctx, types.CtxRequestID, types.GenerateUUID())
}

func (s *BaseServiceTestSuite) setupStores() {
	s.stores = Stores{
		SequenceRepo:  NewInMemorySequenceStore(),
		QuotationRepo: NewInMemoryQuotationStore(),
		InvoiceRepo:   NewInMemoryInvoiceStore(),
		ExpenseRepo:   NewInMemoryExpenseStore(),
		PlanningRepo:  NewInMemoryPlanningStore(),
		TicketRepo:    NewInMemoryTicketStore(),
		TrackerRepo:   NewInMemoryTrackerStore(),
	}
	s.db = NewMockPostgresClient(s.logger)
}

func (s *BaseServiceTestSuite) clearStores() {
	s.stores.SequenceRepo.(*InMemorySequenceStore).Clear()
	s.stores.QuotationRepo.(*InMemoryQuotationStore).Clear()
	s.stores.InvoiceRepo.(*InMemoryInvoiceStore).Clear()
	s.stores.ExpenseRepo.(*InMemoryExpenseStore).Clear()
	s.stores.PlanningRepo.(*InMemoryPlanningStore).Clear()
	s.stores.TicketRepo.(*InMemoryTicketStore).Clear()
	s.stores.TrackerRepo.(*InMemoryTrackerStore).Clear()
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetStores returns the test repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetDB returns the test db client
func (s *BaseServiceTestSuite) GetDB() postgres.IClient {
	return s.db
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetNow returns the current test time
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}
