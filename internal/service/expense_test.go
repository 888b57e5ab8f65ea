package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/studioledger/studioledger/internal/api/dto"
	"github.com/studioledger/studioledger/internal/domain/expense"
	ierr "github.com/studioledger/studioledger/internal/errors"
	"github.com/studioledger/studioledger/internal/testutil"
)

type ExpenseServiceSuite struct {
	testutil.BaseServiceTestSuite
	service     ExpenseService
	invoices    InvoiceService
	plannings   PlanningService
	invoiceRepo *testutil.InMemoryInvoiceStore
	trackerRepo *testutil.InMemoryTrackerStore
}

func TestExpenseService(t *testing.T) {
	suite.Run(t, new(ExpenseServiceSuite))
}

func (s *ExpenseServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.invoiceRepo = s.GetStores().InvoiceRepo.(*testutil.InMemoryInvoiceStore)
	s.trackerRepo = s.GetStores().TrackerRepo.(*testutil.InMemoryTrackerStore)
	s.service = NewExpenseService(s.params())
	s.invoices = NewInvoiceService(s.params())
	s.plannings = NewPlanningService(s.params())
}

func (s *ExpenseServiceSuite) params() ServiceParams {
	stores := s.GetStores()
	return ServiceParams{
		Logger:        s.GetLogger(),
		Config:        s.GetConfig(),
		DB:            s.GetDB(),
		SequenceRepo:  stores.SequenceRepo,
		QuotationRepo: stores.QuotationRepo,
		InvoiceRepo:   stores.InvoiceRepo,
		ExpenseRepo:   stores.ExpenseRepo,
		PlanningRepo:  stores.PlanningRepo,
		TicketRepo:    stores.TicketRepo,
		TrackerRepo:   stores.TrackerRepo,
	}
}

func (s *ExpenseServiceSuite) TestCreateStandaloneExpense() {
	resp, err := s.service.Create(s.GetContext(), dto.CreateExpenseRequest{
		ProjectName: "Wedding Shoot",
		ExpenseDate: s.GetNow(),
		Category:    "equipment",
		TotalAmount: decimal.NewFromInt(250),
	})
	s.NoError(err)
	s.Contains(resp.ExpenseNumber, "EXP-")
	s.Equal(expense.SourceTypeNone, resp.SourceType)
	s.Nil(resp.InvoiceNumber)
}

func (s *ExpenseServiceSuite) TestExpensesNeverTouchTheTracker() {
	_, err := s.service.Create(s.GetContext(), dto.CreateExpenseRequest{
		ProjectName: "Wedding Shoot",
		ExpenseDate: s.GetNow(),
		TotalAmount: decimal.NewFromInt(250),
	})
	s.NoError(err)

	_, err = s.trackerRepo.GetByProjectName(s.GetContext(), "Wedding Shoot")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *ExpenseServiceSuite) TestCreateFromInvoiceCopiesSnapshot() {
	inv, err := s.invoices.Create(s.GetContext(), dto.CreateInvoiceRequest{
		ProjectName: "Brand Film",
		ClientName:  "Acme Studio",
		InvoiceDate: s.GetNow(),
		TotalAmount: decimal.NewFromInt(2500),
	})
	s.NoError(err)

	e, err := s.service.CreateFromInvoice(s.GetContext(), dto.CreateExpenseFromInvoiceRequest{
		InvoiceID: inv.ID,
		Category:  "crew payout",
	})
	s.NoError(err)
	s.Contains(e.ExpenseNumber, "EXP-")
	s.Equal(expense.SourceTypeInvoice, e.SourceType)
	s.Equal(inv.InvoiceNumber, *e.InvoiceNumber)
	s.True(e.InvoiceTotalAmount.Equal(inv.TotalAmount))
	s.Equal(inv.ClientName, *e.InvoiceClientName)
}

func (s *ExpenseServiceSuite) TestSnapshotSurvivesInvoiceHardDelete() {
	inv, err := s.invoices.Create(s.GetContext(), dto.CreateInvoiceRequest{
		ProjectName: "Corporate Event",
		ClientName:  "Acme Studio",
		InvoiceDate: s.GetNow(),
		TotalAmount: decimal.NewFromInt(4000),
	})
	s.NoError(err)

	e, err := s.service.CreateFromInvoice(s.GetContext(), dto.CreateExpenseFromInvoiceRequest{
		InvoiceID: inv.ID,
	})
	s.NoError(err)

	s.NoError(s.invoiceRepo.HardDelete(s.GetContext(), inv.ID))

	stored, err := s.service.Get(s.GetContext(), e.ID)
	s.NoError(err)
	s.Equal(inv.InvoiceNumber, *stored.InvoiceNumber)
	s.True(stored.InvoiceTotalAmount.Equal(decimal.NewFromInt(4000)))
}

func (s *ExpenseServiceSuite) TestCreateFromMissingInvoiceFailsValidation() {
	_, err := s.service.CreateFromInvoice(s.GetContext(), dto.CreateExpenseFromInvoiceRequest{
		InvoiceID: "inv_does_not_exist",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *ExpenseServiceSuite) TestCreateFromPlanningCopiesSnapshot() {
	p, err := s.plannings.Create(s.GetContext(), dto.CreatePlanningRequest{
		ProjectName: "Music Video",
		ClientName:  "Acme Studio",
		EventDate:   s.GetNow(),
		TotalAmount: decimal.NewFromInt(3000),
	})
	s.NoError(err)

	e, err := s.service.CreateFromPlanning(s.GetContext(), dto.CreateExpenseFromPlanningRequest{
		PlanningID: p.ID,
	})
	s.NoError(err)
	s.Equal(expense.SourceTypePlanning, e.SourceType)
	s.Equal(p.PlanningNumber, *e.PlanningNumber)
	s.True(e.PlanningAmount.Equal(p.TotalAmount))
	s.Equal(p.EventDate, *e.PlanningEventDate)
	s.Nil(e.InvoiceNumber)
}

func (s *ExpenseServiceSuite) TestCreateFromMissingPlanningFailsValidation() {
	_, err := s.service.CreateFromPlanning(s.GetContext(), dto.CreateExpenseFromPlanningRequest{
		PlanningID: "pln_does_not_exist",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *ExpenseServiceSuite) TestListByInvoiceNumberIncludesDangling() {
	inv, err := s.invoices.Create(s.GetContext(), dto.CreateInvoiceRequest{
		ProjectName: "Short Film",
		ClientName:  "Acme Studio",
		InvoiceDate: s.GetNow(),
		TotalAmount: decimal.NewFromInt(800),
	})
	s.NoError(err)

	_, err = s.service.CreateFromInvoice(s.GetContext(), dto.CreateExpenseFromInvoiceRequest{
		InvoiceID: inv.ID,
	})
	s.NoError(err)

	s.NoError(s.invoiceRepo.HardDelete(s.GetContext(), inv.ID))

	expenses, err := s.GetStores().ExpenseRepo.ListByInvoiceNumber(s.GetContext(), inv.InvoiceNumber)
	s.NoError(err)
	s.Len(expenses, 1)
}
