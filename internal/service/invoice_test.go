package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/studioledger/studioledger/internal/api/dto"
	ierr "github.com/studioledger/studioledger/internal/errors"
	"github.com/studioledger/studioledger/internal/testutil"
	"github.com/studioledger/studioledger/internal/types"
)

type InvoiceServiceSuite struct {
	testutil.BaseServiceTestSuite
	service       InvoiceService
	quotations    QuotationService
	quotationRepo *testutil.InMemoryQuotationStore
	trackerRepo   *testutil.InMemoryTrackerStore
}

func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceSuite))
}

func (s *InvoiceServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.quotationRepo = s.GetStores().QuotationRepo.(*testutil.InMemoryQuotationStore)
	s.trackerRepo = s.GetStores().TrackerRepo.(*testutil.InMemoryTrackerStore)
	s.service = NewInvoiceService(s.params())
	s.quotations = NewQuotationService(s.params())
}

func (s *InvoiceServiceSuite) params() ServiceParams {
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

func (s *InvoiceServiceSuite) createAcceptedQuotation(projectName string, amount int64) *dto.QuotationResponse {
	q, err := s.quotations.Create(s.GetContext(), dto.CreateQuotationRequest{
		ProjectName:   projectName,
		ClientName:    "Acme Studio",
		QuotationDate: s.GetNow(),
		TotalAmount:   decimal.NewFromInt(amount),
	})
	s.NoError(err)

	accepted, err := s.quotations.MarkAccepted(s.GetContext(), q.ID)
	s.NoError(err)
	return accepted
}

func (s *InvoiceServiceSuite) TestCreateSynchronizesTrackerWithInvoiceNumber() {
	resp, err := s.service.Create(s.GetContext(), dto.CreateInvoiceRequest{
		ProjectName: "Wedding Shoot",
		ClientName:  "Acme Studio",
		InvoiceDate: s.GetNow(),
		TotalAmount: decimal.NewFromInt(1500),
	})
	s.NoError(err)
	s.Contains(resp.InvoiceNumber, "INV-")

	t, err := s.trackerRepo.GetByProjectName(s.GetContext(), "Wedding Shoot")
	s.NoError(err)
	s.Equal(resp.InvoiceNumber, *t.InvoiceNumber)
	s.True(t.TotalAmount.Equal(resp.TotalAmount))
}

func (s *InvoiceServiceSuite) TestCreateFromQuotationCopiesSnapshot() {
	q := s.createAcceptedQuotation("Brand Film", 2500)

	inv, err := s.service.CreateFromQuotation(s.GetContext(), dto.CreateInvoiceFromQuotationRequest{
		QuotationID: q.ID,
	})
	s.NoError(err)

	s.Contains(inv.InvoiceNumber, "INV-")
	s.Equal("Brand Film", inv.ProjectName)
	s.Equal(q.QuotationNumber, *inv.QuotationNumber)
	s.True(inv.QuotationTotalAmount.Equal(q.TotalAmount))
	s.Equal(q.QuotationDate, *inv.QuotationDate)
	s.Equal(q.ClientName, *inv.QuotationClientName)
	s.True(inv.TotalAmount.Equal(q.TotalAmount))
}

func (s *InvoiceServiceSuite) TestCreateFromQuotationRequiresAccepted() {
	q, err := s.quotations.Create(s.GetContext(), dto.CreateQuotationRequest{
		ProjectName:   "Draft Project",
		ClientName:    "Acme Studio",
		QuotationDate: s.GetNow(),
		TotalAmount:   decimal.NewFromInt(100),
	})
	s.NoError(err)

	_, err = s.service.CreateFromQuotation(s.GetContext(), dto.CreateInvoiceFromQuotationRequest{
		QuotationID: q.ID,
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *InvoiceServiceSuite) TestCreateFromMissingQuotationFailsValidation() {
	_, err := s.service.CreateFromQuotation(s.GetContext(), dto.CreateInvoiceFromQuotationRequest{
		QuotationID: "qtn_does_not_exist",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *InvoiceServiceSuite) TestSnapshotSurvivesQuotationDeletion() {
	q := s.createAcceptedQuotation("Corporate Event", 4000)

	inv, err := s.service.CreateFromQuotation(s.GetContext(), dto.CreateInvoiceFromQuotationRequest{
		QuotationID: q.ID,
	})
	s.NoError(err)

	// Remove the source entirely; the reference dangles, the copy stays
	s.NoError(s.quotationRepo.HardDelete(s.GetContext(), q.ID))

	stored, err := s.service.Get(s.GetContext(), inv.ID)
	s.NoError(err)
	s.Equal(q.QuotationNumber, *stored.QuotationNumber)
	s.True(stored.QuotationTotalAmount.Equal(q.TotalAmount))
}

func (s *InvoiceServiceSuite) TestMarkPaid() {
	inv, err := s.service.Create(s.GetContext(), dto.CreateInvoiceRequest{
		ProjectName: "Music Video",
		ClientName:  "Acme Studio",
		InvoiceDate: s.GetNow(),
		TotalAmount: decimal.NewFromInt(3000),
	})
	s.NoError(err)
	s.Equal(types.InvoicePaymentStatusDraft, inv.PaymentStatus)

	paid, err := s.service.MarkPaid(s.GetContext(), inv.ID)
	s.NoError(err)
	s.Equal(types.InvoicePaymentStatusPaid, paid.PaymentStatus)

	_, err = s.service.MarkPaid(s.GetContext(), inv.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *InvoiceServiceSuite) TestDeleteLeavesTrackerAlone() {
	inv, err := s.service.Create(s.GetContext(), dto.CreateInvoiceRequest{
		ProjectName: "Short Film",
		ClientName:  "Acme Studio",
		InvoiceDate: s.GetNow(),
		TotalAmount: decimal.NewFromInt(800),
	})
	s.NoError(err)

	s.NoError(s.service.Delete(s.GetContext(), inv.ID))

	t, err := s.trackerRepo.GetByProjectName(s.GetContext(), "Short Film")
	s.NoError(err)
	s.Equal(inv.InvoiceNumber, *t.InvoiceNumber)
}
