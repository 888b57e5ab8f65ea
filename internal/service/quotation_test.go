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

type QuotationServiceSuite struct {
	testutil.BaseServiceTestSuite
	service     QuotationService
	trackerRepo *testutil.InMemoryTrackerStore
}

func TestQuotationService(t *testing.T) {
	suite.Run(t, new(QuotationServiceSuite))
}

func (s *QuotationServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.trackerRepo = s.GetStores().TrackerRepo.(*testutil.InMemoryTrackerStore)
	s.service = NewQuotationService(s.params())
}

func (s *QuotationServiceSuite) params() ServiceParams {
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

func (s *QuotationServiceSuite) createQuotation(projectName string, amount int64) *dto.QuotationResponse {
	resp, err := s.service.Create(s.GetContext(), dto.CreateQuotationRequest{
		ProjectName:   projectName,
		ClientName:    "Acme Studio",
		QuotationDate: s.GetNow(),
		TotalAmount:   decimal.NewFromInt(amount),
	})
	s.NoError(err)
	return resp
}

func (s *QuotationServiceSuite) TestCreateAssignsBusinessNumber() {
	resp := s.createQuotation("Wedding Shoot", 1500)

	s.NotEmpty(resp.ID)
	s.Contains(resp.QuotationNumber, "QTN-")
	s.Contains(resp.QuotationNumber, "-0001")
	s.Equal(types.QuotationStatusDraft, resp.QuotationStatus)

	next := s.createQuotation("Another Shoot", 500)
	s.Contains(next.QuotationNumber, "-0002")
}

func (s *QuotationServiceSuite) TestCreateSynchronizesTracker() {
	resp := s.createQuotation("Wedding Shoot", 1500)

	t, err := s.trackerRepo.GetByProjectName(s.GetContext(), "Wedding Shoot")
	s.NoError(err)
	s.True(t.TotalAmount.Equal(resp.TotalAmount))
	s.Equal(resp.QuotationDate, t.Date)
	s.Nil(t.InvoiceNumber)
}

func (s *QuotationServiceSuite) TestCreateValidatesRequest() {
	_, err := s.service.Create(s.GetContext(), dto.CreateQuotationRequest{
		ClientName: "Acme Studio",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *QuotationServiceSuite) TestUpdateResynchronizesTracker() {
	resp := s.createQuotation("Brand Film", 1000)

	newAmount := decimal.NewFromInt(2500)
	_, err := s.service.Update(s.GetContext(), resp.ID, dto.UpdateQuotationRequest{
		TotalAmount: &newAmount,
	})
	s.NoError(err)

	t, err := s.trackerRepo.GetByProjectName(s.GetContext(), "Brand Film")
	s.NoError(err)
	s.True(t.TotalAmount.Equal(newAmount))
}

func (s *QuotationServiceSuite) TestDuplicateStartsNewTrackerRow() {
	resp := s.createQuotation("Brand Film", 1000)

	copy, err := s.service.Duplicate(s.GetContext(), resp.ID)
	s.NoError(err)
	s.Equal("Brand Film (Copy)", copy.ProjectName)
	s.NotEqual(resp.QuotationNumber, copy.QuotationNumber)
	s.Equal(types.QuotationStatusDraft, copy.QuotationStatus)

	// The suffixed name does not merge into the original's row
	_, err = s.trackerRepo.GetByProjectName(s.GetContext(), "Brand Film (Copy)")
	s.NoError(err)

	count, err := s.trackerRepo.Count(s.GetContext(), nil)
	s.NoError(err)
	s.Equal(2, count)
}

func (s *QuotationServiceSuite) TestMarkAccepted() {
	resp := s.createQuotation("Corporate Event", 4000)

	accepted, err := s.service.MarkAccepted(s.GetContext(), resp.ID)
	s.NoError(err)
	s.Equal(types.QuotationStatusAccepted, accepted.QuotationStatus)

	// Accepting twice is rejected
	_, err = s.service.MarkAccepted(s.GetContext(), resp.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *QuotationServiceSuite) TestDeleteLeavesTrackerAlone() {
	resp := s.createQuotation("Music Video", 3000)

	s.NoError(s.service.Delete(s.GetContext(), resp.ID))

	_, err := s.service.Get(s.GetContext(), resp.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))

	// The tracker row survives document deletion
	t, err := s.trackerRepo.GetByProjectName(s.GetContext(), "Music Video")
	s.NoError(err)
	s.True(t.TotalAmount.Equal(decimal.NewFromInt(3000)))
}
