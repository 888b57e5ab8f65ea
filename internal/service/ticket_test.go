package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/studioledger/studioledger/internal/api/dto"
	ierr "github.com/studioledger/studioledger/internal/errors"
	"github.com/studioledger/studioledger/internal/testutil"
	"github.com/studioledger/studioledger/internal/types"
)

type TicketServiceSuite struct {
	testutil.BaseServiceTestSuite
	service     TicketService
	trackerRepo *testutil.InMemoryTrackerStore
}

func TestTicketService(t *testing.T) {
	suite.Run(t, new(TicketServiceSuite))
}

func (s *TicketServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.trackerRepo = s.GetStores().TrackerRepo.(*testutil.InMemoryTrackerStore)
	s.service = NewTicketService(s.params())
}

func (s *TicketServiceSuite) params() ServiceParams {
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

func (s *TicketServiceSuite) create(kind types.TicketKind, projectName string, amount int64) *dto.TicketResponse {
	resp, err := s.service.Create(s.GetContext(), dto.CreateTicketRequest{
		Kind:        kind,
		ProjectName: projectName,
		ClientName:  "Acme Studio",
		TicketDate:  s.GetNow(),
		TotalAmount: decimal.NewFromInt(amount),
	})
	s.NoError(err)
	return resp
}

func (s *TicketServiceSuite) TestKindsNumberFromTheirOwnPrefix() {
	paragon := s.create(types.TicketKindParagon, "Paragon Job", 100)
	erha := s.create(types.TicketKindErha, "Erha Job", 200)

	s.Contains(paragon.TicketNumber, "PRG-")
	s.Contains(erha.TicketNumber, "ERH-")
}

func (s *TicketServiceSuite) TestKindCountersAreIndependent() {
	first := s.create(types.TicketKindParagon, "Job A", 100)
	second := s.create(types.TicketKindErha, "Job B", 100)
	third := s.create(types.TicketKindParagon, "Job C", 100)

	year := s.GetNow().Year()
	s.Equal(FormatBusinessNumber("PRG", year, 1), first.TicketNumber)
	s.Equal(FormatBusinessNumber("ERH", year, 1), second.TicketNumber)
	s.Equal(FormatBusinessNumber("PRG", year, 2), third.TicketNumber)
}

func (s *TicketServiceSuite) TestCreateSynchronizesTracker() {
	resp := s.create(types.TicketKindParagon, "Paragon Campaign", 750)

	t, err := s.trackerRepo.GetByProjectName(s.GetContext(), "Paragon Campaign")
	s.NoError(err)
	s.True(t.TotalAmount.Equal(resp.TotalAmount))
	s.Equal(resp.TicketDate, t.Date)
	s.Nil(t.InvoiceNumber)
	s.Nil(t.ExpenseNumber)
}

func (s *TicketServiceSuite) TestUpdateResynchronizesTracker() {
	resp := s.create(types.TicketKindErha, "Erha Campaign", 500)

	_, err := s.service.Update(s.GetContext(), resp.ID, dto.UpdateTicketRequest{
		TotalAmount: lo.ToPtr(decimal.NewFromInt(900)),
	})
	s.NoError(err)

	t, err := s.trackerRepo.GetByProjectName(s.GetContext(), "Erha Campaign")
	s.NoError(err)
	s.True(t.TotalAmount.Equal(decimal.NewFromInt(900)))
}

func (s *TicketServiceSuite) TestUpdateCannotChangeKind() {
	resp := s.create(types.TicketKindParagon, "Fixed Kind", 100)

	updated, err := s.service.Update(s.GetContext(), resp.ID, dto.UpdateTicketRequest{
		Notes: lo.ToPtr("follow up next week"),
	})
	s.NoError(err)
	s.Equal(types.TicketKindParagon, updated.Kind)
}

func (s *TicketServiceSuite) TestMarkBilledAndSettled() {
	resp := s.create(types.TicketKindParagon, "Billing Flow", 100)

	billed, err := s.service.MarkBilled(s.GetContext(), resp.ID)
	s.NoError(err)
	s.Equal(types.TicketStatusBilled, billed.TicketStatus)

	settled, err := s.service.MarkSettled(s.GetContext(), resp.ID)
	s.NoError(err)
	s.Equal(types.TicketStatusSettled, settled.TicketStatus)
}

func (s *TicketServiceSuite) TestDoubleTransitionIsRejected() {
	resp := s.create(types.TicketKindErha, "Double Bill", 100)

	_, err := s.service.MarkBilled(s.GetContext(), resp.ID)
	s.NoError(err)

	_, err = s.service.MarkBilled(s.GetContext(), resp.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *TicketServiceSuite) TestCreateRejectsUnknownKind() {
	_, err := s.service.Create(s.GetContext(), dto.CreateTicketRequest{
		Kind:        types.TicketKind("voucher"),
		ProjectName: "Bad Kind",
		ClientName:  "Acme Studio",
		TicketDate:  s.GetNow(),
		TotalAmount: decimal.NewFromInt(10),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *TicketServiceSuite) TestDeleteLeavesTrackerAlone() {
	resp := s.create(types.TicketKindParagon, "Keep Tracker", 100)

	s.NoError(s.service.Delete(s.GetContext(), resp.ID))

	_, err := s.trackerRepo.GetByProjectName(s.GetContext(), "Keep Tracker")
	s.NoError(err)
}
