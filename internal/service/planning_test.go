package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/studioledger/studioledger/internal/api/dto"
	ierr "github.com/studioledger/studioledger/internal/errors"
	"github.com/studioledger/studioledger/internal/testutil"
)

type PlanningServiceSuite struct {
	testutil.BaseServiceTestSuite
	service     PlanningService
	trackerRepo *testutil.InMemoryTrackerStore
}

func TestPlanningService(t *testing.T) {
	suite.Run(t, new(PlanningServiceSuite))
}

func (s *PlanningServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.trackerRepo = s.GetStores().TrackerRepo.(*testutil.InMemoryTrackerStore)
	s.service = NewPlanningService(s.params())
}

func (s *PlanningServiceSuite) params() ServiceParams {
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

func (s *PlanningServiceSuite) TestCreateAssignsBusinessNumber() {
	resp, err := s.service.Create(s.GetContext(), dto.CreatePlanningRequest{
		ProjectName: "Festival Coverage",
		ClientName:  "Acme Studio",
		EventDate:   s.GetNow(),
		TotalAmount: decimal.NewFromInt(1200),
	})
	s.NoError(err)
	s.Contains(resp.PlanningNumber, "PLN-")
}

func (s *PlanningServiceSuite) TestPlanningsNeverTouchTheTracker() {
	resp, err := s.service.Create(s.GetContext(), dto.CreatePlanningRequest{
		ProjectName: "Festival Coverage",
		ClientName:  "Acme Studio",
		EventDate:   s.GetNow(),
		TotalAmount: decimal.NewFromInt(1200),
	})
	s.NoError(err)

	_, err = s.service.Update(s.GetContext(), resp.ID, dto.UpdatePlanningRequest{
		TotalAmount: lo.ToPtr(decimal.NewFromInt(1500)),
	})
	s.NoError(err)

	_, err = s.trackerRepo.GetByProjectName(s.GetContext(), "Festival Coverage")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *PlanningServiceSuite) TestCreateValidatesRequest() {
	_, err := s.service.Create(s.GetContext(), dto.CreatePlanningRequest{
		ClientName: "Acme Studio",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *PlanningServiceSuite) TestUpdateAppliesFields() {
	resp, err := s.service.Create(s.GetContext(), dto.CreatePlanningRequest{
		ProjectName: "Documentary",
		ClientName:  "Acme Studio",
		EventDate:   s.GetNow(),
		TotalAmount: decimal.NewFromInt(5000),
	})
	s.NoError(err)

	updated, err := s.service.Update(s.GetContext(), resp.ID, dto.UpdatePlanningRequest{
		CrewNotes: lo.ToPtr("two camera operators, one sound"),
	})
	s.NoError(err)
	s.Equal("two camera operators, one sound", updated.CrewNotes)
	s.Equal(resp.PlanningNumber, updated.PlanningNumber)
}

func (s *PlanningServiceSuite) TestDeleteHidesPlanning() {
	resp, err := s.service.Create(s.GetContext(), dto.CreatePlanningRequest{
		ProjectName: "Short Doc",
		ClientName:  "Acme Studio",
		EventDate:   s.GetNow(),
		TotalAmount: decimal.NewFromInt(300),
	})
	s.NoError(err)

	s.NoError(s.service.Delete(s.GetContext(), resp.ID))

	_, err = s.service.Get(s.GetContext(), resp.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
