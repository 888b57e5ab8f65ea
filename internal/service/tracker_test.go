package service

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/studioledger/studioledger/internal/domain/tracker"
	ierr "github.com/studioledger/studioledger/internal/errors"
	"github.com/studioledger/studioledger/internal/testutil"
)

type TrackerServiceSuite struct {
	testutil.BaseServiceTestSuite
	service     TrackerService
	trackerRepo *testutil.InMemoryTrackerStore
}

func TestTrackerService(t *testing.T) {
	suite.Run(t, new(TrackerServiceSuite))
}

func (s *TrackerServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.trackerRepo = s.GetStores().TrackerRepo.(*testutil.InMemoryTrackerStore)
	s.service = NewTrackerService(s.params())
}

func (s *TrackerServiceSuite) params() ServiceParams {
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

func (s *TrackerServiceSuite) TestSyncCreatesRowWithEmptyUserFields() {
	derived := tracker.Derived{
		Date:          s.GetNow(),
		TotalAmount:   decimal.NewFromInt(1500),
		InvoiceNumber: lo.ToPtr("INV-2026-0001"),
	}

	t, err := s.service.Sync(s.GetContext(), "Wedding Shoot", derived)
	s.NoError(err)
	s.NotEmpty(t.ID)
	s.Equal("Wedding Shoot", t.ProjectName)
	s.True(t.TotalAmount.Equal(decimal.NewFromInt(1500)))
	s.Equal("INV-2026-0001", *t.InvoiceNumber)

	// User fields start empty
	s.Empty(t.ProductAmounts)
	s.True(t.Expense.IsZero())
	s.Empty(t.Notes)
	s.Empty(t.WorkflowStatus)
}

func (s *TrackerServiceSuite) TestSyncMergesIntoExistingRow() {
	first := tracker.Derived{
		Date:        s.GetNow().Add(-24 * time.Hour),
		TotalAmount: decimal.NewFromInt(1000),
	}
	second := tracker.Derived{
		Date:          s.GetNow(),
		TotalAmount:   decimal.NewFromInt(2000),
		InvoiceNumber: lo.ToPtr("INV-2026-0007"),
	}

	t1, err := s.service.Sync(s.GetContext(), "Brand Film", first)
	s.NoError(err)

	t2, err := s.service.Sync(s.GetContext(), "Brand Film", second)
	s.NoError(err)

	// Same row, refreshed derived fields
	s.Equal(t1.ID, t2.ID)
	s.True(t2.TotalAmount.Equal(decimal.NewFromInt(2000)))
	s.Equal("INV-2026-0007", *t2.InvoiceNumber)

	count, err := s.trackerRepo.Count(s.GetContext(), nil)
	s.NoError(err)
	s.Equal(1, count)
}

func (s *TrackerServiceSuite) TestSyncPreservesUserFields() {
	derived := tracker.Derived{Date: s.GetNow(), TotalAmount: decimal.NewFromInt(500)}

	t, err := s.service.Sync(s.GetContext(), "Corporate Event", derived)
	s.NoError(err)

	// User edits their fields between syncs
	amounts := tracker.ProductAmounts{"photo album": decimal.NewFromInt(150)}
	_, err = s.service.UpdateUserFields(s.GetContext(), t.ID, tracker.UserFieldsPatch{
		ProductAmounts: &amounts,
		Expense:        lo.ToPtr(decimal.NewFromInt(75)),
		Notes:          lo.ToPtr("rush order"),
		WorkflowStatus: lo.ToPtr("editing"),
	})
	s.NoError(err)

	// A later document sync must not touch any of them
	updated, err := s.service.Sync(s.GetContext(), "Corporate Event", tracker.Derived{
		Date:        s.GetNow(),
		TotalAmount: decimal.NewFromInt(999),
	})
	s.NoError(err)
	s.True(updated.TotalAmount.Equal(decimal.NewFromInt(999)))

	stored, err := s.service.Get(s.GetContext(), t.ID)
	s.NoError(err)
	s.True(stored.ProductAmounts["photo album"].Equal(decimal.NewFromInt(150)))
	s.True(stored.Expense.Equal(decimal.NewFromInt(75)))
	s.Equal("rush order", stored.Notes)
	s.Equal("editing", stored.WorkflowStatus)
}

func (s *TrackerServiceSuite) TestSyncKeepsStoredNumbersWhenAbsent() {
	_, err := s.service.Sync(s.GetContext(), "Music Video", tracker.Derived{
		Date:          s.GetNow(),
		TotalAmount:   decimal.NewFromInt(3000),
		InvoiceNumber: lo.ToPtr("INV-2026-0010"),
	})
	s.NoError(err)

	// A sync without an invoice number leaves the stored one alone
	t, err := s.service.Sync(s.GetContext(), "Music Video", tracker.Derived{
		Date:        s.GetNow(),
		TotalAmount: decimal.NewFromInt(3100),
	})
	s.NoError(err)
	s.Equal("INV-2026-0010", *t.InvoiceNumber)
}

func (s *TrackerServiceSuite) TestDistinctNamesGetDistinctRows() {
	_, err := s.service.Sync(s.GetContext(), "Project A", tracker.Derived{Date: s.GetNow()})
	s.NoError(err)

	// The merge key is the exact string, so a suffixed name is a new row
	_, err = s.service.Sync(s.GetContext(), "Project A (Copy)", tracker.Derived{Date: s.GetNow()})
	s.NoError(err)

	count, err := s.trackerRepo.Count(s.GetContext(), nil)
	s.NoError(err)
	s.Equal(2, count)
}

func (s *TrackerServiceSuite) TestSyncRequiresProjectName() {
	_, err := s.service.Sync(s.GetContext(), "", tracker.Derived{Date: s.GetNow()})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *TrackerServiceSuite) TestDeleteRemovesRow() {
	t, err := s.service.Sync(s.GetContext(), "Short Film", tracker.Derived{Date: s.GetNow()})
	s.NoError(err)

	s.NoError(s.service.Delete(s.GetContext(), t.ID))

	_, err = s.service.Get(s.GetContext(), t.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
