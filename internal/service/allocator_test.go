package service

import (
	"fmt"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	ierr "github.com/studioledger/studioledger/internal/errors"
	"github.com/studioledger/studioledger/internal/testutil"
	"github.com/studioledger/studioledger/internal/types"
)

type AllocatorServiceSuite struct {
	testutil.BaseServiceTestSuite
	service      AllocatorService
	sequenceRepo *testutil.InMemorySequenceStore
}

func TestAllocatorService(t *testing.T) {
	suite.Run(t, new(AllocatorServiceSuite))
}

func (s *AllocatorServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.sequenceRepo = s.GetStores().SequenceRepo.(*testutil.InMemorySequenceStore)
	s.service = NewAllocatorService(s.params())
}

func (s *AllocatorServiceSuite) params() ServiceParams {
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

func (s *AllocatorServiceSuite) TestSequentialAllocation() {
	year := time.Now().UTC().Year()

	for i := 1; i <= 3; i++ {
		number, err := s.service.Allocate(s.GetContext(), types.DocumentTypeInvoice)
		s.NoError(err)
		s.Equal(fmt.Sprintf("INV-%d-%04d", year, i), number)
	}
}

func (s *AllocatorServiceSuite) TestPrefixesAreIndependent() {
	number, err := s.service.Allocate(s.GetContext(), types.DocumentTypeQuotation)
	s.NoError(err)
	s.Contains(number, "QTN-")
	s.Contains(number, "-0001")

	// A different stream starts from 1 regardless of other streams
	number, err = s.service.Allocate(s.GetContext(), types.DocumentTypeInvoice)
	s.NoError(err)
	s.Contains(number, "INV-")
	s.Contains(number, "-0001")

	// Ticket streams have their own prefixes too
	number, err = s.service.Allocate(s.GetContext(), types.DocumentTypeParagonTicket)
	s.NoError(err)
	s.Contains(number, "PRG-")

	number, err = s.service.Allocate(s.GetContext(), types.DocumentTypeErhaTicket)
	s.NoError(err)
	s.Contains(number, "ERH-")
}

func (s *AllocatorServiceSuite) TestConcurrentAllocationsAreDistinct() {
	const workers = 50

	pattern := regexp.MustCompile(`^EXP-\d{4}-\d{4}$`)

	var wg sync.WaitGroup
	results := make([]string, workers)
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = s.service.Allocate(s.GetContext(), types.DocumentTypeExpense)
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool, workers)
	for i := 0; i < workers; i++ {
		s.NoError(errs[i])
		s.Regexp(pattern, results[i])
		s.False(seen[results[i]], "number %s issued twice", results[i])
		seen[results[i]] = true
	}
	s.Len(seen, workers)
}

func (s *AllocatorServiceSuite) TestYearComponentMatchesCurrentYear() {
	year := time.Now().UTC().Year()

	number, err := s.service.Allocate(s.GetContext(), types.DocumentTypePlanning)
	s.NoError(err)
	s.Equal(fmt.Sprintf("PLN-%d-0001", year), number)
}

func (s *AllocatorServiceSuite) TestRecoveryAfterTransientContention() {
	// Two contended attempts, then success; well inside the retry budget
	s.sequenceRepo.ContendFirst(2)

	number, err := s.service.Allocate(s.GetContext(), types.DocumentTypeInvoice)
	s.NoError(err)
	s.Contains(number, "INV-")
	s.Contains(number, "-0001")
}

func (s *AllocatorServiceSuite) TestAllocationTimeoutAfterRetryBudget() {
	// Contention on every attempt exhausts the retry budget
	s.sequenceRepo.ContendFirst(100)

	_, err := s.service.Allocate(s.GetContext(), types.DocumentTypeInvoice)
	s.Error(err)
	s.True(ierr.IsAllocationTimeout(err))
}

func (s *AllocatorServiceSuite) TestNonContentionErrorIsNotRetried() {
	_, err := s.service.Allocate(s.GetContext(), types.DocumentType("bogus"))
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *AllocatorServiceSuite) TestAllocateMany() {
	numbers, err := s.service.AllocateMany(s.GetContext(), []types.DocumentType{
		types.DocumentTypeQuotation,
		types.DocumentTypeInvoice,
		types.DocumentTypeQuotation,
	})
	s.NoError(err)
	s.Len(numbers, 3)
	s.Contains(numbers[0], "QTN-")
	s.Contains(numbers[0], "-0001")
	s.Contains(numbers[1], "INV-")
	s.Contains(numbers[2], "QTN-")
	s.Contains(numbers[2], "-0002")
}

func (s *AllocatorServiceSuite) TestFormatBusinessNumber() {
	s.Equal("INV-2026-0001", FormatBusinessNumber("INV", 2026, 1))
	s.Equal("QTN-2026-0042", FormatBusinessNumber("QTN", 2026, 42))
	// Values past four digits keep growing rather than wrapping
	s.Equal("EXP-2026-10001", FormatBusinessNumber("EXP", 2026, 10001))
}
