package service

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	ierr "github.com/studioledger/studioledger/internal/errors"
	"github.com/studioledger/studioledger/internal/types"
)

// AllocatorService issues the human-facing business numbers shared by every
// document type. Numbers have the fixed shape PREFIX-YYYY-NNNN and are
// allocated from a durable per-(prefix, year) counter, so any number of
// concurrent requests for the same stream receive pairwise-distinct values.
type AllocatorService interface {
	// Allocate returns the next business number for the document type.
	Allocate(ctx context.Context, docType types.DocumentType) (string, error)

	// AllocateMany allocates one number per document type, acquiring each
	// counter strictly one at a time so no two key locks are ever held
	// together.
	AllocateMany(ctx context.Context, docTypes []types.DocumentType) ([]string, error)
}

type allocatorService struct {
	ServiceParams
}

func NewAllocatorService(params ServiceParams) AllocatorService {
	return &allocatorService{ServiceParams: params}
}

// FormatBusinessNumber renders a sequence value as PREFIX-YYYY-NNNN.
func FormatBusinessNumber(prefix string, year int, value int64) string {
	return fmt.Sprintf("%s-%04d-%04d", prefix, year, value)
}

func (s *allocatorService) Allocate(ctx context.Context, docType types.DocumentType) (string, error) {
	if err := docType.Validate(); err != nil {
		return "", err
	}

	prefix := docType.NumberPrefix()
	year := time.Now().UTC().Year()

	// The repository serializes the increment per (prefix, year) key and
	// persists the new value before returning it, so retrying after a
	// contention error can only skip a value, never repeat one.
	policy := backoff.WithContext(backoff.WithMaxRetries(s.retryPolicy(), s.Config.Allocator.MaxAttempts-1), ctx)

	var value int64
	operation := func() error {
		v, err := s.SequenceRepo.Next(ctx, prefix, year)
		if err != nil {
			if ierr.IsLockContention(err) {
				return err // retryable
			}
			return backoff.Permanent(err)
		}
		value = v
		return nil
	}

	if err := backoff.Retry(operation, policy); err != nil {
		if ierr.IsLockContention(err) {
			s.Logger.Errorw("sequence allocation exhausted retry budget",
				"prefix", prefix,
				"year", year,
				"max_attempts", s.Config.Allocator.MaxAttempts,
			)
			return "", ierr.WithError(err).
				WithHint("could not allocate a document number, please retry").
				WithReportableDetails(map[string]any{
					"prefix": prefix,
					"year":   year,
				}).
				Mark(ierr.ErrAllocationTimeout)
		}
		return "", err
	}

	return FormatBusinessNumber(prefix, year, value), nil
}

func (s *allocatorService) AllocateMany(ctx context.Context, docTypes []types.DocumentType) ([]string, error) {
	numbers := make([]string, 0, len(docTypes))
	for _, docType := range docTypes {
		number, err := s.Allocate(ctx, docType)
		if err != nil {
			return nil, err
		}
		numbers = append(numbers, number)
	}
	return numbers, nil
}

func (s *allocatorService) retryPolicy() *backoff.ExponentialBackOff {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = s.Config.Allocator.InitialInterval()
	policy.MaxInterval = s.Config.Allocator.MaxInterval()
	policy.MaxElapsedTime = 0 // bounded by attempt count, not wall clock
	return policy
}
