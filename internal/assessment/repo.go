package assessment

import (
	"context"
	"errors"
)

var ErrTestNotFound = errors.New("test not found")

type Store interface {
	// PutTest upserts a catalog entry. Only the seeder calls this; tests are
	// immutable once the process is serving.
	PutTest(ctx context.Context, t Test) error
	GetTest(ctx context.Context, id string) (Test, error)
	ListTests(ctx context.Context) ([]TestSummary, error)

	// RecordResult persists a scored submission. It never validates and never
	// rejects; the store assigns the id and creation timestamp. Results are
	// append-only: no update or delete exists.
	RecordResult(ctx context.Context, testID, anonymousID string, answers []int, score int, band string) (TestResult, error)
	ListResults(ctx context.Context, anonymousID string) ([]TestResult, error)
}
