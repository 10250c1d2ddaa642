package execution

import (
	"context"
	"time"

	"simtool/internal/domain"
)

// Executor executes a set of tests and returns their results.
type Executor interface {
	Execute(ctx context.Context, tests []domain.TestID) ([]domain.TestResult, time.Duration, error)
}
