package execution

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"simtool/internal/domain"
	"simtool/internal/parser"
	"simtool/internal/ui"
)

// SequentialExecutor runs tests one at a time, in discovery order.
// Dispatch is strictly synchronous: each framework invocation blocks
// until completion before the next starts.
type SequentialExecutor struct {
	runner   *Runner
	parser   *parser.UnittestParser
	progress *ui.ProgressBar
	log      zerolog.Logger
	failFast bool
}

// NewSequentialExecutor creates a new SequentialExecutor. When
// caseParser is non-nil, progress counts come from the parsed
// framework output instead of per-invocation pass/fail.
func NewSequentialExecutor(runner *Runner, caseParser *parser.UnittestParser, log zerolog.Logger) *SequentialExecutor {
	return &SequentialExecutor{runner: runner, parser: caseParser, log: log}
}

// SetProgress sets the progress bar for the executor.
func (e *SequentialExecutor) SetProgress(progress *ui.ProgressBar) {
	e.progress = progress
}

// SetFailFast makes Execute stop after the first failing test.
func (e *SequentialExecutor) SetFailFast(failFast bool) {
	e.failFast = failFast
}

// Execute runs all tests in order and returns their results. An
// interrupted run returns the results collected so far together with
// the context error.
func (e *SequentialExecutor) Execute(ctx context.Context, tests []domain.TestID) ([]domain.TestResult, time.Duration, error) {
	if len(tests) == 0 {
		return nil, 0, nil
	}

	start := time.Now()
	results := make([]domain.TestResult, 0, len(tests))
	passed, failed := 0, 0

	for _, id := range tests {
		if err := ctx.Err(); err != nil {
			return results, time.Since(start), err
		}

		e.log.Info().Str("test", id.Name).Msg("running")
		e.log.Debug().Str("command", e.runner.Command(id).String()).Msg("dispatch")

		result := e.runner.Run(ctx, id)
		results = append(results, result)
		if e.parser != nil {
			p, f := e.parser.ParseCounts(result)
			passed += p
			failed += f
		} else if result.Success {
			passed++
		} else {
			failed++
		}
		if e.progress != nil {
			e.progress.Update(len(results), passed, failed)
		}

		if e.failFast && !result.Success {
			break
		}
	}

	if e.progress != nil {
		e.progress.Finish()
	}
	return results, time.Since(start), nil
}
