// Package lint dispatches formatting and type-checking subcommands to
// the project's external tools and aggregates their pass/fail status.
package lint

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/rs/zerolog"

	"simtool/internal/config"
	"simtool/internal/domain"
	"simtool/internal/execution"
)

// Dispatcher forwards lint subcommands to external tools. Stages run
// strictly in sequence; verify runs every stage and aggregates
// failures rather than short-circuiting.
type Dispatcher struct {
	config *config.Config
	cmd    execution.CommandRunner
	log    zerolog.Logger
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(cfg *config.Config, cmd execution.CommandRunner, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{config: cfg, cmd: cmd, log: log}
}

// Format rewrites the given files (or the whole tree) in place.
func (d *Dispatcher) Format(ctx context.Context, files []string) []domain.LintStageResult {
	return d.run(ctx, []stage{formatStage(d.config, files)})
}

// CheckFormat reports formatting and style violations without mutating
// any file.
func (d *Dispatcher) CheckFormat(ctx context.Context, files []string) []domain.LintStageResult {
	return d.run(ctx, checkFormatStages(d.config, files))
}

// CheckTypes runs the static type checker.
func (d *Dispatcher) CheckTypes(ctx context.Context, files []string) []domain.LintStageResult {
	return d.run(ctx, []stage{checkTypesStage(d.config, files)})
}

// Verify runs every check stage and reports all failures together.
func (d *Dispatcher) Verify(ctx context.Context, files []string) []domain.LintStageResult {
	stages := checkFormatStages(d.config, files)
	stages = append(stages, checkTypesStage(d.config, files))
	return d.run(ctx, stages)
}

// run executes the stages sequentially, collecting every result.
func (d *Dispatcher) run(ctx context.Context, stages []stage) []domain.LintStageResult {
	results := make([]domain.LintStageResult, 0, len(stages))
	for _, st := range stages {
		cmd := execution.Command{Argv: st.argv, Dir: d.config.ProjectPath}
		d.log.Debug().Str("stage", st.name).Str("command", cmd.String()).Msg("dispatch")

		output, err := d.cmd.Run(ctx, cmd)
		if err != nil && errors.Is(err, exec.ErrNotFound) {
			err = fmt.Errorf("stage %s: tool %s not found: %w", st.name, st.argv[0], err)
		} else if err != nil {
			err = fmt.Errorf("stage %s: %w", st.name, err)
		}

		results = append(results, domain.LintStageResult{
			Stage:   st.name,
			Command: cmd.String(),
			Output:  string(output),
			Err:     err,
		})
	}
	return results
}

// Failed returns the failing subset of results.
func Failed(results []domain.LintStageResult) []domain.LintStageResult {
	var failed []domain.LintStageResult
	for _, r := range results {
		if !r.Success() {
			failed = append(failed, r)
		}
	}
	return failed
}
