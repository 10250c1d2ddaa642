package execution

import (
	"context"
	"time"

	"simtool/internal/config"
	"simtool/internal/domain"
	"simtool/internal/trace"
)

// Runner executes a single test through the external test framework.
type Runner struct {
	config  *config.Config
	cmd     CommandRunner
	capture *trace.Capture
}

// NewRunner creates a new Runner. capture may be nil when tracing is
// disabled.
func NewRunner(cfg *config.Config, cmd CommandRunner, capture *trace.Capture) *Runner {
	return &Runner{config: cfg, cmd: cmd, capture: capture}
}

// Command builds the framework invocation for a test without running it.
func (r *Runner) Command(id domain.TestID) Command {
	argv := make([]string, 0, len(r.config.Runner)+1)
	argv = append(argv, r.config.Runner...)
	argv = append(argv, id.Name)

	cmd := Command{Argv: argv, Dir: r.config.GetTestPath()}
	if r.capture != nil {
		cmd.Env = r.capture.Env(id)
	}
	return cmd
}

// Run executes the framework for a single test.
func (r *Runner) Run(ctx context.Context, id domain.TestID) domain.TestResult {
	start := time.Now()
	output, err := r.cmd.Run(ctx, r.Command(id))

	return domain.TestResult{
		Test:     id,
		Success:  err == nil,
		Output:   string(output),
		Err:      err,
		Duration: time.Since(start),
	}
}
