package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"simtool/internal/config"
	"simtool/internal/discovery"
	"simtool/internal/domain"
	"simtool/internal/execution"
	"simtool/internal/logging"
	"simtool/internal/parser"
	"simtool/internal/storage"
	"simtool/internal/trace"
	"simtool/internal/ui"
)

// RunCommand handles the run_tests root command.
type RunCommand struct {
	config    *config.Config
	discovery *discovery.Discovery
	filter    *discovery.Filter
	cmdRunner execution.CommandRunner
	storage   storage.Storage
	formatter *ui.Formatter
	parser    *parser.UnittestParser
}

// NewRunCommand creates a new RunCommand.
func NewRunCommand(
	cfg *config.Config,
	disc *discovery.Discovery,
	filter *discovery.Filter,
	cmdRunner execution.CommandRunner,
	st storage.Storage,
	formatter *ui.Formatter,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		discovery: disc,
		filter:    filter,
		cmdRunner: cmdRunner,
		storage:   st,
		formatter: formatter,
		parser:    parser.NewUnittestParser(),
	}
}

// Execute runs the command.
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	flags := rc.config.Flags
	log := logging.New(flags.Verbose)

	// Discover tests
	tests, err := rc.discovery.Discover(rc.config.GetTestPath())
	if err != nil {
		return err
	}

	// Restrict to last run's failures if requested
	if flags.Failed {
		failedNames, err := rc.lastFailedNames()
		if err != nil {
			return err
		}
		tests = rc.filter.ByNames(tests, failedNames)
	}

	// Filter by query substring
	tests = rc.filter.ByQuery(tests, flags.Query)

	// List mode prints and exits without executing anything
	if flags.List {
		rc.formatter.PrintTestList(tests)
		return nil
	}

	if len(tests) == 0 {
		color.Yellow("No tests matched")
		return nil
	}

	// Set up trace capture if requested
	var capture *trace.Capture
	if flags.Trace {
		capture = trace.NewCapture(rc.config.GetTraceDir())
		if err := capture.Prepare(); err != nil {
			return err
		}
	}

	runner := execution.NewRunner(rc.config, rc.cmdRunner, capture)
	executor := execution.NewSequentialExecutor(runner, rc.parser, log)
	executor.SetFailFast(flags.FailFast)
	executor.SetProgress(ui.NewProgressBar(len(tests)))

	results, duration, err := executor.Execute(cmd.Context(), tests)
	if err != nil {
		return fmt.Errorf("run aborted: %w", err)
	}

	// Parse failures and case counts from the framework output
	var failures []domain.TestFailure
	var cases domain.CaseCounts
	failedCount := 0
	for _, result := range results {
		p, f := rc.parser.ParseCounts(result)
		cases.Passed += p
		cases.Failed += f
		if !result.Success {
			failedCount++
			failures = append(failures, rc.parser.ParseFailures(result)...)
		}
	}

	// Save results
	if err := rc.storage.Save(results, failures, cases, duration, flags.Query, flags.Trace); err != nil {
		return fmt.Errorf("failed to save test results: %w", err)
	}

	// Report
	output, err := rc.storage.Load()
	if err != nil {
		return err
	}
	rc.formatter.PrintRunSummary(output.Meta)
	rc.formatter.PrintFailures(failures)

	if failedCount > 0 {
		return fmt.Errorf("%d of %d tests failed", failedCount, len(results))
	}
	return nil
}

// lastFailedNames loads the previous run's failed test names.
func (rc *RunCommand) lastFailedNames() (map[string]struct{}, error) {
	output, err := rc.storage.Load()
	if err != nil {
		return nil, fmt.Errorf("no previous run results: %w", err)
	}
	names := make(map[string]struct{}, len(output.Details))
	for _, failure := range output.Details {
		names[failure.TestName] = struct{}{}
	}
	return names, nil
}
