package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"simtool/internal/config"
	"simtool/internal/domain"
	"simtool/internal/execution"
	"simtool/internal/lint"
	"simtool/internal/logging"
	"simtool/internal/ui"
)

// LintCommands handles the lint binary's subcommands.
type LintCommands struct {
	config    *config.Config
	cmdRunner execution.CommandRunner
	formatter *ui.Formatter
}

// NewLintCommands creates a new LintCommands.
func NewLintCommands(cfg *config.Config, cmdRunner execution.CommandRunner, formatter *ui.Formatter) *LintCommands {
	return &LintCommands{
		config:    cfg,
		cmdRunner: cmdRunner,
		formatter: formatter,
	}
}

// Register adds the lint subcommands to the root command.
func (lc *LintCommands) Register(rootCmd *cobra.Command) {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "format [filename...]",
		Short: "Rewrite files with the formatter",
		Long:  "Run black in write mode on the given files, or the whole tree",
		RunE:  lc.dispatch(func(d *lint.Dispatcher, ctx context.Context, files []string) []domain.LintStageResult {
			return d.Format(ctx, files)
		}),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "check_format [filename...]",
		Short: "Check formatting and style without modifying files",
		Long:  "Run black in check mode and flake8 on the given files, or the whole tree",
		RunE:  lc.dispatch(func(d *lint.Dispatcher, ctx context.Context, files []string) []domain.LintStageResult {
			return d.CheckFormat(ctx, files)
		}),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "check_types [filename...]",
		Short: "Run the static type checker",
		Long:  "Run pyright on the given files, or the whole tree",
		RunE:  lc.dispatch(func(d *lint.Dispatcher, ctx context.Context, files []string) []domain.LintStageResult {
			return d.CheckTypes(ctx, files)
		}),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "verify [filename...]",
		Short: "Run all checks",
		Long:  "Run the format check, style check and type check, reporting every failure",
		RunE:  lc.dispatch(func(d *lint.Dispatcher, ctx context.Context, files []string) []domain.LintStageResult {
			return d.Verify(ctx, files)
		}),
	})
}

// dispatch builds a RunE that forwards to the dispatcher and turns
// failing stages into a non-zero exit.
func (lc *LintCommands) dispatch(fn func(*lint.Dispatcher, context.Context, []string) []domain.LintStageResult) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		log := logging.New(lc.config.Flags.Verbose)
		dispatcher := lint.NewDispatcher(lc.config, lc.cmdRunner, log)

		results := fn(dispatcher, cmd.Context(), args)
		lc.formatter.PrintLintResults(results)

		if failed := lint.Failed(results); len(failed) > 0 {
			return fmt.Errorf("%d of %d stage(s) failed", len(failed), len(results))
		}
		return nil
	}
}
