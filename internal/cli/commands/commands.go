package commands

import (
	"fmt"

	"simtool/internal/cli"
	"simtool/internal/config"
	"simtool/internal/discovery"
	"simtool/internal/execution"
	"simtool/internal/storage"
	"simtool/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands for both binaries.
type Commands struct {
	Run      *RunCommand
	Failures *FailuresCommand
	Lint     *LintCommands
}

// NewCommands creates all commands with dependencies.
func NewCommands(cfg *config.Config, cmdRunner execution.CommandRunner) *Commands {
	disc := discovery.New(cfg.SkipDirs)
	filter := discovery.NewFilter()
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	errorViewer := ui.NewErrorViewer(cfg, jsonStorage)

	return &Commands{
		Run:      NewRunCommand(cfg, disc, filter, cmdRunner, jsonStorage, formatter),
		Failures: NewFailuresCommand(cfg, jsonStorage, errorViewer),
		Lint:     NewLintCommands(cfg, cmdRunner, formatter),
	}
}

// RegisterRunner wires the run_tests binary: the root command runs the
// matching tests, and the failures subcommand opens the viewer.
func (c *Commands) RegisterRunner(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.Args = cobra.MaximumNArgs(1)
	rootCmd.RunE = c.Run.Execute
	rootCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		cfg.Flags = flags.ToConfigFlags()
		if len(args) > 0 {
			cfg.Flags.Query = args[0]
		}
		return nil
	}

	rootCmd.Flags().BoolVarP(&flags.List, "list", "l", false, "List matching tests without running them")
	rootCmd.Flags().BoolVarP(&flags.Trace, "trace", "t", false, "Capture a waveform and gtkwave save file per test")
	rootCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Log each test before it runs, plus the dispatched commands")
	rootCmd.Flags().BoolVar(&flags.Failed, "failed", false, "Run only tests that failed in the last run")
	rootCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop on first test failure")
	rootCmd.Flags().StringVar(&flags.TestDir, "test-dir", "", "Directory where test discovery should start")

	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View test failures interactively",
		Long:  "Display test failures from the last run in an interactive viewer",
		RunE:  c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)
}

// RegisterLint wires the lint binary's subcommands. A missing or
// unknown subcommand is an error so that shell callers see a non-zero
// exit instead of the help text.
func (c *Commands) RegisterLint(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Log each dispatched command")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cfg.Flags = flags.ToConfigFlags()
	}
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("missing subcommand: expected one of format, check_format, check_types, verify")
		}
		return fmt.Errorf("unknown subcommand %q", args[0])
	}
	c.Lint.Register(rootCmd)
}
