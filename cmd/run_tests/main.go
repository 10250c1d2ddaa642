package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"simtool/internal/cli"
	"simtool/internal/cli/commands"
	"simtool/internal/config"
	"simtool/internal/execution"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "run_tests [query]",
		Short: "Run simulation tests matching a query",
		Long: `Discover the project's tests, select those whose dotted name
(file.Class.method) contains the query as a substring, and run them
through the test framework. With -t each test additionally captures a
waveform and a gtkwave save file.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var flags cli.Flags
	cmds := commands.NewCommands(cfg, execution.NewOSCommandRunner())
	cmds.RegisterRunner(rootCmd, &flags, cfg)

	// Interrupt kills the running framework process and exits non-zero
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
