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
		Use:   "lint {format|check_format|check_types|verify} [filename...]",
		Short: "Dispatch formatting and type checks to the project's tools",
		Long: `Forward a subcommand to the external formatting, style and type
checking tools (black, flake8, pyright) and aggregate their status.
Without file arguments the whole project tree is checked.`,
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
	cmds.RegisterLint(rootCmd, &flags, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
