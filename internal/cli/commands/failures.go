package commands

import (
	"github.com/spf13/cobra"

	"simtool/internal/config"
	"simtool/internal/storage"
	"simtool/internal/ui"
)

// FailuresCommand handles the failures subcommand.
type FailuresCommand struct {
	config  *config.Config
	storage storage.Storage
	viewer  *ui.ErrorViewer
}

// NewFailuresCommand creates a new FailuresCommand.
func NewFailuresCommand(cfg *config.Config, st storage.Storage, viewer *ui.ErrorViewer) *FailuresCommand {
	return &FailuresCommand{
		config:  cfg,
		storage: st,
		viewer:  viewer,
	}
}

// Execute runs the command.
func (fc *FailuresCommand) Execute(cmd *cobra.Command, args []string) error {
	results, err := fc.storage.Load()
	if err != nil {
		return err
	}
	return fc.viewer.View(results)
}
