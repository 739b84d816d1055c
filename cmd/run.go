package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/matrixlab/internal/app"
)

// runApp resolves configuration and launches the TUI at opts.Start.
func runApp(cmd *cobra.Command, opts app.Options) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	opts.Config = cfg
	return app.Run(opts)
}
