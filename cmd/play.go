package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/matrixlab/internal/app"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a timed challenge",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, app.Options{Start: app.StartChallenge})
	},
}

func init() {
	playCmd.Flags().String("difficulty", "", "Challenge difficulty: beginner, normal or expert (overrides MATRIXLAB_DIFFICULTY)")
}
