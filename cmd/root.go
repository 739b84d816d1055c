package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/matrixlab/internal/app"
	"github.com/abhisek/matrixlab/internal/config"
	"github.com/abhisek/matrixlab/internal/exercise"
)

var rootCmd = &cobra.Command{
	Use:   "matrixlab",
	Short: "Learn matrix operations in the terminal",
	Long:  "MatrixLab: practice quizzes, timed challenges and a step-by-step lab for matrix arithmetic.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, app.Options{Start: app.StartHome})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Uint64("seed", 0, "Seed for exercise generation, 0 seeds from the clock (overrides MATRIXLAB_SEED)")
	rootCmd.PersistentFlags().Bool("log", false, "Write session events to stderr (overrides MATRIXLAB_LOG)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(labCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment, then applies any flags the user set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.ConfigFromEnv()
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("log") {
		cfg.LogEvents, _ = flags.GetBool("log")
	}
	if flags.Lookup("difficulty") != nil && flags.Changed("difficulty") {
		d, _ := flags.GetString("difficulty")
		cfg.Difficulty = exercise.Difficulty(d)
	}

	return cfg, cfg.Validate()
}
