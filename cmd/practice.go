package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/matrixlab/internal/app"
	"github.com/abhisek/matrixlab/internal/exercise"
)

var practiceCmd = &cobra.Command{
	Use:   "practice <module>",
	Short: "Start a practice quiz on one module",
	Long:  "Start a practice quiz. The module is a name from `matrixlab modules` or its number.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := resolveModule(args[0])
		if err != nil {
			return err
		}
		return runApp(cmd, app.Options{Start: app.StartPractice, Category: category})
	},
}

func init() {
	practiceCmd.Flags().String("difficulty", "", "Difficulty recorded on exercises (overrides MATRIXLAB_DIFFICULTY)")
}

// resolveModule maps a module name or number to its category.
func resolveModule(arg string) (exercise.Category, error) {
	c, ok := exercise.ParseCategory(arg)
	if !ok {
		return "", fmt.Errorf("unknown module %q (run `matrixlab modules` to list them)", arg)
	}
	return c, nil
}
