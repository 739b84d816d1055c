package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/matrixlab/internal/exercise"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List the practice modules",
	Run: func(cmd *cobra.Command, args []string) {
		printModules(cmd.OutOrStdout())
	},
}

func printModules(w io.Writer) {
	mods := exercise.Modules()

	// Header.
	fmt.Fprintf(w, "%-3s  %-14s  %-24s  %-5s  %s\n", "#", "Module", "Name", "Level", "Description")
	fmt.Fprintln(w, strings.Repeat("─", 100))

	for i, m := range mods {
		fmt.Fprintf(w, "%-3d  %-14s  %-24s  %-5d  %s\n",
			i+1, m.Category, m.Name, m.Stars, m.Description)
	}

	fmt.Fprintf(w, "\n%d modules\n", len(mods))
}
