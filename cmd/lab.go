package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/matrixlab/internal/app"
	"github.com/abhisek/matrixlab/internal/matrix"
	"github.com/abhisek/matrixlab/internal/steps"
)

var labCmd = &cobra.Command{
	Use:   "lab [operation]",
	Short: "Show the worked steps of a matrix operation",
	Long: `Without --a, open the interactive lab (optionally on one operation).
With --a, print the worked steps and exit.

Operations: ` + operationNames() + `

Matrices are written row by row, e.g. --a "1 2; 3 4".`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var op steps.Operation
		if len(args) == 1 {
			var ok bool
			if op, ok = steps.ParseOperation(args[0]); !ok {
				return fmt.Errorf("unknown operation %q (want one of %s)", args[0], operationNames())
			}
		}

		aText, _ := cmd.Flags().GetString("a")
		if aText == "" {
			return runApp(cmd, app.Options{Start: app.StartLab, Operation: op})
		}
		if op == "" {
			return fmt.Errorf("an operation is required with --a")
		}

		bText, _ := cmd.Flags().GetString("b")
		k, _ := cmd.Flags().GetFloat64("k")
		return printSteps(cmd.OutOrStdout(), op, aText, bText, k)
	},
}

func init() {
	labCmd.Flags().String("a", "", "Matrix A, rows separated by ;")
	labCmd.Flags().String("b", "", "Matrix B for add, subtract and multiply")
	labCmd.Flags().Float64("k", 1, "Scalar for scalar multiplication")
}

func operationNames() string {
	ops := steps.Operations()
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = string(op)
	}
	return strings.Join(names, ", ")
}

// printSteps parses the operands and writes the step trace for op to w.
func printSteps(w io.Writer, op steps.Operation, aText, bText string, k float64) error {
	a, err := matrix.ParseGrid(aText)
	if err != nil {
		return fmt.Errorf("matrix A: %w", err)
	}

	var b matrix.Matrix
	if op.NeedsB() {
		if bText == "" {
			return fmt.Errorf("%s needs --b", op)
		}
		if b, err = matrix.ParseGrid(bText); err != nil {
			return fmt.Errorf("matrix B: %w", err)
		}
	}

	lines, err := steps.Format(op, a, b, k)
	if err != nil {
		return err
	}
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
	return nil
}
