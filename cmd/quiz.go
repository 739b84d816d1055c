package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/matrixlab/internal/exercise"
	"github.com/abhisek/matrixlab/internal/matrix"
	"github.com/abhisek/matrixlab/internal/session"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <module>",
	Short: "Answer a practice quiz line by line, without the TUI",
	Long: `Run a practice quiz on plain stdin/stdout.

Useful in terminals without full-screen support and for scripting. Progress
is not kept between runs.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := resolveModule(args[0])
		if err != nil {
			return err
		}
		count, _ := cmd.Flags().GetInt("count")
		if count <= 0 {
			return fmt.Errorf("--count must be positive, got %d", count)
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}

		var sink session.EventSink = session.NopSink{}
		if cfg.LogEvents {
			sink = session.NewWriterSink(os.Stderr)
		}

		p := session.NewPractice(category, exercise.NewSeeded(seed, cfg.Exercise), session.NewProgress(),
			session.WithQuestions(count),
			session.WithDifficulty(cfg.Difficulty),
			session.WithEventSink(sink))
		return runQuiz(cmd.InOrStdin(), cmd.OutOrStdout(), p)
	},
}

func init() {
	quizCmd.Flags().Int("count", session.DefaultPracticeQuestions, "Number of exercises")
}

// runQuiz drives p from line-based input until the quiz completes or the
// input runs out.
func runQuiz(in io.Reader, out io.Writer, p *session.Practice) error {
	if err := p.Start(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	fmt.Fprintf(out, "Module: %s (%d exercises)\n\n", exercise.DisplayName(p.Category()), p.Total())

	for p.Phase() != session.PhaseCompleted {
		ex := p.Current()
		fmt.Fprintf(out, "── Exercise %d/%d ──\n", p.Number(), p.Total())
		writeExercise(out, ex)

		answer, ok := readAnswer(scanner, out, ex)
		if !ok {
			fmt.Fprintln(out, "\n(input closed)")
			break
		}

		v, err := p.Submit(answer)
		if err != nil {
			return err
		}
		if v.Correct {
			fmt.Fprintf(out, "✓ Correct! +%d\n\n", p.LastPoints())
		} else {
			fmt.Fprintf(out, "✗ Not quite. Answer: %s\n\n", answerText(ex))
		}

		if err := p.Advance(); err != nil {
			return err
		}
	}

	r := p.Result()
	fmt.Fprintf(out, "── Summary: %d/%d correct (%.0f%%) %s %s ──\n",
		r.Correct, r.Total, r.Percent, r.Band.Icon(), r.Band.DisplayName())
	return nil
}

// readAnswer prompts until the line parses. Blank lines are re-prompted
// rather than graded.
func readAnswer(scanner *bufio.Scanner, out io.Writer, ex *exercise.Exercise) (matrix.Matrix, bool) {
	for {
		fmt.Fprint(out, "Your answer: ")
		if !scanner.Scan() {
			return matrix.Matrix{}, false
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		answer, err := exercise.ParseAnswer(text, ex)
		if err != nil {
			fmt.Fprintf(out, "  %v\n", err)
			continue
		}
		return answer, true
	}
}

func writeExercise(out io.Writer, ex *exercise.Exercise) {
	fmt.Fprintln(out, exercise.Prompt(ex))
	names := []string{"A", "B"}
	for i, m := range ex.Operands {
		if i < len(names) {
			fmt.Fprintf(out, "  %s = %s\n", names[i], m)
		}
	}
	if ex.HasScalar {
		fmt.Fprintf(out, "  k = %s\n", matrix.FormatValue(ex.Scalar))
	}
	if choices := exercise.Choices(ex); choices != nil {
		for i, c := range choices {
			fmt.Fprintf(out, "  %d) %s\n", i+1, c.Label)
		}
	} else {
		fmt.Fprintf(out, "  (%s)\n", exercise.InputHint(ex))
	}
}

func answerText(ex *exercise.Exercise) string {
	v := ex.Expected.At(0, 0)
	for _, c := range exercise.Choices(ex) {
		if c.Value == v {
			return c.Label
		}
	}
	if ex.Expected.Rows() == 1 && ex.Expected.Cols() == 1 {
		return matrix.FormatValue(v)
	}
	return ex.Expected.String()
}
