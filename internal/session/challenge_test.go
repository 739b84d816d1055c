package session

import (
	"errors"
	"sync"
	"testing"

	"github.com/abhisek/matrixlab/internal/exercise"
	"github.com/abhisek/matrixlab/internal/matrix"
)

func startedChallenge(t *testing.T, kind exercise.Kind, seconds int, progress *Progress) *Challenge {
	t.Helper()
	c := NewChallenge(exercise.DifficultyNormal, newStub(kind), progress)
	if err := c.Start(seconds); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return c
}

func TestChallenge_TimesOutWithoutAnswers(t *testing.T) {
	progress := NewProgress()
	c := startedChallenge(t, exercise.KindAdd, 90, progress)

	for i := 0; i < 89; i++ {
		if !c.Tick() {
			t.Fatalf("challenge ended early at tick %d", i+1)
		}
	}
	if c.Tick() {
		t.Fatal("challenge still running after 90 ticks")
	}

	if c.Phase() != PhaseEnded {
		t.Errorf("Phase = %v, want ended", c.Phase())
	}
	res := c.Result()
	if res.Score != 0 || res.Accuracy != 0 || res.Answered != 0 {
		t.Errorf("Result = %+v, want zero score and accuracy", res)
	}
	if res.Band != BandKeepPracticing {
		t.Errorf("Band = %q, want keep practicing", res.Band)
	}
	if c.Remaining() != 0 {
		t.Errorf("Remaining = %d, want 0", c.Remaining())
	}
}

func TestChallenge_ComboScoring(t *testing.T) {
	c := startedChallenge(t, exercise.KindDeterminant, 120, NewProgress())

	// base 20; bonus min(combo-1, 5)·5
	want := []int{20, 25, 30, 35, 40, 45, 45}
	total := 0
	for i, w := range want {
		out, err := c.Submit(rightAnswer)
		if err != nil {
			t.Fatal(err)
		}
		if out.Points != w || out.Combo != i+1 {
			t.Errorf("answer %d: points=%d combo=%d, want %d/%d", i+1, out.Points, out.Combo, w, i+1)
		}
		total += w
	}
	if c.Score() != total {
		t.Errorf("Score = %d, want %d", c.Score(), total)
	}

	out, err := c.Submit(wrongAnswer)
	if err != nil {
		t.Fatal(err)
	}
	if out.Points != 0 || out.Combo != 0 {
		t.Errorf("wrong answer: points=%d combo=%d, want 0/0", out.Points, out.Combo)
	}
	if !matrix.Equal(out.Expected, rightAnswer) {
		t.Errorf("Expected = %s, want %s", out.Expected, rightAnswer)
	}

	out, _ = c.Submit(rightAnswer)
	if out.Points != 20 || out.Combo != 1 {
		t.Errorf("after reset: points=%d combo=%d, want 20/1", out.Points, out.Combo)
	}
}

func TestChallenge_BasePointsByKind(t *testing.T) {
	tests := []struct {
		kind exercise.Kind
		want int
	}{
		{exercise.KindAdd, 10},
		{exercise.KindSubtract, 10},
		{exercise.KindScalarMultiply, 12},
		{exercise.KindTranspose, 15},
		{exercise.KindDeterminant, 20},
		{exercise.KindElementLookup, 8},
	}
	for _, tt := range tests {
		c := startedChallenge(t, tt.kind, 60, NewProgress())
		out, err := c.Submit(rightAnswer)
		if err != nil {
			t.Fatal(err)
		}
		if out.Points != tt.want {
			t.Errorf("%s: Points = %d, want %d", tt.kind, out.Points, tt.want)
		}
	}
}

func TestChallenge_EndCreditsProgress(t *testing.T) {
	progress := NewProgress()
	c := startedChallenge(t, exercise.KindAdd, 60, progress)

	c.Submit(rightAnswer)
	c.Submit(rightAnswer)
	c.Submit(wrongAnswer)
	c.Submit(rightAnswer)

	res := c.End()
	if res.Score != 10+15+10 {
		t.Errorf("Score = %d, want 35", res.Score)
	}
	if res.Answered != 4 || res.Correct != 3 || res.Accuracy != 75 {
		t.Errorf("Result = %+v, want 3/4 (75%%)", res)
	}
	if res.Band != BandGreat {
		t.Errorf("Band = %q, want great", res.Band)
	}
	if progress.Score() != 35 || progress.Streak() != 1 {
		t.Errorf("progress = %d/%d, want 35/1", progress.Score(), progress.Streak())
	}

	// Idempotent.
	again := c.End()
	if again != res {
		t.Errorf("second End = %+v, want %+v", again, res)
	}
	if progress.Score() != 35 {
		t.Errorf("progress credited twice: %d", progress.Score())
	}
}

func TestChallenge_StateErrors(t *testing.T) {
	c := NewChallenge(exercise.DifficultyNormal, newStub(exercise.KindAdd), NewProgress())
	if _, err := c.Submit(rightAnswer); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Submit before Start: err = %v, want ErrNotStarted", err)
	}
	if c.Tick() {
		t.Error("Tick before Start should not run")
	}

	c.Start(1)
	c.Tick()
	if _, err := c.Submit(rightAnswer); !errors.Is(err, ErrSessionEnded) {
		t.Errorf("Submit after end: err = %v, want ErrSessionEnded", err)
	}
}

func TestChallenge_NextExerciseAfterEverySubmit(t *testing.T) {
	gen := newStub(exercise.KindAdd)
	c := NewChallenge(exercise.DifficultyNormal, gen, NewProgress())
	c.Start(30)
	c.Submit(rightAnswer)
	c.Submit(wrongAnswer)
	if gen.calls != 3 {
		t.Errorf("generator calls = %d, want 3", gen.calls)
	}
}

func TestChallenge_TickRacesSubmit(t *testing.T) {
	c := startedChallenge(t, exercise.KindAdd, 50, NewProgress())

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for c.Tick() {
		}
	}()
	go func() {
		defer wg.Done()
		for {
			if _, err := c.Submit(rightAnswer); err != nil {
				if !errors.Is(err, ErrSessionEnded) {
					t.Errorf("Submit: %v", err)
				}
				return
			}
		}
	}()
	wg.Wait()

	res := c.Result()
	if res.Answered != res.Correct {
		t.Errorf("Result = %+v, every answer was correct", res)
	}
}

func TestDurationFor(t *testing.T) {
	tests := []struct {
		d    exercise.Difficulty
		want int
	}{
		{exercise.DifficultyBeginner, 180},
		{exercise.DifficultyNormal, 120},
		{exercise.DifficultyExpert, 90},
		{"", 120},
	}
	for _, tt := range tests {
		if got := int(DurationFor(tt.d).Seconds()); got != tt.want {
			t.Errorf("DurationFor(%q) = %ds, want %ds", tt.d, got, tt.want)
		}
	}
}

func TestChallengeBand(t *testing.T) {
	tests := []struct {
		acc  float64
		want Band
	}{
		{100, BandMaster},
		{90, BandMaster},
		{89.9, BandGreat},
		{70, BandGreat},
		{50, BandGood},
		{49, BandKeepPracticing},
		{0, BandKeepPracticing},
	}
	for _, tt := range tests {
		if got := ChallengeBand(tt.acc); got != tt.want {
			t.Errorf("ChallengeBand(%v) = %q, want %q", tt.acc, got, tt.want)
		}
	}
}

func TestChallenge_RunsOnce(t *testing.T) {
	progress := NewProgress()
	c := startedChallenge(t, exercise.KindAdd, 5, progress)

	if err := c.Start(5); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("Start while running: err = %v, want ErrAlreadyStarted", err)
	}
	if _, err := c.Submit(rightAnswer); err != nil {
		t.Fatal(err)
	}
	first := c.End()

	if err := c.Start(5); !errors.Is(err, ErrSessionEnded) {
		t.Errorf("Start after end: err = %v, want ErrSessionEnded", err)
	}
	if c.Phase() != PhaseEnded {
		t.Errorf("Phase = %v, want ended", c.Phase())
	}
	if _, err := c.Submit(rightAnswer); !errors.Is(err, ErrSessionEnded) {
		t.Errorf("Submit after restart attempt: err = %v, want ErrSessionEnded", err)
	}
	if got := c.End(); got != first {
		t.Errorf("End = %+v, want unchanged %+v", got, first)
	}
	if progress.Score() != first.Score {
		t.Errorf("progress score = %d, want %d credited once", progress.Score(), first.Score)
	}
}

func TestChallenge_GeneratorErrorDoesNotCountAnswer(t *testing.T) {
	gen := newStub(exercise.KindAdd)
	gen.err = exercise.ErrRerollLimit
	gen.failAfter = 1
	c := NewChallenge(exercise.DifficultyNormal, gen, NewProgress())
	if err := c.Start(60); err != nil {
		t.Fatal(err)
	}
	open := c.Current()

	for i := 0; i < 3; i++ {
		if _, err := c.Submit(rightAnswer); !errors.Is(err, exercise.ErrRerollLimit) {
			t.Fatalf("Submit %d: err = %v, want ErrRerollLimit", i+1, err)
		}
	}
	if c.Score() != 0 || c.Answered() != 0 || c.Correct() != 0 || c.Combo() != 0 {
		t.Errorf("tally = score %d answered %d correct %d combo %d, want all zero",
			c.Score(), c.Answered(), c.Correct(), c.Combo())
	}
	if c.Current() != open {
		t.Error("current exercise should stay open")
	}

	gen.err = nil
	out, err := c.Submit(rightAnswer)
	if err != nil {
		t.Fatal(err)
	}
	if out.Points != 10 || c.Answered() != 1 {
		t.Errorf("points = %d answered = %d, want 10/1 once drawing works again", out.Points, c.Answered())
	}
}
