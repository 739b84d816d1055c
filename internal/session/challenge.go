package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/matrixlab/internal/exercise"
	"github.com/abhisek/matrixlab/internal/matrix"
)

// Challenge time budgets per difficulty.
const (
	BeginnerDuration = 180 * time.Second
	NormalDuration   = 120 * time.Second
	ExpertDuration   = 90 * time.Second
)

// MaxComboBonusSteps caps the combo bonus at 5 steps of 5 points.
const MaxComboBonusSteps = 5

// DurationFor returns the challenge time budget for a difficulty.
func DurationFor(d exercise.Difficulty) time.Duration {
	switch d {
	case exercise.DifficultyBeginner:
		return BeginnerDuration
	case exercise.DifficultyExpert:
		return ExpertDuration
	default:
		return NormalDuration
	}
}

// ChallengePhase is the state of a challenge.
type ChallengePhase int

const (
	PhaseIdle    ChallengePhase = iota // Created, not started
	PhaseRunning                       // Timer running, accepting answers
	PhaseEnded                         // Time is up or ended early
)

// ChallengeOutcome describes a graded challenge answer.
type ChallengeOutcome struct {
	Verdict  exercise.Verdict
	Points   int
	Combo    int
	Expected matrix.Matrix
	Kind     exercise.Kind
}

// ChallengeResult is the final tally of a challenge.
type ChallengeResult struct {
	Score    int
	Answered int
	Correct  int
	Accuracy float64 // 0-100
	Band     Band
}

// ChallengeOption configures a Challenge.
type ChallengeOption func(*Challenge)

// WithChallengeEventSink sets where challenge events are recorded.
func WithChallengeEventSink(s EventSink) ChallengeOption {
	return func(c *Challenge) { c.sink = s }
}

// Challenge is a timed run over the mixed pool. Correct answers score the
// exercise's base points plus a combo bonus; the total is credited to the
// shared Progress when the challenge ends.
type Challenge struct {
	mu sync.Mutex

	id         string
	difficulty exercise.Difficulty
	gen        exercise.Generator
	progress   *Progress
	sink       EventSink

	phase     ChallengePhase
	duration  int // seconds
	remaining int // seconds
	score     int
	combo     int
	answered  int
	correct   int
	current   *exercise.Exercise
	result    ChallengeResult
}

// NewChallenge creates a challenge. Call Start to begin.
func NewChallenge(difficulty exercise.Difficulty, gen exercise.Generator, progress *Progress, opts ...ChallengeOption) *Challenge {
	c := &Challenge{
		id:         uuid.NewString(),
		difficulty: difficulty,
		gen:        gen,
		progress:   progress,
		sink:       NopSink{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start sets the countdown to durationSeconds and draws the first exercise.
// A challenge runs once: starting it again returns ErrAlreadyStarted while
// running and ErrSessionEnded after the end.
func (c *Challenge) Start(durationSeconds int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.phase {
	case PhaseRunning:
		return ErrAlreadyStarted
	case PhaseEnded:
		return ErrSessionEnded
	}

	ex, err := c.gen.Generate(exercise.CategoryMixed, c.difficulty)
	if err != nil {
		return fmt.Errorf("generate exercise: %w", err)
	}
	c.phase = PhaseRunning
	c.duration = durationSeconds
	c.remaining = durationSeconds
	c.current = ex

	record("session", func() error {
		return c.sink.RecordSession(SessionEventData{
			SessionID: c.id,
			Mode:      ModeChallenge,
			Category:  string(exercise.CategoryMixed),
			Action:    "start",
		})
	})

	if c.remaining <= 0 {
		c.endLocked()
	}
	return nil
}

// Tick advances the countdown by one second and ends the challenge when it
// reaches zero. It reports whether the challenge is still running.
func (c *Challenge) Tick() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseRunning {
		return false
	}
	c.remaining--
	if c.remaining <= 0 {
		c.remaining = 0
		c.endLocked()
		return false
	}
	return true
}

// Submit grades answer against the current exercise and draws the next one.
// If the next exercise cannot be drawn the answer is not counted and the
// current exercise stays open.
func (c *Challenge) Submit(answer matrix.Matrix) (ChallengeOutcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.phase {
	case PhaseIdle:
		return ChallengeOutcome{}, ErrNotStarted
	case PhaseEnded:
		return ChallengeOutcome{}, ErrSessionEnded
	}

	ex := c.current
	next, err := c.gen.Generate(exercise.CategoryMixed, c.difficulty)
	if err != nil {
		return ChallengeOutcome{}, fmt.Errorf("generate exercise: %w", err)
	}

	v := exercise.Verify(answer, ex.Expected)
	c.answered++
	c.current = next

	out := ChallengeOutcome{Verdict: v, Expected: ex.Expected, Kind: ex.Kind}
	if v.Correct {
		c.correct++
		c.combo++
		out.Points = ex.Points + min(c.combo-1, MaxComboBonusSteps)*5
		c.score += out.Points
	} else {
		c.combo = 0
	}
	out.Combo = c.combo

	record("answer", func() error {
		return c.sink.RecordAnswer(AnswerEventData{
			SessionID:  c.id,
			ExerciseID: ex.ID,
			Category:   string(exercise.CategoryMixed),
			Kind:       string(ex.Kind),
			Correct:    v.Correct,
			Points:     out.Points,
			Streak:     c.combo,
		})
	})

	return out, nil
}

// End stops the challenge and credits the score to Progress. Calling End
// more than once has no further effect.
func (c *Challenge) End() ChallengeResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase == PhaseRunning {
		c.endLocked()
	}
	return c.result
}

func (c *Challenge) endLocked() {
	c.phase = PhaseEnded
	c.progress.AddScore(c.score)

	var acc float64
	if c.answered > 0 {
		acc = float64(c.correct) / float64(c.answered) * 100
	}
	c.result = ChallengeResult{
		Score:    c.score,
		Answered: c.answered,
		Correct:  c.correct,
		Accuracy: acc,
		Band:     ChallengeBand(acc),
	}

	record("session", func() error {
		return c.sink.RecordSession(SessionEventData{
			SessionID: c.id,
			Mode:      ModeChallenge,
			Category:  string(exercise.CategoryMixed),
			Action:    "end",
			Answered:  c.answered,
			Correct:   c.correct,
			Score:     c.score,
			Duration:  time.Duration(c.duration-c.remaining) * time.Second,
		})
	})
}

// Result returns the final tally. It is zero until the challenge ends.
func (c *Challenge) Result() ChallengeResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

// ID returns the session's uuid.
func (c *Challenge) ID() string { return c.id }

// Phase returns the challenge state.
func (c *Challenge) Phase() ChallengePhase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Current returns the open exercise.
func (c *Challenge) Current() *exercise.Exercise {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Remaining returns the seconds left on the clock.
func (c *Challenge) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Score returns the points earned so far in this challenge.
func (c *Challenge) Score() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.score
}

// Combo returns the current run of correct answers.
func (c *Challenge) Combo() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.combo
}

// Answered returns the number of graded answers.
func (c *Challenge) Answered() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.answered
}

// Correct returns the number of correct answers.
func (c *Challenge) Correct() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.correct
}
