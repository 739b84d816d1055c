package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/matrixlab/internal/exercise"
	"github.com/abhisek/matrixlab/internal/matrix"
)

// DefaultPracticeQuestions is the number of exercises in a practice quiz.
const DefaultPracticeQuestions = 5

// PracticePhase is the state of a practice quiz.
type PracticePhase int

const (
	PhaseAwaitingAnswer PracticePhase = iota // Current exercise is open
	PhaseGraded                              // Current exercise has a verdict
	PhaseCompleted                           // All exercises answered
)

// PracticeResult is the final tally of a practice quiz.
type PracticeResult struct {
	Correct int
	Total   int
	Percent float64
	Band    Band
}

// PracticeOption configures a Practice.
type PracticeOption func(*Practice)

// WithQuestions overrides the number of exercises.
func WithQuestions(n int) PracticeOption {
	return func(p *Practice) {
		if n > 0 {
			p.total = n
		}
	}
}

// WithDifficulty records the difficulty on generated exercises.
func WithDifficulty(d exercise.Difficulty) PracticeOption {
	return func(p *Practice) { p.difficulty = d }
}

// WithEventSink sets where practice events are recorded.
func WithEventSink(s EventSink) PracticeOption {
	return func(p *Practice) { p.sink = s }
}

// Practice is an untimed quiz over a single category. Correct answers award
// 10 + 2·streak points to the shared Progress; wrong answers reset the
// streak.
type Practice struct {
	mu sync.Mutex

	id         string
	category   exercise.Category
	difficulty exercise.Difficulty
	gen        exercise.Generator
	progress   *Progress
	sink       EventSink

	total     int
	number    int // 1-based number of the current exercise
	correct   int
	started   bool
	startTime time.Time

	phase      PracticePhase
	current    *exercise.Exercise
	verdict    exercise.Verdict
	lastPoints int
}

// NewPractice creates a practice quiz. Call Start to draw the first exercise.
func NewPractice(category exercise.Category, gen exercise.Generator, progress *Progress, opts ...PracticeOption) *Practice {
	p := &Practice{
		id:         uuid.NewString(),
		category:   category,
		difficulty: exercise.DifficultyNormal,
		gen:        gen,
		progress:   progress,
		sink:       NopSink{},
		total:      DefaultPracticeQuestions,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start resets the tally and draws the first exercise.
func (p *Practice) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	ex, err := p.gen.Generate(p.category, p.difficulty)
	if err != nil {
		return fmt.Errorf("generate exercise: %w", err)
	}
	p.started = true
	p.startTime = time.Now()
	p.number = 1
	p.correct = 0
	p.current = ex
	p.verdict = exercise.Verdict{}
	p.lastPoints = 0
	p.phase = PhaseAwaitingAnswer

	record("session", func() error {
		return p.sink.RecordSession(SessionEventData{
			SessionID: p.id,
			Mode:      ModePractice,
			Category:  string(p.category),
			Action:    "start",
		})
	})
	return nil
}

// Submit grades answer against the current exercise.
func (p *Practice) Submit(answer matrix.Matrix) (exercise.Verdict, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch {
	case !p.started:
		return exercise.Verdict{}, ErrNotStarted
	case p.phase == PhaseCompleted:
		return exercise.Verdict{}, ErrSessionCompleted
	case p.phase == PhaseGraded:
		return exercise.Verdict{}, ErrAlreadyGraded
	}

	v := exercise.Verify(answer, p.current.Expected)
	p.verdict = v
	p.phase = PhaseGraded
	p.lastPoints = 0

	if v.Correct {
		p.correct++
		p.lastPoints = 10 + p.progress.Streak()*2
		p.progress.AddScore(p.lastPoints)
	} else {
		p.progress.ResetStreak()
	}

	record("answer", func() error {
		return p.sink.RecordAnswer(AnswerEventData{
			SessionID:  p.id,
			ExerciseID: p.current.ID,
			Category:   string(p.category),
			Kind:       string(p.current.Kind),
			Correct:    v.Correct,
			Points:     p.lastPoints,
			Streak:     p.progress.Streak(),
		})
	})
	return v, nil
}

// Advance moves past a graded exercise, either to the next one or to
// completion.
func (p *Practice) Advance() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch {
	case !p.started:
		return ErrNotStarted
	case p.phase == PhaseCompleted:
		return ErrSessionCompleted
	case p.phase != PhaseGraded:
		return ErrNotGraded
	}

	if p.number >= p.total {
		p.phase = PhaseCompleted
		p.current = nil
		record("session", func() error {
			return p.sink.RecordSession(SessionEventData{
				SessionID: p.id,
				Mode:      ModePractice,
				Category:  string(p.category),
				Action:    "end",
				Answered:  p.total,
				Correct:   p.correct,
				Duration:  time.Since(p.startTime),
			})
		})
		return nil
	}

	ex, err := p.gen.Generate(p.category, p.difficulty)
	if err != nil {
		return fmt.Errorf("generate exercise: %w", err)
	}
	p.number++
	p.current = ex
	p.verdict = exercise.Verdict{}
	p.lastPoints = 0
	p.phase = PhaseAwaitingAnswer
	return nil
}

// Result returns the tally so far. Percent is relative to the full quiz.
func (p *Practice) Result() PracticeResult {
	p.mu.Lock()
	defer p.mu.Unlock()

	pct := float64(p.correct) / float64(p.total) * 100
	return PracticeResult{
		Correct: p.correct,
		Total:   p.total,
		Percent: pct,
		Band:    PracticeBand(pct),
	}
}

// ID returns the session's uuid.
func (p *Practice) ID() string { return p.id }

// Category returns the practiced category.
func (p *Practice) Category() exercise.Category { return p.category }

// Current returns the open or just-graded exercise, nil once completed.
func (p *Practice) Current() *exercise.Exercise {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Phase returns the quiz state.
func (p *Practice) Phase() PracticePhase {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.phase
}

// Number returns the 1-based number of the current exercise.
func (p *Practice) Number() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.number
}

// Total returns the number of exercises in the quiz.
func (p *Practice) Total() int { return p.total }

// CorrectCount returns the number of correct answers so far.
func (p *Practice) CorrectCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.correct
}

// LastVerdict returns the verdict of the most recent submission.
func (p *Practice) LastVerdict() exercise.Verdict {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.verdict
}

// LastPoints returns the points awarded for the most recent submission.
func (p *Practice) LastPoints() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastPoints
}
