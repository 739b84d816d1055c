package session

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/matrixlab/internal/exercise"
)

func TestProgress_AddScoreAndReset(t *testing.T) {
	p := NewProgress()
	p.AddScore(10)
	p.AddScore(12)

	assert.Equal(t, 22, p.Score())
	assert.Equal(t, 2, p.Streak())

	p.ResetStreak()
	score, streak := p.Snapshot()
	assert.Equal(t, 22, score)
	assert.Equal(t, 0, streak)
}

func TestProgress_Concurrent(t *testing.T) {
	p := NewProgress()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.AddScore(2)
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, p.Score())
	assert.Equal(t, 50, p.Streak())
}

func TestPracticeBand(t *testing.T) {
	assert.Equal(t, BandExcellent, PracticeBand(90))
	assert.Equal(t, BandGood, PracticeBand(70))
	assert.Equal(t, BandKeepPracticing, PracticeBand(50))
	assert.Equal(t, BandDontGiveUp, PracticeBand(49.9))
	assert.Equal(t, "Excellent!", BandExcellent.DisplayName())
}

func TestWriterSink_RecordsPracticeRun(t *testing.T) {
	var buf bytes.Buffer
	sink := NewWriterSink(&buf)

	p := NewPractice(exercise.CategoryAddition, newStub(exercise.KindAdd), NewProgress(),
		WithQuestions(1), WithEventSink(sink))
	require.NoError(t, p.Start())
	_, err := p.Submit(rightAnswer)
	require.NoError(t, err)
	require.NoError(t, p.Advance())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "action=start")
	assert.Contains(t, lines[0], "session "+p.ID())
	assert.Contains(t, lines[1], "correct=true points=10 streak=1")
	assert.Contains(t, lines[2], "action=end answered=1 correct=1")
}

type failingSink struct{ NopSink }

func (failingSink) RecordAnswer(AnswerEventData) error { return assert.AnError }

func TestChallenge_SinkFailureDoesNotFailSubmit(t *testing.T) {
	c := NewChallenge(exercise.DifficultyNormal, newStub(exercise.KindAdd), NewProgress(),
		WithChallengeEventSink(failingSink{}))
	require.NoError(t, c.Start(10))

	out, err := c.Submit(rightAnswer)
	require.NoError(t, err)
	assert.Equal(t, 10, out.Points)
}
