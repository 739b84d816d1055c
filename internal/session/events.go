package session

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Mode distinguishes practice quizzes from timed challenges in events.
type Mode string

const (
	ModePractice  Mode = "practice"
	ModeChallenge Mode = "challenge"
)

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID string
	Mode      Mode
	Category  string
	Action    string // "start" or "end"
	Answered  int
	Correct   int
	Score     int
	Duration  time.Duration
}

// AnswerEventData captures a single graded answer.
type AnswerEventData struct {
	SessionID  string
	ExerciseID string
	Category   string
	Kind       string
	Correct    bool
	Points     int
	Streak     int
}

// EventSink receives session events. Implementations must be safe for
// concurrent use.
type EventSink interface {
	// RecordSession records a session start or end.
	RecordSession(data SessionEventData) error

	// RecordAnswer records a graded answer.
	RecordAnswer(data AnswerEventData) error
}

// NopSink discards every event.
type NopSink struct{}

func (NopSink) RecordSession(SessionEventData) error { return nil }
func (NopSink) RecordAnswer(AnswerEventData) error   { return nil }

// WriterSink writes one line per event to an io.Writer.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink returns a sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) RecordSession(d SessionEventData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := fmt.Fprintf(s.w, "session %s mode=%s category=%s action=%s answered=%d correct=%d score=%d duration=%s\n",
		d.SessionID, d.Mode, d.Category, d.Action, d.Answered, d.Correct, d.Score, d.Duration.Round(time.Second))
	return err
}

func (s *WriterSink) RecordAnswer(d AnswerEventData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := fmt.Fprintf(s.w, "answer session=%s exercise=%s category=%s kind=%s correct=%t points=%d streak=%d\n",
		d.SessionID, d.ExerciseID, d.Category, d.Kind, d.Correct, d.Points, d.Streak)
	return err
}

// record calls fn and reports sink failures on stderr without failing the
// caller.
func record(what string, fn func() error) {
	if err := fn(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record %s event: %v\n", what, err)
	}
}
