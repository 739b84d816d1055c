package session

import "errors"

var (
	// ErrNotStarted is returned when a session is used before Start.
	ErrNotStarted = errors.New("session: not started")

	// ErrAlreadyGraded is returned when a practice answer is submitted while
	// the current exercise has already been graded.
	ErrAlreadyGraded = errors.New("session: exercise already graded")

	// ErrNotGraded is returned by Advance before the current exercise has
	// been graded.
	ErrNotGraded = errors.New("session: exercise not graded yet")

	// ErrSessionCompleted is returned once all practice exercises are done.
	ErrSessionCompleted = errors.New("session: practice completed")

	// ErrAlreadyStarted is returned by Start on a running challenge.
	ErrAlreadyStarted = errors.New("session: challenge already started")

	// ErrSessionEnded is returned when a challenge is used after its end.
	ErrSessionEnded = errors.New("session: challenge ended")
)
