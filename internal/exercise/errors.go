package exercise

import "errors"

var (
	// ErrUnknownCategory is returned when asked to generate for a category
	// that is neither a practice module nor the challenge pool.
	ErrUnknownCategory = errors.New("exercise: unknown category")

	// ErrRerollLimit is returned when no acceptable operands were drawn
	// within Config.MaxRerolls attempts.
	ErrRerollLimit = errors.New("exercise: re-roll limit reached")
)
