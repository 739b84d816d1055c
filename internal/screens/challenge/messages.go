package challenge

import (
	"time"

	"github.com/abhisek/matrixlab/internal/exercise"
)

// timerTickMsg is sent every second to advance the countdown.
type timerTickMsg time.Time

// difficultyChosenMsg is sent when a difficulty is picked from the menu.
type difficultyChosenMsg struct {
	Difficulty exercise.Difficulty
}
