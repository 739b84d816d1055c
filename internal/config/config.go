package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/abhisek/matrixlab/internal/exercise"
)

// Config holds all runtime configuration.
type Config struct {
	// Seed seeds exercise generation. Zero means seed from the clock.
	Seed uint64

	// Difficulty is the default challenge difficulty and the difficulty
	// recorded on practice exercises.
	Difficulty exercise.Difficulty

	// LogEvents writes session and answer events to stderr.
	LogEvents bool

	Exercise exercise.Config
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Difficulty: exercise.DifficultyNormal,
		Exercise:   exercise.DefaultConfig(),
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values. Malformed values are reported by Validate.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if s := os.Getenv("MATRIXLAB_SEED"); s != "" {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("MATRIXLAB_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	if d := os.Getenv("MATRIXLAB_DIFFICULTY"); d != "" {
		cfg.Difficulty = exercise.Difficulty(d)
	}

	if l := os.Getenv("MATRIXLAB_LOG"); l != "" {
		on, err := strconv.ParseBool(l)
		if err != nil {
			return cfg, fmt.Errorf("MATRIXLAB_LOG: %w", err)
		}
		cfg.LogEvents = on
	}

	return cfg, cfg.Validate()
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if _, ok := exercise.ParseDifficulty(string(c.Difficulty)); !ok {
		return fmt.Errorf("unknown difficulty %q (want beginner, normal or expert)", c.Difficulty)
	}
	if c.Exercise.MaxRerolls < 0 {
		return fmt.Errorf("max rerolls must not be negative, got %d", c.Exercise.MaxRerolls)
	}
	return nil
}
