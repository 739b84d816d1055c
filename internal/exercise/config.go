package exercise

// Config controls the behavior of the RandomGenerator.
type Config struct {
	// RequireInvertibleDeterminant re-rolls determinant operands until the
	// determinant is non-zero. Off by default since zero is a valid answer.
	// Inverse operands are always re-rolled.
	RequireInvertibleDeterminant bool

	// MaxRerolls bounds the number of re-rolls before generation fails.
	MaxRerolls int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		RequireInvertibleDeterminant: false,
		MaxRerolls:                   1000,
	}
}
