package generator

import "errors"

var (
	// ErrInvalidRequest is returned when width, height or difficulty is out of range.
	ErrInvalidRequest = errors.New("generator: invalid request")
	// ErrInvalidConfig is returned when a Config fails validation or cannot be decoded.
	ErrInvalidConfig = errors.New("generator: invalid config")
	// ErrLevelMismatch is returned by LevelData.Verify when the stored solution
	// does not solve the stored level in MinMoves steps.
	ErrLevelMismatch = errors.New("generator: level does not match its solution")
)
