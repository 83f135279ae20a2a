package engine

import "errors"

// Engine errors indicate integration or data-integrity failures, never
// gameplay outcomes: normal play only ever produces MoveOutcome values.
var (
	// ErrOutOfBounds reports a lookup or mutation outside the grid bounds
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrInvalidPlacement reports an attempt to place a non-empty entity
	// on a wall tile
	ErrInvalidPlacement = errors.New("invalid placement")

	// ErrInvariantViolation reports a corrupted entity layer, such as
	// zero or multiple player entities
	ErrInvariantViolation = errors.New("grid invariant violated")

	// ErrInvalidDirection reports a direction outside the four unit vectors
	ErrInvalidDirection = errors.New("invalid direction")
)
