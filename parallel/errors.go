package parallel

import "errors"

// Sentinel errors for construction-time validation (mirrors solver's
// error-handling design: invalid input is rejected before any goroutine
// starts, never raised mid-search).
var (
	// ErrNilBoard indicates Solve was called with a nil board.
	ErrNilBoard = errors.New("parallel: board is nil")

	// ErrNilTileSet indicates Solve was called with a nil tile set.
	ErrNilTileSet = errors.New("parallel: tile set is nil")

	// ErrNoWorkers indicates NumWorkers was configured non-positive.
	ErrNoWorkers = errors.New("parallel: number of workers must be positive")
)
