package solver

import "errors"

// Sentinel errors for construction-time validation.
var (
	// ErrNilBoard indicates New was called with a nil board.
	ErrNilBoard = errors.New("solver: board is nil")

	// ErrNilTileSet indicates New was called with a nil tile set.
	ErrNilTileSet = errors.New("solver: tile set is nil")

	// ErrTooManyPieces indicates the tile set cannot possibly fill the
	// board's empty cells (more empty cells than available free tiles).
	ErrTooManyPieces = errors.New("solver: not enough tiles to fill the board")

	// ErrInvalidHistory indicates SolveWithHistory was given a history
	// whose fixed prefix does not match the board's fixed cells, or whose
	// length is shorter than the board's fixed-cell count.
	ErrInvalidHistory = errors.New("solver: saved history is inconsistent with the board")
)
