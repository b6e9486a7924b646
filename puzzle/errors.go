package puzzle

import "errors"

// Sentinel errors for construction-time validation. None of these are ever
// raised mid-search: once a Board/TileSet is built, its shape is fixed.
var (
	// ErrInvalidDimensions indicates rows or cols is not positive.
	ErrInvalidDimensions = errors.New("puzzle: rows and cols must be positive")

	// ErrEmptyTileSet indicates a TileSet was built with zero tiles.
	ErrEmptyTileSet = errors.New("puzzle: tile set must contain at least one tile")

	// ErrDuplicateTileID indicates two tiles share the same ID.
	ErrDuplicateTileID = errors.New("puzzle: duplicate tile id")

	// ErrTileNotFound indicates a reference to an id absent from the TileSet.
	ErrTileNotFound = errors.New("puzzle: tile id not found")

	// ErrOutOfBounds indicates a (row, col) pair outside the board's extent.
	ErrOutOfBounds = errors.New("puzzle: cell out of bounds")

	// ErrCellOccupied indicates an attempt to place into a non-empty cell.
	ErrCellOccupied = errors.New("puzzle: cell already occupied")

	// ErrCellEmpty indicates an attempt to clear or read a placement from an empty cell.
	ErrCellEmpty = errors.New("puzzle: cell is empty")

	// ErrFixedCell indicates an attempt to mutate a fixed cell.
	ErrFixedCell = errors.New("puzzle: cell is fixed")

	// ErrTileAlreadyUsed indicates an attempt to place a tile id already on the board.
	ErrTileAlreadyUsed = errors.New("puzzle: tile id already placed")

	// ErrInvalidRotation indicates a rotation outside [0,3].
	ErrInvalidRotation = errors.New("puzzle: rotation must be in [0,3]")

	// ErrBorderViolation indicates a placement's frame-facing edge is not BORDER.
	ErrBorderViolation = errors.New("puzzle: frame-facing edge is not the border color")

	// ErrAdjacencyMismatch indicates two adjacent placed cells disagree on their shared edge.
	ErrAdjacencyMismatch = errors.New("puzzle: adjacent edge colors do not match")

	// ErrDimensionMismatch indicates CopyFrom was given a board of different extent.
	ErrDimensionMismatch = errors.New("puzzle: board dimensions do not match")
)
