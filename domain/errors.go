package domain

import "errors"

var (
	// ErrIndexRequired is returned by NewManager when constructed without
	// an EdgeIndex. The index must be built before AC-3 initialization;
	// NewManager rejects a nil index at construction rather than failing
	// later during Initialize.
	ErrIndexRequired = errors.New("domain: EdgeIndex is required")

	// ErrCellNotEmpty is an assertion failure: a domain was requested or
	// set for a cell the board reports as occupied.
	ErrCellNotEmpty = errors.New("domain: cell is not empty")
)
