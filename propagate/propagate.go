package propagate

import (
	"github.com/katalvlaran/eternity/domain"
	"github.com/katalvlaran/eternity/puzzle"
)

var sides = [4]puzzle.Side{puzzle.North, puzzle.East, puzzle.South, puzzle.West}

// AfterPlacement narrows the domain of every empty direct neighbor of
// (r,c) against the tile just committed there and reports whether any
// neighbor's domain became empty. The caller must commit the placement to
// board and used before calling this; AfterPlacement itself never mutates
// either. A neighbor side facing outside the board is skipped, since there
// is no neighbor domain to prune there.
//
// On a true (dead-end) result the caller must still roll the triggering
// placement back; propagate does not undo anything itself.
func AfterPlacement(mgr *domain.Manager, board *puzzle.Board, used *puzzle.UsedSet, r, c int) (deadEnd bool) {
	for _, s := range sides {
		nr, nc, ok := board.NeighborCoord(r, c, s)
		if !ok || !board.IsEmpty(nr, nc) {
			continue
		}
		if mgr.RecomputeCell(board, used, nr, nc) {
			return true
		}
	}
	return false
}

// Run performs one full propagation pass: recompute every empty cell's
// domain from scratch against the current board and used-tile state, and
// report whether any cell came up with an empty domain. Unlike
// AfterPlacement, which narrows only the direct neighbors of one freshly
// committed cell, Run revisits the whole board, so calling it immediately
// after domain.Manager.Initialize is a no-op: Initialize already recomputed
// every empty cell's domain against the same board and used state, and
// recompute is a deterministic function of those two inputs.
func Run(mgr *domain.Manager, board *puzzle.Board, used *puzzle.UsedSet) (deadEnd bool) {
	for r := 0; r < board.Rows(); r++ {
		for c := 0; c < board.Cols(); c++ {
			if !board.IsEmpty(r, c) {
				continue
			}
			if mgr.RecomputeCell(board, used, r, c) {
				deadEnd = true
			}
		}
	}
	return deadEnd
}

// WouldCauseDeadEnd is AfterPlacement's pure, non-mutating counterpart: it
// hypothetically places edges at (r,c), asks whether that would empty any
// empty neighbor's domain, then restores board and mgr to their prior
// state regardless of the outcome. Used for look-ahead queries that must
// not disturb search state if the candidate is rejected for some other
// reason first.
//
// Because domain.Manager.Set always installs a fresh map rather than
// mutating the previous one in place, snapshotting a neighbor's domain is
// just capturing the map reference before recomputing it.
func WouldCauseDeadEnd(mgr *domain.Manager, board *puzzle.Board, used *puzzle.UsedSet, r, c int, edges [4]puzzle.Color) bool {
	if err := board.Set(r, c, puzzle.Placement{Edges: edges}); err != nil {
		panic("propagate: WouldCauseDeadEnd on non-empty or out-of-range cell: " + err.Error())
	}
	defer func() { _ = board.Clear(r, c) }()

	type snapshot struct {
		r, c int
		dom  map[int][]int
	}
	var touched []snapshot
	deadEnd := false

	for _, s := range sides {
		nr, nc, ok := board.NeighborCoord(r, c, s)
		if !ok || !board.IsEmpty(nr, nc) {
			continue
		}
		touched = append(touched, snapshot{nr, nc, mgr.Get(nr, nc)})
		if mgr.RecomputeCell(board, used, nr, nc) {
			deadEnd = true
			break
		}
	}

	for _, snap := range touched {
		mgr.Set(snap.r, snap.c, snap.dom)
	}
	return deadEnd
}
