package solver

import (
	"time"

	"github.com/katalvlaran/eternity/history"
	"github.com/katalvlaran/eternity/propagate"
	"github.com/katalvlaran/eternity/puzzle"
)

// SolveWithHistory implements "solve_with_history(board, pieces,
// unused_ids, history) -> bool": resume a search from a saved placement
// history. board
// must already reflect every placement in hist (fixed prefix and resumed
// placements alike) and used must mark exactly the tile ids hist places;
// this is the shape collab.SaveProvider.LoadThreadState reconstructs.
// priorElapsed carries accumulated wall-clock time from before the
// interruption into the resumed Statistics.
//
// On success the returned Driver's Board carries the completed
// placement. On failure, the explored tree is a superset of what the
// original worker would have explored past the save point, modulo the
// rotation-alternatives shortcut of step 3 below.
func SolveWithHistory(board *puzzle.Board, tiles *puzzle.TileSet, used *puzzle.UsedSet, hist []history.Record, priorElapsed time.Duration, opts ...Option) (bool, *Driver, error) {
	if board == nil {
		return false, nil, ErrNilBoard
	}
	if tiles == nil {
		return false, nil, ErrNilTileSet
	}

	numFixed := board.FixedCount()
	if len(hist) < numFixed || board.PlacedCount() != len(hist) {
		return false, nil, ErrInvalidHistory
	}
	for i := 0; i < numFixed; i++ {
		rec := hist[i]
		if !board.IsFixed(rec.Row, rec.Col) {
			return false, nil, ErrInvalidHistory
		}
		p := board.At(rec.Row, rec.Col)
		if p == nil || p.TileID != rec.TileID || p.Rotation != rec.Rotation {
			return false, nil, ErrInvalidHistory
		}
	}

	o := NewOptions(opts...)
	h := history.New(numFixed)
	h.LoadRecords(hist)

	d, err := newResumed(board, tiles, used, h, numFixed, priorElapsed, o)
	if err != nil {
		return false, nil, err
	}

	return d.Resume(), d, nil
}

// Resume seeds a fresh recursive search from the driver's current state
// and, if that fails outright, unwinds through the
// history tail trying rotation alternatives before giving up (step 3).
// Unlike Solve, Resume's Driver already carries pre-existing placements;
// it is still not reentrant.
func (d *Driver) Resume() bool {
	d.stat.Start()
	d.lastSave = time.Now()

	ok := d.step()
	if !ok {
		ok = d.resumeLoop()
	}

	d.stat.Stop()
	return ok
}

// resumeLoop pops the last non-fixed history
// entry, clears it, restores domains, then tries alternative rotations of
// that same tile at that same cell in rotation order starting after the
// one that failed. Each alternative that fits is re-committed and driven
// with a fresh recursive step; if it also fails it is rolled back and the
// next alternative tried. When every alternative at this position is
// exhausted, the loop pops one entry further back. It terminates either
// on success or once history is reduced to the fixed prefix.
func (d *Driver) resumeLoop() bool {
	for d.hist.Depth() > d.numFixed {
		rec, ok := d.hist.Pop()
		if !ok {
			break
		}

		if err := d.board.Clear(rec.Row, rec.Col); err != nil {
			panic("solver: resume clear on invalid cell: " + err.Error())
		}
		d.used.Remove(rec.TileID)
		d.domains.RestoreAfterRemove(d.board, d.used, rec.Row, rec.Col)
		d.stat.Backtracks++

		tile, found := d.tiles.Get(rec.TileID)
		if !found {
			panic("solver: resume history references unknown tile id")
		}

		for _, rot := range tile.UniqueRotations() {
			if rot <= rec.Rotation {
				continue // alternatives start after the one that failed
			}
			edges := tile.Rotated(rot)
			if !puzzle.Fits(d.board, rec.Row, rec.Col, edges) {
				continue
			}
			if !d.placementAllowed(rec.Row, rec.Col, rec.TileID, rot) {
				continue
			}

			placement := puzzle.Placement{TileID: rec.TileID, Rotation: rot, Edges: edges}
			d.commit(rec.Row, rec.Col, placement)
			d.stat.PlacementsAttempted++

			deadEnd := propagate.AfterPlacement(d.domains, d.board, d.used, rec.Row, rec.Col)
			if d.opts.UseAC3 && deadEnd {
				d.stat.DeadEndsDetected++
				d.rollback(rec.Row, rec.Col)
				continue
			}

			if d.step() {
				return true
			}
			d.rollback(rec.Row, rec.Col)
		}
		// Every alternative at (rec.Row, rec.Col) failed; continue
		// unwinding further back in history.
	}
	return false
}
