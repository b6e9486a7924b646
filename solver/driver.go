package solver

import (
	"strconv"
	"time"

	"github.com/katalvlaran/eternity/domain"
	"github.com/katalvlaran/eternity/heuristics"
	"github.com/katalvlaran/eternity/propagate"
	"github.com/katalvlaran/eternity/puzzle"
)

// Solve runs one worker's backtracking search to completion, timeout, or
// cancellation: "solve(board, pieces) -> bool". On true, d.Board
// carries the final placement. Solve is not reentrant: call it once per
// Driver.
func (d *Driver) Solve() bool {
	d.stat.Start()
	d.lastSave = time.Now()
	result := d.step()
	d.stat.Stop()
	return result
}

// step is the recursive driver contract: try a singleton placement, then
// MRV cell selection, recursing on success and rolling back on failure.
func (d *Driver) step() bool {
	d.stat.RecursiveCalls++

	if d.shared.SolutionFound.Load() {
		return false
	}

	currentDepth := d.used.Count() - d.numFixed
	d.observeRecord(currentDepth)
	d.maybeSaveThreadState(currentDepth)

	if d.opts.MaxExecutionTime > 0 && d.stat.Elapsed() > d.opts.MaxExecutionTime {
		return false
	}

	r, c, ok := heuristics.SelectCell(d.board, d.domains, d.opts.PrioritizeBorders)
	if !ok {
		d.shared.SolutionFound.Store(true)
		if d.opts.Verbose {
			d.opts.Visualizer.Render(d.board, d.remainingTileIDs())
		}
		return true
	}

	if d.opts.UseSingletons {
		sres := heuristics.DetectSingleton(d.board, d.tiles, d.used)
		switch {
		case sres.DeadEnd:
			d.stat.DeadEndsDetected++
			return false
		case sres.Found:
			d.stat.SingletonsFound++
			return d.trySingleton(sres)
		}
	}

	return d.tryMRV(r, c)
}

// trySingleton commits the forced tile at its unique legal cell using the
// first legal rotation the detector reported. A rejection by the
// symmetry breaker, or a failed recursion past this commit, is fatal to
// the current branch: the position was forced, so there is no alternative
// cell to fall back to within normal search. Trying
// alternative rotations of the same forced tile belongs to the resume
// path, not to this one.
func (d *Driver) trySingleton(sres heuristics.SingletonResult) bool {
	rotation := sres.Rotations[0]
	if !d.placementAllowed(sres.Row, sres.Col, sres.TileID, rotation) {
		return false
	}

	tile, _ := d.tiles.Get(sres.TileID)
	placement, err := puzzle.NewPlacement(tile, rotation)
	if err != nil {
		panic("solver: singleton rotation out of range: " + err.Error())
	}

	d.commit(sres.Row, sres.Col, placement)
	d.stat.PlacementsAttempted++
	d.stat.SingletonsPlaced++

	deadEnd := propagate.AfterPlacement(d.domains, d.board, d.used, sres.Row, sres.Col)
	if d.opts.UseAC3 && deadEnd {
		d.stat.DeadEndsDetected++
		d.rollback(sres.Row, sres.Col)
		return false
	}

	if d.step() {
		return true
	}

	d.stat.Backtracks++
	d.rollback(sres.Row, sres.Col)
	return false
}

// tryMRV enumerates candidates at the MRV-chosen cell (r,c), difficulty-
// ordered (hardest first) with an optional LCV re-ordering, validating
// each with Fits, the symmetry breaker, and ForwardCheck before
// committing.
func (d *Driver) tryMRV(r, c int) bool {
	candidates := d.buildCandidates(r, c)
	depth := d.used.Count() - d.numFixed
	d.progress.RegisterDepth(depth, len(candidates))

	for _, cand := range candidates {
		d.progress.Advance(depth)

		if d.shared.SolutionFound.Load() {
			return false
		}

		tile, _ := d.tiles.Get(cand.TileID)
		edges := tile.Rotated(cand.Rotation)

		d.stat.FitChecks++
		if !puzzle.Fits(d.board, r, c, edges) {
			continue
		}
		if !d.placementAllowed(r, c, cand.TileID, cand.Rotation) {
			continue
		}
		if !puzzle.ForwardCheck(d.board, d.tiles, d.used, r, c, edges, cand.TileID) {
			d.stat.ForwardCheckRejects++
			continue
		}

		placement := puzzle.Placement{TileID: cand.TileID, Rotation: cand.Rotation, Edges: edges}
		d.commit(r, c, placement)
		d.stat.PlacementsAttempted++

		deadEnd := propagate.AfterPlacement(d.domains, d.board, d.used, r, c)
		if d.opts.UseAC3 && deadEnd {
			d.stat.DeadEndsDetected++
			d.rollback(r, c)
			continue
		}

		if d.step() {
			return true
		}

		d.stat.Backtracks++
		d.rollback(r, c)
	}

	return false
}

// buildCandidates assembles (r,c)'s candidate (tile,rotation) pairs,
// sourced from the cell's domain when UseDomainCache is set or from every
// free tile otherwise, ordered by difficulty (ties by ascending id,
// whatever SortOrder says) and optionally refined by LCV.
func (d *Driver) buildCandidates(r, c int) []domain.Candidate {
	var ids []int
	var domainMap map[int][]int
	if d.opts.UseDomainCache {
		domainMap = d.domains.Get(r, c)
		ids = make([]int, 0, len(domainMap))
		for id := range domainMap {
			ids = append(ids, id)
		}
	} else {
		ids = make([]int, 0, d.tiles.Len())
		for _, id := range d.tiles.IDs() {
			if !d.used.Has(id) {
				ids = append(ids, id)
			}
		}
	}

	ordered := heuristics.OrderByDifficulty(ids, d.difficulty)

	out := make([]domain.Candidate, 0, len(ordered))
	for _, id := range ordered {
		var rotations []int
		if domainMap != nil {
			rotations = domainMap[id]
		} else {
			tile, _ := d.tiles.Get(id)
			rotations = tile.UniqueRotations()
		}
		for _, rot := range rotations {
			out = append(out, domain.Candidate{TileID: id, Rotation: rot})
		}
	}

	if d.opts.UseLCV {
		out = heuristics.OrderByLCV(d.board, d.tiles, d.used, r, c, out)
	}
	return out
}

// commit places p at (r,c), marks its tile used, and appends it to
// history. Symmetric counterpart: rollback.
func (d *Driver) commit(r, c int, p puzzle.Placement) {
	if err := d.board.Set(r, c, p); err != nil {
		panic("solver: commit on invalid cell: " + err.Error())
	}
	d.used.Add(p.TileID)
	d.hist.Push(r, c, p.TileID, p.Rotation)
}

// rollback undoes the most recent commit at (r,c): clears the cell, frees
// the tile id, pops history, and restores the AC-3 domains of (r,c) and
// its neighbors.
func (d *Driver) rollback(r, c int) {
	p := d.board.At(r, c)
	if p == nil {
		panic("solver: rollback on empty cell")
	}
	id := p.TileID
	if err := d.board.Clear(r, c); err != nil {
		panic("solver: rollback clear: " + err.Error())
	}
	d.used.Remove(id)
	if _, ok := d.hist.Pop(); !ok {
		panic("solver: rollback popped into the fixed prefix")
	}
	d.domains.RestoreAfterRemove(d.board, d.used, r, c)
}

// observeRecord reports the current depth and matched-edge score to the
// shared record tracker and, on a new record past RecordSaveDepth, asks
// the save provider to persist it.
func (d *Driver) observeRecord(depth int) {
	score := d.board.CountMatchedEdges()
	newDepth := d.shared.Records.ObserveDepth(d.opts.ThreadID, depth, d.board, d.used)
	newScore := d.shared.Records.ObserveScore(d.opts.ThreadID, score, d.board, d.used)
	if !newDepth && !newScore {
		return
	}
	if depth < d.opts.RecordSaveDepth {
		return
	}
	if err := d.opts.SaveProvider.SaveRecord(d.board, d.used, d.tiles.Len(), depth); err != nil {
		d.logWarn("save record failed: " + err.Error())
	}
	if d.opts.Verbose && depth >= d.opts.MinDepthToShowRecords {
		d.opts.Logger.Lock()
		d.opts.Logger.Info("thread " + strconv.Itoa(d.opts.ThreadID) + d.threadSuffix() +
			": new record depth=" + strconv.Itoa(depth) + " score=" + strconv.Itoa(score))
		d.opts.Logger.Unlock()
	}
}

// maybeSaveThreadState snapshots resumable state at most once per
// SaveInterval.
func (d *Driver) maybeSaveThreadState(depth int) {
	if d.opts.SaveInterval <= 0 {
		return
	}
	if time.Since(d.lastSave) < d.opts.SaveInterval {
		return
	}
	d.lastSave = time.Now()
	err := d.opts.SaveProvider.SaveThreadState(d.board, d.used, d.hist.Records(), depth, d.opts.ThreadID, d.opts.RandomSeed)
	if err != nil {
		d.logWarn("save thread state failed: " + err.Error())
	}
}

func (d *Driver) logWarn(msg string) {
	d.opts.Logger.Lock()
	d.opts.Logger.Warn(msg)
	d.opts.Logger.Unlock()
}

// placementAllowed applies the symmetry breaker unless the driver was
// configured with WithSymmetryBreaking(false).
func (d *Driver) placementAllowed(r, c, id, rotation int) bool {
	if !d.opts.SymmetryBreaking {
		return true
	}
	return d.breaker.IsPlacementAllowed(d.board, r, c, id, rotation)
}

func (d *Driver) threadSuffix() string {
	if d.opts.ThreadLabel == "" {
		return ""
	}
	return " (" + d.opts.ThreadLabel + ")"
}
