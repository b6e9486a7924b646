package heuristics

import "github.com/katalvlaran/eternity/puzzle"

// DomainSizer is the narrow slice of domain.Manager the MRV selector
// needs: the distinct-tile-id count and total (id,rotation) pair count
// for an empty cell's domain. domain.Manager satisfies this directly.
type DomainSizer interface {
	DomainSize(r, c int) (tiles int, pairs int)
}

// SelectCell implements the MRV cell selector: the empty cell
// with the fewest distinct candidate tile ids, ties broken first by fewer
// total (id,rotation) pairs, then by more occupied direct neighbors, then
// (if prioritizeBorders) by border cells before inner cells, then by
// row-major order. Returns ok=false when the board has no empty cells.
func SelectCell(board *puzzle.Board, domains DomainSizer, prioritizeBorders bool) (r, c int, ok bool) {
	best := -1
	var bestTiles, bestPairs, bestNeighbors int
	var bestBorder bool

	for _, rc := range board.EmptyCells() {
		row, col := rc[0], rc[1]
		tiles, pairs := domains.DomainSize(row, col)
		neighbors := occupiedNeighborCount(board, row, col)
		border := isBorderCell(board, row, col)

		if best == -1 {
			r, c, best = row, col, 0
			bestTiles, bestPairs, bestNeighbors, bestBorder = tiles, pairs, neighbors, border
			continue
		}

		if better(tiles, pairs, neighbors, border, prioritizeBorders,
			bestTiles, bestPairs, bestNeighbors, bestBorder) {
			r, c = row, col
			bestTiles, bestPairs, bestNeighbors, bestBorder = tiles, pairs, neighbors, border
		}
	}

	return r, c, best != -1
}

// better reports whether candidate (tiles,pairs,neighbors,border) ranks
// ahead of the current best under MRV's tie-break chain.
func better(tiles, pairs, neighbors int, border, prioritizeBorders bool,
	bestTiles, bestPairs, bestNeighbors int, bestBorder bool) bool {
	if tiles != bestTiles {
		return tiles < bestTiles
	}
	if pairs != bestPairs {
		return pairs < bestPairs
	}
	if neighbors != bestNeighbors {
		return neighbors > bestNeighbors
	}
	if prioritizeBorders && border != bestBorder {
		return border
	}
	return false // equal on every tie-break: keep the earlier, row-major cell
}

func occupiedNeighborCount(board *puzzle.Board, r, c int) int {
	n := 0
	for _, s := range sides {
		nr, nc, ok := board.NeighborCoord(r, c, s)
		if ok && !board.IsEmpty(nr, nc) {
			n++
		}
	}
	return n
}

func isBorderCell(board *puzzle.Board, r, c int) bool {
	return r == 0 || c == 0 || r == board.Rows()-1 || c == board.Cols()-1
}

var sides = [4]puzzle.Side{puzzle.North, puzzle.East, puzzle.South, puzzle.West}
