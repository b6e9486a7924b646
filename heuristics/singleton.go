package heuristics

import "github.com/katalvlaran/eternity/puzzle"

// SingletonResult reports the outcome of scanning free tiles for a forced
// placement.
type SingletonResult struct {
	// DeadEnd is true when some free tile has zero legal (cell,rotation)
	// pairs anywhere on the board: the branch cannot be completed.
	DeadEnd bool
	// Found is true when a tile's only legal placements all share one
	// cell; Row/Col/TileID/Rotations describe it. Rotations lists every
	// unique rotation of TileID that fits at (Row,Col), ascending; the
	// driver commits the first one only, and its failure ends the branch.
	Found            bool
	Row, Col, TileID int
	Rotations        []int
}

// DetectSingleton scans every tile id not in used, ascending, classifying
// each by how many distinct empty cells admit at least one legal rotation.
// It returns on the first dead-end or the first singleton found; tiles
// with more than one admissible cell are skipped. DetectSingleton never
// mutates board, tiles, or used.
func DetectSingleton(board *puzzle.Board, tiles *puzzle.TileSet, used *puzzle.UsedSet) SingletonResult {
	empties := board.EmptyCells()

	for _, id := range tiles.IDs() {
		if used.Has(id) {
			continue
		}
		tile, _ := tiles.Get(id)

		var onlyRow, onlyCol int
		cellsFound := 0
		var onlyRotations []int

		for _, rc := range empties {
			r, c := rc[0], rc[1]
			var rotations []int
			for _, rot := range tile.UniqueRotations() {
				if puzzle.Fits(board, r, c, tile.Rotated(rot)) {
					rotations = append(rotations, rot)
				}
			}
			if len(rotations) == 0 {
				continue
			}
			cellsFound++
			if cellsFound > 1 {
				break
			}
			onlyRow, onlyCol, onlyRotations = r, c, rotations
		}

		switch cellsFound {
		case 0:
			return SingletonResult{DeadEnd: true}
		case 1:
			return SingletonResult{Found: true, Row: onlyRow, Col: onlyCol, TileID: id, Rotations: onlyRotations}
		}
	}

	return SingletonResult{}
}
