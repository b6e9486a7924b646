// SPDX-License-Identifier: MIT
package puzzle

// Fits reports whether edges, if placed at (r,c), would respect the border
// rule on every frame-facing side and agree with any already-occupied
// neighbor's facing edge on every other side. Fits has no side
// effects and never mutates board.
func Fits(board *Board, r, c int, edges [4]Color) bool {
	sides := [4]Side{North, East, South, West}
	for _, s := range sides {
		nr, nc, ok := board.NeighborCoord(r, c, s)
		if !ok {
			// s faces the outer frame.
			if edges[s] != Border {
				return false
			}
			continue
		}
		if neighbor := board.At(nr, nc); neighbor != nil {
			if neighbor.Edges[s.Opposite()] != edges[s] {
				return false
			}
		}
	}
	return true
}

// ForwardCheck hypothetically treats (r,c) as holding edges and verifies
// that every empty direct neighbor still has at least one legal
// (tile,rotation) among tiles not in used and not excludeID. It is a
// cheaper, one-step look-ahead than full AC-3 and never mutates board,
// used, or the domain manager.
func ForwardCheck(board *Board, tiles *TileSet, used *UsedSet, r, c int, edges [4]Color, excludeID int) bool {
	if err := board.Set(r, c, Placement{Edges: edges}); err != nil {
		// (r,c) must be empty and in range for a forward check to make sense;
		// a violation here is a caller bug, not a search outcome.
		panic("puzzle: ForwardCheck on non-empty or out-of-range cell: " + err.Error())
	}
	defer func() { _ = board.Clear(r, c) }()

	sides := [4]Side{North, East, South, West}
	for _, s := range sides {
		nr, nc, ok := board.NeighborCoord(r, c, s)
		if !ok || !board.IsEmpty(nr, nc) {
			continue
		}
		if !hasAnyFit(board, tiles, used, nr, nc, excludeID) {
			return false
		}
	}
	return true
}

// hasAnyFit reports whether some (tile,rotation) pair not in used and not
// equal to excludeID fits at (r,c) against the current board.
func hasAnyFit(board *Board, tiles *TileSet, used *UsedSet, r, c, excludeID int) bool {
	for _, id := range tiles.IDs() {
		if id == excludeID || used.Has(id) {
			continue
		}
		tile, _ := tiles.Get(id)
		for _, rot := range tile.UniqueRotations() {
			if Fits(board, r, c, tile.Rotated(rot)) {
				return true
			}
		}
	}
	return false
}
