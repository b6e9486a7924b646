package heuristics

import (
	"github.com/katalvlaran/eternity/domain"
	"github.com/katalvlaran/eternity/puzzle"
)

// OrderByLCV implements the least-constraining-value ordering:
// for each candidate, hypothetically place it at (r,c) and sum, over every
// empty direct neighbor, how many distinct free tile ids (excluding the
// candidate's own id) still have at least one fitting rotation against the
// neighbor's newly implied edge. Candidates are returned sorted by that
// sum descending (least constraining first); ties preserve input order.
func OrderByLCV(board *puzzle.Board, tiles *puzzle.TileSet, used *puzzle.UsedSet, r, c int, candidates []domain.Candidate) []domain.Candidate {
	scores := make([]int, len(candidates))
	for i, cand := range candidates {
		tile, _ := tiles.Get(cand.TileID)
		scores[i] = lcvScore(board, tiles, used, r, c, tile.Rotated(cand.Rotation), cand.TileID)
	}

	out := make([]domain.Candidate, len(candidates))
	copy(out, candidates)
	// Stable descending sort by score, preserving input order on ties.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && scores[j] > scores[j-1]; j-- {
			scores[j], scores[j-1] = scores[j-1], scores[j]
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func lcvScore(board *puzzle.Board, tiles *puzzle.TileSet, used *puzzle.UsedSet, r, c int, edges [4]puzzle.Color, excludeID int) int {
	if err := board.Set(r, c, puzzle.Placement{Edges: edges}); err != nil {
		panic("heuristics: OrderByLCV on non-empty or out-of-range cell: " + err.Error())
	}
	defer func() { _ = board.Clear(r, c) }()

	total := 0
	for _, s := range sides {
		nr, nc, ok := board.NeighborCoord(r, c, s)
		if !ok || !board.IsEmpty(nr, nc) {
			continue
		}
		for _, id := range tiles.IDs() {
			if id == excludeID || used.Has(id) {
				continue
			}
			neighborTile, _ := tiles.Get(id)
			for _, rot := range neighborTile.UniqueRotations() {
				if puzzle.Fits(board, nr, nc, neighborTile.Rotated(rot)) {
					total++
					break
				}
			}
		}
	}
	return total
}
