package heuristics

import (
	"sort"

	"github.com/katalvlaran/eternity/puzzle"
)

// PrecomputeDifficulty scores every tile in tiles by how many (cell,
// rotation) pairs it could satisfy on a fresh, entirely empty rows×cols
// board: a tile matching few cells is "hard" and gets a
// smaller score, so the driver tries it first at a chosen cell to fail
// fast. Computed once before search begins; the result never changes
// during a single solve.
func PrecomputeDifficulty(tiles *puzzle.TileSet, rows, cols int) (map[int]int, error) {
	virtual, err := puzzle.NewBoard(rows, cols)
	if err != nil {
		return nil, err
	}

	scores := make(map[int]int, tiles.Len())
	for _, id := range tiles.IDs() {
		tile, _ := tiles.Get(id)
		count := 0
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				for _, rot := range tile.UniqueRotations() {
					if puzzle.Fits(virtual, r, c, tile.Rotated(rot)) {
						count++
					}
				}
			}
		}
		scores[id] = count
	}
	return scores, nil
}

// OrderByDifficulty sorts ids ascending by their precomputed score
// (hardest, i.e. smallest score, first); ids absent from scores or when
// scores is nil fall back to ascending id order. The input
// slice is left untouched.
func OrderByDifficulty(ids []int, scores map[int]int) []int {
	out := make([]int, len(ids))
	copy(out, ids)
	sort.Slice(out, func(i, j int) bool {
		si, oki := scores[out[i]]
		sj, okj := scores[out[j]]
		if oki && okj && si != sj {
			return si < sj
		}
		return out[i] < out[j]
	})
	return out
}
