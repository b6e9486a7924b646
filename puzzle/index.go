// SPDX-License-Identifier: MIT
package puzzle

// EdgeIndex precomputes, for each color v and each side s, the set of tile
// ids having some unique rotation whose side s carries color v. It lets
// domain construction intersect index sets instead of calling Fits against
// every tile: at a cell whose occupied neighbors impose
// concrete colors on 1-4 sides, the candidate set is the intersection of
// the corresponding per-side index sets.
//
// An EdgeIndex must exist before DomainManager.Initialize runs;
// domain.NewManager takes one as a required constructor argument rather
// than relying on call-order discipline.
type EdgeIndex struct {
	bySide [4]map[Color]*UsedSet
	maxID  int
	all    *UsedSet
}

// NewEdgeIndex builds the index from every tile's unique rotations.
func NewEdgeIndex(tiles *TileSet) *EdgeIndex {
	maxID := tiles.MaxID()
	idx := &EdgeIndex{maxID: maxID, all: NewUsedSet(maxID)}
	for s := 0; s < 4; s++ {
		idx.bySide[s] = make(map[Color]*UsedSet)
	}
	for _, id := range tiles.IDs() {
		idx.all.Add(id)
		tile, _ := tiles.Get(id)
		for _, rot := range tile.UniqueRotations() {
			edges := tile.Rotated(rot)
			for s := 0; s < 4; s++ {
				set, ok := idx.bySide[s][edges[s]]
				if !ok {
					set = NewUsedSet(maxID)
					idx.bySide[s][edges[s]] = set
				}
				set.Add(id)
			}
		}
	}
	return idx
}

// CandidatesForRequirements intersects the per-side index sets for every
// (side, color) requirement given and returns the surviving tile ids. An
// empty requirement map returns every tile id in the set.
//
// This is a pre-filter, not a final answer: a tile can satisfy each
// requirement in a different rotation and still be returned here even
// though no single rotation satisfies all of them at once. Callers
// (domain construction) must still run Fits per (tile,rotation) candidate
// before accepting it; the index only shrinks the candidates Fits has to
// look at.
func (idx *EdgeIndex) CandidatesForRequirements(reqs map[Side]Color) []int {
	result := idx.all
	for s, color := range reqs {
		set, ok := idx.bySide[int(s)][color]
		if !ok {
			return nil // no tile exposes this color on this side at all
		}
		result = result.And(set)
		if result.IsEmpty() {
			return nil
		}
	}
	return result.ToSlice()
}
