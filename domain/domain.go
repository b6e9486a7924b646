package domain

import (
	"sort"

	"github.com/katalvlaran/eternity/puzzle"
)

// Candidate is a flattened (tile, rotation) domain entry, used by the
// domain cache and by heuristics that want to iterate a cell's legal
// placements without walking a map.
type Candidate struct {
	TileID   int
	Rotation int
}

// Manager holds per-empty-cell domains plus a flattened cache kept
// consistent with them. domains[r][c] is nil for occupied
// cells and for cells never visited; an empty, non-nil map represents a
// genuine dead-end domain.
type Manager struct {
	rows, cols int
	tiles      *puzzle.TileSet
	index      *puzzle.EdgeIndex
	descending bool

	domains [][]map[int][]int
	cache   [][][]Candidate
}

// NewManager constructs an empty Manager. index must be non-nil. Call Initialize before using the manager.
func NewManager(tiles *puzzle.TileSet, index *puzzle.EdgeIndex, rows, cols int, sortDescending bool) (*Manager, error) {
	if index == nil {
		return nil, ErrIndexRequired
	}
	m := &Manager{
		rows: rows, cols: cols,
		tiles: tiles, index: index, descending: sortDescending,
		domains: make([][]map[int][]int, rows),
		cache:   make([][][]Candidate, rows),
	}
	for r := 0; r < rows; r++ {
		m.domains[r] = make([]map[int][]int, cols)
		m.cache[r] = make([][]Candidate, cols)
	}
	return m, nil
}

// Initialize populates the domain of every empty cell against the current
// board and used-tile state.
func (m *Manager) Initialize(board *puzzle.Board, used *puzzle.UsedSet) {
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if board.IsEmpty(r, c) {
				m.recompute(board, used, r, c)
			} else {
				m.domains[r][c] = nil
				m.cache[r][c] = nil
			}
		}
	}
}

// Get returns the raw tile->rotations domain for an empty cell, or nil if
// the cell is occupied or has never been computed.
func (m *Manager) Get(r, c int) map[int][]int { return m.domains[r][c] }

// Set installs an explicit domain for (r,c). Exposed for propagate's AC-3
// filtering step, which narrows an existing domain rather than
// recomputing it from scratch.
func (m *Manager) Set(r, c int, d map[int][]int) {
	m.domains[r][c] = d
	m.cache[r][c] = flatten(d, m.descending)
}

// Cache returns the flattened (tile,rotation) pairs for (r,c), in the
// manager's tile-id sort order, for callers that want to iterate
// candidates without walking a map. It is always kept in sync with Get/Set.
// The solver's candidate enumeration reads Get, not Cache.
func (m *Manager) Cache(r, c int) []Candidate { return m.cache[r][c] }

// DomainSize returns the number of distinct tile ids in (r,c)'s domain and
// the total count of (id,rotation) pairs, used by the MRV tie-break rule.
func (m *Manager) DomainSize(r, c int) (tiles int, pairs int) {
	d := m.domains[r][c]
	tiles = len(d)
	for _, rots := range d {
		pairs += len(rots)
	}
	return tiles, pairs
}

// RestoreAfterRemove recomputes the domain of (r,c) and of each direct
// empty neighbor against the current (board, used) state. Called after a
// rollback (board.Clear already applied) to undo whatever AC-3 pruning the
// aborted placement caused, and after a fresh placement is undone during
// resume. This single recompute-from-scratch step keeps domains exactly
// matching a fresh initialize without any separate undo log.
func (m *Manager) RestoreAfterRemove(board *puzzle.Board, used *puzzle.UsedSet, r, c int) {
	if board.IsEmpty(r, c) {
		m.recompute(board, used, r, c)
	} else {
		m.domains[r][c] = nil
		m.cache[r][c] = nil
	}
	sides := [4]puzzle.Side{puzzle.North, puzzle.East, puzzle.South, puzzle.West}
	for _, s := range sides {
		nr, nc, ok := board.NeighborCoord(r, c, s)
		if ok && board.IsEmpty(nr, nc) {
			m.recompute(board, used, nr, nc)
		}
	}
}

// RecomputeCell is the propagator's entry point: recompute (r,c)'s domain
// fresh against board/used and report whether the result is empty (a
// dead-end). It is equivalent to AC-3's "filter domain, detect empty"
// step because board already reflects the new placement the caller is
// propagating from, so only entries still consistent with it survive.
func (m *Manager) RecomputeCell(board *puzzle.Board, used *puzzle.UsedSet, r, c int) (deadEnd bool) {
	m.recompute(board, used, r, c)
	d := m.domains[r][c]
	return d != nil && len(d) == 0
}

// recompute is the shared implementation behind Initialize, restore, and
// AC-3 recompute: build the side requirements implied by the frame and by
// occupied neighbors, narrow via the edge index, then confirm each
// surviving (tile, rotation) with a real Fits check.
func (m *Manager) recompute(board *puzzle.Board, used *puzzle.UsedSet, r, c int) {
	reqs := make(map[puzzle.Side]puzzle.Color, 4)
	sides := [4]puzzle.Side{puzzle.North, puzzle.East, puzzle.South, puzzle.West}
	for _, s := range sides {
		nr, nc, ok := board.NeighborCoord(r, c, s)
		if !ok {
			reqs[s] = puzzle.Border
			continue
		}
		if p := board.At(nr, nc); p != nil {
			reqs[s] = p.Edges[s.Opposite()]
		}
	}

	candidates := m.index.CandidatesForRequirements(reqs)
	out := make(map[int][]int, len(candidates))
	for _, id := range candidates {
		if used.Has(id) {
			continue
		}
		tile, _ := m.tiles.Get(id)
		var rots []int
		for _, rot := range tile.UniqueRotations() {
			if puzzle.Fits(board, r, c, tile.Rotated(rot)) {
				rots = append(rots, rot)
			}
		}
		if len(rots) > 0 {
			out[id] = rots
		}
	}
	m.Set(r, c, out)
}

// flatten produces a deterministic candidate list honoring the manager's
// sort-order flag, so distinct parallel workers configured
// with different orders explore different first branches.
func flatten(d map[int][]int, descending bool) []Candidate {
	if d == nil {
		return nil
	}
	ids := make([]int, 0, len(d))
	for id := range d {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	if descending {
		for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
			ids[i], ids[j] = ids[j], ids[i]
		}
	}
	out := make([]Candidate, 0, len(d))
	for _, id := range ids {
		for _, rot := range d[id] {
			out = append(out, Candidate{TileID: id, Rotation: rot})
		}
	}
	return out
}

// Clone returns an independent deep copy, used when a worker forks a
// private search branch (fork-join) that must not share domain state with
// its parent.
func (m *Manager) Clone() *Manager {
	out := &Manager{
		rows: m.rows, cols: m.cols,
		tiles: m.tiles, index: m.index, descending: m.descending,
		domains: make([][]map[int][]int, m.rows),
		cache:   make([][][]Candidate, m.rows),
	}
	for r := 0; r < m.rows; r++ {
		out.domains[r] = make([]map[int][]int, m.cols)
		out.cache[r] = make([][]Candidate, m.cols)
		for c := 0; c < m.cols; c++ {
			if m.domains[r][c] == nil {
				continue
			}
			cp := make(map[int][]int, len(m.domains[r][c]))
			for id, rots := range m.domains[r][c] {
				rc := make([]int, len(rots))
				copy(rc, rots)
				cp[id] = rc
			}
			out.domains[r][c] = cp
			out.cache[r][c] = flatten(cp, out.descending)
		}
	}
	return out
}
