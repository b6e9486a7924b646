package propagate_test

import (
	"testing"

	"github.com/katalvlaran/eternity/domain"
	"github.com/katalvlaran/eternity/propagate"
	"github.com/katalvlaran/eternity/puzzle"
	"github.com/stretchr/testify/require"
)

func newTwoCellSetup(t *testing.T) (*puzzle.TileSet, *puzzle.EdgeIndex, *puzzle.Board, *puzzle.UsedSet, *domain.Manager) {
	t.Helper()
	a := puzzle.Tile{ID: 1, Edges: [4]puzzle.Color{puzzle.Border, 5, puzzle.Border, puzzle.Border}}
	b := puzzle.Tile{ID: 2, Edges: [4]puzzle.Color{puzzle.Border, puzzle.Border, puzzle.Border, 5}}
	ts, err := puzzle.NewTileSet([]puzzle.Tile{a, b})
	require.NoError(t, err)
	idx := puzzle.NewEdgeIndex(ts)

	board, err := puzzle.NewBoard(1, 2)
	require.NoError(t, err)
	used := puzzle.NewUsedSet(ts.MaxID())
	mgr, err := domain.NewManager(ts, idx, 1, 2, false)
	require.NoError(t, err)
	mgr.Initialize(board, used)
	return ts, idx, board, used, mgr
}

func TestAfterPlacement_NarrowsNeighborDomainWithoutDeadEnd(t *testing.T) {
	_, _, board, used, mgr := newTwoCellSetup(t)

	p, err := puzzle.NewPlacement(&puzzle.Tile{ID: 1, Edges: [4]puzzle.Color{puzzle.Border, 5, puzzle.Border, puzzle.Border}}, 0)
	require.NoError(t, err)
	require.NoError(t, board.Set(0, 0, p))
	used.Add(1)

	deadEnd := propagate.AfterPlacement(mgr, board, used, 0, 0)
	require.False(t, deadEnd)

	d := mgr.Get(0, 1)
	require.Len(t, d, 1)
	require.Contains(t, d, 2)
}

func TestAfterPlacement_DetectsDeadEndWhenNeighborHasNoFit(t *testing.T) {
	_, _, board, used, mgr := newTwoCellSetup(t)

	p, err := puzzle.NewPlacement(&puzzle.Tile{ID: 1, Edges: [4]puzzle.Color{puzzle.Border, 5, puzzle.Border, puzzle.Border}}, 0)
	require.NoError(t, err)
	require.NoError(t, board.Set(0, 0, p))
	used.Add(1)
	used.Add(2) // the only tile that could satisfy (0,1) is already used elsewhere

	deadEnd := propagate.AfterPlacement(mgr, board, used, 0, 0)
	require.True(t, deadEnd)

	tiles, pairs := mgr.DomainSize(0, 1)
	require.Equal(t, 0, tiles)
	require.Equal(t, 0, pairs)
}

func TestAfterPlacement_SkipsFrameFacingSides(t *testing.T) {
	_, _, board, used, mgr := newTwoCellSetup(t)
	p, err := puzzle.NewPlacement(&puzzle.Tile{ID: 1, Edges: [4]puzzle.Color{puzzle.Border, 5, puzzle.Border, puzzle.Border}}, 0)
	require.NoError(t, err)
	require.NoError(t, board.Set(0, 0, p))
	used.Add(1)

	// North and South face the frame on a 1x2 board; only East (0,1) has a
	// real empty neighbor domain that could shrink.
	require.NotPanics(t, func() {
		propagate.AfterPlacement(mgr, board, used, 0, 0)
	})
}

func TestWouldCauseDeadEnd_RestoresBoardAndDomainOnReturn(t *testing.T) {
	_, _, board, used, mgr := newTwoCellSetup(t)
	used.Add(2) // make the hypothetical placement a genuine dead-end

	before := mgr.Get(0, 1)
	deadEnd := propagate.WouldCauseDeadEnd(mgr, board, used, 0, 0,
		[4]puzzle.Color{puzzle.Border, 5, puzzle.Border, puzzle.Border})
	require.True(t, deadEnd)

	require.True(t, board.IsEmpty(0, 0))
	require.Equal(t, before, mgr.Get(0, 1))
}

func TestRun_IsNoOpImmediatelyAfterInitialize(t *testing.T) {
	_, _, board, used, mgr := newTwoCellSetup(t)

	before := map[[2]int]map[int][]int{
		{0, 0}: mgr.Get(0, 0),
		{0, 1}: mgr.Get(0, 1),
	}

	deadEnd := propagate.Run(mgr, board, used)
	require.False(t, deadEnd)

	require.Equal(t, before[[2]int{0, 0}], mgr.Get(0, 0))
	require.Equal(t, before[[2]int{0, 1}], mgr.Get(0, 1))
}

func TestRun_DetectsDeadEndAcrossTheWholeBoard(t *testing.T) {
	_, _, board, used, mgr := newTwoCellSetup(t)
	used.Add(1)
	used.Add(2) // every tile used up before either cell is ever placed

	deadEnd := propagate.Run(mgr, board, used)
	require.True(t, deadEnd)
}

func TestWouldCauseDeadEnd_ReportsFalseWhenNeighborStillFits(t *testing.T) {
	_, _, board, used, mgr := newTwoCellSetup(t)

	deadEnd := propagate.WouldCauseDeadEnd(mgr, board, used, 0, 0,
		[4]puzzle.Color{puzzle.Border, 5, puzzle.Border, puzzle.Border})
	require.False(t, deadEnd)
	require.True(t, board.IsEmpty(0, 0))
}
