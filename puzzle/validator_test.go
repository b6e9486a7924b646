package puzzle_test

import (
	"testing"

	"github.com/katalvlaran/eternity/puzzle"
	"github.com/stretchr/testify/require"
)

func TestFits_BorderAndAdjacency(t *testing.T) {
	b, err := puzzle.NewBoard(2, 2)
	require.NoError(t, err)

	// Top-left corner: North and West must be Border.
	require.True(t, puzzle.Fits(b, 0, 0, [4]puzzle.Color{puzzle.Border, 1, 1, puzzle.Border}))
	require.False(t, puzzle.Fits(b, 0, 0, [4]puzzle.Color{5, 1, 1, puzzle.Border}))
	require.False(t, puzzle.Fits(b, 0, 0, [4]puzzle.Color{puzzle.Border, 1, 1, 5}))

	left := puzzle.Tile{ID: 1, Edges: [4]puzzle.Color{puzzle.Border, 9, 1, puzzle.Border}}
	lp, _ := puzzle.NewPlacement(&left, 0)
	require.NoError(t, b.Set(0, 0, lp))

	// Neighbor to the east must present West==9 to match left's East==9.
	require.True(t, puzzle.Fits(b, 0, 1, [4]puzzle.Color{puzzle.Border, puzzle.Border, 1, 9}))
	require.False(t, puzzle.Fits(b, 0, 1, [4]puzzle.Color{puzzle.Border, puzzle.Border, 1, 3}))
}

func TestForwardCheck_RejectsStrandedNeighbor(t *testing.T) {
	b, err := puzzle.NewBoard(1, 3)
	require.NoError(t, err)
	// Remaining tile's only edge value is 2, candidate at (0,0) forces
	// its neighbor (0,1) to need East-facing-West color 9, which no
	// remaining tile can ever present.
	remaining := puzzle.Tile{ID: 2, Edges: [4]puzzle.Color{puzzle.Border, 2, puzzle.Border, 2}}
	ts, err := puzzle.NewTileSet([]puzzle.Tile{remaining})
	require.NoError(t, err)
	used := puzzle.NewUsedSet(ts.MaxID())

	candidateEdges := [4]puzzle.Color{puzzle.Border, 9, puzzle.Border, puzzle.Border}
	require.False(t, puzzle.ForwardCheck(b, ts, used, 0, 0, candidateEdges, 1))
	// (0,0) itself must be untouched afterward (no side effects).
	require.True(t, b.IsEmpty(0, 0))
}

func TestForwardCheck_AcceptsWhenNeighborStillHasOptions(t *testing.T) {
	b, err := puzzle.NewBoard(1, 2)
	require.NoError(t, err)
	remaining := puzzle.Tile{ID: 2, Edges: [4]puzzle.Color{puzzle.Border, puzzle.Border, puzzle.Border, 9}}
	ts, err := puzzle.NewTileSet([]puzzle.Tile{remaining})
	require.NoError(t, err)
	used := puzzle.NewUsedSet(ts.MaxID())

	candidateEdges := [4]puzzle.Color{puzzle.Border, 9, puzzle.Border, puzzle.Border}
	require.True(t, puzzle.ForwardCheck(b, ts, used, 0, 0, candidateEdges, 1))
	require.True(t, b.IsEmpty(0, 0))
}
