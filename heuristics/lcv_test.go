package heuristics_test

import (
	"testing"

	"github.com/katalvlaran/eternity/domain"
	"github.com/katalvlaran/eternity/heuristics"
	"github.com/katalvlaran/eternity/puzzle"
	"github.com/stretchr/testify/require"
)

func TestOrderByLCV_PrefersCandidateLeavingMoreNeighborOptions(t *testing.T) {
	const colorA puzzle.Color = 5
	const colorB puzzle.Color = 6

	candidateA := puzzle.Tile{ID: 1, Edges: [4]puzzle.Color{puzzle.Border, colorA, puzzle.Border, puzzle.Border}}
	candidateB := puzzle.Tile{ID: 2, Edges: [4]puzzle.Color{puzzle.Border, colorB, puzzle.Border, puzzle.Border}}

	all := []puzzle.Tile{candidateA, candidateB}
	for id := 101; id <= 105; id++ {
		all = append(all, puzzle.Tile{ID: id, Edges: [4]puzzle.Color{puzzle.Border, puzzle.Border, puzzle.Border, colorA}})
	}
	all = append(all, puzzle.Tile{ID: 201, Edges: [4]puzzle.Color{puzzle.Border, puzzle.Border, puzzle.Border, colorB}})
	for id := 301; id <= 303; id++ {
		all = append(all, puzzle.Tile{ID: id, Edges: [4]puzzle.Color{puzzle.Border, puzzle.Border, puzzle.Border, puzzle.Border}})
	}

	ts, err := puzzle.NewTileSet(all)
	require.NoError(t, err)

	board, err := puzzle.NewBoard(1, 3)
	require.NoError(t, err)
	used := puzzle.NewUsedSet(ts.MaxID())

	candidates := []domain.Candidate{
		{TileID: 2, Rotation: 0},
		{TileID: 1, Rotation: 0},
	}

	ordered := heuristics.OrderByLCV(board, ts, used, 0, 1, candidates)
	require.Len(t, ordered, 2)
	require.Equal(t, 1, ordered[0].TileID, "candidate exposing the widely-matched color should be tried first")
	require.Equal(t, 2, ordered[1].TileID)

	// LCV must not leave any residual placement behind.
	require.True(t, board.IsEmpty(0, 1))
}
