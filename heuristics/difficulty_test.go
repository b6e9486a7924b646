package heuristics_test

import (
	"testing"

	"github.com/katalvlaran/eternity/heuristics"
	"github.com/katalvlaran/eternity/puzzle"
	"github.com/stretchr/testify/require"
)

func TestPrecomputeDifficulty_ScoresFlexibleTileHigherThanRigidOne(t *testing.T) {
	hard := puzzle.Tile{ID: 1, Edges: [4]puzzle.Color{puzzle.Border, 9, 9, puzzle.Border}}
	easy := puzzle.Tile{ID: 2, Edges: [4]puzzle.Color{puzzle.Border, puzzle.Border, puzzle.Border, 7}}
	ts, err := puzzle.NewTileSet([]puzzle.Tile{hard, easy})
	require.NoError(t, err)

	scores, err := heuristics.PrecomputeDifficulty(ts, 2, 2)
	require.NoError(t, err)
	require.Equal(t, 4, scores[1])
	require.Equal(t, 8, scores[2])
}

func TestOrderByDifficulty_TriesHarderTilesFirst(t *testing.T) {
	scores := map[int]int{1: 4, 2: 8}
	ordered := heuristics.OrderByDifficulty([]int{2, 1}, scores)
	require.Equal(t, []int{1, 2}, ordered)
}

func TestOrderByDifficulty_FallsBackToIDOrderWithoutScores(t *testing.T) {
	ordered := heuristics.OrderByDifficulty([]int{3, 1, 2}, nil)
	require.Equal(t, []int{1, 2, 3}, ordered)
}
