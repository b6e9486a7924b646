package stats_test

import (
	"testing"

	"github.com/katalvlaran/eternity/puzzle"
	"github.com/katalvlaran/eternity/stats"
	"github.com/stretchr/testify/require"
)

func TestGlobalRecords_ObserveDepthInstallsStrictlyGreaterRecordsOnly(t *testing.T) {
	board, err := puzzle.NewBoard(2, 2)
	require.NoError(t, err)
	used := puzzle.NewUsedSet(4)
	g := stats.NewGlobalRecords()

	require.True(t, g.ObserveDepth(1, 3, board, used))
	require.Equal(t, 3, g.MaxDepth())
	require.Equal(t, 1, g.BestThreadID())

	require.False(t, g.ObserveDepth(2, 3, board, used), "equal depth is not a new record")
	require.False(t, g.ObserveDepth(2, 2, board, used), "lesser depth is not a new record")
	require.Equal(t, 1, g.BestThreadID())

	require.True(t, g.ObserveDepth(2, 4, board, used))
	require.Equal(t, 4, g.MaxDepth())
	require.Equal(t, 2, g.BestThreadID())
}

func TestGlobalRecords_BestBoardReturnsIndependentSnapshot(t *testing.T) {
	board, err := puzzle.NewBoard(1, 1)
	require.NoError(t, err)
	used := puzzle.NewUsedSet(2)
	g := stats.NewGlobalRecords()

	before, _ := g.BestBoard()
	require.Nil(t, before)

	g.ObserveScore(1, 5, board, used)
	snap, snapUsed := g.BestBoard()
	require.NotNil(t, snap)
	require.NotNil(t, snapUsed)

	p, err := puzzle.NewPlacement(&puzzle.Tile{ID: 1, Edges: [4]puzzle.Color{puzzle.Border, puzzle.Border, puzzle.Border, puzzle.Border}}, 0)
	require.NoError(t, err)
	require.NoError(t, board.Set(0, 0, p))
	require.True(t, snap.IsEmpty(0, 0), "mutating the live board must not affect a taken snapshot")
}

func TestGlobalRecords_ObserveScoreTracksIndependentlyFromDepth(t *testing.T) {
	board, err := puzzle.NewBoard(1, 1)
	require.NoError(t, err)
	used := puzzle.NewUsedSet(2)
	g := stats.NewGlobalRecords()

	require.True(t, g.ObserveScore(3, 7, board, used))
	require.Equal(t, 7, g.BestScore())
	require.Equal(t, 0, g.MaxDepth())
}
