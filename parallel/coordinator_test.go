package parallel_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eternity/parallel"
	"github.com/katalvlaran/eternity/puzzle"
)

func monocolorPuzzle(t *testing.T) (*puzzle.Board, *puzzle.TileSet) {
	t.Helper()
	board, err := puzzle.NewBoard(2, 2)
	require.NoError(t, err)
	edges := [4]puzzle.Color{puzzle.Border, 1, 1, puzzle.Border}
	tiles, err := puzzle.NewTileSet([]puzzle.Tile{
		{ID: 1, Edges: edges},
		{ID: 2, Edges: edges},
		{ID: 3, Edges: edges},
		{ID: 4, Edges: edges},
	})
	require.NoError(t, err)
	return board, tiles
}

// TestCoordinator_WorkerPool_ConcurrentCancellation checks that with
// several workers racing an easy puzzle, exactly one solution is copied
// back into the caller's board and the result validates.
func TestCoordinator_WorkerPool_ConcurrentCancellation(t *testing.T) {
	board, tiles := monocolorPuzzle(t)
	c := parallel.NewCoordinator(parallel.WithNumWorkers(4))

	ok, err := c.Solve(board, tiles)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, board.Validate())
	require.Equal(t, 4, board.PlacedCount())
}

func TestCoordinator_ForkJoin_SolvesChainPuzzle(t *testing.T) {
	board, err := puzzle.NewBoard(1, 3)
	require.NoError(t, err)
	tiles, err := puzzle.NewTileSet([]puzzle.Tile{
		{ID: 1, Edges: [4]puzzle.Color{puzzle.Border, 9, puzzle.Border, puzzle.Border}},
		{ID: 2, Edges: [4]puzzle.Color{puzzle.Border, 8, puzzle.Border, 9}},
		{ID: 3, Edges: [4]puzzle.Color{puzzle.Border, puzzle.Border, puzzle.Border, 8}},
	})
	require.NoError(t, err)

	c := parallel.NewCoordinator(parallel.WithMode(parallel.ForkJoin), parallel.WithNumWorkers(4), parallel.WithForkDepthThreshold(1))

	ok, err := c.Solve(board, tiles)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, board.Validate())
	require.Equal(t, 3, board.PlacedCount())
}

// branchingChainPuzzle builds a 1x3 row where (0,0) admits tiles 1 and 2
// and tile 5 turned half a turn. Only 1-3-5 and its mirror (5-3-1, each
// tile turned half a turn) complete the row; the decoy tiles 2 and 4
// dead-end once propagated. Used
// to force ForkJoin into a multi-level fork chain (parents waiting on
// children waiting on their own children) rather than a single fork level.
func branchingChainPuzzle(t *testing.T) (*puzzle.Board, *puzzle.TileSet) {
	t.Helper()
	board, err := puzzle.NewBoard(1, 3)
	require.NoError(t, err)
	tiles, err := puzzle.NewTileSet([]puzzle.Tile{
		{ID: 1, Edges: [4]puzzle.Color{puzzle.Border, 9, puzzle.Border, puzzle.Border}}, // real start
		{ID: 2, Edges: [4]puzzle.Color{puzzle.Border, 7, puzzle.Border, puzzle.Border}}, // dead-end start
		{ID: 3, Edges: [4]puzzle.Color{puzzle.Border, 8, puzzle.Border, 9}},             // real middle
		{ID: 4, Edges: [4]puzzle.Color{puzzle.Border, 6, puzzle.Border, 9}},             // dead-end middle
		{ID: 5, Edges: [4]puzzle.Color{puzzle.Border, puzzle.Border, puzzle.Border, 8}}, // real end
	})
	require.NoError(t, err)
	return board, tiles
}

// TestCoordinator_ForkJoin_DoesNotDeadlockOnBranchingChain exercises a
// ForkDepthThreshold above 1 against a puzzle that branches at more than
// one depth, so forkStep goroutines wait on children that themselves fork
// further. A semaphore acquired by a forking ancestor rather than by the
// sequential leaf work would exhaust the pool's slots on this shape and
// hang forever; this test only passes if that can't happen.
func TestCoordinator_ForkJoin_DoesNotDeadlockOnBranchingChain(t *testing.T) {
	board, tiles := branchingChainPuzzle(t)
	c := parallel.NewCoordinator(parallel.WithMode(parallel.ForkJoin), parallel.WithNumWorkers(2), parallel.WithForkDepthThreshold(2))

	done := make(chan struct{})
	var ok bool
	var err error
	go func() {
		ok, err = c.Solve(board, tiles)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("ForkJoin deadlocked on a branching puzzle")
	}

	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, board.Validate())
	require.Equal(t, 3, board.PlacedCount())
}

// cornerDecoyPuzzle builds a 2x2 board where four decoy tiles (ids 1-4)
// legally fit the (0,0) corner but can never be part of any complete
// board, and the real solution's four tiles (ids 5-8) fit the same corner
// only after the decoys in ascending id order. The decoys occupy the
// first diversification slots; the true solution's corner candidate is
// the 5th fitting id.
func cornerDecoyPuzzle(t *testing.T) (*puzzle.Board, *puzzle.TileSet) {
	t.Helper()
	board, err := puzzle.NewBoard(2, 2)
	require.NoError(t, err)

	realEdges := [4]puzzle.Color{puzzle.Border, 1, 1, puzzle.Border}
	tiles, err := puzzle.NewTileSet([]puzzle.Tile{
		{ID: 1, Edges: [4]puzzle.Color{puzzle.Border, 91, puzzle.Border, puzzle.Border}},
		{ID: 2, Edges: [4]puzzle.Color{puzzle.Border, 92, puzzle.Border, puzzle.Border}},
		{ID: 3, Edges: [4]puzzle.Color{puzzle.Border, 93, puzzle.Border, puzzle.Border}},
		{ID: 4, Edges: [4]puzzle.Color{puzzle.Border, 94, puzzle.Border, puzzle.Border}},
		{ID: 5, Edges: realEdges},
		{ID: 6, Edges: realEdges},
		{ID: 7, Edges: realEdges},
		{ID: 8, Edges: realEdges},
	})
	require.NoError(t, err)
	return board, tiles
}

// TestCoordinator_WorkerPool_FindsSolutionPastDiversifiedCorners checks
// that with the default worker count and diversification on, a solution
// whose only valid corner tile is not among the first few corner-fitting
// candidates is still found: some worker must always search the corner
// undiversified.
func TestCoordinator_WorkerPool_FindsSolutionPastDiversifiedCorners(t *testing.T) {
	board, tiles := cornerDecoyPuzzle(t)
	c := parallel.NewCoordinator(parallel.WithNumWorkers(4))

	ok, err := c.Solve(board, tiles)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, board.Validate())
	require.Equal(t, 4, board.PlacedCount())
}

func TestCoordinator_RejectsInvalidInput(t *testing.T) {
	_, tiles := monocolorPuzzle(t)
	c := parallel.NewCoordinator()
	_, err := c.Solve(nil, tiles)
	require.ErrorIs(t, err, parallel.ErrNilBoard)

	board, _ := monocolorPuzzle(t)
	_, err = c.Solve(board, nil)
	require.ErrorIs(t, err, parallel.ErrNilTileSet)

	zero := parallel.NewCoordinator(parallel.WithNumWorkers(0))
	board2, tiles2 := monocolorPuzzle(t)
	_, err = zero.Solve(board2, tiles2)
	require.ErrorIs(t, err, parallel.ErrNoWorkers)
}
