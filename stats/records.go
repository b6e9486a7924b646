package stats

import (
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/eternity/puzzle"
)

// GlobalRecords tracks the best depth and score seen across every worker
// of a parallel solve, plus a point-in-time snapshot of the board that
// achieved it. It is safe for concurrent use: the
// scalar records are atomics updated via CAS loops, and the board
// snapshot is guarded by a mutex held only for the duration of a copy,
// following the narrow-lock-scope-copy-under-lock discipline the rest of
// this module's board cloning uses.
type GlobalRecords struct {
	maxDepth     atomic.Int64
	bestScore    atomic.Int64
	bestThreadID atomic.Int64

	mu        sync.Mutex
	bestBoard *puzzle.Board
	bestUsed  *puzzle.UsedSet
}

// NewGlobalRecords returns an empty tracker.
func NewGlobalRecords() *GlobalRecords {
	return &GlobalRecords{}
}

// ObserveDepth reports a worker's current depth and, if it strictly
// exceeds the current global maximum, installs it as the new record via
// CAS and snapshots board/used as the new global best. Returns whether
// this observation set a new record.
func (g *GlobalRecords) ObserveDepth(threadID, depth int, board *puzzle.Board, used *puzzle.UsedSet) bool {
	for {
		cur := g.maxDepth.Load()
		if int64(depth) <= cur {
			return false
		}
		if g.maxDepth.CompareAndSwap(cur, int64(depth)) {
			g.bestThreadID.Store(int64(threadID))
			g.snapshot(board, used)
			return true
		}
	}
}

// ObserveScore is ObserveDepth's counterpart for the matched-edge score
// record.
func (g *GlobalRecords) ObserveScore(threadID, score int, board *puzzle.Board, used *puzzle.UsedSet) bool {
	for {
		cur := g.bestScore.Load()
		if int64(score) <= cur {
			return false
		}
		if g.bestScore.CompareAndSwap(cur, int64(score)) {
			g.bestThreadID.Store(int64(threadID))
			g.snapshot(board, used)
			return true
		}
	}
}

func (g *GlobalRecords) snapshot(board *puzzle.Board, used *puzzle.UsedSet) {
	boardCopy := board.Clone()
	usedCopy := used.Clone()
	g.mu.Lock()
	g.bestBoard = boardCopy
	g.bestUsed = usedCopy
	g.mu.Unlock()
}

// MaxDepth returns the current global depth record.
func (g *GlobalRecords) MaxDepth() int { return int(g.maxDepth.Load()) }

// BestScore returns the current global score record.
func (g *GlobalRecords) BestScore() int { return int(g.bestScore.Load()) }

// BestThreadID returns the id of the worker that set the most recent
// record (depth or score).
func (g *GlobalRecords) BestThreadID() int { return int(g.bestThreadID.Load()) }

// BestBoard returns a fresh clone of the last-snapshotted best board and
// used set, or nil, nil if no record has been observed yet.
func (g *GlobalRecords) BestBoard() (*puzzle.Board, *puzzle.UsedSet) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.bestBoard == nil {
		return nil, nil
	}
	return g.bestBoard.Clone(), g.bestUsed.Clone()
}
