package collab

import (
	"time"

	"github.com/katalvlaran/eternity/history"
	"github.com/katalvlaran/eternity/puzzle"
)

// ThreadState is everything HistoryResumer needs to reconstruct a
// worker's search state from a save.
type ThreadState struct {
	Board   *puzzle.Board
	Used    *puzzle.UsedSet
	Depth   int
	Seed    int64
	History []history.Record
}

// SaveProvider is the persistence contract the engine calls into at
// configured milestones. Implementations own the on-disk (or otherwise
// durable) representation entirely; the engine never inspects it.
type SaveProvider interface {
	// SaveThreadState snapshots one worker's resumable state.
	SaveThreadState(board *puzzle.Board, used *puzzle.UsedSet, hist []history.Record, depth, threadID int, seed int64) error
	// LoadThreadState reconstructs a previously saved worker state. found
	// is false if no save exists for threadID.
	LoadThreadState(threadID int, tiles *puzzle.TileSet) (state *ThreadState, found bool, err error)
	// HasThreadState reports whether a save exists for threadID without
	// paying the cost of a full load.
	HasThreadState(threadID int) bool
	// SaveRecord persists a new depth or score record.
	SaveRecord(board *puzzle.Board, used *puzzle.UsedSet, totalTiles int, depth int) error
	// ReadTotalComputeTime returns accumulated wall-clock time previously
	// spent on puzzleName, for carrying an elapsed-time offset across
	// resumes. Returns zero if nothing is recorded yet.
	ReadTotalComputeTime(puzzleName string) (time.Duration, error)
}
