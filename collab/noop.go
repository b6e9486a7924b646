package collab

import (
	"sync"
	"time"

	"github.com/katalvlaran/eternity/history"
	"github.com/katalvlaran/eternity/puzzle"
)

// NoopSaveProvider discards every write and reports no saved state. It
// is the default when Options carries no SaveProvider, so the engine
// never requires persistence plumbing to run.
type NoopSaveProvider struct{}

func (NoopSaveProvider) SaveThreadState(*puzzle.Board, *puzzle.UsedSet, []history.Record, int, int, int64) error {
	return nil
}

func (NoopSaveProvider) LoadThreadState(int, *puzzle.TileSet) (*ThreadState, bool, error) {
	return nil, false, nil
}

func (NoopSaveProvider) HasThreadState(int) bool { return false }

func (NoopSaveProvider) SaveRecord(*puzzle.Board, *puzzle.UsedSet, int, int) error { return nil }

func (NoopSaveProvider) ReadTotalComputeTime(string) (time.Duration, error) { return 0, nil }

// NoopLogger discards every message. Lock/Unlock still serialize, since
// nothing guarantees a caller won't rely on the mutual exclusion itself.
type NoopLogger struct {
	mu sync.Mutex
}

func (l *NoopLogger) Info(string) {}
func (l *NoopLogger) Warn(string) {}
func (l *NoopLogger) Lock()       { l.mu.Lock() }
func (l *NoopLogger) Unlock()     { l.mu.Unlock() }

// NoopVisualizer renders nothing. It exists so Options can default
// Visualizer without making verbose mode a special case in the driver.
type NoopVisualizer struct{}

func (NoopVisualizer) Render(*puzzle.Board, []int) {}
