package solver

import (
	"sync/atomic"

	"github.com/katalvlaran/eternity/stats"
)

// Shared bundles the cross-worker state a parallel.Coordinator installs
// into every Driver it runs: an atomic "solution found"
// flag checked at the top of every recursion, and the global depth/score
// record tracker. A single Shared instance must be passed to every Driver
// taking part in the same parallel solve; a standalone solve gets a fresh,
// unshared one from New.
type Shared struct {
	SolutionFound atomic.Bool
	Records       *stats.GlobalRecords
}

// NewShared allocates an empty Shared: no solution found yet, no records.
func NewShared() *Shared {
	return &Shared{Records: stats.NewGlobalRecords()}
}
