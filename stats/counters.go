package stats

import "time"

// Counters holds one worker's monotonically non-decreasing search
// counters. It is not safe for concurrent use; each worker
// owns one instance for the lifetime of its solve call.
type Counters struct {
	RecursiveCalls      int
	PlacementsAttempted int
	Backtracks          int
	FitChecks           int
	ForwardCheckRejects int
	SingletonsFound     int
	SingletonsPlaced    int
	DeadEndsDetected    int
}

// Statistics bundles a worker's Counters with its wall-clock timing,
// including an offset carrying previously accumulated time across a
// resume.
type Statistics struct {
	Counters
	startedAt    time.Time
	endedAt      time.Time
	priorElapsed time.Duration
}

// NewStatistics builds a Statistics with priorElapsed seeded from a
// resumed search's accumulated time (zero for a fresh solve).
func NewStatistics(priorElapsed time.Duration) *Statistics {
	return &Statistics{priorElapsed: priorElapsed}
}

// Start records the wall-clock start of this worker's solve call.
func (s *Statistics) Start() { s.startedAt = time.Now() }

// Stop records the wall-clock end of this worker's solve call.
func (s *Statistics) Stop() { s.endedAt = time.Now() }

// Elapsed returns total elapsed time including time accumulated before a
// resume. Before Start is called it returns priorElapsed; after Stop it
// is stable.
func (s *Statistics) Elapsed() time.Duration {
	if s.startedAt.IsZero() {
		return s.priorElapsed
	}
	end := s.endedAt
	if end.IsZero() {
		end = time.Now()
	}
	return s.priorElapsed + end.Sub(s.startedAt)
}
