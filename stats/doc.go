// Package stats implements the search engine's counters, cross-worker
// depth/score record tracking, and the top-of-tree progress estimator.
//
// Counters are plain integers, mutated only by the worker that owns them;
// GlobalRecords is the one type in this package meant to be shared across
// workers, and does so through atomics and a narrow mutex around its
// best-board snapshot.
package stats
