// Package parallel implements ParallelCoordinator: running many
// solver.Driver instances concurrently over one puzzle, either as an
// independent worker pool (Mode A) or as a work-stealing fork/join search
// below a depth threshold (Mode B), coordinated through a shared
// solver.Shared so any worker finding a solution stops the rest.
package parallel
