// Package puzzle defines the board and tile model for edge-matching
// (Eternity-family) puzzles: colors, tiles and their rotations, placements,
// the board grid with its frame/adjacency invariants, the used-tile bitset,
// and the placement validator (fit checks + forward checking).
//
// Everything here is pure data plus pure functions: no search, no
// concurrency, no I/O. Higher packages (domain, propagate, heuristics,
// symmetry, history, stats, solver, parallel) build on top of it but it
// depends on nothing in this module.
package puzzle
