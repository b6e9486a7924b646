// Package domain implements DomainManager: per-cell domains of
// legal (tile, rotation) pairs for every empty board cell, plus the
// auxiliary flattened, sort-ordered copy of each domain (Manager.Cache).
//
// A Manager's domain for a cell is always kept equal to what a fresh
// Initialize would compute against the current (board, used) state; this package achieves that by recomputing a cell's domain
// from scratch whenever it changes, rather than patching it incrementally,
// which keeps the invariant true by construction instead of by careful
// bookkeeping.
package domain
