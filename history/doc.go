// Package history implements the append-only placement log the
// backtracking driver and resumer use to record and unwind search
// decisions. The first numFixed entries are the immutable fixed prefix
// supplied at construction and are never popped: puzzle.Board itself
// refuses to Clear a fixed cell, so there is nothing a pop past that
// point could undo.
package history
