// Package heuristics implements the search engine's variable- and
// value-ordering heuristics: the singleton detector, MRV cell selection,
// LCV candidate ordering, and tile-difficulty precomputation.
//
// None of these mutate board, domain, or used state; they are pure
// queries over whatever state the caller passes in, so the driver can
// call them freely without bookkeeping a rollback.
package heuristics
