// Package propagate implements AC-3 style constraint propagation over a
// domain.Manager: after a tile is committed to the board, narrow every
// empty direct neighbor's domain against the newly fixed edge and report
// whether any neighbor domain became empty.
//
// The propagator never mutates the board; it only narrows and, on request,
// restores domain.Manager state. Rolling the board placement itself back
// is the caller's responsibility.
package propagate
