package symmetry

import "github.com/katalvlaran/eternity/puzzle"

// Breaker enforces placement-time symmetry-breaking rules.
// The zero value (via NewBreaker with no options) enforces the two
// mandatory rules only; WithReflection additionally enables the optional
// diagonal-reflection rule.
type Breaker struct {
	reflection bool
}

// Option configures a Breaker at construction time.
type Option func(*Breaker)

// WithReflection enables the optional reflection rule (disabled by
// default): it forbids a corner placement that would make the board's
// main-diagonal reflection lexically precede the board itself, compared
// only at the two off-diagonal corners. It has no effect on non-square
// boards, where a main-diagonal reflection isn't a symmetry of the grid.
func WithReflection() Option {
	return func(b *Breaker) { b.reflection = true }
}

// NewBreaker builds a Breaker with the given options applied.
func NewBreaker(opts ...Option) *Breaker {
	b := &Breaker{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// IsPlacementAllowed reports whether placing tile id at rotation rot at
// (r,c) respects every enabled symmetry rule, given the board's current
// state (not yet mutated with this placement). It never mutates board.
func (b *Breaker) IsPlacementAllowed(board *puzzle.Board, r, c, id, rotation int) bool {
	if r == 0 && c == 0 && rotation != 0 {
		return false
	}
	if isCorner(board, r, c) && !(r == 0 && c == 0) {
		if tl := board.At(0, 0); tl != nil && id < tl.TileID {
			return false
		}
	}
	if b.reflection && !b.reflectionAllows(board, r, c, id) {
		return false
	}
	return true
}

func (b *Breaker) reflectionAllows(board *puzzle.Board, r, c, id int) bool {
	rows, cols := board.Rows(), board.Cols()
	if rows != cols {
		return true
	}
	if r == 0 && c == cols-1 { // top-right
		if p := board.At(rows-1, 0); p != nil && id > p.TileID {
			return false
		}
	}
	if r == rows-1 && c == 0 { // bottom-left
		if p := board.At(0, cols-1); p != nil && id < p.TileID {
			return false
		}
	}
	return true
}

func isCorner(board *puzzle.Board, r, c int) bool {
	rows, cols := board.Rows(), board.Cols()
	return (r == 0 || r == rows-1) && (c == 0 || c == cols-1)
}
