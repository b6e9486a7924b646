package solver

import "github.com/katalvlaran/eternity/puzzle"

// Solve is the package-level convenience form of "solve(board, pieces) ->
// bool": build a Driver over board and tiles and run it to completion.
// The returned Driver exposes statistics and progress; callers that want
// the Driver before the search runs should use New and (*Driver).Solve
// directly.
func Solve(board *puzzle.Board, tiles *puzzle.TileSet, opts ...Option) (bool, *Driver, error) {
	d, err := New(board, tiles, opts...)
	if err != nil {
		return false, nil, err
	}
	return d.Solve(), d, nil
}
