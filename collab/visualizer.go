package collab

import "github.com/katalvlaran/eternity/puzzle"

// Visualizer renders a read-only snapshot of search progress. It is
// invoked only when the engine's verbose option is set.
type Visualizer interface {
	Render(board *puzzle.Board, unusedTileIDs []int)
}
