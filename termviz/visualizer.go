package termviz

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/katalvlaran/eternity/puzzle"
)

// palette cycles tile ids through a fixed set of foreground colors so
// adjacent tiles are visually distinguishable without needing as many
// colors as the puzzle has tiles.
var palette = []*color.Color{
	color.New(color.FgRed),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgBlue),
	color.New(color.FgMagenta),
	color.New(color.FgCyan),
}

// Visualizer renders a board snapshot to a terminal. It is not safe for concurrent
// Render calls from more than one goroutine at once; a parallel.Coordinator
// worker pool should install one Visualizer per thread if it wants
// per-worker rendering.
type Visualizer struct {
	out io.Writer
}

// NewVisualizer returns a Visualizer writing to out.
func NewVisualizer(out io.Writer) *Visualizer {
	return &Visualizer{out: out}
}

// DefaultVisualizer returns a Visualizer writing to os.Stdout.
func DefaultVisualizer() *Visualizer {
	return NewVisualizer(os.Stdout)
}

// Render implements collab.Visualizer: each placed cell prints its tile id
// and rotation in a color keyed by tile id; empty cells print a dot.
func (v *Visualizer) Render(board *puzzle.Board, unusedTileIDs []int) {
	for r := 0; r < board.Rows(); r++ {
		for c := 0; c < board.Cols(); c++ {
			p := board.At(r, c)
			if p == nil {
				fmt.Fprint(v.out, "  ·  ")
				continue
			}
			cellColor := palette[p.TileID%len(palette)]
			cellColor.Fprintf(v.out, "[%2d/%d]", p.TileID, p.Rotation)
		}
		fmt.Fprintln(v.out)
	}
	fmt.Fprintf(v.out, "remaining: %d\n", len(unusedTileIDs))
}
