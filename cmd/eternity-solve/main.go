// Command eternity-solve is a thin CLI wiring solver/parallel to
// filesave/termviz. It is not the focus of this module — the puzzle,
// solver, and parallel packages are the library surface; this binary only
// exists to exercise them end to end from a terminal.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/katalvlaran/eternity/filesave"
	"github.com/katalvlaran/eternity/parallel"
	"github.com/katalvlaran/eternity/puzzle"
	"github.com/katalvlaran/eternity/solver"
	"github.com/katalvlaran/eternity/termviz"
)

type tileFile struct {
	Rows  int `json:"rows"`
	Cols  int `json:"cols"`
	Tiles []struct {
		ID    int    `json:"id"`
		Edges [4]int `json:"edges"`
	} `json:"tiles"`
}

func main() {
	tilesPath := flag.String("tiles", "", "path to a JSON tile file ({rows, cols, tiles:[{id,edges}]})")
	useParallel := flag.Bool("parallel", false, "solve with parallel.Coordinator instead of a single Driver")
	workers := flag.Int("workers", 4, "worker count for -parallel")
	forkJoin := flag.Bool("fork-join", false, "use Mode B (fork/join) instead of the worker pool when -parallel is set")
	saveDir := flag.String("save-dir", "", "directory for resumable thread-state and record saves (disabled if empty)")
	verbose := flag.Bool("verbose", false, "render the solved board from inside the search and log new records")
	maxTime := flag.Duration("max-time", 0, "bound wall-clock search time (0 means unbounded)")
	flag.Parse()

	if *tilesPath == "" {
		fmt.Fprintln(os.Stderr, "eternity-solve: -tiles is required")
		os.Exit(2)
	}

	board, tiles, err := loadPuzzle(*tilesPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "eternity-solve:", err)
		os.Exit(1)
	}

	opts := []solver.Option{solver.WithMaxExecutionTime(*maxTime)}
	if *verbose {
		opts = append(opts, solver.WithVerbose(true), solver.WithVisualizer(termviz.DefaultVisualizer()))
	}
	if *saveDir != "" {
		provider, err := filesave.NewProvider(*saveDir)
		if err != nil {
			fmt.Fprintln(os.Stderr, "eternity-solve:", err)
			os.Exit(1)
		}
		opts = append(opts, solver.WithSaveProvider(provider))
	}

	start := time.Now()
	var ok bool
	if *useParallel {
		mode := parallel.WorkerPool
		if *forkJoin {
			mode = parallel.ForkJoin
		}
		c := parallel.NewCoordinator(parallel.WithMode(mode), parallel.WithNumWorkers(*workers))
		ok, err = c.Solve(board, tiles, opts...)
	} else {
		ok, _, err = solver.Solve(board, tiles, opts...)
	}
	elapsed := time.Since(start)

	if err != nil {
		fmt.Fprintln(os.Stderr, "eternity-solve:", err)
		os.Exit(1)
	}

	termviz.DefaultVisualizer().Render(board, nil)
	fmt.Printf("solved=%v elapsed=%s\n", ok, elapsed)
	if !ok {
		os.Exit(1)
	}
}

func loadPuzzle(path string) (*puzzle.Board, *puzzle.TileSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	var tf tileFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return nil, nil, err
	}

	board, err := puzzle.NewBoard(tf.Rows, tf.Cols)
	if err != nil {
		return nil, nil, err
	}

	puzzleTiles := make([]puzzle.Tile, 0, len(tf.Tiles))
	for _, t := range tf.Tiles {
		var edges [4]puzzle.Color
		for i, e := range t.Edges {
			edges[i] = puzzle.Color(e)
		}
		puzzleTiles = append(puzzleTiles, puzzle.Tile{ID: t.ID, Edges: edges})
	}
	tiles, err := puzzle.NewTileSet(puzzleTiles)
	if err != nil {
		return nil, nil, err
	}
	return board, tiles, nil
}
