package solver

import (
	"time"

	"github.com/katalvlaran/eternity/domain"
	"github.com/katalvlaran/eternity/heuristics"
	"github.com/katalvlaran/eternity/history"
	"github.com/katalvlaran/eternity/puzzle"
	"github.com/katalvlaran/eternity/stats"
	"github.com/katalvlaran/eternity/symmetry"
)

// Driver owns one worker's mutable search state for the lifetime of one
// solve call: board, tile set, used-set,
// domains, history, heuristics, and statistics. Nothing here is safe for
// concurrent use by more than one goroutine; parallel.Coordinator runs
// many Drivers, one per worker, each over its own private state, tied
// together only through Shared.
type Driver struct {
	board   *puzzle.Board
	tiles   *puzzle.TileSet
	used    *puzzle.UsedSet
	domains *domain.Manager
	hist    *history.History
	breaker *symmetry.Breaker

	difficulty map[int]int
	progress   *stats.ProgressEstimator
	stat       *stats.Statistics

	opts     Options
	numFixed int
	shared   *Shared
	lastSave time.Time
}

// New builds a Driver over board and tiles. board may already carry a
// fixed prefix (cells placed via Board.Fix before New is called); New
// derives the used-set and placement history from it. opts.NumFixedPieces
// overrides auto-detection when non-negative.
//
// The edge-compatibility index and domain manager are built and
// initialized here, before any search step runs.
func New(board *puzzle.Board, tiles *puzzle.TileSet, opts ...Option) (*Driver, error) {
	if board == nil {
		return nil, ErrNilBoard
	}
	if tiles == nil {
		return nil, ErrNilTileSet
	}

	o := NewOptions(opts...)

	used := puzzle.NewUsedSet(tiles.MaxID())
	numFixed := o.NumFixedPieces
	if numFixed < 0 {
		numFixed = board.FixedCount()
	}

	hist := history.New(numFixed)
	for r := 0; r < board.Rows(); r++ {
		for c := 0; c < board.Cols(); c++ {
			if !board.IsFixed(r, c) {
				continue
			}
			p := board.At(r, c)
			used.Add(p.TileID)
			hist.Push(r, c, p.TileID, p.Rotation)
		}
	}

	emptyCells := len(board.EmptyCells())
	freeTiles := tiles.Len() - used.Count()
	if emptyCells > freeTiles {
		return nil, ErrTooManyPieces
	}

	index := puzzle.NewEdgeIndex(tiles)
	domains, err := domain.NewManager(tiles, index, board.Rows(), board.Cols(), o.SortOrder == Descending)
	if err != nil {
		return nil, err
	}
	domains.Initialize(board, used)

	var breakerOpts []symmetry.Option
	if o.Reflection {
		breakerOpts = append(breakerOpts, symmetry.WithReflection())
	}

	difficulty, err := heuristics.PrecomputeDifficulty(tiles, board.Rows(), board.Cols())
	if err != nil {
		return nil, err
	}

	shared := o.shared
	if shared == nil {
		shared = NewShared()
	}

	return &Driver{
		board:      board,
		tiles:      tiles,
		used:       used,
		domains:    domains,
		hist:       hist,
		breaker:    symmetry.NewBreaker(breakerOpts...),
		difficulty: difficulty,
		progress:   &stats.ProgressEstimator{},
		stat:       stats.NewStatistics(0),
		opts:       o,
		numFixed:   numFixed,
		shared:     shared,
	}, nil
}

// newResumed is New's counterpart for HistoryResumer: it skips fixed-prefix
// derivation (the caller already seeded board/used/hist from a save) and
// accepts a prior-elapsed offset to carry accumulated time across resumes.
func newResumed(board *puzzle.Board, tiles *puzzle.TileSet, used *puzzle.UsedSet, hist *history.History, numFixed int, priorElapsed time.Duration, opts Options) (*Driver, error) {
	index := puzzle.NewEdgeIndex(tiles)
	domains, err := domain.NewManager(tiles, index, board.Rows(), board.Cols(), opts.SortOrder == Descending)
	if err != nil {
		return nil, err
	}
	domains.Initialize(board, used)

	var breakerOpts []symmetry.Option
	if opts.Reflection {
		breakerOpts = append(breakerOpts, symmetry.WithReflection())
	}

	difficulty, err := heuristics.PrecomputeDifficulty(tiles, board.Rows(), board.Cols())
	if err != nil {
		return nil, err
	}

	shared := opts.shared
	if shared == nil {
		shared = NewShared()
	}

	return &Driver{
		board:      board,
		tiles:      tiles,
		used:       used,
		domains:    domains,
		hist:       hist,
		breaker:    symmetry.NewBreaker(breakerOpts...),
		difficulty: difficulty,
		progress:   &stats.ProgressEstimator{},
		stat:       stats.NewStatistics(priorElapsed),
		opts:       opts,
		numFixed:   numFixed,
		shared:     shared,
	}, nil
}

// Board returns the driver's board. After Solve returns true, this board
// carries the completed placement.
func (d *Driver) Board() *puzzle.Board { return d.board }

// UsedSet returns the driver's used-tile bitset.
func (d *Driver) UsedSet() *puzzle.UsedSet { return d.used }

// Domains returns the driver's domain manager, for collaborators and
// tests that need to inspect per-cell candidate sets directly.
func (d *Driver) Domains() *domain.Manager { return d.domains }

// History returns the driver's placement history.
func (d *Driver) History() *history.History { return d.hist }

// Statistics returns the driver's counters and timing.
func (d *Driver) Statistics() *stats.Statistics { return d.stat }

// Progress returns the best-effort top-of-tree progress estimate; see stats.ProgressEstimator for its documented limitations.
func (d *Driver) Progress() float64 { return d.progress.Estimate() }

// Shared returns the driver's cross-worker coordination state.
func (d *Driver) Shared() *Shared { return d.shared }

// remainingTileIDs returns the free tile ids in ascending order, used by
// the verbose visualizer hook.
func (d *Driver) remainingTileIDs() []int {
	out := make([]int, 0, d.tiles.Len()-d.used.Count())
	for _, id := range d.tiles.IDs() {
		if !d.used.Has(id) {
			out = append(out, id)
		}
	}
	return out
}
