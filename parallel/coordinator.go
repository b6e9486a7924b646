package parallel

import (
	"sync"

	"github.com/katalvlaran/eternity/puzzle"
	"github.com/katalvlaran/eternity/solver"
)

// Coordinator implements ParallelCoordinator: it owns the
// policy (mode, worker count, fork threshold, diversification) and drives
// one or many solver.Driver instances over private board clones, tied
// together only by a shared solver.Shared. Coordinator holds no search
// state of its own and is safe to reuse across multiple Solve calls.
type Coordinator struct {
	opts Options
}

// NewCoordinator builds a Coordinator from the given options.
func NewCoordinator(opts ...Option) *Coordinator {
	return &Coordinator{opts: NewOptions(opts...)}
}

// result collects the first successful board across every worker or
// subtask, guarded by a mutex following the narrow-lock-scope-copy-under-
// lock discipline stats.GlobalRecords uses for its own board snapshot.
type result struct {
	mu    sync.Mutex
	found bool
	board *puzzle.Board
}

func (r *result) trySet(board *puzzle.Board) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.found {
		r.found = true
		r.board = board
	}
}

func (r *result) get() (*puzzle.Board, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.board, r.found
}

// Solve runs the configured strategy over board/tiles and, on success,
// copies the winning board into board itself before returning true. solverOpts are
// forwarded to every Driver the coordinator creates; WithShared is always
// overridden by the coordinator itself, and in WorkerPool mode so are
// WithThreadID and WithRandomSeed.
func (c *Coordinator) Solve(board *puzzle.Board, tiles *puzzle.TileSet, solverOpts ...solver.Option) (bool, error) {
	if board == nil {
		return false, ErrNilBoard
	}
	if tiles == nil {
		return false, ErrNilTileSet
	}
	if c.opts.NumWorkers <= 0 {
		return false, ErrNoWorkers
	}

	shared := solver.NewShared()

	var res *result
	switch c.opts.Mode {
	case ForkJoin:
		res = c.solveForkJoin(board, tiles, shared, solverOpts)
	default:
		res = c.solveWorkerPool(board, tiles, shared, solverOpts)
	}

	winner, ok := res.get()
	if !ok {
		return false, nil
	}
	if err := board.CopyFrom(winner); err != nil {
		return false, err
	}
	return true, nil
}

// solveWorkerPool implements Mode A: NumWorkers independent
// Drivers, each over its own board clone and a distinct thread id and
// random seed, racing over a shared solutionFound flag and global record
// tracker. Up to NumWorkers-1 workers (capped at 4) each get a distinct
// tile pre-fixed at (0,0) when diversification is enabled and the corner is
// free, forcing them into disjoint parts of the search tree; at least one
// worker is always left undiversified so a solution whose corner falls
// outside the pre-fixed candidates is still reachable.
func (c *Coordinator) solveWorkerPool(board *puzzle.Board, tiles *puzzle.TileSet, shared *solver.Shared, solverOpts []solver.Option) *result {
	res := &result{}

	var diversify []puzzle.Placement
	if c.opts.Diversification && c.opts.NumWorkers > 1 && board.InBounds(0, 0) && board.IsEmpty(0, 0) {
		n := c.opts.NumWorkers - 1
		if n > 4 {
			n = 4
		}
		diversify = cornerCandidates(board, tiles, n)
	}

	var wg sync.WaitGroup
	for w := 0; w < c.opts.NumWorkers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()

			clone := board.Clone()
			if w < len(diversify) {
				_ = clone.Fix(0, 0, diversify[w]) // best-effort; a failure just forgoes diversification for this worker
			}

			workerOpts := make([]solver.Option, 0, len(solverOpts)+3)
			workerOpts = append(workerOpts, solverOpts...)
			workerOpts = append(workerOpts,
				solver.WithShared(shared),
				solver.WithThreadID(w),
				solver.WithRandomSeed(int64(w)),
			)

			d, err := solver.New(clone, tiles, workerOpts...)
			if err != nil {
				return
			}
			if d.Solve() {
				res.trySet(d.Board())
			}
		}(w)
	}
	wg.Wait()
	return res
}

// cornerCandidates returns up to n distinct (tile, rotation) placements
// that legally fit (0,0) on board, used to seed Mode A's diversification
// rule.
func cornerCandidates(board *puzzle.Board, tiles *puzzle.TileSet, n int) []puzzle.Placement {
	out := make([]puzzle.Placement, 0, n)
	for _, id := range tiles.IDs() {
		tile, _ := tiles.Get(id)
		for _, rot := range tile.UniqueRotations() {
			edges := tile.Rotated(rot)
			if !puzzle.Fits(board, 0, 0, edges) {
				continue
			}
			out = append(out, puzzle.Placement{TileID: id, Rotation: rot, Edges: edges})
			if len(out) == n {
				return out
			}
			break // one rotation per tile id keeps the corner's tile choices distinct
		}
	}
	return out
}

// solveForkJoin implements Mode B: a single logical search
// that forks a subtask per legal (tile,rotation) at the first empty cell
// while above ForkDepthThreshold, and falls back to a sequential Driver at
// or below it. A semaphore bounds how many sequential Drivers run at once;
// it is acquired only at the leaf (see forkStep), never by a forking
// ancestor, so a goroutine blocked in wg.Wait() for its children never
// occupies a slot those children need to make progress.
func (c *Coordinator) solveForkJoin(board *puzzle.Board, tiles *puzzle.TileSet, shared *solver.Shared, solverOpts []solver.Option) *result {
	res := &result{}
	sem := make(chan struct{}, c.opts.NumWorkers)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.forkStep(board.Clone(), 0, tiles, shared, sem, res, solverOpts)
	}()
	wg.Wait()
	return res
}

// forkStep is solveForkJoin's recursive unit. It either forks further or
// hands board off to a sequential Driver. Forking itself is cheap (just
// goroutine creation and a board clone per branch) and runs unbounded;
// only the sequential leaf work below acquires sem, so the pool's
// NumWorkers slots bound actual concurrent search rather than in-flight
// fork/join bookkeeping.
func (c *Coordinator) forkStep(board *puzzle.Board, depth int, tiles *puzzle.TileSet, shared *solver.Shared, sem chan struct{}, res *result, solverOpts []solver.Option) {
	if shared.SolutionFound.Load() {
		return
	}

	driverOpts := make([]solver.Option, 0, len(solverOpts)+1)
	driverOpts = append(driverOpts, solverOpts...)
	driverOpts = append(driverOpts, solver.WithShared(shared))

	empties := board.EmptyCells()
	if depth >= c.opts.ForkDepthThreshold || len(empties) == 0 {
		sem <- struct{}{}
		defer func() { <-sem }()

		d, err := solver.New(board, tiles, driverOpts...)
		if err != nil {
			return
		}
		if d.Solve() {
			res.trySet(d.Board())
		}
		return
	}

	d, err := solver.New(board, tiles, driverOpts...)
	if err != nil {
		return
	}
	r, c0 := empties[0][0], empties[0][1]
	domainMap := d.Domains().Get(r, c0)

	var wg sync.WaitGroup
	for id, rotations := range domainMap {
		tile, _ := tiles.Get(id)
		for _, rot := range rotations {
			if shared.SolutionFound.Load() {
				break
			}
			edges := tile.Rotated(rot)
			sub := board.Clone()
			if err := sub.Fix(r, c0, puzzle.Placement{TileID: id, Rotation: rot, Edges: edges}); err != nil {
				continue
			}

			wg.Add(1)
			go func(sub *puzzle.Board) {
				defer wg.Done()
				c.forkStep(sub, depth+1, tiles, shared, sem, res, solverOpts)
			}(sub)
		}
	}
	wg.Wait()
}
