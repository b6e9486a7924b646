package parallel

// Mode selects which of ParallelCoordinator's two strategies a Coordinator
// runs.
type Mode int

const (
	// WorkerPool runs ModeA: NumWorkers independent Drivers, each over its
	// own board clone, racing to a solution.
	WorkerPool Mode = iota
	// ForkJoin runs ModeB: one logical search that forks into subtasks at
	// the first empty cell of each level above ForkDepthThreshold and falls back to a
	// sequential Driver below it.
	ForkJoin
)

// defaultForkDepthThreshold is the depth below which ForkJoin mode stops
// spawning new subtasks and hands off to a sequential Driver.
const defaultForkDepthThreshold = 5

// Options configures a Coordinator.
type Options struct {
	Mode               Mode
	NumWorkers         int
	ForkDepthThreshold int
	Diversification    bool
}

// Option mutates an Options being built, following the same functional-
// option convention as solver.Option.
type Option func(*Options)

// NewOptions returns the coordinator's defaults: WorkerPool mode, four
// workers, diversification enabled, and a depth-5 fork threshold.
func NewOptions(opts ...Option) Options {
	o := Options{
		Mode:               WorkerPool,
		NumWorkers:         4,
		ForkDepthThreshold: defaultForkDepthThreshold,
		Diversification:    true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMode selects WorkerPool or ForkJoin.
func WithMode(m Mode) Option {
	return func(o *Options) { o.Mode = m }
}

// WithNumWorkers sets the worker-pool size (Mode A) or the bound on
// concurrently running sequential Drivers (Mode B; forking itself is not
// bounded). Values <= 0 are caught at
// Solve time as ErrNoWorkers.
func WithNumWorkers(n int) Option {
	return func(o *Options) { o.NumWorkers = n }
}

// WithForkDepthThreshold sets the depth below which ForkJoin mode stops
// forking and falls back to a sequential Driver (default 5).
func WithForkDepthThreshold(depth int) Option {
	if depth < 0 {
		panic("parallel: WithForkDepthThreshold(negative)")
	}
	return func(o *Options) { o.ForkDepthThreshold = depth }
}

// WithDiversification toggles WorkerPool mode's corner pre-placement rule
// (default on).
func WithDiversification(enabled bool) Option {
	return func(o *Options) { o.Diversification = enabled }
}
