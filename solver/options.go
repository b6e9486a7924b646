package solver

import (
	"time"

	"github.com/katalvlaran/eternity/collab"
)

// SortOrder selects the direction the domain manager's flattened
// per-cell cache (domain.Manager.Cache) lists tile ids in. The Driver's
// candidate enumeration does not read it: candidates are ordered by
// difficulty, with ties broken by ascending tile id, in either setting.
type SortOrder int

const (
	// Ascending walks tile ids 1..N.
	Ascending SortOrder = iota
	// Descending walks tile ids N..1.
	Descending
)

// defaultSaveInterval is how often Solve asks the save provider to
// snapshot thread state, absent an explicit WithSaveInterval.
const defaultSaveInterval = 30 * time.Second

// defaultRecordSaveDepth is the minimum depth at which a new depth/score
// record triggers a SaveRecord call.
const defaultRecordSaveDepth = 10

// Options configures one Driver.
// Build one with NewOptions and the With* functional options below; the
// zero Options is never used directly, so every field not set by an
// option keeps the default NewOptions installs.
type Options struct {
	UseSingletons     bool
	UseAC3            bool
	UseDomainCache    bool
	UseLCV            bool
	PrioritizeBorders bool
	SortOrder         SortOrder
	SymmetryBreaking  bool
	Reflection        bool
	Verbose           bool

	MinDepthToShowRecords int
	RecordSaveDepth       int
	SaveInterval          time.Duration
	MaxExecutionTime      time.Duration // zero means unbounded

	NumFixedPieces int // -1 means auto-detect from the board
	RandomSeed     int64
	ThreadID       int
	ThreadLabel    string

	SaveProvider collab.SaveProvider
	Logger       collab.Logger
	Visualizer   collab.Visualizer

	// shared carries the cross-worker atomics and record tracker a
	// parallel.Coordinator installs via WithShared. A standalone Solve
	// leaves it nil and New allocates a private, unshared Shared.
	shared *Shared
}

// Option mutates an Options being built. Following the module's
// functional-option convention, option constructors validate and panic on
// inputs that can never be meaningful; the solver itself never panics on
// configuration, only on Option misuse at wiring time.
type Option func(*Options)

// NewOptions returns the engine's defaults: singletons, AC-3, and the
// domain cache enabled; LCV and border-prioritization off; ascending sort
// order; symmetry reflection off; unbounded execution time; auto-detected
// fixed-piece count; no-op collaborators.
func NewOptions(opts ...Option) Options {
	o := Options{
		UseSingletons:         true,
		UseAC3:                true,
		UseDomainCache:        true,
		UseLCV:                false,
		PrioritizeBorders:     false,
		SortOrder:             Ascending,
		SymmetryBreaking:      true,
		Reflection:            false,
		MinDepthToShowRecords: 0,
		RecordSaveDepth:       defaultRecordSaveDepth,
		SaveInterval:          defaultSaveInterval,
		MaxExecutionTime:      0,
		NumFixedPieces:        -1,
		RandomSeed:            0,
		ThreadID:              0,
		ThreadLabel:           "",
		SaveProvider:          collab.NoopSaveProvider{},
		Logger:                &collab.NoopLogger{},
		Visualizer:            collab.NoopVisualizer{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithSingletons toggles the singleton-detection branch (default on).
func WithSingletons(enabled bool) Option {
	return func(o *Options) { o.UseSingletons = enabled }
}

// WithAC3 toggles eager dead-end detection after each commit (default on).
// Domains are always kept consistent regardless of this
// flag; disabling it only defers dead-end discovery to the next MRV
// selection instead of backing out immediately.
func WithAC3(enabled bool) Option {
	return func(o *Options) { o.UseAC3 = enabled }
}

// WithDomainCache toggles sourcing a cell's candidates from its domain in
// the domain manager (Domains().Get, default on); disabling it falls back
// to every free tile id with all its unique rotations, each checked
// against Fits.
func WithDomainCache(enabled bool) Option {
	return func(o *Options) { o.UseDomainCache = enabled }
}

// WithLCV enables least-constraining-value re-ordering of a cell's
// candidates after difficulty ordering.
func WithLCV(enabled bool) Option {
	return func(o *Options) { o.UseLCV = enabled }
}

// WithPrioritizeBorders sets the MRV tie-break rule favoring border cells.
func WithPrioritizeBorders(enabled bool) Option {
	return func(o *Options) { o.PrioritizeBorders = enabled }
}

// WithSortOrder sets the ascending/descending tile-id order of the domain
// manager's flattened cache (see SortOrder).
func WithSortOrder(order SortOrder) Option {
	return func(o *Options) { o.SortOrder = order }
}

// WithReflection enables the optional reflection symmetry rule.
func WithReflection(enabled bool) Option {
	return func(o *Options) { o.Reflection = enabled }
}

// WithSymmetryBreaking toggles the two mandatory symmetry rules (lex-order
// on corners, rotation fix on top-left) as a unit (default on). Tests
// comparing solver behavior with and without canonical-form guarantees
// need to exercise both states, so this is exposed as an explicit
// opt-out rather than only as an internal test hook.
func WithSymmetryBreaking(enabled bool) Option {
	return func(o *Options) { o.SymmetryBreaking = enabled }
}

// WithVerbose toggles rendering the completed board through the
// Visualizer when the search finds a solution, and logging of new
// depth/score records.
func WithVerbose(enabled bool) Option {
	return func(o *Options) { o.Verbose = enabled }
}

// WithMinDepthToShowRecords gates record display by a minimum depth.
func WithMinDepthToShowRecords(depth int) Option {
	return func(o *Options) { o.MinDepthToShowRecords = depth }
}

// WithRecordSaveDepth sets the minimum depth at which a new record
// triggers SaveProvider.SaveRecord.
func WithRecordSaveDepth(depth int) Option {
	return func(o *Options) { o.RecordSaveDepth = depth }
}

// WithSaveInterval sets how often Solve snapshots thread state via
// SaveProvider.SaveThreadState (default 30s). A non-positive interval
// disables periodic thread-state saving.
func WithSaveInterval(d time.Duration) Option {
	return func(o *Options) { o.SaveInterval = d }
}

// WithMaxExecutionTime bounds wall-clock search time; zero (the default)
// means unbounded.
func WithMaxExecutionTime(d time.Duration) Option {
	if d < 0 {
		panic("solver: WithMaxExecutionTime(negative)")
	}
	return func(o *Options) { o.MaxExecutionTime = d }
}

// WithNumFixedPieces overrides auto-detection of the fixed-prefix count.
func WithNumFixedPieces(n int) Option {
	return func(o *Options) { o.NumFixedPieces = n }
}

// WithRandomSeed records a seed that is passed along with each
// SaveThreadState call; the sequential Driver itself makes no random
// choices. parallel.Coordinator's WorkerPool mode gives each worker a
// distinct seed.
func WithRandomSeed(seed int64) Option {
	return func(o *Options) { o.RandomSeed = seed }
}

// WithThreadID tags this Driver's record reports, logging, and save calls with
// a worker id (default 0 for a standalone, non-parallel solve).
func WithThreadID(id int) Option {
	return func(o *Options) { o.ThreadID = id }
}

// WithThreadLabel attaches a human-readable label alongside ThreadID.
func WithThreadLabel(label string) Option {
	return func(o *Options) { o.ThreadLabel = label }
}

// WithSaveProvider installs a persistence collaborator (default
// collab.NoopSaveProvider{}).
func WithSaveProvider(p collab.SaveProvider) Option {
	if p == nil {
		panic("solver: WithSaveProvider(nil)")
	}
	return func(o *Options) { o.SaveProvider = p }
}

// WithLogger installs a structured logging collaborator (default
// collab.NoopLogger).
func WithLogger(l collab.Logger) Option {
	if l == nil {
		panic("solver: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// WithVisualizer installs a visualization collaborator, invoked only when
// Verbose is set (default collab.NoopVisualizer{}).
func WithVisualizer(v collab.Visualizer) Option {
	if v == nil {
		panic("solver: WithVisualizer(nil)")
	}
	return func(o *Options) { o.Visualizer = v }
}

// WithShared installs the cross-worker atomics and global record tracker a
// parallel.Coordinator owns, so every worker's Driver observes the same
// solutionFound flag and contributes to the same depth/score records.
// A standalone, non-parallel Solve never needs this; New
// allocates a private Shared when none is supplied.
func WithShared(s *Shared) Option {
	if s == nil {
		panic("solver: WithShared(nil)")
	}
	return func(o *Options) { o.shared = s }
}
