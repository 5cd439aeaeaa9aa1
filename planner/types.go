package planner

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/balancedforest/tree"
)

// Cut budget bounds. The search never makes more than MaxCutsLimit cuts.
const (
	MinCutsLimit   = 1
	MaxCutsLimit   = 2
	DefaultMaxCuts = MaxCutsLimit
)

var (
	// ErrNilTree is returned when Plan receives a nil tree.
	ErrNilTree = errors.New("planner: tree is nil")

	// ErrRootNotFound indicates the search root is not a node of the tree.
	ErrRootNotFound = errors.New("planner: root not found")

	// ErrNilComparator is returned when Plan receives no comparator.
	ErrNilComparator = errors.New("planner: comparator is nil")

	// ErrMaxCuts indicates a cut budget outside [MinCutsLimit, MaxCutsLimit].
	ErrMaxCuts = errors.New("planner: max cuts out of range")

	// ErrCheckpointLeak indicates the search returned with open marks or
	// registered nodes, i.e. the tree may not have been restored.
	ErrCheckpointLeak = errors.New("planner: checkpoint not fully unwound")
)

// Option configures optional behavior of Plan.
type Option func(*Options)

// Options holds the search configuration.
type Options struct {
	// MaxCuts bounds the number of edges removed; default DefaultMaxCuts.
	MaxCuts int

	// Cutter severs a candidate subtree; default tree.SubtractingCutter.
	Cutter tree.Cutter

	// Exclusions are nodes whose subtrees the top-level walk never enters.
	Exclusions []tree.ID

	// Logger receives debug records for every evaluated cut; default discards.
	Logger *slog.Logger

	// Stats, if non-nil, accumulates search counters.
	Stats *Stats
}

// Stats counts search work. Counters accumulate across Plan calls that share
// the same *Stats.
type Stats struct {
	Visited    int // nodes handed to the visitor, all walks
	Cuts       int // trial cuts performed
	SubPlans   int // nested searches started
	Candidates int // candidate forests ranked
	Rollbacks  int // checkpoint rollbacks
	MaxDepth   int // most cuts simultaneously in effect
}

// DefaultOptions returns Options with:
//   - MaxCuts = DefaultMaxCuts (2)
//   - Cutter  = tree.SubtractingCutter
//   - no exclusions, a discarding logger and no stats collection.
func DefaultOptions() Options {
	return Options{
		MaxCuts: DefaultMaxCuts,
		Cutter:  tree.SubtractingCutter,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithMaxCuts sets the cut budget. Values outside [1,2] make Plan fail
// with ErrMaxCuts.
func WithMaxCuts(n int) Option {
	return func(o *Options) { o.MaxCuts = n }
}

// WithCutter replaces the cutter. A nil cutter has no effect.
func WithCutter(c tree.Cutter) Option {
	return func(o *Options) {
		if c != nil {
			o.Cutter = c
		}
	}
}

// WithExclusions adds nodes the top-level walk must not enter.
func WithExclusions(ids ...tree.ID) Option {
	return func(o *Options) {
		o.Exclusions = append(o.Exclusions, ids...)
	}
}

// WithLogger installs a structured logger. A nil logger has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithStats makes Plan accumulate counters into s.
func WithStats(s *Stats) Option {
	return func(o *Options) { o.Stats = s }
}
