package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/katalvlaran/balancedforest/forest"
	"github.com/katalvlaran/balancedforest/tree"
)

// search carries the state shared by every nested sub-search of one Plan call.
type search struct {
	t      *tree.Tree
	cp     *tree.Checkpoint
	cmp    forest.Comparator
	opts   Options
	stats  Stats
	debug  bool
	log    *slog.Logger
	failed error
}

// Plan searches for the most preferred forest obtainable from the component
// rooted at root by cutting at most MaxCuts edges, as ranked by cmp.
//
// The tree must hold subtree sums (see tree.Aggregate). It is mutated during
// the search through a checkpoint attached for the duration of the call and
// is restored to its input state on return, including on error.
//
// Steps:
//  1. Validate inputs and options.
//  2. Attach a checkpoint to t.
//  3. Walk from root; every non-root node is a trial cut whose candidates
//     (incumbent, the plain two-way split, and up to two nested sub-searches)
//     are ranked by cmp.
//  4. Verify the checkpoint is fully unwound.
//
// Errors:
//   - ErrNilTree, ErrRootNotFound, ErrNilComparator, ErrMaxCuts on bad input.
//   - tree.ErrCheckpointAttached if t already has a checkpoint.
//   - Any cutter error, wrapped.
//   - ErrCheckpointLeak if a mark or registration survived the search.
//
// Complexity: O(n^MaxCuts · depth) time, O(n) extra space.
func Plan(t *tree.Tree, root tree.ID, cmp forest.Comparator, opts ...Option) (forest.Forest, error) {
	// 1. Validate
	if t == nil {
		return forest.Empty, ErrNilTree
	}
	if !t.Has(root) {
		return forest.Empty, fmt.Errorf("Plan: root %s: %w", root, ErrRootNotFound)
	}
	if cmp == nil {
		return forest.Empty, ErrNilComparator
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxCuts < MinCutsLimit || o.MaxCuts > MaxCutsLimit {
		return forest.Empty, fmt.Errorf("Plan: max cuts %d: %w", o.MaxCuts, ErrMaxCuts)
	}

	// 2. Attach checkpoint
	cp, err := tree.NewCheckpoint(t)
	if err != nil {
		return forest.Empty, fmt.Errorf("Plan: %w", err)
	}
	defer cp.Close()

	s := &search{
		t:     t,
		cp:    cp,
		cmp:   cmp,
		opts:  o,
		log:   o.Logger,
		debug: o.Logger.Enabled(context.Background(), slog.LevelDebug),
	}
	excl := make(map[tree.ID]struct{}, len(o.Exclusions))
	for _, id := range o.Exclusions {
		excl[id] = struct{}{}
	}

	// 3. Search
	start := time.Now()
	best := s.plan(root, excl, 0, nil)

	// 4. Verify
	err = s.failed
	if err == nil && (cp.Depth() != 0 || cp.Pending() != 0) {
		err = fmt.Errorf("Plan: depth %d, pending %d: %w", cp.Depth(), cp.Pending(), ErrCheckpointLeak)
	}
	s.stats.Rollbacks = cp.Stats().Rollbacks
	recordPlan(context.Background(), s.stats, o.MaxCuts, time.Since(start), err != nil)
	if o.Stats != nil {
		o.Stats.merge(s.stats)
	}
	if err != nil {
		return forest.Empty, err
	}
	if s.debug {
		s.log.Debug("plan complete",
			slog.String("forest", best.String()),
			slog.Int("cuts", s.stats.Cuts),
			slog.Int("sub_plans", s.stats.SubPlans))
	}

	return best, nil
}

// plan runs one (sub-)search rooted at root with numCuts cuts already in
// effect. fixed holds the components those cuts separated; every candidate
// carries them, so forests are always ranked whole. The incumbent starts as
// {root} plus fixed.
func (s *search) plan(root tree.ID, excl map[tree.ID]struct{}, numCuts int, fixed []forest.Component) forest.Forest {
	best := withFixed(forest.Of(s.t, root), fixed)

	s.t.Walk(root, func(v tree.ID) tree.Control {
		s.stats.Visited++
		if s.failed != nil {
			return tree.Halt
		}
		if numCuts > s.opts.MaxCuts {
			best = forest.Empty
			return tree.Halt
		}
		if _, ok := excl[v]; ok {
			return tree.Skip
		}
		if v == root {
			return tree.Continue
		}

		next, err := s.consider(best, root, v, excl, numCuts, fixed)
		if err != nil {
			s.failed = err
			return tree.Halt
		}
		best = next

		return tree.Continue
	})

	return best
}

// consider makes the trial cut (root, v) under a fresh mark, ranks the
// resulting candidates against best and rolls the cut back.
func (s *search) consider(best forest.Forest, root, v tree.ID, excl map[tree.ID]struct{}, numCuts int, fixed []forest.Component) (forest.Forest, error) {
	s.cp.Mark()
	if d := numCuts + 1; d > s.stats.MaxDepth {
		s.stats.MaxDepth = d
	}

	split, err := s.opts.Cutter(s.t, root, v)
	if err != nil {
		if rbErr := s.cp.Rollback(); rbErr != nil {
			return forest.Empty, errors.Join(err, rbErr)
		}

		return forest.Empty, fmt.Errorf("Plan: cut %s below %s: %w", v, root, err)
	}
	s.stats.Cuts++

	candidates := s.candidates(best, split, excl, numCuts, fixed)
	if s.failed != nil {
		_ = s.cp.Rollback()
		return forest.Empty, s.failed
	}
	if err = s.cp.Rollback(); err != nil {
		return forest.Empty, fmt.Errorf("Plan: rollback after %s: %w", v, err)
	}

	s.stats.Candidates += len(candidates)
	next := forest.Min(s.cmp, candidates...)
	if s.debug {
		s.log.Debug("cut evaluated",
			slog.Int("depth", numCuts+1),
			slog.String("root", root.String()),
			slog.String("node", v.String()),
			slog.Int("candidates", len(candidates)),
			slog.String("best", next.String()))
	}

	return next, nil
}

// candidates lists the forests competing after split: the incumbent, the
// plain two-way split and, while the budget allows another cut, a nested
// search on whichever side is at least as heavy as the other, with the
// lighter side fixed.
func (s *search) candidates(best forest.Forest, split tree.Split, excl map[tree.ID]struct{}, numCuts int, fixed []forest.Component) []forest.Forest {
	anc, desc := split.Ancestor, split.Descendant
	out := make([]forest.Forest, 0, 4)
	out = append(out, best, withFixed(forest.Of(s.t, anc, desc), fixed))

	if numCuts+1 >= s.opts.MaxCuts {
		return out
	}

	ancW, descW := s.t.Value(anc), s.t.Value(desc)
	descSide := forest.Component{Root: desc, Weight: descW}
	ancSide := forest.Component{Root: anc, Weight: ancW}

	if ancW >= descW {
		s.stats.SubPlans++
		out = append(out, s.plan(anc, with(excl, desc), numCuts+1, append(slices.Clip(fixed), descSide)))
	}
	if descW >= ancW {
		s.stats.SubPlans++
		out = append(out, s.plan(desc, nil, numCuts+1, append(slices.Clip(fixed), ancSide)))
	}

	return out
}

// withFixed appends the fixed components to f.
func withFixed(f forest.Forest, fixed []forest.Component) forest.Forest {
	for _, c := range fixed {
		f = f.AddTree(c)
	}

	return f
}

// with returns a copy of excl extended by id.
func with(excl map[tree.ID]struct{}, id tree.ID) map[tree.ID]struct{} {
	out := make(map[tree.ID]struct{}, len(excl)+1)
	for k := range excl {
		out[k] = struct{}{}
	}
	out[id] = struct{}{}

	return out
}

func (s *Stats) merge(o Stats) {
	s.Visited += o.Visited
	s.Cuts += o.Cuts
	s.SubPlans += o.SubPlans
	s.Candidates += o.Candidates
	s.Rollbacks += o.Rollbacks
	if o.MaxDepth > s.MaxDepth {
		s.MaxDepth = o.MaxDepth
	}
}
