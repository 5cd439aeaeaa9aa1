// Package balance answers the balanced-forest query: given a weighted tree,
// find the smallest non-negative weight that, attached as a new node
// somewhere, lets the tree be cut into three components of equal weight.
//
// The search itself lives in package planner; this package fixes the
// balance predicate and ranking, runs the pipeline
// Build → Aggregate → Plan and turns the winning forest into the answer.
//
// Answer rule, for the best forest f:
//
//   - f is not Balanced                → Infeasible (−1)
//   - f has two components             → Largest (a new node of that
//     weight becomes the third component)
//   - f has three components           → Largest − Smallest (the new node
//     tops up the lighter one)
//
// Infeasibility is a value, never an error; errors report malformed input.
package balance

import (
	"fmt"

	"github.com/katalvlaran/balancedforest/forest"
	"github.com/katalvlaran/balancedforest/planner"
	"github.com/katalvlaran/balancedforest/tree"
)

// Infeasible is the answer when no cut set can be balanced by one new node.
const Infeasible int64 = -1

// DefaultMaxCuts is the cut budget of the balanced-forest query.
const DefaultMaxCuts = planner.DefaultMaxCuts

// Case is one query: node weights (node i+1 in the edges is weights[i]) and
// n−1 undirected, 1-indexed edges.
type Case struct {
	Weights []int64
	Edges   [][2]int
}

// Solve answers the query for c. See Solve.
func (c Case) Solve(opts ...planner.Option) (int64, error) {
	return Solve(c.Weights, c.Edges, opts...)
}

// Result is the full outcome of Analyze.
type Result struct {
	// Answer is the minimum weight to add, or Infeasible.
	Answer int64
	// Feasible reports Answer != Infeasible.
	Feasible bool
	// Forest is the best forest the search found, feasible or not.
	Forest forest.Forest
	// Members lists the original node ids (0-based) of each component of
	// Forest, in the same order as Forest.Components.
	Members [][]tree.ID
}

// Balanced holds for forests of two or three components in which the
// heaviest weight occurs at least twice and at most one component is lighter.
func Balanced() forest.Predicate {
	return forest.And(
		forest.AtLeastNTrees(2),
		forest.AtMostNTrees(3),
		forest.AtLeastNEqualToLargest(1),
		forest.AtMostNSmallerThanLargest(1),
	)
}

// Ranking prefers Balanced forests, then more components, then the most
// compact. For balanced forests this orders by the eventual answer.
func Ranking() forest.Comparator {
	return forest.Chain(
		forest.Is(Balanced()),
		forest.MoreTreesIsBetter(),
		forest.MostCompact(),
	)
}

// Difference turns a forest into the query answer.
func Difference(f forest.Forest) int64 {
	if !Balanced()(f) {
		return Infeasible
	}
	switch f.TreeCount() {
	case 2:
		return f.Largest()
	case 3:
		return f.Largest() - f.Smallest()
	default:
		return Infeasible
	}
}

// Solve builds the tree, aggregates subtree sums, searches with a budget of
// DefaultMaxCuts (overridable through opts) and returns the answer.
//
// Empty weights yield Infeasible without error.
//
// Errors: tree construction errors (tree.ErrEdgeCount, tree.ErrNotATree, …)
// and planner errors, wrapped.
func Solve(weights []int64, edges [][2]int, opts ...planner.Option) (int64, error) {
	res, err := Analyze(weights, edges, opts...)
	if err != nil {
		return Infeasible, err
	}

	return res.Answer, nil
}

// Analyze is Solve with the winning forest and its node sets attached.
func Analyze(weights []int64, edges [][2]int, opts ...planner.Option) (Result, error) {
	if len(weights) == 0 {
		return Result{Answer: Infeasible, Forest: forest.Empty}, nil
	}

	t, err := tree.Build(weights, edges)
	if err != nil {
		return Result{Answer: Infeasible}, fmt.Errorf("Solve: %w", err)
	}
	sums := tree.Aggregate(t)

	f, err := planner.Plan(sums, sums.Root(), Ranking(), opts...)
	if err != nil {
		return Result{Answer: Infeasible}, fmt.Errorf("Solve: %w", err)
	}

	members, err := f.Members(sums)
	if err != nil {
		return Result{Answer: Infeasible}, fmt.Errorf("Solve: %w", err)
	}

	answer := Difference(f)

	return Result{
		Answer:   answer,
		Feasible: answer != Infeasible,
		Forest:   f,
		Members:  members,
	}, nil
}
