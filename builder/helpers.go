// Package builder provides the internal draft every constructor writes into.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap errors with builderErrorf for uniform reporting.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/balancedforest/balance"
)

// draft accumulates node weights and 1-indexed edges while a constructor runs.
type draft struct {
	weights []int64
	edges   [][2]int
}

// addNode appends a node weighing cfg.weightFn(cfg.rng) and returns its label.
func (d *draft) addNode(cfg builderConfig) int {
	d.weights = append(d.weights, cfg.weightFn(cfg.rng))

	return len(d.weights)
}

// link adds the undirected edge parent—child.
func (d *draft) link(parent, child int) {
	d.edges = append(d.edges, [2]int{parent, child})
}

// grow adds a node and links it under parent, returning the new label.
func (d *draft) grow(parent int, cfg builderConfig) int {
	child := d.addNode(cfg)
	d.link(parent, child)

	return child
}

// validate checks the draft is a tree in construction order: n−1 edges,
// each introducing a new node under an earlier one, and no negative weight.
// Complexity: O(n).
func (d *draft) validate() error {
	n := len(d.weights)
	if n == 0 {
		return builderErrorf("draft", "no nodes: %w", ErrConstructFailed)
	}
	if len(d.edges) != n-1 {
		return builderErrorf("draft", "%d nodes, %d edges: %w", n, len(d.edges), ErrConstructFailed)
	}
	for i, w := range d.weights {
		if w < 0 {
			return builderErrorf("draft", "weight[%d]=%d: %w", i, w, ErrConstructFailed)
		}
	}

	seen := make([]bool, n+1)
	seen[RootLabel] = true
	for i, e := range d.edges {
		p, c := e[0], e[1]
		if p < 1 || p > n || c < 1 || c > n || !seen[p] || seen[c] {
			return builderErrorf("draft", "edge[%d]=%v does not extend the tree: %w", i, e, ErrConstructFailed)
		}
		seen[c] = true
	}

	return nil
}

// shuffleEdges permutes edges and flips each pair with probability ½.
func (d *draft) shuffleEdges(rng *rand.Rand) {
	rng.Shuffle(len(d.edges), func(i, j int) {
		d.edges[i], d.edges[j] = d.edges[j], d.edges[i]
	})
	for i := range d.edges {
		if rng.Intn(2) == 1 {
			d.edges[i][0], d.edges[i][1] = d.edges[i][1], d.edges[i][0]
		}
	}
}

// toCase copies the draft into a balance.Case.
func (d *draft) toCase() balance.Case {
	c := balance.Case{
		Weights: make([]int64, len(d.weights)),
		Edges:   make([][2]int, len(d.edges)),
	}
	copy(c.Weights, d.weights)
	copy(c.Edges, d.edges)

	return c
}

// builderErrorf wraps an inner message with the given method context.
// It returns an error of the form "<Method>: <formatted message>"; %w verbs
// in format keep their sentinels visible to errors.Is.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf(method+": "+format, args...)
}
