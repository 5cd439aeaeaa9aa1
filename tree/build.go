// File: build.go
// Role: construction of a rooted Tree from a weight slice and an undirected,
// 1-indexed edge list.
// Determinism:
//   - Children are appended in edge-list order of the parent's adjacency.
//   - The worklist is LIFO; ids are assigned from the weight index, not from
//     discovery order, so the resulting arena does not depend on it.

package tree

import "fmt"

// frame is one worklist entry: the node to expand and the node we arrived from.
type frame struct {
	id   ID
	from ID
}

// Build creates a Tree rooted at node 0 from weights (one per node) and
// edges (n-1 undirected pairs of 1-indexed endpoints).
//
// Steps:
//  1. Validate sizes, weights and endpoints.
//  2. Build an undirected adjacency list.
//  3. Expand from the root with an explicit stack, skipping the adjacency
//     entry that leads back to the node we came from.
//  4. Reject cycles, parallel edges and unreachable nodes.
//
// Complexity: O(n) time, O(n) memory.
func Build(weights []int64, edges [][2]int) (*Tree, error) {
	// 1) Validate input shape.
	n := len(weights)
	if n == 0 {
		return nil, ErrEmptyTree
	}
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("Build: weight[%d]=%d: %w", i, w, ErrNegativeWeight)
		}
	}
	if len(edges) != n-1 {
		return nil, fmt.Errorf("Build: n=%d, edges=%d: %w", n, len(edges), ErrEdgeCount)
	}

	// 2) Adjacency in both directions; endpoints converted to 0-indexed ids.
	adj := make([][]ID, n)
	for i, e := range edges {
		u, v := e[0]-1, e[1]-1
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("Build: edge[%d]=(%d,%d) with n=%d: %w", i, e[0], e[1], n, ErrNodeOutOfRange)
		}
		if u == v {
			return nil, fmt.Errorf("Build: edge[%d]=(%d,%d): %w", i, e[0], e[1], ErrSelfLoop)
		}
		adj[u] = append(adj[u], ID(v))
		adj[v] = append(adj[v], ID(u))
	}

	// 3) Expand from the root.
	t := newTree(weights)
	seen := make([]bool, n)
	seen[t.root] = true
	reached := 1
	stack := []frame{{id: t.root, from: NoID}}

	var (
		f          frame
		nb         ID
		backlinked bool
	)
	for len(stack) > 0 {
		f = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		backlinked = false
		for _, nb = range adj[f.id] {
			// The edge we arrived through is listed once; skip exactly that entry.
			if nb == f.from && !backlinked {
				backlinked = true
				continue
			}
			// 4) A second route to a known node is a cycle or a parallel edge.
			if seen[nb] {
				return nil, fmt.Errorf("Build: node %d reached twice (via %d): %w", nb+1, f.id+1, ErrNotATree)
			}
			seen[nb] = true
			reached++

			t.nodes[f.id].children = append(t.nodes[f.id].children, nb)
			t.nodes[nb].parent = f.id
			stack = append(stack, frame{id: nb, from: f.id})
		}
	}

	if reached != n {
		return nil, fmt.Errorf("Build: reached %d of %d nodes: %w", reached, n, ErrNotATree)
	}

	return t, nil
}
