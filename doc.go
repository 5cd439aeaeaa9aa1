// Package balancedforest answers the balanced-forest question for weighted
// trees: what is the smallest weight of a single new node that, once attached
// anywhere, lets the tree be cut into three components of equal total weight?
//
// 🚀 What is inside?
//
//	A small, dependency-light toolkit built around one search:
//		• tree     – arena trees, iterative walks, subtree sums, checkpoints
//		• forest   – immutable component multisets, predicates, comparators
//		• planner  – bounded cut search with exact rollback of every trial cut
//		• balance  – the balanced-forest predicate, ranking and answer rule
//		• caseio   – whitespace-separated batch input and answer output
//		• builder  – deterministic generators for paths, stars, spiders,
//		             caterpillars and random trees
//
// The command in cmd/balancedforest wires these together: `solve` reads a
// batch of cases and prints one answer per line, `generate` writes synthetic
// batches in the same format.
//
// ✨ How it works
//
//  1. tree.Build validates the edge list and roots the tree at node 1.
//  2. tree.Aggregate replaces every weight with its subtree sum.
//  3. planner.Plan tries every edge as a cut and, while the budget allows,
//     nests a second search inside the heavier side. Each cut is journaled by
//     a tree.Checkpoint and rolled back once its candidates are ranked.
//  4. balance.Difference turns the best forest into the answer, or −1.
//
// Quick example:
//
//	         (1:1)
//	       /   |   \
//	   (2:2) (3:2) (4:1)
//	           |
//	         (5:1)        node:weight
//
//	ans, _ := balance.Solve([]int64{1, 2, 2, 1, 1},
//		[][2]int{{1, 2}, {1, 3}, {3, 5}, {1, 4}})
//	// ans == 2
//
// See each subpackage for details.
package balancedforest
