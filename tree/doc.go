// Package tree implements the weighted rooted tree used by the balanced-forest
// search: an arena of nodes addressed by integer IDs, a pure subtree-sum
// transform, a transactional checkpoint journal and the cutter that severs a
// subtree while keeping ancestor sums consistent.
//
// What:
//
//   - Build(weights, edges): rooted tree (root = node 0) from an undirected,
//     1-indexed edge list, constructed with an explicit worklist.
//   - Aggregate(t): new tree whose values are subtree sums.
//   - Walk(start, visit): pre-order explicit-stack traversal with
//     Continue / Skip / Halt control.
//   - Checkpoint: Mark / Rollback journal; every mutator (SetValue, SetParent,
//     AddChild, RemoveChild) is recorded while a mark is open, so
//     Mark(); mutate…; Rollback() restores (value, parent, children) exactly.
//   - SubtractingCutter: detach a descendant and subtract its sum along the
//     path to the ancestor.
//
// Why an arena:
//
//	Parents and children reference each other by ID only; the arena owns every
//	node, so snapshots are plain value copies and there are no pointer cycles.
//
// Complexity:
//
//   - Build, Aggregate, Clone:      O(n)
//   - Walk:                         O(visited)
//   - Mark:                         O(1)
//   - Rollback:                     O(nodes changed under the mark)
//   - SubtractingCutter:            O(depth)
//
// Errors:
//
//   - ErrEmptyTree, ErrEdgeCount, ErrNodeOutOfRange, ErrSelfLoop,
//     ErrNegativeWeight, ErrNotATree   construction input
//   - ErrNotChild, ErrNotDescendant    mutation / cut preconditions
//   - ErrNoOpenMark, ErrCheckpointAttached   checkpoint discipline
//
// A Tree is not safe for concurrent use.
package tree
