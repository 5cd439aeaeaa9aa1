// File: types.go
// Role: identities, sentinel errors and the arena node record.
// Determinism:
//   - IDs are dense 0..n-1 and never reused within one Tree.
//   - Children keep insertion order; every traversal is reproducible.

package tree

import (
	"errors"
	"strconv"
)

// Sentinel errors for tree construction, mutation and checkpointing.
var (
	// ErrEmptyTree is returned by Build when no weights are supplied.
	ErrEmptyTree = errors.New("tree: no nodes")

	// ErrEdgeCount indicates that the edge list does not hold exactly n-1 pairs.
	ErrEdgeCount = errors.New("tree: edge count must be n-1")

	// ErrNodeOutOfRange indicates an edge endpoint (1-indexed) outside 1..n,
	// or an ID that does not address a node of the tree.
	ErrNodeOutOfRange = errors.New("tree: node out of range")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("tree: self-loop")

	// ErrNegativeWeight indicates a node weight below zero.
	ErrNegativeWeight = errors.New("tree: negative weight")

	// ErrNotATree indicates a cycle, a parallel edge or an unreachable node.
	ErrNotATree = errors.New("tree: edges do not form a tree")

	// ErrNotChild indicates RemoveChild was asked to detach a node that is not
	// listed among the parent's children.
	ErrNotChild = errors.New("tree: not a child")

	// ErrNotDescendant indicates a Cutter was invoked with a node that is not a
	// strict descendant of the given ancestor.
	ErrNotDescendant = errors.New("tree: not a descendant")

	// ErrNoOpenMark indicates Rollback was called with no open mark.
	ErrNoOpenMark = errors.New("tree: rollback without open mark")

	// ErrCheckpointAttached indicates a second checkpoint was attached to a tree.
	ErrCheckpointAttached = errors.New("tree: checkpoint already attached")
)

// ID identifies a node inside one Tree. IDs are 0-indexed; input edges use
// 1-indexed endpoints and are converted on Build.
type ID int

// NoID marks the absence of a parent.
const NoID ID = -1

// Valid reports whether id can address a node (id >= 0).
func (id ID) Valid() bool { return id >= 0 }

// String renders the id in the 0-indexed form used by logs and tests.
func (id ID) String() string {
	if id == NoID {
		return "none"
	}

	return strconv.Itoa(int(id))
}

// Control steers Walk after a node has been visited.
type Control int

const (
	// Continue descends into the visited node's children.
	Continue Control = iota
	// Skip leaves the visited node's subtree unexplored.
	Skip
	// Halt stops the whole walk immediately.
	Halt
)

// node is one arena slot.
type node struct {
	value    int64 // raw weight, or subtree sum after Aggregate
	parent   ID    // NoID for the root or a detached subtree
	children []ID  // ordered child ids
}

// Snapshot is an immutable copy of a node's (value, parent, children) triple.
// Checkpoint keeps one per open mark and restores it on Rollback.
type Snapshot struct {
	Value    int64
	Parent   ID
	Children []ID
}

func snapshotOf(n *node) Snapshot {
	return Snapshot{
		Value:    n.value,
		Parent:   n.parent,
		Children: append([]ID(nil), n.children...),
	}
}
