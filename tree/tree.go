// File: tree.go
// Role: the arena-backed Tree, its read accessors and journaled mutators.
// Ownership:
//   - The arena owns every node; ids are the only cross-references.
//   - Mutators notify the attached Checkpoint before changing a node, so an
//     open mark can restore the exact pre-mark state.

package tree

import (
	"fmt"
	"strings"
)

// Tree is a rooted tree stored as an arena of nodes indexed by ID.
// The root is always ID 0. A Tree is not safe for concurrent mutation.
type Tree struct {
	nodes []node
	root  ID
	log   *Checkpoint // nil: mutations are not journaled
}

// newTree allocates n detached nodes carrying the given values.
func newTree(values []int64) *Tree {
	t := &Tree{nodes: make([]node, len(values)), root: 0}
	for i, v := range values {
		t.nodes[i] = node{value: v, parent: NoID}
	}

	return t
}

// Len returns the number of nodes in the arena.
func (t *Tree) Len() int { return len(t.nodes) }

// Root returns the root id (always 0 for a built tree).
func (t *Tree) Root() ID { return t.root }

// Has reports whether id addresses a node of t.
func (t *Tree) Has(id ID) bool { return id >= 0 && int(id) < len(t.nodes) }

// Value returns the node's current value. Unknown ids yield 0.
func (t *Tree) Value(id ID) int64 {
	if !t.Has(id) {
		return 0
	}

	return t.nodes[id].value
}

// Parent returns the node's parent and whether it has one.
func (t *Tree) Parent(id ID) (ID, bool) {
	if !t.Has(id) || t.nodes[id].parent == NoID {
		return NoID, false
	}

	return t.nodes[id].parent, true
}

// Children returns a copy of the node's child ids in insertion order.
func (t *Tree) Children(id ID) []ID {
	if !t.Has(id) {
		return nil
	}

	return append([]ID(nil), t.nodes[id].children...)
}

// Clone returns a deep, unjournaled copy of t.
// Complexity: O(n).
func (t *Tree) Clone() *Tree {
	c := &Tree{nodes: make([]node, len(t.nodes)), root: t.root}
	for i := range t.nodes {
		c.nodes[i] = node{
			value:    t.nodes[i].value,
			parent:   t.nodes[i].parent,
			children: append([]ID(nil), t.nodes[i].children...),
		}
	}

	return c
}

// SetValue replaces the node's value.
func (t *Tree) SetValue(id ID, value int64) error {
	if !t.Has(id) {
		return fmt.Errorf("SetValue(%s): %w", id, ErrNodeOutOfRange)
	}
	t.touch(id)
	t.nodes[id].value = value

	return nil
}

// SetParent replaces the node's parent reference without touching any
// children list. Pass NoID to clear it.
func (t *Tree) SetParent(id, parent ID) error {
	if !t.Has(id) || (parent != NoID && !t.Has(parent)) {
		return fmt.Errorf("SetParent(%s, %s): %w", id, parent, ErrNodeOutOfRange)
	}
	t.touch(id)
	t.nodes[id].parent = parent

	return nil
}

// AddChild appends child to parent's children and points child back at parent.
func (t *Tree) AddChild(parent, child ID) error {
	if !t.Has(parent) || !t.Has(child) {
		return fmt.Errorf("AddChild(%s, %s): %w", parent, child, ErrNodeOutOfRange)
	}
	t.touch(parent)
	t.nodes[parent].children = append(t.nodes[parent].children, child)

	return t.SetParent(child, parent)
}

// RemoveChild detaches child from parent: the child leaves parent's list and
// loses its parent reference. The order of the remaining children is kept.
func (t *Tree) RemoveChild(parent, child ID) error {
	if !t.Has(parent) || !t.Has(child) {
		return fmt.Errorf("RemoveChild(%s, %s): %w", parent, child, ErrNodeOutOfRange)
	}
	kids := t.nodes[parent].children
	idx := -1
	for i, c := range kids {
		if c == child {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("RemoveChild(%s, %s): %w", parent, child, ErrNotChild)
	}

	t.touch(parent)
	next := make([]ID, 0, len(kids)-1)
	next = append(next, kids[:idx]...)
	next = append(next, kids[idx+1:]...)
	t.nodes[parent].children = next

	return t.SetParent(child, NoID)
}

// touch lets the attached checkpoint snapshot id before its first change
// under the current mark.
func (t *Tree) touch(id ID) {
	if t.log != nil {
		t.log.beforeChange(id)
	}
}

// restore overwrites a node with a snapshot. It bypasses the journal.
func (t *Tree) restore(id ID, s Snapshot) {
	t.nodes[id] = node{
		value:    s.Value,
		parent:   s.Parent,
		children: append([]ID(nil), s.Children...),
	}
}

// Subtree returns the ids reachable from start through child links, in
// pre-order. Nodes for which stop returns true are not entered (start itself
// is always included). A nil stop visits the full subtree.
func (t *Tree) Subtree(start ID, stop func(ID) bool) []ID {
	var out []ID
	t.Walk(start, func(id ID) Control {
		if id != start && stop != nil && stop(id) {
			return Skip
		}
		out = append(out, id)

		return Continue
	})

	return out
}

// String renders one line per reachable node, root first:
//
//	node[0]{value:7} children[1,2]
func (t *Tree) String() string {
	var b strings.Builder
	t.Walk(t.root, func(id ID) Control {
		fmt.Fprintf(&b, "node[%s]{value:%d} children[", id, t.nodes[id].value)
		for i, c := range t.nodes[id].children {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(c.String())
		}
		b.WriteString("]\n")

		return Continue
	})

	return b.String()
}
