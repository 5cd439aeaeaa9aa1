package tree

import "fmt"

// Split names the two components produced by a cut: the ancestor side (same
// id, reduced value) and the detached descendant subtree.
type Split struct {
	Ancestor   ID
	Descendant ID
}

// Cutter severs descendant from the component rooted at ancestor.
type Cutter func(t *Tree, ancestor, descendant ID) (Split, error)

// SubtractingCutter is the Cutter used on aggregated trees: every node on the
// path from descendant's parent up to and including ancestor loses
// descendant's value (their sums included the detached subtree), and
// descendant is removed from its parent's children.
//
// All changes go through the tree's mutators, so an open checkpoint mark
// can undo them.
//
// Errors:
//   - ErrNodeOutOfRange  unknown id.
//   - ErrNotDescendant   descendant == ancestor, or ancestor is not on the
//     path from descendant to its root.
//
// Complexity: O(depth of descendant below ancestor).
func SubtractingCutter(t *Tree, ancestor, descendant ID) (Split, error) {
	if !t.Has(ancestor) || !t.Has(descendant) {
		return Split{}, fmt.Errorf("Cut(%s, %s): %w", ancestor, descendant, ErrNodeOutOfRange)
	}

	path, err := pathToAncestor(t, ancestor, descendant)
	if err != nil {
		return Split{}, err
	}

	delta := t.Value(descendant)
	for i, p := range path {
		if err = t.SetValue(p, t.Value(p)-delta); err != nil {
			return Split{}, err
		}
		if i == 0 {
			if err = t.RemoveChild(p, descendant); err != nil {
				return Split{}, err
			}
		}
	}

	return Split{Ancestor: ancestor, Descendant: descendant}, nil
}

// pathToAncestor lists descendant's proper ancestors bottom-up, ending at
// ancestor.
func pathToAncestor(t *Tree, ancestor, descendant ID) ([]ID, error) {
	if _, ok := t.Parent(descendant); !ok {
		return nil, fmt.Errorf("Cut(%s, %s): node has no parent: %w", ancestor, descendant, ErrNotDescendant)
	}

	var path []ID
	cur := descendant
	for {
		p, ok := t.Parent(cur)
		if !ok {
			return nil, fmt.Errorf("Cut(%s, %s): path %v never meets ancestor: %w",
				ancestor, descendant, path, ErrNotDescendant)
		}
		path = append(path, p)
		if p == ancestor {
			return path, nil
		}
		cur = p
	}
}
