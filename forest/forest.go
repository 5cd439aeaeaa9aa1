// Package forest models the components left after cutting a tree, together
// with the predicates and comparators that rank candidate partitions.
//
// A Forest is a value: every operation returns a new Forest and never
// aliases the receiver's storage, so search branches cannot interfere with
// each other's candidates. Component weights are captured when the Forest
// is created; later mutation of the tree is not observed.
//
// Derived metrics:
//
//   - TreeCount, Largest, SecondLargest, Smallest
//   - Compactness: Σ (largest − w) over every component except the largest;
//     0 means perfectly balanced.
package forest

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/balancedforest/tree"
)

var (
	// ErrDuplicateRoot indicates two components claim the same root node.
	ErrDuplicateRoot = errors.New("forest: duplicate component root")

	// ErrUnknownRoot indicates a component root that is not a node of the tree.
	ErrUnknownRoot = errors.New("forest: unknown component root")
)

// Component is one tree of the forest: its root node and aggregate weight.
type Component struct {
	Root   tree.ID
	Weight int64
}

// Forest is an ordered collection of disjoint components.
type Forest struct {
	components []Component
}

// Empty is the zero-tree forest signalling a search dead-end.
var Empty = Forest{}

// New returns a forest holding copies of the given components.
func New(components ...Component) Forest {
	if len(components) == 0 {
		return Empty
	}

	return Forest{components: slices.Clone(components)}
}

// Of captures the current values of roots in t as components.
func Of(t *tree.Tree, roots ...tree.ID) Forest {
	cs := make([]Component, 0, len(roots))
	for _, r := range roots {
		cs = append(cs, Component{Root: r, Weight: t.Value(r)})
	}

	return Forest{components: cs}
}

// AddTree returns a new forest with c appended.
func (f Forest) AddTree(c Component) Forest {
	cs := make([]Component, 0, len(f.components)+1)
	cs = append(cs, f.components...)
	cs = append(cs, c)

	return Forest{components: cs}
}

// TreeCount returns the number of components.
func (f Forest) TreeCount() int { return len(f.components) }

// IsEmpty reports whether the forest has no components.
func (f Forest) IsEmpty() bool { return len(f.components) == 0 }

// Components returns a copy of the components in insertion order.
func (f Forest) Components() []Component { return slices.Clone(f.components) }

// Weights returns the component weights sorted in descending order.
func (f Forest) Weights() []int64 {
	ws := make([]int64, len(f.components))
	for i, c := range f.components {
		ws[i] = c.Weight
	}
	slices.SortFunc(ws, func(a, b int64) int { return cmp.Compare(b, a) })

	return ws
}

// Largest returns the heaviest component weight (0 when empty).
func (f Forest) Largest() int64 {
	ws := f.Weights()
	if len(ws) == 0 {
		return 0
	}

	return ws[0]
}

// SecondLargest returns the second entry of Weights (0 with fewer than two).
func (f Forest) SecondLargest() int64 {
	ws := f.Weights()
	if len(ws) < 2 {
		return 0
	}

	return ws[1]
}

// Smallest returns the lightest component weight (0 when empty).
func (f Forest) Smallest() int64 {
	ws := f.Weights()
	if len(ws) == 0 {
		return 0
	}

	return ws[len(ws)-1]
}

// Compactness is the total amount that would have to be added to the
// non-largest components to make every component as heavy as the largest.
func (f Forest) Compactness() int64 {
	ws := f.Weights()
	if len(ws) == 0 {
		return 0
	}

	var total int64
	for _, w := range ws[1:] {
		total += ws[0] - w
	}

	return total
}

// Members resolves every component to its node ids on t, the tree before
// any cut. A component owns the nodes reachable from its root without
// entering another component's root. Result order follows Components.
//
// Complexity: O(n).
func (f Forest) Members(t *tree.Tree) ([][]tree.ID, error) {
	roots := make(map[tree.ID]struct{}, len(f.components))
	for _, c := range f.components {
		if !t.Has(c.Root) {
			return nil, fmt.Errorf("Members: root %s: %w", c.Root, ErrUnknownRoot)
		}
		if _, dup := roots[c.Root]; dup {
			return nil, fmt.Errorf("Members: root %s: %w", c.Root, ErrDuplicateRoot)
		}
		roots[c.Root] = struct{}{}
	}

	isRoot := func(id tree.ID) bool {
		_, ok := roots[id]
		return ok
	}
	out := make([][]tree.ID, len(f.components))
	for i, c := range f.components {
		out[i] = t.Subtree(c.Root, isRoot)
	}

	return out, nil
}

// String renders the forest as Forest(node[1]{value:3},node[4]{value:3}).
func (f Forest) String() string {
	parts := make([]string, len(f.components))
	for i, c := range f.components {
		parts[i] = fmt.Sprintf("node[%s]{value:%d}", c.Root, c.Weight)
	}

	return "Forest(" + strings.Join(parts, ",") + ")"
}
