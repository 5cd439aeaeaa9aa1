package tree

// Aggregate returns a new tree of the same shape in which every node's value
// is the sum of the original values in its subtree:
//
//	sum(v) = value(v) + Σ sum(c) for c in children(v)
//
// The input tree is not modified and the result carries no checkpoint.
// Every parentless node (the root, and any detached subtree) is aggregated.
//
// Complexity: O(n) time, O(n) memory; no recursion.
func Aggregate(t *Tree) *Tree {
	if t == nil {
		return nil
	}

	out := t.Clone()

	// Reverse pre-order finishes every child before its parent.
	var order []ID
	for i := range out.nodes {
		if out.nodes[i].parent == NoID {
			order = append(order, out.Subtree(ID(i), nil)...)
		}
	}
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		for _, c := range out.nodes[id].children {
			out.nodes[id].value += out.nodes[c].value
		}
	}

	return out
}
