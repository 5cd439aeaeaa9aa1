package tree

// Walk visits the subtree under start in pre-order using an explicit stack.
// The visitor decides per node whether to descend (Continue), prune the
// node's subtree (Skip) or stop entirely (Halt). A node's children are read
// after visit returns, so a visitor may mutate and restore the tree while
// the walk is in progress.
//
// Complexity: O(size of visited subtree) time and memory.
func (t *Tree) Walk(start ID, visit func(ID) Control) {
	if !t.Has(start) || visit == nil {
		return
	}

	stack := []ID{start}
	var (
		id   ID
		kids []ID
		i    int
	)
	for len(stack) > 0 {
		id = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch visit(id) {
		case Halt:
			return
		case Skip:
			continue
		}

		// Push in reverse so the first child is visited first.
		kids = t.nodes[id].children
		for i = len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}
}
