package forest

// Predicate tests a forest.
type Predicate func(Forest) bool

// AtLeastNTrees holds when the forest has n or more components.
func AtLeastNTrees(n int) Predicate {
	return func(f Forest) bool { return f.TreeCount() >= n }
}

// AtMostNTrees holds when the forest has n or fewer components.
func AtMostNTrees(n int) Predicate {
	return func(f Forest) bool { return f.TreeCount() <= n }
}

// AtLeastNEqualToLargest holds when, besides the largest component, at least
// n components weigh exactly as much as the largest. True on an empty forest.
func AtLeastNEqualToLargest(n int) Predicate {
	return func(f Forest) bool {
		if f.IsEmpty() {
			return true
		}
		ws := f.Weights()
		equal := 0
		for _, w := range ws[1:] {
			if w == ws[0] {
				equal++
			}
		}

		return equal >= n
	}
}

// AtMostNSmallerThanLargest holds when at most n components are strictly
// lighter than the largest. True on an empty forest.
func AtMostNSmallerThanLargest(n int) Predicate {
	return func(f Forest) bool {
		if f.IsEmpty() {
			return true
		}
		ws := f.Weights()
		smaller := 0
		for _, w := range ws[1:] {
			if w < ws[0] {
				smaller++
			}
		}

		return smaller <= n
	}
}

// And holds when every predicate holds; evaluation stops at the first miss.
// And() with no predicates always holds.
func And(ps ...Predicate) Predicate {
	return func(f Forest) bool {
		for _, p := range ps {
			if !p(f) {
				return false
			}
		}

		return true
	}
}
