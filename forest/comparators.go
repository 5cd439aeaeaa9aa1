package forest

import "cmp"

// Comparator orders two forests: negative when a is preferred, positive when
// b is preferred, zero when they tie. "Minimum" means "most preferred".
type Comparator func(a, b Forest) int

// Is prefers forests satisfying p over those that do not.
func Is(p Predicate) Comparator {
	return func(a, b Forest) int {
		pa, pb := p(a), p(b)
		switch {
		case pa && !pb:
			return -1
		case pb && !pa:
			return 1
		default:
			return 0
		}
	}
}

// MoreTreesIsBetter prefers the forest with more components.
func MoreTreesIsBetter() Comparator {
	return func(a, b Forest) int { return cmp.Compare(b.TreeCount(), a.TreeCount()) }
}

// MostCompact prefers the forest with the lower Compactness.
func MostCompact() Comparator {
	return func(a, b Forest) int { return cmp.Compare(a.Compactness(), b.Compactness()) }
}

// Chain composes comparators lexicographically: the first non-zero result
// wins, later comparators only break ties.
func Chain(cs ...Comparator) Comparator {
	return func(a, b Forest) int {
		for _, c := range cs {
			if r := c(a, b); r != 0 {
				return r
			}
		}

		return 0
	}
}

// Min returns the most preferred candidate. Ties keep the earliest one, so a
// caller listing its incumbent first only replaces it on a strict
// improvement. Min of no candidates is Empty.
func Min(c Comparator, candidates ...Forest) Forest {
	if len(candidates) == 0 {
		return Empty
	}

	best := candidates[0]
	for _, f := range candidates[1:] {
		if c(f, best) < 0 {
			best = f
		}
	}

	return best
}
