// SPDX-License-Identifier: MIT
// Package: balancedforest/builder
//
// impl_caterpillar.go - implementation of Caterpillar(spine, legs) constructor.
//
// Contract:
//   - spine ≥ 1 (else ErrTooFewVertices); legs ≥ 0 (else ErrTooFewVertices).
//   - Walks the spine from label 1; each spine node is followed by its legs
//     leaves before the next spine node is added.
//
// Complexity:
//   - Time: O(spine · (legs+1)). Space: O(1) extra.

package builder

// Caterpillar returns a Constructor that builds a path of spine nodes with
// legs leaves attached to every spine node.
func Caterpillar(spine, legs int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := validateMin(MethodCaterpillar, "spine", spine, MinSpineNodes); err != nil {
			return err
		}
		if err := validateMin(MethodCaterpillar, "legs", legs, 0); err != nil {
			return err
		}

		var prev int
		for i := 0; i < spine; i++ {
			var cur int
			if i == 0 {
				cur = d.addNode(cfg)
			} else {
				cur = d.grow(prev, cfg)
			}
			for j := 0; j < legs; j++ {
				d.grow(cur, cfg)
			}
			prev = cur
		}

		return nil
	}
}
