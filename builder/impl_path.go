// SPDX-License-Identifier: MIT
// Package: balancedforest/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Adds nodes 1..n in ascending label order, weights from cfg.weightFn.
//   - Emits edges (i-1, i) for i = 2..n in increasing order.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.

package builder

// Path returns a Constructor that builds the chain 1-2-…-n rooted at 1.
func Path(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		// Validate parameter domain early.
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}

		prev := d.addNode(cfg)
		for i := 1; i < n; i++ {
			prev = d.grow(prev, cfg)
		}

		return nil
	}
}
