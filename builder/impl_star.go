// SPDX-License-Identifier: MIT
// Package: balancedforest/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Hub is label 1; leaves 2..n are added and linked in ascending order.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.

package builder

// Star returns a Constructor that builds a star: hub 1 and n-1 leaves.
func Star(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}

		hub := d.addNode(cfg)
		for i := 1; i < n; i++ {
			d.grow(hub, cfg)
		}

		return nil
	}
}
