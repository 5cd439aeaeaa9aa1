// SPDX-License-Identifier: MIT
// Package: balancedforest/builder
//
// impl_random_tree.go - implementation of RandomTree(n) constructor.
//
// Canonical model:
//   - Random recursive tree: node i (i = 2..n) links to a parent drawn
//     uniformly from labels 1..i-1.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - cfg.rng must be non-nil when the shape is actually random (n ≥ 3);
//     n ∈ {1, 2} has a single possible shape and needs no RNG.
//   - Parent draws and weight draws share cfg.rng in a fixed order (weight
//     of node i, then its parent), so outcomes are stable per seed.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.

package builder

// RandomTree returns a Constructor sampling a random recursive tree on n nodes.
func RandomTree(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		// 1) Validate parameters early.
		if err := validateMin(MethodRandomTree, "n", n, MinRandomTreeNodes); err != nil {
			return err
		}
		if n >= 3 {
			if err := requireRand(MethodRandomTree, cfg); err != nil {
				return err
			}
		}

		// 2) Root, then every later node under a uniformly chosen earlier one.
		d.addNode(cfg)
		for i := 2; i <= n; i++ {
			child := d.addNode(cfg)
			parent := RootLabel
			if i > 2 {
				parent = 1 + cfg.rng.Intn(i-1)
			}
			d.link(parent, child)
		}

		return nil
	}
}
