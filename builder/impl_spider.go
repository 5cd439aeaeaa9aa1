// SPDX-License-Identifier: MIT
// Package: balancedforest/builder
//
// impl_spider.go - implementation of Spider(legs...) constructor.
//
// Contract:
//   - Every leg length ≥ 1 (else ErrTooFewVertices). No legs is a lone hub.
//   - Hub is label 1; legs are emitted one after another in argument order,
//     each as a chain walking away from the hub.
//
// Complexity:
//   - Time: O(1 + Σ legs). Space: O(1) extra.
//
// Spiders with equal-weight legs are the natural fixtures for three-way
// balance: Spider(k, k, k) under constant weights splits into three equal
// legs plus the hub.

package builder

import "fmt"

// Spider returns a Constructor that builds a hub with one chain per leg.
func Spider(legs ...int) Constructor {
	lens := append([]int(nil), legs...)

	return func(d *draft, cfg builderConfig) error {
		// 1) Validate all legs before adding anything.
		for i, l := range lens {
			if err := validateMin(MethodSpider, fmt.Sprintf("leg[%d]", i), l, MinSpiderLeg); err != nil {
				return err
			}
		}

		// 2) Hub, then each leg as a chain.
		hub := d.addNode(cfg)
		for _, l := range lens {
			prev := hub
			for j := 0; j < l; j++ {
				prev = d.grow(prev, cfg)
			}
		}

		return nil
	}
}
