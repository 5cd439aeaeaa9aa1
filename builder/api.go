// SPDX-License-Identifier: MIT
// Package: balancedforest/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildCase(con, opts...). Resolves cfg, runs con against
//     an empty draft, post-processes edges and returns a balance.Case.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same constructor, options and seed ⇒ identical cases.
//   - Safety: never panic at runtime; return sentinel errors from constructors.
//
// Labelling:
//   - Nodes are labelled 1..n in the order constructors add them; node 1 is
//     the root every constructor grows from. Weights[i] belongs to label i+1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/balancedforest/balance"
)

// Constructor adds nodes and edges to d using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Produce exactly one tree: every node after the first is linked to an
//     already existing node by exactly one edge.
//   - Preserve determinism for the same config.
type Constructor func(d *draft, cfg builderConfig) error

// BuildCase resolves the builder configuration from opts, runs con and
// returns the resulting case. Constructor errors are wrapped with
// "BuildCase: %w".
//
// Complexity: O(len(opts)) + cost of con + O(n) post-processing.
//
// Errors:
//   - ErrConstructFailed for a nil constructor or a malformed draft.
//   - ErrNeedRandSource when WithShuffledEdges is set without an RNG.
//   - Any constructor sentinel (ErrTooFewVertices, ErrNeedRandSource).
func BuildCase(con Constructor, opts ...BuilderOption) (balance.Case, error) {
	cfg := newBuilderConfig(opts...)

	if con == nil {
		return balance.Case{}, fmt.Errorf("BuildCase: nil constructor: %w", ErrConstructFailed)
	}

	d := &draft{}
	if err := con(d, cfg); err != nil {
		return balance.Case{}, fmt.Errorf("BuildCase: %w", err)
	}
	if err := d.validate(); err != nil {
		return balance.Case{}, fmt.Errorf("BuildCase: %w", err)
	}

	if cfg.shuffle {
		if cfg.rng == nil {
			return balance.Case{}, fmt.Errorf("BuildCase: shuffled edges: %w", ErrNeedRandSource)
		}
		d.shuffleEdges(cfg.rng)
	}

	return d.toCase(), nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================

// Path builds a chain 1-2-…-n (n ≥ 1).
// Complexity: O(n).
//func Path(n int) Constructor

// Star builds hub 1 with leaves 2..n (n ≥ 1).
// Complexity: O(n).
//func Star(n int) Constructor

// Spider builds hub 1 with one chain per entry of legs (each ≥ 1 node).
// Complexity: O(1 + Σ legs).
//func Spider(legs ...int) Constructor

// Caterpillar builds a spine path of spine nodes with legs leaves hanging
// off every spine node (spine ≥ 1, legs ≥ 0).
// Complexity: O(spine · (legs+1)).
//func Caterpillar(spine, legs int) Constructor

// RandomTree builds a uniformly attached random recursive tree: node i picks
// its parent uniformly among 1..i-1. Requires cfg.rng for n ≥ 3.
// Complexity: O(n).
//func RandomTree(n int) Constructor
