// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
package builder

// validateMin ensures that got is ≥ min.
// Returns "<Method>: <what>=<got> < min=<min>" wrapping ErrTooFewVertices.
// Complexity: O(1).
func validateMin(method, what string, got, min int) error {
	if got < min {
		return builderErrorf(method, "%s=%d < min=%d: %w", what, got, min, ErrTooFewVertices)
	}

	return nil
}

// requireRand reports ErrNeedRandSource when cfg has no RNG.
func requireRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return builderErrorf(method, "rng is required: %w", ErrNeedRandSource)
	}

	return nil
}
