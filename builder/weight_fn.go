// Package builder provides helper functions and types for configuring
// node-weight distributions in tree constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn produces a node weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed; panics in constructors
// indicate programmer error in configuration.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultNodeWeight.
// Complexity: O(1). Never panics.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultNodeWeight
}

// ConstantWeight returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeight(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeight: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeight returns a WeightFn sampling uniformly in [min, max] inclusive.
// Panics if min < 0 or max < min.
// If rng is nil, yields DefaultNodeWeight to keep a deterministic fallback.
func UniformWeight(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeight: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return DefaultNodeWeight
		}
		if max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}

// SequenceWeight returns a WeightFn yielding ws in order and cycling once
// exhausted. Useful for pinning the weights of a hand-checked fixture.
// Panics on an empty slice or a negative entry.
func SequenceWeight(ws ...int64) WeightFn {
	if len(ws) == 0 {
		panic("SequenceWeight: no weights")
	}
	for i, w := range ws {
		if w < 0 {
			panic(fmt.Sprintf("SequenceWeight: weight[%d] must be ≥ 0, got %d", i, w))
		}
	}
	vals := append([]int64(nil), ws...)
	next := 0

	return func(_ *rand.Rand) int64 {
		w := vals[next%len(vals)]
		next++

		return w
	}
}

// WithConstantWeight sets a fixed node weight via ConstantWeight.
func WithConstantWeight(w int64) BuilderOption {
	return WithWeightFn(ConstantWeight(w))
}

// WithUniformWeight sets weights ∼ U[min,max] via UniformWeight.
func WithUniformWeight(min, max int64) BuilderOption {
	return WithWeightFn(UniformWeight(min, max))
}
