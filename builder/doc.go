// Package builder generates balanced-forest cases: weighted trees in the
// 1-indexed (weights, edges) form that balance.Solve and caseio consume.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, weight function and the shuffle flag.
//   - Tree constructors (Constructor implementations):
//     – Path(n), Star(n), Spider(legs...), Caterpillar(spine, legs),
//     RandomTree(n).
//   - Node-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant DefaultNodeWeight.
//     – ConstantWeight:    fixed user-provided value.
//     – UniformWeight:     uniform integer ∼U[min,max].
//     – SequenceWeight:    fixed list, cycled.
//   - Post-processing:
//     – WithShuffledEdges: random edge order and orientation.
//
// Guarantees:
//
//   - Every successful BuildCase result is a tree rooted at label 1 with
//     non-negative weights.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel errors (ErrTooFewVertices, ErrNeedRandSource,
//     ErrConstructFailed) for invalid build parameters, wrapped with the
//     constructor name.
//   - Deterministic for a fixed seed.
package builder
