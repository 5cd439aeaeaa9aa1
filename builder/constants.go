// Package builder defines shared constants used by tree builders, ensuring
// consistent defaults and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodSpider is the canonical name for the Spider constructor.
	MethodSpider = "Spider"
	// MethodCaterpillar is the canonical name for the Caterpillar constructor.
	MethodCaterpillar = "Caterpillar"
	// MethodRandomTree is the canonical name for the RandomTree constructor.
	MethodRandomTree = "RandomTree"
)

//-----------------------------------------------------------------------------
// Node labels
//-----------------------------------------------------------------------------

// RootLabel is the 1-indexed label of the node every constructor grows from.
const RootLabel = 1

//-----------------------------------------------------------------------------
// Minimum sizes
//-----------------------------------------------------------------------------

// MinPathNodes is the smallest path: a single node is a valid tree.
const MinPathNodes = 1

// MinStarNodes is the smallest star: the hub alone.
const MinStarNodes = 1

// MinSpiderLeg is the shortest leg a spider may have.
const MinSpiderLeg = 1

// MinSpineNodes is the shortest caterpillar spine.
const MinSpineNodes = 1

// MinRandomTreeNodes is the smallest random tree.
const MinRandomTreeNodes = 1

//-----------------------------------------------------------------------------
// Default weights
//-----------------------------------------------------------------------------

// DefaultNodeWeight is the weight of every node when no WeightFn is set.
const DefaultNodeWeight int64 = 1
