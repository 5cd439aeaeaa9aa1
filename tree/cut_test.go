package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/balancedforest/tree"
)

func TestAggregate_Sums(t *testing.T) {
	tr := sample(t)
	sums := tree.Aggregate(tr)

	assert.Equal(t, []int64{7, 2, 4, 1, 1}, values(sums))
	// input untouched
	assert.Equal(t, []int64{1, 2, 2, 1, 1}, values(tr))
	assert.Nil(t, tree.Aggregate(nil))
}

func TestAggregate_RootIsTotal(t *testing.T) {
	weights := []int64{3, 0, 9, 4, 4, 1, 8}
	tr, err := tree.Build(weights, [][2]int{{1, 2}, {2, 3}, {3, 4}, {1, 5}, {5, 6}, {6, 7}})
	require.NoError(t, err)

	var total int64
	for _, w := range weights {
		total += w
	}
	assert.Equal(t, total, tree.Aggregate(tr).Value(tr.Root()))
}

func TestSubtractingCutter(t *testing.T) {
	sums := tree.Aggregate(sample(t))

	split, err := tree.SubtractingCutter(sums, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, tree.Split{Ancestor: 0, Descendant: 3}, split)

	// path 2 → 0 loses node 3's sum; node 3 is detached
	assert.Equal(t, []int64{6, 2, 3, 1, 1}, values(sums))
	assert.Equal(t, []tree.ID{4}, sums.Children(2))
	_, ok := sums.Parent(3)
	assert.False(t, ok)
}

func TestSubtractingCutter_StopsAtAncestor(t *testing.T) {
	sums := tree.Aggregate(sample(t))

	_, err := tree.SubtractingCutter(sums, 2, 4)
	require.NoError(t, err)

	// only the 2-subtree changes; the root's sum is left alone
	assert.Equal(t, []int64{7, 2, 3, 1, 1}, values(sums))
}

func TestSubtractingCutter_UnderCheckpoint(t *testing.T) {
	sums := tree.Aggregate(sample(t))
	cp, err := tree.NewCheckpoint(sums)
	require.NoError(t, err)
	defer cp.Close()

	before := capture(sums)
	cp.Mark()
	_, err = tree.SubtractingCutter(sums, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), sums.Value(0))
	require.NoError(t, cp.Rollback())

	assert.Equal(t, before, capture(sums))
	assert.Zero(t, cp.Pending())
}

func TestSubtractingCutter_Errors(t *testing.T) {
	sums := tree.Aggregate(sample(t))

	cases := []struct {
		name                 string
		ancestor, descendant tree.ID
		want                 error
	}{
		{"root has no parent", 2, 0, tree.ErrNotDescendant},
		{"same node", 2, 2, tree.ErrNotDescendant},
		{"sibling branch", 1, 3, tree.ErrNotDescendant},
		{"unknown id", 0, 11, tree.ErrNodeOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tree.SubtractingCutter(sums, tc.ancestor, tc.descendant)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	// failed cuts leave the tree untouched
	assert.Equal(t, []int64{7, 2, 4, 1, 1}, values(sums))
}

func values(tr *tree.Tree) []int64 {
	out := make([]int64, tr.Len())
	for i := range out {
		out[i] = tr.Value(tree.ID(i))
	}

	return out
}
