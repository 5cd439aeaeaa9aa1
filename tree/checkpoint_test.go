package tree_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/balancedforest/tree"
)

// state captures every node's observable triple for exact comparison.
type state struct {
	Value    int64
	Parent   tree.ID
	Children []tree.ID
}

func capture(tr *tree.Tree) []state {
	out := make([]state, tr.Len())
	for i := range out {
		id := tree.ID(i)
		p, ok := tr.Parent(id)
		if !ok {
			p = tree.NoID
		}
		out[i] = state{Value: tr.Value(id), Parent: p, Children: tr.Children(id)}
	}

	return out
}

func TestCheckpoint_RoundTrip(t *testing.T) {
	tr := sample(t)
	cp, err := tree.NewCheckpoint(tr)
	require.NoError(t, err)
	defer cp.Close()

	before := capture(tr)

	cp.Mark()
	require.NoError(t, tr.SetValue(2, 40))
	require.NoError(t, tr.SetValue(2, 41)) // second change under the same mark
	require.NoError(t, tr.RemoveChild(2, 3))
	require.NoError(t, tr.AddChild(1, 3))
	assert.Equal(t, 3, cp.Pending())

	require.NoError(t, cp.Rollback())

	assert.Equal(t, before, capture(tr))
	assert.Zero(t, cp.Depth())
	assert.Zero(t, cp.Pending(), "no stale bookkeeping after the last rollback")
}

func TestCheckpoint_NestedLIFO(t *testing.T) {
	tr := sample(t)
	cp, err := tree.NewCheckpoint(tr)
	require.NoError(t, err)
	defer cp.Close()

	s0 := capture(tr)

	cp.Mark()
	require.NoError(t, tr.SetValue(0, 10))
	s1 := capture(tr)

	cp.Mark()
	require.NoError(t, tr.SetValue(0, 20)) // node registered at the outer mark
	require.NoError(t, tr.SetValue(4, 30)) // node first seen at the inner mark
	assert.Equal(t, 2, cp.Depth())

	require.NoError(t, cp.Rollback())
	assert.Equal(t, s1, capture(tr))
	assert.True(t, cp.Registered(0))
	assert.False(t, cp.Registered(4))

	require.NoError(t, cp.Rollback())
	assert.Equal(t, s0, capture(tr))
	assert.Zero(t, cp.Pending())
}

func TestCheckpoint_ReRegister(t *testing.T) {
	tr := sample(t)
	cp, err := tree.NewCheckpoint(tr)
	require.NoError(t, err)
	defer cp.Close()

	before := capture(tr)
	for round := 0; round < 3; round++ {
		cp.Mark()
		require.NoError(t, tr.SetValue(3, int64(100+round)))
		require.NoError(t, tr.RemoveChild(2, 4))
		require.NoError(t, cp.Rollback())
		require.Equal(t, before, capture(tr), "round %d", round)
	}

	st := cp.Stats()
	assert.Equal(t, 3, st.Marks)
	assert.Equal(t, 3, st.Rollbacks)
	assert.Equal(t, st.Snapshots, st.Restores)
}

func TestCheckpoint_ExplicitRegister(t *testing.T) {
	tr := sample(t)
	cp, err := tree.NewCheckpoint(tr)
	require.NoError(t, err)
	defer cp.Close()

	cp.Mark()
	require.NoError(t, cp.Register(1))
	assert.True(t, cp.Registered(1))
	require.NoError(t, tr.SetValue(1, 99))
	cp.Unregister(1)
	require.NoError(t, cp.Rollback())

	// unregistered before rollback: the change is kept
	assert.Equal(t, int64(99), tr.Value(1))
	assert.ErrorIs(t, cp.Register(17), tree.ErrNodeOutOfRange)
}

func TestCheckpoint_Preconditions(t *testing.T) {
	tr := sample(t)
	cp, err := tree.NewCheckpoint(tr)
	require.NoError(t, err)

	assert.ErrorIs(t, cp.Rollback(), tree.ErrNoOpenMark)

	_, err = tree.NewCheckpoint(tr)
	assert.ErrorIs(t, err, tree.ErrCheckpointAttached)

	cp.Close()
	cp2, err := tree.NewCheckpoint(tr)
	require.NoError(t, err)
	cp2.Close()
}

func TestCheckpoint_UnmarkedChangesPassThrough(t *testing.T) {
	tr := sample(t)
	cp, err := tree.NewCheckpoint(tr)
	require.NoError(t, err)
	defer cp.Close()

	require.NoError(t, tr.SetValue(1, 5))
	assert.Zero(t, cp.Pending())
	assert.Equal(t, int64(5), tr.Value(1))
}

// TestCheckpoint_RandomMutations applies random journaled edits at random
// nesting depths and checks every level restores exactly.
func TestCheckpoint_RandomMutations(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	tr := sample(t)
	cp, err := tree.NewCheckpoint(tr)
	require.NoError(t, err)
	defer cp.Close()

	for iter := 0; iter < 200; iter++ {
		depth := 1 + r.Intn(3)
		saved := make([][]state, 0, depth)
		for d := 0; d < depth; d++ {
			saved = append(saved, capture(tr))
			cp.Mark()
			for k := 0; k < 1+r.Intn(4); k++ {
				id := tree.ID(r.Intn(tr.Len()))
				require.NoError(t, tr.SetValue(id, r.Int63n(50)))
				if kids := tr.Children(id); len(kids) > 0 && r.Intn(2) == 0 {
					require.NoError(t, tr.RemoveChild(id, kids[r.Intn(len(kids))]))
				}
			}
		}
		for d := depth - 1; d >= 0; d-- {
			require.NoError(t, cp.Rollback())
			require.Equal(t, saved[d], capture(tr))
		}
		require.Zero(t, cp.Pending())
	}
}
