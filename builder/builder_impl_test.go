// File: builder_impl_test.go
// Package builder_test contains functional tests for the tree constructors,
// verifying labels, edge order, weights and error sentinels.
package builder_test

import (
	"errors"
	"reflect"
	"sort"
	"testing"

	"github.com/katalvlaran/balancedforest/balance"
	"github.com/katalvlaran/balancedforest/builder"
	"github.com/katalvlaran/balancedforest/tree"
)

// normalized returns edges with the smaller label first, sorted.
func normalized(edges [][2]int) [][2]int {
	out := make([][2]int, len(edges))
	for i, e := range edges {
		if e[0] > e[1] {
			e[0], e[1] = e[1], e[0]
		}
		out[i] = e
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})

	return out
}

// TestBuilders_Functional runs table-driven functional tests for each constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		ctor      builder.Constructor
		wantN     int
		wantEdges [][2]int
	}{
		{"Path(1)", builder.Path(1), 1, [][2]int{}},
		{"Path(4)", builder.Path(4), 4, [][2]int{{1, 2}, {2, 3}, {3, 4}}},
		{"Star(4)", builder.Star(4), 4, [][2]int{{1, 2}, {1, 3}, {1, 4}}},
		{"Spider(2,1)", builder.Spider(2, 1), 4, [][2]int{{1, 2}, {2, 3}, {1, 4}}},
		{"Spider()", builder.Spider(), 1, [][2]int{}},
		{"Caterpillar(2,1)", builder.Caterpillar(2, 1), 4, [][2]int{{1, 2}, {1, 3}, {3, 4}}},
		{"Caterpillar(3,0)", builder.Caterpillar(3, 0), 3, [][2]int{{1, 2}, {2, 3}}},
		{"RandomTree(2)", builder.RandomTree(2), 2, [][2]int{{1, 2}}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c, err := builder.BuildCase(tc.ctor)
			if err != nil {
				t.Fatalf("BuildCase: unexpected error: %v", err)
			}
			if len(c.Weights) != tc.wantN {
				t.Errorf("nodes: expected %d, got %d", tc.wantN, len(c.Weights))
			}
			for i, w := range c.Weights {
				if w != builder.DefaultNodeWeight {
					t.Errorf("weight[%d]: expected %d, got %d", i, builder.DefaultNodeWeight, w)
				}
			}
			if !reflect.DeepEqual(c.Edges, tc.wantEdges) {
				t.Errorf("edges: expected %v, got %v", tc.wantEdges, c.Edges)
			}
			if _, err = tree.Build(c.Weights, c.Edges); err != nil {
				t.Errorf("tree.Build rejected the case: %v", err)
			}
		})
	}
}

// TestRandomTree_Deterministic verifies RandomTree is a valid tree, parents
// precede children, and equal seeds give equal cases.
func TestRandomTree_Deterministic(t *testing.T) {
	t.Parallel()

	const n = 25
	a, err := builder.BuildCase(builder.RandomTree(n), builder.WithSeed(11), builder.WithUniformWeight(0, 9))
	if err != nil {
		t.Fatalf("BuildCase: %v", err)
	}
	b, err := builder.BuildCase(builder.RandomTree(n), builder.WithSeed(11), builder.WithUniformWeight(0, 9))
	if err != nil {
		t.Fatalf("BuildCase: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different cases")
	}

	if len(a.Edges) != n-1 {
		t.Fatalf("edges: expected %d, got %d", n-1, len(a.Edges))
	}
	for i, e := range a.Edges {
		if e[1] != i+2 || e[0] < 1 || e[0] >= e[1] {
			t.Errorf("edge[%d]=%v: parent must precede child %d", i, e, i+2)
		}
	}
	for i, w := range a.Weights {
		if w < 0 || w > 9 {
			t.Errorf("weight[%d]=%d outside [0,9]", i, w)
		}
	}
	if _, err = tree.Build(a.Weights, a.Edges); err != nil {
		t.Errorf("tree.Build rejected the case: %v", err)
	}
}

// TestShuffledEdges verifies shuffling keeps the edge set and the answer.
func TestShuffledEdges(t *testing.T) {
	t.Parallel()

	plain, err := builder.BuildCase(builder.RandomTree(12), builder.WithSeed(3), builder.WithUniformWeight(1, 4))
	if err != nil {
		t.Fatalf("BuildCase: %v", err)
	}
	shuffled, err := builder.BuildCase(builder.RandomTree(12),
		builder.WithSeed(3), builder.WithUniformWeight(1, 4), builder.WithShuffledEdges())
	if err != nil {
		t.Fatalf("BuildCase: %v", err)
	}

	if !reflect.DeepEqual(plain.Weights, shuffled.Weights) {
		t.Errorf("weights changed by shuffling")
	}
	if !reflect.DeepEqual(normalized(plain.Edges), normalized(shuffled.Edges)) {
		t.Errorf("edge set changed by shuffling")
	}

	want, err := plain.Solve()
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	got, err := shuffled.Solve()
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if got != want {
		t.Errorf("answer: expected %d, got %d", want, got)
	}
}

// TestSpider_ThreeEqualLegs builds three equal legs under a weightless hub;
// cutting two legs already balances the tree.
func TestSpider_ThreeEqualLegs(t *testing.T) {
	t.Parallel()

	c, err := builder.BuildCase(builder.Spider(2, 2, 2),
		builder.WithWeightFn(builder.SequenceWeight(0, 1, 1, 1, 1, 1, 1)))
	if err != nil {
		t.Fatalf("BuildCase: %v", err)
	}
	got, err := balance.Solve(c.Weights, c.Edges)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if got != 0 {
		t.Errorf("answer: expected 0, got %d", got)
	}
}

// TestBuilders_Errors checks every constructor's sentinel on bad input.
func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"Path(0)", builder.Path(0), nil, builder.ErrTooFewVertices},
		{"Star(0)", builder.Star(0), nil, builder.ErrTooFewVertices},
		{"Spider(2,0)", builder.Spider(2, 0), nil, builder.ErrTooFewVertices},
		{"Caterpillar(0,1)", builder.Caterpillar(0, 1), nil, builder.ErrTooFewVertices},
		{"Caterpillar(1,-1)", builder.Caterpillar(1, -1), nil, builder.ErrTooFewVertices},
		{"RandomTree(0)", builder.RandomTree(0), nil, builder.ErrTooFewVertices},
		{"RandomTree(5) without rng", builder.RandomTree(5), nil, builder.ErrNeedRandSource},
		{"shuffle without rng", builder.Path(3), []builder.BuilderOption{builder.WithShuffledEdges()}, builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.BuildCase(tc.ctor, tc.opts...)
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
