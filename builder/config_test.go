// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) and the internal draft.
package builder

import (
	"errors"
	"math/rand"
	"testing"
)

// TestConfigDefaults verifies the deterministic defaults.
func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if cfg.rng != nil {
		t.Errorf("default rng: expected nil")
	}
	if cfg.shuffle {
		t.Errorf("default shuffle: expected false")
	}
	if w := cfg.weightFn(nil); w != DefaultNodeWeight {
		t.Errorf("default weightFn: expected %d, got %d", DefaultNodeWeight, w)
	}
}

// TestRNGOptions verifies WithSeed reproducibility and last-wins ordering.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(9))
	b := newBuilderConfig(WithSeed(9))
	if a.rng == nil || b.rng == nil {
		t.Fatal("WithSeed: rng not set")
	}
	if x, y := a.rng.Int63(), b.rng.Int63(); x != y {
		t.Errorf("WithSeed: expected equal draws, got %d and %d", x, y)
	}

	r := rand.New(rand.NewSource(1))
	c := newBuilderConfig(WithSeed(9), WithRand(r))
	if c.rng != r {
		t.Errorf("WithRand after WithSeed: expected the explicit rng")
	}
}

// TestDraftValidate covers the structural checks applied after construction.
func TestDraftValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		d     draft
		valid bool
	}{
		{"single node", draft{weights: []int64{4}}, true},
		{"chain", draft{weights: []int64{1, 1, 1}, edges: [][2]int{{1, 2}, {2, 3}}}, true},
		{"empty", draft{}, false},
		{"missing edge", draft{weights: []int64{1, 1, 1}, edges: [][2]int{{1, 2}}}, false},
		{"child before parent", draft{weights: []int64{1, 1, 1}, edges: [][2]int{{2, 3}, {1, 2}}}, false},
		{"repeated child", draft{weights: []int64{1, 1, 1}, edges: [][2]int{{1, 2}, {1, 2}}}, false},
		{"label out of range", draft{weights: []int64{1, 1}, edges: [][2]int{{1, 3}}}, false},
		{"negative weight", draft{weights: []int64{1, -1}, edges: [][2]int{{1, 2}}}, false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.d.validate()
			if tc.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tc.valid && !errors.Is(err, ErrConstructFailed) {
				t.Errorf("expected ErrConstructFailed, got %v", err)
			}
		})
	}
}
