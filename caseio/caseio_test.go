package caseio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/balancedforest/balance"
	"github.com/katalvlaran/balancedforest/caseio"
)

const sampleInput = `2
5
1 2 2 1 1
1 2
1 3
3 5
1 4
3
1 3 5
1 3
1 2
`

func TestReadAll_Sample(t *testing.T) {
	cases, err := caseio.NewReader(strings.NewReader(sampleInput)).ReadAll()
	require.NoError(t, err)
	require.Len(t, cases, 2)

	assert.Equal(t, []int64{1, 2, 2, 1, 1}, cases[0].Weights)
	assert.Equal(t, [][2]int{{1, 2}, {1, 3}, {3, 5}, {1, 4}}, cases[0].Edges)
	assert.Equal(t, []int64{1, 3, 5}, cases[1].Weights)
	assert.Equal(t, [][2]int{{1, 3}, {1, 2}}, cases[1].Edges)
}

func TestReadAll_Whitespace(t *testing.T) {
	in := "1\r\n\r\n2\r\n 4   4 \r\n\n2\t1\r\n"
	cases, err := caseio.NewReader(strings.NewReader(in)).ReadAll()
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, []int64{4, 4}, cases[0].Weights)
	assert.Equal(t, [][2]int{{2, 1}}, cases[0].Edges)
}

func TestReadAll_ZeroCases(t *testing.T) {
	cases, err := caseio.NewReader(strings.NewReader("0\n")).ReadAll()
	require.NoError(t, err)
	assert.Empty(t, cases)
}

func TestReadAll_Malformed(t *testing.T) {
	cases := []struct {
		name, in, mention string
	}{
		{"empty", "", "token 1"},
		{"negative count", "-1", "token 1"},
		{"not a number", "1\n2\n1 x\n1 2", `token 4 ("x")`},
		{"zero nodes", "1\n0\n", "token 2"},
		{"truncated edges", "1\n3\n1 1 1\n1 2\n", "token 8"},
		{"edge endpoint zero", "1\n2\n1 1\n0 2", "token 5"},
		{"trailing", "1\n1\n5\n7", "trailing"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := caseio.NewReader(strings.NewReader(tc.in)).ReadAll()
			require.ErrorIs(t, err, caseio.ErrMalformedInput)
			assert.Contains(t, err.Error(), tc.mention)
		})
	}
}

func TestWriteCases_RoundTrip(t *testing.T) {
	in := []balance.Case{
		{Weights: []int64{1, 2, 2, 1, 1}, Edges: [][2]int{{1, 2}, {1, 3}, {3, 5}, {1, 4}}},
		{Weights: []int64{7}, Edges: [][2]int{}},
	}

	var buf bytes.Buffer
	require.NoError(t, caseio.WriteCases(&buf, in))
	assert.True(t, strings.HasPrefix(buf.String(), "2\n5\n1 2 2 1 1\n1 2\n"))

	out, err := caseio.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestWriteResults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, caseio.WriteResults(&buf, []int64{2, -1, 0}))
	assert.Equal(t, "2\n-1\n0\n", buf.String())
}
