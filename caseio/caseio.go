// Package caseio reads and writes balanced-forest cases in the plain-text
// contest format:
//
//	q
//	n                      ┐
//	c[1] c[2] … c[n]       │ repeated q times
//	u v   (n−1 lines)      ┘
//
// Parsing is token based: any run of spaces, tabs, CR or LF separates
// tokens, so blank lines and CRLF files are accepted. Malformed input is
// reported as ErrMalformedInput with the 1-based token position.
//
// Output is one answer per line.
package caseio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/balancedforest/balance"
)

// ErrMalformedInput indicates a token that is missing, not an integer, or
// out of range for its position.
var ErrMalformedInput = errors.New("caseio: malformed input")

// MaxTokenSize bounds a single token; longer tokens fail the scan.
const MaxTokenSize = 1 << 20

// maxPrealloc caps slice preallocation driven by counts read from input.
const maxPrealloc = 1 << 16

// Reader decodes cases from an io.Reader.
type Reader struct {
	sc  *bufio.Scanner
	pos int
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxTokenSize)
	sc.Split(bufio.ScanWords)

	return &Reader{sc: sc}
}

// ReadAll reads the case count followed by that many cases. Tokens after
// the last case are an error.
func (r *Reader) ReadAll() ([]balance.Case, error) {
	q, err := r.readInt("case count", 0)
	if err != nil {
		return nil, err
	}

	cases := make([]balance.Case, 0, min(q, maxPrealloc))
	for i := 0; i < q; i++ {
		c, err := r.readCase()
		if err != nil {
			return nil, fmt.Errorf("ReadAll: case %d: %w", i+1, err)
		}
		cases = append(cases, c)
	}

	if r.sc.Scan() {
		return nil, fmt.Errorf("ReadAll: token %d (%q): trailing input: %w", r.pos+1, r.sc.Text(), ErrMalformedInput)
	}
	if err = r.sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadAll: %w", err)
	}

	return cases, nil
}

// readCase reads n, n weights and n−1 edges.
func (r *Reader) readCase() (balance.Case, error) {
	n, err := r.readInt("node count", 1)
	if err != nil {
		return balance.Case{}, err
	}

	c := balance.Case{
		Weights: make([]int64, 0, min(n, maxPrealloc)),
		Edges:   make([][2]int, 0, min(n-1, maxPrealloc)),
	}
	for i := 0; i < n; i++ {
		w, err := r.readInt64("weight")
		if err != nil {
			return balance.Case{}, err
		}
		c.Weights = append(c.Weights, w)
	}
	for i := 0; i < n-1; i++ {
		u, err := r.readInt("edge endpoint", 1)
		if err != nil {
			return balance.Case{}, err
		}
		v, err := r.readInt("edge endpoint", 1)
		if err != nil {
			return balance.Case{}, err
		}
		c.Edges = append(c.Edges, [2]int{u, v})
	}

	return c, nil
}

// next returns the next token or a positioned error.
func (r *Reader) next(what string) (string, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", fmt.Errorf("token %d: %w", r.pos+1, err)
		}
		return "", fmt.Errorf("token %d: expected %s, got end of input: %w", r.pos+1, what, ErrMalformedInput)
	}
	r.pos++

	return r.sc.Text(), nil
}

func (r *Reader) readInt(what string, lo int) (int, error) {
	tok, err := r.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil || v < lo {
		return 0, fmt.Errorf("token %d (%q): expected %s ≥ %d: %w", r.pos, tok, what, lo, ErrMalformedInput)
	}

	return v, nil
}

func (r *Reader) readInt64(what string) (int64, error) {
	tok, err := r.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("token %d (%q): expected %s: %w", r.pos, tok, what, ErrMalformedInput)
	}

	return v, nil
}

// WriteResults writes one answer per line.
func WriteResults(w io.Writer, answers []int64) error {
	bw := bufio.NewWriter(w)
	for _, a := range answers {
		bw.WriteString(strconv.FormatInt(a, 10))
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// WriteCases writes cases in the input format ReadAll accepts.
func WriteCases(w io.Writer, cases []balance.Case) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", len(cases))
	for _, c := range cases {
		fmt.Fprintf(bw, "%d\n", len(c.Weights))
		for i, wt := range c.Weights {
			if i > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.FormatInt(wt, 10))
		}
		bw.WriteByte('\n')
		for _, e := range c.Edges {
			fmt.Fprintf(bw, "%d %d\n", e[0], e[1])
		}
	}

	return bw.Flush()
}
