// File: text.go
// Role: the text "AdjacencyGraph"/"WeightedAdjacencyGraph" loader.
package ioadj

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/pargraph/graph"
)

// LoadText parses the whitespace-separated text format: a header token
// ("AdjacencyGraph" or "WeightedAdjacencyGraph"), then n, then m, then
// n out-offsets, then m neighbor ids, then (if weighted) m weights.
//
// symmetric asserts the source already lists every edge in both
// directions; callers supplying a directed edge list must pass false.
func LoadText(r io.Reader, symmetric bool) (*graph.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<24)
	sc.Split(bufio.ScanWords)

	next := func(what string) (string, error) {
		if !sc.Scan() {
			return "", fmt.Errorf("ioadj: reading %s: %w", what, ErrTruncated)
		}
		return sc.Text(), nil
	}

	header, err := next("header")
	if err != nil {
		return nil, err
	}
	var weighted bool
	switch header {
	case "AdjacencyGraph":
		weighted = false
	case "WeightedAdjacencyGraph":
		weighted = true
	default:
		return nil, fmt.Errorf("ioadj: header %q: %w", header, ErrMalformedHeader)
	}

	n, err := nextInt(next, "n")
	if err != nil {
		return nil, err
	}
	m, err := nextInt(next, "m")
	if err != nil {
		return nil, err
	}

	offsets := make([]int, n)
	for i := 0; i < n; i++ {
		offsets[i], err = nextInt(next, "offset")
		if err != nil {
			return nil, err
		}
	}

	neighbors := make([]uint32, m)
	for i := 0; i < m; i++ {
		tok, err := next("neighbor id")
		if err != nil {
			return nil, err
		}
		v, err := strconv.ParseUint(tok, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("ioadj: neighbor id %q: %w", tok, ErrSizeMismatch)
		}
		neighbors[i] = uint32(v)
	}

	var weights []int64
	if weighted {
		weights = make([]int64, m)
		for i := 0; i < m; i++ {
			weights[i], err = nextInt64(next, "weight")
			if err != nil {
				return nil, err
			}
		}
	}

	b := graph.NewBuilder(n)
	if weighted {
		b.Weighted()
	}
	if symmetric {
		b.AlreadySymmetric()
	}

	for u := 0; u < n; u++ {
		lo := offsets[u]
		hi := m
		if u+1 < n {
			hi = offsets[u+1]
		}
		if lo < 0 || hi > m || lo > hi {
			return nil, fmt.Errorf("ioadj: offset range [%d,%d) out of bounds for vertex %d: %w", lo, hi, u, ErrSizeMismatch)
		}
		for j := lo; j < hi; j++ {
			var w int64
			if weighted {
				w = weights[j]
			}
			b.AddEdge(uint32(u), neighbors[j], w)
		}
	}

	return b.Build(), nil
}

func nextInt(next func(string) (string, error), what string) (int, error) {
	tok, err := next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("ioadj: %s %q: %w", what, tok, ErrSizeMismatch)
	}
	return v, nil
}

func nextInt64(next func(string) (string, error), what string) (int64, error) {
	tok, err := next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("ioadj: %s %q: %w", what, tok, ErrSizeMismatch)
	}
	return v, nil
}
