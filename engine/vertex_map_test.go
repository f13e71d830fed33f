package engine_test

import (
	"testing"

	"github.com/katalvlaran/pargraph/engine"
	"github.com/katalvlaran/pargraph/runtime"
	"github.com/katalvlaran/pargraph/subset"
	"github.com/stretchr/testify/require"
)

// TestVertexMapFilter checks VertexMap(S, pred) returns a subset of S
// no larger than S.
func TestVertexMapFilter(t *testing.T) {
	ids := []runtime.VId{0, 1, 2, 3, 4, 5}
	s := subset.FromSparse(10, ids)

	out := engine.VertexMap(s, func(v runtime.VId) bool { return v%2 == 0 })

	require.LessOrEqual(t, out.Size(), s.Size())
	for _, v := range out.Ids() {
		require.Contains(t, ids, v)
	}
	require.ElementsMatch(t, []runtime.VId{0, 2, 4}, out.Ids())
}

func TestVertexMapNoOutputSideEffectsOnly(t *testing.T) {
	ids := []runtime.VId{0, 1, 2}
	s := subset.FromSparse(5, ids)
	visited := make([]bool, 5)

	engine.VertexMapNoOutput(s, func(v runtime.VId) { visited[v] = true })

	require.Equal(t, []bool{true, true, true, false, false}, visited)
}
