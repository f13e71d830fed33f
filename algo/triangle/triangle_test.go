package triangle_test

import (
	"testing"

	"github.com/katalvlaran/pargraph/algo/triangle"
	"github.com/katalvlaran/pargraph/graph"
	"github.com/stretchr/testify/require"
)

// TestK4 counts the 4 triangles of the complete graph on 4 vertices.
func TestK4(t *testing.T) {
	b := graph.NewBuilder(4).Symmetric()
	b.AddEdge(0, 1, 0)
	b.AddEdge(0, 2, 0)
	b.AddEdge(0, 3, 0)
	b.AddEdge(1, 2, 0)
	b.AddEdge(1, 3, 0)
	b.AddEdge(2, 3, 0)
	g := b.Build()

	count, err := triangle.Compute(g)
	require.NoError(t, err)
	require.Equal(t, int64(4), count)
}

func TestTriangleFreeGraph(t *testing.T) {
	b := graph.NewBuilder(4).Symmetric()
	b.AddEdge(0, 1, 0)
	b.AddEdge(1, 2, 0)
	b.AddEdge(2, 3, 0)
	g := b.Build()

	count, err := triangle.Compute(g)
	require.NoError(t, err)
	require.Equal(t, int64(0), count)
}

func TestRequiresSymmetric(t *testing.T) {
	b := graph.NewBuilder(3)
	b.AddEdge(0, 1, 0)
	g := b.Build()

	_, err := triangle.Compute(g)
	require.ErrorIs(t, err, triangle.ErrNotSymmetric)
}
