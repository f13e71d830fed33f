package engine_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/pargraph/engine"
	"github.com/katalvlaran/pargraph/graph"
	"github.com/katalvlaran/pargraph/runtime"
	"github.com/katalvlaran/pargraph/subset"
	"github.com/stretchr/testify/require"
)

// bfsOp claims each destination via CAS from VIdNone to s, returning
// true only on the claiming transition.
type bfsOp struct {
	parents []runtime.VId
}

func (o *bfsOp) Cond(d runtime.VId) bool { return o.parents[d] == runtime.VIdNone }
func (o *bfsOp) Update(s, d runtime.VId) bool {
	if o.parents[d] == runtime.VIdNone {
		o.parents[d] = s
		return true
	}
	return false
}
func (o *bfsOp) UpdateAtomic(s, d runtime.VId) bool {
	return runtime.CAS32(&o.parents[d], runtime.VIdNone, s)
}

func buildPath5(t *testing.T) *graph.Graph {
	t.Helper()
	b := graph.NewBuilder(5)
	for i := uint32(0); i < 4; i++ {
		b.AddEdge(i, i+1, 0)
	}
	return b.Build()
}

// TestPathBFS drives BFS rounds over the directed path 0->1->2->3->4.
func TestPathBFS(t *testing.T) {
	g := buildPath5(t)
	parents := make([]runtime.VId, g.N())
	for i := range parents {
		parents[i] = runtime.VIdNone
	}
	parents[0] = 0

	op := &bfsOp{parents: parents}
	frontier := subset.Singleton(g.N(), 0)

	var roundSizes []int
	roundSizes = append(roundSizes, frontier.Size())
	for !frontier.IsEmpty() {
		next, err := engine.EdgeMap(g, frontier, op, engine.WithThreshold(-1))
		require.NoError(t, err)
		frontier = next
		roundSizes = append(roundSizes, frontier.Size())
	}

	require.Equal(t, []runtime.VId{0, 0, 1, 2, 3}, parents)
	require.Equal(t, []int{1, 1, 1, 1, 1, 0}, roundSizes)
}

// TestStarBFS drives BFS rounds over a 6-vertex star rooted at the hub.
func TestStarBFS(t *testing.T) {
	b := graph.NewBuilder(6)
	for i := uint32(1); i <= 5; i++ {
		b.AddEdge(0, i, 0)
	}
	g := b.Build()

	parents := make([]runtime.VId, g.N())
	for i := range parents {
		parents[i] = runtime.VIdNone
	}
	parents[0] = 0
	op := &bfsOp{parents: parents}

	frontier := subset.Singleton(g.N(), 0)
	rounds := 0
	for !frontier.IsEmpty() {
		next, err := engine.EdgeMap(g, frontier, op, engine.WithThreshold(-1))
		require.NoError(t, err)
		frontier = next
		rounds++
	}

	require.Equal(t, []runtime.VId{0, 0, 0, 0, 0, 0}, parents)
	require.Equal(t, 2, rounds)
}

// TestEmptyFrontierFixpoint checks that an empty frontier produces an
// empty output and invokes no callback.
func TestEmptyFrontierFixpoint(t *testing.T) {
	g := buildPath5(t)
	calls := 0
	op := &countingOp{onCall: func() { calls++ }}

	out, err := engine.EdgeMap(g, subset.Empty(g.N()), op)
	require.NoError(t, err)
	require.True(t, out.IsEmpty())
	require.Equal(t, 0, calls)
}

type countingOp struct {
	engine.AlwaysTrueCond
	onCall func()
}

func (o *countingOp) Update(s, d runtime.VId) bool       { o.onCall(); return true }
func (o *countingOp) UpdateAtomic(s, d runtime.VId) bool { o.onCall(); return true }

// TestSubsetOfCandidates checks that the output is a subset of
// {d : exists s in F. (s,d) in E}.
func TestSubsetOfCandidates(t *testing.T) {
	g := buildPath5(t)
	op := &bfsOp{parents: freshParents(g.N(), 0)}
	frontier := subset.FromSparse(g.N(), []runtime.VId{0, 1})

	candidates := map[runtime.VId]bool{1: true, 2: true}
	out, err := engine.EdgeMap(g, frontier, op, engine.WithThreshold(-1))
	require.NoError(t, err)
	for _, id := range out.Ids() {
		require.True(t, candidates[id], "unexpected output member %d", id)
	}
}

// TestUniquenessOfOutput checks the output holds no duplicates, on a
// diamond where two sources both reach the same destination.
func TestUniquenessOfOutput(t *testing.T) {
	b := graph.NewBuilder(4)
	b.AddEdge(0, 1, 0)
	b.AddEdge(0, 2, 0)
	b.AddEdge(1, 3, 0)
	b.AddEdge(2, 3, 0)
	g := b.Build()

	op := &bfsOp{parents: freshParents(g.N(), 0)}
	frontier := subset.FromSparse(g.N(), []runtime.VId{1, 2})
	out, err := engine.EdgeMap(g, frontier, op, engine.WithThreshold(-1))
	require.NoError(t, err)

	require.Equal(t, 1, out.Size())
	seen := map[runtime.VId]bool{}
	for _, id := range out.Ids() {
		require.False(t, seen[id])
		seen[id] = true
	}
}

// TestDirectionEquivalence checks that forcing push vs pull yields
// identical final state for a cumulative-effect operator.
func TestDirectionEquivalence(t *testing.T) {
	b := graph.NewBuilder(4)
	b.AddEdge(0, 3, 0)
	b.AddEdge(1, 3, 0)
	b.AddEdge(2, 3, 0)
	g := b.Build()

	runOnce := func(forcePush bool) []int64 {
		counts := make([]int64, g.N())
		op := &sumOp{counts: counts}
		frontier := subset.FromSparse(g.N(), []runtime.VId{0, 1, 2})
		threshold := int64(-1)
		if !forcePush {
			threshold = 0
		}
		_, err := engine.EdgeMap(g, frontier, op, engine.WithThreshold(threshold), engine.WithOutputMode(engine.NoOutput))
		require.NoError(t, err)
		return counts
	}

	pushResult := runOnce(true)
	pullResult := runOnce(false)
	require.Equal(t, pushResult, pullResult)
	require.Equal(t, int64(3), pushResult[3])
}

type sumOp struct {
	engine.AlwaysTrueCond
	counts []int64
}

func (o *sumOp) Update(s, d runtime.VId) bool {
	o.counts[d]++
	return true
}
func (o *sumOp) UpdateAtomic(s, d runtime.VId) bool {
	runtime.WriteAddInt64(&o.counts[d], 1)
	return true
}

// TestDirectionSwitchHub forces the push-work estimate above threshold
// by seeding a degree-(n-1) hub, verifying the pull path (taken because
// W_push = 50 exceeds the threshold of 0 passed here) agrees with a
// forced push.
func TestDirectionSwitchHub(t *testing.T) {
	const n = 50
	b := graph.NewBuilder(n)
	for i := uint32(1); i < n; i++ {
		b.AddEdge(0, i, 0)
	}
	g := b.Build()

	hubFrontier := func() *subset.VertexSubset { return subset.Singleton(g.N(), 0) }

	adaptive := &bfsOp{parents: freshParents(g.N(), 0)}
	adaptiveOut, err := engine.EdgeMap(g, hubFrontier(), adaptive, engine.WithThreshold(0))
	require.NoError(t, err)

	forced := &bfsOp{parents: freshParents(g.N(), 0)}
	forcedOut, err := engine.EdgeMap(g, hubFrontier(), forced, engine.WithThreshold(-1))
	require.NoError(t, err)

	require.Equal(t, forced.parents, adaptive.parents)
	require.ElementsMatch(t, adaptiveOut.Ids(), forcedOut.Ids())
}

// TestNoOutputVisitsEveryQualifyingEdge locks in that NoOutput mode
// visits every qualifying edge even though the callback returns true
// unconditionally (PageRank-style cumulative effect).
func TestNoOutputVisitsEveryQualifyingEdge(t *testing.T) {
	b := graph.NewBuilder(3)
	b.AddEdge(0, 2, 0)
	b.AddEdge(1, 2, 0)
	g := b.Build()

	var mu sync.Mutex
	var edgesSeen int
	op := &countingOp{onCall: func() {
		mu.Lock()
		edgesSeen++
		mu.Unlock()
	}}

	frontier := subset.FromSparse(g.N(), []runtime.VId{0, 1})
	_, err := engine.EdgeMap(g, frontier, op, engine.WithThreshold(-1), engine.WithOutputMode(engine.NoOutput))
	require.NoError(t, err)
	require.Equal(t, 2, edgesSeen)

	edgesSeen = 0
	_, err = engine.EdgeMap(g, frontier, op, engine.WithThreshold(0), engine.WithOutputMode(engine.NoOutput))
	require.NoError(t, err)
	require.Equal(t, 2, edgesSeen)
}

// TestUniverseMismatch: a frontier built over a different vertex count
// than g.N() is rejected rather than silently indexed out of range.
func TestUniverseMismatch(t *testing.T) {
	g := buildPath5(t)
	op := &bfsOp{parents: freshParents(g.N(), 0)}
	frontier := subset.Singleton(g.N()+1, 0)

	out, err := engine.EdgeMap(g, frontier, op)
	require.Nil(t, out)
	require.ErrorIs(t, err, graph.ErrUniverseMismatch)
}

func freshParents(n int, root runtime.VId) []runtime.VId {
	p := make([]runtime.VId, n)
	for i := range p {
		p[i] = runtime.VIdNone
	}
	p[root] = root
	return p
}
