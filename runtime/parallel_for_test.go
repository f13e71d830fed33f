package runtime_test

import (
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/pargraph/runtime"
	"github.com/stretchr/testify/require"
)

func TestParallelFor_VisitsEveryIndexExactlyOnce(t *testing.T) {
	const n = 10_000
	var seen [n]int32
	runtime.ParallelFor(0, n, func(i int) {
		atomic.AddInt32(&seen[i], 1)
	})
	for i, v := range seen {
		require.Equalf(t, int32(1), v, "index %d visited %d times", i, v)
	}
}

func TestParallelFor_EmptyRangeIsNoop(t *testing.T) {
	called := false
	runtime.ParallelFor(5, 5, func(int) { called = true })
	runtime.ParallelFor(5, 3, func(int) { called = true })
	require.False(t, called)
}

func TestParallelFor_SequentialFallbackMatchesParallelPath(t *testing.T) {
	runtime.SetWorkers(8)
	defer runtime.SetWorkers(0)

	small := make([]int64, 100)
	runtime.ParallelFor(0, len(small), func(i int) { small[i] = int64(i) })

	large := make([]int64, 1<<16)
	runtime.ParallelFor(0, len(large), func(i int) { large[i] = int64(i) })

	for i, v := range small {
		require.Equal(t, int64(i), v)
	}
	for i, v := range large {
		require.Equal(t, int64(i), v)
	}
}

func TestParallelForGrain_VisitsEveryIndexExactlyOnce(t *testing.T) {
	const n = 10_000
	var seen [n]int32
	runtime.ParallelForGrain(0, n, 128, func(i int) {
		atomic.AddInt32(&seen[i], 1)
	})
	for i, v := range seen {
		require.Equalf(t, int32(1), v, "index %d visited %d times", i, v)
	}
}

func TestPlusReduce(t *testing.T) {
	a := make([]int64, 5000)
	var want int64
	for i := range a {
		a[i] = int64(i)
		want += int64(i)
	}
	require.Equal(t, want, runtime.PlusReduce(a))
	require.Equal(t, int64(0), runtime.PlusReduce(nil))
}

func TestPlusReduceFloat(t *testing.T) {
	a := make([]float64, 5000)
	var want float64
	for i := range a {
		a[i] = float64(i) * 0.5
		want += a[i]
	}
	require.InDelta(t, want, runtime.PlusReduceFloat(a), 1e-6)
}

func TestScanBack(t *testing.T) {
	a := []int{1, 2, 3, 4}
	got := runtime.ScanBack(a, func(x, acc int) int { return x + acc }, 0)
	require.Equal(t, []int{10, 9, 7, 4}, got)
}
