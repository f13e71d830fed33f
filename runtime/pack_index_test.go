package runtime_test

import (
	"testing"

	"github.com/katalvlaran/pargraph/runtime"
	"github.com/stretchr/testify/require"
)

func TestPackIndex_SmallSequential(t *testing.T) {
	flags := []bool{true, false, true, true, false}
	idx, k := runtime.PackIndex(flags)
	require.Equal(t, 3, k)
	require.Equal(t, []int32{0, 2, 3}, idx)
}

func TestPackIndex_ParallelPathMatchesSequential(t *testing.T) {
	const n = 50_000
	flags := make([]bool, n)
	var want []int32
	for i := range flags {
		flags[i] = i%7 == 0
		if flags[i] {
			want = append(want, int32(i))
		}
	}
	idx, k := runtime.PackIndex(flags)
	require.Equal(t, len(want), k)
	require.Equal(t, want, idx[:k])
}

func TestPackIndex_AllFalse(t *testing.T) {
	idx, k := runtime.PackIndex(make([]bool, 10))
	require.Equal(t, 0, k)
	require.Empty(t, idx)
}

func TestPackVIds(t *testing.T) {
	const none = runtime.VIdNone
	src := []runtime.VId{none, 4, none, 7, 9, none}
	dst, k := runtime.PackVIds(src, none)
	require.Equal(t, 3, k)
	require.Equal(t, []runtime.VId{4, 7, 9}, dst)
}
