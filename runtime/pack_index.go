// File: pack_index.go
// Role: parallel prefix-sum pack, the compaction primitive both
// VertexSubset.ToSparse and EdgeMap's push-mode output construction are
// built from.
package runtime

import "sync"

// PackIndex returns, as idx, the ordered sequence of indices i in
// [0, len(flags)) with flags[i] == true, and its length k (idx[:k] is
// the live slice; idx has spare capacity trimmed by the caller if it
// matters).
//
// Implementation is the textbook three-phase parallel pack: a parallel
// per-chunk count, a sequential scan over chunk counts to derive
// per-chunk output offsets, and a parallel scatter into the compacted
// array.
func PackIndex(flags []bool) (idx []int32, k int) {
	n := len(flags)
	if n == 0 {
		return nil, 0
	}
	p := Workers()
	if n <= sequentialThreshold || p <= 1 {
		idx = make([]int32, 0, n)
		for i, f := range flags {
			if f {
				idx = append(idx, int32(i))
			}
		}
		return idx, len(idx)
	}

	chunk := (n + p - 1) / p
	nChunks := (n + chunk - 1) / chunk
	counts := make([]int, nChunks)

	var wg sync.WaitGroup
	wg.Add(nChunks)
	for c := 0; c < nChunks; c++ {
		go func(c int) {
			defer wg.Done()
			start := c * chunk
			end := start + chunk
			if end > n {
				end = n
			}
			cnt := 0
			for _, f := range flags[start:end] {
				if f {
					cnt++
				}
			}
			counts[c] = cnt
		}(c)
	}
	wg.Wait()

	offsets := make([]int, nChunks+1)
	for c := 0; c < nChunks; c++ {
		offsets[c+1] = offsets[c] + counts[c]
	}
	total := offsets[nChunks]

	idx = make([]int32, total)
	wg.Add(nChunks)
	for c := 0; c < nChunks; c++ {
		go func(c int) {
			defer wg.Done()
			start := c * chunk
			end := start + chunk
			if end > n {
				end = n
			}
			w := offsets[c]
			for i := start; i < end; i++ {
				if flags[i] {
					idx[w] = int32(i)
					w++
				}
			}
		}(c)
	}
	wg.Wait()

	return idx, total
}

// PackVIds compacts src into dst, keeping only entries not equal to
// sentinel and preserving their relative order (chunks are processed
// independently but written contiguously in chunk order). Used by
// EdgeMap's push-mode materialization to pack live entries out of the
// scratch output buffer without a second bool-flags allocation.
func PackVIds(src []VId, sentinel VId) (dst []VId, k int) {
	n := len(src)
	if n == 0 {
		return nil, 0
	}
	p := Workers()
	if n <= sequentialThreshold || p <= 1 {
		dst = make([]VId, 0, n)
		for _, v := range src {
			if v != sentinel {
				dst = append(dst, v)
			}
		}
		return dst, len(dst)
	}

	chunk := (n + p - 1) / p
	nChunks := (n + chunk - 1) / chunk
	counts := make([]int, nChunks)

	var wg sync.WaitGroup
	wg.Add(nChunks)
	for c := 0; c < nChunks; c++ {
		go func(c int) {
			defer wg.Done()
			start := c * chunk
			end := start + chunk
			if end > n {
				end = n
			}
			cnt := 0
			for _, v := range src[start:end] {
				if v != sentinel {
					cnt++
				}
			}
			counts[c] = cnt
		}(c)
	}
	wg.Wait()

	offsets := make([]int, nChunks+1)
	for c := 0; c < nChunks; c++ {
		offsets[c+1] = offsets[c] + counts[c]
	}
	total := offsets[nChunks]

	dst = make([]VId, total)
	wg.Add(nChunks)
	for c := 0; c < nChunks; c++ {
		go func(c int) {
			defer wg.Done()
			start := c * chunk
			end := start + chunk
			if end > n {
				end = n
			}
			w := offsets[c]
			for i := start; i < end; i++ {
				if src[i] != sentinel {
					dst[w] = src[i]
					w++
				}
			}
		}(c)
	}
	wg.Wait()

	return dst, total
}
