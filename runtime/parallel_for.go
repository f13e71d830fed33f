// File: parallel_for.go
// Role: fork-join data-parallel loop over an integer range.
package runtime

import "sync"

// sequentialThreshold is the range size below which ParallelFor runs body
// synchronously rather than paying goroutine/scheduling overhead.
const sequentialThreshold = 1 << 11

// ParallelFor invokes body(i) for every i in [lo, hi), with no ordering
// guarantee, across up to Workers() goroutines. It blocks until every
// iteration has completed. body must be safe to call concurrently from
// different goroutines except through the atomic primitives in this
// package or writes to disjoint indices.
//
// A panic raised by body propagates out of ParallelFor to its caller: a
// worker goroutine recovers it, and ParallelFor re-raises the first such
// panic once every worker has returned. ParallelFor makes no attempt to
// stop other in-flight iterations early, matching the "best-effort"
// propagation contract of user-operator failures.
func ParallelFor(lo, hi int, body func(i int)) {
	if hi <= lo {
		return
	}
	n := hi - lo
	p := Workers()
	if n <= sequentialThreshold || p <= 1 {
		for i := lo; i < hi; i++ {
			body(i)
		}
		return
	}

	chunk := (n + p - 1) / p
	var (
		wg       sync.WaitGroup
		once     sync.Once
		panicked bool
		panicVal any
	)
	for start := lo; start < hi; start += chunk {
		end := start + chunk
		if end > hi {
			end = hi
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					once.Do(func() { panicked, panicVal = true, r })
				}
			}()
			for i := s; i < e; i++ {
				body(i)
			}
		}(start, end)
	}
	wg.Wait()
	if panicked {
		panic(panicVal)
	}
}

// ParallelForGrain is ParallelFor with a caller-chosen grain size instead
// of Workers()-derived chunking. Useful when the per-iteration body is
// markedly more or less expensive than the default grain assumes.
// Unlike ParallelFor, it does not recover panics on its worker
// goroutines: a panic raised by body there terminates the process.
func ParallelForGrain(lo, hi, grain int, body func(i int)) {
	if hi <= lo {
		return
	}
	if grain <= 0 {
		ParallelFor(lo, hi, body)
		return
	}
	n := hi - lo
	if n <= sequentialThreshold {
		for i := lo; i < hi; i++ {
			body(i)
		}
		return
	}

	var wg sync.WaitGroup
	for start := lo; start < hi; start += grain {
		end := start + grain
		if end > hi {
			end = hi
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				body(i)
			}
		}(start, end)
	}
	wg.Wait()
}
