package observables

import (
	"runtime"
	"sync"
)

// Columns below this count are not worth the goroutine overhead.
const minParallelChunk = 64

// parallelRange executes fn over [0, n) split into contiguous chunks, one
// goroutine per worker. Chunks share no state: callers index disjoint
// slices of their inputs and outputs, so no locking is needed beyond the
// final wait.
func parallelRange(n int, fn func(start, end int)) {
	workers := runtime.NumCPU()
	if n <= minParallelChunk || workers <= 1 {
		fn(0, n)
		return
	}
	if workers > n/minParallelChunk {
		workers = n / minParallelChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > n {
			end = n
		}
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
